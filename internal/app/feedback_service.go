package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"notekeeper/internal/domain"
	"notekeeper/internal/ports"
)

// FeedbackService orchestrates the guestbook use cases.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// FeedbackServiceConfig contains the feedback service dependencies.
type FeedbackServiceConfig struct {
	Repo   ports.FeedbackRepository
	Logger *slog.Logger

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// NewFeedbackService creates a feedback service. Panics without a repository.
func NewFeedbackService(cfg FeedbackServiceConfig) *FeedbackService {
	if cfg.Repo == nil {
		panic("app: FeedbackService requires a repository")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}

	return &FeedbackService{
		repo:   cfg.Repo,
		logger: cfg.Logger,
		now:    cfg.Now,
		newID:  cfg.NewID,
	}
}

// List returns all guestbook entries, newest first.
func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.repo.List(ctx)
}

// Submit appends a guestbook entry. A blank name becomes "Anonymous".
// A blank message is rejected with domain.ErrValidation; callers treat
// that as a silent no-op.
func (s *FeedbackService) Submit(ctx context.Context, name, message string) (*domain.Feedback, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.NewValidationError("message", "must not be empty")
	}

	fb := &domain.Feedback{
		ID:        s.newID(),
		Name:      domain.NormalizeName(name),
		Message:   message,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "feedback received",
		slog.String("feedback_id", fb.ID),
		slog.String("name", fb.Name),
	)

	return fb, nil
}
