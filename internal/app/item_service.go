// Package app contains application services that orchestrate use cases.
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

// ItemService orchestrates notebook item use cases. It depends on the
// repository port, not a concrete store, so the same service runs
// against MongoDB, the memory fallback, or the failover decorator.
type ItemService struct {
	repo   ports.ItemRepository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// ItemServiceConfig contains the item service dependencies.
type ItemServiceConfig struct {
	Repo   ports.ItemRepository
	Logger *slog.Logger

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// NewItemService creates an item service. Panics without a repository.
func NewItemService(cfg ItemServiceConfig) *ItemService {
	if cfg.Repo == nil {
		panic("app: ItemService requires a repository")
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

	return &ItemService{
		repo:   cfg.Repo,
		logger: cfg.Logger,
		now:    cfg.Now,
		newID:  cfg.NewID,
	}
}

// List returns all items, newest first.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

// Get returns the item with the given id.
func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new item. A blank title becomes "Untitled"; content
// may be empty.
func (s *ItemService) Create(ctx context.Context, title, content string) (*domain.Item, error) {
	now := s.now()
	item := &domain.Item{
		ID:        s.newID(),
		Title:     domain.NormalizeTitle(title),
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item created",
		slog.String("item_id", item.ID),
		slog.String("title", item.Title),
	)

	return item, nil
}

// Update edits an existing item with the same normalization as Create.
// Returns domain.ErrNotFound for an unknown id.
func (s *ItemService) Update(ctx context.Context, id, title, content string) (*domain.Item, error) {
	item := &domain.Item{
		ID:        id,
		Title:     domain.NormalizeTitle(title),
		Content:   strings.TrimSpace(content),
		UpdatedAt: s.now(),
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item updated", slog.String("item_id", id))

	return s.repo.Get(ctx, id)
}

// Delete removes an item. Returns domain.ErrNotFound for an unknown id.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "item deleted", slog.String("item_id", id))

	return nil
}
