// Package failover decorates a primary repository with an in-memory
// fallback. Every operation is tried against the primary first; when
// the primary reports an infrastructure failure the operation is
// replayed against the fallback and a warning is logged. Domain
// errors (not found, validation, conflict) pass through untouched.
//
// There is deliberately no reconciliation between the two stores:
// entities written while degraded live only in memory.
package failover

import (
	"context"
	"log/slog"

	"notekeeper/internal/domain"
	"notekeeper/internal/ports"
)

// shouldFailover reports whether an error from the primary warrants
// falling back to the memory store.
func shouldFailover(err error) bool {
	return err != nil && domain.IsUnavailable(err)
}

// ItemRepository is a failover ports.ItemRepository.
type ItemRepository struct {
	primary  ports.ItemRepository
	fallback ports.ItemRepository
	logger   *slog.Logger
}

// NewItemRepository wraps primary with fallback. Primary may be nil,
// in which case every operation goes straight to the fallback (the
// database was unreachable at startup).
func NewItemRepository(primary, fallback ports.ItemRepository, logger *slog.Logger) *ItemRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &ItemRepository{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *ItemRepository) warn(ctx context.Context, op string, err error) {
	r.logger.WarnContext(ctx, "primary store failed, falling back to memory",
		slog.String("repository", "items"),
		slog.String("op", op),
		slog.Any("error", err),
	)
}

// List returns all items, newest first.
func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	if r.primary == nil {
		return r.fallback.List(ctx)
	}

	items, err := r.primary.List(ctx)
	if shouldFailover(err) {
		r.warn(ctx, "list", err)
		return r.fallback.List(ctx)
	}

	return items, err
}

// Get returns the item with the given id.
func (r *ItemRepository) Get(ctx context.Context, id string) (*domain.Item, error) {
	if r.primary == nil {
		return r.fallback.Get(ctx, id)
	}

	item, err := r.primary.Get(ctx, id)
	if shouldFailover(err) {
		r.warn(ctx, "get", err)
		return r.fallback.Get(ctx, id)
	}

	return item, err
}

// Create persists a new item.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if r.primary == nil {
		return r.fallback.Create(ctx, item)
	}

	err := r.primary.Create(ctx, item)
	if shouldFailover(err) {
		r.warn(ctx, "create", err)
		return r.fallback.Create(ctx, item)
	}

	return err
}

// Update replaces the stored title, content and updated timestamp.
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	if r.primary == nil {
		return r.fallback.Update(ctx, item)
	}

	err := r.primary.Update(ctx, item)
	if shouldFailover(err) {
		r.warn(ctx, "update", err)
		return r.fallback.Update(ctx, item)
	}

	return err
}

// Delete removes the item with the given id.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	if r.primary == nil {
		return r.fallback.Delete(ctx, id)
	}

	err := r.primary.Delete(ctx, id)
	if shouldFailover(err) {
		r.warn(ctx, "delete", err)
		return r.fallback.Delete(ctx, id)
	}

	return err
}

// FeedbackRepository is a failover ports.FeedbackRepository.
type FeedbackRepository struct {
	primary  ports.FeedbackRepository
	fallback ports.FeedbackRepository
	logger   *slog.Logger
}

// NewFeedbackRepository wraps primary with fallback. Primary may be nil.
func NewFeedbackRepository(primary, fallback ports.FeedbackRepository, logger *slog.Logger) *FeedbackRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &FeedbackRepository{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FeedbackRepository) warn(ctx context.Context, op string, err error) {
	r.logger.WarnContext(ctx, "primary store failed, falling back to memory",
		slog.String("repository", "feedback"),
		slog.String("op", op),
		slog.Any("error", err),
	)
}

// List returns all entries, newest first.
func (r *FeedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	if r.primary == nil {
		return r.fallback.List(ctx)
	}

	entries, err := r.primary.List(ctx)
	if shouldFailover(err) {
		r.warn(ctx, "list", err)
		return r.fallback.List(ctx)
	}

	return entries, err
}

// Create appends a new entry.
func (r *FeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	if r.primary == nil {
		return r.fallback.Create(ctx, fb)
	}

	err := r.primary.Create(ctx, fb)
	if shouldFailover(err) {
		r.warn(ctx, "create", err)
		return r.fallback.Create(ctx, fb)
	}

	return err
}
