// Package ports defines interfaces between the application layer and
// its adapters. Ports take context as the first parameter, speak in
// domain types, and fail with domain errors.
package ports

import (
	"context"

	"notekeeper/internal/domain"
)

// ItemRepository is the persistence contract for notebook items.
// Implementations exist for MongoDB and for the in-memory fallback.
type ItemRepository interface {
	// List returns all items, newest first.
	List(ctx context.Context) ([]domain.Item, error)

	// Get returns the item with the given id.
	// Returns domain.ErrNotFound if no such item exists.
	Get(ctx context.Context, id string) (*domain.Item, error)

	// Create persists a new item. The caller assigns the id.
	// Returns domain.ErrConflict if the id is already taken.
	Create(ctx context.Context, item *domain.Item) error

	// Update replaces the stored title, content and updated timestamp.
	// Returns domain.ErrNotFound if no such item exists.
	Update(ctx context.Context, item *domain.Item) error

	// Delete removes the item with the given id.
	// Returns domain.ErrNotFound if no such item exists.
	Delete(ctx context.Context, id string) error
}

// FeedbackRepository is the persistence contract for guestbook entries.
// Entries are append-only; there is deliberately no update or delete.
type FeedbackRepository interface {
	// List returns all entries, newest first.
	List(ctx context.Context) ([]domain.Feedback, error)

	// Create appends a new entry. The caller assigns the id.
	Create(ctx context.Context, fb *domain.Feedback) error
}
