// Package memory provides map-backed repositories used as the fallback
// store when MongoDB is unreachable. The HTTP server handles requests
// concurrently, so all state is guarded by a mutex.
package memory

import (
	"context"
	"sort"
	"sync"

	"notekeeper/internal/domain"
)

// ItemStore is an in-memory ports.ItemRepository.
type ItemStore struct {
	mu    sync.RWMutex
	items map[string]domain.Item
}

// NewItemStore creates an empty in-memory item store.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items: make(map[string]domain.Item),
	}
}

// List returns all items, newest first.
func (s *ItemStore) List(_ context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}

		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

// Get returns the item with the given id.
func (s *ItemStore) Get(_ context.Context, id string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("item", id)
	}

	return &item, nil
}

// Create stores a new item.
func (s *ItemStore) Create(_ context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; ok {
		return domain.NewConflictError("item", "duplicate id "+item.ID)
	}

	s.items[item.ID] = *item

	return nil
}

// Update replaces a stored item.
func (s *ItemStore) Update(_ context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[item.ID]
	if !ok {
		return domain.NewNotFoundError("item", item.ID)
	}

	stored.Title = item.Title
	stored.Content = item.Content
	stored.UpdatedAt = item.UpdatedAt
	s.items[item.ID] = stored

	return nil
}

// Delete removes a stored item.
func (s *ItemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.NewNotFoundError("item", id)
	}

	delete(s.items, id)

	return nil
}
