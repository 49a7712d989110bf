package memory

import (
	"context"
	"sync"

	"notekeeper/internal/domain"
)

// FeedbackStore is an in-memory ports.FeedbackRepository.
// Entries are append-only, mirroring the guestbook semantics.
type FeedbackStore struct {
	mu      sync.RWMutex
	entries []domain.Feedback
}

// NewFeedbackStore creates an empty in-memory feedback store.
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{}
}

// List returns all entries, newest first.
func (s *FeedbackStore) List(_ context.Context) ([]domain.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.Feedback, len(s.entries))
	for i, fb := range s.entries {
		entries[len(s.entries)-1-i] = fb
	}

	return entries, nil
}

// Create appends a new entry.
func (s *FeedbackStore) Create(_ context.Context, fb *domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, *fb)

	return nil
}
