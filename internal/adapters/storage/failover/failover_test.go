package failover

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/adapters/storage/memory"
	"notekeeper/internal/domain"
)

// brokenItems simulates a repository whose backing store is down.
type brokenItems struct{}

func (brokenItems) List(context.Context) ([]domain.Item, error) {
	return nil, domain.NewUnavailableError("mongodb", "connection refused")
}

func (brokenItems) Get(context.Context, string) (*domain.Item, error) {
	return nil, domain.NewUnavailableError("mongodb", "connection refused")
}

func (brokenItems) Create(context.Context, *domain.Item) error {
	return domain.NewUnavailableError("mongodb", "connection refused")
}

func (brokenItems) Update(context.Context, *domain.Item) error {
	return domain.NewUnavailableError("mongodb", "connection refused")
}

func (brokenItems) Delete(context.Context, string) error {
	return domain.NewUnavailableError("mongodb", "connection refused")
}

// missingItems is healthy but holds nothing.
type missingItems struct{ brokenItems }

func (missingItems) Get(_ context.Context, id string) (*domain.Item, error) {
	return nil, domain.NewNotFoundError("item", id)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestItemRepository_NilPrimaryUsesFallback(t *testing.T) {
	fallback := memory.NewItemStore()
	repo := NewItemRepository(nil, fallback, discardLogger())
	ctx := context.Background()

	item := &domain.Item{ID: "a1", Title: "note", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "note", got.Title)
}

func TestItemRepository_FailoverOnUnavailable(t *testing.T) {
	fallback := memory.NewItemStore()
	repo := NewItemRepository(brokenItems{}, fallback, discardLogger())
	ctx := context.Background()

	item := &domain.Item{ID: "a1", Title: "degraded write", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, item))

	// Reads after a degraded write see the written entity.
	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "degraded write", got.Title)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestItemRepository_FailoverLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	repo := NewItemRepository(brokenItems{}, memory.NewItemStore(), logger)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "falling back to memory")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "connection refused")
}

func TestItemRepository_DomainErrorsPassThrough(t *testing.T) {
	fallback := memory.NewItemStore()
	// Seed the fallback so a wrong failover would mask the not-found.
	require.NoError(t, fallback.Create(context.Background(), &domain.Item{ID: "a1", Title: "shadow"}))

	repo := NewItemRepository(missingItems{}, fallback, discardLogger())

	_, err := repo.Get(context.Background(), "a1")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestItemRepository_UpdateAndDeleteFailover(t *testing.T) {
	fallback := memory.NewItemStore()
	ctx := context.Background()
	require.NoError(t, fallback.Create(ctx, &domain.Item{ID: "a1", Title: "before"}))

	repo := NewItemRepository(brokenItems{}, fallback, discardLogger())

	require.NoError(t, repo.Update(ctx, &domain.Item{ID: "a1", Title: "after", UpdatedAt: time.Now()}))
	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)

	require.NoError(t, repo.Delete(ctx, "a1"))
	_, err = repo.Get(ctx, "a1")
	assert.True(t, domain.IsNotFound(err))
}

// brokenFeedback simulates an unreachable feedback collection.
type brokenFeedback struct{}

func (brokenFeedback) List(context.Context) ([]domain.Feedback, error) {
	return nil, domain.NewUnavailableError("mongodb", "connection refused")
}

func (brokenFeedback) Create(context.Context, *domain.Feedback) error {
	return domain.NewUnavailableError("mongodb", "connection refused")
}

func TestFeedbackRepository_Failover(t *testing.T) {
	fallback := memory.NewFeedbackStore()
	repo := NewFeedbackRepository(brokenFeedback{}, fallback, discardLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Feedback{ID: "f1", Name: "Ada", Message: "hi", CreatedAt: time.Now()}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hi", entries[0].Message)
}

func TestFeedbackRepository_NilPrimary(t *testing.T) {
	repo := NewFeedbackRepository(nil, memory.NewFeedbackStore(), nil)

	require.NoError(t, repo.Create(context.Background(), &domain.Feedback{ID: "f1", Name: "Ada", Message: "hi"}))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
