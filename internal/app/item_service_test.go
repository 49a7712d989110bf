package app

import (
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

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newItemService(t *testing.T) *ItemService {
	t.Helper()

	return NewItemService(ItemServiceConfig{
		Repo:   memory.NewItemStore(),
		Logger: discardLogger(),
	})
}

func TestNewItemService_PanicsWithoutRepo(t *testing.T) {
	assert.Panics(t, func() {
		NewItemService(ItemServiceConfig{})
	})
}

func TestItemService_Create(t *testing.T) {
	svc := newItemService(t)

	item, err := svc.Create(context.Background(), "  Shopping list ", "milk\neggs")

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Shopping list", item.Title)
	assert.Equal(t, "milk\neggs", item.Content)
	assert.False(t, item.CreatedAt.IsZero())
	assert.True(t, item.CreatedAt.Equal(item.UpdatedAt))
}

func TestItemService_Create_BlankTitleStoresUntitled(t *testing.T) {
	svc := newItemService(t)

	item, err := svc.Create(context.Background(), "   ", "")

	require.NoError(t, err)
	assert.Equal(t, "Untitled", item.Title)
	assert.Empty(t, item.Content)

	stored, err := svc.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Untitled", stored.Title)
}

func TestItemService_Update(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := fixed

	svc := NewItemService(ItemServiceConfig{
		Repo:   memory.NewItemStore(),
		Logger: discardLogger(),
		Now:    func() time.Time { return clock },
	})
	ctx := context.Background()

	item, err := svc.Create(ctx, "draft", "v1")
	require.NoError(t, err)

	clock = fixed.Add(time.Hour)

	updated, err := svc.Update(ctx, item.ID, "", "v2")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", updated.Title) // blank title normalized on edit too
	assert.Equal(t, "v2", updated.Content)
	assert.True(t, updated.CreatedAt.Equal(fixed))
	assert.True(t, updated.UpdatedAt.Equal(fixed.Add(time.Hour)))
}

func TestItemService_Update_Missing(t *testing.T) {
	svc := newItemService(t)

	_, err := svc.Update(context.Background(), "ghost", "x", "y")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestItemService_Delete(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, "doomed", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID))

	_, err = svc.Get(ctx, item.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestItemService_Delete_Missing(t *testing.T) {
	svc := newItemService(t)

	err := svc.Delete(context.Background(), "ghost")

	assert.True(t, domain.IsNotFound(err))
}

func TestItemService_ListNewestFirst(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	svc := NewItemService(ItemServiceConfig{
		Repo:   memory.NewItemStore(),
		Logger: discardLogger(),
		Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
	})
	ctx := context.Background()

	_, err := svc.Create(ctx, "first", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "second", "")
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
}
