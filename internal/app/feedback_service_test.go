package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/adapters/storage/memory"
	"notekeeper/internal/domain"
)

func newFeedbackService(t *testing.T) (*FeedbackService, *memory.FeedbackStore) {
	t.Helper()

	store := memory.NewFeedbackStore()
	svc := NewFeedbackService(FeedbackServiceConfig{
		Repo:   store,
		Logger: discardLogger(),
	})

	return svc, store
}

func TestNewFeedbackService_PanicsWithoutRepo(t *testing.T) {
	assert.Panics(t, func() {
		NewFeedbackService(FeedbackServiceConfig{})
	})
}

func TestFeedbackService_Submit(t *testing.T) {
	svc, _ := newFeedbackService(t)

	fb, err := svc.Submit(context.Background(), " Ada ", "  great site  ")

	require.NoError(t, err)
	assert.NotEmpty(t, fb.ID)
	assert.Equal(t, "Ada", fb.Name)
	assert.Equal(t, "great site", fb.Message)
	assert.False(t, fb.CreatedAt.IsZero())
}

func TestFeedbackService_Submit_BlankNameDefaultsToAnonymous(t *testing.T) {
	svc, _ := newFeedbackService(t)

	fb, err := svc.Submit(context.Background(), "", "hello")

	require.NoError(t, err)
	assert.Equal(t, "Anonymous", fb.Name)
}

func TestFeedbackService_Submit_BlankMessageIsRejected(t *testing.T) {
	svc, store := newFeedbackService(t)

	_, err := svc.Submit(context.Background(), "Ada", "   ")

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Nothing persisted.
	entries, listErr := store.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, entries)
}

func TestFeedbackService_ListNewestFirst(t *testing.T) {
	svc, _ := newFeedbackService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "Ada", "first")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "Grace", "second")
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Message)
}
