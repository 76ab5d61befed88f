package outbox_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/outbox"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("pending_until_sent", func(t *testing.T) {
		repo := outbox.NewRepository()
		require.NoError(t, repo.CreateOutboxEvent(ctx, outbox.Event{EventType: "ORDER_PLACED", Payload: []byte("{}")}))
		require.NoError(t, repo.CreateOutboxEvent(ctx, outbox.Event{EventType: "ORDER_PLACED", Payload: []byte("{}")}))

		pending, err := repo.ListPending(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, outbox.StatusPending, pending[0].Status)

		require.NoError(t, repo.MarkSent(ctx, pending[0].ID))
		pending, _ = repo.ListPending(ctx, 10)
		assert.Len(t, pending, 1)
	})

	t.Run("limit", func(t *testing.T) {
		repo := outbox.NewRepository()
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.CreateOutboxEvent(ctx, outbox.Event{EventType: "X"}))
		}
		pending, _ := repo.ListPending(ctx, 3)
		assert.Len(t, pending, 3)
	})

	t.Run("failed_retried_until_exhausted", func(t *testing.T) {
		repo := outbox.NewRepository()
		require.NoError(t, repo.CreateOutboxEvent(ctx, outbox.Event{EventType: "X"}))
		pending, _ := repo.ListPending(ctx, 1)
		id := pending[0].ID

		for i := 0; i < 4; i++ {
			require.NoError(t, repo.MarkFailed(ctx, id))
			pending, _ = repo.ListPending(ctx, 1)
			require.Len(t, pending, 1)
		}
		require.NoError(t, repo.MarkFailed(ctx, id))
		pending, _ = repo.ListPending(ctx, 1)
		assert.Empty(t, pending)
	})

	t.Run("unknown_id", func(t *testing.T) {
		repo := outbox.NewRepository()
		assert.ErrorIs(t, repo.MarkSent(ctx, uuid.New()), outbox.ErrEventNotFound)
	})
}
