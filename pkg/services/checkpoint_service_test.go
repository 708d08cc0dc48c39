package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent/request"
	testdb "github.com/qaforge/qaforge/test/database"
)

func TestCheckpointService_SaveCheckpoint(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCheckpointService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	t.Run("creates checkpoint on first save", func(t *testing.T) {
		cp, err := svc.SaveCheckpoint(ctx, req.ID, 1, map[string]any{
			"completed_stages": []any{"reconnaissance"},
		})
		require.NoError(t, err)
		assert.Equal(t, req.ID, cp.RequestID)
		assert.Equal(t, 1, cp.Version)
	})

	t.Run("rewrites checkpoint on subsequent saves", func(t *testing.T) {
		first, err := svc.GetCheckpoint(ctx, req.ID)
		require.NoError(t, err)

		cp, err := svc.SaveCheckpoint(ctx, req.ID, 1, map[string]any{
			"completed_stages": []any{"reconnaissance", "generation"},
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, cp.ID)
		assert.Equal(t, []any{"reconnaissance", "generation"}, cp.Payload["completed_stages"])
	})

	t.Run("returns ErrNotFound for a missing request", func(t *testing.T) {
		_, err := svc.SaveCheckpoint(ctx, uuid.New().String(), 1, map[string]any{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCheckpointService_SaveCheckpointAndStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCheckpointService(client.Client)
	reqSvc := NewRequestService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	t.Run("advances status and checkpoint together", func(t *testing.T) {
		cp, err := svc.SaveCheckpointAndStatus(ctx, req.ID, request.StatusGeneration, 1, map[string]any{
			"completed_stages": []any{"reconnaissance"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, cp.Version)

		got, err := reqSvc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusGeneration, got.Status)
	})

	t.Run("fails atomically for a missing request", func(t *testing.T) {
		_, err := svc.SaveCheckpointAndStatus(ctx, uuid.New().String(), request.StatusGeneration, 1, map[string]any{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCheckpointService_GetAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCheckpointService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	t.Run("get returns ErrNotFound before any save", func(t *testing.T) {
		_, err := svc.GetCheckpoint(ctx, req.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes the checkpoint", func(t *testing.T) {
		_, err := svc.SaveCheckpoint(ctx, req.ID, 1, map[string]any{"completed_stages": []any{}})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteCheckpoint(ctx, req.ID))

		_, err = svc.GetCheckpoint(ctx, req.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, svc.DeleteCheckpoint(ctx, req.ID))
	})
}
