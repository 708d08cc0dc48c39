package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/events"
	testdb "github.com/qaforge/qaforge/test/database"
)

func TestEventService_CreateEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)
	channel := events.RequestChannel(req.ID)

	t.Run("creates event successfully", func(t *testing.T) {
		event, err := eventService.CreateEvent(ctx, req.ID, channel, map[string]any{"type": "request.status", "status": "pending"})
		require.NoError(t, err)
		assert.Equal(t, channel, event.Channel)
		assert.Positive(t, event.ID)
		assert.NotNil(t, event.Payload)
	})

	t.Run("allows events without a request", func(t *testing.T) {
		event, err := eventService.CreateEvent(ctx, "", events.GlobalRequestsChannel, map[string]any{"type": "request.status"})
		require.NoError(t, err)
		assert.Nil(t, event.RequestID)
	})
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)
	channel := events.RequestChannel(req.ID)

	evt1, err := eventService.CreateEvent(ctx, req.ID, channel, map[string]any{"seq": 1})
	require.NoError(t, err)
	evt2, err := eventService.CreateEvent(ctx, req.ID, channel, map[string]any{"seq": 2})
	require.NoError(t, err)

	t.Run("retrieves events since ID", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, evt1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt2.ID, events[0].ID)
	})

	t.Run("retrieves all events when sinceID is 0", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("respects limit parameter", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt1.ID, events[0].ID)
	})

	t.Run("ignores other channels", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, "request:other", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupRequestEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)
	channel := events.RequestChannel(req.ID)

	for i := 0; i < 3; i++ {
		_, err := eventService.CreateEvent(ctx, req.ID, channel, map[string]any{"seq": i})
		require.NoError(t, err)
	}

	t.Run("cleans up all request events", func(t *testing.T) {
		count, err := eventService.CleanupRequestEvents(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupOrphanedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	// Create event directly with old created_at (bypassing service)
	oldTime := time.Now().Add(-8 * 24 * time.Hour)
	_, err := client.Event.Create().
		SetRequestID(req.ID).
		SetChannel(events.RequestChannel(req.ID)).
		SetPayload(map[string]any{}).
		SetCreatedAt(oldTime).
		Save(ctx)
	require.NoError(t, err)

	_, err = eventService.CreateEvent(ctx, req.ID, events.RequestChannel(req.ID), map[string]any{"fresh": true})
	require.NoError(t, err)

	t.Run("cleans up old events only", func(t *testing.T) {
		count, err := eventService.CleanupOrphanedEvents(ctx, 7*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		remaining, err := eventService.GetEventsSince(ctx, events.RequestChannel(req.ID), 0, 0)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})
}
