package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/services"
	testdb "github.com/qaforge/qaforge/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		EventTTL:        1 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

func createRetentionRequest(ctx context.Context, t *testing.T, client *ent.Client) *ent.Request {
	t.Helper()
	req, err := services.NewRequestService(client).CreateRequest(ctx, models.CreateRequestInput{
		RequestID:    uuid.New().String(),
		RequestType:  models.RequestTypeUI,
		URL:          "https://shop.example.com/login",
		Requirements: []string{"User can log in"},
	})
	require.NoError(t, err)
	return req
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	checkpointService := services.NewCheckpointService(client.Client)
	ctx := context.Background()

	req := createRetentionRequest(ctx, t, client.Client)

	// One event past the TTL, one fresh
	_, err := client.Event.Create().
		SetRequestID(req.ID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetRequestID(req.ID).
		SetChannel("test").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), eventService, checkpointService)
	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "test", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}

func TestService_RemovesCheckpointsOfFinishedRequests(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	checkpointService := services.NewCheckpointService(client.Client)
	ctx := context.Background()

	// Completed long ago: checkpoint is dead weight
	finished := createRetentionRequest(ctx, t, client.Client)
	_, err := checkpointService.SaveCheckpoint(ctx, finished.ID, 1,
		map[string]interface{}{"completed_stages": []interface{}{"reconnaissance"}})
	require.NoError(t, err)
	err = client.Request.UpdateOneID(finished.ID).
		SetStatus(request.StatusCompleted).
		SetCompletedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	// Failed: checkpoint must survive so the request can be resumed
	failed := createRetentionRequest(ctx, t, client.Client)
	_, err = checkpointService.SaveCheckpoint(ctx, failed.ID, 1,
		map[string]interface{}{"completed_stages": []interface{}{"reconnaissance"}})
	require.NoError(t, err)
	err = client.Request.UpdateOneID(failed.ID).
		SetStatus(request.StatusFailed).
		SetCompletedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), eventService, checkpointService)
	svc.runAll(ctx)

	_, err = checkpointService.GetCheckpoint(ctx, finished.ID)
	assert.ErrorIs(t, err, services.ErrNotFound, "finished request's checkpoint should be removed")

	_, err = checkpointService.GetCheckpoint(ctx, failed.ID)
	assert.NoError(t, err, "failed request keeps its checkpoint for resume")
}

func TestService_PreservesRecentCheckpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	checkpointService := services.NewCheckpointService(client.Client)
	ctx := context.Background()

	req := createRetentionRequest(ctx, t, client.Client)
	_, err := checkpointService.SaveCheckpoint(ctx, req.ID, 1,
		map[string]interface{}{"completed_stages": []interface{}{"reconnaissance"}})
	require.NoError(t, err)
	err = client.Request.UpdateOneID(req.ID).
		SetStatus(request.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), eventService, checkpointService)
	svc.runAll(ctx)

	_, err = checkpointService.GetCheckpoint(ctx, req.ID)
	assert.NoError(t, err, "recently finished request keeps its checkpoint until the TTL passes")
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(retentionConfig(),
		services.NewEventService(client.Client),
		services.NewCheckpointService(client.Client))

	svc.Start(context.Background())
	svc.Stop()

	// Stop on an unstarted service is a no-op
	NewService(retentionConfig(), nil, nil).Stop()
}
