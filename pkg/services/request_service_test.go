package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/models"
	testdb "github.com/qaforge/qaforge/test/database"
)

func TestRequestService_CreateRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	t.Run("creates ui request", func(t *testing.T) {
		req, err := svc.CreateRequest(ctx, models.CreateRequestInput{
			RequestID:    uuid.New().String(),
			RequestType:  models.RequestTypeUI,
			URL:          "https://shop.example.com/login",
			Requirements: []string{"User can log in", "Error shown for bad password"},
			TestTypes:    []string{"positive", "negative"},
		})
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, req.Status)
		assert.Equal(t, request.RequestTypeUI, req.RequestType)
		require.NotNil(t, req.URL)
		assert.Equal(t, "https://shop.example.com/login", *req.URL)
		assert.Len(t, req.Requirements, 2)
		assert.Nil(t, req.StartedAt)
		assert.Nil(t, req.CompletedAt)
	})

	t.Run("creates api request with inline spec", func(t *testing.T) {
		req, err := svc.CreateRequest(ctx, models.CreateRequestInput{
			RequestID:      uuid.New().String(),
			RequestType:    models.RequestTypeAPI,
			Requirements:   []string{"GET /users returns 200"},
			OpenAPIContent: `{"openapi": "3.0.0"}`,
		})
		require.NoError(t, err)
		assert.Equal(t, request.RequestTypeAPI, req.RequestType)
		require.NotNil(t, req.OpenapiContent)
	})

	t.Run("rejects ui request without url", func(t *testing.T) {
		_, err := svc.CreateRequest(ctx, models.CreateRequestInput{
			RequestID:    uuid.New().String(),
			RequestType:  models.RequestTypeUI,
			Requirements: []string{"something"},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects api request without spec source", func(t *testing.T) {
		_, err := svc.CreateRequest(ctx, models.CreateRequestInput{
			RequestID:    uuid.New().String(),
			RequestType:  models.RequestTypeAPI,
			Requirements: []string{"something"},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty requirements", func(t *testing.T) {
		_, err := svc.CreateRequest(ctx, models.CreateRequestInput{
			RequestID:   uuid.New().String(),
			RequestType: models.RequestTypeUI,
			URL:         "https://example.com",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown test type", func(t *testing.T) {
		_, err := svc.CreateRequest(ctx, models.CreateRequestInput{
			RequestID:    uuid.New().String(),
			RequestType:  models.RequestTypeUI,
			URL:          "https://example.com",
			Requirements: []string{"something"},
			TestTypes:    []string{"fuzzing"},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate request id", func(t *testing.T) {
		input := models.CreateRequestInput{
			RequestID:    uuid.New().String(),
			RequestType:  models.RequestTypeUI,
			URL:          "https://example.com",
			Requirements: []string{"something"},
		}
		_, err := svc.CreateRequest(ctx, input)
		require.NoError(t, err)

		_, err = svc.CreateRequest(ctx, input)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestRequestService_GetRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	tcSvc := NewTestCaseService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	_, err := tcSvc.CreateTestCases(ctx, req.ID, []models.NewTestCase{
		{Name: "test_login_positive", Code: "def test_login_positive():\n    pass\n", Score: 80, Valid: true},
	})
	require.NoError(t, err)

	t.Run("returns request without edges by default", func(t *testing.T) {
		got, err := svc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, req.ID, got.ID)
		assert.Empty(t, got.Edges.TestCases)
	})

	t.Run("loads test cases when requested", func(t *testing.T) {
		got, err := svc.GetRequest(ctx, req.ID, GetRequestOptions{IncludeTests: true})
		require.NoError(t, err)
		require.Len(t, got.Edges.TestCases, 1)
		assert.Equal(t, "test_login_positive", got.Edges.TestCases[0].Name)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := svc.GetRequest(ctx, uuid.New().String(), GetRequestOptions{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRequestService_ListRequests(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestRequest(t, client.Client)
	}
	apiReq, err := svc.CreateRequest(ctx, models.CreateRequestInput{
		RequestID:    uuid.New().String(),
		RequestType:  models.RequestTypeAPI,
		Requirements: []string{"GET /users returns 200"},
		OpenAPIURL:   "https://api.example.com/openapi.json",
	})
	require.NoError(t, err)
	require.NoError(t, svc.MarkFailed(ctx, apiReq.ID, models.CodeLLMUnavailable, "provider down"))

	t.Run("lists all with pagination", func(t *testing.T) {
		resp, err := svc.ListRequests(ctx, models.RequestFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Requests, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := svc.ListRequests(ctx, models.RequestFilters{Status: models.StatusFailed})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("filters by request type", func(t *testing.T) {
		resp, err := svc.ListRequests(ctx, models.RequestFilters{RequestType: models.RequestTypeAPI})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})
}

func TestRequestService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	t.Run("UpdateStatus stamps completed_at on terminal status", func(t *testing.T) {
		req := createTestRequest(t, client.Client)

		require.NoError(t, svc.UpdateStatus(ctx, req.ID, request.StatusGeneration))
		got, err := svc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusGeneration, got.Status)
		assert.Nil(t, got.CompletedAt)

		require.NoError(t, svc.UpdateStatus(ctx, req.ID, request.StatusCompleted))
		got, err = svc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("MarkCompleted records summary", func(t *testing.T) {
		req := createTestRequest(t, client.Client)

		err := svc.MarkCompleted(ctx, req.ID, models.ResultSummary{
			TestsGenerated: 5,
			TestsValid:     4,
			CoverageScore:  0.8,
			DurationMS:     1234,
		})
		require.NoError(t, err)

		got, err := svc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusCompleted, got.Status)
		require.NotNil(t, got.ResultSummary)
		assert.EqualValues(t, 5, got.ResultSummary["tests_generated"])
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("MarkFailed records error code and message", func(t *testing.T) {
		req := createTestRequest(t, client.Client)

		err := svc.MarkFailed(ctx, req.ID, models.CodeReconTimeout, "page load exceeded budget")
		require.NoError(t, err)

		got, err := svc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorCode)
		assert.Equal(t, models.CodeReconTimeout, *got.ErrorCode)
	})

	t.Run("UpdateStatus returns ErrNotFound for unknown id", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, uuid.New().String(), request.StatusCompleted)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRequestService_CancelIfPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	t.Run("cancels pending request", func(t *testing.T) {
		req := createTestRequest(t, client.Client)

		cancelled, err := svc.CancelIfPending(ctx, req.ID)
		require.NoError(t, err)
		assert.True(t, cancelled)

		got, err := svc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusCancelled, got.Status)
		require.NotNil(t, got.ErrorCode)
		assert.Equal(t, models.CodeCancelled, *got.ErrorCode)
	})

	t.Run("does not touch an in-flight request", func(t *testing.T) {
		req := createTestRequest(t, client.Client)
		require.NoError(t, svc.UpdateStatus(ctx, req.ID, request.StatusValidation))

		cancelled, err := svc.CancelIfPending(ctx, req.ID)
		require.NoError(t, err)
		assert.False(t, cancelled)

		got, err := svc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusValidation, got.Status)
	})
}

func TestRequestService_ResumeFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	t.Run("re-queues a failed request and clears error fields", func(t *testing.T) {
		req := createTestRequest(t, client.Client)
		require.NoError(t, svc.MarkFailed(ctx, req.ID, models.CodeEmptyOutput, "model returned nothing"))

		resumed, err := svc.ResumeFailed(ctx, req.ID)
		require.NoError(t, err)
		assert.True(t, resumed)

		got, err := svc.GetRequest(ctx, req.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, got.Status)
		assert.Nil(t, got.ErrorCode)
		assert.Nil(t, got.ErrorMessage)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("refuses to resume a non-failed request", func(t *testing.T) {
		req := createTestRequest(t, client.Client)

		resumed, err := svc.ResumeFailed(ctx, req.ID)
		require.NoError(t, err)
		assert.False(t, resumed)
	})
}

func TestRequestService_ClaimNextPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	t.Run("returns nil when queue is empty", func(t *testing.T) {
		claimed, err := svc.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("claims oldest pending request", func(t *testing.T) {
		first := createTestRequest(t, client.Client)
		time.Sleep(10 * time.Millisecond)
		createTestRequest(t, client.Client)

		claimed, err := svc.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, request.StatusReconnaissance, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.LastHeartbeatAt)
		assert.NotNil(t, claimed.StartedAt)
	})

	t.Run("claimed request is not claimable again", func(t *testing.T) {
		// One request left from the previous subtest.
		claimed, err := svc.ClaimNextPending(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed)

		claimed, err = svc.ClaimNextPending(ctx, "pod-3")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
}

func TestRequestService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	createTestRequest(t, client.Client)
	claimed, err := svc.ClaimNextPending(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("refreshes heartbeat for the owning pod", func(t *testing.T) {
		before := *claimed.LastHeartbeatAt
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, svc.Heartbeat(ctx, claimed.ID, "pod-1"))

		got, err := svc.GetRequest(ctx, claimed.ID, GetRequestOptions{})
		require.NoError(t, err)
		require.NotNil(t, got.LastHeartbeatAt)
		assert.True(t, got.LastHeartbeatAt.After(before))
	})

	t.Run("rejects heartbeat from a non-owning pod", func(t *testing.T) {
		err := svc.Heartbeat(ctx, claimed.ID, "pod-99")
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("rejects heartbeat after terminal status", func(t *testing.T) {
		require.NoError(t, svc.MarkCompleted(ctx, claimed.ID, models.ResultSummary{}))
		err := svc.Heartbeat(ctx, claimed.ID, "pod-1")
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})
}

func TestRequestService_OrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	createTestRequest(t, client.Client)
	claimed, err := svc.ClaimNextPending(ctx, "pod-dead")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Simulate a worker that died a while ago.
	err = client.Request.UpdateOneID(claimed.ID).
		SetLastHeartbeatAt(time.Now().Add(-5 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	t.Run("finds requests with stale heartbeats", func(t *testing.T) {
		orphans, err := svc.FindOrphaned(ctx, time.Minute)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, claimed.ID, orphans[0].ID)
	})

	t.Run("fresh heartbeats are not orphans", func(t *testing.T) {
		orphans, err := svc.FindOrphaned(ctx, 10*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})

	t.Run("requeue returns request to pending and bumps counter", func(t *testing.T) {
		requeued, err := svc.RequeueOrphan(ctx, claimed.ID)
		require.NoError(t, err)
		assert.True(t, requeued)

		got, err := svc.GetRequest(ctx, claimed.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, got.Status)
		assert.Nil(t, got.PodID)
		assert.Nil(t, got.LastHeartbeatAt)
		assert.Equal(t, 1, got.RequeueCount)
	})

	t.Run("requeue is a no-op for non-active requests", func(t *testing.T) {
		requeued, err := svc.RequeueOrphan(ctx, claimed.ID)
		require.NoError(t, err)
		assert.False(t, requeued)
	})
}

func TestRequestService_OwnedTerminalWrites(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	t.Run("owning pod writes the terminal status", func(t *testing.T) {
		createTestRequest(t, client.Client)
		claimed, err := svc.ClaimNextPending(ctx, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)

		applied, err := svc.FailIfOwned(ctx, claimed.ID, "pod-a", models.CodeReconTimeout, "page load exceeded budget")
		require.NoError(t, err)
		assert.True(t, applied)

		got, err := svc.GetRequest(ctx, claimed.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusFailed, got.Status)
		assert.Nil(t, got.PodID)
	})

	t.Run("owning pod records the completion summary", func(t *testing.T) {
		createTestRequest(t, client.Client)
		claimed, err := svc.ClaimNextPending(ctx, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)

		applied, err := svc.CompleteIfOwned(ctx, claimed.ID, "pod-a", models.ResultSummary{TestsGenerated: 5, TestsValid: 4})
		require.NoError(t, err)
		assert.True(t, applied)

		got, err := svc.GetRequest(ctx, claimed.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusCompleted, got.Status)
		require.NotNil(t, got.ResultSummary)
		assert.EqualValues(t, 5, got.ResultSummary["tests_generated"])
	})

	t.Run("stale owner cannot overwrite a reassigned request", func(t *testing.T) {
		createTestRequest(t, client.Client)
		claimed, err := svc.ClaimNextPending(ctx, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)

		// Orphan recovery requeues the request and another pod claims it.
		requeued, err := svc.RequeueOrphan(ctx, claimed.ID)
		require.NoError(t, err)
		require.True(t, requeued)
		reclaimed, err := svc.ClaimNextPending(ctx, "pod-b")
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		require.Equal(t, claimed.ID, reclaimed.ID)

		applied, err := svc.CancelIfOwned(ctx, claimed.ID, "pod-a")
		require.NoError(t, err)
		assert.False(t, applied)

		applied, err = svc.CompleteIfOwned(ctx, claimed.ID, "pod-a", models.ResultSummary{})
		require.NoError(t, err)
		assert.False(t, applied)

		got, err := svc.GetRequest(ctx, claimed.ID, GetRequestOptions{})
		require.NoError(t, err)
		assert.Equal(t, request.StatusReconnaissance, got.Status, "new owner's in-flight state must survive")
		require.NotNil(t, got.PodID)
		assert.Equal(t, "pod-b", *got.PodID)
	})
}

func TestRequestService_CountActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRequestService(client.Client)
	ctx := context.Background()

	createTestRequest(t, client.Client)
	createTestRequest(t, client.Client)

	count, err := svc.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	claimed, err := svc.ClaimNextPending(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	count, err = svc.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
