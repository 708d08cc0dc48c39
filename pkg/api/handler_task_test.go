package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/services"
)

func TestGetTask(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tasks/no-such-id", nil)
		assertErrorCode(t, w, http.StatusNotFound, codeNotFound)
	})

	t.Run("returns the task status", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)

		w := doJSON(t, srv, http.MethodGet, "/api/v1/tasks/"+id, nil)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[TaskResponse](t, w)
		assert.Equal(t, id, resp.RequestID)
		assert.Equal(t, "ui", resp.RequestType)
		assert.Equal(t, "pending", resp.Status)
		require.NotNil(t, resp.URL)
		assert.Equal(t, "https://shop.example.com/checkout", *resp.URL)
		assert.Nil(t, resp.Tests)
		assert.Nil(t, resp.Metrics)
	})

	t.Run("includes tests and metrics on request", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)

		_, err := services.NewTestCaseService(client.Client).CreateTestCases(ctx, id, []models.NewTestCase{
			{Name: "test_checkout_positive", Code: "def test_checkout_positive():\n    assert True\n",
				TestType: "positive", Score: 95, Valid: true},
		})
		require.NoError(t, err)

		_, err = services.NewMetricService(client.Client).RecordStageMetric(ctx, id, models.StageMetric{
			Stage: models.StageGeneration, Attempt: 1, Status: "success", DurationMS: 1200,
		})
		require.NoError(t, err)

		w := doJSON(t, srv, http.MethodGet, "/api/v1/tasks/"+id+"?include_tests&include_metrics", nil)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[TaskResponse](t, w)
		require.Len(t, resp.Tests, 1)
		assert.Equal(t, "test_checkout_positive", resp.Tests[0].Name)
		require.Len(t, resp.Metrics, 1)
	})
}

func TestResumeTask(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()
	requests := services.NewRequestService(client.Client)
	checkpoints := services.NewCheckpointService(client.Client)

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/no-such-id/resume", nil)
		assertErrorCode(t, w, http.StatusNotFound, codeNotFound)
	})

	t.Run("rejects a non-failed request", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/"+id+"/resume", nil)
		assertErrorCode(t, w, http.StatusConflict, codeConflict)
	})

	t.Run("re-queues a failed request", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		require.NoError(t, requests.MarkFailed(ctx, id, models.CodeLLMUnavailable, "upstream down"))

		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/"+id+"/resume", nil)

		require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[AcceptedResponse](t, w)
		assert.Equal(t, "pending", resp.Status)

		row, err := client.Request.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, request.StatusPending, row.Status)
		assert.Nil(t, row.ErrorCode)
		assert.Nil(t, row.CompletedAt)
	})

	t.Run("preserves a decodable checkpoint", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		_, err := checkpoints.SaveCheckpoint(ctx, id, 1, map[string]interface{}{
			"completed_stages": []interface{}{"reconnaissance"},
		})
		require.NoError(t, err)
		require.NoError(t, requests.MarkFailed(ctx, id, models.CodeLLMUnavailable, "upstream down"))

		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/"+id+"/resume", nil)

		require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())
		_, err = checkpoints.GetCheckpoint(ctx, id)
		assert.NoError(t, err, "checkpoint must survive resume")
	})

	t.Run("rejects an undecodable checkpoint", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		_, err := checkpoints.SaveCheckpoint(ctx, id, 99, map[string]interface{}{})
		require.NoError(t, err)
		require.NoError(t, requests.MarkFailed(ctx, id, models.CodeInternal, "boom"))

		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/"+id+"/resume", nil)

		assertErrorCode(t, w, http.StatusUnprocessableEntity, models.CodeCheckpointCorrupt)

		row, err := client.Request.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, request.StatusFailed, row.Status, "corrupt checkpoint must not re-queue")
	})
}

func TestCancelTask(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()
	requests := services.NewRequestService(client.Client)

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/no-such-id/cancel", nil)
		assertErrorCode(t, w, http.StatusNotFound, codeNotFound)
	})

	t.Run("cancels a pending request directly", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)

		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/"+id+"/cancel", nil)

		require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())

		row, err := client.Request.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, request.StatusCancelled, row.Status)
		require.NotNil(t, row.ErrorCode)
		assert.Equal(t, models.CodeCancelled, *row.ErrorCode)
	})

	t.Run("rejects an already finished request", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		require.NoError(t, requests.MarkCompleted(ctx, id, models.ResultSummary{TestsGenerated: 1}))

		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/"+id+"/cancel", nil)
		assertErrorCode(t, w, http.StatusConflict, codeConflict)
	})

	t.Run("signals an in-flight request through the pool", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		claimed, err := requests.ClaimNextPending(ctx, "api-test-pod")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, id, claimed.ID)

		signalled := make(chan struct{})
		cancelCtx, cancel := context.WithCancel(ctx)
		srv.pool.RegisterRequest(id, func() {
			cancel()
			close(signalled)
		})
		defer srv.pool.UnregisterRequest(id)

		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/"+id+"/cancel", nil)

		require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())
		select {
		case <-signalled:
		case <-time.After(time.Second):
			t.Fatal("cancel was not delivered to the pool")
		}
		assert.Error(t, cancelCtx.Err())
	})

	t.Run("rejects a request claimed by another pod", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		claimed, err := requests.ClaimNextPending(ctx, "other-pod")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, id, claimed.ID)

		w := doJSON(t, srv, http.MethodPost, "/api/v1/tasks/"+id+"/cancel", nil)
		assertErrorCode(t, w, http.StatusConflict, codeConflict)
	})
}

func TestStreamTask(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tasks/no-such-id/stream", nil)
		assertErrorCode(t, w, http.StatusNotFound, codeNotFound)
	})

	t.Run("sends the current status on join", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)

		streamCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
		defer cancel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+id+"/stream", nil).
			WithContext(streamCtx)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "event: progress")
		assert.Contains(t, body, `"type":"request.status"`)
		assert.Contains(t, body, `"status":"pending"`)
	})

	t.Run("closes immediately for a completed request", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		requests := services.NewRequestService(client.Client)
		require.NoError(t, requests.MarkCompleted(ctx, id, models.ResultSummary{TestsGenerated: 3}))

		streamCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+id+"/stream", nil).
			WithContext(streamCtx)
		w := httptest.NewRecorder()

		start := time.Now()
		srv.Router().ServeHTTP(w, req)
		assert.Less(t, time.Since(start), time.Second, "terminal requests must not hold the stream open")

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "event: completed")
		assert.Contains(t, body, `"type":"request.completed"`)
		assert.Contains(t, body, `"summary"`)
	})

	t.Run("closes immediately for a failed request", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		requests := services.NewRequestService(client.Client)
		require.NoError(t, requests.MarkFailed(ctx, id, models.CodeLLMUnavailable, "upstream down"))

		streamCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+id+"/stream", nil).
			WithContext(streamCtx)
		w := httptest.NewRecorder()

		start := time.Now()
		srv.Router().ServeHTTP(w, req)
		assert.Less(t, time.Since(start), time.Second)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "event: error")
		assert.Contains(t, body, `"type":"request.error"`)
		assert.Contains(t, body, `"status":"failed"`)
		assert.Contains(t, body, `"error_code":"`+models.CodeLLMUnavailable+`"`)
	})

	t.Run("replays persisted events from Last-Event-ID", func(t *testing.T) {
		id := createUIRequest(ctx, t, srv)
		eventService := services.NewEventService(client.Client)
		channel := "request:" + id

		// The client saw the first event, then disconnected.
		seen, err := eventService.CreateEvent(ctx, id, channel, map[string]interface{}{
			"type": "request.status", "request_id": id, "status": "reconnaissance",
		})
		require.NoError(t, err)
		_, err = eventService.CreateEvent(ctx, id, channel, map[string]interface{}{
			"type": "stage.status", "request_id": id, "stage": "reconnaissance", "status": "completed",
		})
		require.NoError(t, err)
		_, err = eventService.CreateEvent(ctx, id, channel, map[string]interface{}{
			"type": "request.completed", "request_id": id,
		})
		require.NoError(t, err)

		streamCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
		defer cancel()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+id+"/stream", nil).
			WithContext(streamCtx)
		req.Header.Set("Last-Event-ID", strconv.FormatInt(seen.ID, 10))
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "event: progress")
		assert.Contains(t, body, "event: completed")
		assert.Contains(t, body, `"stage":"reconnaissance"`)
		assert.NotContains(t, body, `"status":"reconnaissance"`, "events at or before Last-Event-ID are not replayed")
	})
}
