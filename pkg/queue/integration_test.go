package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/services"
	testdb "github.com/qaforge/qaforge/test/database"
)

// stubExecutor returns a canned result, optionally blocking until the
// request context is cancelled.
type stubExecutor struct {
	mu       sync.Mutex
	executed []string
	block    bool
	result   *ExecutionResult
}

func (s *stubExecutor) Execute(ctx context.Context, req *ent.Request) *ExecutionResult {
	s.mu.Lock()
	s.executed = append(s.executed, req.ID)
	s.mu.Unlock()

	if s.block {
		<-ctx.Done()
		return &ExecutionResult{
			Status:    request.StatusCancelled,
			ErrorCode: models.CodeCancelled,
			Err:       ctx.Err(),
		}
	}
	if s.result != nil {
		return s.result
	}
	return &ExecutionResult{
		Status:  request.StatusCompleted,
		Summary: &models.ResultSummary{TestsGenerated: 3, TestsValid: 3},
	}
}

func (s *stubExecutor) executedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.executed...)
}

// intTestQueueConfig returns a queue config tightened for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentRequests:   10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Second,
		MaxRequeues:             2,
	}
}

// createPendingRequest persists a pending UI request for pool tests.
func createPendingRequest(ctx context.Context, t *testing.T, client *ent.Client) *ent.Request {
	t.Helper()
	req, err := services.NewRequestService(client).CreateRequest(ctx, models.CreateRequestInput{
		RequestID:    newRequestID(),
		RequestType:  models.RequestTypeUI,
		URL:          "https://shop.example.com/checkout",
		Requirements: []string{"Checkout succeeds with a valid card"},
	})
	require.NoError(t, err)
	return req
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func TestPoolProcessesPendingRequests(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	reqs := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		r := createPendingRequest(ctx, t, client.Client)
		reqs[r.ID] = struct{}{}
	}

	exec := &stubExecutor{}
	pool := NewWorkerPool("test-pod", client.Client, intTestQueueConfig(), exec, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "requests should complete", func() bool {
		n, err := client.Request.Query().Where(request.StatusEQ(request.StatusCompleted)).Count(ctx)
		return err == nil && n == len(reqs)
	})

	// Every request ran exactly once
	executed := exec.executedIDs()
	assert.Len(t, executed, len(reqs))
	for _, id := range executed {
		_, ok := reqs[id]
		assert.True(t, ok, "unexpected request executed: %s", id)
	}

	// Completed rows carry the summary and release the pod
	for id := range reqs {
		row, err := client.Request.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, request.StatusCompleted, row.Status)
		assert.Nil(t, row.PodID)
		require.NotNil(t, row.CompletedAt)
		assert.EqualValues(t, 3, row.ResultSummary["tests_generated"])
	}
}

func TestPoolWritesFailureOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	req := createPendingRequest(ctx, t, client.Client)

	exec := &stubExecutor{result: &ExecutionResult{
		Status:    request.StatusFailed,
		ErrorCode: models.CodeLLMUnavailable,
		Err:       context.DeadlineExceeded,
	}}
	pool := NewWorkerPool("test-pod", client.Client, intTestQueueConfig(), exec, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "request should fail", func() bool {
		row, err := client.Request.Get(ctx, req.ID)
		return err == nil && row.Status == request.StatusFailed
	})

	row, err := client.Request.Get(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, row.ErrorCode)
	assert.Equal(t, models.CodeLLMUnavailable, *row.ErrorCode)
	require.NotNil(t, row.CompletedAt)
}

func TestPoolCancelInFlightRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	req := createPendingRequest(ctx, t, client.Client)

	exec := &stubExecutor{block: true}
	pool := NewWorkerPool("test-pod", client.Client, intTestQueueConfig(), exec, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// Wait until a worker picks it up and registers the cancel func
	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "request should be claimed", func() bool {
		return pool.CancelRequest(req.ID)
	})

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "request should be cancelled", func() bool {
		row, err := client.Request.Get(ctx, req.ID)
		return err == nil && row.Status == request.StatusCancelled
	})

	row, err := client.Request.Get(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, row.ErrorCode)
	assert.Equal(t, models.CodeCancelled, *row.ErrorCode)
}

func TestPoolOrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := services.NewRequestService(client.Client)

	// Simulate a request claimed by a pod that died: in-flight status
	// with a stale heartbeat.
	req := createPendingRequest(ctx, t, client.Client)
	claimed, err := svc.ClaimNextPending(ctx, "dead-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, req.ID, claimed.ID)

	stale := time.Now().Add(-5 * time.Minute)
	_, err = client.Request.UpdateOneID(req.ID).SetLastHeartbeatAt(stale).Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("recovery-pod", client.Client, intTestQueueConfig(), &stubExecutor{}, nil)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	row, err := client.Request.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, row.Status, "orphan should be re-queued, not failed")
	assert.Equal(t, 1, row.RequeueCount)
	assert.Nil(t, row.PodID)
	assert.Nil(t, row.LastHeartbeatAt)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestPoolOrphanExhaustsRequeues(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := services.NewRequestService(client.Client)
	cfg := intTestQueueConfig()

	req := createPendingRequest(ctx, t, client.Client)
	claimed, err := svc.ClaimNextPending(ctx, "dead-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Already at the requeue limit with a stale heartbeat
	stale := time.Now().Add(-5 * time.Minute)
	_, err = client.Request.UpdateOneID(req.ID).
		SetLastHeartbeatAt(stale).
		SetRequeueCount(cfg.MaxRequeues).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("recovery-pod", client.Client, cfg, &stubExecutor{}, nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	row, err := client.Request.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorCode)
	assert.Equal(t, models.CodeInternal, *row.ErrorCode)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	svc := services.NewRequestService(client.Client)
	cfg := intTestQueueConfig()

	// One request owned by the restarting pod, one by another pod
	mine := createPendingRequest(ctx, t, client.Client)
	claimedMine, err := svc.ClaimNextPending(ctx, "restarting-pod")
	require.NoError(t, err)
	require.Equal(t, mine.ID, claimedMine.ID)

	other := createPendingRequest(ctx, t, client.Client)
	claimedOther, err := svc.ClaimNextPending(ctx, "other-pod")
	require.NoError(t, err)
	require.Equal(t, other.ID, claimedOther.ID)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, cfg, "restarting-pod"))

	// The restarting pod's request is back in the queue
	row, err := client.Request.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, row.Status)
	assert.Equal(t, 1, row.RequeueCount)

	// The other pod's request is untouched
	row, err = client.Request.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusReconnaissance, row.Status)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "other-pod", *row.PodID)
}

func TestPoolHealth(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createPendingRequest(ctx, t, client.Client)

	pool := NewWorkerPool("health-pod", client.Client, intTestQueueConfig(), &stubExecutor{}, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "pending request should drain", func() bool {
		h := pool.Health()
		return h.QueueDepth == 0 && h.ActiveRequests == 0
	})

	h := pool.Health()
	assert.True(t, h.IsHealthy)
	assert.True(t, h.DBReachable)
	assert.Equal(t, "health-pod", h.PodID)
	assert.Equal(t, 2, h.TotalWorkers)
	assert.Len(t, h.WorkerStats, 2)
}
