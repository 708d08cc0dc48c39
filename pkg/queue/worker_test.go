package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRequests:   10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         1 * time.Minute,
		MaxRequeues:             2,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentRequestID)
	assert.Equal(t, 0, h.RequestsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "req-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "req-abc", h.CurrentRequestID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentRequestID)
}

func TestExecutionResult(t *testing.T) {
	result := &ExecutionResult{
		Status: request.StatusCompleted,
		Summary: &models.ResultSummary{
			TestsGenerated: 8,
			TestsValid:     6,
		},
	}
	assert.Equal(t, request.StatusCompleted, result.Status)
	assert.Equal(t, 8, result.Summary.TestsGenerated)
	assert.Nil(t, result.Err)
}
