// Package queue provides the database-backed request queue, the worker
// pool that drains it, and the four-stage pipeline executor.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRequestsAvailable indicates no pending requests are in the queue.
	ErrNoRequestsAvailable = errors.New("no requests available")

	// ErrAtCapacity indicates the global concurrent request limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Executor is the interface for request processing.
//
// The executor owns the stage pipeline internally:
//   - Runs reconnaissance, generation, validation and optimization in order
//   - Skips stages already recorded in the request's checkpoint
//   - Persists stage outputs and the checkpoint progressively during execution
//
// The worker only handles: claiming, heartbeat, terminal status update,
// and terminal event publication.
type Executor interface {
	Execute(ctx context.Context, req *ent.Request) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. Test cases,
// coverage, metrics and the checkpoint were already written to the DB by
// the executor during processing.
type ExecutionResult struct {
	Status    request.Status        // completed, failed, cancelled
	ErrorCode string                // stable code when failed/cancelled
	Err       error                 // error details (if failed/cancelled)
	Summary   *models.ResultSummary // set when completed
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRequests   int            `json:"active_requests"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentRequestID  string    `json:"current_request_id,omitempty"`
	RequestsProcessed int       `json:"requests_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
