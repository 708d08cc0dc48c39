package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/events"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes requests.
type Worker struct {
	id             string
	podID          string
	requestService *services.RequestService
	config         *config.QueueConfig
	executor       Executor
	publisher      *events.EventPublisher
	pool           RequestRegistry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentRequestID  string
	requestsProcessed int
	lastActivity      time.Time
}

// RequestRegistry is the subset of WorkerPool used by Worker for request registration.
type RequestRegistry interface {
	RegisterRequest(requestID string, cancel context.CancelFunc)
	UnregisterRequest(requestID string)
}

// NewWorker creates a new queue worker.
// publisher may be nil (streaming disabled).
func NewWorker(id, podID string, requestService *services.RequestService, cfg *config.QueueConfig, executor Executor, pool RequestRegistry, publisher *events.EventPublisher) *Worker {
	return &Worker{
		id:             id,
		podID:          podID,
		requestService: requestService,
		config:         cfg,
		executor:       executor,
		publisher:      publisher,
		pool:           pool,
		stopCh:         make(chan struct{}),
		status:         WorkerStatusIdle,
		lastActivity:   time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentRequestID:  w.currentRequestID,
		RequestsProcessed: w.requestsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRequestsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing request", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a request, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.requestService.CountActive(ctx)
	if err != nil {
		return fmt.Errorf("checking active requests: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRequests {
		return ErrAtCapacity
	}

	// 2. Claim next request
	req, err := w.requestService.ClaimNextPending(ctx, w.podID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrNoRequestsAvailable
	}

	log := slog.With("request_id", req.ID, "worker_id", w.id)
	log.Info("Request claimed")

	w.setStatus(WorkerStatusWorking, req.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create the request context. There is no overall request timeout;
	//    each stage enforces its own budget inside the executor.
	reqCtx, cancelRequest := context.WithCancel(ctx)
	defer cancelRequest()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterRequest(req.ID, cancelRequest)
	defer w.pool.UnregisterRequest(req.ID)

	// 5. Start heartbeat. Losing ownership (orphan recovery reassigned the
	//    request) cancels the request context.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(reqCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, req.ID, cancelRequest)

	// 6. Execute the pipeline
	result := w.executor.Execute(reqCtx, req)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		if errors.Is(reqCtx.Err(), context.Canceled) {
			result = &ExecutionResult{
				Status:    request.StatusCancelled,
				ErrorCode: models.CodeCancelled,
				Err:       context.Canceled,
			}
		} else {
			result = &ExecutionResult{
				Status:    request.StatusFailed,
				ErrorCode: models.CodeInternal,
				Err:       fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Stop heartbeat before the terminal write
	cancelHeartbeat()

	// 8. Update terminal status (use background context — request ctx may be cancelled)
	applied, err := w.updateTerminalStatus(context.Background(), req.ID, result)
	if err != nil {
		log.Error("Failed to update request terminal status", "error", err)
		return err
	}

	// 9. Publish terminal events. Skipped when ownership was lost: the
	//    request was requeued and its new owner reports the outcome.
	if applied {
		w.publishTerminal(context.Background(), req.ID, result)
	} else {
		log.Warn("Request ownership lost, terminal status not written", "status", result.Status)
	}

	w.mu.Lock()
	w.requestsProcessed++
	w.mu.Unlock()

	log.Info("Request processing complete", "status", result.Status)
	return nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
// When the heartbeat reports lost ownership, the request context is cancelled
// so the executor stops doing work another pod may have picked up.
func (w *Worker) runHeartbeat(ctx context.Context, requestID string, cancelRequest context.CancelFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.requestService.Heartbeat(ctx, requestID, w.podID)
			if err == nil {
				continue
			}
			if errors.Is(err, services.ErrConcurrentModification) {
				slog.Warn("Lost request ownership, cancelling execution",
					"request_id", requestID, "worker_id", w.id)
				cancelRequest()
				return
			}
			slog.Warn("Heartbeat update failed", "request_id", requestID, "error", err)
		}
	}
}

// updateTerminalStatus writes the final request status, conditional on this
// pod still owning the request. Returns false when the write did not apply
// because orphan recovery reassigned the request in the meantime.
func (w *Worker) updateTerminalStatus(ctx context.Context, requestID string, result *ExecutionResult) (bool, error) {
	switch result.Status {
	case request.StatusCompleted:
		var summary models.ResultSummary
		if result.Summary != nil {
			summary = *result.Summary
		}
		return w.requestService.CompleteIfOwned(ctx, requestID, w.podID, summary)
	case request.StatusCancelled:
		return w.requestService.CancelIfOwned(ctx, requestID, w.podID)
	default:
		code := result.ErrorCode
		if code == "" {
			code = models.CodeInternal
		}
		var msg string
		if result.Err != nil {
			msg = result.Err.Error()
		}
		return w.requestService.FailIfOwned(ctx, requestID, w.podID, code, msg)
	}
}

// publishTerminal publishes request.status plus request.completed or
// request.error. Best effort: failures are logged, not returned.
func (w *Worker) publishTerminal(ctx context.Context, requestID string, result *ExecutionResult) {
	if w.publisher == nil {
		return
	}

	now := time.Now().Format(time.RFC3339Nano)

	if err := w.publisher.PublishRequestStatus(ctx, requestID, events.RequestStatusPayload{
		Type:      events.EventTypeRequestStatus,
		RequestID: requestID,
		Status:    string(result.Status),
		Timestamp: now,
	}); err != nil {
		slog.Warn("Failed to publish request status",
			"request_id", requestID, "status", result.Status, "error", err)
	}

	switch result.Status {
	case request.StatusCompleted:
		err := w.publisher.PublishRequestCompleted(ctx, requestID, events.RequestCompletedPayload{
			Type:      events.EventTypeRequestCompleted,
			RequestID: requestID,
			Summary:   result.Summary,
			Timestamp: now,
		})
		if err != nil {
			slog.Warn("Failed to publish request completed event",
				"request_id", requestID, "error", err)
		}
	default:
		var msg string
		if result.Err != nil {
			msg = result.Err.Error()
		}
		err := w.publisher.PublishRequestError(ctx, requestID, events.RequestErrorPayload{
			Type:         events.EventTypeRequestError,
			RequestID:    requestID,
			Status:       string(result.Status),
			ErrorCode:    result.ErrorCode,
			ErrorMessage: msg,
			Timestamp:    now,
		})
		if err != nil {
			slog.Warn("Failed to publish request error event",
				"request_id", requestID, "error", err)
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, requestID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRequestID = requestID
	w.lastActivity = time.Now()
}
