package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/events"
	"github.com/qaforge/qaforge/pkg/services"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID          string
	requestService *services.RequestService
	config         *config.QueueConfig
	executor       Executor
	publisher      *events.EventPublisher
	workers        []*Worker
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// Request cancel registry: request_id → cancel function
	activeRequests map[string]context.CancelFunc
	mu             sync.RWMutex
	started        bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
// publisher may be nil (streaming disabled).
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor Executor, publisher *events.EventPublisher) *WorkerPool {
	return &WorkerPool{
		podID:          podID,
		requestService: services.NewRequestService(client),
		config:         cfg,
		executor:       executor,
		publisher:      publisher,
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		stopCh:         make(chan struct{}),
		activeRequests: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.requestService, p.config, p.executor, p, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current requests before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveRequestIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active requests to complete",
			"count", len(active),
			"request_ids", active)
	}

	// Signal all workers to stop (they finish current requests)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterRequest stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterRequest(requestID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRequests[requestID] = cancel
}

// UnregisterRequest removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterRequest(requestID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRequests, requestID)
}

// CancelRequest triggers context cancellation for a request on this pod.
// Returns true if the request was found and cancelled on this pod.
func (p *WorkerPool) CancelRequest(requestID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeRequests[requestID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.requestService.CountPending(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeRequests, errA := p.requestService.CountActiveForPod(ctx, p.podID)
	if errA != nil {
		slog.Error("Failed to query active requests for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeRequests <= p.config.MaxConcurrentRequests && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active requests query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveRequests:   activeRequests,
		MaxConcurrent:    p.config.MaxConcurrentRequests,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveRequestIDs returns IDs of currently processing requests (for logging).
func (p *WorkerPool) getActiveRequestIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeRequests))
	for id := range p.activeRequests {
		ids = append(ids, id)
	}
	return ids
}
