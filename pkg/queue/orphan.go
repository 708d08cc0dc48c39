package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned requests.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in-flight requests with stale heartbeats
// and re-queues them. The checkpoint survives, so a re-queued request
// resumes from its last completed stage on another worker. A request that
// keeps orphaning (requeue_count at the limit) is failed instead.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.requestService.FindOrphaned(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned requests: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned requests", "count", len(orphans))

	recovered := 0
	for _, req := range orphans {
		if err := p.recoverOrphanedRequest(ctx, req); err != nil {
			slog.Error("Failed to recover orphaned request",
				"request_id", req.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRequest re-queues or fails a single orphaned request.
func (p *WorkerPool) recoverOrphanedRequest(ctx context.Context, req *ent.Request) error {
	log := slog.With("request_id", req.ID, "old_pod_id", req.PodID)

	lastHeartbeat := "unknown"
	if req.LastHeartbeatAt != nil {
		lastHeartbeat = req.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if req.PodID != nil {
		podID = *req.PodID
	}

	if req.RequeueCount >= p.config.MaxRequeues {
		msg := fmt.Sprintf("Orphaned %d times: no heartbeat from pod %s since %s",
			req.RequeueCount+1, podID, lastHeartbeat)
		if err := p.requestService.MarkFailed(ctx, req.ID, models.CodeInternal, msg); err != nil {
			return fmt.Errorf("failed to fail exhausted orphan: %w", err)
		}
		log.Warn("Orphaned request failed after exhausting requeues",
			"requeue_count", req.RequeueCount, "last_heartbeat", lastHeartbeat)
		return nil
	}

	requeued, err := p.requestService.RequeueOrphan(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to requeue orphan: %w", err)
	}
	if !requeued {
		// The original worker finished or another pod recovered it first.
		log.Info("Orphaned request already recovered elsewhere")
		return nil
	}

	log.Warn("Orphaned request re-queued", "last_heartbeat", lastHeartbeat,
		"requeue_count", req.RequeueCount+1)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of requests owned by this
// pod that were in-flight when the pod previously crashed. They are re-queued
// (or failed once out of requeues) before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, cfg *config.QueueConfig, podID string) error {
	requestService := services.NewRequestService(client)

	orphans, err := requestService.FindOwnedBy(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, req := range orphans {
		if req.RequeueCount >= cfg.MaxRequeues {
			msg := fmt.Sprintf("Orphaned: pod %s restarted while the request was in flight", podID)
			if err := requestService.MarkFailed(ctx, req.ID, models.CodeInternal, msg); err != nil {
				slog.Error("Failed to fail startup orphan", "request_id", req.ID, "error", err)
			}
			continue
		}

		if _, err := requestService.RequeueOrphan(ctx, req.ID); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"request_id", req.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan re-queued", "request_id", req.ID)
	}

	return nil
}
