// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes persisted Event rows past their TTL
//   - Removes checkpoints of long-finished requests
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config            *config.RetentionConfig
	eventService      *services.EventService
	checkpointService *services.CheckpointService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	eventService *services.EventService,
	checkpointService *services.CheckpointService,
) *Service {
	return &Service{
		config:            cfg,
		eventService:      eventService,
		checkpointService: checkpointService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupExpiredEvents(ctx)
	s.cleanupStaleCheckpoints(ctx)
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	count, err := s.eventService.CleanupOrphanedEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired events", "count", count)
	}
}

func (s *Service) cleanupStaleCheckpoints(_ context.Context) {
	count, err := s.checkpointService.CleanupTerminalCheckpoints(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: checkpoint cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed checkpoints of finished requests", "count", count)
	}
}
