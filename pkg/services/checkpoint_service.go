package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/checkpoint"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/models"
)

// CheckpointService persists pipeline checkpoints. At most one checkpoint
// exists per request; it is rewritten after every completed stage so a
// resumed request can skip the stages it already finished.
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{client: client}
}

// SaveCheckpoint upserts a request's checkpoint
func (s *CheckpointService) SaveCheckpoint(httpCtx context.Context, requestID string, version int, payload map[string]interface{}) (*ent.Checkpoint, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	cp, err := upsertCheckpoint(writeCtx, tx, requestID, version, payload)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkpoint: %w", err)
	}

	return cp, nil
}

// SaveCheckpointAndStatus upserts the checkpoint and advances the request
// status in one transaction. A crash between stages therefore never leaves
// the status pointing past the last durable checkpoint.
func (s *CheckpointService) SaveCheckpointAndStatus(httpCtx context.Context, requestID string, status request.Status, version int, payload map[string]interface{}) (*ent.Checkpoint, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	cp, err := upsertCheckpoint(writeCtx, tx, requestID, version, payload)
	if err != nil {
		return nil, err
	}

	update := tx.Request.UpdateOneID(requestID).
		SetStatus(status)
	if models.IsTerminalStatus(string(status)) {
		update = update.SetCompletedAt(time.Now())
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkpoint and status: %w", err)
	}

	return cp, nil
}

// upsertCheckpoint creates or rewrites the checkpoint row inside tx.
// The unique request_id constraint plus the transaction make the
// query-then-write race-free for a single owning worker.
func upsertCheckpoint(ctx context.Context, tx *ent.Tx, requestID string, version int, payload map[string]interface{}) (*ent.Checkpoint, error) {
	existing, err := tx.Checkpoint.Query().
		Where(checkpoint.RequestIDEQ(requestID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query checkpoint: %w", err)
		}

		cp, err := tx.Checkpoint.Create().
			SetID(uuid.New().String()).
			SetRequestID(requestID).
			SetVersion(version).
			SetPayload(payload).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Request row is gone — checkpoint has nothing to attach to.
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to create checkpoint: %w", err)
		}
		return cp, nil
	}

	cp, err := tx.Checkpoint.UpdateOneID(existing.ID).
		SetVersion(version).
		SetPayload(payload).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update checkpoint: %w", err)
	}
	return cp, nil
}

// GetCheckpoint retrieves a request's checkpoint
func (s *CheckpointService) GetCheckpoint(ctx context.Context, requestID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.RequestIDEQ(requestID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	return cp, nil
}

// CleanupTerminalCheckpoints removes checkpoints of requests that reached
// completed or cancelled more than olderThan ago. Failed requests keep
// theirs so a resume can pick up where the pipeline stopped.
func (s *CheckpointService) CleanupTerminalCheckpoints(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Checkpoint.Delete().
		Where(checkpoint.HasRequestWith(
			request.StatusIn(request.StatusCompleted, request.StatusCancelled),
			request.CompletedAtLT(cutoff),
		)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup terminal checkpoints: %w", err)
	}

	return count, nil
}

// DeleteCheckpoint removes a request's checkpoint. Missing is not an error.
func (s *CheckpointService) DeleteCheckpoint(ctx context.Context, requestID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Checkpoint.Delete().
		Where(checkpoint.RequestIDEQ(requestID)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}

	return nil
}
