package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/pkg/models"
)

// MetricService records per-stage pipeline metrics. One row per stage
// attempt, so retries are visible in the history.
type MetricService struct {
	client *ent.Client
}

// NewMetricService creates a new MetricService
func NewMetricService(client *ent.Client) *MetricService {
	return &MetricService{client: client}
}

// RecordStageMetric persists one stage attempt. The (request_id, stage,
// attempt) unique constraint maps to ErrAlreadyExists.
func (s *MetricService) RecordStageMetric(httpCtx context.Context, requestID string, m models.StageMetric) (*ent.GenerationMetric, error) {
	if requestID == "" {
		return nil, NewValidationError("request_id", "request_id is required")
	}
	if m.Stage.Index() < 0 {
		return nil, NewValidationError("stage", fmt.Sprintf("unknown stage: %s", m.Stage))
	}
	switch m.Status {
	case "success", "retry", "failed":
	default:
		return nil, NewValidationError("status", fmt.Sprintf("unknown metric status: %s", m.Status))
	}
	if m.Attempt < 1 {
		return nil, NewValidationError("attempt", "attempt must be >= 1")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.GenerationMetric.Create().
		SetID(uuid.New().String()).
		SetRequestID(requestID).
		SetStage(generationmetric.Stage(m.Stage)).
		SetAttempt(m.Attempt).
		SetStatus(generationmetric.Status(m.Status)).
		SetDurationMs(m.DurationMS).
		SetTokensPrompt(m.TokensPrompt).
		SetTokensCompletion(m.TokensCompletion).
		SetTokensTotal(m.TokensTotal).
		SetCreatedAt(time.Now())
	if m.Model != "" {
		create = create.SetModel(m.Model)
	}
	if m.ErrorCode != "" {
		create = create.SetErrorCode(m.ErrorCode)
	}

	metric, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record stage metric: %w", err)
	}

	return metric, nil
}

// GetMetricsForRequest returns all stage metrics for a request in
// pipeline order, attempts ascending within a stage.
func (s *MetricService) GetMetricsForRequest(ctx context.Context, requestID string) ([]*ent.GenerationMetric, error) {
	metrics, err := s.client.GenerationMetric.Query().
		Where(generationmetric.RequestIDEQ(requestID)).
		Order(ent.Asc(generationmetric.FieldCreatedAt), ent.Asc(generationmetric.FieldAttempt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}

	return metrics, nil
}
