package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/pkg/models"
	testdb "github.com/qaforge/qaforge/test/database"
)

func TestMetricService_RecordStageMetric(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMetricService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	t.Run("records a stage attempt", func(t *testing.T) {
		metric, err := svc.RecordStageMetric(ctx, req.ID, models.StageMetric{
			Stage:            models.StageReconnaissance,
			Attempt:          1,
			Status:           "success",
			DurationMS:       4321,
			TokensPrompt:     1200,
			TokensCompletion: 300,
			TokensTotal:      1500,
			Model:            "gpt-4o",
		})
		require.NoError(t, err)
		assert.Equal(t, generationmetric.StageReconnaissance, metric.Stage)
		assert.Equal(t, generationmetric.StatusSuccess, metric.Status)
		assert.Equal(t, 1500, metric.TokensTotal)
		assert.Nil(t, metric.ErrorCode)
	})

	t.Run("records retry attempts separately", func(t *testing.T) {
		_, err := svc.RecordStageMetric(ctx, req.ID, models.StageMetric{
			Stage:      models.StageGeneration,
			Attempt:    1,
			Status:     "retry",
			DurationMS: 100,
			ErrorCode:  models.CodeLLMUnavailable,
		})
		require.NoError(t, err)

		metric, err := svc.RecordStageMetric(ctx, req.ID, models.StageMetric{
			Stage:      models.StageGeneration,
			Attempt:    2,
			Status:     "success",
			DurationMS: 2000,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, metric.Attempt)
	})

	t.Run("rejects duplicate attempt", func(t *testing.T) {
		_, err := svc.RecordStageMetric(ctx, req.ID, models.StageMetric{
			Stage:      models.StageGeneration,
			Attempt:    2,
			Status:     "failed",
			DurationMS: 1,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects unknown stage", func(t *testing.T) {
		_, err := svc.RecordStageMetric(ctx, req.ID, models.StageMetric{
			Stage:   models.Stage("deploy"),
			Attempt: 1,
			Status:  "success",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.RecordStageMetric(ctx, req.ID, models.StageMetric{
			Stage:   models.StageValidation,
			Attempt: 1,
			Status:  "maybe",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestMetricService_GetMetricsForRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMetricService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)
	other := createTestRequest(t, client.Client)

	for _, m := range []models.StageMetric{
		{Stage: models.StageReconnaissance, Attempt: 1, Status: "success", DurationMS: 100},
		{Stage: models.StageGeneration, Attempt: 1, Status: "retry", DurationMS: 50, ErrorCode: models.CodeLLMUnavailable},
		{Stage: models.StageGeneration, Attempt: 2, Status: "success", DurationMS: 400},
	} {
		_, err := svc.RecordStageMetric(ctx, req.ID, m)
		require.NoError(t, err)
	}
	_, err := svc.RecordStageMetric(ctx, other.ID, models.StageMetric{
		Stage: models.StageReconnaissance, Attempt: 1, Status: "success", DurationMS: 10,
	})
	require.NoError(t, err)

	metrics, err := svc.GetMetricsForRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, metrics, 3)
	assert.Equal(t, generationmetric.StageReconnaissance, metrics[0].Stage)
	assert.Equal(t, 1, metrics[1].Attempt)
	assert.Equal(t, 2, metrics[2].Attempt)
}
