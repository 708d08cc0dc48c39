package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/pkg/models"
	testdb "github.com/qaforge/qaforge/test/database"
)

func TestCoverageService_ReplaceCoverage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCoverageService(client.Client)
	ctx := context.Background()

	req := createTestRequest(t, client.Client)

	t.Run("persists coverage rows", func(t *testing.T) {
		rows, err := svc.ReplaceCoverage(ctx, req.ID, []models.CoverageRow{
			{Requirement: "User can log in", Covered: true, CoveredBy: []string{"tc-1", "tc-2"}, Quality: "good"},
			{Requirement: "User can reset password", Covered: false, Quality: "none"},
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, coverageanalysis.QualityGood, rows[0].Quality)
		assert.Equal(t, []string{"tc-1", "tc-2"}, rows[0].CoveredBy)
	})

	t.Run("replaces previous rows on re-run", func(t *testing.T) {
		_, err := svc.ReplaceCoverage(ctx, req.ID, []models.CoverageRow{
			{Requirement: "User can log in", Covered: true, CoveredBy: []string{"tc-1"}, Quality: "weak"},
		})
		require.NoError(t, err)

		rows, err := svc.GetCoverageForRequest(ctx, req.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, coverageanalysis.QualityWeak, rows[0].Quality)
	})

	t.Run("rejects unknown quality", func(t *testing.T) {
		_, err := svc.ReplaceCoverage(ctx, req.ID, []models.CoverageRow{
			{Requirement: "something", Quality: "excellent"},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty set clears coverage", func(t *testing.T) {
		_, err := svc.ReplaceCoverage(ctx, req.ID, nil)
		require.NoError(t, err)

		rows, err := svc.GetCoverageForRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
