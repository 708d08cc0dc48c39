package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/pkg/models"
)

// CoverageService persists per-requirement coverage produced by the
// optimization stage.
type CoverageService struct {
	client *ent.Client
}

// NewCoverageService creates a new CoverageService
func NewCoverageService(client *ent.Client) *CoverageService {
	return &CoverageService{client: client}
}

// ReplaceCoverage replaces a request's coverage rows in one transaction.
// A resumed pipeline re-runs optimization, so the previous rows go away.
func (s *CoverageService) ReplaceCoverage(httpCtx context.Context, requestID string, rows []models.CoverageRow) ([]*ent.CoverageAnalysis, error) {
	if requestID == "" {
		return nil, NewValidationError("request_id", "request_id is required")
	}
	for i, row := range rows {
		if row.Requirement == "" {
			return nil, NewValidationError("requirement", fmt.Sprintf("row %d has no requirement", i))
		}
		switch row.Quality {
		case "good", "weak", "none":
		default:
			return nil, NewValidationError("quality", fmt.Sprintf("unknown quality: %s", row.Quality))
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.CoverageAnalysis.Delete().
		Where(coverageanalysis.RequestIDEQ(requestID)).
		Exec(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear previous coverage: %w", err)
	}

	builders := make([]*ent.CoverageAnalysisCreate, 0, len(rows))
	for _, row := range rows {
		create := tx.CoverageAnalysis.Create().
			SetID(uuid.New().String()).
			SetRequestID(requestID).
			SetRequirement(row.Requirement).
			SetCovered(row.Covered).
			SetQuality(coverageanalysis.Quality(row.Quality)).
			SetCreatedAt(time.Now())
		if len(row.CoveredBy) > 0 {
			create = create.SetCoveredBy(row.CoveredBy)
		}
		builders = append(builders, create)
	}

	created, err := tx.CoverageAnalysis.CreateBulk(builders...).Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create coverage rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit coverage: %w", err)
	}

	return created, nil
}

// GetCoverageForRequest returns coverage rows for a request
func (s *CoverageService) GetCoverageForRequest(ctx context.Context, requestID string) ([]*ent.CoverageAnalysis, error) {
	rows, err := s.client.CoverageAnalysis.Query().
		Where(coverageanalysis.RequestIDEQ(requestID)).
		Order(ent.Asc(coverageanalysis.FieldCreatedAt), ent.Asc(coverageanalysis.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get coverage: %w", err)
	}

	return rows, nil
}
