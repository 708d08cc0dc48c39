package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/ent/testcase"
	"github.com/qaforge/qaforge/pkg/models"
)

// TestCaseService manages persisted test cases
type TestCaseService struct {
	client *ent.Client
}

// NewTestCaseService creates a new TestCaseService
func NewTestCaseService(client *ent.Client) *TestCaseService {
	return &TestCaseService{client: client}
}

// CreateTestCases persists a batch of generated tests for a request in one
// transaction. The (request_id, name) unique constraint surfaces as
// ErrAlreadyExists for the whole batch.
func (s *TestCaseService) CreateTestCases(httpCtx context.Context, requestID string, tests []models.NewTestCase) ([]*ent.TestCase, error) {
	if requestID == "" {
		return nil, NewValidationError("request_id", "request_id is required")
	}
	if len(tests) == 0 {
		return nil, nil
	}
	for i, tc := range tests {
		if tc.Name == "" {
			return nil, NewValidationError("name", fmt.Sprintf("test %d has no name", i))
		}
		if tc.Code == "" {
			return nil, NewValidationError("code", fmt.Sprintf("test %q has no code", tc.Name))
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builders := make([]*ent.TestCaseCreate, 0, len(tests))
	for _, tc := range tests {
		create := tx.TestCase.Create().
			SetID(uuid.New().String()).
			SetRequestID(requestID).
			SetName(tc.Name).
			SetCode(tc.Code).
			SetScore(tc.Score).
			SetValid(tc.Valid).
			SetCreatedAt(time.Now())
		if tc.Description != "" {
			create = create.SetDescription(tc.Description)
		}
		if tc.TestType != "" {
			create = create.SetTestType(tc.TestType)
		}
		if tc.DuplicateOf != "" {
			create = create.SetDuplicateOf(tc.DuplicateOf)
		}
		if tc.Similarity != nil {
			create = create.SetSimilarity(*tc.Similarity)
		}
		builders = append(builders, create)
	}

	created, err := tx.TestCase.CreateBulk(builders...).Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create test cases: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit test cases: %w", err)
	}

	return created, nil
}

// ListTestCases lists test cases with filtering and pagination
func (s *TestCaseService) ListTestCases(ctx context.Context, filters models.TestCaseFilters) (*models.TestCaseListResponse, error) {
	query := s.client.TestCase.Query()

	if filters.RequestID != "" {
		query = query.Where(testcase.RequestIDEQ(filters.RequestID))
	}
	if filters.TestType != "" {
		query = query.Where(testcase.TestTypeEQ(filters.TestType))
	}
	if filters.MinScore != nil {
		query = query.Where(testcase.ScoreGTE(*filters.MinScore))
	}
	if filters.Valid != nil {
		query = query.Where(testcase.ValidEQ(*filters.Valid))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count test cases: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	testCases, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(testcase.FieldCreatedAt), ent.Asc(testcase.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}

	return &models.TestCaseListResponse{
		TestCases:  testCases,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetTestCasesForRequest returns all tests of a request, oldest first
func (s *TestCaseService) GetTestCasesForRequest(ctx context.Context, requestID string) ([]*ent.TestCase, error) {
	testCases, err := s.client.TestCase.Query().
		Where(testcase.RequestIDEQ(requestID)).
		Order(ent.Asc(testcase.FieldCreatedAt), ent.Asc(testcase.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}

	return testCases, nil
}

// SearchTestCases performs full-text search on generated test code
func (s *TestCaseService) SearchTestCases(ctx context.Context, query string, limit int) ([]*ent.TestCase, error) {
	if limit <= 0 {
		limit = 20
	}

	testCases, err := s.client.TestCase.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("to_tsvector('english', code) @@ plainto_tsquery($1)", query))
		}).
		Limit(limit).
		Order(ent.Desc(testcase.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search test cases: %w", err)
	}

	return testCases, nil
}
