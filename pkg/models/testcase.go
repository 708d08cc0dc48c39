package models

import (
	"github.com/qaforge/qaforge/ent"
)

// NewTestCase contains fields for persisting a generated test.
type NewTestCase struct {
	Name        string
	Code        string
	Description string
	TestType    string
	Score       int
	Valid       bool
	DuplicateOf string
	Similarity  *float64
}

// TestCaseFilters contains filtering options for listing test cases.
type TestCaseFilters struct {
	RequestID string `json:"request_id,omitempty"`
	TestType  string `json:"test_type,omitempty"`
	MinScore  *int   `json:"min_score,omitempty"`
	Valid     *bool  `json:"valid,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// TestCaseListResponse contains a paginated test case list.
type TestCaseListResponse struct {
	TestCases  []*ent.TestCase `json:"test_cases"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// StageMetric contains fields for recording a stage attempt.
type StageMetric struct {
	Stage            Stage
	Attempt          int
	Status           string // success, retry, failed
	DurationMS       int
	TokensPrompt     int
	TokensCompletion int
	TokensTotal      int
	Model            string
	ErrorCode        string
}

// CoverageRow contains fields for persisting one requirement's coverage.
type CoverageRow struct {
	Requirement string
	Covered     bool
	CoveredBy   []string
	Quality     string // good, weak, none
}

// AuditRecord contains fields for appending a safety guard finding.
type AuditRecord struct {
	RequestID string // empty for ad-hoc validation
	TestIndex int
	Layer     string // static, ast, behavioral
	Severity  string // critical, high, medium, low
	Pattern   string
	Snippet   string
}
