package models

import (
	"github.com/qaforge/qaforge/ent"
)

// Request types.
const (
	RequestTypeUI  = "ui"
	RequestTypeAPI = "api"
)

// CreateRequestInput contains fields for creating a generation request.
type CreateRequestInput struct {
	RequestID      string         `json:"request_id"`
	RequestType    string         `json:"request_type"`
	URL            string         `json:"url,omitempty"`
	Requirements   []string       `json:"requirements"`
	TestTypes      []string       `json:"test_types,omitempty"`
	OpenAPIURL     string         `json:"openapi_url,omitempty"`
	OpenAPIContent string         `json:"openapi_content,omitempty"`
	Options        map[string]any `json:"options,omitempty"`
}

// RequestFilters contains filtering options for listing requests.
type RequestFilters struct {
	Status      string `json:"status,omitempty"`
	RequestType string `json:"request_type,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

// RequestListResponse contains a paginated request list.
type RequestListResponse struct {
	Requests   []*ent.Request `json:"requests"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// ResultSummary is recorded on the request when the pipeline completes.
type ResultSummary struct {
	TestsGenerated  int     `json:"tests_generated"`
	TestsValid      int     `json:"tests_valid"`
	DuplicatesFound int     `json:"duplicates_found"`
	CoverageScore   float64 `json:"coverage_score"`
	AverageScore    float64 `json:"average_score"`
	DurationMS      int64   `json:"duration_ms"`
}
