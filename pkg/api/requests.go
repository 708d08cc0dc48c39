package api

import (
	"github.com/qaforge/qaforge/pkg/optimizer"
)

// GenerateTestCasesRequest is the body of POST /generate/test-cases.
type GenerateTestCasesRequest struct {
	URL          string         `json:"url" binding:"required"`
	Requirements []string       `json:"requirements" binding:"required"`
	TestTypes    []string       `json:"test_types"`
	Options      map[string]any `json:"options"`
}

// GenerateAPITestsRequest is the body of POST /generate/api-tests.
// Exactly one of OpenAPIURL and OpenAPIContent must be set.
type GenerateAPITestsRequest struct {
	OpenAPIURL     string         `json:"openapi_url"`
	OpenAPIContent string         `json:"openapi_content"`
	Requirements   []string       `json:"requirements" binding:"required"`
	Options        map[string]any `json:"options"`
}

// ValidateTestsRequest is the body of POST /validate/tests. Either Tests
// or the single-test TestCode form may be used.
type ValidateTestsRequest struct {
	Tests    []string `json:"tests"`
	TestCode string   `json:"test_code"`
	Level    string   `json:"validation_level"`
}

// OptimizeTestsRequest is the body of POST /optimize/tests.
type OptimizeTestsRequest struct {
	Tests        []optimizer.TestInput `json:"tests" binding:"required"`
	Requirements []string              `json:"requirements"`
	Options      optimizer.Options     `json:"options"`
}
