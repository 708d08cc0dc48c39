package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qaforge/qaforge/pkg/export"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/validator"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// exportLimit bounds a single export bundle.
	exportLimit = 1000
)

// validateTestsHandler runs the validation pipeline synchronously on
// submitted test code. Safety findings are audited without a request id.
// POST /api/v1/validate/tests
func (s *Server) validateTestsHandler(c *gin.Context) {
	var body ValidateTestsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error())
		return
	}

	tests := body.Tests
	if len(tests) == 0 && body.TestCode != "" {
		tests = []string{body.TestCode}
	}
	if len(tests) == 0 {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "tests or test_code is required")
		return
	}

	level := validator.Level(body.Level)
	switch level {
	case "":
		level = validator.LevelFull
	case validator.LevelSyntax, validator.LevelSemantic, validator.LevelFull:
	default:
		respondError(c, http.StatusBadRequest, codeInvalidInput,
			"level must be one of: syntax, semantic, full")
		return
	}

	v := validator.New(s.cfg.Validator, s.audits.Auditor(""), s.logger)
	results := v.ValidateBatch(c.Request.Context(), tests, level)

	c.JSON(http.StatusOK, ValidateTestsResponse{Results: results, Count: len(results)})
}

// optimizeTestsHandler runs dedup and coverage analysis synchronously.
// POST /api/v1/optimize/tests
func (s *Server) optimizeTestsHandler(c *gin.Context) {
	var body OptimizeTestsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "invalid request body: "+err.Error())
		return
	}
	if len(body.Tests) == 0 {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "tests is required")
		return
	}

	result, err := s.optimizer.Optimize(c.Request.Context(), body.Tests, body.Requirements, body.Options)
	if err != nil {
		s.logger.Error("Synchronous optimization failed", "error", err)
		respondError(c, http.StatusInternalServerError, codeInternal, "optimization failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

// listTestsHandler returns a filtered, paginated test case list. A search
// query runs full-text search over the generated code instead of the
// column filters.
// GET /api/v1/tests?search&request_id&test_type&min_score&valid&page&page_size
func (s *Server) listTestsHandler(c *gin.Context) {
	filters, ok := testCaseFilters(c)
	if !ok {
		return
	}

	page, ok := positiveIntQuery(c, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := positiveIntQuery(c, "page_size", defaultPageSize)
	if !ok {
		return
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	if query := c.Query("search"); query != "" {
		results, err := s.testCases.SearchTestCases(c.Request.Context(), query, pageSize)
		if err != nil {
			s.mapServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.TestCaseListResponse{
			TestCases:  results,
			TotalCount: len(results),
			Limit:      pageSize,
		})
		return
	}

	filters.Limit = pageSize
	filters.Offset = (page - 1) * pageSize

	resp, err := s.testCases.ListTestCases(c.Request.Context(), filters)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// exportTestsHandler downloads matching tests as a JSON/YAML document or a
// zip of .py files with a manifest.
// GET /api/v1/tests/export?format=json|yaml|zip&request_id&...
func (s *Server) exportTestsHandler(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", "json"))
	if err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}

	filters, ok := testCaseFilters(c)
	if !ok {
		return
	}
	// Bundles carry runnable tests; failed ones stay queryable through
	// the list endpoint but are not exported unless asked for.
	if filters.Valid == nil {
		valid := true
		filters.Valid = &valid
	}
	filters.Limit = exportLimit

	resp, err := s.testCases.ListTestCases(c.Request.Context(), filters)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	bundle, err := export.BuildBundle(resp.TestCases, format, time.Now().UTC())
	if err != nil {
		s.logger.Error("Export bundle failed", "format", format, "error", err)
		respondError(c, http.StatusInternalServerError, codeInternal, "export failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+bundle.Filename+`"`)
	c.Data(http.StatusOK, bundle.ContentType, bundle.Data)
}

// testCaseFilters parses the shared list/export filter parameters. On a
// parse error it writes the 400 response and returns ok=false.
func testCaseFilters(c *gin.Context) (models.TestCaseFilters, bool) {
	filters := models.TestCaseFilters{
		RequestID: c.Query("request_id"),
		TestType:  c.Query("test_type"),
	}

	if raw := c.Query("min_score"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, codeInvalidInput, "min_score must be an integer")
			return filters, false
		}
		filters.MinScore = &n
	}
	if raw := c.Query("valid"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, codeInvalidInput, "valid must be a boolean")
			return filters, false
		}
		filters.Valid = &b
	}

	return filters, true
}

func positiveIntQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		respondError(c, http.StatusBadRequest, codeInvalidInput, name+" must be a positive integer")
		return 0, false
	}
	return n, true
}
