package api

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/optimizer"
	"github.com/qaforge/qaforge/pkg/services"
)

const safeLoginTest = `import allure
from playwright.sync_api import Page, expect

@allure.feature("Authentication")
@allure.story("Login")
@allure.title("Valid login shows the dashboard")
@allure.tag("positive")
def test_login_valid(page: Page):
    page.goto("https://shop.example.com/login")
    page.fill("#username", "alice")
    page.fill("#password", "s3cret")
    page.click("#submit")
    expect(page.locator("#dashboard")).to_be_visible()
`

const unsafeLoginTest = `import os
import allure

@allure.feature("Authentication")
@allure.story("Login")
@allure.title("Malicious")
@allure.tag("negative")
def test_login_malicious():
    os.system("rm -rf /tmp/data")
    assert True
`

func TestValidateTests(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	t.Run("validates a clean test", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/validate/tests", ValidateTestsRequest{
			Tests: []string{safeLoginTest},
		})

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[ValidateTestsResponse](t, w)
		require.Equal(t, 1, resp.Count)
		assert.True(t, resp.Results[0].Valid)
		assert.Equal(t, 100, resp.Results[0].Score)
	})

	t.Run("accepts the single test_code form", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/validate/tests", ValidateTestsRequest{
			TestCode: safeLoginTest,
			Level:    "syntax",
		})

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[ValidateTestsResponse](t, w)
		require.Equal(t, 1, resp.Count)
	})

	t.Run("flags unsafe code and records an audit entry", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/validate/tests", ValidateTestsRequest{
			Tests: []string{unsafeLoginTest},
		})

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[ValidateTestsResponse](t, w)
		require.Equal(t, 1, resp.Count)
		assert.False(t, resp.Results[0].Valid)
		assert.NotEmpty(t, resp.Results[0].SafetyIssues)

		// Ad-hoc validation audits without a request id
		logs, err := services.NewAuditService(client.Client).ListRecentAuditLogs(ctx, "", 10)
		require.NoError(t, err)
		assert.NotEmpty(t, logs)
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/validate/tests", ValidateTestsRequest{})
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})

	t.Run("rejects an unknown level", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/validate/tests", ValidateTestsRequest{
			Tests: []string{safeLoginTest},
			Level: "paranoid",
		})
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})
}

func TestOptimizeTests(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("removes exact duplicates and scores coverage", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/optimize/tests", OptimizeTestsRequest{
			Tests: []optimizer.TestInput{
				{TestID: "test_login_valid", TestCode: safeLoginTest},
				{TestID: "test_login_copy", TestCode: safeLoginTest},
			},
			Requirements: []string{"Valid login shows the dashboard"},
			Options:      optimizer.Options{SkipSemantic: true},
		})

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[optimizer.Result](t, w)
		assert.Equal(t, 1, resp.DuplicatesFound)
		require.Len(t, resp.OptimizedTests, 1)
		assert.Equal(t, "test_login_valid", resp.OptimizedTests[0].TestID)
		require.Len(t, resp.Duplicates, 1)
		assert.Equal(t, "exact", resp.Duplicates[0].Kind)
		assert.Equal(t, 1.0, resp.CoverageScore)
	})

	t.Run("rejects an empty test list", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodPost, "/api/v1/optimize/tests", OptimizeTestsRequest{})
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})
}

func TestListTests(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	id := createUIRequest(ctx, t, srv)
	_, err := services.NewTestCaseService(client.Client).CreateTestCases(ctx, id, []models.NewTestCase{
		{Name: "test_checkout_positive", Code: safeLoginTest, TestType: "positive", Score: 95, Valid: true},
		{Name: "test_checkout_negative", Code: safeLoginTest, TestType: "negative", Score: 40, Valid: false},
	})
	require.NoError(t, err)

	t.Run("lists all tests for a request", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tests?request_id="+id, nil)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[models.TestCaseListResponse](t, w)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.TestCases, 2)
	})

	t.Run("filters by validity and score", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tests?request_id="+id+"&valid=true", nil)
		resp := decodeJSON[models.TestCaseListResponse](t, w)
		require.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, "test_checkout_positive", resp.TestCases[0].Name)

		w = doJSON(t, srv, http.MethodGet, "/api/v1/tests?request_id="+id+"&min_score=50", nil)
		resp = decodeJSON[models.TestCaseListResponse](t, w)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tests?request_id="+id+"&page=2&page_size=1", nil)
		resp := decodeJSON[models.TestCaseListResponse](t, w)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.TestCases, 1)
		assert.Equal(t, 1, resp.Offset)
	})

	t.Run("full-text search over code", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tests?search=dashboard", nil)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		resp := decodeJSON[models.TestCaseListResponse](t, w)
		assert.Equal(t, 2, resp.TotalCount)

		w = doJSON(t, srv, http.MethodGet, "/api/v1/tests?search=nonexistent", nil)
		resp = decodeJSON[models.TestCaseListResponse](t, w)
		assert.Equal(t, 0, resp.TotalCount)
	})

	t.Run("rejects bad filter values", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tests?min_score=high", nil)
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)

		w = doJSON(t, srv, http.MethodGet, "/api/v1/tests?valid=maybe", nil)
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)

		w = doJSON(t, srv, http.MethodGet, "/api/v1/tests?page=0", nil)
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})
}

func TestExportTests(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	id := createUIRequest(ctx, t, srv)
	_, err := services.NewTestCaseService(client.Client).CreateTestCases(ctx, id, []models.NewTestCase{
		{Name: "test_checkout_positive", Code: safeLoginTest, TestType: "positive", Score: 95, Valid: true},
		{Name: "test_checkout_broken", Code: unsafeLoginTest, TestType: "negative", Score: 0, Valid: false},
	})
	require.NoError(t, err)

	t.Run("exports JSON with valid tests only", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tests/export?request_id="+id, nil)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, w.Body.String(), "test_checkout_positive")
		assert.NotContains(t, w.Body.String(), "test_checkout_broken")
	})

	t.Run("exports a zip with per-test files and a manifest", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tests/export?format=zip&request_id="+id, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "zip")

		reader, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
		require.NoError(t, err)

		var names []string
		for _, f := range reader.File {
			names = append(names, f.Name)
		}
		assert.Contains(t, names, "manifest.json")
		hasPy := false
		for _, name := range names {
			if strings.HasSuffix(name, ".py") {
				hasPy = true
			}
		}
		assert.True(t, hasPy, "zip should contain .py files, got %v", names)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/api/v1/tests/export?format=tar", nil)
		assertErrorCode(t, w, http.StatusBadRequest, codeInvalidInput)
	})
}
