package e2e

import (
	"archive/zip"
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/api"
	"github.com/qaforge/qaforge/pkg/models"
)

const loginTestsResponse = `@allure.feature("Login")
@allure.story("Valid credentials")
@allure.title("User can log in with valid credentials")
@allure.tag("positive")
def test_login_valid(page: Page):
    page.goto("https://shop.example.com/login")
    page.fill("#email", "user@example.com")
    page.fill("#password", "hunter2")
    page.click("#submit")
    expect(page).to_have_url("https://shop.example.com/account")

@allure.feature("Login")
@allure.story("Invalid credentials")
@allure.title("Error shown for a wrong password")
@allure.tag("negative")
def test_login_invalid_password(page: Page):
    page.goto("https://shop.example.com/login")
    page.fill("#email", "user@example.com")
    page.fill("#password", "wrong")
    page.click("#submit")
    assert page.locator(".error").is_visible()
`

var loginRequirements = []string{
	"User can log in with valid credentials",
	"Error shown for a wrong password",
}

func TestPipelineEndToEnd(t *testing.T) {
	app := NewTestApp(t, LLMScriptEntry{Text: loginTestsResponse})

	id := app.Submit(loginRequirements)
	task := app.AwaitStatus(id, "completed")

	// The summary reflects both generated tests surviving validation
	require.NotNil(t, task.ResultSummary)
	assert.EqualValues(t, 2, task.ResultSummary["tests_generated"])
	assert.EqualValues(t, 2, task.ResultSummary["tests_valid"])
	assert.EqualValues(t, 1.0, task.ResultSummary["coverage_score"])
	require.NotNil(t, task.CompletedAt)

	// One page exploration, one generation call
	assert.Equal(t, 1, app.Explorer.Calls())
	assert.Equal(t, 1, app.LLM.Calls())

	// Tests are queryable through the list endpoint
	var list models.TestCaseListResponse
	status := app.GetJSON("/api/v1/tests?request_id="+id+"&valid=true", &list)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, list.TotalCount)

	// Task detail includes tests and per-stage metrics on request
	var detailed api.TaskResponse
	status = app.GetJSON("/api/v1/tasks/"+id+"?include_tests&include_metrics", &detailed)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, detailed.Tests, 2)
	assert.NotEmpty(t, detailed.Metrics)
}

func TestPipelineExportAfterCompletion(t *testing.T) {
	app := NewTestApp(t, LLMScriptEntry{Text: loginTestsResponse})

	id := app.Submit(loginRequirements)
	app.AwaitStatus(id, "completed")

	resp, err := http.Get(app.HTTP.URL + "/api/v1/tests/export?format=zip&request_id=" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "manifest.json")

	pyFiles := 0
	for _, name := range names {
		if strings.HasSuffix(name, ".py") {
			pyFiles++
		}
	}
	assert.Equal(t, 2, pyFiles, "one .py per exported test, got %v", names)
}

func TestPipelineFailureAndResume(t *testing.T) {
	// Whitespace-only output is a permanent generation failure
	app := NewTestApp(t, LLMScriptEntry{Text: "   "})

	id := app.Submit(loginRequirements)
	task := app.AwaitStatus(id, "failed")
	require.NotNil(t, task.ErrorCode)
	assert.Equal(t, models.CodeEmptyOutput, *task.ErrorCode)
	assert.Equal(t, 1, app.Explorer.Calls())

	// Fix the upstream and resume; reconnaissance is not repeated because
	// its checkpoint survived the failure.
	app.LLM.Rescript(LLMScriptEntry{Text: loginTestsResponse})

	var accepted api.AcceptedResponse
	status := app.PostJSON("/api/v1/tasks/"+id+"/resume", nil, &accepted)
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "pending", accepted.Status)

	task = app.AwaitStatus(id, "completed")
	assert.EqualValues(t, 2, task.ResultSummary["tests_valid"])
	assert.Equal(t, 1, app.Explorer.Calls(), "reconnaissance must be skipped on resume")
	assert.Nil(t, task.ErrorCode)
}

func TestPipelineCancellation(t *testing.T) {
	app := NewTestApp(t, LLMScriptEntry{Block: true})

	id := app.Submit(loginRequirements)

	// Wait until generation is actually blocked inside the LLM call
	select {
	case <-app.LLM.Blocked():
	case <-time.After(10 * time.Second):
		t.Fatal("generation never started")
	}

	status := app.PostJSON("/api/v1/tasks/"+id+"/cancel", nil, nil)
	require.Equal(t, http.StatusAccepted, status)

	task := app.AwaitStatus(id, "cancelled")
	require.NotNil(t, task.ErrorCode)
	assert.Equal(t, models.CodeCancelled, *task.ErrorCode)
}
