package validator

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
)

const goodTest = `import allure
from playwright.sync_api import Page, expect

@allure.feature("Login")
@allure.story("Happy path")
@allure.title("User can log in")
@allure.tag("positive")
def test_login_positive(page):
    page.fill("#username", "admin")
    page.click("#submit")
    assert page.url.endswith("/dashboard")
`

func newValidator(t *testing.T, auditor Auditor) *Validator {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return New(config.ValidatorConfig{Fanout: 4}, auditor, logger)
}

func TestValidate_CleanTestScoresFull(t *testing.T) {
	v := newValidator(t, nil)

	result := v.Validate(context.Background(), goodTest, LevelFull)

	assert.True(t, result.Valid)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.SyntaxErrors)
	assert.Empty(t, result.SemanticErrors)
	assert.Empty(t, result.LogicErrors)
	assert.Empty(t, result.SafetyIssues)
}

func TestValidate_SyntaxErrorZeroesScore(t *testing.T) {
	v := newValidator(t, nil)

	result := v.Validate(context.Background(), "def test_broken(:\n    pass", LevelFull)

	assert.False(t, result.Valid)
	assert.Equal(t, 0, result.Score)
	assert.NotEmpty(t, result.SyntaxErrors)
}

func TestValidate_MissingDecoratorsAndAssertions(t *testing.T) {
	v := newValidator(t, nil)

	code := "def test_bare(page):\n    page.click(\"#btn\")\n"
	result := v.Validate(context.Background(), code, LevelFull)

	// 4 missing decorators + no assertions = 5 semantic errors,
	// penalty capped at zero.
	assert.Len(t, result.SemanticErrors, 5)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Recommendations)
}

func TestValidate_ExpectCountsAsAssertion(t *testing.T) {
	v := newValidator(t, nil)

	code := `import allure

@allure.feature("F")
@allure.story("S")
@allure.title("T")
@allure.tag("positive")
def test_with_expect(page):
    expect(page).to_have_url("/done")
`
	result := v.Validate(context.Background(), code, LevelFull)

	assert.Empty(t, result.SemanticErrors)
	assert.True(t, result.Valid)
}

func TestValidate_LogicLayer(t *testing.T) {
	v := newValidator(t, nil)

	t.Run("while true without break", func(t *testing.T) {
		code := goodTest + "\ndef test_loop(page):\n    while True:\n        page.reload()\n    assert True\n"
		result := v.Validate(context.Background(), code, LevelFull)
		assert.Contains(t, result.LogicErrors, "while True loop without break")
		assert.Equal(t, 80, result.Score)
	})

	t.Run("while true with break is fine", func(t *testing.T) {
		code := goodTest + "\ndef test_loop(page):\n    while True:\n        break\n    assert True\n"
		result := v.Validate(context.Background(), code, LevelFull)
		assert.Empty(t, result.LogicErrors)
	})

	t.Run("sleep is a warning not an error", func(t *testing.T) {
		code := goodTest + "\ndef test_sleepy(page):\n    time.sleep(5)\n    assert True\n"
		result := v.Validate(context.Background(), code, LevelFull)
		assert.Empty(t, result.LogicErrors)
		assert.NotEmpty(t, result.Warnings)
		assert.Equal(t, 100, result.Score)
	})
}

func TestValidate_SafetyBlacklist(t *testing.T) {
	v := newValidator(t, nil)

	tests := []struct {
		name    string
		snippet string
		pattern string
	}{
		{"eval", "eval(\"1+1\")", "eval("},
		{"os.system", "os.system(\"ls\")", "os.system"},
		{"subprocess", "subprocess.run([\"ls\"])", "subprocess."},
		{"pickle", "pickle.loads(data)", "pickle.loads"},
		{"globals", "globals()[\"x\"] = 1", "globals("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := goodTest + "\ndef test_evil(page):\n    " + tt.snippet + "\n    assert True\n"
			result := v.Validate(context.Background(), code, LevelFull)

			assert.False(t, result.Valid)
			assert.Equal(t, 0, result.Score)
			require.NotEmpty(t, result.SafetyIssues)

			found := false
			for _, issue := range result.SafetyIssues {
				if issue.Pattern == tt.pattern {
					found = true
					assert.Equal(t, LayerStatic, issue.Layer)
					assert.Equal(t, SeverityCritical, issue.Severity)
				}
			}
			assert.True(t, found, "expected pattern %q in issues", tt.pattern)
		})
	}
}

func TestValidate_ImportWhitelist(t *testing.T) {
	v := newValidator(t, nil)

	code := `import allure
import paramiko

@allure.feature("F")
@allure.story("S")
@allure.title("T")
@allure.tag("negative")
def test_ssh(page):
    assert True
`
	result := v.Validate(context.Background(), code, LevelFull)

	assert.False(t, result.Valid)
	assert.Equal(t, 0, result.Score)
	require.NotEmpty(t, result.SafetyIssues)
	assert.Equal(t, LayerAST, result.SafetyIssues[0].Layer)
	assert.Equal(t, SeverityHigh, result.SafetyIssues[0].Severity)
	assert.Equal(t, "paramiko", result.SafetyIssues[0].Pattern)
}

func TestValidate_BehavioralWarnings(t *testing.T) {
	v := newValidator(t, nil)

	code := goodTest + "\ndef test_files(page):\n    open(\"out.txt\", \"w\")\n    os.remove(\"out.txt\")\n    assert True\n"
	result := v.Validate(context.Background(), code, LevelFull)

	// Behavioral findings are warnings; they do not block or zero.
	assert.True(t, result.Valid)
	assert.Contains(t, result.Warnings, "test writes to the filesystem")
	assert.Contains(t, result.Warnings, "test deletes files via os.remove")
}

func TestValidate_SyntaxLevelSkipsSemanticsAndLogic(t *testing.T) {
	v := newValidator(t, nil)

	code := "def test_bare(page):\n    page.click(\"#btn\")\n"
	result := v.Validate(context.Background(), code, LevelSyntax)

	assert.Empty(t, result.SemanticErrors)
	assert.Empty(t, result.LogicErrors)
	assert.True(t, result.Valid)
	assert.Equal(t, 100, result.Score)
}

func TestValidate_SemanticLevelSkipsLogic(t *testing.T) {
	v := newValidator(t, nil)

	code := "def test_bare(page):\n    while True:\n        page.click(\"#btn\")\n"
	result := v.Validate(context.Background(), code, LevelSemantic)

	assert.NotEmpty(t, result.SemanticErrors)
	assert.Empty(t, result.LogicErrors)
}

func TestValidateBatch_PreservesOrder(t *testing.T) {
	v := newValidator(t, nil)

	tests := []string{
		goodTest,
		"def test_broken(:\n    pass",
		goodTest + "\ndef test_evil(page):\n    eval(\"x\")\n    assert True\n",
	}

	results := v.ValidateBatch(context.Background(), tests, LevelFull)
	require.Len(t, results, 3)

	assert.True(t, results[0].Valid)
	assert.NotEmpty(t, results[1].SyntaxErrors)
	assert.True(t, results[2].Blocked())
}

type recordingAuditor struct {
	mu      sync.Mutex
	records []models.AuditRecord
}

func (a *recordingAuditor) Append(_ context.Context, record models.AuditRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, record)
	return nil
}

func TestValidateBatch_AuditsSafetyFindings(t *testing.T) {
	auditor := &recordingAuditor{}
	v := newValidator(t, auditor)

	tests := []string{
		goodTest,
		goodTest + "\ndef test_evil(page):\n    os.popen(\"ls\")\n    assert True\n",
	}

	v.ValidateBatch(context.Background(), tests, LevelFull)

	require.Len(t, auditor.records, 1)
	assert.Equal(t, 1, auditor.records[0].TestIndex)
	assert.Equal(t, "os.popen", auditor.records[0].Pattern)
	assert.Equal(t, SeverityCritical, auditor.records[0].Severity)
}

func TestValidateBatch_Empty(t *testing.T) {
	v := newValidator(t, nil)
	results := v.ValidateBatch(context.Background(), nil, LevelFull)
	assert.Empty(t, results)
}
