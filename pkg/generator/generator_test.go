package generator

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/llm"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/recon"
)

type fakeLLM struct {
	content  string
	err      error
	lastCall llm.CallInput
}

func (f *fakeLLM) Call(_ context.Context, in llm.CallInput) (*llm.Response, error) {
	f.lastCall = in
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{
		Content: f.content,
		Model:   "test-model",
		Usage:   llm.Usage{Prompt: 100, Completion: 200, Total: 300},
	}, nil
}

func newGenerator(f *fakeLLM) *Generator {
	return New(f, slog.New(slog.DiscardHandler))
}

var samplePage = &recon.PageStructure{
	URL:   "https://example.com/login",
	Title: "Login",
	Buttons: []recon.Element{
		{Selector: `[data-testid="submit"]`, Text: "Sign in"},
	},
	Inputs: []recon.Element{
		{Selector: "#username", Type: "text", Name: "username"},
	},
}

const twoTests = `import allure

@allure.feature("Login")
@allure.story("Happy path")
@allure.title("Valid login")
@allure.tag("positive")
def test_login_positive(page):
    page.click('[data-testid="submit"]')
    assert page.url.endswith("/dashboard")

@allure.feature("Login")
@allure.story("Bad password")
@allure.title("Invalid login")
@allure.tag("negative")
def test_login_invalid_password(page):
    page.click('[data-testid="submit"]')
    expect(page.locator(".error")).to_be_visible()
`

func TestGenerateUITests_SplitsTests(t *testing.T) {
	f := &fakeLLM{content: twoTests}
	g := newGenerator(f)

	out, err := g.GenerateUITests(context.Background(), UIInput{
		Page:         samplePage,
		Requirements: []string{"user can log in"},
		TestTypes:    []string{"positive", "negative"},
	})
	require.NoError(t, err)
	require.Len(t, out.Tests, 2)

	assert.Equal(t, "test_login_positive", out.Tests[0].Name)
	assert.Equal(t, "positive", out.Tests[0].Type)
	assert.Equal(t, "test_login_invalid_password", out.Tests[1].Name)
	assert.Equal(t, "negative", out.Tests[1].Type)

	// Each test is self-contained: import header plus its decorators.
	for _, tc := range out.Tests {
		assert.True(t, strings.HasPrefix(tc.Code, uiImportHeader))
		assert.Contains(t, tc.Code, "@allure.feature")
	}

	assert.Equal(t, 300, out.Usage.Total)
	assert.Equal(t, "test-model", out.Model)
}

func TestGenerateUITests_PromptContainsStructure(t *testing.T) {
	f := &fakeLLM{content: twoTests}
	g := newGenerator(f)

	_, err := g.GenerateUITests(context.Background(), UIInput{
		Page:         samplePage,
		Requirements: []string{"user can log in", "errors are shown"},
	})
	require.NoError(t, err)

	assert.Contains(t, f.lastCall.User, `[data-testid="submit"]`)
	assert.Contains(t, f.lastCall.User, "#username")
	assert.Contains(t, f.lastCall.User, "1. user can log in")
	assert.Contains(t, f.lastCall.User, "2. errors are shown")
	assert.Contains(t, f.lastCall.System, "Playwright")
}

func TestGenerateUITests_CodeFences(t *testing.T) {
	f := &fakeLLM{content: "```python\n" + twoTests + "\n```"}
	g := newGenerator(f)

	out, err := g.GenerateUITests(context.Background(), UIInput{Page: samplePage})
	require.NoError(t, err)
	assert.Len(t, out.Tests, 2)
}

func TestGenerateUITests_EmptyOutput(t *testing.T) {
	f := &fakeLLM{content: "   \n"}
	g := newGenerator(f)

	_, err := g.GenerateUITests(context.Background(), UIInput{Page: samplePage})
	require.Error(t, err)
	assert.Equal(t, models.CodeEmptyOutput, models.ErrorCode(err))
	assert.False(t, models.IsTransient(err))
}

func TestGenerateUITests_NoTests(t *testing.T) {
	f := &fakeLLM{content: "# I could not generate tests for this page"}
	g := newGenerator(f)

	_, err := g.GenerateUITests(context.Background(), UIInput{Page: samplePage})
	require.Error(t, err)
	assert.Equal(t, models.CodeNoTests, models.ErrorCode(err))
}

func TestGenerateUITests_PropagatesLLMError(t *testing.T) {
	f := &fakeLLM{err: models.NewTransient(models.CodeLLMUnavailable, assert.AnError)}
	g := newGenerator(f)

	_, err := g.GenerateUITests(context.Background(), UIInput{Page: samplePage})
	require.Error(t, err)
	assert.True(t, models.IsTransient(err))
}

const petstore = `{
  "openapi": "3.0.0",
  "info": {"title": "Pets", "version": "1.0.0"},
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "summary": "List pets",
        "responses": {"200": {"description": "ok"}}
      },
      "post": {
        "operationId": "createPet",
        "requestBody": {"content": {"application/json": {"schema": {"type": "object"}}}},
        "responses": {
          "201": {"description": "created"},
          "400": {"description": "bad request"},
          "422": {"description": "validation error"}
        }
      }
    },
    "/pets/{petId}": {
      "get": {
        "operationId": "getPet",
        "parameters": [{"name": "petId", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "ok"}, "404": {"description": "missing"}}
      }
    }
  }
}`

func TestParseEndpoints(t *testing.T) {
	endpoints, err := ParseEndpoints([]byte(petstore))
	require.NoError(t, err)
	require.Len(t, endpoints, 3)

	assert.Equal(t, "GET", endpoints[0].Method)
	assert.Equal(t, "/pets", endpoints[0].Path)
	assert.Equal(t, "listPets", endpoints[0].OperationID)

	assert.Equal(t, "POST", endpoints[1].Method)
	assert.True(t, endpoints[1].HasRequestBody)
	assert.Equal(t, []string{"201", "400", "422"}, endpoints[1].ResponseCodes)

	assert.Equal(t, "getPet", endpoints[2].OperationID)
	assert.Equal(t, []string{"petId in path"}, endpoints[2].Parameters)
}

func TestParseEndpoints_Invalid(t *testing.T) {
	_, err := ParseEndpoints([]byte("not an openapi doc: ["))
	require.Error(t, err)
}

func TestGenerateAPITests_InlineContent(t *testing.T) {
	f := &fakeLLM{content: twoTests}
	g := newGenerator(f)

	out, err := g.GenerateAPITests(context.Background(), APIInput{
		OpenAPIContent: petstore,
		Requirements:   []string{"pets can be listed"},
	})
	require.NoError(t, err)
	assert.Len(t, out.Tests, 2)

	assert.Contains(t, f.lastCall.User, "GET /pets")
	assert.Contains(t, f.lastCall.User, "POST /pets")
	assert.Contains(t, f.lastCall.System, "httpx")

	for _, tc := range out.Tests {
		assert.True(t, strings.HasPrefix(tc.Code, apiImportHeader))
	}
}

func TestGenerateAPITests_RequiresSource(t *testing.T) {
	g := newGenerator(&fakeLLM{content: twoTests})

	_, err := g.GenerateAPITests(context.Background(), APIInput{})
	require.Error(t, err)
	assert.False(t, models.IsTransient(err))
}

func TestSplitTests_DecoratorsStayAttached(t *testing.T) {
	tests := splitTests(twoTests, uiImportHeader)
	require.Len(t, tests, 2)

	// The second block must not swallow the first block's trailing code.
	assert.NotContains(t, tests[0].Code, "test_login_invalid_password")
	assert.True(t, strings.Contains(tests[1].Code, "@allure.story(\"Bad password\")"))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, "positive", classify("test_login_success"))
	assert.Equal(t, "negative", classify("test_login_invalid_password"))
	assert.Equal(t, "negative", classify("test_get_pet_not_found"))
	assert.Equal(t, "boundary", classify("test_name_max_length"))
	assert.Equal(t, "boundary", classify("test_empty_payload"))
}
