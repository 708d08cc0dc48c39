// Package generator turns reconnaissance output and OpenAPI documents
// into prompts, calls the LLM and splits the result into individual
// test cases.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/qaforge/qaforge/pkg/llm"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/recon"
)

// LLM is the slice of the llm client the generator needs.
type LLM interface {
	Call(ctx context.Context, in llm.CallInput) (*llm.Response, error)
}

// Generator produces test cases from structured inputs.
type Generator struct {
	llm    LLM
	httpc  *http.Client
	logger *slog.Logger
}

// New creates a generator.
func New(client LLM, logger *slog.Logger) *Generator {
	return &Generator{
		llm:    client,
		httpc:  &http.Client{},
		logger: logger.With("component", "generator"),
	}
}

// UIInput describes a UI test generation call.
type UIInput struct {
	Page         *recon.PageStructure
	Requirements []string
	TestTypes    []string
}

// APIInput describes an API test generation call.
type APIInput struct {
	OpenAPIURL     string
	OpenAPIContent string
	Requirements   []string
}

// Output is the result of one generation call.
type Output struct {
	Tests []TestCase
	Usage llm.Usage
	Model string
}

// TestCase is one generated test.
type TestCase struct {
	Name string
	Code string
	Type string // positive, negative, boundary (best-effort from the name)
}

// GenerateUITests builds the UI prompt, calls the LLM and splits the
// output into tests.
func (g *Generator) GenerateUITests(ctx context.Context, in UIInput) (*Output, error) {
	if in.Page == nil {
		return nil, models.NewPermanent(models.CodeInternal, fmt.Errorf("page structure is required"))
	}

	resp, err := g.llm.Call(ctx, llm.CallInput{
		System: uiSystemPrompt,
		User:   buildUIPrompt(in.Page, in.Requirements, in.TestTypes),
	})
	if err != nil {
		return nil, err
	}

	return g.split(resp, uiImportHeader)
}

// GenerateAPITests resolves the OpenAPI document (inline content wins
// over URL), extracts endpoints, and generates tests for them.
func (g *Generator) GenerateAPITests(ctx context.Context, in APIInput) (*Output, error) {
	content := []byte(in.OpenAPIContent)
	if len(content) == 0 {
		if in.OpenAPIURL == "" {
			return nil, models.NewPermanent(models.CodeInternal,
				fmt.Errorf("either openapi_url or openapi_content is required"))
		}
		fetched, err := FetchOpenAPI(ctx, g.httpc, in.OpenAPIURL)
		if err != nil {
			return nil, err
		}
		content = fetched
	}

	endpoints, err := ParseEndpoints(content)
	if err != nil {
		return nil, err
	}
	if len(endpoints) == 0 {
		return nil, models.NewPermanent(models.CodeNoTests,
			fmt.Errorf("openapi document has no testable endpoints"))
	}

	resp, err := g.llm.Call(ctx, llm.CallInput{
		System: apiSystemPrompt,
		User:   buildAPIPrompt(endpoints, in.Requirements),
	})
	if err != nil {
		return nil, err
	}

	return g.split(resp, apiImportHeader)
}

func (g *Generator) split(resp *llm.Response, header string) (*Output, error) {
	if strings.TrimSpace(resp.Content) == "" {
		return nil, models.NewPermanent(models.CodeEmptyOutput,
			fmt.Errorf("model returned empty output"))
	}

	extracted := splitTests(resp.Content, header)
	if len(extracted) == 0 {
		return nil, models.NewPermanent(models.CodeNoTests,
			fmt.Errorf("model output contains no test functions"))
	}

	out := &Output{
		Tests: make([]TestCase, 0, len(extracted)),
		Usage: resp.Usage,
		Model: resp.Model,
	}
	for _, t := range extracted {
		out.Tests = append(out.Tests, TestCase{
			Name: t.Name,
			Code: t.Code,
			Type: classify(t.Name),
		})
	}

	g.logger.Info("tests generated", "count", len(out.Tests), "model", out.Model)
	return out, nil
}

// classify guesses the coverage type from the test name.
func classify(name string) string {
	switch {
	case strings.Contains(name, "negative") || strings.Contains(name, "invalid") ||
		strings.Contains(name, "error") || strings.Contains(name, "unauthorized") ||
		strings.Contains(name, "forbidden") || strings.Contains(name, "not_found"):
		return "negative"
	case strings.Contains(name, "boundary") || strings.Contains(name, "limit") ||
		strings.Contains(name, "max") || strings.Contains(name, "min") ||
		strings.Contains(name, "empty"):
		return "boundary"
	default:
		return "positive"
	}
}
