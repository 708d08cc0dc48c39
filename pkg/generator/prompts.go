package generator

import (
	"fmt"
	"strings"

	"github.com/qaforge/qaforge/pkg/recon"
)

const uiSystemPrompt = `You are a senior QA automation engineer. You write UI tests in Python
using pytest and Playwright (sync API) with Allure reporting.

Rules:
- Every test function is named test_<scenario> and takes a "page" fixture.
- Every test carries @allure.feature, @allure.story, @allure.title and
  @allure.tag decorators.
- Use only the selectors provided in the page structure.
- Every test ends with at least one assertion (assert or expect).
- Use only these modules: pytest, allure, playwright, and the Python
  standard library modules json, re, datetime, uuid, typing.
- Never use eval, exec, subprocess, sockets or file system writes.
- Output only Python code, no commentary.`

const apiSystemPrompt = `You are a senior QA automation engineer. You write API tests in Python
using pytest and httpx with Allure reporting.

Rules:
- Every test function is named test_<scenario>.
- Every test carries @allure.feature, @allure.story, @allure.title and
  @allure.tag decorators.
- Cover the positive path plus every documented error response
  (400, 401, 403, 404, 422).
- Every test asserts the response status code and, where relevant,
  the response body.
- Use only these modules: pytest, allure, httpx, and the Python
  standard library modules json, re, datetime, uuid, typing.
- Never use eval, exec, subprocess, sockets or file system writes.
- Output only Python code, no commentary.`

// buildUIPrompt renders the page structure and requirements into the
// generation prompt.
func buildUIPrompt(page *recon.PageStructure, requirements, testTypes []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Page under test: %s\n", page.URL)
	if page.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", page.Title)
	}

	if len(page.Buttons) > 0 {
		sb.WriteString("\nButtons:\n")
		for _, b := range page.Buttons {
			fmt.Fprintf(&sb, "- %s", b.Selector)
			if b.Text != "" {
				fmt.Fprintf(&sb, " (%q)", b.Text)
			}
			sb.WriteString("\n")
		}
	}

	if len(page.Inputs) > 0 {
		sb.WriteString("\nInputs:\n")
		for _, in := range page.Inputs {
			fmt.Fprintf(&sb, "- %s type=%s", in.Selector, in.Type)
			if in.Name != "" {
				fmt.Fprintf(&sb, " name=%s", in.Name)
			}
			sb.WriteString("\n")
		}
	}

	if len(page.Links) > 0 {
		sb.WriteString("\nLinks:\n")
		for _, l := range page.Links {
			fmt.Fprintf(&sb, "- %s -> %s", l.Selector, l.Href)
			if l.Text != "" {
				fmt.Fprintf(&sb, " (%q)", l.Text)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nRequirements to cover:\n")
	for i, r := range requirements {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, r)
	}

	if len(testTypes) > 0 {
		fmt.Fprintf(&sb, "\nGenerate %s test cases.\n", strings.Join(testTypes, ", "))
	} else {
		sb.WriteString("\nGenerate positive, negative and boundary test cases.\n")
	}

	return sb.String()
}

// buildAPIPrompt renders the extracted endpoints and requirements into
// the generation prompt.
func buildAPIPrompt(endpoints []Endpoint, requirements []string) string {
	var sb strings.Builder

	sb.WriteString("Endpoints under test:\n")
	for _, ep := range endpoints {
		fmt.Fprintf(&sb, "\n%s %s", ep.Method, ep.Path)
		if ep.OperationID != "" {
			fmt.Fprintf(&sb, " (%s)", ep.OperationID)
		}
		sb.WriteString("\n")
		if ep.Summary != "" {
			fmt.Fprintf(&sb, "  summary: %s\n", ep.Summary)
		}
		for _, p := range ep.Parameters {
			fmt.Fprintf(&sb, "  param: %s\n", p)
		}
		if ep.HasRequestBody {
			sb.WriteString("  has request body\n")
		}
		if len(ep.ResponseCodes) > 0 {
			fmt.Fprintf(&sb, "  responses: %s\n", strings.Join(ep.ResponseCodes, ", "))
		}
	}

	sb.WriteString("\nRequirements to cover:\n")
	for i, r := range requirements {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, r)
	}

	return sb.String()
}
