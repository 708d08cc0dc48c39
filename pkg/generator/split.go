package generator

import (
	"regexp"
	"strings"
)

// Import headers prepended to every extracted test so each one is a
// self-contained module.
const (
	uiImportHeader  = "import allure\nfrom playwright.sync_api import Page, expect\n\n"
	apiImportHeader = "import allure\nimport httpx\n\n"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```(?:python)?\n?(.*?)```")
	testDefRe   = regexp.MustCompile(`^def\s+(test_\w+)\s*\([^)]*\)\s*:`)
)

// stripCodeFences unwraps markdown code fences when the model wraps its
// output despite the prompt. Content without fences passes through.
func stripCodeFences(content string) string {
	matches := codeFenceRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return content
	}
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, m[1])
	}
	return strings.Join(parts, "\n")
}

// extractedTest is one test split out of the raw LLM output.
type extractedTest struct {
	Name string
	Code string
}

// splitTests splits generated code into individual tests. A test block
// starts at the decorator run directly above "def test_..." and runs to
// the next block. Each block is prefixed with header.
func splitTests(content, header string) []extractedTest {
	lines := strings.Split(stripCodeFences(content), "\n")

	// Find each def test_ line and walk back over its decorators.
	type span struct {
		start int
		name  string
	}
	var spans []span
	for i, line := range lines {
		m := testDefRe.FindStringSubmatch(strings.TrimRight(line, " \t"))
		if m == nil {
			continue
		}
		start := i
		for start > 0 && strings.HasPrefix(strings.TrimSpace(lines[start-1]), "@") {
			start--
		}
		spans = append(spans, span{start: start, name: m[1]})
	}

	tests := make([]extractedTest, 0, len(spans))
	for i, sp := range spans {
		end := len(lines)
		if i+1 < len(spans) {
			end = spans[i+1].start
		}
		body := strings.TrimRight(strings.Join(lines[sp.start:end], "\n"), "\n") + "\n"
		tests = append(tests, extractedTest{
			Name: sp.name,
			Code: header + body,
		})
	}
	return tests
}
