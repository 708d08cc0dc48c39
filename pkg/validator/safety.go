package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/qaforge/qaforge/pkg/pyast"
)

// criticalPatterns are constructs that block a test outright. Matched
// against raw source before any parsing so malformed code cannot dodge
// the scan.
var criticalPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"eval(", regexp.MustCompile(`\beval\s*\(`)},
	{"exec(", regexp.MustCompile(`\bexec\s*\(`)},
	{"compile(", regexp.MustCompile(`\bcompile\s*\(`)},
	{"__import__(", regexp.MustCompile(`__import__\s*\(`)},
	{"os.system", regexp.MustCompile(`\bos\.system\b`)},
	{"os.popen", regexp.MustCompile(`\bos\.popen\b`)},
	{"subprocess.", regexp.MustCompile(`\bsubprocess\.`)},
	{"socket.", regexp.MustCompile(`\bsocket\.`)},
	{"pickle.loads", regexp.MustCompile(`\bpickle\.loads\b`)},
	{"setattr(", regexp.MustCompile(`\bsetattr\s*\(`)},
	{"delattr(", regexp.MustCompile(`\bdelattr\s*\(`)},
	{"globals(", regexp.MustCompile(`\bglobals\s*\(`)},
	{"locals(", regexp.MustCompile(`\blocals\s*\(`)},
}

// allowedImports is the module whitelist for generated tests.
var allowedImports = map[string]bool{
	"pytest":      true,
	"allure":      true,
	"playwright":  true,
	"selenium":    true,
	"httpx":       true,
	"requests":    true,
	"json":        true,
	"re":          true,
	"datetime":    true,
	"time":        true,
	"uuid":        true,
	"math":        true,
	"random":      true,
	"typing":      true,
	"dataclasses": true,
	"enum":        true,
	"collections": true,
	"functools":   true,
	"itertools":   true,
	"asyncio":     true,
	"logging":     true,
}

var (
	fileWriteRe = regexp.MustCompile(`\bopen\s*\([^)]*['"][wa]b?['"]`)
	deletionRe  = regexp.MustCompile(`\b(os\.remove|os\.unlink|shutil\.rmtree)\b`)
)

// runSafety executes the three guard layers. The module may be nil when
// the source failed to parse; the AST layer is skipped in that case.
func runSafety(code string, module *pyast.Module) ([]SafetyIssue, []string) {
	var issues []SafetyIssue
	var warnings []string

	// Layer 1: static blacklist on raw source.
	lines := strings.Split(code, "\n")
	for _, p := range criticalPatterns {
		for i, line := range lines {
			if p.re.MatchString(line) {
				issues = append(issues, SafetyIssue{
					Layer:    LayerStatic,
					Severity: SeverityCritical,
					Pattern:  p.name,
					Snippet:  strings.TrimSpace(line),
					Line:     i + 1,
					Message:  fmt.Sprintf("forbidden construct %q", p.name),
				})
				break
			}
		}
	}

	// Layer 2: import whitelist via AST.
	if module != nil {
		for _, imp := range module.Imports() {
			if !allowedImports[imp] {
				issues = append(issues, SafetyIssue{
					Layer:    LayerAST,
					Severity: SeverityHigh,
					Pattern:  imp,
					Message:  fmt.Sprintf("import %q is not in the allowed module list", imp),
				})
			}
		}
	}

	// Layer 3: behavioral scan for side effects. These are warnings,
	// not blocks: a test legitimately writing a fixture file is odd but
	// not dangerous.
	if fileWriteRe.MatchString(code) {
		warnings = append(warnings, "test writes to the filesystem")
	}
	if m := deletionRe.FindString(code); m != "" {
		warnings = append(warnings, fmt.Sprintf("test deletes files via %s", m))
	}

	return issues, warnings
}
