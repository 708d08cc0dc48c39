// Package validator checks generated Python tests in four layers:
// syntax (tree-sitter parse), semantics (required decorators and
// assertions), logic (infinite loops, sleeps) and a safety guard
// (forbidden constructs, import whitelist, side-effect scan).
package validator

// Level selects how much of the pipeline runs.
type Level string

const (
	// LevelSyntax runs the parse and the safety guard only.
	LevelSyntax Level = "syntax"
	// LevelSemantic adds the decorator and assertion checks.
	LevelSemantic Level = "semantic"
	// LevelFull runs all four layers.
	LevelFull Level = "full"
)

// Safety guard layers.
const (
	LayerStatic     = "static"
	LayerAST        = "ast"
	LayerBehavioral = "behavioral"
)

// Safety severities.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// SafetyIssue is one safety guard finding.
type SafetyIssue struct {
	Layer    string `json:"layer"`
	Severity string `json:"severity"`
	Pattern  string `json:"pattern"`
	Snippet  string `json:"snippet,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

// Result is the outcome of validating one test.
type Result struct {
	Valid           bool          `json:"valid"`
	Score           int           `json:"score"`
	SyntaxErrors    []string      `json:"syntax_errors"`
	SemanticErrors  []string      `json:"semantic_errors"`
	LogicErrors     []string      `json:"logic_errors"`
	SafetyIssues    []SafetyIssue `json:"safety_issues"`
	Warnings        []string      `json:"warnings"`
	Recommendations []string      `json:"recommendations"`
}

// Blocked reports whether the safety guard found a critical or high
// severity issue.
func (r *Result) Blocked() bool {
	for _, issue := range r.SafetyIssues {
		if issue.Severity == SeverityCritical || issue.Severity == SeverityHigh {
			return true
		}
	}
	return false
}

// Scoring penalties. A syntax error or a blocking safety issue zeroes
// the score outright.
const (
	maxScore        = 100
	semanticPenalty = 30
	logicPenalty    = 20
	validThreshold  = 50
)
