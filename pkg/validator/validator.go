package validator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/pyast"
)

// Auditor records safety guard findings. Nil disables auditing.
type Auditor interface {
	Append(ctx context.Context, record models.AuditRecord) error
}

// Validator runs the validation pipeline over generated tests.
type Validator struct {
	fanout  int
	auditor Auditor
	logger  *slog.Logger
}

// New creates a validator. auditor may be nil.
func New(cfg config.ValidatorConfig, auditor Auditor, logger *slog.Logger) *Validator {
	fanout := cfg.Fanout
	if fanout <= 0 {
		fanout = 8
	}
	return &Validator{
		fanout:  fanout,
		auditor: auditor,
		logger:  logger.With("component", "validator"),
	}
}

var (
	requiredDecorators = []string{
		"@allure.feature",
		"@allure.story",
		"@allure.title",
		"@allure.tag",
	}
	assertionRe = regexp.MustCompile(`assert\s+|expect\(`)
	whileTrueRe = regexp.MustCompile(`while\s+True\s*:`)
	sleepRe     = regexp.MustCompile(`\btime\.sleep\s*\(`)
)

// Validate runs the pipeline over a single test.
func (v *Validator) Validate(ctx context.Context, code string, level Level) *Result {
	result := &Result{
		SyntaxErrors:    []string{},
		SemanticErrors:  []string{},
		LogicErrors:     []string{},
		SafetyIssues:    []SafetyIssue{},
		Warnings:        []string{},
		Recommendations: []string{},
	}

	module, err := pyast.Parse(ctx, code)
	if err != nil {
		result.SyntaxErrors = append(result.SyntaxErrors, fmt.Sprintf("parse failed: %v", err))
		module = nil
	}
	if module != nil {
		defer module.Close()
		if module.HasSyntaxError() {
			for _, se := range module.SyntaxErrors() {
				result.SyntaxErrors = append(result.SyntaxErrors,
					fmt.Sprintf("line %d: %s", se.Line, se.Message))
			}
			if len(result.SyntaxErrors) == 0 {
				result.SyntaxErrors = append(result.SyntaxErrors, "invalid syntax")
			}
		}
	}

	// Safety guard runs even for broken code; the static layer works on
	// raw source.
	astModule := module
	if len(result.SyntaxErrors) > 0 {
		astModule = nil
	}
	issues, warnings := runSafety(code, astModule)
	result.SafetyIssues = issues
	result.Warnings = append(result.Warnings, warnings...)

	// Style and logic feedback on unparseable code would be noise.
	if len(result.SyntaxErrors) == 0 {
		if level == LevelSemantic || level == LevelFull {
			v.checkSemantics(code, result)
		}
		if level == LevelFull {
			v.checkLogic(code, result)
		}
	}

	v.score(result)
	v.recommend(result)
	return result
}

func (v *Validator) checkSemantics(code string, result *Result) {
	for _, dec := range requiredDecorators {
		if !strings.Contains(code, dec) {
			result.SemanticErrors = append(result.SemanticErrors,
				fmt.Sprintf("missing required decorator %s", dec))
		}
	}
	if !assertionRe.MatchString(code) {
		result.SemanticErrors = append(result.SemanticErrors,
			"test has no assertions")
	}
}

func (v *Validator) checkLogic(code string, result *Result) {
	if whileTrueRe.MatchString(code) && !strings.Contains(code, "break") {
		result.LogicErrors = append(result.LogicErrors,
			"while True loop without break")
	}
	if sleepRe.MatchString(code) {
		result.Warnings = append(result.Warnings,
			"time.sleep makes tests flaky, prefer explicit waits")
	}
}

func (v *Validator) score(result *Result) {
	if len(result.SyntaxErrors) > 0 || result.Blocked() {
		result.Score = 0
		result.Valid = false
		return
	}

	score := maxScore
	score -= semanticPenalty * len(result.SemanticErrors)
	score -= logicPenalty * len(result.LogicErrors)
	if score < 0 {
		score = 0
	}

	result.Score = score
	result.Valid = score >= validThreshold
}

func (v *Validator) recommend(result *Result) {
	if len(result.SyntaxErrors) > 0 {
		result.Recommendations = append(result.Recommendations,
			"fix syntax errors before anything else")
	}
	if result.Blocked() {
		result.Recommendations = append(result.Recommendations,
			"remove forbidden constructs and non-whitelisted imports")
	}
	for _, e := range result.SemanticErrors {
		if strings.Contains(e, "decorator") {
			result.Recommendations = append(result.Recommendations,
				"add Allure decorators (@allure.feature, @allure.story, @allure.title, @allure.tag) for reporting")
			break
		}
	}
	for _, e := range result.SemanticErrors {
		if strings.Contains(e, "assertions") {
			result.Recommendations = append(result.Recommendations,
				"add assertions so the test verifies behavior")
			break
		}
	}
	if len(result.LogicErrors) > 0 {
		result.Recommendations = append(result.Recommendations,
			"bound every loop with an exit condition")
	}
}

// ValidateBatch validates tests concurrently with bounded fanout.
// The output slice preserves input order; a failure validating one test
// yields a zero-score result at that index without affecting others.
func (v *Validator) ValidateBatch(ctx context.Context, tests []string, level Level) []*Result {
	results := make([]*Result, len(tests))
	sem := make(chan struct{}, v.fanout)
	var wg sync.WaitGroup

	for i, code := range tests {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					v.logger.Error("validation panicked", "test_index", i, "panic", r)
					results[i] = &Result{
						SyntaxErrors:    []string{fmt.Sprintf("validation failed: %v", r)},
						SemanticErrors:  []string{},
						LogicErrors:     []string{},
						SafetyIssues:    []SafetyIssue{},
						Warnings:        []string{},
						Recommendations: []string{},
					}
				}
			}()

			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				results[i] = &Result{
					SyntaxErrors:    []string{"validation cancelled"},
					SemanticErrors:  []string{},
					LogicErrors:     []string{},
					SafetyIssues:    []SafetyIssue{},
					Warnings:        []string{},
					Recommendations: []string{},
				}
				return
			}
			results[i] = v.Validate(ctx, code, level)
		}(i, code)
	}

	wg.Wait()

	v.audit(ctx, results)
	return results
}

// audit appends one record per blocking safety issue. Best effort; a
// failed write is logged and does not fail validation.
func (v *Validator) audit(ctx context.Context, results []*Result) {
	if v.auditor == nil {
		return
	}
	for i, result := range results {
		if result == nil {
			continue
		}
		for _, issue := range result.SafetyIssues {
			err := v.auditor.Append(ctx, models.AuditRecord{
				TestIndex: i,
				Layer:     issue.Layer,
				Severity:  issue.Severity,
				Pattern:   issue.Pattern,
				Snippet:   issue.Snippet,
			})
			if err != nil {
				v.logger.Warn("failed to append audit record", "error", err)
			}
		}
	}
}
