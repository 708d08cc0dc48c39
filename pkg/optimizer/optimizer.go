// Package optimizer deduplicates generated tests and analyzes how well
// the surviving set covers the stated requirements.
package optimizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/qaforge/qaforge/pkg/llm"
)

// Embedder produces vectors for semantic dedup. The llm client
// satisfies this.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float64, error)
}

// TestInput is one test entering optimization.
type TestInput struct {
	TestID   string `json:"test_id"`
	TestCode string `json:"test_code"`
	// Score is the validator score, used only by the MinScore filter.
	Score int `json:"score,omitempty"`
}

// Duplicate records one removed test and what it duplicated.
type Duplicate struct {
	TestID      string  `json:"test_id"`
	DuplicateOf string  `json:"duplicate_of"`
	Kind        string  `json:"kind"` // exact or semantic
	Similarity  float64 `json:"similarity,omitempty"`
}

// Coverage is one requirement's coverage verdict.
type Coverage struct {
	Requirement string   `json:"requirement"`
	Covered     bool     `json:"covered"`
	CoveredBy   []string `json:"covered_by,omitempty"`
	Quality     string   `json:"quality"` // good, weak, none
}

// Options tune one optimization run.
type Options struct {
	// SemanticThreshold overrides the configured cosine cutoff when > 0.
	SemanticThreshold float64 `json:"semantic_threshold,omitempty"`
	// SkipSemantic limits dedup to exact matching.
	SkipSemantic bool `json:"skip_semantic,omitempty"`
	// MinScore drops tests scoring below it before dedup.
	MinScore int `json:"min_score,omitempty"`
}

// Result is the outcome of one optimization run.
type Result struct {
	OptimizedTests  []TestInput `json:"optimized_tests"`
	DuplicatesFound int         `json:"duplicates_found"`
	Duplicates      []Duplicate `json:"duplicates"`
	CoverageScore   float64     `json:"coverage_score"`
	CoverageDetails []Coverage  `json:"coverage_details"`
	Gaps            []string    `json:"gaps"`
	Recommendations []string    `json:"recommendations"`
}

// Optimizer runs dedup and coverage analysis.
type Optimizer struct {
	embedder  Embedder
	threshold float64
	logger    *slog.Logger
}

// New creates an optimizer with the configured semantic threshold.
func New(embedder Embedder, threshold float64, logger *slog.Logger) *Optimizer {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.85
	}
	return &Optimizer{
		embedder:  embedder,
		threshold: threshold,
		logger:    logger.With("component", "optimizer"),
	}
}

// Optimize deduplicates tests and scores requirement coverage. The
// result is deterministic for identical inputs: ties always keep the
// smallest input index, and re-optimizing the output is a no-op.
func (o *Optimizer) Optimize(ctx context.Context, tests []TestInput, requirements []string, opts Options) (*Result, error) {
	result := &Result{
		OptimizedTests:  []TestInput{},
		Duplicates:      []Duplicate{},
		CoverageDetails: []Coverage{},
		Gaps:            []string{},
		Recommendations: []string{},
	}

	if opts.MinScore > 0 {
		filtered := make([]TestInput, 0, len(tests))
		for _, t := range tests {
			if t.Score >= opts.MinScore {
				filtered = append(filtered, t)
			}
		}
		tests = filtered
	}

	kept, dups := o.dedupExact(tests)

	if !opts.SkipSemantic && len(kept) > 1 {
		threshold := opts.SemanticThreshold
		if threshold <= 0 {
			threshold = o.threshold
		}
		var semDups []Duplicate
		var err error
		kept, semDups, err = o.dedupSemantic(ctx, kept, threshold)
		if err != nil {
			return nil, err
		}
		dups = append(dups, semDups...)
	}

	result.OptimizedTests = kept
	result.Duplicates = dups
	result.DuplicatesFound = len(dups)

	o.analyzeCoverage(kept, requirements, result)
	o.recommend(result)

	o.logger.Info("optimization complete",
		"input", len(tests),
		"kept", len(kept),
		"duplicates", len(dups),
		"coverage", result.CoverageScore)
	return result, nil
}

// canonicalize normalizes line endings and strips trailing whitespace
// per line so formatting noise cannot defeat exact dedup.
func canonicalize(code string) string {
	lines := strings.Split(strings.ReplaceAll(code, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// dedupExact removes byte-identical tests after canonicalization,
// keeping the first occurrence.
func (o *Optimizer) dedupExact(tests []TestInput) ([]TestInput, []Duplicate) {
	kept := make([]TestInput, 0, len(tests))
	var dups []Duplicate
	seen := make(map[string]string) // digest -> first test id

	for _, t := range tests {
		sum := sha256.Sum256([]byte(canonicalize(t.TestCode)))
		digest := hex.EncodeToString(sum[:])

		if firstID, ok := seen[digest]; ok {
			dups = append(dups, Duplicate{
				TestID:      t.TestID,
				DuplicateOf: firstID,
				Kind:        "exact",
				Similarity:  1.0,
			})
			continue
		}
		seen[digest] = t.TestID
		kept = append(kept, t)
	}
	return kept, dups
}

// dedupSemantic removes tests whose embedding cosine similarity against
// an earlier keeper reaches the threshold. A removed test is attributed
// to the earliest matching keeper.
func (o *Optimizer) dedupSemantic(ctx context.Context, tests []TestInput, threshold float64) ([]TestInput, []Duplicate, error) {
	vectors := make([][]float64, len(tests))
	for i, t := range tests {
		vec, err := o.embedder.GetEmbedding(ctx, t.TestCode)
		if err != nil {
			return nil, nil, fmt.Errorf("embedding failed for %s: %w", t.TestID, err)
		}
		vectors[i] = vec
	}

	kept := make([]TestInput, 0, len(tests))
	keptIdx := make([]int, 0, len(tests))
	var dups []Duplicate

	for i, t := range tests {
		dup := false
		for _, j := range keptIdx {
			sim := llm.CosineSimilarity(vectors[i], vectors[j])
			if sim >= threshold {
				dups = append(dups, Duplicate{
					TestID:      t.TestID,
					DuplicateOf: tests[j].TestID,
					Kind:        "semantic",
					Similarity:  sim,
				})
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, t)
			keptIdx = append(keptIdx, i)
		}
	}
	return kept, dups, nil
}

// analyzeCoverage matches each requirement against the kept tests with
// a case-folded substring check on code (which includes the test name).
func (o *Optimizer) analyzeCoverage(tests []TestInput, requirements []string, result *Result) {
	if len(requirements) == 0 {
		result.CoverageScore = 1.0
		return
	}

	covered := 0
	for _, req := range requirements {
		needle := strings.ToLower(strings.TrimSpace(req))
		cov := Coverage{Requirement: req, Quality: "none"}

		for _, t := range tests {
			if strings.Contains(strings.ToLower(t.TestCode), needle) {
				cov.CoveredBy = append(cov.CoveredBy, t.TestID)
			}
		}

		switch {
		case len(cov.CoveredBy) >= 2:
			cov.Covered = true
			cov.Quality = "good"
		case len(cov.CoveredBy) == 1:
			cov.Covered = true
			cov.Quality = "weak"
		}

		if cov.Covered {
			covered++
		} else {
			result.Gaps = append(result.Gaps, req)
		}
		result.CoverageDetails = append(result.CoverageDetails, cov)
	}

	result.CoverageScore = float64(covered) / float64(len(requirements))
}

func (o *Optimizer) recommend(result *Result) {
	if result.DuplicatesFound > 0 {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("removed %d duplicate tests, review generation prompts if this recurs", result.DuplicatesFound))
	}
	if len(result.Gaps) > 0 {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("%d requirements have no covering test, add tests for: %s",
				len(result.Gaps), strings.Join(result.Gaps, "; ")))
	}
	for _, cov := range result.CoverageDetails {
		if cov.Quality == "weak" {
			result.Recommendations = append(result.Recommendations,
				"some requirements are covered by a single test, consider adding negative and boundary variants")
			break
		}
	}
}
