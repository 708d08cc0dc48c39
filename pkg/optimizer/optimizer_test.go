package optimizer

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/llm"
)

// hashEmbedder uses the deterministic fallback embedding, so only
// identical code reaches similarity 1.0.
type hashEmbedder struct{}

func (hashEmbedder) GetEmbedding(_ context.Context, text string) ([]float64, error) {
	return llm.FallbackEmbedding(text), nil
}

// fixedEmbedder returns preset vectors keyed by code.
type fixedEmbedder struct {
	vectors map[string][]float64
}

func (f *fixedEmbedder) GetEmbedding(_ context.Context, text string) ([]float64, error) {
	return f.vectors[text], nil
}

func newOptimizer(e Embedder) *Optimizer {
	return New(e, 0.85, slog.New(slog.DiscardHandler))
}

func TestOptimize_ExactDedup(t *testing.T) {
	o := newOptimizer(hashEmbedder{})

	tests := []TestInput{
		{TestID: "t1", TestCode: "def test_a(page):\n    assert True\n"},
		{TestID: "t2", TestCode: "def test_a(page):\n    assert True\n"},
		{TestID: "t3", TestCode: "def test_b(page):\n    assert False\n"},
	}

	result, err := o.Optimize(context.Background(), tests, nil, Options{})
	require.NoError(t, err)

	require.Len(t, result.OptimizedTests, 2)
	assert.Equal(t, "t1", result.OptimizedTests[0].TestID, "first occurrence wins")
	assert.Equal(t, "t3", result.OptimizedTests[1].TestID)

	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "t2", result.Duplicates[0].TestID)
	assert.Equal(t, "t1", result.Duplicates[0].DuplicateOf)
	assert.Equal(t, "exact", result.Duplicates[0].Kind)
}

func TestOptimize_ExactDedupIgnoresWhitespaceNoise(t *testing.T) {
	o := newOptimizer(hashEmbedder{})

	tests := []TestInput{
		{TestID: "t1", TestCode: "def test_a(page):\n    assert True\n"},
		{TestID: "t2", TestCode: "def test_a(page):   \r\n    assert True\t\r\n"},
	}

	result, err := o.Optimize(context.Background(), tests, nil, Options{SkipSemantic: true})
	require.NoError(t, err)
	assert.Len(t, result.OptimizedTests, 1)
	assert.Equal(t, 1, result.DuplicatesFound)
}

func TestOptimize_SemanticDedup(t *testing.T) {
	// a and b are nearly parallel (similarity above 0.85); c is orthogonal.
	e := &fixedEmbedder{vectors: map[string][]float64{
		"code-a": {1, 0, 0},
		"code-b": {0.99, 0.14, 0},
		"code-c": {0, 0, 1},
	}}
	o := newOptimizer(e)

	tests := []TestInput{
		{TestID: "a", TestCode: "code-a"},
		{TestID: "b", TestCode: "code-b"},
		{TestID: "c", TestCode: "code-c"},
	}

	result, err := o.Optimize(context.Background(), tests, nil, Options{})
	require.NoError(t, err)

	require.Len(t, result.OptimizedTests, 2)
	assert.Equal(t, "a", result.OptimizedTests[0].TestID)
	assert.Equal(t, "c", result.OptimizedTests[1].TestID)

	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "b", result.Duplicates[0].TestID)
	assert.Equal(t, "a", result.Duplicates[0].DuplicateOf, "attributed to the earliest keeper")
	assert.Equal(t, "semantic", result.Duplicates[0].Kind)
	assert.Greater(t, result.Duplicates[0].Similarity, 0.85)
}

func TestOptimize_SemanticTieBreaksToSmallestIndex(t *testing.T) {
	// All three are mutually similar; only the first survives.
	e := &fixedEmbedder{vectors: map[string][]float64{
		"x": {1, 0},
		"y": {1, 0.01},
		"z": {1, 0.02},
	}}
	o := newOptimizer(e)

	tests := []TestInput{
		{TestID: "x", TestCode: "x"},
		{TestID: "y", TestCode: "y"},
		{TestID: "z", TestCode: "z"},
	}

	result, err := o.Optimize(context.Background(), tests, nil, Options{})
	require.NoError(t, err)

	require.Len(t, result.OptimizedTests, 1)
	assert.Equal(t, "x", result.OptimizedTests[0].TestID)
	for _, d := range result.Duplicates {
		assert.Equal(t, "x", d.DuplicateOf)
	}
}

func TestOptimize_SkipSemantic(t *testing.T) {
	e := &fixedEmbedder{vectors: map[string][]float64{}}
	o := newOptimizer(e)

	tests := []TestInput{
		{TestID: "a", TestCode: "nearly the same"},
		{TestID: "b", TestCode: "nearly the same "},
	}

	// With SkipSemantic the embedder must never be consulted; the two
	// canonicalize to the same bytes anyway.
	result, err := o.Optimize(context.Background(), tests, nil, Options{SkipSemantic: true})
	require.NoError(t, err)
	assert.Len(t, result.OptimizedTests, 1)
}

func TestOptimize_Deterministic(t *testing.T) {
	o := newOptimizer(hashEmbedder{})

	tests := []TestInput{
		{TestID: "t1", TestCode: "def test_a(page):\n    assert True\n"},
		{TestID: "t2", TestCode: "def test_b(page):\n    assert 1 == 1\n"},
		{TestID: "t3", TestCode: "def test_a(page):\n    assert True\n"},
	}
	reqs := []string{"test_a", "test_b", "uncovered thing"}

	first, err := o.Optimize(context.Background(), tests, reqs, Options{})
	require.NoError(t, err)
	second, err := o.Optimize(context.Background(), tests, reqs, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptimize_Idempotent(t *testing.T) {
	o := newOptimizer(hashEmbedder{})

	tests := []TestInput{
		{TestID: "t1", TestCode: "def test_a(page):\n    assert True\n"},
		{TestID: "t2", TestCode: "def test_a(page):\n    assert True\n"},
		{TestID: "t3", TestCode: "def test_b(page):\n    assert False\n"},
	}

	first, err := o.Optimize(context.Background(), tests, nil, Options{})
	require.NoError(t, err)

	second, err := o.Optimize(context.Background(), first.OptimizedTests, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, first.OptimizedTests, second.OptimizedTests)
	assert.Zero(t, second.DuplicatesFound, "re-optimizing the output finds nothing new")
}

func TestOptimize_Coverage(t *testing.T) {
	o := newOptimizer(hashEmbedder{})

	tests := []TestInput{
		{TestID: "t1", TestCode: "def test_login_positive(page):\n    # login happy path\n    assert True\n"},
		{TestID: "t2", TestCode: "def test_login_negative(page):\n    # login with bad password\n    assert True\n"},
		{TestID: "t3", TestCode: "def test_search(page):\n    assert True\n"},
	}
	reqs := []string{"login", "search", "checkout"}

	result, err := o.Optimize(context.Background(), tests, reqs, Options{})
	require.NoError(t, err)

	require.Len(t, result.CoverageDetails, 3)

	login := result.CoverageDetails[0]
	assert.True(t, login.Covered)
	assert.Equal(t, "good", login.Quality, "two covering tests is good coverage")
	assert.Equal(t, []string{"t1", "t2"}, login.CoveredBy)

	search := result.CoverageDetails[1]
	assert.True(t, search.Covered)
	assert.Equal(t, "weak", search.Quality)

	checkout := result.CoverageDetails[2]
	assert.False(t, checkout.Covered)
	assert.Equal(t, "none", checkout.Quality)

	assert.InDelta(t, 2.0/3.0, result.CoverageScore, 1e-9)
	assert.Equal(t, []string{"checkout"}, result.Gaps)
	assert.NotEmpty(t, result.Recommendations)
}

func TestOptimize_NoRequirements(t *testing.T) {
	o := newOptimizer(hashEmbedder{})

	result, err := o.Optimize(context.Background(),
		[]TestInput{{TestID: "t1", TestCode: "def test_a(page):\n    assert True\n"}},
		nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.CoverageScore)
	assert.Empty(t, result.Gaps)
	assert.Empty(t, result.CoverageDetails)
}

func TestOptimize_MinScoreFilter(t *testing.T) {
	o := newOptimizer(hashEmbedder{})

	tests := []TestInput{
		{TestID: "t1", TestCode: "def test_a(page):\n    assert True\n", Score: 100},
		{TestID: "t2", TestCode: "def test_b(page):\n    assert True\n", Score: 40},
	}

	result, err := o.Optimize(context.Background(), tests, nil, Options{MinScore: 60})
	require.NoError(t, err)
	require.Len(t, result.OptimizedTests, 1)
	assert.Equal(t, "t1", result.OptimizedTests[0].TestID)
}

func TestOptimize_Empty(t *testing.T) {
	o := newOptimizer(hashEmbedder{})

	result, err := o.Optimize(context.Background(), nil, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, result.OptimizedTests)
	assert.Zero(t, result.DuplicatesFound)
	assert.Equal(t, 1.0, result.CoverageScore)
}
