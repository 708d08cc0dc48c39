package llm

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackEmbedding_Deterministic(t *testing.T) {
	a := FallbackEmbedding("def test_login(page): pass")
	b := FallbackEmbedding("def test_login(page): pass")
	c := FallbackEmbedding("def test_logout(page): pass")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFallbackEmbedding_Shape(t *testing.T) {
	vec := FallbackEmbedding("some test code")
	require.Len(t, vec, embeddingDims)

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9, "vector must be L2-normalized")
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float64{1, 0}, []float64{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-9)

	// Degenerate inputs
	assert.Equal(t, 0.0, CosineSimilarity([]float64{1}, []float64{1, 2}))
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{0, 0}, []float64{1, 1}))
}

func TestCosineSimilarity_IdenticalTextsFullScore(t *testing.T) {
	a := FallbackEmbedding("identical test body")
	b := FallbackEmbedding("identical test body")
	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-9)
}

func TestGetEmbedding_FallbackWithoutModel(t *testing.T) {
	c := newTestClient(t, "http://unused.invalid", true)

	vec, err := c.GetEmbedding(context.Background(), "some test")
	require.NoError(t, err)
	assert.Len(t, vec, embeddingDims)

	// Second call is served from cache and stays identical.
	vec2, err := c.GetEmbedding(context.Background(), "some test")
	require.NoError(t, err)
	assert.Equal(t, vec, vec2)
}

func TestGetEmbedding_SingleFlight(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		calls.Add(1)
		<-release
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, true)
	c.cfg.EmbeddingModel = "embed-model"

	var wg sync.WaitGroup
	results := make([][]float64, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vec, err := c.GetEmbedding(context.Background(), "shared text")
			require.NoError(t, err)
			results[i] = vec
		}(i)
	}

	// Give the goroutines time to pile onto the single-flight group.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "identical concurrent misses must collapse")
	for _, vec := range results {
		assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
	}
}
