package llm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
)

// embeddingDims is the dimensionality of the deterministic fallback.
const embeddingDims = 384

// GetEmbedding returns a vector for text. It tries the upstream
// embedding endpoint when one is configured and falls back to a
// deterministic hash-derived vector, so semantic dedup keeps working
// (degraded to near-exact matching) when the model API is down.
func (c *Client) GetEmbedding(ctx context.Context, text string) ([]float64, error) {
	key := EmbeddingKey(text)
	if vec := c.cache.GetEmbedding(ctx, key); vec != nil {
		return vec, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if vec := c.cache.GetEmbedding(ctx, key); vec != nil {
			return vec, nil
		}

		if c.cfg.EmbeddingModel != "" {
			vec, err := c.fetchEmbedding(ctx, text)
			if err == nil {
				c.cache.SetEmbedding(ctx, key, vec)
				return vec, nil
			}
			c.logger.Warn("embedding endpoint failed, using hash fallback", "error", err)
		}

		vec := FallbackEmbedding(text)
		c.cache.SetEmbedding(ctx, key, vec)
		return vec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]float64), nil
}

func (c *Client) fetchEmbedding(ctx context.Context, text string) ([]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]any{
		"model": c.cfg.EmbeddingModel,
		"input": []string{text},
	})
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("token refresh failed: %w", err)
		}
		tok.SetAuthHeader(req)
	}

	httpResp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, 8<<20))
	if err != nil {
		return nil, err
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, &apiError{Status: httpResp.StatusCode, Body: truncate(string(raw), 512)}
	}

	var parsed struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding response empty")
	}
	return parsed.Data[0].Embedding, nil
}

// FallbackEmbedding derives a deterministic 384-dim L2-normalized
// vector from the SHA-256 digest of text. Identical inputs always map
// to identical vectors.
func FallbackEmbedding(text string) []float64 {
	sum := sha256.Sum256([]byte(text))

	vec := make([]float64, embeddingDims)
	var norm float64
	for i := range vec {
		v := (float64(sum[i%32]) + float64(sum[(i+1)%32])*256) / 65535
		vec[i] = v
		norm += v * v
	}

	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// CosineSimilarity computes the cosine of the angle between a and b.
// Mismatched lengths or zero vectors yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
