package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	responseKeyPrefix  = "llm:response:"
	embeddingKeyPrefix = "llm:embedding:"
)

// Cache stores LLM responses and embeddings in Redis. All failures
// degrade to cache misses; a dead Redis never fails a request.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache creates a cache over the given Redis client. A nil client
// disables caching entirely.
func NewCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "llm_cache"),
	}
}

// ResponseKey derives the cache key for a chat-completion call.
// Identical (system, user, model) triples share one entry.
func ResponseKey(system, user, model string) string {
	sum := sha256.Sum256([]byte(system + user + model))
	return responseKeyPrefix + hex.EncodeToString(sum[:])
}

// EmbeddingKey derives the cache key for an embedding of text.
func EmbeddingKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return embeddingKeyPrefix + hex.EncodeToString(sum[:])
}

// GetResponse returns the cached response for key, or nil on a miss.
func (c *Cache) GetResponse(ctx context.Context, key string) *Response {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", "error", err)
		}
		return nil
	}
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Warn("cache entry undecodable, treating as miss", "key", key, "error", err)
		return nil
	}
	resp.Cached = true
	return &resp
}

// SetResponse stores resp under key with the configured TTL.
func (c *Cache) SetResponse(ctx context.Context, key string, resp *Response) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("failed to marshal response for cache", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "error", err)
	}
}

// GetEmbedding returns the cached embedding for key, or nil on a miss.
func (c *Cache) GetEmbedding(ctx context.Context, key string) []float64 {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", "error", err)
		}
		return nil
	}
	var vec []float64
	if err := json.Unmarshal(raw, &vec); err != nil {
		return nil
	}
	return vec
}

// SetEmbedding stores vec under key with the configured TTL.
func (c *Cache) SetEmbedding(ctx context.Context, key string, vec []float64) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(vec)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "error", err)
	}
}
