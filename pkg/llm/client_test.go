package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func completionResponse(content string) map[string]any {
	return map[string]any{
		"model": "test-model",
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
		"usage": map[string]int{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
}

func newTestClient(t *testing.T, serverURL string, withRedis bool) *Client {
	t.Helper()

	var rdb *redis.Client
	if withRedis {
		mr := miniredis.RunT(t)
		rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { rdb.Close() })
	}

	cfg := config.LLMConfig{
		BaseURL:           serverURL,
		Model:             "test-model",
		Temperature:       0.3,
		MaxTokens:         100,
		CacheTTL:          time.Hour,
		RequestsPerSecond: 1000,
		Burst:             1000,
		RequestTimeout:    5 * time.Second,
	}

	c := NewClient(cfg, rdb, testLogger())
	c.backoff = time.Millisecond
	return c
}

func TestCall_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		json.NewEncoder(w).Encode(completionResponse("generated code"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, false)

	resp, err := c.Call(context.Background(), CallInput{System: "sys", User: "user"})
	require.NoError(t, err)
	assert.Equal(t, "generated code", resp.Content)
	assert.Equal(t, 30, resp.Usage.Total)
	assert.False(t, resp.Cached)
}

func TestCall_CacheHit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(completionResponse("cached answer"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, true)

	// Caching needs no opt-in; identical calls share one upstream hit.
	in := CallInput{System: "sys", User: "user"}

	first, err := c.Call(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := c.Call(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Content, second.Content)

	assert.Equal(t, int32(1), calls.Load())
}

func TestCall_SkipCacheBypassesCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(completionResponse("fresh answer"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, true)
	in := CallInput{System: "sys", User: "user", SkipCache: true}

	for i := 0; i < 2; i++ {
		resp, err := c.Call(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, resp.Cached)
	}
	assert.Equal(t, int32(2), calls.Load(), "skip_cache calls must each reach the upstream")
}

func TestCall_CacheKeyedByModel(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(completionResponse("answer"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, true)

	_, err := c.Call(context.Background(), CallInput{System: "s", User: "u"})
	require.NoError(t, err)
	_, err = c.Call(context.Background(), CallInput{System: "s", User: "u", Model: "other-model"})
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load(), "different models must not share cache entries")
}

func TestCall_RetriesTransientThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(completionResponse("third time lucky"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, false)

	resp, err := c.Call(context.Background(), CallInput{System: "sys", User: "user"})
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", resp.Content)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCall_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, false)

	_, err := c.Call(context.Background(), CallInput{System: "sys", User: "user"})
	require.Error(t, err)
	assert.True(t, models.IsTransient(err))
	assert.Equal(t, models.CodeLLMUnavailable, models.ErrorCode(err))
	assert.Equal(t, int32(maxAttempts), calls.Load())
}

func TestCall_PermanentRejectionNoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, false)

	_, err := c.Call(context.Background(), CallInput{System: "sys", User: "user"})
	require.Error(t, err)
	assert.False(t, models.IsTransient(err))
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestCall_SingleFlight(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		json.NewEncoder(w).Encode(completionResponse("shared"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, true)
	in := CallInput{System: "sys", User: "user"}

	var wg sync.WaitGroup
	results := make([]*Response, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := c.Call(context.Background(), in)
			require.NoError(t, err)
			results[i] = resp
		}(i)
	}

	// Give the goroutines time to pile onto the single-flight group.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "identical concurrent calls must collapse")
	for _, resp := range results {
		assert.Equal(t, "shared", resp.Content)
	}
}

func TestCall_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse("unused"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Call(ctx, CallInput{System: "sys", User: "user"})
	require.ErrorIs(t, err, models.ErrCancelled)
}

func TestResponseKey(t *testing.T) {
	k1 := ResponseKey("sys", "user", "model-a")
	k2 := ResponseKey("sys", "user", "model-b")
	k3 := ResponseKey("sys", "user", "model-a")

	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, k3)
	assert.Contains(t, k1, responseKeyPrefix)
}

func TestTokenSource_CachesToken(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "key-id", req["keyId"])
		assert.Equal(t, "key-secret", req["secret"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"expires_in":   3600,
		})
	}))
	defer srv.Close()

	src := NewTokenSource(config.LLMConfig{
		TokenURL:  srv.URL,
		KeyID:     "key-id",
		KeySecret: "key-secret",
	}, srv.Client())
	require.NotNil(t, src)

	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok.AccessToken)

	// A valid token outside the refresh margin is reused.
	_, err = src.Token()
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTokenSource_DisabledWithoutURL(t *testing.T) {
	src := NewTokenSource(config.LLMConfig{}, http.DefaultClient)
	assert.Nil(t, src)
}
