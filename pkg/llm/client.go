package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
)

const (
	maxAttempts    = 3
	initialBackoff = 1 * time.Second
)

// Client talks to an OpenAI-compatible chat-completions API.
type Client struct {
	cfg     config.LLMConfig
	httpc   *http.Client
	cache   *Cache
	group   singleflight.Group
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	tokens  oauth2.TokenSource
	logger  *slog.Logger

	// backoff is the first retry delay; tests shrink it.
	backoff time.Duration
}

// NewClient creates an LLM client. rdb may be nil to disable caching.
func NewClient(cfg config.LLMConfig, rdb *redis.Client, logger *slog.Logger) *Client {
	httpc := &http.Client{Timeout: cfg.RequestTimeout}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "llm",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("llm circuit breaker state change",
				"from", from.String(), "to", to.String())
		},
	})

	return &Client{
		cfg:     cfg,
		httpc:   httpc,
		cache:   NewCache(rdb, cfg.CacheTTL, logger),
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		tokens:  NewTokenSource(cfg, httpc),
		logger:  logger.With("component", "llm_client"),
		backoff: initialBackoff,
	}
}

// Call executes one chat-completion call, honoring the cache and
// collapsing concurrent identical cacheable calls.
func (c *Client) Call(ctx context.Context, in CallInput) (*Response, error) {
	model := in.Model
	if model == "" {
		model = c.cfg.Model
	}

	if in.SkipCache {
		return c.callWithRetry(ctx, in, model)
	}

	key := ResponseKey(in.System, in.User, model)
	if resp := c.cache.GetResponse(ctx, key); resp != nil {
		return resp, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the single-flight lock; a concurrent caller
		// may have populated the cache while we queued.
		if resp := c.cache.GetResponse(ctx, key); resp != nil {
			return resp, nil
		}
		resp, err := c.callWithRetry(ctx, in, model)
		if err != nil {
			return nil, err
		}
		c.cache.SetResponse(ctx, key, resp)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Response), nil
}

// callWithRetry retries transient upstream failures with exponential
// backoff (1s, 2s, 4s). A definitive 4xx rejection fails immediately.
func (c *Client) callWithRetry(ctx context.Context, in CallInput, model string) (*Response, error) {
	var lastErr error
	backoff := c.backoff

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, models.ErrCancelled
		}

		resp, err := c.doCall(ctx, in, model)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, models.NewPermanent(models.CodeLLMUnavailable, err)
		}
		if attempt == maxAttempts {
			break
		}

		c.logger.Warn("llm call failed, retrying",
			"attempt", attempt, "backoff", backoff, "error", err)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, models.ErrCancelled
		}
		backoff *= 2
	}

	return nil, models.NewTransient(models.CodeLLMUnavailable, lastErr)
}

func (c *Client) doCall(ctx context.Context, in CallInput, model string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	v, err := c.breaker.Execute(func() (any, error) {
		return c.doRequest(ctx, in, model)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Response), nil
}

func (c *Client) doRequest(ctx context.Context, in CallInput, model string) (*Response, error) {
	temperature := c.cfg.Temperature
	if in.Temperature != nil {
		temperature = *in.Temperature
	}
	maxTokens := in.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}

	payload := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": in.System},
			{"role": "user", "content": in.User},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
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
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, &apiError{Status: httpResp.StatusCode, Body: truncate(string(raw), 512)}
	}

	var parsed struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage Usage `json:"usage"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	content := ""
	if len(parsed.Choices) > 0 {
		content = parsed.Choices[0].Message.Content
	}

	respModel := parsed.Model
	if respModel == "" {
		respModel = model
	}

	return &Response{
		Content: content,
		Model:   respModel,
		Usage:   parsed.Usage,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
