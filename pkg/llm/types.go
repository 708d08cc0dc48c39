// Package llm provides a resilient client for the upstream language
// model API: Redis response cache, single-flight collapsing, bearer
// token refresh, circuit breaker, rate limiting and retries.
package llm

import (
	"errors"
	"fmt"
)

// CallInput describes one chat-completion call.
type CallInput struct {
	System      string
	User        string
	Model       string // empty uses the configured default
	Temperature *float64
	MaxTokens   int
	// SkipCache bypasses the Redis response cache and the collapsing
	// of concurrent identical calls; every call then reaches the
	// upstream. Caching is on by default.
	SkipCache bool
}

// Usage reports token consumption for one call.
type Usage struct {
	Prompt     int `json:"prompt_tokens"`
	Completion int `json:"completion_tokens"`
	Total      int `json:"total_tokens"`
}

// Response is the result of a chat-completion call.
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   Usage  `json:"usage"`
	Cached  bool   `json:"cached,omitempty"`
}

// apiError is a non-2xx upstream response.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Body)
}

// retryable reports whether the upstream failure is worth another
// attempt. A definitive 4xx rejection (other than 429) is not; network
// errors, timeouts, 5xx, 429, breaker-open and token failures are.
func retryable(err error) bool {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.Status == 429 || ae.Status >= 500
	}
	return true
}
