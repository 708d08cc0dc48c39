package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/qaforge/qaforge/pkg/config"
)

// tokenRefreshMargin refreshes tokens this long before they expire so
// in-flight calls never race an expiring token.
const tokenRefreshMargin = 5 * time.Minute

// iamTokenSource exchanges a key id/secret pair for a bearer token at
// the provider's IAM endpoint. The endpoint speaks JSON rather than the
// standard form-encoded client-credentials flow, so this implements
// oauth2.TokenSource directly and relies on oauth2.ReuseTokenSource for
// caching and early refresh.
type iamTokenSource struct {
	tokenURL  string
	keyID     string
	keySecret string
	httpc     *http.Client
}

// NewTokenSource builds a cached token source that refreshes tokens
// tokenRefreshMargin before expiry. Returns nil when auth is disabled.
func NewTokenSource(cfg config.LLMConfig, httpc *http.Client) oauth2.TokenSource {
	if cfg.TokenURL == "" {
		return nil
	}
	src := &iamTokenSource{
		tokenURL:  cfg.TokenURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		httpc:     httpc,
	}
	return oauth2.ReuseTokenSourceWithExpiry(nil, src, tokenRefreshMargin)
}

// Token fetches a fresh bearer token. Called by ReuseTokenSource only
// when the cached token is missing or inside the refresh margin.
func (s *iamTokenSource) Token() (*oauth2.Token, error) {
	body, err := json.Marshal(map[string]string{
		"keyId":  s.keyID,
		"secret": s.keySecret,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &apiError{Status: resp.StatusCode, Body: string(raw)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access_token")
	}

	expiresIn := payload.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}

	return &oauth2.Token{
		AccessToken: payload.AccessToken,
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Duration(expiresIn) * time.Second),
	}, nil
}
