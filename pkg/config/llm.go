package config

import "time"

// LLMConfig contains settings for the upstream language model API.
type LLMConfig struct {
	// BaseURL of the chat-completions API.
	BaseURL string

	// TokenURL of the client-credentials token endpoint. Empty disables
	// auth entirely (local model servers).
	TokenURL string

	KeyID     string
	KeySecret string

	// Model used for generation; EmbeddingModel for embeddings.
	Model          string
	EmbeddingModel string

	Temperature float64
	MaxTokens   int

	// CacheTTL bounds how long cached responses are served.
	CacheTTL time.Duration

	// RequestsPerSecond throttles upstream calls; Burst is the limiter burst.
	RequestsPerSecond float64
	Burst             int

	// RequestTimeout bounds a single upstream HTTP call.
	RequestTimeout time.Duration
}

func loadLLMConfig() LLMConfig {
	return LLMConfig{
		BaseURL:           getEnv("LLM_BASE_URL", "https://foundation-models.api.cloud.ru/v1"),
		TokenURL:          getEnv("LLM_TOKEN_URL", ""),
		KeyID:             getEnv("LLM_KEY_ID", ""),
		KeySecret:         getEnv("LLM_KEY_SECRET", ""),
		Model:             getEnv("LLM_MODEL", "openai/gpt-oss-120b"),
		EmbeddingModel:    getEnv("LLM_EMBEDDING_MODEL", ""),
		Temperature:       getEnvFloat("LLM_TEMPERATURE", 0.3),
		MaxTokens:         getEnvInt("LLM_MAX_TOKENS", 4000),
		CacheTTL:          getEnvDuration("LLM_CACHE_TTL", 1*time.Hour),
		RequestsPerSecond: getEnvFloat("LLM_REQUESTS_PER_SECOND", 5),
		Burst:             getEnvInt("LLM_BURST", 10),
		RequestTimeout:    getEnvDuration("LLM_REQUEST_TIMEOUT", 90*time.Second),
	}
}
