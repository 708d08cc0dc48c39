package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range keys {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t,
		"SERVER_PORT", "QUEUE_WORKER_COUNT", "VALIDATOR_FANOUT",
		"OPTIMIZER_SEMANTIC_THRESHOLD", "LLM_BASE_URL", "STAGE_RECON_TIMEOUT",
	)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 8, cfg.Validator.Fanout)
	assert.Equal(t, 0.85, cfg.Optimizer.SemanticThreshold)
	assert.Equal(t, 60*time.Second, cfg.Stages.ReconTimeout)
	assert.Equal(t, 120*time.Second, cfg.Stages.GenerationTimeout)
	assert.Equal(t, 2, cfg.Stages.ReconRetries)
	assert.Equal(t, 3, cfg.Stages.GenerationRetries)
	assert.Equal(t, time.Hour, cfg.LLM.CacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "QUEUE_WORKER_COUNT", "OPTIMIZER_SEMANTIC_THRESHOLD")

	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("QUEUE_WORKER_COUNT", "12")
	os.Setenv("OPTIMIZER_SEMANTIC_THRESHOLD", "0.9")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 12, cfg.Queue.WorkerCount)
	assert.Equal(t, 0.9, cfg.Optimizer.SemanticThreshold)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Server.Port = 8080
		cfg.Queue.WorkerCount = 5
		cfg.Validator.Fanout = 8
		cfg.Optimizer.SemanticThreshold = 0.85
		cfg.LLM.BaseURL = "https://example.com/v1"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "SERVER_PORT"},
		{"zero workers", func(c *Config) { c.Queue.WorkerCount = 0 }, "QUEUE_WORKER_COUNT"},
		{"zero fanout", func(c *Config) { c.Validator.Fanout = 0 }, "VALIDATOR_FANOUT"},
		{"threshold above one", func(c *Config) { c.Optimizer.SemanticThreshold = 1.5 }, "OPTIMIZER_SEMANTIC_THRESHOLD"},
		{"missing base url", func(c *Config) { c.LLM.BaseURL = "" }, "LLM_BASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidationTimeout(t *testing.T) {
	c := StagesConfig{
		ValidationTimeoutPerTest: 30 * time.Second,
		ValidationTimeoutCap:     300 * time.Second,
	}

	assert.Equal(t, 30*time.Second, c.ValidationTimeout(0))
	assert.Equal(t, 30*time.Second, c.ValidationTimeout(1))
	assert.Equal(t, 150*time.Second, c.ValidationTimeout(5))
	assert.Equal(t, 300*time.Second, c.ValidationTimeout(10))
	assert.Equal(t, 300*time.Second, c.ValidationTimeout(100))
}
