// Package config loads service configuration from the environment.
// Defaults live in code; a .env file is applied by main via godotenv
// before this package reads anything.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Queue     QueueConfig
	LLM       LLMConfig
	Redis     RedisConfig
	Recon     ReconConfig
	Validator ValidatorConfig
	Optimizer OptimizerConfig
	Stages    StagesConfig
	Retention RetentionConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// RetentionConfig controls background cleanup of the durable event log.
type RetentionConfig struct {
	EventTTL        time.Duration
	CleanupInterval time.Duration
}

// RedisConfig contains cache connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ReconConfig contains reconnaissance stage settings.
type ReconConfig struct {
	MaxElements int
	CacheTTL    time.Duration
}

// ValidatorConfig contains validation stage settings.
type ValidatorConfig struct {
	Fanout int
}

// OptimizerConfig contains optimization stage settings.
type OptimizerConfig struct {
	SemanticThreshold float64
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvInt("SERVER_PORT", 8080),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DATABASE_HOST", "localhost"),
			Port:            getEnvInt("DATABASE_PORT", 5432),
			User:            getEnv("DATABASE_USER", "qaforge"),
			Password:        os.Getenv("DATABASE_PASSWORD"),
			Database:        getEnv("DATABASE_NAME", "qaforge"),
			SSLMode:         getEnv("DATABASE_SSL_MODE", "disable"),
			MaxOpenConns:    getEnvInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getEnvDuration("DATABASE_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		Queue:     loadQueueConfig(),
		LLM:       loadLLMConfig(),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Recon: ReconConfig{
			MaxElements: getEnvInt("RECON_MAX_ELEMENTS", 50),
			CacheTTL:    getEnvDuration("RECON_CACHE_TTL", 30*time.Minute),
		},
		Validator: ValidatorConfig{
			Fanout: getEnvInt("VALIDATOR_FANOUT", 8),
		},
		Optimizer: OptimizerConfig{
			SemanticThreshold: getEnvFloat("OPTIMIZER_SEMANTIC_THRESHOLD", 0.85),
		},
		Stages: loadStagesConfig(),
		Retention: RetentionConfig{
			EventTTL:        getEnvDuration("RETENTION_EVENT_TTL", 7*24*time.Hour),
			CleanupInterval: getEnvDuration("RETENTION_CLEANUP_INTERVAL", 1*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}
	if c.Queue.WorkerCount <= 0 {
		return fmt.Errorf("QUEUE_WORKER_COUNT must be positive, got %d", c.Queue.WorkerCount)
	}
	if c.Validator.Fanout <= 0 {
		return fmt.Errorf("VALIDATOR_FANOUT must be positive, got %d", c.Validator.Fanout)
	}
	if c.Optimizer.SemanticThreshold <= 0 || c.Optimizer.SemanticThreshold > 1 {
		return fmt.Errorf("OPTIMIZER_SEMANTIC_THRESHOLD must be in (0, 1], got %v", c.Optimizer.SemanticThreshold)
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM_BASE_URL is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
