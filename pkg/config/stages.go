package config

import "time"

// StagesConfig contains per-stage timeout and retry budgets.
type StagesConfig struct {
	ReconTimeout time.Duration
	ReconRetries int
	ReconBackoff time.Duration

	GenerationTimeout time.Duration
	GenerationRetries int

	// ValidationTimeoutPerTest scales with batch size up to
	// ValidationTimeoutCap.
	ValidationTimeoutPerTest time.Duration
	ValidationTimeoutCap     time.Duration

	OptimizationTimeout time.Duration
}

func loadStagesConfig() StagesConfig {
	return StagesConfig{
		ReconTimeout:             getEnvDuration("STAGE_RECON_TIMEOUT", 60*time.Second),
		ReconRetries:             getEnvInt("STAGE_RECON_RETRIES", 2),
		ReconBackoff:             getEnvDuration("STAGE_RECON_BACKOFF", 2*time.Second),
		GenerationTimeout:        getEnvDuration("STAGE_GENERATION_TIMEOUT", 120*time.Second),
		GenerationRetries:        getEnvInt("STAGE_GENERATION_RETRIES", 3),
		ValidationTimeoutPerTest: getEnvDuration("STAGE_VALIDATION_TIMEOUT_PER_TEST", 30*time.Second),
		ValidationTimeoutCap:     getEnvDuration("STAGE_VALIDATION_TIMEOUT_CAP", 300*time.Second),
		OptimizationTimeout:      getEnvDuration("STAGE_OPTIMIZATION_TIMEOUT", 60*time.Second),
	}
}

// ValidationTimeout returns the budget for validating n tests.
func (c StagesConfig) ValidationTimeout(n int) time.Duration {
	if n < 1 {
		n = 1
	}
	d := time.Duration(n) * c.ValidationTimeoutPerTest
	if d > c.ValidationTimeoutCap {
		return c.ValidationTimeoutCap
	}
	return d
}
