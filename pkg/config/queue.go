package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how requests are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes requests.
	WorkerCount int

	// MaxConcurrentRequests is the global limit of requests being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentRequests int

	// PollInterval is the base interval for checking pending requests.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval plus up to PollIntervalJitter.
	PollIntervalJitter time.Duration

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at
	// on its claimed request.
	HeartbeatInterval time.Duration

	// GracefulShutdownTimeout is the max time to wait for active requests
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned requests.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a request can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration

	// MaxRequeues is how many times an orphaned request is re-queued
	// before it is failed outright.
	MaxRequeues int
}

func loadQueueConfig() QueueConfig {
	return QueueConfig{
		WorkerCount:             getEnvInt("QUEUE_WORKER_COUNT", 5),
		MaxConcurrentRequests:   getEnvInt("QUEUE_MAX_CONCURRENT_REQUESTS", 10),
		PollInterval:            getEnvDuration("QUEUE_POLL_INTERVAL", 1*time.Second),
		PollIntervalJitter:      getEnvDuration("QUEUE_POLL_INTERVAL_JITTER", 500*time.Millisecond),
		HeartbeatInterval:       getEnvDuration("QUEUE_HEARTBEAT_INTERVAL", 30*time.Second),
		GracefulShutdownTimeout: getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", 2*time.Minute),
		OrphanDetectionInterval: getEnvDuration("QUEUE_ORPHAN_DETECTION_INTERVAL", 1*time.Minute),
		OrphanThreshold:         getEnvDuration("QUEUE_ORPHAN_THRESHOLD", 1*time.Minute),
		MaxRequeues:             getEnvInt("QUEUE_MAX_REQUEUES", 2),
	}
}
