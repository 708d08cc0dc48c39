// QAForge server — provides the HTTP API, manages queue workers and runs
// the test-generation pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/qaforge/qaforge/pkg/api"
	"github.com/qaforge/qaforge/pkg/cleanup"
	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/database"
	"github.com/qaforge/qaforge/pkg/events"
	"github.com/qaforge/qaforge/pkg/llm"
	"github.com/qaforge/qaforge/pkg/queue"
	"github.com/qaforge/qaforge/pkg/recon"
	"github.com/qaforge/qaforge/pkg/services"
	"github.com/qaforge/qaforge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if getEnv("LOG_LEVEL", "info") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func main() {
	// Load .env before anything reads the environment
	envPath := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	logger := newLogger()
	slog.SetDefault(logger)

	podID := resolvePodID()
	logger.Info("Starting QAForge", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: requests this pod owned before a
	// restart go back to the queue.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, &cfg.Queue, podID); err != nil {
		logger.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan covers the remainder
	}

	// 4. LLM client (Redis-backed response/embedding cache)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("Error closing Redis client", "error", err)
		}
	}()
	llmClient := llm.NewClient(cfg.LLM, rdb, logger)
	logger.Info("LLM client initialized", "model", cfg.LLM.Model)

	// 5. Streaming infrastructure
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		logger.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	logger.Info("Streaming infrastructure initialized")

	// 6. Pipeline executor and worker pool
	explorer := recon.NewCachedExplorer(recon.NewExplorer(cfg.Recon, logger), cfg.Recon.CacheTTL)
	executor := queue.NewPipelineExecutor(cfg, dbClient.Client, llmClient, explorer, eventPublisher, logger)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, &cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		logger.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Retention
	cleanupService := cleanup.NewService(&cfg.Retention, eventService,
		services.NewCheckpointService(dbClient.Client))
	cleanupService.Start(ctx)

	// 8. HTTP server (non-blocking)
	apiServer := api.NewServer(cfg, dbClient, llmClient, workerPool, connManager, logger)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	logger.Info("QAForge started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop claiming first, let in-flight requests
	// reach a checkpoint, then close the HTTP surface.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		logger.Warn("Shutdown timeout exceeded — incomplete requests will be orphan-recovered")
	}

	cleanupService.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("Shutdown complete")
}
