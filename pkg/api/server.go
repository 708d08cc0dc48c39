// Package api provides the HTTP surface: request submission, task status
// and streaming, synchronous validation/optimization, test listing/export,
// WebSocket subscriptions and health.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/database"
	"github.com/qaforge/qaforge/pkg/events"
	"github.com/qaforge/qaforge/pkg/optimizer"
	"github.com/qaforge/qaforge/pkg/queue"
	"github.com/qaforge/qaforge/pkg/services"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	cfg         *config.Config
	db          *database.Client
	requests    *services.RequestService
	testCases   *services.TestCaseService
	audits      *services.AuditService
	checkpoints *services.CheckpointService
	optimizer   *optimizer.Optimizer
	pool        *queue.WorkerPool
	manager     *events.ConnectionManager
	logger      *slog.Logger

	engine *gin.Engine
}

// NewServer creates the API server. The embedder backs the synchronous
// optimization endpoint; pool and manager may be nil in reduced deployments
// (cancel of in-flight requests and streaming degrade accordingly).
func NewServer(
	cfg *config.Config,
	db *database.Client,
	embedder optimizer.Embedder,
	pool *queue.WorkerPool,
	manager *events.ConnectionManager,
	logger *slog.Logger,
) *Server {
	s := &Server{
		cfg:         cfg,
		db:          db,
		requests:    services.NewRequestService(db.Client),
		testCases:   services.NewTestCaseService(db.Client),
		audits:      services.NewAuditService(db.Client),
		checkpoints: services.NewCheckpointService(db.Client),
		optimizer:   optimizer.New(embedder, cfg.Optimizer.SemanticThreshold, logger),
		pool:        pool,
		manager:     manager,
		logger:      logger,
	}
	s.engine = s.buildRouter()
	return s
}

// Router returns the configured gin engine, ready to serve.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/generate/test-cases", s.generateTestCasesHandler)
		v1.POST("/generate/api-tests", s.generateAPITestsHandler)

		v1.GET("/tasks/:id", s.getTaskHandler)
		v1.GET("/tasks/:id/stream", s.streamTaskHandler)
		v1.POST("/tasks/:id/resume", s.resumeTaskHandler)
		v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)

		v1.POST("/validate/tests", s.validateTestsHandler)
		v1.POST("/optimize/tests", s.optimizeTestsHandler)

		v1.GET("/tests", s.listTestsHandler)
		v1.GET("/tests/export", s.exportTestsHandler)
	}

	return r
}
