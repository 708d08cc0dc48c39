package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qaforge/qaforge/pkg/database"
)

// healthHandler reports DB connectivity, worker pool state and WebSocket
// connection count. Returns 503 when the database is unreachable or the
// pool reports unhealthy.
// GET /health
func (s *Server) healthHandler(c *gin.Context) {
	resp := HealthResponse{Status: "healthy"}

	dbHealth, err := database.Health(c.Request.Context(), s.db.DB())
	if err != nil {
		s.logger.Error("Health check: database unreachable", "error", err)
		resp.Status = "unhealthy"
	}
	resp.Database = dbHealth

	if s.pool != nil {
		resp.Pool = s.pool.Health()
		if resp.Status == "healthy" && !resp.Pool.IsHealthy {
			resp.Status = "degraded"
		}
	}
	if s.manager != nil {
		resp.WSConnections = s.manager.ActiveConnections()
	}

	status := http.StatusOK
	if resp.Status == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
