package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/queue"
	"github.com/qaforge/qaforge/pkg/services"
)

// getTaskHandler returns a request's status with optional related entities.
// GET /api/v1/tasks/:id?include_tests&include_metrics
func (s *Server) getTaskHandler(c *gin.Context) {
	opts := services.GetRequestOptions{
		IncludeTests:   queryFlag(c, "include_tests"),
		IncludeMetrics: queryFlag(c, "include_metrics"),
	}

	req, err := s.requests.GetRequest(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(req))
}

// resumeTaskHandler re-queues a failed request. The checkpoint is verified
// first so an undecodable one is surfaced as 422 rather than an immediate
// re-failure after re-execution starts.
// POST /api/v1/tasks/:id/resume
func (s *Server) resumeTaskHandler(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	req, err := s.requests.GetRequest(ctx, id, services.GetRequestOptions{})
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	if req.Status != request.StatusFailed {
		respondError(c, http.StatusConflict, codeConflict,
			"only failed requests can be resumed (status: "+string(req.Status)+")")
		return
	}

	cp, err := s.checkpoints.GetCheckpoint(ctx, id)
	switch {
	case err == nil:
		if err := queue.ValidateCheckpoint(cp.Version, cp.Payload); err != nil {
			respondError(c, http.StatusUnprocessableEntity, models.CodeCheckpointCorrupt,
				"stored checkpoint cannot be decoded")
			return
		}
	case errors.Is(err, services.ErrNotFound):
		// No checkpoint yet: the pipeline restarts from the first stage.
	default:
		s.mapServiceError(c, err)
		return
	}

	resumed, err := s.requests.ResumeFailed(ctx, id)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	if !resumed {
		// Lost a race with another resume or a concurrent status change.
		respondError(c, http.StatusConflict, codeConflict, "request is no longer failed")
		return
	}

	c.JSON(http.StatusAccepted, AcceptedResponse{
		RequestID: id,
		TaskID:    id,
		Status:    string(request.StatusPending),
		StreamURL: streamURL(id),
		CreatedAt: req.CreatedAt,
	})
}

// cancelTaskHandler cancels a request. Pending requests flip to cancelled
// directly; in-flight requests on this pod are signalled through the worker
// pool and stop at the next stage boundary.
// POST /api/v1/tasks/:id/cancel
func (s *Server) cancelTaskHandler(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	req, err := s.requests.GetRequest(ctx, id, services.GetRequestOptions{})
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	if models.IsTerminalStatus(string(req.Status)) {
		respondError(c, http.StatusConflict, codeConflict,
			"request already finished (status: "+string(req.Status)+")")
		return
	}

	cancelled, err := s.requests.CancelIfPending(ctx, id)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	status := string(request.StatusCancelled)
	if !cancelled {
		if s.pool == nil || !s.pool.CancelRequest(id) {
			respondError(c, http.StatusConflict, codeConflict,
				"request is running on another instance")
			return
		}
		// Cooperative: the executor observes the cancel at the next boundary.
		status = "cancelling"
	}

	c.JSON(http.StatusAccepted, gin.H{
		"request_id":   id,
		"status":       status,
		"cancelled_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// queryFlag treats presence without a value ("?include_tests") as true.
func queryFlag(c *gin.Context, name string) bool {
	v, ok := c.GetQuery(name)
	if !ok {
		return false
	}
	return v == "" || v == "true" || v == "1"
}
