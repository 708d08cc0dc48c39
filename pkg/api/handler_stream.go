package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/pkg/events"
	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/services"
)

const sseHeartbeatInterval = 30 * time.Second

// streamTaskHandler streams a request's events over SSE. Every subscriber
// first gets a snapshot of the current status; persisted events missed
// before connecting are replayed from Last-Event-ID; the stream ends
// after a terminal event.
// GET /api/v1/tasks/:id/stream
func (s *Server) streamTaskHandler(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	req, err := s.requests.GetRequest(ctx, id, services.GetRequestOptions{})
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	if s.manager == nil {
		respondError(c, http.StatusServiceUnavailable, codeUnavailable, "streaming not available")
		return
	}

	channel := events.RequestChannel(id)
	ch, unsubscribe, err := s.manager.SubscribeLocal(channel)
	if err != nil {
		s.logger.Error("SSE subscribe failed", "request_id", id, "error", err)
		respondError(c, http.StatusInternalServerError, codeInternal, "failed to subscribe")
		return
	}
	defer unsubscribe()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	// A subscriber sees the current state right away instead of waiting
	// for the next transition. Terminal statuses are absorbing, so the
	// snapshot is the final event and the stream can end here.
	writeSnapshot(c.Writer, req)
	c.Writer.Flush()
	if models.IsTerminalStatus(string(req.Status)) {
		return
	}

	// Replay persisted events the client missed. Subscription is already
	// live, so nothing published in between is lost (duplicates are
	// possible; clients de-dup on event id).
	if sinceID := lastEventID(c); sinceID > 0 {
		catchup, err := s.manager.CatchupEvents(ctx, channel, sinceID)
		if err != nil {
			s.logger.Warn("SSE catchup failed", "request_id", id, "error", err)
		}
		for _, ev := range catchup {
			payload, err := json.Marshal(ev.Payload)
			if err != nil {
				continue
			}
			writeSSE(c.Writer, eventName(payloadType(ev.Payload)), ev.ID, payload)
		}
		if len(catchup) > 0 {
			c.Writer.Flush()
		}
	}

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-ch:
			if !ok {
				return
			}
			var meta struct {
				Type      string `json:"type"`
				DBEventID int64  `json:"db_event_id"`
			}
			_ = json.Unmarshal(data, &meta)
			writeSSE(c.Writer, eventName(meta.Type), meta.DBEventID, data)
			c.Writer.Flush()
			if meta.Type == events.EventTypeRequestCompleted || meta.Type == events.EventTypeRequestError {
				return
			}
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ":heartbeat\n\n")
			c.Writer.Flush()
		}
	}
}

// writeSnapshot emits the request's current state as the first event of a
// stream, shaped like the corresponding published payload. It carries no
// event id so it never disturbs Last-Event-ID resume positions.
func writeSnapshot(w http.ResponseWriter, req *ent.Request) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	status := string(req.Status)

	var event string
	var payload map[string]any
	switch status {
	case models.StatusCompleted:
		event = "completed"
		payload = map[string]any{
			"type":       events.EventTypeRequestCompleted,
			"request_id": req.ID,
			"timestamp":  now,
		}
		if req.ResultSummary != nil {
			payload["summary"] = req.ResultSummary
		}
	case models.StatusFailed, models.StatusCancelled:
		event = "error"
		var code, msg string
		if req.ErrorCode != nil {
			code = *req.ErrorCode
		}
		if req.ErrorMessage != nil {
			msg = *req.ErrorMessage
		}
		payload = map[string]any{
			"type":       events.EventTypeRequestError,
			"request_id": req.ID,
			"status":     status,
			"error_code": code,
			"timestamp":  now,
		}
		if msg != "" {
			payload["error_message"] = msg
		}
	default:
		event = "progress"
		payload = map[string]any{
			"type":       events.EventTypeRequestStatus,
			"request_id": req.ID,
			"status":     status,
			"timestamp":  now,
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	writeSSE(w, event, 0, data)
}

// eventName maps an internal event type to the SSE event name.
func eventName(eventType string) string {
	switch eventType {
	case events.EventTypeRequestCompleted:
		return "completed"
	case events.EventTypeRequestError:
		return "error"
	default:
		return "progress"
	}
}

func payloadType(payload map[string]interface{}) string {
	t, _ := payload["type"].(string)
	return t
}

func writeSSE(w http.ResponseWriter, event string, id int64, data []byte) {
	fmt.Fprintf(w, "event: %s\n", event)
	if id > 0 {
		fmt.Fprintf(w, "id: %d\n", id)
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}

// lastEventID reads the SSE resume position from the standard header or,
// for EventSource polyfills that cannot set headers, a query parameter.
func lastEventID(c *gin.Context) int64 {
	raw := c.GetHeader("Last-Event-ID")
	if raw == "" {
		raw = c.Query("last_event_id")
	}
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
