// Package events provides real-time event delivery via WebSocket, SSE
// and PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Persistent events are written to the events table and broadcast with
// pg_notify in the same transaction; the serial row id doubles as the
// catch-up cursor for subscribers that connect late or reconnect.
// Transient events (generation.progress) are NOTIFY-only and may be
// lost on reconnect; the persisted lifecycle events carry the
// authoritative state.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Request lifecycle — published on every status transition.
	EventTypeRequestStatus = "request.status"

	// Stage lifecycle — single event type for all stage transitions.
	EventTypeStageStatus = "stage.status"

	// Terminal outcomes carry the result summary or the error.
	EventTypeRequestCompleted = "request.completed"
	EventTypeRequestError     = "request.error"
)

// Stage lifecycle status values (used in StageStatusPayload.Status).
const (
	StageStatusStarted   = "started"
	StageStatusCompleted = "completed"
	StageStatusFailed    = "failed"
	StageStatusTimedOut  = "timed_out"
	StageStatusCancelled = "cancelled"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-stage progress counters — high-frequency, ephemeral.
	EventTypeGenerationProgress = "generation.progress"
)

// GlobalRequestsChannel is the channel for request-level status events.
// Dashboards subscribe to this for the request list.
const GlobalRequestsChannel = "requests"

// RequestChannel returns the channel name for a specific request's
// events. Format: "request:{request_id}"
func RequestChannel(requestID string) string {
	return "request:" + requestID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "request:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
