package events

import (
	"github.com/qaforge/qaforge/pkg/models"
)

// RequestStatusPayload is the payload for request.status events.
// Published on every request lifecycle transition.
type RequestStatusPayload struct {
	Type      string `json:"type"`       // always EventTypeRequestStatus
	RequestID string `json:"request_id"` // request UUID
	Status    string `json:"status"`     // pending, reconnaissance, ..., completed, failed, cancelled
	Timestamp string `json:"timestamp"`  // RFC3339Nano
}

// StageStatusPayload is the payload for stage.status events.
// Single event type for all stage lifecycle transitions.
type StageStatusPayload struct {
	Type       string `json:"type"`                 // always EventTypeStageStatus
	RequestID  string `json:"request_id"`           // request UUID
	Stage      string `json:"stage"`                // reconnaissance, generation, validation, optimization
	StageIndex int    `json:"stage_index"`          // 1-based position in the pipeline
	Status     string `json:"status"`               // started, completed, failed, timed_out, cancelled
	Attempt    int    `json:"attempt,omitempty"`    // 1-based attempt number within the stage
	ErrorCode  string `json:"error_code,omitempty"` // set for failed/timed_out
	Timestamp  string `json:"timestamp"`            // RFC3339Nano
}

// GenerationProgressPayload is the payload for generation.progress
// transient events. High frequency; lost on reconnect.
type GenerationProgressPayload struct {
	Type           string `json:"type"`       // always EventTypeGenerationProgress
	RequestID      string `json:"request_id"` // request UUID
	Stage          string `json:"stage"`
	TestsGenerated int    `json:"tests_generated,omitempty"`
	TestsValidated int    `json:"tests_validated,omitempty"`
	Message        string `json:"message,omitempty"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// RequestCompletedPayload is the payload for request.completed events.
type RequestCompletedPayload struct {
	Type      string                `json:"type"`       // always EventTypeRequestCompleted
	RequestID string                `json:"request_id"` // request UUID
	Summary   *models.ResultSummary `json:"summary,omitempty"`
	Timestamp string                `json:"timestamp"` // RFC3339Nano
}

// RequestErrorPayload is the payload for request.error events.
// Published when a request reaches failed or cancelled.
type RequestErrorPayload struct {
	Type         string `json:"type"`       // always EventTypeRequestError
	RequestID    string `json:"request_id"` // request UUID
	Status       string `json:"status"`     // failed or cancelled
	Stage        string `json:"stage,omitempty"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message,omitempty"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}
