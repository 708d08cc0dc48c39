package api

import (
	"time"

	"github.com/qaforge/qaforge/ent"
	"github.com/qaforge/qaforge/pkg/database"
	"github.com/qaforge/qaforge/pkg/queue"
	"github.com/qaforge/qaforge/pkg/validator"
)

// AcceptedResponse acknowledges an asynchronous operation. TaskID mirrors
// RequestID; clients built against task-queue conventions use either.
type AcceptedResponse struct {
	RequestID string    `json:"request_id"`
	TaskID    string    `json:"task_id"`
	Status    string    `json:"status"`
	StreamURL string    `json:"stream_url"`
	CreatedAt time.Time `json:"created_at"`
}

func newAcceptedResponse(req *ent.Request) AcceptedResponse {
	return AcceptedResponse{
		RequestID: req.ID,
		TaskID:    req.ID,
		Status:    string(req.Status),
		StreamURL: streamURL(req.ID),
		CreatedAt: req.CreatedAt,
	}
}

func streamURL(requestID string) string {
	return "/api/v1/tasks/" + requestID + "/stream"
}

// TaskResponse is the body of GET /tasks/{id}.
type TaskResponse struct {
	RequestID     string                  `json:"request_id"`
	RequestType   string                  `json:"request_type"`
	Status        string                  `json:"status"`
	URL           *string                 `json:"url,omitempty"`
	Requirements  []string                `json:"requirements"`
	TestTypes     []string                `json:"test_types,omitempty"`
	ErrorCode     *string                 `json:"error_code,omitempty"`
	ErrorMessage  *string                 `json:"error_message,omitempty"`
	ResultSummary map[string]interface{}  `json:"result_summary,omitempty"`
	RequeueCount  int                     `json:"requeue_count"`
	CreatedAt     time.Time               `json:"created_at"`
	StartedAt     *time.Time              `json:"started_at,omitempty"`
	CompletedAt   *time.Time              `json:"completed_at,omitempty"`
	Tests         []*ent.TestCase         `json:"tests,omitempty"`
	Metrics       []*ent.GenerationMetric `json:"metrics,omitempty"`
}

func newTaskResponse(req *ent.Request) TaskResponse {
	return TaskResponse{
		RequestID:     req.ID,
		RequestType:   string(req.RequestType),
		Status:        string(req.Status),
		URL:           req.URL,
		Requirements:  req.Requirements,
		TestTypes:     req.TestTypes,
		ErrorCode:     req.ErrorCode,
		ErrorMessage:  req.ErrorMessage,
		ResultSummary: req.ResultSummary,
		RequeueCount:  req.RequeueCount,
		CreatedAt:     req.CreatedAt,
		StartedAt:     req.StartedAt,
		CompletedAt:   req.CompletedAt,
		Tests:         req.Edges.TestCases,
		Metrics:       req.Edges.Metrics,
	}
}

// ValidateTestsResponse is the body of POST /validate/tests.
type ValidateTestsResponse struct {
	Results []*validator.Result `json:"results"`
	Count   int                 `json:"count"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string                 `json:"status"`
	Database      *database.HealthStatus `json:"database,omitempty"`
	Pool          *queue.PoolHealth      `json:"pool,omitempty"`
	WSConnections int                    `json:"ws_connections"`
}
