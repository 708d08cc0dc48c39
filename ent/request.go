// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qaforge/qaforge/ent/checkpoint"
	"github.com/qaforge/qaforge/ent/request"
)

// Request is the model entity for the Request schema.
type Request struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestType holds the value of the "request_type" field.
	RequestType request.RequestType `json:"request_type,omitempty"`
	// Target page URL for UI requests
	URL *string `json:"url,omitempty"`
	// Requirements holds the value of the "requirements" field.
	Requirements []string `json:"requirements,omitempty"`
	// Requested coverage: positive, negative, boundary
	TestTypes []string `json:"test_types,omitempty"`
	// OpenapiURL holds the value of the "openapi_url" field.
	OpenapiURL *string `json:"openapi_url,omitempty"`
	// Inline OpenAPI document for API requests
	OpenapiContent *string `json:"openapi_content,omitempty"`
	// Options holds the value of the "options" field.
	Options map[string]interface{} `json:"options,omitempty"`
	// Status holds the value of the "status" field.
	Status request.Status `json:"status,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Counts, scores and durations recorded on completion
	ResultSummary map[string]interface{} `json:"result_summary,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Times this request was recovered after a worker died
	RequeueCount int `json:"requeue_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequestQuery when eager-loading is set.
	Edges        RequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequestEdges holds the relations/edges for other nodes in the graph.
type RequestEdges struct {
	// TestCases holds the value of the test_cases edge.
	TestCases []*TestCase `json:"test_cases,omitempty"`
	// Metrics holds the value of the metrics edge.
	Metrics []*GenerationMetric `json:"metrics,omitempty"`
	// Coverage holds the value of the coverage edge.
	Coverage []*CoverageAnalysis `json:"coverage,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*SecurityAuditLog `json:"audit_logs,omitempty"`
	// Checkpoint holds the value of the checkpoint edge.
	Checkpoint *Checkpoint `json:"checkpoint,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// TestCasesOrErr returns the TestCases value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) TestCasesOrErr() ([]*TestCase, error) {
	if e.loadedTypes[0] {
		return e.TestCases, nil
	}
	return nil, &NotLoadedError{edge: "test_cases"}
}

// MetricsOrErr returns the Metrics value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) MetricsOrErr() ([]*GenerationMetric, error) {
	if e.loadedTypes[1] {
		return e.Metrics, nil
	}
	return nil, &NotLoadedError{edge: "metrics"}
}

// CoverageOrErr returns the Coverage value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) CoverageOrErr() ([]*CoverageAnalysis, error) {
	if e.loadedTypes[2] {
		return e.Coverage, nil
	}
	return nil, &NotLoadedError{edge: "coverage"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) AuditLogsOrErr() ([]*SecurityAuditLog, error) {
	if e.loadedTypes[3] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// CheckpointOrErr returns the Checkpoint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequestEdges) CheckpointOrErr() (*Checkpoint, error) {
	if e.Checkpoint != nil {
		return e.Checkpoint, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: checkpoint.Label}
	}
	return nil, &NotLoadedError{edge: "checkpoint"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[5] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Request) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case request.FieldRequirements, request.FieldTestTypes, request.FieldOptions, request.FieldResultSummary:
			values[i] = new([]byte)
		case request.FieldRequeueCount:
			values[i] = new(sql.NullInt64)
		case request.FieldID, request.FieldRequestType, request.FieldURL, request.FieldOpenapiURL, request.FieldOpenapiContent, request.FieldStatus, request.FieldErrorCode, request.FieldErrorMessage, request.FieldPodID:
			values[i] = new(sql.NullString)
		case request.FieldLastHeartbeatAt, request.FieldCreatedAt, request.FieldStartedAt, request.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Request fields.
func (_m *Request) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case request.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case request.FieldRequestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_type", values[i])
			} else if value.Valid {
				_m.RequestType = request.RequestType(value.String)
			}
		case request.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case request.FieldRequirements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field requirements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Requirements); err != nil {
					return fmt.Errorf("unmarshal field requirements: %w", err)
				}
			}
		case request.FieldTestTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field test_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestTypes); err != nil {
					return fmt.Errorf("unmarshal field test_types: %w", err)
				}
			}
		case request.FieldOpenapiURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field openapi_url", values[i])
			} else if value.Valid {
				_m.OpenapiURL = new(string)
				*_m.OpenapiURL = value.String
			}
		case request.FieldOpenapiContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field openapi_content", values[i])
			} else if value.Valid {
				_m.OpenapiContent = new(string)
				*_m.OpenapiContent = value.String
			}
		case request.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case request.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = request.Status(value.String)
			}
		case request.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case request.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case request.FieldResultSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultSummary); err != nil {
					return fmt.Errorf("unmarshal field result_summary: %w", err)
				}
			}
		case request.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case request.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case request.FieldRequeueCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requeue_count", values[i])
			} else if value.Valid {
				_m.RequeueCount = int(value.Int64)
			}
		case request.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case request.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case request.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Request.
// This includes values selected through modifiers, order, etc.
func (_m *Request) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTestCases queries the "test_cases" edge of the Request entity.
func (_m *Request) QueryTestCases() *TestCaseQuery {
	return NewRequestClient(_m.config).QueryTestCases(_m)
}

// QueryMetrics queries the "metrics" edge of the Request entity.
func (_m *Request) QueryMetrics() *GenerationMetricQuery {
	return NewRequestClient(_m.config).QueryMetrics(_m)
}

// QueryCoverage queries the "coverage" edge of the Request entity.
func (_m *Request) QueryCoverage() *CoverageAnalysisQuery {
	return NewRequestClient(_m.config).QueryCoverage(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the Request entity.
func (_m *Request) QueryAuditLogs() *SecurityAuditLogQuery {
	return NewRequestClient(_m.config).QueryAuditLogs(_m)
}

// QueryCheckpoint queries the "checkpoint" edge of the Request entity.
func (_m *Request) QueryCheckpoint() *CheckpointQuery {
	return NewRequestClient(_m.config).QueryCheckpoint(_m)
}

// QueryEvents queries the "events" edge of the Request entity.
func (_m *Request) QueryEvents() *EventQuery {
	return NewRequestClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Request.
// Note that you need to call Request.Unwrap() before calling this method if this Request
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Request) Update() *RequestUpdateOne {
	return NewRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Request entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Request) Unwrap() *Request {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Request is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Request) String() string {
	var builder strings.Builder
	builder.WriteString("Request(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestType))
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("requirements=")
	builder.WriteString(fmt.Sprintf("%v", _m.Requirements))
	builder.WriteString(", ")
	builder.WriteString("test_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestTypes))
	builder.WriteString(", ")
	if v := _m.OpenapiURL; v != nil {
		builder.WriteString("openapi_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OpenapiContent; v != nil {
		builder.WriteString("openapi_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("result_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultSummary))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("requeue_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequeueCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Requests is a parsable slice of Request.
type Requests []*Request
