// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/ent/request"
)

// GenerationMetric is the model entity for the GenerationMetric schema.
type GenerationMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage generationmetric.Stage `json:"stage,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// Status holds the value of the "status" field.
	Status generationmetric.Status `json:"status,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int `json:"duration_ms,omitempty"`
	// TokensPrompt holds the value of the "tokens_prompt" field.
	TokensPrompt int `json:"tokens_prompt,omitempty"`
	// TokensCompletion holds the value of the "tokens_completion" field.
	TokensCompletion int `json:"tokens_completion,omitempty"`
	// TokensTotal holds the value of the "tokens_total" field.
	TokensTotal int `json:"tokens_total,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GenerationMetricQuery when eager-loading is set.
	Edges        GenerationMetricEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GenerationMetricEdges holds the relations/edges for other nodes in the graph.
type GenerationMetricEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GenerationMetricEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationmetric.FieldAttempt, generationmetric.FieldDurationMs, generationmetric.FieldTokensPrompt, generationmetric.FieldTokensCompletion, generationmetric.FieldTokensTotal:
			values[i] = new(sql.NullInt64)
		case generationmetric.FieldID, generationmetric.FieldRequestID, generationmetric.FieldStage, generationmetric.FieldStatus, generationmetric.FieldModel, generationmetric.FieldErrorCode:
			values[i] = new(sql.NullString)
		case generationmetric.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationMetric fields.
func (_m *GenerationMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationmetric.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case generationmetric.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case generationmetric.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = generationmetric.Stage(value.String)
			}
		case generationmetric.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case generationmetric.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = generationmetric.Status(value.String)
			}
		case generationmetric.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = int(value.Int64)
			}
		case generationmetric.FieldTokensPrompt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_prompt", values[i])
			} else if value.Valid {
				_m.TokensPrompt = int(value.Int64)
			}
		case generationmetric.FieldTokensCompletion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_completion", values[i])
			} else if value.Valid {
				_m.TokensCompletion = int(value.Int64)
			}
		case generationmetric.FieldTokensTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_total", values[i])
			} else if value.Valid {
				_m.TokensTotal = int(value.Int64)
			}
		case generationmetric.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case generationmetric.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case generationmetric.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationMetric.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the GenerationMetric entity.
func (_m *GenerationMetric) QueryRequest() *RequestQuery {
	return NewGenerationMetricClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this GenerationMetric.
// Note that you need to call GenerationMetric.Unwrap() before calling this method if this GenerationMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationMetric) Update() *GenerationMetricUpdateOne {
	return NewGenerationMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationMetric) Unwrap() *GenerationMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationMetric) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("tokens_prompt=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensPrompt))
	builder.WriteString(", ")
	builder.WriteString("tokens_completion=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensCompletion))
	builder.WriteString(", ")
	builder.WriteString("tokens_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensTotal))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GenerationMetrics is a parsable slice of GenerationMetric.
type GenerationMetrics []*GenerationMetric
