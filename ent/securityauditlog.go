// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/ent/securityauditlog"
)

// SecurityAuditLog is the model entity for the SecurityAuditLog schema.
type SecurityAuditLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Null for ad-hoc /validate/tests calls
	RequestID *string `json:"request_id,omitempty"`
	// TestIndex holds the value of the "test_index" field.
	TestIndex int `json:"test_index,omitempty"`
	// Layer holds the value of the "layer" field.
	Layer securityauditlog.Layer `json:"layer,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity securityauditlog.Severity `json:"severity,omitempty"`
	// Blacklist pattern or import that matched
	Pattern string `json:"pattern,omitempty"`
	// Offending code excerpt
	Snippet string `json:"snippet,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SecurityAuditLogQuery when eager-loading is set.
	Edges        SecurityAuditLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SecurityAuditLogEdges holds the relations/edges for other nodes in the graph.
type SecurityAuditLogEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SecurityAuditLogEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SecurityAuditLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case securityauditlog.FieldTestIndex:
			values[i] = new(sql.NullInt64)
		case securityauditlog.FieldID, securityauditlog.FieldRequestID, securityauditlog.FieldLayer, securityauditlog.FieldSeverity, securityauditlog.FieldPattern, securityauditlog.FieldSnippet:
			values[i] = new(sql.NullString)
		case securityauditlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SecurityAuditLog fields.
func (_m *SecurityAuditLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case securityauditlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case securityauditlog.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = new(string)
				*_m.RequestID = value.String
			}
		case securityauditlog.FieldTestIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field test_index", values[i])
			} else if value.Valid {
				_m.TestIndex = int(value.Int64)
			}
		case securityauditlog.FieldLayer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field layer", values[i])
			} else if value.Valid {
				_m.Layer = securityauditlog.Layer(value.String)
			}
		case securityauditlog.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = securityauditlog.Severity(value.String)
			}
		case securityauditlog.FieldPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern", values[i])
			} else if value.Valid {
				_m.Pattern = value.String
			}
		case securityauditlog.FieldSnippet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snippet", values[i])
			} else if value.Valid {
				_m.Snippet = value.String
			}
		case securityauditlog.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SecurityAuditLog.
// This includes values selected through modifiers, order, etc.
func (_m *SecurityAuditLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the SecurityAuditLog entity.
func (_m *SecurityAuditLog) QueryRequest() *RequestQuery {
	return NewSecurityAuditLogClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this SecurityAuditLog.
// Note that you need to call SecurityAuditLog.Unwrap() before calling this method if this SecurityAuditLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SecurityAuditLog) Update() *SecurityAuditLogUpdateOne {
	return NewSecurityAuditLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SecurityAuditLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SecurityAuditLog) Unwrap() *SecurityAuditLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SecurityAuditLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SecurityAuditLog) String() string {
	var builder strings.Builder
	builder.WriteString("SecurityAuditLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.RequestID; v != nil {
		builder.WriteString("request_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("test_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestIndex))
	builder.WriteString(", ")
	builder.WriteString("layer=")
	builder.WriteString(fmt.Sprintf("%v", _m.Layer))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("pattern=")
	builder.WriteString(_m.Pattern)
	builder.WriteString(", ")
	builder.WriteString("snippet=")
	builder.WriteString(_m.Snippet)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SecurityAuditLogs is a parsable slice of SecurityAuditLog.
type SecurityAuditLogs []*SecurityAuditLog
