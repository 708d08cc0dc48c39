// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/ent/request"
)

// CoverageAnalysis is the model entity for the CoverageAnalysis schema.
type CoverageAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// Requirement holds the value of the "requirement" field.
	Requirement string `json:"requirement,omitempty"`
	// Covered holds the value of the "covered" field.
	Covered bool `json:"covered,omitempty"`
	// Test case ids covering this requirement
	CoveredBy []string `json:"covered_by,omitempty"`
	// Quality holds the value of the "quality" field.
	Quality coverageanalysis.Quality `json:"quality,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CoverageAnalysisQuery when eager-loading is set.
	Edges        CoverageAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CoverageAnalysisEdges holds the relations/edges for other nodes in the graph.
type CoverageAnalysisEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CoverageAnalysisEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CoverageAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case coverageanalysis.FieldCoveredBy:
			values[i] = new([]byte)
		case coverageanalysis.FieldCovered:
			values[i] = new(sql.NullBool)
		case coverageanalysis.FieldID, coverageanalysis.FieldRequestID, coverageanalysis.FieldRequirement, coverageanalysis.FieldQuality:
			values[i] = new(sql.NullString)
		case coverageanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CoverageAnalysis fields.
func (_m *CoverageAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case coverageanalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case coverageanalysis.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case coverageanalysis.FieldRequirement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirement", values[i])
			} else if value.Valid {
				_m.Requirement = value.String
			}
		case coverageanalysis.FieldCovered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field covered", values[i])
			} else if value.Valid {
				_m.Covered = value.Bool
			}
		case coverageanalysis.FieldCoveredBy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field covered_by", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CoveredBy); err != nil {
					return fmt.Errorf("unmarshal field covered_by: %w", err)
				}
			}
		case coverageanalysis.FieldQuality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				_m.Quality = coverageanalysis.Quality(value.String)
			}
		case coverageanalysis.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CoverageAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *CoverageAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the CoverageAnalysis entity.
func (_m *CoverageAnalysis) QueryRequest() *RequestQuery {
	return NewCoverageAnalysisClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this CoverageAnalysis.
// Note that you need to call CoverageAnalysis.Unwrap() before calling this method if this CoverageAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CoverageAnalysis) Update() *CoverageAnalysisUpdateOne {
	return NewCoverageAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CoverageAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CoverageAnalysis) Unwrap() *CoverageAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CoverageAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CoverageAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("CoverageAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("requirement=")
	builder.WriteString(_m.Requirement)
	builder.WriteString(", ")
	builder.WriteString("covered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Covered))
	builder.WriteString(", ")
	builder.WriteString("covered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoveredBy))
	builder.WriteString(", ")
	builder.WriteString("quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quality))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CoverageAnalyses is a parsable slice of CoverageAnalysis.
type CoverageAnalyses []*CoverageAnalysis
