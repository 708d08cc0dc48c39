// Code generated by ent, DO NOT EDIT.

package generationmetric

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the generationmetric type in the database.
	Label = "generation_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "metric_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldTokensPrompt holds the string denoting the tokens_prompt field in the database.
	FieldTokensPrompt = "tokens_prompt"
	// FieldTokensCompletion holds the string denoting the tokens_completion field in the database.
	FieldTokensCompletion = "tokens_completion"
	// FieldTokensTotal holds the string denoting the tokens_total field in the database.
	FieldTokensTotal = "tokens_total"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// RequestFieldID holds the string denoting the ID field of the Request.
	RequestFieldID = "request_id"
	// Table holds the table name of the generationmetric in the database.
	Table = "generation_metrics"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "generation_metrics"
	// RequestInverseTable is the table name for the Request entity.
	// It exists in this package in order to avoid circular dependency with the "request" package.
	RequestInverseTable = "requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for generationmetric fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldStage,
	FieldAttempt,
	FieldStatus,
	FieldDurationMs,
	FieldTokensPrompt,
	FieldTokensCompletion,
	FieldTokensTotal,
	FieldModel,
	FieldErrorCode,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
	// DefaultTokensPrompt holds the default value on creation for the "tokens_prompt" field.
	DefaultTokensPrompt int
	// DefaultTokensCompletion holds the default value on creation for the "tokens_completion" field.
	DefaultTokensCompletion int
	// DefaultTokensTotal holds the default value on creation for the "tokens_total" field.
	DefaultTokensTotal int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Stage defines the type for the "stage" enum field.
type Stage string

// Stage values.
const (
	StageReconnaissance Stage = "reconnaissance"
	StageGeneration     Stage = "generation"
	StageValidation     Stage = "validation"
	StageOptimization   Stage = "optimization"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageReconnaissance, StageGeneration, StageValidation, StageOptimization:
		return nil
	default:
		return fmt.Errorf("generationmetric: invalid enum value for stage field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess Status = "success"
	StatusRetry   Status = "retry"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusRetry, StatusFailed:
		return nil
	default:
		return fmt.Errorf("generationmetric: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the GenerationMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByTokensPrompt orders the results by the tokens_prompt field.
func ByTokensPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensPrompt, opts...).ToFunc()
}

// ByTokensCompletion orders the results by the tokens_completion field.
func ByTokensCompletion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensCompletion, opts...).ToFunc()
}

// ByTokensTotal orders the results by the tokens_total field.
func ByTokensTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensTotal, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, RequestFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
	)
}
