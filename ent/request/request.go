// Code generated by ent, DO NOT EDIT.

package request

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the request type in the database.
	Label = "request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldRequestType holds the string denoting the request_type field in the database.
	FieldRequestType = "request_type"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldRequirements holds the string denoting the requirements field in the database.
	FieldRequirements = "requirements"
	// FieldTestTypes holds the string denoting the test_types field in the database.
	FieldTestTypes = "test_types"
	// FieldOpenapiURL holds the string denoting the openapi_url field in the database.
	FieldOpenapiURL = "openapi_url"
	// FieldOpenapiContent holds the string denoting the openapi_content field in the database.
	FieldOpenapiContent = "openapi_content"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldRequeueCount holds the string denoting the requeue_count field in the database.
	FieldRequeueCount = "requeue_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeTestCases holds the string denoting the test_cases edge name in mutations.
	EdgeTestCases = "test_cases"
	// EdgeMetrics holds the string denoting the metrics edge name in mutations.
	EdgeMetrics = "metrics"
	// EdgeCoverage holds the string denoting the coverage edge name in mutations.
	EdgeCoverage = "coverage"
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// EdgeCheckpoint holds the string denoting the checkpoint edge name in mutations.
	EdgeCheckpoint = "checkpoint"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// TestCaseFieldID holds the string denoting the ID field of the TestCase.
	TestCaseFieldID = "test_case_id"
	// GenerationMetricFieldID holds the string denoting the ID field of the GenerationMetric.
	GenerationMetricFieldID = "metric_id"
	// CoverageAnalysisFieldID holds the string denoting the ID field of the CoverageAnalysis.
	CoverageAnalysisFieldID = "coverage_id"
	// SecurityAuditLogFieldID holds the string denoting the ID field of the SecurityAuditLog.
	SecurityAuditLogFieldID = "audit_id"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// Table holds the table name of the request in the database.
	Table = "requests"
	// TestCasesTable is the table that holds the test_cases relation/edge.
	TestCasesTable = "test_cases"
	// TestCasesInverseTable is the table name for the TestCase entity.
	// It exists in this package in order to avoid circular dependency with the "testcase" package.
	TestCasesInverseTable = "test_cases"
	// TestCasesColumn is the table column denoting the test_cases relation/edge.
	TestCasesColumn = "request_id"
	// MetricsTable is the table that holds the metrics relation/edge.
	MetricsTable = "generation_metrics"
	// MetricsInverseTable is the table name for the GenerationMetric entity.
	// It exists in this package in order to avoid circular dependency with the "generationmetric" package.
	MetricsInverseTable = "generation_metrics"
	// MetricsColumn is the table column denoting the metrics relation/edge.
	MetricsColumn = "request_id"
	// CoverageTable is the table that holds the coverage relation/edge.
	CoverageTable = "coverage_analyses"
	// CoverageInverseTable is the table name for the CoverageAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "coverageanalysis" package.
	CoverageInverseTable = "coverage_analyses"
	// CoverageColumn is the table column denoting the coverage relation/edge.
	CoverageColumn = "request_id"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "security_audit_logs"
	// AuditLogsInverseTable is the table name for the SecurityAuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "securityauditlog" package.
	AuditLogsInverseTable = "security_audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "request_id"
	// CheckpointTable is the table that holds the checkpoint relation/edge.
	CheckpointTable = "checkpoints"
	// CheckpointInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointInverseTable = "checkpoints"
	// CheckpointColumn is the table column denoting the checkpoint relation/edge.
	CheckpointColumn = "request_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "request_id"
)

// Columns holds all SQL columns for request fields.
var Columns = []string{
	FieldID,
	FieldRequestType,
	FieldURL,
	FieldRequirements,
	FieldTestTypes,
	FieldOpenapiURL,
	FieldOpenapiContent,
	FieldOptions,
	FieldStatus,
	FieldErrorCode,
	FieldErrorMessage,
	FieldResultSummary,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldRequeueCount,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultRequeueCount holds the default value on creation for the "requeue_count" field.
	DefaultRequeueCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RequestType defines the type for the "request_type" enum field.
type RequestType string

// RequestType values.
const (
	RequestTypeUI  RequestType = "ui"
	RequestTypeAPI RequestType = "api"
)

func (rt RequestType) String() string {
	return string(rt)
}

// RequestTypeValidator is a validator for the "request_type" field enum values. It is called by the builders before save.
func RequestTypeValidator(rt RequestType) error {
	switch rt {
	case RequestTypeUI, RequestTypeAPI:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for request_type field: %q", rt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending        Status = "pending"
	StatusReconnaissance Status = "reconnaissance"
	StatusGeneration     Status = "generation"
	StatusValidation     Status = "validation"
	StatusOptimization   Status = "optimization"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusReconnaissance, StatusGeneration, StatusValidation, StatusOptimization, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Request queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestType orders the results by the request_type field.
func ByRequestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestType, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByOpenapiURL orders the results by the openapi_url field.
func ByOpenapiURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenapiURL, opts...).ToFunc()
}

// ByOpenapiContent orders the results by the openapi_content field.
func ByOpenapiContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenapiContent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByRequeueCount orders the results by the requeue_count field.
func ByRequeueCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequeueCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTestCasesCount orders the results by test_cases count.
func ByTestCasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTestCasesStep(), opts...)
	}
}

// ByTestCases orders the results by test_cases terms.
func ByTestCases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestCasesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMetricsCount orders the results by metrics count.
func ByMetricsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMetricsStep(), opts...)
	}
}

// ByMetrics orders the results by metrics terms.
func ByMetrics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMetricsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCoverageCount orders the results by coverage count.
func ByCoverageCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCoverageStep(), opts...)
	}
}

// ByCoverage orders the results by coverage terms.
func ByCoverage(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCoverageStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCheckpointField orders the results by checkpoint field.
func ByCheckpointField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTestCasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestCasesInverseTable, TestCaseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TestCasesTable, TestCasesColumn),
	)
}
func newMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MetricsInverseTable, GenerationMetricFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MetricsTable, MetricsColumn),
	)
}
func newCoverageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CoverageInverseTable, CoverageAnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CoverageTable, CoverageColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, SecurityAuditLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}
func newCheckpointStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, CheckpointTable, CheckpointColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
