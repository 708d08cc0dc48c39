// Code generated by ent, DO NOT EDIT.

package coverageanalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the coverageanalysis type in the database.
	Label = "coverage_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "coverage_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldRequirement holds the string denoting the requirement field in the database.
	FieldRequirement = "requirement"
	// FieldCovered holds the string denoting the covered field in the database.
	FieldCovered = "covered"
	// FieldCoveredBy holds the string denoting the covered_by field in the database.
	FieldCoveredBy = "covered_by"
	// FieldQuality holds the string denoting the quality field in the database.
	FieldQuality = "quality"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// RequestFieldID holds the string denoting the ID field of the Request.
	RequestFieldID = "request_id"
	// Table holds the table name of the coverageanalysis in the database.
	Table = "coverage_analyses"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "coverage_analyses"
	// RequestInverseTable is the table name for the Request entity.
	// It exists in this package in order to avoid circular dependency with the "request" package.
	RequestInverseTable = "requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for coverageanalysis fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldRequirement,
	FieldCovered,
	FieldCoveredBy,
	FieldQuality,
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
	// DefaultCovered holds the default value on creation for the "covered" field.
	DefaultCovered bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Quality defines the type for the "quality" enum field.
type Quality string

// QualityNone is the default value of the Quality enum.
const DefaultQuality = QualityNone

// Quality values.
const (
	QualityGood Quality = "good"
	QualityWeak Quality = "weak"
	QualityNone Quality = "none"
)

func (q Quality) String() string {
	return string(q)
}

// QualityValidator is a validator for the "quality" field enum values. It is called by the builders before save.
func QualityValidator(q Quality) error {
	switch q {
	case QualityGood, QualityWeak, QualityNone:
		return nil
	default:
		return fmt.Errorf("coverageanalysis: invalid enum value for quality field: %q", q)
	}
}

// OrderOption defines the ordering options for the CoverageAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByRequirement orders the results by the requirement field.
func ByRequirement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequirement, opts...).ToFunc()
}

// ByCovered orders the results by the covered field.
func ByCovered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCovered, opts...).ToFunc()
}

// ByQuality orders the results by the quality field.
func ByQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuality, opts...).ToFunc()
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
