// Code generated by ent, DO NOT EDIT.

package securityauditlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qaforge/qaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldRequestID, v))
}

// TestIndex applies equality check predicate on the "test_index" field. It's identical to TestIndexEQ.
func TestIndex(v int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldTestIndex, v))
}

// Pattern applies equality check predicate on the "pattern" field. It's identical to PatternEQ.
func Pattern(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldPattern, v))
}

// Snippet applies equality check predicate on the "snippet" field. It's identical to SnippetEQ.
func Snippet(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldSnippet, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDIsNil applies the IsNil predicate on the "request_id" field.
func RequestIDIsNil() predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIsNull(FieldRequestID))
}

// RequestIDNotNil applies the NotNil predicate on the "request_id" field.
func RequestIDNotNil() predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotNull(FieldRequestID))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldContainsFold(FieldRequestID, v))
}

// TestIndexEQ applies the EQ predicate on the "test_index" field.
func TestIndexEQ(v int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldTestIndex, v))
}

// TestIndexNEQ applies the NEQ predicate on the "test_index" field.
func TestIndexNEQ(v int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNEQ(FieldTestIndex, v))
}

// TestIndexIn applies the In predicate on the "test_index" field.
func TestIndexIn(vs ...int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIn(FieldTestIndex, vs...))
}

// TestIndexNotIn applies the NotIn predicate on the "test_index" field.
func TestIndexNotIn(vs ...int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotIn(FieldTestIndex, vs...))
}

// TestIndexGT applies the GT predicate on the "test_index" field.
func TestIndexGT(v int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGT(FieldTestIndex, v))
}

// TestIndexGTE applies the GTE predicate on the "test_index" field.
func TestIndexGTE(v int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGTE(FieldTestIndex, v))
}

// TestIndexLT applies the LT predicate on the "test_index" field.
func TestIndexLT(v int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLT(FieldTestIndex, v))
}

// TestIndexLTE applies the LTE predicate on the "test_index" field.
func TestIndexLTE(v int) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLTE(FieldTestIndex, v))
}

// LayerEQ applies the EQ predicate on the "layer" field.
func LayerEQ(v Layer) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldLayer, v))
}

// LayerNEQ applies the NEQ predicate on the "layer" field.
func LayerNEQ(v Layer) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNEQ(FieldLayer, v))
}

// LayerIn applies the In predicate on the "layer" field.
func LayerIn(vs ...Layer) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIn(FieldLayer, vs...))
}

// LayerNotIn applies the NotIn predicate on the "layer" field.
func LayerNotIn(vs ...Layer) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotIn(FieldLayer, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotIn(FieldSeverity, vs...))
}

// PatternEQ applies the EQ predicate on the "pattern" field.
func PatternEQ(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldPattern, v))
}

// PatternNEQ applies the NEQ predicate on the "pattern" field.
func PatternNEQ(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNEQ(FieldPattern, v))
}

// PatternIn applies the In predicate on the "pattern" field.
func PatternIn(vs ...string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIn(FieldPattern, vs...))
}

// PatternNotIn applies the NotIn predicate on the "pattern" field.
func PatternNotIn(vs ...string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotIn(FieldPattern, vs...))
}

// PatternGT applies the GT predicate on the "pattern" field.
func PatternGT(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGT(FieldPattern, v))
}

// PatternGTE applies the GTE predicate on the "pattern" field.
func PatternGTE(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGTE(FieldPattern, v))
}

// PatternLT applies the LT predicate on the "pattern" field.
func PatternLT(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLT(FieldPattern, v))
}

// PatternLTE applies the LTE predicate on the "pattern" field.
func PatternLTE(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLTE(FieldPattern, v))
}

// PatternContains applies the Contains predicate on the "pattern" field.
func PatternContains(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldContains(FieldPattern, v))
}

// PatternHasPrefix applies the HasPrefix predicate on the "pattern" field.
func PatternHasPrefix(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldHasPrefix(FieldPattern, v))
}

// PatternHasSuffix applies the HasSuffix predicate on the "pattern" field.
func PatternHasSuffix(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldHasSuffix(FieldPattern, v))
}

// PatternEqualFold applies the EqualFold predicate on the "pattern" field.
func PatternEqualFold(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEqualFold(FieldPattern, v))
}

// PatternContainsFold applies the ContainsFold predicate on the "pattern" field.
func PatternContainsFold(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldContainsFold(FieldPattern, v))
}

// SnippetEQ applies the EQ predicate on the "snippet" field.
func SnippetEQ(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldSnippet, v))
}

// SnippetNEQ applies the NEQ predicate on the "snippet" field.
func SnippetNEQ(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNEQ(FieldSnippet, v))
}

// SnippetIn applies the In predicate on the "snippet" field.
func SnippetIn(vs ...string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIn(FieldSnippet, vs...))
}

// SnippetNotIn applies the NotIn predicate on the "snippet" field.
func SnippetNotIn(vs ...string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotIn(FieldSnippet, vs...))
}

// SnippetGT applies the GT predicate on the "snippet" field.
func SnippetGT(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGT(FieldSnippet, v))
}

// SnippetGTE applies the GTE predicate on the "snippet" field.
func SnippetGTE(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGTE(FieldSnippet, v))
}

// SnippetLT applies the LT predicate on the "snippet" field.
func SnippetLT(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLT(FieldSnippet, v))
}

// SnippetLTE applies the LTE predicate on the "snippet" field.
func SnippetLTE(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLTE(FieldSnippet, v))
}

// SnippetContains applies the Contains predicate on the "snippet" field.
func SnippetContains(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldContains(FieldSnippet, v))
}

// SnippetHasPrefix applies the HasPrefix predicate on the "snippet" field.
func SnippetHasPrefix(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldHasPrefix(FieldSnippet, v))
}

// SnippetHasSuffix applies the HasSuffix predicate on the "snippet" field.
func SnippetHasSuffix(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldHasSuffix(FieldSnippet, v))
}

// SnippetIsNil applies the IsNil predicate on the "snippet" field.
func SnippetIsNil() predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIsNull(FieldSnippet))
}

// SnippetNotNil applies the NotNil predicate on the "snippet" field.
func SnippetNotNil() predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotNull(FieldSnippet))
}

// SnippetEqualFold applies the EqualFold predicate on the "snippet" field.
func SnippetEqualFold(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEqualFold(FieldSnippet, v))
}

// SnippetContainsFold applies the ContainsFold predicate on the "snippet" field.
func SnippetContainsFold(v string) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldContainsFold(FieldSnippet, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SecurityAuditLog) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SecurityAuditLog) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SecurityAuditLog) predicate.SecurityAuditLog {
	return predicate.SecurityAuditLog(sql.NotPredicates(p))
}
