// Code generated by ent, DO NOT EDIT.

package coverageanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qaforge/qaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldRequestID, v))
}

// Requirement applies equality check predicate on the "requirement" field. It's identical to RequirementEQ.
func Requirement(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldRequirement, v))
}

// Covered applies equality check predicate on the "covered" field. It's identical to CoveredEQ.
func Covered(v bool) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldCovered, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldContainsFold(FieldRequestID, v))
}

// RequirementEQ applies the EQ predicate on the "requirement" field.
func RequirementEQ(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldRequirement, v))
}

// RequirementNEQ applies the NEQ predicate on the "requirement" field.
func RequirementNEQ(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNEQ(FieldRequirement, v))
}

// RequirementIn applies the In predicate on the "requirement" field.
func RequirementIn(vs ...string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldIn(FieldRequirement, vs...))
}

// RequirementNotIn applies the NotIn predicate on the "requirement" field.
func RequirementNotIn(vs ...string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNotIn(FieldRequirement, vs...))
}

// RequirementGT applies the GT predicate on the "requirement" field.
func RequirementGT(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldGT(FieldRequirement, v))
}

// RequirementGTE applies the GTE predicate on the "requirement" field.
func RequirementGTE(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldGTE(FieldRequirement, v))
}

// RequirementLT applies the LT predicate on the "requirement" field.
func RequirementLT(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldLT(FieldRequirement, v))
}

// RequirementLTE applies the LTE predicate on the "requirement" field.
func RequirementLTE(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldLTE(FieldRequirement, v))
}

// RequirementContains applies the Contains predicate on the "requirement" field.
func RequirementContains(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldContains(FieldRequirement, v))
}

// RequirementHasPrefix applies the HasPrefix predicate on the "requirement" field.
func RequirementHasPrefix(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldHasPrefix(FieldRequirement, v))
}

// RequirementHasSuffix applies the HasSuffix predicate on the "requirement" field.
func RequirementHasSuffix(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldHasSuffix(FieldRequirement, v))
}

// RequirementEqualFold applies the EqualFold predicate on the "requirement" field.
func RequirementEqualFold(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEqualFold(FieldRequirement, v))
}

// RequirementContainsFold applies the ContainsFold predicate on the "requirement" field.
func RequirementContainsFold(v string) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldContainsFold(FieldRequirement, v))
}

// CoveredEQ applies the EQ predicate on the "covered" field.
func CoveredEQ(v bool) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldCovered, v))
}

// CoveredNEQ applies the NEQ predicate on the "covered" field.
func CoveredNEQ(v bool) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNEQ(FieldCovered, v))
}

// CoveredByIsNil applies the IsNil predicate on the "covered_by" field.
func CoveredByIsNil() predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldIsNull(FieldCoveredBy))
}

// CoveredByNotNil applies the NotNil predicate on the "covered_by" field.
func CoveredByNotNil() predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNotNull(FieldCoveredBy))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v Quality) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v Quality) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...Quality) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...Quality) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNotIn(FieldQuality, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CoverageAnalysis) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CoverageAnalysis) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CoverageAnalysis) predicate.CoverageAnalysis {
	return predicate.CoverageAnalysis(sql.NotPredicates(p))
}
