// Code generated by ent, DO NOT EDIT.

package testcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qaforge/qaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldRequestID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldName, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldDescription, v))
}

// TestType applies equality check predicate on the "test_type" field. It's identical to TestTypeEQ.
func TestType(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldTestType, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldScore, v))
}

// Valid applies equality check predicate on the "valid" field. It's identical to ValidEQ.
func Valid(v bool) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldValid, v))
}

// DuplicateOf applies equality check predicate on the "duplicate_of" field. It's identical to DuplicateOfEQ.
func DuplicateOf(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldDuplicateOf, v))
}

// Similarity applies equality check predicate on the "similarity" field. It's identical to SimilarityEQ.
func Similarity(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldSimilarity, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldRequestID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldName, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldDescription, v))
}

// TestTypeEQ applies the EQ predicate on the "test_type" field.
func TestTypeEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldTestType, v))
}

// TestTypeNEQ applies the NEQ predicate on the "test_type" field.
func TestTypeNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldTestType, v))
}

// TestTypeIn applies the In predicate on the "test_type" field.
func TestTypeIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldTestType, vs...))
}

// TestTypeNotIn applies the NotIn predicate on the "test_type" field.
func TestTypeNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldTestType, vs...))
}

// TestTypeGT applies the GT predicate on the "test_type" field.
func TestTypeGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldTestType, v))
}

// TestTypeGTE applies the GTE predicate on the "test_type" field.
func TestTypeGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldTestType, v))
}

// TestTypeLT applies the LT predicate on the "test_type" field.
func TestTypeLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldTestType, v))
}

// TestTypeLTE applies the LTE predicate on the "test_type" field.
func TestTypeLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldTestType, v))
}

// TestTypeContains applies the Contains predicate on the "test_type" field.
func TestTypeContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldTestType, v))
}

// TestTypeHasPrefix applies the HasPrefix predicate on the "test_type" field.
func TestTypeHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldTestType, v))
}

// TestTypeHasSuffix applies the HasSuffix predicate on the "test_type" field.
func TestTypeHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldTestType, v))
}

// TestTypeIsNil applies the IsNil predicate on the "test_type" field.
func TestTypeIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldTestType))
}

// TestTypeNotNil applies the NotNil predicate on the "test_type" field.
func TestTypeNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldTestType))
}

// TestTypeEqualFold applies the EqualFold predicate on the "test_type" field.
func TestTypeEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldTestType, v))
}

// TestTypeContainsFold applies the ContainsFold predicate on the "test_type" field.
func TestTypeContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldTestType, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldScore, v))
}

// ValidEQ applies the EQ predicate on the "valid" field.
func ValidEQ(v bool) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldValid, v))
}

// ValidNEQ applies the NEQ predicate on the "valid" field.
func ValidNEQ(v bool) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldValid, v))
}

// DuplicateOfEQ applies the EQ predicate on the "duplicate_of" field.
func DuplicateOfEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldDuplicateOf, v))
}

// DuplicateOfNEQ applies the NEQ predicate on the "duplicate_of" field.
func DuplicateOfNEQ(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldDuplicateOf, v))
}

// DuplicateOfIn applies the In predicate on the "duplicate_of" field.
func DuplicateOfIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldDuplicateOf, vs...))
}

// DuplicateOfNotIn applies the NotIn predicate on the "duplicate_of" field.
func DuplicateOfNotIn(vs ...string) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldDuplicateOf, vs...))
}

// DuplicateOfGT applies the GT predicate on the "duplicate_of" field.
func DuplicateOfGT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldDuplicateOf, v))
}

// DuplicateOfGTE applies the GTE predicate on the "duplicate_of" field.
func DuplicateOfGTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldDuplicateOf, v))
}

// DuplicateOfLT applies the LT predicate on the "duplicate_of" field.
func DuplicateOfLT(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldDuplicateOf, v))
}

// DuplicateOfLTE applies the LTE predicate on the "duplicate_of" field.
func DuplicateOfLTE(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldDuplicateOf, v))
}

// DuplicateOfContains applies the Contains predicate on the "duplicate_of" field.
func DuplicateOfContains(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContains(FieldDuplicateOf, v))
}

// DuplicateOfHasPrefix applies the HasPrefix predicate on the "duplicate_of" field.
func DuplicateOfHasPrefix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasPrefix(FieldDuplicateOf, v))
}

// DuplicateOfHasSuffix applies the HasSuffix predicate on the "duplicate_of" field.
func DuplicateOfHasSuffix(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldHasSuffix(FieldDuplicateOf, v))
}

// DuplicateOfIsNil applies the IsNil predicate on the "duplicate_of" field.
func DuplicateOfIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldDuplicateOf))
}

// DuplicateOfNotNil applies the NotNil predicate on the "duplicate_of" field.
func DuplicateOfNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldDuplicateOf))
}

// DuplicateOfEqualFold applies the EqualFold predicate on the "duplicate_of" field.
func DuplicateOfEqualFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldEqualFold(FieldDuplicateOf, v))
}

// DuplicateOfContainsFold applies the ContainsFold predicate on the "duplicate_of" field.
func DuplicateOfContainsFold(v string) predicate.TestCase {
	return predicate.TestCase(sql.FieldContainsFold(FieldDuplicateOf, v))
}

// SimilarityEQ applies the EQ predicate on the "similarity" field.
func SimilarityEQ(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldSimilarity, v))
}

// SimilarityNEQ applies the NEQ predicate on the "similarity" field.
func SimilarityNEQ(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldSimilarity, v))
}

// SimilarityIn applies the In predicate on the "similarity" field.
func SimilarityIn(vs ...float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldSimilarity, vs...))
}

// SimilarityNotIn applies the NotIn predicate on the "similarity" field.
func SimilarityNotIn(vs ...float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldSimilarity, vs...))
}

// SimilarityGT applies the GT predicate on the "similarity" field.
func SimilarityGT(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldSimilarity, v))
}

// SimilarityGTE applies the GTE predicate on the "similarity" field.
func SimilarityGTE(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldSimilarity, v))
}

// SimilarityLT applies the LT predicate on the "similarity" field.
func SimilarityLT(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldSimilarity, v))
}

// SimilarityLTE applies the LTE predicate on the "similarity" field.
func SimilarityLTE(v float64) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldSimilarity, v))
}

// SimilarityIsNil applies the IsNil predicate on the "similarity" field.
func SimilarityIsNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldIsNull(FieldSimilarity))
}

// SimilarityNotNil applies the NotNil predicate on the "similarity" field.
func SimilarityNotNil() predicate.TestCase {
	return predicate.TestCase(sql.FieldNotNull(FieldSimilarity))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestCase {
	return predicate.TestCase(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.TestCase {
	return predicate.TestCase(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestCase) predicate.TestCase {
	return predicate.TestCase(sql.NotPredicates(p))
}
