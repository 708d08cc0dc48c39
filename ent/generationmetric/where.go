// Code generated by ent, DO NOT EDIT.

package generationmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qaforge/qaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldRequestID, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldAttempt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldDurationMs, v))
}

// TokensPrompt applies equality check predicate on the "tokens_prompt" field. It's identical to TokensPromptEQ.
func TokensPrompt(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldTokensPrompt, v))
}

// TokensCompletion applies equality check predicate on the "tokens_completion" field. It's identical to TokensCompletionEQ.
func TokensCompletion(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldTokensCompletion, v))
}

// TokensTotal applies equality check predicate on the "tokens_total" field. It's identical to TokensTotalEQ.
func TokensTotal(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldTokensTotal, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldModel, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldErrorCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldContainsFold(FieldRequestID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldStage, vs...))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldAttempt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldStatus, vs...))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldDurationMs, v))
}

// TokensPromptEQ applies the EQ predicate on the "tokens_prompt" field.
func TokensPromptEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldTokensPrompt, v))
}

// TokensPromptNEQ applies the NEQ predicate on the "tokens_prompt" field.
func TokensPromptNEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldTokensPrompt, v))
}

// TokensPromptIn applies the In predicate on the "tokens_prompt" field.
func TokensPromptIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldTokensPrompt, vs...))
}

// TokensPromptNotIn applies the NotIn predicate on the "tokens_prompt" field.
func TokensPromptNotIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldTokensPrompt, vs...))
}

// TokensPromptGT applies the GT predicate on the "tokens_prompt" field.
func TokensPromptGT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldTokensPrompt, v))
}

// TokensPromptGTE applies the GTE predicate on the "tokens_prompt" field.
func TokensPromptGTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldTokensPrompt, v))
}

// TokensPromptLT applies the LT predicate on the "tokens_prompt" field.
func TokensPromptLT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldTokensPrompt, v))
}

// TokensPromptLTE applies the LTE predicate on the "tokens_prompt" field.
func TokensPromptLTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldTokensPrompt, v))
}

// TokensCompletionEQ applies the EQ predicate on the "tokens_completion" field.
func TokensCompletionEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldTokensCompletion, v))
}

// TokensCompletionNEQ applies the NEQ predicate on the "tokens_completion" field.
func TokensCompletionNEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldTokensCompletion, v))
}

// TokensCompletionIn applies the In predicate on the "tokens_completion" field.
func TokensCompletionIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldTokensCompletion, vs...))
}

// TokensCompletionNotIn applies the NotIn predicate on the "tokens_completion" field.
func TokensCompletionNotIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldTokensCompletion, vs...))
}

// TokensCompletionGT applies the GT predicate on the "tokens_completion" field.
func TokensCompletionGT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldTokensCompletion, v))
}

// TokensCompletionGTE applies the GTE predicate on the "tokens_completion" field.
func TokensCompletionGTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldTokensCompletion, v))
}

// TokensCompletionLT applies the LT predicate on the "tokens_completion" field.
func TokensCompletionLT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldTokensCompletion, v))
}

// TokensCompletionLTE applies the LTE predicate on the "tokens_completion" field.
func TokensCompletionLTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldTokensCompletion, v))
}

// TokensTotalEQ applies the EQ predicate on the "tokens_total" field.
func TokensTotalEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldTokensTotal, v))
}

// TokensTotalNEQ applies the NEQ predicate on the "tokens_total" field.
func TokensTotalNEQ(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldTokensTotal, v))
}

// TokensTotalIn applies the In predicate on the "tokens_total" field.
func TokensTotalIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldTokensTotal, vs...))
}

// TokensTotalNotIn applies the NotIn predicate on the "tokens_total" field.
func TokensTotalNotIn(vs ...int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldTokensTotal, vs...))
}

// TokensTotalGT applies the GT predicate on the "tokens_total" field.
func TokensTotalGT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldTokensTotal, v))
}

// TokensTotalGTE applies the GTE predicate on the "tokens_total" field.
func TokensTotalGTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldTokensTotal, v))
}

// TokensTotalLT applies the LT predicate on the "tokens_total" field.
func TokensTotalLT(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldTokensTotal, v))
}

// TokensTotalLTE applies the LTE predicate on the "tokens_total" field.
func TokensTotalLTE(v int) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldTokensTotal, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldContainsFold(FieldModel, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldContainsFold(FieldErrorCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.GenerationMetric {
	return predicate.GenerationMetric(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.GenerationMetric {
	return predicate.GenerationMetric(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationMetric) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationMetric) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationMetric) predicate.GenerationMetric {
	return predicate.GenerationMetric(sql.NotPredicates(p))
}
