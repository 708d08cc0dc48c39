// Code generated by ent, DO NOT EDIT.

package request

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/qaforge/qaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldURL, v))
}

// OpenapiURL applies equality check predicate on the "openapi_url" field. It's identical to OpenapiURLEQ.
func OpenapiURL(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOpenapiURL, v))
}

// OpenapiContent applies equality check predicate on the "openapi_content" field. It's identical to OpenapiContentEQ.
func OpenapiContent(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOpenapiContent, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// RequeueCount applies equality check predicate on the "requeue_count" field. It's identical to RequeueCountEQ.
func RequeueCount(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequeueCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCompletedAt, v))
}

// RequestTypeEQ applies the EQ predicate on the "request_type" field.
func RequestTypeEQ(v RequestType) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequestType, v))
}

// RequestTypeNEQ applies the NEQ predicate on the "request_type" field.
func RequestTypeNEQ(v RequestType) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRequestType, v))
}

// RequestTypeIn applies the In predicate on the "request_type" field.
func RequestTypeIn(vs ...RequestType) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRequestType, vs...))
}

// RequestTypeNotIn applies the NotIn predicate on the "request_type" field.
func RequestTypeNotIn(vs ...RequestType) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRequestType, vs...))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldURL, v))
}

// TestTypesIsNil applies the IsNil predicate on the "test_types" field.
func TestTypesIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldTestTypes))
}

// TestTypesNotNil applies the NotNil predicate on the "test_types" field.
func TestTypesNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldTestTypes))
}

// OpenapiURLEQ applies the EQ predicate on the "openapi_url" field.
func OpenapiURLEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOpenapiURL, v))
}

// OpenapiURLNEQ applies the NEQ predicate on the "openapi_url" field.
func OpenapiURLNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldOpenapiURL, v))
}

// OpenapiURLIn applies the In predicate on the "openapi_url" field.
func OpenapiURLIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldOpenapiURL, vs...))
}

// OpenapiURLNotIn applies the NotIn predicate on the "openapi_url" field.
func OpenapiURLNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldOpenapiURL, vs...))
}

// OpenapiURLGT applies the GT predicate on the "openapi_url" field.
func OpenapiURLGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldOpenapiURL, v))
}

// OpenapiURLGTE applies the GTE predicate on the "openapi_url" field.
func OpenapiURLGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldOpenapiURL, v))
}

// OpenapiURLLT applies the LT predicate on the "openapi_url" field.
func OpenapiURLLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldOpenapiURL, v))
}

// OpenapiURLLTE applies the LTE predicate on the "openapi_url" field.
func OpenapiURLLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldOpenapiURL, v))
}

// OpenapiURLContains applies the Contains predicate on the "openapi_url" field.
func OpenapiURLContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldOpenapiURL, v))
}

// OpenapiURLHasPrefix applies the HasPrefix predicate on the "openapi_url" field.
func OpenapiURLHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldOpenapiURL, v))
}

// OpenapiURLHasSuffix applies the HasSuffix predicate on the "openapi_url" field.
func OpenapiURLHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldOpenapiURL, v))
}

// OpenapiURLIsNil applies the IsNil predicate on the "openapi_url" field.
func OpenapiURLIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldOpenapiURL))
}

// OpenapiURLNotNil applies the NotNil predicate on the "openapi_url" field.
func OpenapiURLNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldOpenapiURL))
}

// OpenapiURLEqualFold applies the EqualFold predicate on the "openapi_url" field.
func OpenapiURLEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldOpenapiURL, v))
}

// OpenapiURLContainsFold applies the ContainsFold predicate on the "openapi_url" field.
func OpenapiURLContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldOpenapiURL, v))
}

// OpenapiContentEQ applies the EQ predicate on the "openapi_content" field.
func OpenapiContentEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOpenapiContent, v))
}

// OpenapiContentNEQ applies the NEQ predicate on the "openapi_content" field.
func OpenapiContentNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldOpenapiContent, v))
}

// OpenapiContentIn applies the In predicate on the "openapi_content" field.
func OpenapiContentIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldOpenapiContent, vs...))
}

// OpenapiContentNotIn applies the NotIn predicate on the "openapi_content" field.
func OpenapiContentNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldOpenapiContent, vs...))
}

// OpenapiContentGT applies the GT predicate on the "openapi_content" field.
func OpenapiContentGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldOpenapiContent, v))
}

// OpenapiContentGTE applies the GTE predicate on the "openapi_content" field.
func OpenapiContentGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldOpenapiContent, v))
}

// OpenapiContentLT applies the LT predicate on the "openapi_content" field.
func OpenapiContentLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldOpenapiContent, v))
}

// OpenapiContentLTE applies the LTE predicate on the "openapi_content" field.
func OpenapiContentLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldOpenapiContent, v))
}

// OpenapiContentContains applies the Contains predicate on the "openapi_content" field.
func OpenapiContentContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldOpenapiContent, v))
}

// OpenapiContentHasPrefix applies the HasPrefix predicate on the "openapi_content" field.
func OpenapiContentHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldOpenapiContent, v))
}

// OpenapiContentHasSuffix applies the HasSuffix predicate on the "openapi_content" field.
func OpenapiContentHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldOpenapiContent, v))
}

// OpenapiContentIsNil applies the IsNil predicate on the "openapi_content" field.
func OpenapiContentIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldOpenapiContent))
}

// OpenapiContentNotNil applies the NotNil predicate on the "openapi_content" field.
func OpenapiContentNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldOpenapiContent))
}

// OpenapiContentEqualFold applies the EqualFold predicate on the "openapi_content" field.
func OpenapiContentEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldOpenapiContent, v))
}

// OpenapiContentContainsFold applies the ContainsFold predicate on the "openapi_content" field.
func OpenapiContentContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldOpenapiContent, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldOptions))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldResultSummary))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// RequeueCountEQ applies the EQ predicate on the "requeue_count" field.
func RequeueCountEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequeueCount, v))
}

// RequeueCountNEQ applies the NEQ predicate on the "requeue_count" field.
func RequeueCountNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRequeueCount, v))
}

// RequeueCountIn applies the In predicate on the "requeue_count" field.
func RequeueCountIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRequeueCount, vs...))
}

// RequeueCountNotIn applies the NotIn predicate on the "requeue_count" field.
func RequeueCountNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRequeueCount, vs...))
}

// RequeueCountGT applies the GT predicate on the "requeue_count" field.
func RequeueCountGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldRequeueCount, v))
}

// RequeueCountGTE applies the GTE predicate on the "requeue_count" field.
func RequeueCountGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldRequeueCount, v))
}

// RequeueCountLT applies the LT predicate on the "requeue_count" field.
func RequeueCountLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldRequeueCount, v))
}

// RequeueCountLTE applies the LTE predicate on the "requeue_count" field.
func RequeueCountLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldRequeueCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldCompletedAt))
}

// HasTestCases applies the HasEdge predicate on the "test_cases" edge.
func HasTestCases() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TestCasesTable, TestCasesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestCasesWith applies the HasEdge predicate on the "test_cases" edge with a given conditions (other predicates).
func HasTestCasesWith(preds ...predicate.TestCase) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newTestCasesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMetrics applies the HasEdge predicate on the "metrics" edge.
func HasMetrics() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MetricsTable, MetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMetricsWith applies the HasEdge predicate on the "metrics" edge with a given conditions (other predicates).
func HasMetricsWith(preds ...predicate.GenerationMetric) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCoverage applies the HasEdge predicate on the "coverage" edge.
func HasCoverage() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CoverageTable, CoverageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCoverageWith applies the HasEdge predicate on the "coverage" edge with a given conditions (other predicates).
func HasCoverageWith(preds ...predicate.CoverageAnalysis) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newCoverageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.SecurityAuditLog) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoint applies the HasEdge predicate on the "checkpoint" edge.
func HasCheckpoint() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, CheckpointTable, CheckpointColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointWith applies the HasEdge predicate on the "checkpoint" edge with a given conditions (other predicates).
func HasCheckpointWith(preds ...predicate.Checkpoint) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newCheckpointStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Request) predicate.Request {
	return predicate.Request(sql.NotPredicates(p))
}
