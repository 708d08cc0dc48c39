// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/qaforge/qaforge/ent/checkpoint"
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/ent/event"
	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/ent/predicate"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/ent/securityauditlog"
	"github.com/qaforge/qaforge/ent/testcase"
)

// RequestUpdate is the builder for updating Request entities.
type RequestUpdate struct {
	config
	hooks    []Hook
	mutation *RequestMutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdate) Where(ps ...predicate.Request) *RequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *RequestUpdate) SetRequestType(v request.RequestType) *RequestUpdate {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRequestType(v *request.RequestType) *RequestUpdate {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *RequestUpdate) SetURL(v string) *RequestUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableURL(v *string) *RequestUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *RequestUpdate) ClearURL() *RequestUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *RequestUpdate) SetRequirements(v []string) *RequestUpdate {
	_u.mutation.SetRequirements(v)
	return _u
}

// AppendRequirements appends value to the "requirements" field.
func (_u *RequestUpdate) AppendRequirements(v []string) *RequestUpdate {
	_u.mutation.AppendRequirements(v)
	return _u
}

// SetTestTypes sets the "test_types" field.
func (_u *RequestUpdate) SetTestTypes(v []string) *RequestUpdate {
	_u.mutation.SetTestTypes(v)
	return _u
}

// AppendTestTypes appends value to the "test_types" field.
func (_u *RequestUpdate) AppendTestTypes(v []string) *RequestUpdate {
	_u.mutation.AppendTestTypes(v)
	return _u
}

// ClearTestTypes clears the value of the "test_types" field.
func (_u *RequestUpdate) ClearTestTypes() *RequestUpdate {
	_u.mutation.ClearTestTypes()
	return _u
}

// SetOpenapiURL sets the "openapi_url" field.
func (_u *RequestUpdate) SetOpenapiURL(v string) *RequestUpdate {
	_u.mutation.SetOpenapiURL(v)
	return _u
}

// SetNillableOpenapiURL sets the "openapi_url" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableOpenapiURL(v *string) *RequestUpdate {
	if v != nil {
		_u.SetOpenapiURL(*v)
	}
	return _u
}

// ClearOpenapiURL clears the value of the "openapi_url" field.
func (_u *RequestUpdate) ClearOpenapiURL() *RequestUpdate {
	_u.mutation.ClearOpenapiURL()
	return _u
}

// SetOpenapiContent sets the "openapi_content" field.
func (_u *RequestUpdate) SetOpenapiContent(v string) *RequestUpdate {
	_u.mutation.SetOpenapiContent(v)
	return _u
}

// SetNillableOpenapiContent sets the "openapi_content" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableOpenapiContent(v *string) *RequestUpdate {
	if v != nil {
		_u.SetOpenapiContent(*v)
	}
	return _u
}

// ClearOpenapiContent clears the value of the "openapi_content" field.
func (_u *RequestUpdate) ClearOpenapiContent() *RequestUpdate {
	_u.mutation.ClearOpenapiContent()
	return _u
}

// SetOptions sets the "options" field.
func (_u *RequestUpdate) SetOptions(v map[string]interface{}) *RequestUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *RequestUpdate) ClearOptions() *RequestUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestUpdate) SetStatus(v request.Status) *RequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableStatus(v *request.Status) *RequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *RequestUpdate) SetErrorCode(v string) *RequestUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableErrorCode(v *string) *RequestUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *RequestUpdate) ClearErrorCode() *RequestUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestUpdate) SetErrorMessage(v string) *RequestUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableErrorMessage(v *string) *RequestUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RequestUpdate) ClearErrorMessage() *RequestUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *RequestUpdate) SetResultSummary(v map[string]interface{}) *RequestUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *RequestUpdate) ClearResultSummary() *RequestUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RequestUpdate) SetPodID(v string) *RequestUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillablePodID(v *string) *RequestUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RequestUpdate) ClearPodID() *RequestUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RequestUpdate) SetLastHeartbeatAt(v time.Time) *RequestUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RequestUpdate) ClearLastHeartbeatAt() *RequestUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetRequeueCount sets the "requeue_count" field.
func (_u *RequestUpdate) SetRequeueCount(v int) *RequestUpdate {
	_u.mutation.ResetRequeueCount()
	_u.mutation.SetRequeueCount(v)
	return _u
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRequeueCount(v *int) *RequestUpdate {
	if v != nil {
		_u.SetRequeueCount(*v)
	}
	return _u
}

// AddRequeueCount adds value to the "requeue_count" field.
func (_u *RequestUpdate) AddRequeueCount(v int) *RequestUpdate {
	_u.mutation.AddRequeueCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RequestUpdate) SetCreatedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableCreatedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RequestUpdate) SetStartedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableStartedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RequestUpdate) ClearStartedAt() *RequestUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RequestUpdate) SetCompletedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableCompletedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RequestUpdate) ClearCompletedAt() *RequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by IDs.
func (_u *RequestUpdate) AddTestCaseIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddTestCaseIDs(ids...)
	return _u
}

// AddTestCases adds the "test_cases" edges to the TestCase entity.
func (_u *RequestUpdate) AddTestCases(v ...*TestCase) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestCaseIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the GenerationMetric entity by IDs.
func (_u *RequestUpdate) AddMetricIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddMetricIDs(ids...)
	return _u
}

// AddMetrics adds the "metrics" edges to the GenerationMetric entity.
func (_u *RequestUpdate) AddMetrics(v ...*GenerationMetric) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMetricIDs(ids...)
}

// AddCoverageIDs adds the "coverage" edge to the CoverageAnalysis entity by IDs.
func (_u *RequestUpdate) AddCoverageIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddCoverageIDs(ids...)
	return _u
}

// AddCoverage adds the "coverage" edges to the CoverageAnalysis entity.
func (_u *RequestUpdate) AddCoverage(v ...*CoverageAnalysis) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCoverageIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the SecurityAuditLog entity by IDs.
func (_u *RequestUpdate) AddAuditLogIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the SecurityAuditLog entity.
func (_u *RequestUpdate) AddAuditLogs(v ...*SecurityAuditLog) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_u *RequestUpdate) SetCheckpointID(id string) *RequestUpdate {
	_u.mutation.SetCheckpointID(id)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_u *RequestUpdate) SetNillableCheckpointID(id *string) *RequestUpdate {
	if id != nil {
		_u = _u.SetCheckpointID(*id)
	}
	return _u
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_u *RequestUpdate) SetCheckpoint(v *Checkpoint) *RequestUpdate {
	return _u.SetCheckpointID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *RequestUpdate) AddEventIDs(ids ...int64) *RequestUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *RequestUpdate) AddEvents(v ...*Event) *RequestUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdate) Mutation() *RequestMutation {
	return _u.mutation
}

// ClearTestCases clears all "test_cases" edges to the TestCase entity.
func (_u *RequestUpdate) ClearTestCases() *RequestUpdate {
	_u.mutation.ClearTestCases()
	return _u
}

// RemoveTestCaseIDs removes the "test_cases" edge to TestCase entities by IDs.
func (_u *RequestUpdate) RemoveTestCaseIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveTestCaseIDs(ids...)
	return _u
}

// RemoveTestCases removes "test_cases" edges to TestCase entities.
func (_u *RequestUpdate) RemoveTestCases(v ...*TestCase) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestCaseIDs(ids...)
}

// ClearMetrics clears all "metrics" edges to the GenerationMetric entity.
func (_u *RequestUpdate) ClearMetrics() *RequestUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// RemoveMetricIDs removes the "metrics" edge to GenerationMetric entities by IDs.
func (_u *RequestUpdate) RemoveMetricIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveMetricIDs(ids...)
	return _u
}

// RemoveMetrics removes "metrics" edges to GenerationMetric entities.
func (_u *RequestUpdate) RemoveMetrics(v ...*GenerationMetric) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMetricIDs(ids...)
}

// ClearCoverage clears all "coverage" edges to the CoverageAnalysis entity.
func (_u *RequestUpdate) ClearCoverage() *RequestUpdate {
	_u.mutation.ClearCoverage()
	return _u
}

// RemoveCoverageIDs removes the "coverage" edge to CoverageAnalysis entities by IDs.
func (_u *RequestUpdate) RemoveCoverageIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveCoverageIDs(ids...)
	return _u
}

// RemoveCoverage removes "coverage" edges to CoverageAnalysis entities.
func (_u *RequestUpdate) RemoveCoverage(v ...*CoverageAnalysis) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCoverageIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the SecurityAuditLog entity.
func (_u *RequestUpdate) ClearAuditLogs() *RequestUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to SecurityAuditLog entities by IDs.
func (_u *RequestUpdate) RemoveAuditLogIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to SecurityAuditLog entities.
func (_u *RequestUpdate) RemoveAuditLogs(v ...*SecurityAuditLog) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (_u *RequestUpdate) ClearCheckpoint() *RequestUpdate {
	_u.mutation.ClearCheckpoint()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *RequestUpdate) ClearEvents() *RequestUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *RequestUpdate) RemoveEventIDs(ids ...int64) *RequestUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *RequestUpdate) RemoveEvents(v ...*Event) *RequestUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdate) check() error {
	if v, ok := _u.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(request.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(request.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(request.FieldRequirements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequirements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, request.FieldRequirements, value)
		})
	}
	if value, ok := _u.mutation.TestTypes(); ok {
		_spec.SetField(request.FieldTestTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, request.FieldTestTypes, value)
		})
	}
	if _u.mutation.TestTypesCleared() {
		_spec.ClearField(request.FieldTestTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.OpenapiURL(); ok {
		_spec.SetField(request.FieldOpenapiURL, field.TypeString, value)
	}
	if _u.mutation.OpenapiURLCleared() {
		_spec.ClearField(request.FieldOpenapiURL, field.TypeString)
	}
	if value, ok := _u.mutation.OpenapiContent(); ok {
		_spec.SetField(request.FieldOpenapiContent, field.TypeString, value)
	}
	if _u.mutation.OpenapiContentCleared() {
		_spec.ClearField(request.FieldOpenapiContent, field.TypeString)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(request.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(request.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(request.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(request.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(request.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(request.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(request.FieldResultSummary, field.TypeJSON, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(request.FieldResultSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(request.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(request.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(request.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(request.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequeueCount(); ok {
		_spec.SetField(request.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequeueCount(); ok {
		_spec.AddField(request.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(request.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(request.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(request.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(request.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(request.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TestCasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TestCasesTable,
			Columns: []string{request.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestCasesIDs(); len(nodes) > 0 && !_u.mutation.TestCasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TestCasesTable,
			Columns: []string{request.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TestCasesTable,
			Columns: []string{request.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MetricsTable,
			Columns: []string{request.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMetricsIDs(); len(nodes) > 0 && !_u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MetricsTable,
			Columns: []string{request.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MetricsTable,
			Columns: []string{request.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoverageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CoverageTable,
			Columns: []string{request.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoverageIDs(); len(nodes) > 0 && !_u.mutation.CoverageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CoverageTable,
			Columns: []string{request.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoverageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CoverageTable,
			Columns: []string{request.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AuditLogsTable,
			Columns: []string{request.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AuditLogsTable,
			Columns: []string{request.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AuditLogsTable,
			Columns: []string{request.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.CheckpointTable,
			Columns: []string{request.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.CheckpointTable,
			Columns: []string{request.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.EventsTable,
			Columns: []string{request.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.EventsTable,
			Columns: []string{request.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.EventsTable,
			Columns: []string{request.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestUpdateOne is the builder for updating a single Request entity.
type RequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestMutation
}

// SetRequestType sets the "request_type" field.
func (_u *RequestUpdateOne) SetRequestType(v request.RequestType) *RequestUpdateOne {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRequestType(v *request.RequestType) *RequestUpdateOne {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *RequestUpdateOne) SetURL(v string) *RequestUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableURL(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *RequestUpdateOne) ClearURL() *RequestUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *RequestUpdateOne) SetRequirements(v []string) *RequestUpdateOne {
	_u.mutation.SetRequirements(v)
	return _u
}

// AppendRequirements appends value to the "requirements" field.
func (_u *RequestUpdateOne) AppendRequirements(v []string) *RequestUpdateOne {
	_u.mutation.AppendRequirements(v)
	return _u
}

// SetTestTypes sets the "test_types" field.
func (_u *RequestUpdateOne) SetTestTypes(v []string) *RequestUpdateOne {
	_u.mutation.SetTestTypes(v)
	return _u
}

// AppendTestTypes appends value to the "test_types" field.
func (_u *RequestUpdateOne) AppendTestTypes(v []string) *RequestUpdateOne {
	_u.mutation.AppendTestTypes(v)
	return _u
}

// ClearTestTypes clears the value of the "test_types" field.
func (_u *RequestUpdateOne) ClearTestTypes() *RequestUpdateOne {
	_u.mutation.ClearTestTypes()
	return _u
}

// SetOpenapiURL sets the "openapi_url" field.
func (_u *RequestUpdateOne) SetOpenapiURL(v string) *RequestUpdateOne {
	_u.mutation.SetOpenapiURL(v)
	return _u
}

// SetNillableOpenapiURL sets the "openapi_url" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableOpenapiURL(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetOpenapiURL(*v)
	}
	return _u
}

// ClearOpenapiURL clears the value of the "openapi_url" field.
func (_u *RequestUpdateOne) ClearOpenapiURL() *RequestUpdateOne {
	_u.mutation.ClearOpenapiURL()
	return _u
}

// SetOpenapiContent sets the "openapi_content" field.
func (_u *RequestUpdateOne) SetOpenapiContent(v string) *RequestUpdateOne {
	_u.mutation.SetOpenapiContent(v)
	return _u
}

// SetNillableOpenapiContent sets the "openapi_content" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableOpenapiContent(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetOpenapiContent(*v)
	}
	return _u
}

// ClearOpenapiContent clears the value of the "openapi_content" field.
func (_u *RequestUpdateOne) ClearOpenapiContent() *RequestUpdateOne {
	_u.mutation.ClearOpenapiContent()
	return _u
}

// SetOptions sets the "options" field.
func (_u *RequestUpdateOne) SetOptions(v map[string]interface{}) *RequestUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *RequestUpdateOne) ClearOptions() *RequestUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestUpdateOne) SetStatus(v request.Status) *RequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableStatus(v *request.Status) *RequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *RequestUpdateOne) SetErrorCode(v string) *RequestUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableErrorCode(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *RequestUpdateOne) ClearErrorCode() *RequestUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestUpdateOne) SetErrorMessage(v string) *RequestUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableErrorMessage(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RequestUpdateOne) ClearErrorMessage() *RequestUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *RequestUpdateOne) SetResultSummary(v map[string]interface{}) *RequestUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *RequestUpdateOne) ClearResultSummary() *RequestUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RequestUpdateOne) SetPodID(v string) *RequestUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillablePodID(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RequestUpdateOne) ClearPodID() *RequestUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RequestUpdateOne) SetLastHeartbeatAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RequestUpdateOne) ClearLastHeartbeatAt() *RequestUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetRequeueCount sets the "requeue_count" field.
func (_u *RequestUpdateOne) SetRequeueCount(v int) *RequestUpdateOne {
	_u.mutation.ResetRequeueCount()
	_u.mutation.SetRequeueCount(v)
	return _u
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRequeueCount(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetRequeueCount(*v)
	}
	return _u
}

// AddRequeueCount adds value to the "requeue_count" field.
func (_u *RequestUpdateOne) AddRequeueCount(v int) *RequestUpdateOne {
	_u.mutation.AddRequeueCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RequestUpdateOne) SetCreatedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableCreatedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RequestUpdateOne) SetStartedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableStartedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RequestUpdateOne) ClearStartedAt() *RequestUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RequestUpdateOne) SetCompletedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableCompletedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RequestUpdateOne) ClearCompletedAt() *RequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by IDs.
func (_u *RequestUpdateOne) AddTestCaseIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddTestCaseIDs(ids...)
	return _u
}

// AddTestCases adds the "test_cases" edges to the TestCase entity.
func (_u *RequestUpdateOne) AddTestCases(v ...*TestCase) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestCaseIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the GenerationMetric entity by IDs.
func (_u *RequestUpdateOne) AddMetricIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddMetricIDs(ids...)
	return _u
}

// AddMetrics adds the "metrics" edges to the GenerationMetric entity.
func (_u *RequestUpdateOne) AddMetrics(v ...*GenerationMetric) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMetricIDs(ids...)
}

// AddCoverageIDs adds the "coverage" edge to the CoverageAnalysis entity by IDs.
func (_u *RequestUpdateOne) AddCoverageIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddCoverageIDs(ids...)
	return _u
}

// AddCoverage adds the "coverage" edges to the CoverageAnalysis entity.
func (_u *RequestUpdateOne) AddCoverage(v ...*CoverageAnalysis) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCoverageIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the SecurityAuditLog entity by IDs.
func (_u *RequestUpdateOne) AddAuditLogIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the SecurityAuditLog entity.
func (_u *RequestUpdateOne) AddAuditLogs(v ...*SecurityAuditLog) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_u *RequestUpdateOne) SetCheckpointID(id string) *RequestUpdateOne {
	_u.mutation.SetCheckpointID(id)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableCheckpointID(id *string) *RequestUpdateOne {
	if id != nil {
		_u = _u.SetCheckpointID(*id)
	}
	return _u
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_u *RequestUpdateOne) SetCheckpoint(v *Checkpoint) *RequestUpdateOne {
	return _u.SetCheckpointID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *RequestUpdateOne) AddEventIDs(ids ...int64) *RequestUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *RequestUpdateOne) AddEvents(v ...*Event) *RequestUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdateOne) Mutation() *RequestMutation {
	return _u.mutation
}

// ClearTestCases clears all "test_cases" edges to the TestCase entity.
func (_u *RequestUpdateOne) ClearTestCases() *RequestUpdateOne {
	_u.mutation.ClearTestCases()
	return _u
}

// RemoveTestCaseIDs removes the "test_cases" edge to TestCase entities by IDs.
func (_u *RequestUpdateOne) RemoveTestCaseIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveTestCaseIDs(ids...)
	return _u
}

// RemoveTestCases removes "test_cases" edges to TestCase entities.
func (_u *RequestUpdateOne) RemoveTestCases(v ...*TestCase) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestCaseIDs(ids...)
}

// ClearMetrics clears all "metrics" edges to the GenerationMetric entity.
func (_u *RequestUpdateOne) ClearMetrics() *RequestUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// RemoveMetricIDs removes the "metrics" edge to GenerationMetric entities by IDs.
func (_u *RequestUpdateOne) RemoveMetricIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveMetricIDs(ids...)
	return _u
}

// RemoveMetrics removes "metrics" edges to GenerationMetric entities.
func (_u *RequestUpdateOne) RemoveMetrics(v ...*GenerationMetric) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMetricIDs(ids...)
}

// ClearCoverage clears all "coverage" edges to the CoverageAnalysis entity.
func (_u *RequestUpdateOne) ClearCoverage() *RequestUpdateOne {
	_u.mutation.ClearCoverage()
	return _u
}

// RemoveCoverageIDs removes the "coverage" edge to CoverageAnalysis entities by IDs.
func (_u *RequestUpdateOne) RemoveCoverageIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveCoverageIDs(ids...)
	return _u
}

// RemoveCoverage removes "coverage" edges to CoverageAnalysis entities.
func (_u *RequestUpdateOne) RemoveCoverage(v ...*CoverageAnalysis) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCoverageIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the SecurityAuditLog entity.
func (_u *RequestUpdateOne) ClearAuditLogs() *RequestUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to SecurityAuditLog entities by IDs.
func (_u *RequestUpdateOne) RemoveAuditLogIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to SecurityAuditLog entities.
func (_u *RequestUpdateOne) RemoveAuditLogs(v ...*SecurityAuditLog) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (_u *RequestUpdateOne) ClearCheckpoint() *RequestUpdateOne {
	_u.mutation.ClearCheckpoint()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *RequestUpdateOne) ClearEvents() *RequestUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *RequestUpdateOne) RemoveEventIDs(ids ...int64) *RequestUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *RequestUpdateOne) RemoveEvents(v ...*Event) *RequestUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdateOne) Where(ps ...predicate.Request) *RequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestUpdateOne) Select(field string, fields ...string) *RequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Request entity.
func (_u *RequestUpdateOne) Save(ctx context.Context) (*Request, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdateOne) SaveX(ctx context.Context) *Request {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdateOne) check() error {
	if v, ok := _u.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdateOne) sqlSave(ctx context.Context) (_node *Request, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Request.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, request.FieldID)
		for _, f := range fields {
			if !request.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != request.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(request.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(request.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(request.FieldRequirements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequirements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, request.FieldRequirements, value)
		})
	}
	if value, ok := _u.mutation.TestTypes(); ok {
		_spec.SetField(request.FieldTestTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, request.FieldTestTypes, value)
		})
	}
	if _u.mutation.TestTypesCleared() {
		_spec.ClearField(request.FieldTestTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.OpenapiURL(); ok {
		_spec.SetField(request.FieldOpenapiURL, field.TypeString, value)
	}
	if _u.mutation.OpenapiURLCleared() {
		_spec.ClearField(request.FieldOpenapiURL, field.TypeString)
	}
	if value, ok := _u.mutation.OpenapiContent(); ok {
		_spec.SetField(request.FieldOpenapiContent, field.TypeString, value)
	}
	if _u.mutation.OpenapiContentCleared() {
		_spec.ClearField(request.FieldOpenapiContent, field.TypeString)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(request.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(request.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(request.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(request.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(request.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(request.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(request.FieldResultSummary, field.TypeJSON, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(request.FieldResultSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(request.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(request.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(request.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(request.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequeueCount(); ok {
		_spec.SetField(request.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequeueCount(); ok {
		_spec.AddField(request.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(request.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(request.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(request.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(request.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(request.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TestCasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TestCasesTable,
			Columns: []string{request.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestCasesIDs(); len(nodes) > 0 && !_u.mutation.TestCasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TestCasesTable,
			Columns: []string{request.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TestCasesTable,
			Columns: []string{request.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MetricsTable,
			Columns: []string{request.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMetricsIDs(); len(nodes) > 0 && !_u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MetricsTable,
			Columns: []string{request.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MetricsTable,
			Columns: []string{request.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CoverageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CoverageTable,
			Columns: []string{request.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoverageIDs(); len(nodes) > 0 && !_u.mutation.CoverageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CoverageTable,
			Columns: []string{request.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoverageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CoverageTable,
			Columns: []string{request.CoverageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AuditLogsTable,
			Columns: []string{request.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AuditLogsTable,
			Columns: []string{request.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AuditLogsTable,
			Columns: []string{request.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.CheckpointTable,
			Columns: []string{request.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   request.CheckpointTable,
			Columns: []string{request.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.EventsTable,
			Columns: []string{request.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.EventsTable,
			Columns: []string{request.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.EventsTable,
			Columns: []string{request.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Request{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
