// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qaforge/qaforge/ent/checkpoint"
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/ent/event"
	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/ent/securityauditlog"
	"github.com/qaforge/qaforge/ent/testcase"
)

// RequestCreate is the builder for creating a Request entity.
type RequestCreate struct {
	config
	mutation *RequestMutation
	hooks    []Hook
}

// SetRequestType sets the "request_type" field.
func (_c *RequestCreate) SetRequestType(v request.RequestType) *RequestCreate {
	_c.mutation.SetRequestType(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *RequestCreate) SetURL(v string) *RequestCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *RequestCreate) SetNillableURL(v *string) *RequestCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetRequirements sets the "requirements" field.
func (_c *RequestCreate) SetRequirements(v []string) *RequestCreate {
	_c.mutation.SetRequirements(v)
	return _c
}

// SetTestTypes sets the "test_types" field.
func (_c *RequestCreate) SetTestTypes(v []string) *RequestCreate {
	_c.mutation.SetTestTypes(v)
	return _c
}

// SetOpenapiURL sets the "openapi_url" field.
func (_c *RequestCreate) SetOpenapiURL(v string) *RequestCreate {
	_c.mutation.SetOpenapiURL(v)
	return _c
}

// SetNillableOpenapiURL sets the "openapi_url" field if the given value is not nil.
func (_c *RequestCreate) SetNillableOpenapiURL(v *string) *RequestCreate {
	if v != nil {
		_c.SetOpenapiURL(*v)
	}
	return _c
}

// SetOpenapiContent sets the "openapi_content" field.
func (_c *RequestCreate) SetOpenapiContent(v string) *RequestCreate {
	_c.mutation.SetOpenapiContent(v)
	return _c
}

// SetNillableOpenapiContent sets the "openapi_content" field if the given value is not nil.
func (_c *RequestCreate) SetNillableOpenapiContent(v *string) *RequestCreate {
	if v != nil {
		_c.SetOpenapiContent(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *RequestCreate) SetOptions(v map[string]interface{}) *RequestCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequestCreate) SetStatus(v request.Status) *RequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequestCreate) SetNillableStatus(v *request.Status) *RequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *RequestCreate) SetErrorCode(v string) *RequestCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *RequestCreate) SetNillableErrorCode(v *string) *RequestCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RequestCreate) SetErrorMessage(v string) *RequestCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RequestCreate) SetNillableErrorMessage(v *string) *RequestCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *RequestCreate) SetResultSummary(v map[string]interface{}) *RequestCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *RequestCreate) SetPodID(v string) *RequestCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *RequestCreate) SetNillablePodID(v *string) *RequestCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RequestCreate) SetLastHeartbeatAt(v time.Time) *RequestCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableLastHeartbeatAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetRequeueCount sets the "requeue_count" field.
func (_c *RequestCreate) SetRequeueCount(v int) *RequestCreate {
	_c.mutation.SetRequeueCount(v)
	return _c
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_c *RequestCreate) SetNillableRequeueCount(v *int) *RequestCreate {
	if v != nil {
		_c.SetRequeueCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestCreate) SetCreatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCreatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RequestCreate) SetStartedAt(v time.Time) *RequestCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableStartedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RequestCreate) SetCompletedAt(v time.Time) *RequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCompletedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestCreate) SetID(v string) *RequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by IDs.
func (_c *RequestCreate) AddTestCaseIDs(ids ...string) *RequestCreate {
	_c.mutation.AddTestCaseIDs(ids...)
	return _c
}

// AddTestCases adds the "test_cases" edges to the TestCase entity.
func (_c *RequestCreate) AddTestCases(v ...*TestCase) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTestCaseIDs(ids...)
}

// AddMetricIDs adds the "metrics" edge to the GenerationMetric entity by IDs.
func (_c *RequestCreate) AddMetricIDs(ids ...string) *RequestCreate {
	_c.mutation.AddMetricIDs(ids...)
	return _c
}

// AddMetrics adds the "metrics" edges to the GenerationMetric entity.
func (_c *RequestCreate) AddMetrics(v ...*GenerationMetric) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMetricIDs(ids...)
}

// AddCoverageIDs adds the "coverage" edge to the CoverageAnalysis entity by IDs.
func (_c *RequestCreate) AddCoverageIDs(ids ...string) *RequestCreate {
	_c.mutation.AddCoverageIDs(ids...)
	return _c
}

// AddCoverage adds the "coverage" edges to the CoverageAnalysis entity.
func (_c *RequestCreate) AddCoverage(v ...*CoverageAnalysis) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCoverageIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the SecurityAuditLog entity by IDs.
func (_c *RequestCreate) AddAuditLogIDs(ids ...string) *RequestCreate {
	_c.mutation.AddAuditLogIDs(ids...)
	return _c
}

// AddAuditLogs adds the "audit_logs" edges to the SecurityAuditLog entity.
func (_c *RequestCreate) AddAuditLogs(v ...*SecurityAuditLog) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditLogIDs(ids...)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_c *RequestCreate) SetCheckpointID(id string) *RequestCreate {
	_c.mutation.SetCheckpointID(id)
	return _c
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_c *RequestCreate) SetNillableCheckpointID(id *string) *RequestCreate {
	if id != nil {
		_c = _c.SetCheckpointID(*id)
	}
	return _c
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_c *RequestCreate) SetCheckpoint(v *Checkpoint) *RequestCreate {
	return _c.SetCheckpointID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *RequestCreate) AddEventIDs(ids ...int64) *RequestCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *RequestCreate) AddEvents(v ...*Event) *RequestCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_c *RequestCreate) Mutation() *RequestMutation {
	return _c.mutation
}

// Save creates the Request in the database.
func (_c *RequestCreate) Save(ctx context.Context) (*Request, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestCreate) SaveX(ctx context.Context) *Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := request.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequeueCount(); !ok {
		v := request.DefaultRequeueCount
		_c.mutation.SetRequeueCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := request.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestCreate) check() error {
	if _, ok := _c.mutation.RequestType(); !ok {
		return &ValidationError{Name: "request_type", err: errors.New(`ent: missing required field "Request.request_type"`)}
	}
	if v, ok := _c.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Requirements(); !ok {
		return &ValidationError{Name: "requirements", err: errors.New(`ent: missing required field "Request.requirements"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Request.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequeueCount(); !ok {
		return &ValidationError{Name: "requeue_count", err: errors.New(`ent: missing required field "Request.requeue_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Request.created_at"`)}
	}
	return nil
}

func (_c *RequestCreate) sqlSave(ctx context.Context) (*Request, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Request.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RequestCreate) createSpec() (*Request, *sqlgraph.CreateSpec) {
	var (
		_node = &Request{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(request.Table, sqlgraph.NewFieldSpec(request.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeEnum, value)
		_node.RequestType = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(request.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.Requirements(); ok {
		_spec.SetField(request.FieldRequirements, field.TypeJSON, value)
		_node.Requirements = value
	}
	if value, ok := _c.mutation.TestTypes(); ok {
		_spec.SetField(request.FieldTestTypes, field.TypeJSON, value)
		_node.TestTypes = value
	}
	if value, ok := _c.mutation.OpenapiURL(); ok {
		_spec.SetField(request.FieldOpenapiURL, field.TypeString, value)
		_node.OpenapiURL = &value
	}
	if value, ok := _c.mutation.OpenapiContent(); ok {
		_spec.SetField(request.FieldOpenapiContent, field.TypeString, value)
		_node.OpenapiContent = &value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(request.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(request.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(request.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(request.FieldResultSummary, field.TypeJSON, value)
		_node.ResultSummary = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(request.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(request.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.RequeueCount(); ok {
		_spec.SetField(request.FieldRequeueCount, field.TypeInt, value)
		_node.RequeueCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(request.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(request.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(request.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TestCasesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MetricsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CoverageIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequestCreateBulk is the builder for creating many Request entities in bulk.
type RequestCreateBulk struct {
	config
	err      error
	builders []*RequestCreate
}

// Save creates the Request entities in the database.
func (_c *RequestCreateBulk) Save(ctx context.Context) ([]*Request, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Request, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RequestCreateBulk) SaveX(ctx context.Context) []*Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
