// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/ent/securityauditlog"
)

// SecurityAuditLogCreate is the builder for creating a SecurityAuditLog entity.
type SecurityAuditLogCreate struct {
	config
	mutation *SecurityAuditLogMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *SecurityAuditLogCreate) SetRequestID(v string) *SecurityAuditLogCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *SecurityAuditLogCreate) SetNillableRequestID(v *string) *SecurityAuditLogCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetTestIndex sets the "test_index" field.
func (_c *SecurityAuditLogCreate) SetTestIndex(v int) *SecurityAuditLogCreate {
	_c.mutation.SetTestIndex(v)
	return _c
}

// SetNillableTestIndex sets the "test_index" field if the given value is not nil.
func (_c *SecurityAuditLogCreate) SetNillableTestIndex(v *int) *SecurityAuditLogCreate {
	if v != nil {
		_c.SetTestIndex(*v)
	}
	return _c
}

// SetLayer sets the "layer" field.
func (_c *SecurityAuditLogCreate) SetLayer(v securityauditlog.Layer) *SecurityAuditLogCreate {
	_c.mutation.SetLayer(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *SecurityAuditLogCreate) SetSeverity(v securityauditlog.Severity) *SecurityAuditLogCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *SecurityAuditLogCreate) SetPattern(v string) *SecurityAuditLogCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetSnippet sets the "snippet" field.
func (_c *SecurityAuditLogCreate) SetSnippet(v string) *SecurityAuditLogCreate {
	_c.mutation.SetSnippet(v)
	return _c
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_c *SecurityAuditLogCreate) SetNillableSnippet(v *string) *SecurityAuditLogCreate {
	if v != nil {
		_c.SetSnippet(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SecurityAuditLogCreate) SetCreatedAt(v time.Time) *SecurityAuditLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SecurityAuditLogCreate) SetNillableCreatedAt(v *time.Time) *SecurityAuditLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SecurityAuditLogCreate) SetID(v string) *SecurityAuditLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *SecurityAuditLogCreate) SetRequest(v *Request) *SecurityAuditLogCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the SecurityAuditLogMutation object of the builder.
func (_c *SecurityAuditLogCreate) Mutation() *SecurityAuditLogMutation {
	return _c.mutation
}

// Save creates the SecurityAuditLog in the database.
func (_c *SecurityAuditLogCreate) Save(ctx context.Context) (*SecurityAuditLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SecurityAuditLogCreate) SaveX(ctx context.Context) *SecurityAuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecurityAuditLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecurityAuditLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SecurityAuditLogCreate) defaults() {
	if _, ok := _c.mutation.TestIndex(); !ok {
		v := securityauditlog.DefaultTestIndex
		_c.mutation.SetTestIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := securityauditlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SecurityAuditLogCreate) check() error {
	if _, ok := _c.mutation.TestIndex(); !ok {
		return &ValidationError{Name: "test_index", err: errors.New(`ent: missing required field "SecurityAuditLog.test_index"`)}
	}
	if _, ok := _c.mutation.Layer(); !ok {
		return &ValidationError{Name: "layer", err: errors.New(`ent: missing required field "SecurityAuditLog.layer"`)}
	}
	if v, ok := _c.mutation.Layer(); ok {
		if err := securityauditlog.LayerValidator(v); err != nil {
			return &ValidationError{Name: "layer", err: fmt.Errorf(`ent: validator failed for field "SecurityAuditLog.layer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "SecurityAuditLog.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := securityauditlog.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SecurityAuditLog.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "SecurityAuditLog.pattern"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SecurityAuditLog.created_at"`)}
	}
	return nil
}

func (_c *SecurityAuditLogCreate) sqlSave(ctx context.Context) (*SecurityAuditLog, error) {
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
			return nil, fmt.Errorf("unexpected SecurityAuditLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SecurityAuditLogCreate) createSpec() (*SecurityAuditLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SecurityAuditLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(securityauditlog.Table, sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TestIndex(); ok {
		_spec.SetField(securityauditlog.FieldTestIndex, field.TypeInt, value)
		_node.TestIndex = value
	}
	if value, ok := _c.mutation.Layer(); ok {
		_spec.SetField(securityauditlog.FieldLayer, field.TypeEnum, value)
		_node.Layer = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(securityauditlog.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(securityauditlog.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.Snippet(); ok {
		_spec.SetField(securityauditlog.FieldSnippet, field.TypeString, value)
		_node.Snippet = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(securityauditlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   securityauditlog.RequestTable,
			Columns: []string{securityauditlog.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(request.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequestID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SecurityAuditLogCreateBulk is the builder for creating many SecurityAuditLog entities in bulk.
type SecurityAuditLogCreateBulk struct {
	config
	err      error
	builders []*SecurityAuditLogCreate
}

// Save creates the SecurityAuditLog entities in the database.
func (_c *SecurityAuditLogCreateBulk) Save(ctx context.Context) ([]*SecurityAuditLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SecurityAuditLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SecurityAuditLogMutation)
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
func (_c *SecurityAuditLogCreateBulk) SaveX(ctx context.Context) []*SecurityAuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecurityAuditLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecurityAuditLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
