// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/ent/request"
)

// GenerationMetricCreate is the builder for creating a GenerationMetric entity.
type GenerationMetricCreate struct {
	config
	mutation *GenerationMetricMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *GenerationMetricCreate) SetRequestID(v string) *GenerationMetricCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *GenerationMetricCreate) SetStage(v generationmetric.Stage) *GenerationMetricCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *GenerationMetricCreate) SetAttempt(v int) *GenerationMetricCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *GenerationMetricCreate) SetNillableAttempt(v *int) *GenerationMetricCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationMetricCreate) SetStatus(v generationmetric.Status) *GenerationMetricCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *GenerationMetricCreate) SetDurationMs(v int) *GenerationMetricCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetTokensPrompt sets the "tokens_prompt" field.
func (_c *GenerationMetricCreate) SetTokensPrompt(v int) *GenerationMetricCreate {
	_c.mutation.SetTokensPrompt(v)
	return _c
}

// SetNillableTokensPrompt sets the "tokens_prompt" field if the given value is not nil.
func (_c *GenerationMetricCreate) SetNillableTokensPrompt(v *int) *GenerationMetricCreate {
	if v != nil {
		_c.SetTokensPrompt(*v)
	}
	return _c
}

// SetTokensCompletion sets the "tokens_completion" field.
func (_c *GenerationMetricCreate) SetTokensCompletion(v int) *GenerationMetricCreate {
	_c.mutation.SetTokensCompletion(v)
	return _c
}

// SetNillableTokensCompletion sets the "tokens_completion" field if the given value is not nil.
func (_c *GenerationMetricCreate) SetNillableTokensCompletion(v *int) *GenerationMetricCreate {
	if v != nil {
		_c.SetTokensCompletion(*v)
	}
	return _c
}

// SetTokensTotal sets the "tokens_total" field.
func (_c *GenerationMetricCreate) SetTokensTotal(v int) *GenerationMetricCreate {
	_c.mutation.SetTokensTotal(v)
	return _c
}

// SetNillableTokensTotal sets the "tokens_total" field if the given value is not nil.
func (_c *GenerationMetricCreate) SetNillableTokensTotal(v *int) *GenerationMetricCreate {
	if v != nil {
		_c.SetTokensTotal(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *GenerationMetricCreate) SetModel(v string) *GenerationMetricCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *GenerationMetricCreate) SetNillableModel(v *string) *GenerationMetricCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *GenerationMetricCreate) SetErrorCode(v string) *GenerationMetricCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *GenerationMetricCreate) SetNillableErrorCode(v *string) *GenerationMetricCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationMetricCreate) SetCreatedAt(v time.Time) *GenerationMetricCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationMetricCreate) SetNillableCreatedAt(v *time.Time) *GenerationMetricCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GenerationMetricCreate) SetID(v string) *GenerationMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *GenerationMetricCreate) SetRequest(v *Request) *GenerationMetricCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the GenerationMetricMutation object of the builder.
func (_c *GenerationMetricCreate) Mutation() *GenerationMetricMutation {
	return _c.mutation
}

// Save creates the GenerationMetric in the database.
func (_c *GenerationMetricCreate) Save(ctx context.Context) (*GenerationMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationMetricCreate) SaveX(ctx context.Context) *GenerationMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationMetricCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := generationmetric.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.TokensPrompt(); !ok {
		v := generationmetric.DefaultTokensPrompt
		_c.mutation.SetTokensPrompt(v)
	}
	if _, ok := _c.mutation.TokensCompletion(); !ok {
		v := generationmetric.DefaultTokensCompletion
		_c.mutation.SetTokensCompletion(v)
	}
	if _, ok := _c.mutation.TokensTotal(); !ok {
		v := generationmetric.DefaultTokensTotal
		_c.mutation.SetTokensTotal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generationmetric.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationMetricCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "GenerationMetric.request_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "GenerationMetric.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := generationmetric.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "GenerationMetric.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "GenerationMetric.attempt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GenerationMetric.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generationmetric.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationMetric.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "GenerationMetric.duration_ms"`)}
	}
	if _, ok := _c.mutation.TokensPrompt(); !ok {
		return &ValidationError{Name: "tokens_prompt", err: errors.New(`ent: missing required field "GenerationMetric.tokens_prompt"`)}
	}
	if _, ok := _c.mutation.TokensCompletion(); !ok {
		return &ValidationError{Name: "tokens_completion", err: errors.New(`ent: missing required field "GenerationMetric.tokens_completion"`)}
	}
	if _, ok := _c.mutation.TokensTotal(); !ok {
		return &ValidationError{Name: "tokens_total", err: errors.New(`ent: missing required field "GenerationMetric.tokens_total"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GenerationMetric.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "GenerationMetric.request"`)}
	}
	return nil
}

func (_c *GenerationMetricCreate) sqlSave(ctx context.Context) (*GenerationMetric, error) {
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
			return nil, fmt.Errorf("unexpected GenerationMetric.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GenerationMetricCreate) createSpec() (*GenerationMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationmetric.Table, sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(generationmetric.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(generationmetric.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generationmetric.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(generationmetric.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.TokensPrompt(); ok {
		_spec.SetField(generationmetric.FieldTokensPrompt, field.TypeInt, value)
		_node.TokensPrompt = value
	}
	if value, ok := _c.mutation.TokensCompletion(); ok {
		_spec.SetField(generationmetric.FieldTokensCompletion, field.TypeInt, value)
		_node.TokensCompletion = value
	}
	if value, ok := _c.mutation.TokensTotal(); ok {
		_spec.SetField(generationmetric.FieldTokensTotal, field.TypeInt, value)
		_node.TokensTotal = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(generationmetric.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(generationmetric.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generationmetric.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generationmetric.RequestTable,
			Columns: []string{generationmetric.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(request.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GenerationMetricCreateBulk is the builder for creating many GenerationMetric entities in bulk.
type GenerationMetricCreateBulk struct {
	config
	err      error
	builders []*GenerationMetricCreate
}

// Save creates the GenerationMetric entities in the database.
func (_c *GenerationMetricCreateBulk) Save(ctx context.Context) ([]*GenerationMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationMetricMutation)
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
func (_c *GenerationMetricCreateBulk) SaveX(ctx context.Context) []*GenerationMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
