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
	"github.com/qaforge/qaforge/ent/testcase"
)

// TestCaseCreate is the builder for creating a TestCase entity.
type TestCaseCreate struct {
	config
	mutation *TestCaseMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *TestCaseCreate) SetRequestID(v string) *TestCaseCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TestCaseCreate) SetName(v string) *TestCaseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *TestCaseCreate) SetCode(v string) *TestCaseCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TestCaseCreate) SetDescription(v string) *TestCaseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableDescription(v *string) *TestCaseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTestType sets the "test_type" field.
func (_c *TestCaseCreate) SetTestType(v string) *TestCaseCreate {
	_c.mutation.SetTestType(v)
	return _c
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableTestType(v *string) *TestCaseCreate {
	if v != nil {
		_c.SetTestType(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *TestCaseCreate) SetScore(v int) *TestCaseCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableScore(v *int) *TestCaseCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetValid sets the "valid" field.
func (_c *TestCaseCreate) SetValid(v bool) *TestCaseCreate {
	_c.mutation.SetValid(v)
	return _c
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableValid(v *bool) *TestCaseCreate {
	if v != nil {
		_c.SetValid(*v)
	}
	return _c
}

// SetDuplicateOf sets the "duplicate_of" field.
func (_c *TestCaseCreate) SetDuplicateOf(v string) *TestCaseCreate {
	_c.mutation.SetDuplicateOf(v)
	return _c
}

// SetNillableDuplicateOf sets the "duplicate_of" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableDuplicateOf(v *string) *TestCaseCreate {
	if v != nil {
		_c.SetDuplicateOf(*v)
	}
	return _c
}

// SetSimilarity sets the "similarity" field.
func (_c *TestCaseCreate) SetSimilarity(v float64) *TestCaseCreate {
	_c.mutation.SetSimilarity(v)
	return _c
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableSimilarity(v *float64) *TestCaseCreate {
	if v != nil {
		_c.SetSimilarity(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestCaseCreate) SetCreatedAt(v time.Time) *TestCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestCaseCreate) SetNillableCreatedAt(v *time.Time) *TestCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestCaseCreate) SetID(v string) *TestCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *TestCaseCreate) SetRequest(v *Request) *TestCaseCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the TestCaseMutation object of the builder.
func (_c *TestCaseCreate) Mutation() *TestCaseMutation {
	return _c.mutation
}

// Save creates the TestCase in the database.
func (_c *TestCaseCreate) Save(ctx context.Context) (*TestCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestCaseCreate) SaveX(ctx context.Context) *TestCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestCaseCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := testcase.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Valid(); !ok {
		v := testcase.DefaultValid
		_c.mutation.SetValid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestCaseCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "TestCase.request_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TestCase.name"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "TestCase.code"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TestCase.score"`)}
	}
	if _, ok := _c.mutation.Valid(); !ok {
		return &ValidationError{Name: "valid", err: errors.New(`ent: missing required field "TestCase.valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestCase.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "TestCase.request"`)}
	}
	return nil
}

func (_c *TestCaseCreate) sqlSave(ctx context.Context) (*TestCase, error) {
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
			return nil, fmt.Errorf("unexpected TestCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestCaseCreate) createSpec() (*TestCase, *sqlgraph.CreateSpec) {
	var (
		_node = &TestCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testcase.Table, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(testcase.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(testcase.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TestType(); ok {
		_spec.SetField(testcase.FieldTestType, field.TypeString, value)
		_node.TestType = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(testcase.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Valid(); ok {
		_spec.SetField(testcase.FieldValid, field.TypeBool, value)
		_node.Valid = value
	}
	if value, ok := _c.mutation.DuplicateOf(); ok {
		_spec.SetField(testcase.FieldDuplicateOf, field.TypeString, value)
		_node.DuplicateOf = &value
	}
	if value, ok := _c.mutation.Similarity(); ok {
		_spec.SetField(testcase.FieldSimilarity, field.TypeFloat64, value)
		_node.Similarity = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testcase.RequestTable,
			Columns: []string{testcase.RequestColumn},
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

// TestCaseCreateBulk is the builder for creating many TestCase entities in bulk.
type TestCaseCreateBulk struct {
	config
	err      error
	builders []*TestCaseCreate
}

// Save creates the TestCase entities in the database.
func (_c *TestCaseCreateBulk) Save(ctx context.Context) ([]*TestCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestCaseMutation)
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
func (_c *TestCaseCreateBulk) SaveX(ctx context.Context) []*TestCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
