// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/ent/request"
)

// CoverageAnalysisCreate is the builder for creating a CoverageAnalysis entity.
type CoverageAnalysisCreate struct {
	config
	mutation *CoverageAnalysisMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *CoverageAnalysisCreate) SetRequestID(v string) *CoverageAnalysisCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetRequirement sets the "requirement" field.
func (_c *CoverageAnalysisCreate) SetRequirement(v string) *CoverageAnalysisCreate {
	_c.mutation.SetRequirement(v)
	return _c
}

// SetCovered sets the "covered" field.
func (_c *CoverageAnalysisCreate) SetCovered(v bool) *CoverageAnalysisCreate {
	_c.mutation.SetCovered(v)
	return _c
}

// SetNillableCovered sets the "covered" field if the given value is not nil.
func (_c *CoverageAnalysisCreate) SetNillableCovered(v *bool) *CoverageAnalysisCreate {
	if v != nil {
		_c.SetCovered(*v)
	}
	return _c
}

// SetCoveredBy sets the "covered_by" field.
func (_c *CoverageAnalysisCreate) SetCoveredBy(v []string) *CoverageAnalysisCreate {
	_c.mutation.SetCoveredBy(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *CoverageAnalysisCreate) SetQuality(v coverageanalysis.Quality) *CoverageAnalysisCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_c *CoverageAnalysisCreate) SetNillableQuality(v *coverageanalysis.Quality) *CoverageAnalysisCreate {
	if v != nil {
		_c.SetQuality(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CoverageAnalysisCreate) SetCreatedAt(v time.Time) *CoverageAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CoverageAnalysisCreate) SetNillableCreatedAt(v *time.Time) *CoverageAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CoverageAnalysisCreate) SetID(v string) *CoverageAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *CoverageAnalysisCreate) SetRequest(v *Request) *CoverageAnalysisCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the CoverageAnalysisMutation object of the builder.
func (_c *CoverageAnalysisCreate) Mutation() *CoverageAnalysisMutation {
	return _c.mutation
}

// Save creates the CoverageAnalysis in the database.
func (_c *CoverageAnalysisCreate) Save(ctx context.Context) (*CoverageAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoverageAnalysisCreate) SaveX(ctx context.Context) *CoverageAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoverageAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoverageAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoverageAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Covered(); !ok {
		v := coverageanalysis.DefaultCovered
		_c.mutation.SetCovered(v)
	}
	if _, ok := _c.mutation.Quality(); !ok {
		v := coverageanalysis.DefaultQuality
		_c.mutation.SetQuality(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := coverageanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoverageAnalysisCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "CoverageAnalysis.request_id"`)}
	}
	if _, ok := _c.mutation.Requirement(); !ok {
		return &ValidationError{Name: "requirement", err: errors.New(`ent: missing required field "CoverageAnalysis.requirement"`)}
	}
	if _, ok := _c.mutation.Covered(); !ok {
		return &ValidationError{Name: "covered", err: errors.New(`ent: missing required field "CoverageAnalysis.covered"`)}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "CoverageAnalysis.quality"`)}
	}
	if v, ok := _c.mutation.Quality(); ok {
		if err := coverageanalysis.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "CoverageAnalysis.quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CoverageAnalysis.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "CoverageAnalysis.request"`)}
	}
	return nil
}

func (_c *CoverageAnalysisCreate) sqlSave(ctx context.Context) (*CoverageAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected CoverageAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CoverageAnalysisCreate) createSpec() (*CoverageAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &CoverageAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coverageanalysis.Table, sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Requirement(); ok {
		_spec.SetField(coverageanalysis.FieldRequirement, field.TypeString, value)
		_node.Requirement = value
	}
	if value, ok := _c.mutation.Covered(); ok {
		_spec.SetField(coverageanalysis.FieldCovered, field.TypeBool, value)
		_node.Covered = value
	}
	if value, ok := _c.mutation.CoveredBy(); ok {
		_spec.SetField(coverageanalysis.FieldCoveredBy, field.TypeJSON, value)
		_node.CoveredBy = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(coverageanalysis.FieldQuality, field.TypeEnum, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(coverageanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   coverageanalysis.RequestTable,
			Columns: []string{coverageanalysis.RequestColumn},
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

// CoverageAnalysisCreateBulk is the builder for creating many CoverageAnalysis entities in bulk.
type CoverageAnalysisCreateBulk struct {
	config
	err      error
	builders []*CoverageAnalysisCreate
}

// Save creates the CoverageAnalysis entities in the database.
func (_c *CoverageAnalysisCreateBulk) Save(ctx context.Context) ([]*CoverageAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoverageAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoverageAnalysisMutation)
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
func (_c *CoverageAnalysisCreateBulk) SaveX(ctx context.Context) []*CoverageAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoverageAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoverageAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
