// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/ent/predicate"
)

// CoverageAnalysisDelete is the builder for deleting a CoverageAnalysis entity.
type CoverageAnalysisDelete struct {
	config
	hooks    []Hook
	mutation *CoverageAnalysisMutation
}

// Where appends a list predicates to the CoverageAnalysisDelete builder.
func (_d *CoverageAnalysisDelete) Where(ps ...predicate.CoverageAnalysis) *CoverageAnalysisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CoverageAnalysisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoverageAnalysisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CoverageAnalysisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(coverageanalysis.Table, sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CoverageAnalysisDeleteOne is the builder for deleting a single CoverageAnalysis entity.
type CoverageAnalysisDeleteOne struct {
	_d *CoverageAnalysisDelete
}

// Where appends a list predicates to the CoverageAnalysisDelete builder.
func (_d *CoverageAnalysisDeleteOne) Where(ps ...predicate.CoverageAnalysis) *CoverageAnalysisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CoverageAnalysisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{coverageanalysis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoverageAnalysisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
