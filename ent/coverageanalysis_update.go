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
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/ent/predicate"
)

// CoverageAnalysisUpdate is the builder for updating CoverageAnalysis entities.
type CoverageAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *CoverageAnalysisMutation
}

// Where appends a list predicates to the CoverageAnalysisUpdate builder.
func (_u *CoverageAnalysisUpdate) Where(ps ...predicate.CoverageAnalysis) *CoverageAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequirement sets the "requirement" field.
func (_u *CoverageAnalysisUpdate) SetRequirement(v string) *CoverageAnalysisUpdate {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableRequirement(v *string) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetCovered sets the "covered" field.
func (_u *CoverageAnalysisUpdate) SetCovered(v bool) *CoverageAnalysisUpdate {
	_u.mutation.SetCovered(v)
	return _u
}

// SetNillableCovered sets the "covered" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableCovered(v *bool) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetCovered(*v)
	}
	return _u
}

// SetCoveredBy sets the "covered_by" field.
func (_u *CoverageAnalysisUpdate) SetCoveredBy(v []string) *CoverageAnalysisUpdate {
	_u.mutation.SetCoveredBy(v)
	return _u
}

// AppendCoveredBy appends value to the "covered_by" field.
func (_u *CoverageAnalysisUpdate) AppendCoveredBy(v []string) *CoverageAnalysisUpdate {
	_u.mutation.AppendCoveredBy(v)
	return _u
}

// ClearCoveredBy clears the value of the "covered_by" field.
func (_u *CoverageAnalysisUpdate) ClearCoveredBy() *CoverageAnalysisUpdate {
	_u.mutation.ClearCoveredBy()
	return _u
}

// SetQuality sets the "quality" field.
func (_u *CoverageAnalysisUpdate) SetQuality(v coverageanalysis.Quality) *CoverageAnalysisUpdate {
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableQuality(v *coverageanalysis.Quality) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CoverageAnalysisUpdate) SetCreatedAt(v time.Time) *CoverageAnalysisUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CoverageAnalysisUpdate) SetNillableCreatedAt(v *time.Time) *CoverageAnalysisUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CoverageAnalysisMutation object of the builder.
func (_u *CoverageAnalysisUpdate) Mutation() *CoverageAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoverageAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoverageAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoverageAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoverageAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoverageAnalysisUpdate) check() error {
	if v, ok := _u.mutation.Quality(); ok {
		if err := coverageanalysis.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "CoverageAnalysis.quality": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoverageAnalysis.request"`)
	}
	return nil
}

func (_u *CoverageAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coverageanalysis.Table, coverageanalysis.Columns, sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(coverageanalysis.FieldRequirement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Covered(); ok {
		_spec.SetField(coverageanalysis.FieldCovered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CoveredBy(); ok {
		_spec.SetField(coverageanalysis.FieldCoveredBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoveredBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coverageanalysis.FieldCoveredBy, value)
		})
	}
	if _u.mutation.CoveredByCleared() {
		_spec.ClearField(coverageanalysis.FieldCoveredBy, field.TypeJSON)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(coverageanalysis.FieldQuality, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(coverageanalysis.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coverageanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoverageAnalysisUpdateOne is the builder for updating a single CoverageAnalysis entity.
type CoverageAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoverageAnalysisMutation
}

// SetRequirement sets the "requirement" field.
func (_u *CoverageAnalysisUpdateOne) SetRequirement(v string) *CoverageAnalysisUpdateOne {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableRequirement(v *string) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetCovered sets the "covered" field.
func (_u *CoverageAnalysisUpdateOne) SetCovered(v bool) *CoverageAnalysisUpdateOne {
	_u.mutation.SetCovered(v)
	return _u
}

// SetNillableCovered sets the "covered" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableCovered(v *bool) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetCovered(*v)
	}
	return _u
}

// SetCoveredBy sets the "covered_by" field.
func (_u *CoverageAnalysisUpdateOne) SetCoveredBy(v []string) *CoverageAnalysisUpdateOne {
	_u.mutation.SetCoveredBy(v)
	return _u
}

// AppendCoveredBy appends value to the "covered_by" field.
func (_u *CoverageAnalysisUpdateOne) AppendCoveredBy(v []string) *CoverageAnalysisUpdateOne {
	_u.mutation.AppendCoveredBy(v)
	return _u
}

// ClearCoveredBy clears the value of the "covered_by" field.
func (_u *CoverageAnalysisUpdateOne) ClearCoveredBy() *CoverageAnalysisUpdateOne {
	_u.mutation.ClearCoveredBy()
	return _u
}

// SetQuality sets the "quality" field.
func (_u *CoverageAnalysisUpdateOne) SetQuality(v coverageanalysis.Quality) *CoverageAnalysisUpdateOne {
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableQuality(v *coverageanalysis.Quality) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CoverageAnalysisUpdateOne) SetCreatedAt(v time.Time) *CoverageAnalysisUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CoverageAnalysisUpdateOne) SetNillableCreatedAt(v *time.Time) *CoverageAnalysisUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CoverageAnalysisMutation object of the builder.
func (_u *CoverageAnalysisUpdateOne) Mutation() *CoverageAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoverageAnalysisUpdate builder.
func (_u *CoverageAnalysisUpdateOne) Where(ps ...predicate.CoverageAnalysis) *CoverageAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoverageAnalysisUpdateOne) Select(field string, fields ...string) *CoverageAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoverageAnalysis entity.
func (_u *CoverageAnalysisUpdateOne) Save(ctx context.Context) (*CoverageAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoverageAnalysisUpdateOne) SaveX(ctx context.Context) *CoverageAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoverageAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoverageAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoverageAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Quality(); ok {
		if err := coverageanalysis.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "CoverageAnalysis.quality": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CoverageAnalysis.request"`)
	}
	return nil
}

func (_u *CoverageAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *CoverageAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coverageanalysis.Table, coverageanalysis.Columns, sqlgraph.NewFieldSpec(coverageanalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoverageAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coverageanalysis.FieldID)
		for _, f := range fields {
			if !coverageanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coverageanalysis.FieldID {
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
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(coverageanalysis.FieldRequirement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Covered(); ok {
		_spec.SetField(coverageanalysis.FieldCovered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CoveredBy(); ok {
		_spec.SetField(coverageanalysis.FieldCoveredBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCoveredBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coverageanalysis.FieldCoveredBy, value)
		})
	}
	if _u.mutation.CoveredByCleared() {
		_spec.ClearField(coverageanalysis.FieldCoveredBy, field.TypeJSON)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(coverageanalysis.FieldQuality, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(coverageanalysis.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &CoverageAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coverageanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
