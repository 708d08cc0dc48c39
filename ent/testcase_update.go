// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qaforge/qaforge/ent/predicate"
	"github.com/qaforge/qaforge/ent/testcase"
)

// TestCaseUpdate is the builder for updating TestCase entities.
type TestCaseUpdate struct {
	config
	hooks    []Hook
	mutation *TestCaseMutation
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdate) Where(ps ...predicate.TestCase) *TestCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TestCaseUpdate) SetName(v string) *TestCaseUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableName(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *TestCaseUpdate) SetCode(v string) *TestCaseUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableCode(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestCaseUpdate) SetDescription(v string) *TestCaseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableDescription(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TestCaseUpdate) ClearDescription() *TestCaseUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *TestCaseUpdate) SetTestType(v string) *TestCaseUpdate {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableTestType(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// ClearTestType clears the value of the "test_type" field.
func (_u *TestCaseUpdate) ClearTestType() *TestCaseUpdate {
	_u.mutation.ClearTestType()
	return _u
}

// SetScore sets the "score" field.
func (_u *TestCaseUpdate) SetScore(v int) *TestCaseUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableScore(v *int) *TestCaseUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TestCaseUpdate) AddScore(v int) *TestCaseUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetValid sets the "valid" field.
func (_u *TestCaseUpdate) SetValid(v bool) *TestCaseUpdate {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableValid(v *bool) *TestCaseUpdate {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetDuplicateOf sets the "duplicate_of" field.
func (_u *TestCaseUpdate) SetDuplicateOf(v string) *TestCaseUpdate {
	_u.mutation.SetDuplicateOf(v)
	return _u
}

// SetNillableDuplicateOf sets the "duplicate_of" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableDuplicateOf(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetDuplicateOf(*v)
	}
	return _u
}

// ClearDuplicateOf clears the value of the "duplicate_of" field.
func (_u *TestCaseUpdate) ClearDuplicateOf() *TestCaseUpdate {
	_u.mutation.ClearDuplicateOf()
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *TestCaseUpdate) SetSimilarity(v float64) *TestCaseUpdate {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableSimilarity(v *float64) *TestCaseUpdate {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *TestCaseUpdate) AddSimilarity(v float64) *TestCaseUpdate {
	_u.mutation.AddSimilarity(v)
	return _u
}

// ClearSimilarity clears the value of the "similarity" field.
func (_u *TestCaseUpdate) ClearSimilarity() *TestCaseUpdate {
	_u.mutation.ClearSimilarity()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TestCaseUpdate) SetCreatedAt(v time.Time) *TestCaseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableCreatedAt(v *time.Time) *TestCaseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdate) Mutation() *TestCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdate) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.request"`)
	}
	return nil
}

func (_u *TestCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(testcase.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(testcase.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(testcase.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(testcase.FieldTestType, field.TypeString, value)
	}
	if _u.mutation.TestTypeCleared() {
		_spec.ClearField(testcase.FieldTestType, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(testcase.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(testcase.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(testcase.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DuplicateOf(); ok {
		_spec.SetField(testcase.FieldDuplicateOf, field.TypeString, value)
	}
	if _u.mutation.DuplicateOfCleared() {
		_spec.ClearField(testcase.FieldDuplicateOf, field.TypeString)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(testcase.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(testcase.FieldSimilarity, field.TypeFloat64, value)
	}
	if _u.mutation.SimilarityCleared() {
		_spec.ClearField(testcase.FieldSimilarity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(testcase.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestCaseUpdateOne is the builder for updating a single TestCase entity.
type TestCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestCaseMutation
}

// SetName sets the "name" field.
func (_u *TestCaseUpdateOne) SetName(v string) *TestCaseUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableName(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *TestCaseUpdateOne) SetCode(v string) *TestCaseUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableCode(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestCaseUpdateOne) SetDescription(v string) *TestCaseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableDescription(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TestCaseUpdateOne) ClearDescription() *TestCaseUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *TestCaseUpdateOne) SetTestType(v string) *TestCaseUpdateOne {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableTestType(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// ClearTestType clears the value of the "test_type" field.
func (_u *TestCaseUpdateOne) ClearTestType() *TestCaseUpdateOne {
	_u.mutation.ClearTestType()
	return _u
}

// SetScore sets the "score" field.
func (_u *TestCaseUpdateOne) SetScore(v int) *TestCaseUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableScore(v *int) *TestCaseUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TestCaseUpdateOne) AddScore(v int) *TestCaseUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetValid sets the "valid" field.
func (_u *TestCaseUpdateOne) SetValid(v bool) *TestCaseUpdateOne {
	_u.mutation.SetValid(v)
	return _u
}

// SetNillableValid sets the "valid" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableValid(v *bool) *TestCaseUpdateOne {
	if v != nil {
		_u.SetValid(*v)
	}
	return _u
}

// SetDuplicateOf sets the "duplicate_of" field.
func (_u *TestCaseUpdateOne) SetDuplicateOf(v string) *TestCaseUpdateOne {
	_u.mutation.SetDuplicateOf(v)
	return _u
}

// SetNillableDuplicateOf sets the "duplicate_of" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableDuplicateOf(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetDuplicateOf(*v)
	}
	return _u
}

// ClearDuplicateOf clears the value of the "duplicate_of" field.
func (_u *TestCaseUpdateOne) ClearDuplicateOf() *TestCaseUpdateOne {
	_u.mutation.ClearDuplicateOf()
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *TestCaseUpdateOne) SetSimilarity(v float64) *TestCaseUpdateOne {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableSimilarity(v *float64) *TestCaseUpdateOne {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *TestCaseUpdateOne) AddSimilarity(v float64) *TestCaseUpdateOne {
	_u.mutation.AddSimilarity(v)
	return _u
}

// ClearSimilarity clears the value of the "similarity" field.
func (_u *TestCaseUpdateOne) ClearSimilarity() *TestCaseUpdateOne {
	_u.mutation.ClearSimilarity()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TestCaseUpdateOne) SetCreatedAt(v time.Time) *TestCaseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableCreatedAt(v *time.Time) *TestCaseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdateOne) Mutation() *TestCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdateOne) Where(ps ...predicate.TestCase) *TestCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestCaseUpdateOne) Select(field string, fields ...string) *TestCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestCase entity.
func (_u *TestCaseUpdateOne) Save(ctx context.Context) (*TestCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdateOne) SaveX(ctx context.Context) *TestCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdateOne) check() error {
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.request"`)
	}
	return nil
}

func (_u *TestCaseUpdateOne) sqlSave(ctx context.Context) (_node *TestCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testcase.FieldID)
		for _, f := range fields {
			if !testcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testcase.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(testcase.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(testcase.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(testcase.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(testcase.FieldTestType, field.TypeString, value)
	}
	if _u.mutation.TestTypeCleared() {
		_spec.ClearField(testcase.FieldTestType, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(testcase.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(testcase.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Valid(); ok {
		_spec.SetField(testcase.FieldValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DuplicateOf(); ok {
		_spec.SetField(testcase.FieldDuplicateOf, field.TypeString, value)
	}
	if _u.mutation.DuplicateOfCleared() {
		_spec.ClearField(testcase.FieldDuplicateOf, field.TypeString)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(testcase.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(testcase.FieldSimilarity, field.TypeFloat64, value)
	}
	if _u.mutation.SimilarityCleared() {
		_spec.ClearField(testcase.FieldSimilarity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(testcase.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &TestCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
