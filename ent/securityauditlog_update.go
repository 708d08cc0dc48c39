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
	"github.com/qaforge/qaforge/ent/securityauditlog"
)

// SecurityAuditLogUpdate is the builder for updating SecurityAuditLog entities.
type SecurityAuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *SecurityAuditLogMutation
}

// Where appends a list predicates to the SecurityAuditLogUpdate builder.
func (_u *SecurityAuditLogUpdate) Where(ps ...predicate.SecurityAuditLog) *SecurityAuditLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestIndex sets the "test_index" field.
func (_u *SecurityAuditLogUpdate) SetTestIndex(v int) *SecurityAuditLogUpdate {
	_u.mutation.ResetTestIndex()
	_u.mutation.SetTestIndex(v)
	return _u
}

// SetNillableTestIndex sets the "test_index" field if the given value is not nil.
func (_u *SecurityAuditLogUpdate) SetNillableTestIndex(v *int) *SecurityAuditLogUpdate {
	if v != nil {
		_u.SetTestIndex(*v)
	}
	return _u
}

// AddTestIndex adds value to the "test_index" field.
func (_u *SecurityAuditLogUpdate) AddTestIndex(v int) *SecurityAuditLogUpdate {
	_u.mutation.AddTestIndex(v)
	return _u
}

// SetLayer sets the "layer" field.
func (_u *SecurityAuditLogUpdate) SetLayer(v securityauditlog.Layer) *SecurityAuditLogUpdate {
	_u.mutation.SetLayer(v)
	return _u
}

// SetNillableLayer sets the "layer" field if the given value is not nil.
func (_u *SecurityAuditLogUpdate) SetNillableLayer(v *securityauditlog.Layer) *SecurityAuditLogUpdate {
	if v != nil {
		_u.SetLayer(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SecurityAuditLogUpdate) SetSeverity(v securityauditlog.Severity) *SecurityAuditLogUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SecurityAuditLogUpdate) SetNillableSeverity(v *securityauditlog.Severity) *SecurityAuditLogUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *SecurityAuditLogUpdate) SetPattern(v string) *SecurityAuditLogUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *SecurityAuditLogUpdate) SetNillablePattern(v *string) *SecurityAuditLogUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *SecurityAuditLogUpdate) SetSnippet(v string) *SecurityAuditLogUpdate {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *SecurityAuditLogUpdate) SetNillableSnippet(v *string) *SecurityAuditLogUpdate {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// ClearSnippet clears the value of the "snippet" field.
func (_u *SecurityAuditLogUpdate) ClearSnippet() *SecurityAuditLogUpdate {
	_u.mutation.ClearSnippet()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SecurityAuditLogUpdate) SetCreatedAt(v time.Time) *SecurityAuditLogUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SecurityAuditLogUpdate) SetNillableCreatedAt(v *time.Time) *SecurityAuditLogUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SecurityAuditLogMutation object of the builder.
func (_u *SecurityAuditLogUpdate) Mutation() *SecurityAuditLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SecurityAuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecurityAuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SecurityAuditLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecurityAuditLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SecurityAuditLogUpdate) check() error {
	if v, ok := _u.mutation.Layer(); ok {
		if err := securityauditlog.LayerValidator(v); err != nil {
			return &ValidationError{Name: "layer", err: fmt.Errorf(`ent: validator failed for field "SecurityAuditLog.layer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := securityauditlog.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SecurityAuditLog.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *SecurityAuditLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(securityauditlog.Table, securityauditlog.Columns, sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestIndex(); ok {
		_spec.SetField(securityauditlog.FieldTestIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestIndex(); ok {
		_spec.AddField(securityauditlog.FieldTestIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Layer(); ok {
		_spec.SetField(securityauditlog.FieldLayer, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(securityauditlog.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(securityauditlog.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(securityauditlog.FieldSnippet, field.TypeString, value)
	}
	if _u.mutation.SnippetCleared() {
		_spec.ClearField(securityauditlog.FieldSnippet, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(securityauditlog.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{securityauditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SecurityAuditLogUpdateOne is the builder for updating a single SecurityAuditLog entity.
type SecurityAuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SecurityAuditLogMutation
}

// SetTestIndex sets the "test_index" field.
func (_u *SecurityAuditLogUpdateOne) SetTestIndex(v int) *SecurityAuditLogUpdateOne {
	_u.mutation.ResetTestIndex()
	_u.mutation.SetTestIndex(v)
	return _u
}

// SetNillableTestIndex sets the "test_index" field if the given value is not nil.
func (_u *SecurityAuditLogUpdateOne) SetNillableTestIndex(v *int) *SecurityAuditLogUpdateOne {
	if v != nil {
		_u.SetTestIndex(*v)
	}
	return _u
}

// AddTestIndex adds value to the "test_index" field.
func (_u *SecurityAuditLogUpdateOne) AddTestIndex(v int) *SecurityAuditLogUpdateOne {
	_u.mutation.AddTestIndex(v)
	return _u
}

// SetLayer sets the "layer" field.
func (_u *SecurityAuditLogUpdateOne) SetLayer(v securityauditlog.Layer) *SecurityAuditLogUpdateOne {
	_u.mutation.SetLayer(v)
	return _u
}

// SetNillableLayer sets the "layer" field if the given value is not nil.
func (_u *SecurityAuditLogUpdateOne) SetNillableLayer(v *securityauditlog.Layer) *SecurityAuditLogUpdateOne {
	if v != nil {
		_u.SetLayer(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SecurityAuditLogUpdateOne) SetSeverity(v securityauditlog.Severity) *SecurityAuditLogUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SecurityAuditLogUpdateOne) SetNillableSeverity(v *securityauditlog.Severity) *SecurityAuditLogUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *SecurityAuditLogUpdateOne) SetPattern(v string) *SecurityAuditLogUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *SecurityAuditLogUpdateOne) SetNillablePattern(v *string) *SecurityAuditLogUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetSnippet sets the "snippet" field.
func (_u *SecurityAuditLogUpdateOne) SetSnippet(v string) *SecurityAuditLogUpdateOne {
	_u.mutation.SetSnippet(v)
	return _u
}

// SetNillableSnippet sets the "snippet" field if the given value is not nil.
func (_u *SecurityAuditLogUpdateOne) SetNillableSnippet(v *string) *SecurityAuditLogUpdateOne {
	if v != nil {
		_u.SetSnippet(*v)
	}
	return _u
}

// ClearSnippet clears the value of the "snippet" field.
func (_u *SecurityAuditLogUpdateOne) ClearSnippet() *SecurityAuditLogUpdateOne {
	_u.mutation.ClearSnippet()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SecurityAuditLogUpdateOne) SetCreatedAt(v time.Time) *SecurityAuditLogUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SecurityAuditLogUpdateOne) SetNillableCreatedAt(v *time.Time) *SecurityAuditLogUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the SecurityAuditLogMutation object of the builder.
func (_u *SecurityAuditLogUpdateOne) Mutation() *SecurityAuditLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SecurityAuditLogUpdate builder.
func (_u *SecurityAuditLogUpdateOne) Where(ps ...predicate.SecurityAuditLog) *SecurityAuditLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SecurityAuditLogUpdateOne) Select(field string, fields ...string) *SecurityAuditLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SecurityAuditLog entity.
func (_u *SecurityAuditLogUpdateOne) Save(ctx context.Context) (*SecurityAuditLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecurityAuditLogUpdateOne) SaveX(ctx context.Context) *SecurityAuditLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SecurityAuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecurityAuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SecurityAuditLogUpdateOne) check() error {
	if v, ok := _u.mutation.Layer(); ok {
		if err := securityauditlog.LayerValidator(v); err != nil {
			return &ValidationError{Name: "layer", err: fmt.Errorf(`ent: validator failed for field "SecurityAuditLog.layer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := securityauditlog.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SecurityAuditLog.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *SecurityAuditLogUpdateOne) sqlSave(ctx context.Context) (_node *SecurityAuditLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(securityauditlog.Table, securityauditlog.Columns, sqlgraph.NewFieldSpec(securityauditlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SecurityAuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, securityauditlog.FieldID)
		for _, f := range fields {
			if !securityauditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != securityauditlog.FieldID {
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
	if value, ok := _u.mutation.TestIndex(); ok {
		_spec.SetField(securityauditlog.FieldTestIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestIndex(); ok {
		_spec.AddField(securityauditlog.FieldTestIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Layer(); ok {
		_spec.SetField(securityauditlog.FieldLayer, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(securityauditlog.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(securityauditlog.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Snippet(); ok {
		_spec.SetField(securityauditlog.FieldSnippet, field.TypeString, value)
	}
	if _u.mutation.SnippetCleared() {
		_spec.ClearField(securityauditlog.FieldSnippet, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(securityauditlog.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &SecurityAuditLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{securityauditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
