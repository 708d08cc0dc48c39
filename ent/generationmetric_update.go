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
	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/ent/predicate"
)

// GenerationMetricUpdate is the builder for updating GenerationMetric entities.
type GenerationMetricUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationMetricMutation
}

// Where appends a list predicates to the GenerationMetricUpdate builder.
func (_u *GenerationMetricUpdate) Where(ps ...predicate.GenerationMetric) *GenerationMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStage sets the "stage" field.
func (_u *GenerationMetricUpdate) SetStage(v generationmetric.Stage) *GenerationMetricUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableStage(v *generationmetric.Stage) *GenerationMetricUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *GenerationMetricUpdate) SetAttempt(v int) *GenerationMetricUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableAttempt(v *int) *GenerationMetricUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *GenerationMetricUpdate) AddAttempt(v int) *GenerationMetricUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationMetricUpdate) SetStatus(v generationmetric.Status) *GenerationMetricUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableStatus(v *generationmetric.Status) *GenerationMetricUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *GenerationMetricUpdate) SetDurationMs(v int) *GenerationMetricUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableDurationMs(v *int) *GenerationMetricUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *GenerationMetricUpdate) AddDurationMs(v int) *GenerationMetricUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTokensPrompt sets the "tokens_prompt" field.
func (_u *GenerationMetricUpdate) SetTokensPrompt(v int) *GenerationMetricUpdate {
	_u.mutation.ResetTokensPrompt()
	_u.mutation.SetTokensPrompt(v)
	return _u
}

// SetNillableTokensPrompt sets the "tokens_prompt" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableTokensPrompt(v *int) *GenerationMetricUpdate {
	if v != nil {
		_u.SetTokensPrompt(*v)
	}
	return _u
}

// AddTokensPrompt adds value to the "tokens_prompt" field.
func (_u *GenerationMetricUpdate) AddTokensPrompt(v int) *GenerationMetricUpdate {
	_u.mutation.AddTokensPrompt(v)
	return _u
}

// SetTokensCompletion sets the "tokens_completion" field.
func (_u *GenerationMetricUpdate) SetTokensCompletion(v int) *GenerationMetricUpdate {
	_u.mutation.ResetTokensCompletion()
	_u.mutation.SetTokensCompletion(v)
	return _u
}

// SetNillableTokensCompletion sets the "tokens_completion" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableTokensCompletion(v *int) *GenerationMetricUpdate {
	if v != nil {
		_u.SetTokensCompletion(*v)
	}
	return _u
}

// AddTokensCompletion adds value to the "tokens_completion" field.
func (_u *GenerationMetricUpdate) AddTokensCompletion(v int) *GenerationMetricUpdate {
	_u.mutation.AddTokensCompletion(v)
	return _u
}

// SetTokensTotal sets the "tokens_total" field.
func (_u *GenerationMetricUpdate) SetTokensTotal(v int) *GenerationMetricUpdate {
	_u.mutation.ResetTokensTotal()
	_u.mutation.SetTokensTotal(v)
	return _u
}

// SetNillableTokensTotal sets the "tokens_total" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableTokensTotal(v *int) *GenerationMetricUpdate {
	if v != nil {
		_u.SetTokensTotal(*v)
	}
	return _u
}

// AddTokensTotal adds value to the "tokens_total" field.
func (_u *GenerationMetricUpdate) AddTokensTotal(v int) *GenerationMetricUpdate {
	_u.mutation.AddTokensTotal(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *GenerationMetricUpdate) SetModel(v string) *GenerationMetricUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableModel(v *string) *GenerationMetricUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *GenerationMetricUpdate) ClearModel() *GenerationMetricUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *GenerationMetricUpdate) SetErrorCode(v string) *GenerationMetricUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableErrorCode(v *string) *GenerationMetricUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *GenerationMetricUpdate) ClearErrorCode() *GenerationMetricUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GenerationMetricUpdate) SetCreatedAt(v time.Time) *GenerationMetricUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GenerationMetricUpdate) SetNillableCreatedAt(v *time.Time) *GenerationMetricUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the GenerationMetricMutation object of the builder.
func (_u *GenerationMetricUpdate) Mutation() *GenerationMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationMetricUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := generationmetric.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "GenerationMetric.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationmetric.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationMetric.status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GenerationMetric.request"`)
	}
	return nil
}

func (_u *GenerationMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationmetric.Table, generationmetric.Columns, sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(generationmetric.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(generationmetric.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(generationmetric.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationmetric.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(generationmetric.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(generationmetric.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensPrompt(); ok {
		_spec.SetField(generationmetric.FieldTokensPrompt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensPrompt(); ok {
		_spec.AddField(generationmetric.FieldTokensPrompt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensCompletion(); ok {
		_spec.SetField(generationmetric.FieldTokensCompletion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensCompletion(); ok {
		_spec.AddField(generationmetric.FieldTokensCompletion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensTotal(); ok {
		_spec.SetField(generationmetric.FieldTokensTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensTotal(); ok {
		_spec.AddField(generationmetric.FieldTokensTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(generationmetric.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(generationmetric.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(generationmetric.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(generationmetric.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(generationmetric.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationMetricUpdateOne is the builder for updating a single GenerationMetric entity.
type GenerationMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationMetricMutation
}

// SetStage sets the "stage" field.
func (_u *GenerationMetricUpdateOne) SetStage(v generationmetric.Stage) *GenerationMetricUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableStage(v *generationmetric.Stage) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *GenerationMetricUpdateOne) SetAttempt(v int) *GenerationMetricUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableAttempt(v *int) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *GenerationMetricUpdateOne) AddAttempt(v int) *GenerationMetricUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationMetricUpdateOne) SetStatus(v generationmetric.Status) *GenerationMetricUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableStatus(v *generationmetric.Status) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *GenerationMetricUpdateOne) SetDurationMs(v int) *GenerationMetricUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableDurationMs(v *int) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *GenerationMetricUpdateOne) AddDurationMs(v int) *GenerationMetricUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTokensPrompt sets the "tokens_prompt" field.
func (_u *GenerationMetricUpdateOne) SetTokensPrompt(v int) *GenerationMetricUpdateOne {
	_u.mutation.ResetTokensPrompt()
	_u.mutation.SetTokensPrompt(v)
	return _u
}

// SetNillableTokensPrompt sets the "tokens_prompt" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableTokensPrompt(v *int) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetTokensPrompt(*v)
	}
	return _u
}

// AddTokensPrompt adds value to the "tokens_prompt" field.
func (_u *GenerationMetricUpdateOne) AddTokensPrompt(v int) *GenerationMetricUpdateOne {
	_u.mutation.AddTokensPrompt(v)
	return _u
}

// SetTokensCompletion sets the "tokens_completion" field.
func (_u *GenerationMetricUpdateOne) SetTokensCompletion(v int) *GenerationMetricUpdateOne {
	_u.mutation.ResetTokensCompletion()
	_u.mutation.SetTokensCompletion(v)
	return _u
}

// SetNillableTokensCompletion sets the "tokens_completion" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableTokensCompletion(v *int) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetTokensCompletion(*v)
	}
	return _u
}

// AddTokensCompletion adds value to the "tokens_completion" field.
func (_u *GenerationMetricUpdateOne) AddTokensCompletion(v int) *GenerationMetricUpdateOne {
	_u.mutation.AddTokensCompletion(v)
	return _u
}

// SetTokensTotal sets the "tokens_total" field.
func (_u *GenerationMetricUpdateOne) SetTokensTotal(v int) *GenerationMetricUpdateOne {
	_u.mutation.ResetTokensTotal()
	_u.mutation.SetTokensTotal(v)
	return _u
}

// SetNillableTokensTotal sets the "tokens_total" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableTokensTotal(v *int) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetTokensTotal(*v)
	}
	return _u
}

// AddTokensTotal adds value to the "tokens_total" field.
func (_u *GenerationMetricUpdateOne) AddTokensTotal(v int) *GenerationMetricUpdateOne {
	_u.mutation.AddTokensTotal(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *GenerationMetricUpdateOne) SetModel(v string) *GenerationMetricUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableModel(v *string) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *GenerationMetricUpdateOne) ClearModel() *GenerationMetricUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *GenerationMetricUpdateOne) SetErrorCode(v string) *GenerationMetricUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableErrorCode(v *string) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *GenerationMetricUpdateOne) ClearErrorCode() *GenerationMetricUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GenerationMetricUpdateOne) SetCreatedAt(v time.Time) *GenerationMetricUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GenerationMetricUpdateOne) SetNillableCreatedAt(v *time.Time) *GenerationMetricUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the GenerationMetricMutation object of the builder.
func (_u *GenerationMetricUpdateOne) Mutation() *GenerationMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationMetricUpdate builder.
func (_u *GenerationMetricUpdateOne) Where(ps ...predicate.GenerationMetric) *GenerationMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationMetricUpdateOne) Select(field string, fields ...string) *GenerationMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationMetric entity.
func (_u *GenerationMetricUpdateOne) Save(ctx context.Context) (*GenerationMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationMetricUpdateOne) SaveX(ctx context.Context) *GenerationMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationMetricUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := generationmetric.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "GenerationMetric.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationmetric.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationMetric.status": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GenerationMetric.request"`)
	}
	return nil
}

func (_u *GenerationMetricUpdateOne) sqlSave(ctx context.Context) (_node *GenerationMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationmetric.Table, generationmetric.Columns, sqlgraph.NewFieldSpec(generationmetric.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationmetric.FieldID)
		for _, f := range fields {
			if !generationmetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationmetric.FieldID {
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
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(generationmetric.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(generationmetric.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(generationmetric.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationmetric.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(generationmetric.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(generationmetric.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensPrompt(); ok {
		_spec.SetField(generationmetric.FieldTokensPrompt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensPrompt(); ok {
		_spec.AddField(generationmetric.FieldTokensPrompt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensCompletion(); ok {
		_spec.SetField(generationmetric.FieldTokensCompletion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensCompletion(); ok {
		_spec.AddField(generationmetric.FieldTokensCompletion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensTotal(); ok {
		_spec.SetField(generationmetric.FieldTokensTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensTotal(); ok {
		_spec.AddField(generationmetric.FieldTokensTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(generationmetric.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(generationmetric.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(generationmetric.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(generationmetric.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(generationmetric.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &GenerationMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
