// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/workpermit"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// WorkPermitUpdate is the builder for updating WorkPermit entities.
type WorkPermitUpdate struct {
	config
	hooks    []Hook
	mutation *WorkPermitMutation
}

// Where appends a list predicates to the WorkPermitUpdate builder.
func (_u *WorkPermitUpdate) Where(ps ...predicate.WorkPermit) *WorkPermitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkPermitUpdate) SetTitle(v string) *WorkPermitUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkPermitUpdate) SetNillableTitle(v *string) *WorkPermitUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkPermitUpdate) SetDescription(v string) *WorkPermitUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkPermitUpdate) SetNillableDescription(v *string) *WorkPermitUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WorkPermitUpdate) ClearDescription() *WorkPermitUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *WorkPermitUpdate) SetValidUntil(v time.Time) *WorkPermitUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *WorkPermitUpdate) SetNillableValidUntil(v *time.Time) *WorkPermitUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *WorkPermitUpdate) ClearValidUntil() *WorkPermitUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetLogo sets the "logo" field.
func (_u *WorkPermitUpdate) SetLogo(v map[string]string) *WorkPermitUpdate {
	_u.mutation.SetLogo(v)
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *WorkPermitUpdate) ClearLogo() *WorkPermitUpdate {
	_u.mutation.ClearLogo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkPermitUpdate) SetUpdatedAt(v time.Time) *WorkPermitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkPermitMutation object of the builder.
func (_u *WorkPermitUpdate) Mutation() *WorkPermitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkPermitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkPermitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkPermitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkPermitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkPermitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workpermit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkPermitUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := workpermit.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkPermit.title": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkPermitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workpermit.Table, workpermit.Columns, sqlgraph.NewFieldSpec(workpermit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(workpermit.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workpermit.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(workpermit.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(workpermit.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(workpermit.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(workpermit.FieldLogo, field.TypeJSON, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(workpermit.FieldLogo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workpermit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workpermit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkPermitUpdateOne is the builder for updating a single WorkPermit entity.
type WorkPermitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkPermitMutation
}

// SetTitle sets the "title" field.
func (_u *WorkPermitUpdateOne) SetTitle(v string) *WorkPermitUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkPermitUpdateOne) SetNillableTitle(v *string) *WorkPermitUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkPermitUpdateOne) SetDescription(v string) *WorkPermitUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkPermitUpdateOne) SetNillableDescription(v *string) *WorkPermitUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WorkPermitUpdateOne) ClearDescription() *WorkPermitUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *WorkPermitUpdateOne) SetValidUntil(v time.Time) *WorkPermitUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *WorkPermitUpdateOne) SetNillableValidUntil(v *time.Time) *WorkPermitUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *WorkPermitUpdateOne) ClearValidUntil() *WorkPermitUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetLogo sets the "logo" field.
func (_u *WorkPermitUpdateOne) SetLogo(v map[string]string) *WorkPermitUpdateOne {
	_u.mutation.SetLogo(v)
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *WorkPermitUpdateOne) ClearLogo() *WorkPermitUpdateOne {
	_u.mutation.ClearLogo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkPermitUpdateOne) SetUpdatedAt(v time.Time) *WorkPermitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkPermitMutation object of the builder.
func (_u *WorkPermitUpdateOne) Mutation() *WorkPermitMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkPermitUpdate builder.
func (_u *WorkPermitUpdateOne) Where(ps ...predicate.WorkPermit) *WorkPermitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkPermitUpdateOne) Select(field string, fields ...string) *WorkPermitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkPermit entity.
func (_u *WorkPermitUpdateOne) Save(ctx context.Context) (*WorkPermit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkPermitUpdateOne) SaveX(ctx context.Context) *WorkPermit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkPermitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkPermitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkPermitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workpermit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkPermitUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := workpermit.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkPermit.title": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkPermitUpdateOne) sqlSave(ctx context.Context) (_node *WorkPermit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workpermit.Table, workpermit.Columns, sqlgraph.NewFieldSpec(workpermit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkPermit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workpermit.FieldID)
		for _, f := range fields {
			if !workpermit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workpermit.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(workpermit.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workpermit.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(workpermit.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(workpermit.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(workpermit.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(workpermit.FieldLogo, field.TypeJSON, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(workpermit.FieldLogo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workpermit.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkPermit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workpermit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
