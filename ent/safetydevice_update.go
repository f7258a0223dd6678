// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/safetydevice"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SafetyDeviceUpdate is the builder for updating SafetyDevice entities.
type SafetyDeviceUpdate struct {
	config
	hooks    []Hook
	mutation *SafetyDeviceMutation
}

// Where appends a list predicates to the SafetyDeviceUpdate builder.
func (_u *SafetyDeviceUpdate) Where(ps ...predicate.SafetyDevice) *SafetyDeviceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SafetyDeviceUpdate) SetTitle(v string) *SafetyDeviceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SafetyDeviceUpdate) SetNillableTitle(v *string) *SafetyDeviceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SafetyDeviceUpdate) SetDescription(v string) *SafetyDeviceUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SafetyDeviceUpdate) SetNillableDescription(v *string) *SafetyDeviceUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SafetyDeviceUpdate) ClearDescription() *SafetyDeviceUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLogo sets the "logo" field.
func (_u *SafetyDeviceUpdate) SetLogo(v map[string]string) *SafetyDeviceUpdate {
	_u.mutation.SetLogo(v)
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *SafetyDeviceUpdate) ClearLogo() *SafetyDeviceUpdate {
	_u.mutation.ClearLogo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SafetyDeviceUpdate) SetUpdatedAt(v time.Time) *SafetyDeviceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SafetyDeviceMutation object of the builder.
func (_u *SafetyDeviceUpdate) Mutation() *SafetyDeviceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SafetyDeviceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SafetyDeviceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SafetyDeviceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SafetyDeviceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SafetyDeviceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := safetydevice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SafetyDeviceUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := safetydevice.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SafetyDevice.title": %w`, err)}
		}
	}
	return nil
}

func (_u *SafetyDeviceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(safetydevice.Table, safetydevice.Columns, sqlgraph.NewFieldSpec(safetydevice.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(safetydevice.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(safetydevice.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(safetydevice.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(safetydevice.FieldLogo, field.TypeJSON, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(safetydevice.FieldLogo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(safetydevice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{safetydevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SafetyDeviceUpdateOne is the builder for updating a single SafetyDevice entity.
type SafetyDeviceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SafetyDeviceMutation
}

// SetTitle sets the "title" field.
func (_u *SafetyDeviceUpdateOne) SetTitle(v string) *SafetyDeviceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SafetyDeviceUpdateOne) SetNillableTitle(v *string) *SafetyDeviceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SafetyDeviceUpdateOne) SetDescription(v string) *SafetyDeviceUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SafetyDeviceUpdateOne) SetNillableDescription(v *string) *SafetyDeviceUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SafetyDeviceUpdateOne) ClearDescription() *SafetyDeviceUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLogo sets the "logo" field.
func (_u *SafetyDeviceUpdateOne) SetLogo(v map[string]string) *SafetyDeviceUpdateOne {
	_u.mutation.SetLogo(v)
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *SafetyDeviceUpdateOne) ClearLogo() *SafetyDeviceUpdateOne {
	_u.mutation.ClearLogo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SafetyDeviceUpdateOne) SetUpdatedAt(v time.Time) *SafetyDeviceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SafetyDeviceMutation object of the builder.
func (_u *SafetyDeviceUpdateOne) Mutation() *SafetyDeviceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SafetyDeviceUpdate builder.
func (_u *SafetyDeviceUpdateOne) Where(ps ...predicate.SafetyDevice) *SafetyDeviceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SafetyDeviceUpdateOne) Select(field string, fields ...string) *SafetyDeviceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SafetyDevice entity.
func (_u *SafetyDeviceUpdateOne) Save(ctx context.Context) (*SafetyDevice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SafetyDeviceUpdateOne) SaveX(ctx context.Context) *SafetyDevice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SafetyDeviceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SafetyDeviceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SafetyDeviceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := safetydevice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SafetyDeviceUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := safetydevice.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SafetyDevice.title": %w`, err)}
		}
	}
	return nil
}

func (_u *SafetyDeviceUpdateOne) sqlSave(ctx context.Context) (_node *SafetyDevice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(safetydevice.Table, safetydevice.Columns, sqlgraph.NewFieldSpec(safetydevice.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SafetyDevice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, safetydevice.FieldID)
		for _, f := range fields {
			if !safetydevice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != safetydevice.FieldID {
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
		_spec.SetField(safetydevice.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(safetydevice.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(safetydevice.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(safetydevice.FieldLogo, field.TypeJSON, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(safetydevice.FieldLogo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(safetydevice.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SafetyDevice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{safetydevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
