// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/safetyaudit"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SafetyAuditUpdate is the builder for updating SafetyAudit entities.
type SafetyAuditUpdate struct {
	config
	hooks    []Hook
	mutation *SafetyAuditMutation
}

// Where appends a list predicates to the SafetyAuditUpdate builder.
func (_u *SafetyAuditUpdate) Where(ps ...predicate.SafetyAudit) *SafetyAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SafetyAuditUpdate) SetTitle(v string) *SafetyAuditUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SafetyAuditUpdate) SetNillableTitle(v *string) *SafetyAuditUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SafetyAuditUpdate) SetDescription(v string) *SafetyAuditUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SafetyAuditUpdate) SetNillableDescription(v *string) *SafetyAuditUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SafetyAuditUpdate) ClearDescription() *SafetyAuditUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLogo sets the "logo" field.
func (_u *SafetyAuditUpdate) SetLogo(v map[string]string) *SafetyAuditUpdate {
	_u.mutation.SetLogo(v)
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *SafetyAuditUpdate) ClearLogo() *SafetyAuditUpdate {
	_u.mutation.ClearLogo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SafetyAuditUpdate) SetUpdatedAt(v time.Time) *SafetyAuditUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SafetyAuditMutation object of the builder.
func (_u *SafetyAuditUpdate) Mutation() *SafetyAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SafetyAuditUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SafetyAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SafetyAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SafetyAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SafetyAuditUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := safetyaudit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SafetyAuditUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := safetyaudit.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SafetyAudit.title": %w`, err)}
		}
	}
	return nil
}

func (_u *SafetyAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(safetyaudit.Table, safetyaudit.Columns, sqlgraph.NewFieldSpec(safetyaudit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(safetyaudit.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(safetyaudit.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(safetyaudit.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(safetyaudit.FieldLogo, field.TypeJSON, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(safetyaudit.FieldLogo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(safetyaudit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{safetyaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SafetyAuditUpdateOne is the builder for updating a single SafetyAudit entity.
type SafetyAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SafetyAuditMutation
}

// SetTitle sets the "title" field.
func (_u *SafetyAuditUpdateOne) SetTitle(v string) *SafetyAuditUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SafetyAuditUpdateOne) SetNillableTitle(v *string) *SafetyAuditUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SafetyAuditUpdateOne) SetDescription(v string) *SafetyAuditUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SafetyAuditUpdateOne) SetNillableDescription(v *string) *SafetyAuditUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SafetyAuditUpdateOne) ClearDescription() *SafetyAuditUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLogo sets the "logo" field.
func (_u *SafetyAuditUpdateOne) SetLogo(v map[string]string) *SafetyAuditUpdateOne {
	_u.mutation.SetLogo(v)
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *SafetyAuditUpdateOne) ClearLogo() *SafetyAuditUpdateOne {
	_u.mutation.ClearLogo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SafetyAuditUpdateOne) SetUpdatedAt(v time.Time) *SafetyAuditUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SafetyAuditMutation object of the builder.
func (_u *SafetyAuditUpdateOne) Mutation() *SafetyAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the SafetyAuditUpdate builder.
func (_u *SafetyAuditUpdateOne) Where(ps ...predicate.SafetyAudit) *SafetyAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SafetyAuditUpdateOne) Select(field string, fields ...string) *SafetyAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SafetyAudit entity.
func (_u *SafetyAuditUpdateOne) Save(ctx context.Context) (*SafetyAudit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SafetyAuditUpdateOne) SaveX(ctx context.Context) *SafetyAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SafetyAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SafetyAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SafetyAuditUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := safetyaudit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SafetyAuditUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := safetyaudit.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SafetyAudit.title": %w`, err)}
		}
	}
	return nil
}

func (_u *SafetyAuditUpdateOne) sqlSave(ctx context.Context) (_node *SafetyAudit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(safetyaudit.Table, safetyaudit.Columns, sqlgraph.NewFieldSpec(safetyaudit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SafetyAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, safetyaudit.FieldID)
		for _, f := range fields {
			if !safetyaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != safetyaudit.FieldID {
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
		_spec.SetField(safetyaudit.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(safetyaudit.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(safetyaudit.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(safetyaudit.FieldLogo, field.TypeJSON, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(safetyaudit.FieldLogo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(safetyaudit.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SafetyAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{safetyaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
