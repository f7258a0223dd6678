// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/risk"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RiskUpdate is the builder for updating Risk entities.
type RiskUpdate struct {
	config
	hooks    []Hook
	mutation *RiskMutation
}

// Where appends a list predicates to the RiskUpdate builder.
func (_u *RiskUpdate) Where(ps ...predicate.Risk) *RiskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RiskUpdate) SetTitle(v string) *RiskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RiskUpdate) SetNillableTitle(v *string) *RiskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RiskUpdate) SetDescription(v string) *RiskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RiskUpdate) SetNillableDescription(v *string) *RiskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RiskUpdate) ClearDescription() *RiskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLevel sets the "level" field.
func (_u *RiskUpdate) SetLevel(v risk.Level) *RiskUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *RiskUpdate) SetNillableLevel(v *risk.Level) *RiskUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPermitRequired sets the "permit_required" field.
func (_u *RiskUpdate) SetPermitRequired(v bool) *RiskUpdate {
	_u.mutation.SetPermitRequired(v)
	return _u
}

// SetNillablePermitRequired sets the "permit_required" field if the given value is not nil.
func (_u *RiskUpdate) SetNillablePermitRequired(v *bool) *RiskUpdate {
	if v != nil {
		_u.SetPermitRequired(*v)
	}
	return _u
}

// SetLogo sets the "logo" field.
func (_u *RiskUpdate) SetLogo(v map[string]string) *RiskUpdate {
	_u.mutation.SetLogo(v)
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *RiskUpdate) ClearLogo() *RiskUpdate {
	_u.mutation.ClearLogo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RiskUpdate) SetUpdatedAt(v time.Time) *RiskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RiskMutation object of the builder.
func (_u *RiskUpdate) Mutation() *RiskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RiskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RiskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RiskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := risk.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := risk.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Risk.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := risk.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Risk.level": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(risk.Table, risk.Columns, sqlgraph.NewFieldSpec(risk.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(risk.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(risk.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(risk.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(risk.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PermitRequired(); ok {
		_spec.SetField(risk.FieldPermitRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(risk.FieldLogo, field.TypeJSON, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(risk.FieldLogo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(risk.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{risk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RiskUpdateOne is the builder for updating a single Risk entity.
type RiskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RiskMutation
}

// SetTitle sets the "title" field.
func (_u *RiskUpdateOne) SetTitle(v string) *RiskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RiskUpdateOne) SetNillableTitle(v *string) *RiskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RiskUpdateOne) SetDescription(v string) *RiskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RiskUpdateOne) SetNillableDescription(v *string) *RiskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RiskUpdateOne) ClearDescription() *RiskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLevel sets the "level" field.
func (_u *RiskUpdateOne) SetLevel(v risk.Level) *RiskUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *RiskUpdateOne) SetNillableLevel(v *risk.Level) *RiskUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPermitRequired sets the "permit_required" field.
func (_u *RiskUpdateOne) SetPermitRequired(v bool) *RiskUpdateOne {
	_u.mutation.SetPermitRequired(v)
	return _u
}

// SetNillablePermitRequired sets the "permit_required" field if the given value is not nil.
func (_u *RiskUpdateOne) SetNillablePermitRequired(v *bool) *RiskUpdateOne {
	if v != nil {
		_u.SetPermitRequired(*v)
	}
	return _u
}

// SetLogo sets the "logo" field.
func (_u *RiskUpdateOne) SetLogo(v map[string]string) *RiskUpdateOne {
	_u.mutation.SetLogo(v)
	return _u
}

// ClearLogo clears the value of the "logo" field.
func (_u *RiskUpdateOne) ClearLogo() *RiskUpdateOne {
	_u.mutation.ClearLogo()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RiskUpdateOne) SetUpdatedAt(v time.Time) *RiskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RiskMutation object of the builder.
func (_u *RiskUpdateOne) Mutation() *RiskMutation {
	return _u.mutation
}

// Where appends a list predicates to the RiskUpdate builder.
func (_u *RiskUpdateOne) Where(ps ...predicate.Risk) *RiskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RiskUpdateOne) Select(field string, fields ...string) *RiskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Risk entity.
func (_u *RiskUpdateOne) Save(ctx context.Context) (*Risk, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskUpdateOne) SaveX(ctx context.Context) *Risk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RiskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RiskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := risk.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := risk.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Risk.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := risk.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Risk.level": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskUpdateOne) sqlSave(ctx context.Context) (_node *Risk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(risk.Table, risk.Columns, sqlgraph.NewFieldSpec(risk.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Risk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, risk.FieldID)
		for _, f := range fields {
			if !risk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != risk.FieldID {
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
		_spec.SetField(risk.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(risk.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(risk.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(risk.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PermitRequired(); ok {
		_spec.SetField(risk.FieldPermitRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Logo(); ok {
		_spec.SetField(risk.FieldLogo, field.TypeJSON, value)
	}
	if _u.mutation.LogoCleared() {
		_spec.ClearField(risk.FieldLogo, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(risk.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Risk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{risk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
