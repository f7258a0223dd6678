// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/relation"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RelationUpdate is the builder for updating Relation entities.
type RelationUpdate struct {
	config
	hooks    []Hook
	mutation *RelationMutation
}

// Where appends a list predicates to the RelationUpdate builder.
func (_u *RelationUpdate) Where(ps ...predicate.Relation) *RelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentType sets the "parent_type" field.
func (_u *RelationUpdate) SetParentType(v relation.ParentType) *RelationUpdate {
	_u.mutation.SetParentType(v)
	return _u
}

// SetNillableParentType sets the "parent_type" field if the given value is not nil.
func (_u *RelationUpdate) SetNillableParentType(v *relation.ParentType) *RelationUpdate {
	if v != nil {
		_u.SetParentType(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *RelationUpdate) SetParentID(v int64) *RelationUpdate {
	_u.mutation.ResetParentID()
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *RelationUpdate) SetNillableParentID(v *int64) *RelationUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// AddParentID adds value to the "parent_id" field.
func (_u *RelationUpdate) AddParentID(v int64) *RelationUpdate {
	_u.mutation.AddParentID(v)
	return _u
}

// SetChildType sets the "child_type" field.
func (_u *RelationUpdate) SetChildType(v relation.ChildType) *RelationUpdate {
	_u.mutation.SetChildType(v)
	return _u
}

// SetNillableChildType sets the "child_type" field if the given value is not nil.
func (_u *RelationUpdate) SetNillableChildType(v *relation.ChildType) *RelationUpdate {
	if v != nil {
		_u.SetChildType(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *RelationUpdate) SetChildID(v int64) *RelationUpdate {
	_u.mutation.ResetChildID()
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *RelationUpdate) SetNillableChildID(v *int64) *RelationUpdate {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// AddChildID adds value to the "child_id" field.
func (_u *RelationUpdate) AddChildID(v int64) *RelationUpdate {
	_u.mutation.AddChildID(v)
	return _u
}

// SetApplies sets the "applies" field.
func (_u *RelationUpdate) SetApplies(v bool) *RelationUpdate {
	_u.mutation.SetApplies(v)
	return _u
}

// SetNillableApplies sets the "applies" field if the given value is not nil.
func (_u *RelationUpdate) SetNillableApplies(v *bool) *RelationUpdate {
	if v != nil {
		_u.SetApplies(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RelationUpdate) SetUpdatedAt(v time.Time) *RelationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RelationMutation object of the builder.
func (_u *RelationUpdate) Mutation() *RelationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RelationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RelationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := relation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RelationUpdate) check() error {
	if v, ok := _u.mutation.ParentType(); ok {
		if err := relation.ParentTypeValidator(v); err != nil {
			return &ValidationError{Name: "parent_type", err: fmt.Errorf(`ent: validator failed for field "Relation.parent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChildType(); ok {
		if err := relation.ChildTypeValidator(v); err != nil {
			return &ValidationError{Name: "child_type", err: fmt.Errorf(`ent: validator failed for field "Relation.child_type": %w`, err)}
		}
	}
	return nil
}

func (_u *RelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(relation.Table, relation.Columns, sqlgraph.NewFieldSpec(relation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentType(); ok {
		_spec.SetField(relation.FieldParentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(relation.FieldParentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedParentID(); ok {
		_spec.AddField(relation.FieldParentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChildType(); ok {
		_spec.SetField(relation.FieldChildType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(relation.FieldChildID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChildID(); ok {
		_spec.AddField(relation.FieldChildID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Applies(); ok {
		_spec.SetField(relation.FieldApplies, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(relation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RelationUpdateOne is the builder for updating a single Relation entity.
type RelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RelationMutation
}

// SetParentType sets the "parent_type" field.
func (_u *RelationUpdateOne) SetParentType(v relation.ParentType) *RelationUpdateOne {
	_u.mutation.SetParentType(v)
	return _u
}

// SetNillableParentType sets the "parent_type" field if the given value is not nil.
func (_u *RelationUpdateOne) SetNillableParentType(v *relation.ParentType) *RelationUpdateOne {
	if v != nil {
		_u.SetParentType(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *RelationUpdateOne) SetParentID(v int64) *RelationUpdateOne {
	_u.mutation.ResetParentID()
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *RelationUpdateOne) SetNillableParentID(v *int64) *RelationUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// AddParentID adds value to the "parent_id" field.
func (_u *RelationUpdateOne) AddParentID(v int64) *RelationUpdateOne {
	_u.mutation.AddParentID(v)
	return _u
}

// SetChildType sets the "child_type" field.
func (_u *RelationUpdateOne) SetChildType(v relation.ChildType) *RelationUpdateOne {
	_u.mutation.SetChildType(v)
	return _u
}

// SetNillableChildType sets the "child_type" field if the given value is not nil.
func (_u *RelationUpdateOne) SetNillableChildType(v *relation.ChildType) *RelationUpdateOne {
	if v != nil {
		_u.SetChildType(*v)
	}
	return _u
}

// SetChildID sets the "child_id" field.
func (_u *RelationUpdateOne) SetChildID(v int64) *RelationUpdateOne {
	_u.mutation.ResetChildID()
	_u.mutation.SetChildID(v)
	return _u
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (_u *RelationUpdateOne) SetNillableChildID(v *int64) *RelationUpdateOne {
	if v != nil {
		_u.SetChildID(*v)
	}
	return _u
}

// AddChildID adds value to the "child_id" field.
func (_u *RelationUpdateOne) AddChildID(v int64) *RelationUpdateOne {
	_u.mutation.AddChildID(v)
	return _u
}

// SetApplies sets the "applies" field.
func (_u *RelationUpdateOne) SetApplies(v bool) *RelationUpdateOne {
	_u.mutation.SetApplies(v)
	return _u
}

// SetNillableApplies sets the "applies" field if the given value is not nil.
func (_u *RelationUpdateOne) SetNillableApplies(v *bool) *RelationUpdateOne {
	if v != nil {
		_u.SetApplies(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RelationUpdateOne) SetUpdatedAt(v time.Time) *RelationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RelationMutation object of the builder.
func (_u *RelationUpdateOne) Mutation() *RelationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RelationUpdate builder.
func (_u *RelationUpdateOne) Where(ps ...predicate.Relation) *RelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RelationUpdateOne) Select(field string, fields ...string) *RelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Relation entity.
func (_u *RelationUpdateOne) Save(ctx context.Context) (*Relation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RelationUpdateOne) SaveX(ctx context.Context) *Relation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RelationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := relation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RelationUpdateOne) check() error {
	if v, ok := _u.mutation.ParentType(); ok {
		if err := relation.ParentTypeValidator(v); err != nil {
			return &ValidationError{Name: "parent_type", err: fmt.Errorf(`ent: validator failed for field "Relation.parent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChildType(); ok {
		if err := relation.ChildTypeValidator(v); err != nil {
			return &ValidationError{Name: "child_type", err: fmt.Errorf(`ent: validator failed for field "Relation.child_type": %w`, err)}
		}
	}
	return nil
}

func (_u *RelationUpdateOne) sqlSave(ctx context.Context) (_node *Relation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(relation.Table, relation.Columns, sqlgraph.NewFieldSpec(relation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Relation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, relation.FieldID)
		for _, f := range fields {
			if !relation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != relation.FieldID {
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
	if value, ok := _u.mutation.ParentType(); ok {
		_spec.SetField(relation.FieldParentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(relation.FieldParentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedParentID(); ok {
		_spec.AddField(relation.FieldParentID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChildType(); ok {
		_spec.SetField(relation.FieldChildType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChildID(); ok {
		_spec.SetField(relation.FieldChildID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChildID(); ok {
		_spec.AddField(relation.FieldChildID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Applies(); ok {
		_spec.SetField(relation.FieldApplies, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(relation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Relation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
