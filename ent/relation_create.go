// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/relation"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RelationCreate is the builder for creating a Relation entity.
type RelationCreate struct {
	config
	mutation *RelationMutation
	hooks    []Hook
}

// SetParentType sets the "parent_type" field.
func (_c *RelationCreate) SetParentType(v relation.ParentType) *RelationCreate {
	_c.mutation.SetParentType(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *RelationCreate) SetParentID(v int64) *RelationCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetChildType sets the "child_type" field.
func (_c *RelationCreate) SetChildType(v relation.ChildType) *RelationCreate {
	_c.mutation.SetChildType(v)
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *RelationCreate) SetChildID(v int64) *RelationCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetApplies sets the "applies" field.
func (_c *RelationCreate) SetApplies(v bool) *RelationCreate {
	_c.mutation.SetApplies(v)
	return _c
}

// SetNillableApplies sets the "applies" field if the given value is not nil.
func (_c *RelationCreate) SetNillableApplies(v *bool) *RelationCreate {
	if v != nil {
		_c.SetApplies(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RelationCreate) SetCreatedAt(v time.Time) *RelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RelationCreate) SetNillableCreatedAt(v *time.Time) *RelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RelationCreate) SetUpdatedAt(v time.Time) *RelationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RelationCreate) SetNillableUpdatedAt(v *time.Time) *RelationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the RelationMutation object of the builder.
func (_c *RelationCreate) Mutation() *RelationMutation {
	return _c.mutation
}

// Save creates the Relation in the database.
func (_c *RelationCreate) Save(ctx context.Context) (*Relation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RelationCreate) SaveX(ctx context.Context) *Relation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RelationCreate) defaults() {
	if _, ok := _c.mutation.Applies(); !ok {
		v := relation.DefaultApplies
		_c.mutation.SetApplies(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := relation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := relation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RelationCreate) check() error {
	if _, ok := _c.mutation.ParentType(); !ok {
		return &ValidationError{Name: "parent_type", err: errors.New(`ent: missing required field "Relation.parent_type"`)}
	}
	if v, ok := _c.mutation.ParentType(); ok {
		if err := relation.ParentTypeValidator(v); err != nil {
			return &ValidationError{Name: "parent_type", err: fmt.Errorf(`ent: validator failed for field "Relation.parent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "Relation.parent_id"`)}
	}
	if _, ok := _c.mutation.ChildType(); !ok {
		return &ValidationError{Name: "child_type", err: errors.New(`ent: missing required field "Relation.child_type"`)}
	}
	if v, ok := _c.mutation.ChildType(); ok {
		if err := relation.ChildTypeValidator(v); err != nil {
			return &ValidationError{Name: "child_type", err: fmt.Errorf(`ent: validator failed for field "Relation.child_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "Relation.child_id"`)}
	}
	if _, ok := _c.mutation.Applies(); !ok {
		return &ValidationError{Name: "applies", err: errors.New(`ent: missing required field "Relation.applies"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Relation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Relation.updated_at"`)}
	}
	return nil
}

func (_c *RelationCreate) sqlSave(ctx context.Context) (*Relation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RelationCreate) createSpec() (*Relation, *sqlgraph.CreateSpec) {
	var (
		_node = &Relation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(relation.Table, sqlgraph.NewFieldSpec(relation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ParentType(); ok {
		_spec.SetField(relation.FieldParentType, field.TypeEnum, value)
		_node.ParentType = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(relation.FieldParentID, field.TypeInt64, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.ChildType(); ok {
		_spec.SetField(relation.FieldChildType, field.TypeEnum, value)
		_node.ChildType = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(relation.FieldChildID, field.TypeInt64, value)
		_node.ChildID = value
	}
	if value, ok := _c.mutation.Applies(); ok {
		_spec.SetField(relation.FieldApplies, field.TypeBool, value)
		_node.Applies = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(relation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(relation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RelationCreateBulk is the builder for creating many Relation entities in bulk.
type RelationCreateBulk struct {
	config
	err      error
	builders []*RelationCreate
}

// Save creates the Relation entities in the database.
func (_c *RelationCreateBulk) Save(ctx context.Context) ([]*Relation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Relation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RelationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RelationCreateBulk) SaveX(ctx context.Context) []*Relation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
