// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/workpermit"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// WorkPermitCreate is the builder for creating a WorkPermit entity.
type WorkPermitCreate struct {
	config
	mutation *WorkPermitMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *WorkPermitCreate) SetTitle(v string) *WorkPermitCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *WorkPermitCreate) SetDescription(v string) *WorkPermitCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *WorkPermitCreate) SetNillableDescription(v *string) *WorkPermitCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *WorkPermitCreate) SetValidUntil(v time.Time) *WorkPermitCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_c *WorkPermitCreate) SetNillableValidUntil(v *time.Time) *WorkPermitCreate {
	if v != nil {
		_c.SetValidUntil(*v)
	}
	return _c
}

// SetLogo sets the "logo" field.
func (_c *WorkPermitCreate) SetLogo(v map[string]string) *WorkPermitCreate {
	_c.mutation.SetLogo(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkPermitCreate) SetCreatedAt(v time.Time) *WorkPermitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkPermitCreate) SetNillableCreatedAt(v *time.Time) *WorkPermitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkPermitCreate) SetUpdatedAt(v time.Time) *WorkPermitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkPermitCreate) SetNillableUpdatedAt(v *time.Time) *WorkPermitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the WorkPermitMutation object of the builder.
func (_c *WorkPermitCreate) Mutation() *WorkPermitMutation {
	return _c.mutation
}

// Save creates the WorkPermit in the database.
func (_c *WorkPermitCreate) Save(ctx context.Context) (*WorkPermit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkPermitCreate) SaveX(ctx context.Context) *WorkPermit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkPermitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkPermitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkPermitCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workpermit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workpermit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkPermitCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "WorkPermit.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := workpermit.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkPermit.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkPermit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkPermit.updated_at"`)}
	}
	return nil
}

func (_c *WorkPermitCreate) sqlSave(ctx context.Context) (*WorkPermit, error) {
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

func (_c *WorkPermitCreate) createSpec() (*WorkPermit, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkPermit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workpermit.Table, sqlgraph.NewFieldSpec(workpermit.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(workpermit.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(workpermit.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(workpermit.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = &value
	}
	if value, ok := _c.mutation.Logo(); ok {
		_spec.SetField(workpermit.FieldLogo, field.TypeJSON, value)
		_node.Logo = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workpermit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workpermit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkPermitCreateBulk is the builder for creating many WorkPermit entities in bulk.
type WorkPermitCreateBulk struct {
	config
	err      error
	builders []*WorkPermitCreate
}

// Save creates the WorkPermit entities in the database.
func (_c *WorkPermitCreateBulk) Save(ctx context.Context) ([]*WorkPermit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkPermit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkPermitMutation)
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
func (_c *WorkPermitCreateBulk) SaveX(ctx context.Context) []*WorkPermit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkPermitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkPermitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
