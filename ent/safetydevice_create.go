// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/safetydevice"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SafetyDeviceCreate is the builder for creating a SafetyDevice entity.
type SafetyDeviceCreate struct {
	config
	mutation *SafetyDeviceMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *SafetyDeviceCreate) SetTitle(v string) *SafetyDeviceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SafetyDeviceCreate) SetDescription(v string) *SafetyDeviceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SafetyDeviceCreate) SetNillableDescription(v *string) *SafetyDeviceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLogo sets the "logo" field.
func (_c *SafetyDeviceCreate) SetLogo(v map[string]string) *SafetyDeviceCreate {
	_c.mutation.SetLogo(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SafetyDeviceCreate) SetCreatedAt(v time.Time) *SafetyDeviceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SafetyDeviceCreate) SetNillableCreatedAt(v *time.Time) *SafetyDeviceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SafetyDeviceCreate) SetUpdatedAt(v time.Time) *SafetyDeviceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SafetyDeviceCreate) SetNillableUpdatedAt(v *time.Time) *SafetyDeviceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SafetyDeviceMutation object of the builder.
func (_c *SafetyDeviceCreate) Mutation() *SafetyDeviceMutation {
	return _c.mutation
}

// Save creates the SafetyDevice in the database.
func (_c *SafetyDeviceCreate) Save(ctx context.Context) (*SafetyDevice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SafetyDeviceCreate) SaveX(ctx context.Context) *SafetyDevice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SafetyDeviceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SafetyDeviceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SafetyDeviceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := safetydevice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := safetydevice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SafetyDeviceCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SafetyDevice.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := safetydevice.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "SafetyDevice.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SafetyDevice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SafetyDevice.updated_at"`)}
	}
	return nil
}

func (_c *SafetyDeviceCreate) sqlSave(ctx context.Context) (*SafetyDevice, error) {
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

func (_c *SafetyDeviceCreate) createSpec() (*SafetyDevice, *sqlgraph.CreateSpec) {
	var (
		_node = &SafetyDevice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(safetydevice.Table, sqlgraph.NewFieldSpec(safetydevice.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(safetydevice.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(safetydevice.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Logo(); ok {
		_spec.SetField(safetydevice.FieldLogo, field.TypeJSON, value)
		_node.Logo = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(safetydevice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(safetydevice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SafetyDeviceCreateBulk is the builder for creating many SafetyDevice entities in bulk.
type SafetyDeviceCreateBulk struct {
	config
	err      error
	builders []*SafetyDeviceCreate
}

// Save creates the SafetyDevice entities in the database.
func (_c *SafetyDeviceCreateBulk) Save(ctx context.Context) ([]*SafetyDevice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SafetyDevice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SafetyDeviceMutation)
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
func (_c *SafetyDeviceCreateBulk) SaveX(ctx context.Context) []*SafetyDevice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SafetyDeviceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SafetyDeviceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
