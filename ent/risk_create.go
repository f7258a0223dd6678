// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/risk"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RiskCreate is the builder for creating a Risk entity.
type RiskCreate struct {
	config
	mutation *RiskMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *RiskCreate) SetTitle(v string) *RiskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RiskCreate) SetDescription(v string) *RiskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RiskCreate) SetNillableDescription(v *string) *RiskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *RiskCreate) SetLevel(v risk.Level) *RiskCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *RiskCreate) SetNillableLevel(v *risk.Level) *RiskCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetPermitRequired sets the "permit_required" field.
func (_c *RiskCreate) SetPermitRequired(v bool) *RiskCreate {
	_c.mutation.SetPermitRequired(v)
	return _c
}

// SetNillablePermitRequired sets the "permit_required" field if the given value is not nil.
func (_c *RiskCreate) SetNillablePermitRequired(v *bool) *RiskCreate {
	if v != nil {
		_c.SetPermitRequired(*v)
	}
	return _c
}

// SetLogo sets the "logo" field.
func (_c *RiskCreate) SetLogo(v map[string]string) *RiskCreate {
	_c.mutation.SetLogo(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RiskCreate) SetCreatedAt(v time.Time) *RiskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RiskCreate) SetNillableCreatedAt(v *time.Time) *RiskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RiskCreate) SetUpdatedAt(v time.Time) *RiskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RiskCreate) SetNillableUpdatedAt(v *time.Time) *RiskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the RiskMutation object of the builder.
func (_c *RiskCreate) Mutation() *RiskMutation {
	return _c.mutation
}

// Save creates the Risk in the database.
func (_c *RiskCreate) Save(ctx context.Context) (*Risk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RiskCreate) SaveX(ctx context.Context) *Risk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RiskCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := risk.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.PermitRequired(); !ok {
		v := risk.DefaultPermitRequired
		_c.mutation.SetPermitRequired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := risk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := risk.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RiskCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Risk.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := risk.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Risk.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Risk.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := risk.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Risk.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PermitRequired(); !ok {
		return &ValidationError{Name: "permit_required", err: errors.New(`ent: missing required field "Risk.permit_required"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Risk.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Risk.updated_at"`)}
	}
	return nil
}

func (_c *RiskCreate) sqlSave(ctx context.Context) (*Risk, error) {
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

func (_c *RiskCreate) createSpec() (*Risk, *sqlgraph.CreateSpec) {
	var (
		_node = &Risk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(risk.Table, sqlgraph.NewFieldSpec(risk.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(risk.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(risk.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(risk.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.PermitRequired(); ok {
		_spec.SetField(risk.FieldPermitRequired, field.TypeBool, value)
		_node.PermitRequired = value
	}
	if value, ok := _c.mutation.Logo(); ok {
		_spec.SetField(risk.FieldLogo, field.TypeJSON, value)
		_node.Logo = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(risk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(risk.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RiskCreateBulk is the builder for creating many Risk entities in bulk.
type RiskCreateBulk struct {
	config
	err      error
	builders []*RiskCreate
}

// Save creates the Risk entities in the database.
func (_c *RiskCreateBulk) Save(ctx context.Context) ([]*Risk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Risk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RiskMutation)
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
func (_c *RiskCreateBulk) SaveX(ctx context.Context) []*Risk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
