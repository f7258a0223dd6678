// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/workorder"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// WorkOrderCreate is the builder for creating a WorkOrder entity.
type WorkOrderCreate struct {
	config
	mutation *WorkOrderMutation
	hooks    []Hook
}

// SetReference sets the "reference" field.
func (_c *WorkOrderCreate) SetReference(v string) *WorkOrderCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetSiteID sets the "site_id" field.
func (_c *WorkOrderCreate) SetSiteID(v int64) *WorkOrderCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_c *WorkOrderCreate) SetNillableSiteID(v *int64) *WorkOrderCreate {
	if v != nil {
		_c.SetSiteID(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *WorkOrderCreate) SetCompanyID(v int64) *WorkOrderCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *WorkOrderCreate) SetNillableCompanyID(v *int64) *WorkOrderCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetWorkDate sets the "work_date" field.
func (_c *WorkOrderCreate) SetWorkDate(v time.Time) *WorkOrderCreate {
	_c.mutation.SetWorkDate(v)
	return _c
}

// SetNillableWorkDate sets the "work_date" field if the given value is not nil.
func (_c *WorkOrderCreate) SetNillableWorkDate(v *time.Time) *WorkOrderCreate {
	if v != nil {
		_c.SetWorkDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkOrderCreate) SetStatus(v workorder.Status) *WorkOrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkOrderCreate) SetNillableStatus(v *workorder.Status) *WorkOrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkOrderCreate) SetCreatedAt(v time.Time) *WorkOrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkOrderCreate) SetNillableCreatedAt(v *time.Time) *WorkOrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkOrderCreate) SetUpdatedAt(v time.Time) *WorkOrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkOrderCreate) SetNillableUpdatedAt(v *time.Time) *WorkOrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the WorkOrderMutation object of the builder.
func (_c *WorkOrderCreate) Mutation() *WorkOrderMutation {
	return _c.mutation
}

// Save creates the WorkOrder in the database.
func (_c *WorkOrderCreate) Save(ctx context.Context) (*WorkOrder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkOrderCreate) SaveX(ctx context.Context) *WorkOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkOrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkOrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkOrderCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workorder.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workorder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workorder.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkOrderCreate) check() error {
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`ent: missing required field "WorkOrder.reference"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := workorder.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "WorkOrder.reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkOrder.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkOrder.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkOrder.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkOrder.updated_at"`)}
	}
	return nil
}

func (_c *WorkOrderCreate) sqlSave(ctx context.Context) (*WorkOrder, error) {
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

func (_c *WorkOrderCreate) createSpec() (*WorkOrder, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkOrder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workorder.Table, sqlgraph.NewFieldSpec(workorder.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(workorder.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.SiteID(); ok {
		_spec.SetField(workorder.FieldSiteID, field.TypeInt64, value)
		_node.SiteID = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(workorder.FieldCompanyID, field.TypeInt64, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.WorkDate(); ok {
		_spec.SetField(workorder.FieldWorkDate, field.TypeTime, value)
		_node.WorkDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workorder.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workorder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workorder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkOrderCreateBulk is the builder for creating many WorkOrder entities in bulk.
type WorkOrderCreateBulk struct {
	config
	err      error
	builders []*WorkOrderCreate
}

// Save creates the WorkOrder entities in the database.
func (_c *WorkOrderCreateBulk) Save(ctx context.Context) ([]*WorkOrder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkOrder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkOrderMutation)
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
func (_c *WorkOrderCreateBulk) SaveX(ctx context.Context) []*WorkOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkOrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkOrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
