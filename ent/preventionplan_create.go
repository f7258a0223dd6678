// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/preventionplan"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PreventionPlanCreate is the builder for creating a PreventionPlan entity.
type PreventionPlanCreate struct {
	config
	mutation *PreventionPlanMutation
	hooks    []Hook
}

// SetReference sets the "reference" field.
func (_c *PreventionPlanCreate) SetReference(v string) *PreventionPlanCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetSiteID sets the "site_id" field.
func (_c *PreventionPlanCreate) SetSiteID(v int64) *PreventionPlanCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_c *PreventionPlanCreate) SetNillableSiteID(v *int64) *PreventionPlanCreate {
	if v != nil {
		_c.SetSiteID(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *PreventionPlanCreate) SetCompanyID(v int64) *PreventionPlanCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *PreventionPlanCreate) SetNillableCompanyID(v *int64) *PreventionPlanCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *PreventionPlanCreate) SetStartDate(v time.Time) *PreventionPlanCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *PreventionPlanCreate) SetNillableStartDate(v *time.Time) *PreventionPlanCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *PreventionPlanCreate) SetEndDate(v time.Time) *PreventionPlanCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *PreventionPlanCreate) SetNillableEndDate(v *time.Time) *PreventionPlanCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetIcpDate sets the "icp_date" field.
func (_c *PreventionPlanCreate) SetIcpDate(v time.Time) *PreventionPlanCreate {
	_c.mutation.SetIcpDate(v)
	return _c
}

// SetNillableIcpDate sets the "icp_date" field if the given value is not nil.
func (_c *PreventionPlanCreate) SetNillableIcpDate(v *time.Time) *PreventionPlanCreate {
	if v != nil {
		_c.SetIcpDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PreventionPlanCreate) SetStatus(v preventionplan.Status) *PreventionPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PreventionPlanCreate) SetNillableStatus(v *preventionplan.Status) *PreventionPlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PreventionPlanCreate) SetCreatedAt(v time.Time) *PreventionPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PreventionPlanCreate) SetNillableCreatedAt(v *time.Time) *PreventionPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PreventionPlanCreate) SetUpdatedAt(v time.Time) *PreventionPlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PreventionPlanCreate) SetNillableUpdatedAt(v *time.Time) *PreventionPlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PreventionPlanMutation object of the builder.
func (_c *PreventionPlanCreate) Mutation() *PreventionPlanMutation {
	return _c.mutation
}

// Save creates the PreventionPlan in the database.
func (_c *PreventionPlanCreate) Save(ctx context.Context) (*PreventionPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PreventionPlanCreate) SaveX(ctx context.Context) *PreventionPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreventionPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreventionPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PreventionPlanCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := preventionplan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := preventionplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := preventionplan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PreventionPlanCreate) check() error {
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`ent: missing required field "PreventionPlan.reference"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := preventionplan.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "PreventionPlan.reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PreventionPlan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := preventionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PreventionPlan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PreventionPlan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PreventionPlan.updated_at"`)}
	}
	return nil
}

func (_c *PreventionPlanCreate) sqlSave(ctx context.Context) (*PreventionPlan, error) {
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

func (_c *PreventionPlanCreate) createSpec() (*PreventionPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &PreventionPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preventionplan.Table, sqlgraph.NewFieldSpec(preventionplan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(preventionplan.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.SiteID(); ok {
		_spec.SetField(preventionplan.FieldSiteID, field.TypeInt64, value)
		_node.SiteID = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(preventionplan.FieldCompanyID, field.TypeInt64, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(preventionplan.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(preventionplan.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.IcpDate(); ok {
		_spec.SetField(preventionplan.FieldIcpDate, field.TypeTime, value)
		_node.IcpDate = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(preventionplan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(preventionplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(preventionplan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PreventionPlanCreateBulk is the builder for creating many PreventionPlan entities in bulk.
type PreventionPlanCreateBulk struct {
	config
	err      error
	builders []*PreventionPlanCreate
}

// Save creates the PreventionPlan entities in the database.
func (_c *PreventionPlanCreateBulk) Save(ctx context.Context) ([]*PreventionPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PreventionPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PreventionPlanMutation)
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
func (_c *PreventionPlanCreateBulk) SaveX(ctx context.Context) []*PreventionPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreventionPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreventionPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
