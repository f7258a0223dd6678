// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/riskanalysis"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RiskAnalysisCreate is the builder for creating a RiskAnalysis entity.
type RiskAnalysisCreate struct {
	config
	mutation *RiskAnalysisMutation
	hooks    []Hook
}

// SetActivity sets the "activity" field.
func (_c *RiskAnalysisCreate) SetActivity(v string) *RiskAnalysisCreate {
	_c.mutation.SetActivity(v)
	return _c
}

// SetMeasures sets the "measures" field.
func (_c *RiskAnalysisCreate) SetMeasures(v string) *RiskAnalysisCreate {
	_c.mutation.SetMeasures(v)
	return _c
}

// SetNillableMeasures sets the "measures" field if the given value is not nil.
func (_c *RiskAnalysisCreate) SetNillableMeasures(v *string) *RiskAnalysisCreate {
	if v != nil {
		_c.SetMeasures(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *RiskAnalysisCreate) SetCompanyID(v int64) *RiskAnalysisCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *RiskAnalysisCreate) SetNillableCompanyID(v *int64) *RiskAnalysisCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RiskAnalysisCreate) SetStatus(v riskanalysis.Status) *RiskAnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RiskAnalysisCreate) SetNillableStatus(v *riskanalysis.Status) *RiskAnalysisCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RiskAnalysisCreate) SetCreatedAt(v time.Time) *RiskAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RiskAnalysisCreate) SetNillableCreatedAt(v *time.Time) *RiskAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RiskAnalysisCreate) SetUpdatedAt(v time.Time) *RiskAnalysisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RiskAnalysisCreate) SetNillableUpdatedAt(v *time.Time) *RiskAnalysisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the RiskAnalysisMutation object of the builder.
func (_c *RiskAnalysisCreate) Mutation() *RiskAnalysisMutation {
	return _c.mutation
}

// Save creates the RiskAnalysis in the database.
func (_c *RiskAnalysisCreate) Save(ctx context.Context) (*RiskAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RiskAnalysisCreate) SaveX(ctx context.Context) *RiskAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RiskAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := riskanalysis.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := riskanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := riskanalysis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RiskAnalysisCreate) check() error {
	if _, ok := _c.mutation.Activity(); !ok {
		return &ValidationError{Name: "activity", err: errors.New(`ent: missing required field "RiskAnalysis.activity"`)}
	}
	if v, ok := _c.mutation.Activity(); ok {
		if err := riskanalysis.ActivityValidator(v); err != nil {
			return &ValidationError{Name: "activity", err: fmt.Errorf(`ent: validator failed for field "RiskAnalysis.activity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RiskAnalysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := riskanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RiskAnalysis.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RiskAnalysis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RiskAnalysis.updated_at"`)}
	}
	return nil
}

func (_c *RiskAnalysisCreate) sqlSave(ctx context.Context) (*RiskAnalysis, error) {
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

func (_c *RiskAnalysisCreate) createSpec() (*RiskAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &RiskAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(riskanalysis.Table, sqlgraph.NewFieldSpec(riskanalysis.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Activity(); ok {
		_spec.SetField(riskanalysis.FieldActivity, field.TypeString, value)
		_node.Activity = value
	}
	if value, ok := _c.mutation.Measures(); ok {
		_spec.SetField(riskanalysis.FieldMeasures, field.TypeString, value)
		_node.Measures = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(riskanalysis.FieldCompanyID, field.TypeInt64, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(riskanalysis.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(riskanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(riskanalysis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RiskAnalysisCreateBulk is the builder for creating many RiskAnalysis entities in bulk.
type RiskAnalysisCreateBulk struct {
	config
	err      error
	builders []*RiskAnalysisCreate
}

// Save creates the RiskAnalysis entities in the database.
func (_c *RiskAnalysisCreateBulk) Save(ctx context.Context) ([]*RiskAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RiskAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RiskAnalysisMutation)
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
func (_c *RiskAnalysisCreateBulk) SaveX(ctx context.Context) []*RiskAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
