// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"previplan/ent/predicate"
	"previplan/ent/preventionplan"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PreventionPlanDelete is the builder for deleting a PreventionPlan entity.
type PreventionPlanDelete struct {
	config
	hooks    []Hook
	mutation *PreventionPlanMutation
}

// Where appends a list predicates to the PreventionPlanDelete builder.
func (_d *PreventionPlanDelete) Where(ps ...predicate.PreventionPlan) *PreventionPlanDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PreventionPlanDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PreventionPlanDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PreventionPlanDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(preventionplan.Table, sqlgraph.NewFieldSpec(preventionplan.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PreventionPlanDeleteOne is the builder for deleting a single PreventionPlan entity.
type PreventionPlanDeleteOne struct {
	_d *PreventionPlanDelete
}

// Where appends a list predicates to the PreventionPlanDelete builder.
func (_d *PreventionPlanDeleteOne) Where(ps ...predicate.PreventionPlan) *PreventionPlanDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PreventionPlanDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{preventionplan.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PreventionPlanDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
