// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"previplan/ent/predicate"
	"previplan/ent/safetyaudit"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SafetyAuditDelete is the builder for deleting a SafetyAudit entity.
type SafetyAuditDelete struct {
	config
	hooks    []Hook
	mutation *SafetyAuditMutation
}

// Where appends a list predicates to the SafetyAuditDelete builder.
func (_d *SafetyAuditDelete) Where(ps ...predicate.SafetyAudit) *SafetyAuditDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SafetyAuditDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SafetyAuditDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SafetyAuditDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(safetyaudit.Table, sqlgraph.NewFieldSpec(safetyaudit.FieldID, field.TypeInt))
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

// SafetyAuditDeleteOne is the builder for deleting a single SafetyAudit entity.
type SafetyAuditDeleteOne struct {
	_d *SafetyAuditDelete
}

// Where appends a list predicates to the SafetyAuditDelete builder.
func (_d *SafetyAuditDeleteOne) Where(ps ...predicate.SafetyAudit) *SafetyAuditDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SafetyAuditDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{safetyaudit.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SafetyAuditDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
