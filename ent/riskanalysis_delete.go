// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"previplan/ent/predicate"
	"previplan/ent/riskanalysis"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RiskAnalysisDelete is the builder for deleting a RiskAnalysis entity.
type RiskAnalysisDelete struct {
	config
	hooks    []Hook
	mutation *RiskAnalysisMutation
}

// Where appends a list predicates to the RiskAnalysisDelete builder.
func (_d *RiskAnalysisDelete) Where(ps ...predicate.RiskAnalysis) *RiskAnalysisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RiskAnalysisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RiskAnalysisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RiskAnalysisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(riskanalysis.Table, sqlgraph.NewFieldSpec(riskanalysis.FieldID, field.TypeInt))
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

// RiskAnalysisDeleteOne is the builder for deleting a single RiskAnalysis entity.
type RiskAnalysisDeleteOne struct {
	_d *RiskAnalysisDelete
}

// Where appends a list predicates to the RiskAnalysisDelete builder.
func (_d *RiskAnalysisDeleteOne) Where(ps ...predicate.RiskAnalysis) *RiskAnalysisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RiskAnalysisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{riskanalysis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RiskAnalysisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
