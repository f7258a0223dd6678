// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/riskanalysis"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RiskAnalysisUpdate is the builder for updating RiskAnalysis entities.
type RiskAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *RiskAnalysisMutation
}

// Where appends a list predicates to the RiskAnalysisUpdate builder.
func (_u *RiskAnalysisUpdate) Where(ps ...predicate.RiskAnalysis) *RiskAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActivity sets the "activity" field.
func (_u *RiskAnalysisUpdate) SetActivity(v string) *RiskAnalysisUpdate {
	_u.mutation.SetActivity(v)
	return _u
}

// SetNillableActivity sets the "activity" field if the given value is not nil.
func (_u *RiskAnalysisUpdate) SetNillableActivity(v *string) *RiskAnalysisUpdate {
	if v != nil {
		_u.SetActivity(*v)
	}
	return _u
}

// SetMeasures sets the "measures" field.
func (_u *RiskAnalysisUpdate) SetMeasures(v string) *RiskAnalysisUpdate {
	_u.mutation.SetMeasures(v)
	return _u
}

// SetNillableMeasures sets the "measures" field if the given value is not nil.
func (_u *RiskAnalysisUpdate) SetNillableMeasures(v *string) *RiskAnalysisUpdate {
	if v != nil {
		_u.SetMeasures(*v)
	}
	return _u
}

// ClearMeasures clears the value of the "measures" field.
func (_u *RiskAnalysisUpdate) ClearMeasures() *RiskAnalysisUpdate {
	_u.mutation.ClearMeasures()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *RiskAnalysisUpdate) SetCompanyID(v int64) *RiskAnalysisUpdate {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *RiskAnalysisUpdate) SetNillableCompanyID(v *int64) *RiskAnalysisUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *RiskAnalysisUpdate) AddCompanyID(v int64) *RiskAnalysisUpdate {
	_u.mutation.AddCompanyID(v)
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *RiskAnalysisUpdate) ClearCompanyID() *RiskAnalysisUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RiskAnalysisUpdate) SetStatus(v riskanalysis.Status) *RiskAnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RiskAnalysisUpdate) SetNillableStatus(v *riskanalysis.Status) *RiskAnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RiskAnalysisUpdate) SetUpdatedAt(v time.Time) *RiskAnalysisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RiskAnalysisMutation object of the builder.
func (_u *RiskAnalysisUpdate) Mutation() *RiskAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RiskAnalysisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RiskAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RiskAnalysisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := riskanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskAnalysisUpdate) check() error {
	if v, ok := _u.mutation.Activity(); ok {
		if err := riskanalysis.ActivityValidator(v); err != nil {
			return &ValidationError{Name: "activity", err: fmt.Errorf(`ent: validator failed for field "RiskAnalysis.activity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := riskanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RiskAnalysis.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(riskanalysis.Table, riskanalysis.Columns, sqlgraph.NewFieldSpec(riskanalysis.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Activity(); ok {
		_spec.SetField(riskanalysis.FieldActivity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Measures(); ok {
		_spec.SetField(riskanalysis.FieldMeasures, field.TypeString, value)
	}
	if _u.mutation.MeasuresCleared() {
		_spec.ClearField(riskanalysis.FieldMeasures, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(riskanalysis.FieldCompanyID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(riskanalysis.FieldCompanyID, field.TypeInt64, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(riskanalysis.FieldCompanyID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(riskanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(riskanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RiskAnalysisUpdateOne is the builder for updating a single RiskAnalysis entity.
type RiskAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RiskAnalysisMutation
}

// SetActivity sets the "activity" field.
func (_u *RiskAnalysisUpdateOne) SetActivity(v string) *RiskAnalysisUpdateOne {
	_u.mutation.SetActivity(v)
	return _u
}

// SetNillableActivity sets the "activity" field if the given value is not nil.
func (_u *RiskAnalysisUpdateOne) SetNillableActivity(v *string) *RiskAnalysisUpdateOne {
	if v != nil {
		_u.SetActivity(*v)
	}
	return _u
}

// SetMeasures sets the "measures" field.
func (_u *RiskAnalysisUpdateOne) SetMeasures(v string) *RiskAnalysisUpdateOne {
	_u.mutation.SetMeasures(v)
	return _u
}

// SetNillableMeasures sets the "measures" field if the given value is not nil.
func (_u *RiskAnalysisUpdateOne) SetNillableMeasures(v *string) *RiskAnalysisUpdateOne {
	if v != nil {
		_u.SetMeasures(*v)
	}
	return _u
}

// ClearMeasures clears the value of the "measures" field.
func (_u *RiskAnalysisUpdateOne) ClearMeasures() *RiskAnalysisUpdateOne {
	_u.mutation.ClearMeasures()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *RiskAnalysisUpdateOne) SetCompanyID(v int64) *RiskAnalysisUpdateOne {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *RiskAnalysisUpdateOne) SetNillableCompanyID(v *int64) *RiskAnalysisUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *RiskAnalysisUpdateOne) AddCompanyID(v int64) *RiskAnalysisUpdateOne {
	_u.mutation.AddCompanyID(v)
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *RiskAnalysisUpdateOne) ClearCompanyID() *RiskAnalysisUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RiskAnalysisUpdateOne) SetStatus(v riskanalysis.Status) *RiskAnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RiskAnalysisUpdateOne) SetNillableStatus(v *riskanalysis.Status) *RiskAnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RiskAnalysisUpdateOne) SetUpdatedAt(v time.Time) *RiskAnalysisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RiskAnalysisMutation object of the builder.
func (_u *RiskAnalysisUpdateOne) Mutation() *RiskAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the RiskAnalysisUpdate builder.
func (_u *RiskAnalysisUpdateOne) Where(ps ...predicate.RiskAnalysis) *RiskAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RiskAnalysisUpdateOne) Select(field string, fields ...string) *RiskAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RiskAnalysis entity.
func (_u *RiskAnalysisUpdateOne) Save(ctx context.Context) (*RiskAnalysis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RiskAnalysisUpdateOne) SaveX(ctx context.Context) *RiskAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RiskAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RiskAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RiskAnalysisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := riskanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RiskAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Activity(); ok {
		if err := riskanalysis.ActivityValidator(v); err != nil {
			return &ValidationError{Name: "activity", err: fmt.Errorf(`ent: validator failed for field "RiskAnalysis.activity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := riskanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RiskAnalysis.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RiskAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *RiskAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(riskanalysis.Table, riskanalysis.Columns, sqlgraph.NewFieldSpec(riskanalysis.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RiskAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, riskanalysis.FieldID)
		for _, f := range fields {
			if !riskanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != riskanalysis.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Activity(); ok {
		_spec.SetField(riskanalysis.FieldActivity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Measures(); ok {
		_spec.SetField(riskanalysis.FieldMeasures, field.TypeString, value)
	}
	if _u.mutation.MeasuresCleared() {
		_spec.ClearField(riskanalysis.FieldMeasures, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(riskanalysis.FieldCompanyID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(riskanalysis.FieldCompanyID, field.TypeInt64, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(riskanalysis.FieldCompanyID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(riskanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(riskanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RiskAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{riskanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
