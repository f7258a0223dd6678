// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/preventionplan"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PreventionPlanUpdate is the builder for updating PreventionPlan entities.
type PreventionPlanUpdate struct {
	config
	hooks    []Hook
	mutation *PreventionPlanMutation
}

// Where appends a list predicates to the PreventionPlanUpdate builder.
func (_u *PreventionPlanUpdate) Where(ps ...predicate.PreventionPlan) *PreventionPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReference sets the "reference" field.
func (_u *PreventionPlanUpdate) SetReference(v string) *PreventionPlanUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *PreventionPlanUpdate) SetNillableReference(v *string) *PreventionPlanUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *PreventionPlanUpdate) SetSiteID(v int64) *PreventionPlanUpdate {
	_u.mutation.ResetSiteID()
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *PreventionPlanUpdate) SetNillableSiteID(v *int64) *PreventionPlanUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// AddSiteID adds value to the "site_id" field.
func (_u *PreventionPlanUpdate) AddSiteID(v int64) *PreventionPlanUpdate {
	_u.mutation.AddSiteID(v)
	return _u
}

// ClearSiteID clears the value of the "site_id" field.
func (_u *PreventionPlanUpdate) ClearSiteID() *PreventionPlanUpdate {
	_u.mutation.ClearSiteID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *PreventionPlanUpdate) SetCompanyID(v int64) *PreventionPlanUpdate {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *PreventionPlanUpdate) SetNillableCompanyID(v *int64) *PreventionPlanUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *PreventionPlanUpdate) AddCompanyID(v int64) *PreventionPlanUpdate {
	_u.mutation.AddCompanyID(v)
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *PreventionPlanUpdate) ClearCompanyID() *PreventionPlanUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PreventionPlanUpdate) SetStartDate(v time.Time) *PreventionPlanUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PreventionPlanUpdate) SetNillableStartDate(v *time.Time) *PreventionPlanUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *PreventionPlanUpdate) ClearStartDate() *PreventionPlanUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *PreventionPlanUpdate) SetEndDate(v time.Time) *PreventionPlanUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *PreventionPlanUpdate) SetNillableEndDate(v *time.Time) *PreventionPlanUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *PreventionPlanUpdate) ClearEndDate() *PreventionPlanUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetIcpDate sets the "icp_date" field.
func (_u *PreventionPlanUpdate) SetIcpDate(v time.Time) *PreventionPlanUpdate {
	_u.mutation.SetIcpDate(v)
	return _u
}

// SetNillableIcpDate sets the "icp_date" field if the given value is not nil.
func (_u *PreventionPlanUpdate) SetNillableIcpDate(v *time.Time) *PreventionPlanUpdate {
	if v != nil {
		_u.SetIcpDate(*v)
	}
	return _u
}

// ClearIcpDate clears the value of the "icp_date" field.
func (_u *PreventionPlanUpdate) ClearIcpDate() *PreventionPlanUpdate {
	_u.mutation.ClearIcpDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PreventionPlanUpdate) SetStatus(v preventionplan.Status) *PreventionPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PreventionPlanUpdate) SetNillableStatus(v *preventionplan.Status) *PreventionPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PreventionPlanUpdate) SetUpdatedAt(v time.Time) *PreventionPlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PreventionPlanMutation object of the builder.
func (_u *PreventionPlanUpdate) Mutation() *PreventionPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PreventionPlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreventionPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PreventionPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreventionPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PreventionPlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := preventionplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreventionPlanUpdate) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := preventionplan.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "PreventionPlan.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := preventionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PreventionPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PreventionPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preventionplan.Table, preventionplan.Columns, sqlgraph.NewFieldSpec(preventionplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(preventionplan.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiteID(); ok {
		_spec.SetField(preventionplan.FieldSiteID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSiteID(); ok {
		_spec.AddField(preventionplan.FieldSiteID, field.TypeInt64, value)
	}
	if _u.mutation.SiteIDCleared() {
		_spec.ClearField(preventionplan.FieldSiteID, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(preventionplan.FieldCompanyID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(preventionplan.FieldCompanyID, field.TypeInt64, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(preventionplan.FieldCompanyID, field.TypeInt64)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(preventionplan.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(preventionplan.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(preventionplan.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(preventionplan.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IcpDate(); ok {
		_spec.SetField(preventionplan.FieldIcpDate, field.TypeTime, value)
	}
	if _u.mutation.IcpDateCleared() {
		_spec.ClearField(preventionplan.FieldIcpDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(preventionplan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(preventionplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preventionplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PreventionPlanUpdateOne is the builder for updating a single PreventionPlan entity.
type PreventionPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PreventionPlanMutation
}

// SetReference sets the "reference" field.
func (_u *PreventionPlanUpdateOne) SetReference(v string) *PreventionPlanUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *PreventionPlanUpdateOne) SetNillableReference(v *string) *PreventionPlanUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *PreventionPlanUpdateOne) SetSiteID(v int64) *PreventionPlanUpdateOne {
	_u.mutation.ResetSiteID()
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *PreventionPlanUpdateOne) SetNillableSiteID(v *int64) *PreventionPlanUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// AddSiteID adds value to the "site_id" field.
func (_u *PreventionPlanUpdateOne) AddSiteID(v int64) *PreventionPlanUpdateOne {
	_u.mutation.AddSiteID(v)
	return _u
}

// ClearSiteID clears the value of the "site_id" field.
func (_u *PreventionPlanUpdateOne) ClearSiteID() *PreventionPlanUpdateOne {
	_u.mutation.ClearSiteID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *PreventionPlanUpdateOne) SetCompanyID(v int64) *PreventionPlanUpdateOne {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *PreventionPlanUpdateOne) SetNillableCompanyID(v *int64) *PreventionPlanUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *PreventionPlanUpdateOne) AddCompanyID(v int64) *PreventionPlanUpdateOne {
	_u.mutation.AddCompanyID(v)
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *PreventionPlanUpdateOne) ClearCompanyID() *PreventionPlanUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PreventionPlanUpdateOne) SetStartDate(v time.Time) *PreventionPlanUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PreventionPlanUpdateOne) SetNillableStartDate(v *time.Time) *PreventionPlanUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *PreventionPlanUpdateOne) ClearStartDate() *PreventionPlanUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *PreventionPlanUpdateOne) SetEndDate(v time.Time) *PreventionPlanUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *PreventionPlanUpdateOne) SetNillableEndDate(v *time.Time) *PreventionPlanUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *PreventionPlanUpdateOne) ClearEndDate() *PreventionPlanUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetIcpDate sets the "icp_date" field.
func (_u *PreventionPlanUpdateOne) SetIcpDate(v time.Time) *PreventionPlanUpdateOne {
	_u.mutation.SetIcpDate(v)
	return _u
}

// SetNillableIcpDate sets the "icp_date" field if the given value is not nil.
func (_u *PreventionPlanUpdateOne) SetNillableIcpDate(v *time.Time) *PreventionPlanUpdateOne {
	if v != nil {
		_u.SetIcpDate(*v)
	}
	return _u
}

// ClearIcpDate clears the value of the "icp_date" field.
func (_u *PreventionPlanUpdateOne) ClearIcpDate() *PreventionPlanUpdateOne {
	_u.mutation.ClearIcpDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PreventionPlanUpdateOne) SetStatus(v preventionplan.Status) *PreventionPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PreventionPlanUpdateOne) SetNillableStatus(v *preventionplan.Status) *PreventionPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PreventionPlanUpdateOne) SetUpdatedAt(v time.Time) *PreventionPlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PreventionPlanMutation object of the builder.
func (_u *PreventionPlanUpdateOne) Mutation() *PreventionPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the PreventionPlanUpdate builder.
func (_u *PreventionPlanUpdateOne) Where(ps ...predicate.PreventionPlan) *PreventionPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PreventionPlanUpdateOne) Select(field string, fields ...string) *PreventionPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PreventionPlan entity.
func (_u *PreventionPlanUpdateOne) Save(ctx context.Context) (*PreventionPlan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PreventionPlanUpdateOne) SaveX(ctx context.Context) *PreventionPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PreventionPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PreventionPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PreventionPlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := preventionplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PreventionPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := preventionplan.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "PreventionPlan.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := preventionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PreventionPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PreventionPlanUpdateOne) sqlSave(ctx context.Context) (_node *PreventionPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(preventionplan.Table, preventionplan.Columns, sqlgraph.NewFieldSpec(preventionplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PreventionPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, preventionplan.FieldID)
		for _, f := range fields {
			if !preventionplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != preventionplan.FieldID {
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
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(preventionplan.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiteID(); ok {
		_spec.SetField(preventionplan.FieldSiteID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSiteID(); ok {
		_spec.AddField(preventionplan.FieldSiteID, field.TypeInt64, value)
	}
	if _u.mutation.SiteIDCleared() {
		_spec.ClearField(preventionplan.FieldSiteID, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(preventionplan.FieldCompanyID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(preventionplan.FieldCompanyID, field.TypeInt64, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(preventionplan.FieldCompanyID, field.TypeInt64)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(preventionplan.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(preventionplan.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(preventionplan.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(preventionplan.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IcpDate(); ok {
		_spec.SetField(preventionplan.FieldIcpDate, field.TypeTime, value)
	}
	if _u.mutation.IcpDateCleared() {
		_spec.ClearField(preventionplan.FieldIcpDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(preventionplan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(preventionplan.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PreventionPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{preventionplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
