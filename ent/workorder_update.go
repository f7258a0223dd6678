// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/workorder"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// WorkOrderUpdate is the builder for updating WorkOrder entities.
type WorkOrderUpdate struct {
	config
	hooks    []Hook
	mutation *WorkOrderMutation
}

// Where appends a list predicates to the WorkOrderUpdate builder.
func (_u *WorkOrderUpdate) Where(ps ...predicate.WorkOrder) *WorkOrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReference sets the "reference" field.
func (_u *WorkOrderUpdate) SetReference(v string) *WorkOrderUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *WorkOrderUpdate) SetNillableReference(v *string) *WorkOrderUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *WorkOrderUpdate) SetSiteID(v int64) *WorkOrderUpdate {
	_u.mutation.ResetSiteID()
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *WorkOrderUpdate) SetNillableSiteID(v *int64) *WorkOrderUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// AddSiteID adds value to the "site_id" field.
func (_u *WorkOrderUpdate) AddSiteID(v int64) *WorkOrderUpdate {
	_u.mutation.AddSiteID(v)
	return _u
}

// ClearSiteID clears the value of the "site_id" field.
func (_u *WorkOrderUpdate) ClearSiteID() *WorkOrderUpdate {
	_u.mutation.ClearSiteID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *WorkOrderUpdate) SetCompanyID(v int64) *WorkOrderUpdate {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *WorkOrderUpdate) SetNillableCompanyID(v *int64) *WorkOrderUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *WorkOrderUpdate) AddCompanyID(v int64) *WorkOrderUpdate {
	_u.mutation.AddCompanyID(v)
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *WorkOrderUpdate) ClearCompanyID() *WorkOrderUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetWorkDate sets the "work_date" field.
func (_u *WorkOrderUpdate) SetWorkDate(v time.Time) *WorkOrderUpdate {
	_u.mutation.SetWorkDate(v)
	return _u
}

// SetNillableWorkDate sets the "work_date" field if the given value is not nil.
func (_u *WorkOrderUpdate) SetNillableWorkDate(v *time.Time) *WorkOrderUpdate {
	if v != nil {
		_u.SetWorkDate(*v)
	}
	return _u
}

// ClearWorkDate clears the value of the "work_date" field.
func (_u *WorkOrderUpdate) ClearWorkDate() *WorkOrderUpdate {
	_u.mutation.ClearWorkDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkOrderUpdate) SetStatus(v workorder.Status) *WorkOrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkOrderUpdate) SetNillableStatus(v *workorder.Status) *WorkOrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkOrderUpdate) SetUpdatedAt(v time.Time) *WorkOrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkOrderMutation object of the builder.
func (_u *WorkOrderUpdate) Mutation() *WorkOrderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkOrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkOrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkOrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkOrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkOrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkOrderUpdate) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := workorder.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "WorkOrder.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkOrder.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkOrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workorder.Table, workorder.Columns, sqlgraph.NewFieldSpec(workorder.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(workorder.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiteID(); ok {
		_spec.SetField(workorder.FieldSiteID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSiteID(); ok {
		_spec.AddField(workorder.FieldSiteID, field.TypeInt64, value)
	}
	if _u.mutation.SiteIDCleared() {
		_spec.ClearField(workorder.FieldSiteID, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(workorder.FieldCompanyID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(workorder.FieldCompanyID, field.TypeInt64, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(workorder.FieldCompanyID, field.TypeInt64)
	}
	if value, ok := _u.mutation.WorkDate(); ok {
		_spec.SetField(workorder.FieldWorkDate, field.TypeTime, value)
	}
	if _u.mutation.WorkDateCleared() {
		_spec.ClearField(workorder.FieldWorkDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workorder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workorder.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkOrderUpdateOne is the builder for updating a single WorkOrder entity.
type WorkOrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkOrderMutation
}

// SetReference sets the "reference" field.
func (_u *WorkOrderUpdateOne) SetReference(v string) *WorkOrderUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *WorkOrderUpdateOne) SetNillableReference(v *string) *WorkOrderUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *WorkOrderUpdateOne) SetSiteID(v int64) *WorkOrderUpdateOne {
	_u.mutation.ResetSiteID()
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *WorkOrderUpdateOne) SetNillableSiteID(v *int64) *WorkOrderUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// AddSiteID adds value to the "site_id" field.
func (_u *WorkOrderUpdateOne) AddSiteID(v int64) *WorkOrderUpdateOne {
	_u.mutation.AddSiteID(v)
	return _u
}

// ClearSiteID clears the value of the "site_id" field.
func (_u *WorkOrderUpdateOne) ClearSiteID() *WorkOrderUpdateOne {
	_u.mutation.ClearSiteID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *WorkOrderUpdateOne) SetCompanyID(v int64) *WorkOrderUpdateOne {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *WorkOrderUpdateOne) SetNillableCompanyID(v *int64) *WorkOrderUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *WorkOrderUpdateOne) AddCompanyID(v int64) *WorkOrderUpdateOne {
	_u.mutation.AddCompanyID(v)
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *WorkOrderUpdateOne) ClearCompanyID() *WorkOrderUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetWorkDate sets the "work_date" field.
func (_u *WorkOrderUpdateOne) SetWorkDate(v time.Time) *WorkOrderUpdateOne {
	_u.mutation.SetWorkDate(v)
	return _u
}

// SetNillableWorkDate sets the "work_date" field if the given value is not nil.
func (_u *WorkOrderUpdateOne) SetNillableWorkDate(v *time.Time) *WorkOrderUpdateOne {
	if v != nil {
		_u.SetWorkDate(*v)
	}
	return _u
}

// ClearWorkDate clears the value of the "work_date" field.
func (_u *WorkOrderUpdateOne) ClearWorkDate() *WorkOrderUpdateOne {
	_u.mutation.ClearWorkDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkOrderUpdateOne) SetStatus(v workorder.Status) *WorkOrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkOrderUpdateOne) SetNillableStatus(v *workorder.Status) *WorkOrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkOrderUpdateOne) SetUpdatedAt(v time.Time) *WorkOrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkOrderMutation object of the builder.
func (_u *WorkOrderUpdateOne) Mutation() *WorkOrderMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkOrderUpdate builder.
func (_u *WorkOrderUpdateOne) Where(ps ...predicate.WorkOrder) *WorkOrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkOrderUpdateOne) Select(field string, fields ...string) *WorkOrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkOrder entity.
func (_u *WorkOrderUpdateOne) Save(ctx context.Context) (*WorkOrder, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkOrderUpdateOne) SaveX(ctx context.Context) *WorkOrder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkOrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkOrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkOrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkOrderUpdateOne) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := workorder.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "WorkOrder.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkOrder.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkOrderUpdateOne) sqlSave(ctx context.Context) (_node *WorkOrder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workorder.Table, workorder.Columns, sqlgraph.NewFieldSpec(workorder.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkOrder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workorder.FieldID)
		for _, f := range fields {
			if !workorder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workorder.FieldID {
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
		_spec.SetField(workorder.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.SiteID(); ok {
		_spec.SetField(workorder.FieldSiteID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSiteID(); ok {
		_spec.AddField(workorder.FieldSiteID, field.TypeInt64, value)
	}
	if _u.mutation.SiteIDCleared() {
		_spec.ClearField(workorder.FieldSiteID, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(workorder.FieldCompanyID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(workorder.FieldCompanyID, field.TypeInt64, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(workorder.FieldCompanyID, field.TypeInt64)
	}
	if value, ok := _u.mutation.WorkDate(); ok {
		_spec.SetField(workorder.FieldWorkDate, field.TypeTime, value)
	}
	if _u.mutation.WorkDateCleared() {
		_spec.ClearField(workorder.FieldWorkDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workorder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workorder.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkOrder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
