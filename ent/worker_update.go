// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"previplan/ent/predicate"
	"previplan/ent/worker"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// WorkerUpdate is the builder for updating Worker entities.
type WorkerUpdate struct {
	config
	hooks    []Hook
	mutation *WorkerMutation
}

// Where appends a list predicates to the WorkerUpdate builder.
func (_u *WorkerUpdate) Where(ps ...predicate.Worker) *WorkerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *WorkerUpdate) SetFirstName(v string) *WorkerUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *WorkerUpdate) SetNillableFirstName(v *string) *WorkerUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *WorkerUpdate) SetLastName(v string) *WorkerUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *WorkerUpdate) SetNillableLastName(v *string) *WorkerUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *WorkerUpdate) SetEmail(v string) *WorkerUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *WorkerUpdate) SetNillableEmail(v *string) *WorkerUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *WorkerUpdate) ClearEmail() *WorkerUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *WorkerUpdate) SetPhone(v string) *WorkerUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *WorkerUpdate) SetNillablePhone(v *string) *WorkerUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *WorkerUpdate) ClearPhone() *WorkerUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *WorkerUpdate) SetCompanyID(v int64) *WorkerUpdate {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *WorkerUpdate) SetNillableCompanyID(v *int64) *WorkerUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *WorkerUpdate) AddCompanyID(v int64) *WorkerUpdate {
	_u.mutation.AddCompanyID(v)
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *WorkerUpdate) ClearCompanyID() *WorkerUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetCertifications sets the "certifications" field.
func (_u *WorkerUpdate) SetCertifications(v []string) *WorkerUpdate {
	_u.mutation.SetCertifications(v)
	return _u
}

// AppendCertifications appends value to the "certifications" field.
func (_u *WorkerUpdate) AppendCertifications(v []string) *WorkerUpdate {
	_u.mutation.AppendCertifications(v)
	return _u
}

// ClearCertifications clears the value of the "certifications" field.
func (_u *WorkerUpdate) ClearCertifications() *WorkerUpdate {
	_u.mutation.ClearCertifications()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkerUpdate) SetUpdatedAt(v time.Time) *WorkerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkerMutation object of the builder.
func (_u *WorkerUpdate) Mutation() *WorkerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := worker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkerUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := worker.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Worker.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := worker.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Worker.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := worker.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Worker.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(worker.Table, worker.Columns, sqlgraph.NewFieldSpec(worker.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(worker.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(worker.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(worker.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(worker.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(worker.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(worker.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(worker.FieldCompanyID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(worker.FieldCompanyID, field.TypeInt64, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(worker.FieldCompanyID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Certifications(); ok {
		_spec.SetField(worker.FieldCertifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCertifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worker.FieldCertifications, value)
		})
	}
	if _u.mutation.CertificationsCleared() {
		_spec.ClearField(worker.FieldCertifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(worker.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{worker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkerUpdateOne is the builder for updating a single Worker entity.
type WorkerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkerMutation
}

// SetFirstName sets the "first_name" field.
func (_u *WorkerUpdateOne) SetFirstName(v string) *WorkerUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *WorkerUpdateOne) SetNillableFirstName(v *string) *WorkerUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *WorkerUpdateOne) SetLastName(v string) *WorkerUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *WorkerUpdateOne) SetNillableLastName(v *string) *WorkerUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *WorkerUpdateOne) SetEmail(v string) *WorkerUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *WorkerUpdateOne) SetNillableEmail(v *string) *WorkerUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *WorkerUpdateOne) ClearEmail() *WorkerUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *WorkerUpdateOne) SetPhone(v string) *WorkerUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *WorkerUpdateOne) SetNillablePhone(v *string) *WorkerUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *WorkerUpdateOne) ClearPhone() *WorkerUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *WorkerUpdateOne) SetCompanyID(v int64) *WorkerUpdateOne {
	_u.mutation.ResetCompanyID()
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *WorkerUpdateOne) SetNillableCompanyID(v *int64) *WorkerUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// AddCompanyID adds value to the "company_id" field.
func (_u *WorkerUpdateOne) AddCompanyID(v int64) *WorkerUpdateOne {
	_u.mutation.AddCompanyID(v)
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *WorkerUpdateOne) ClearCompanyID() *WorkerUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetCertifications sets the "certifications" field.
func (_u *WorkerUpdateOne) SetCertifications(v []string) *WorkerUpdateOne {
	_u.mutation.SetCertifications(v)
	return _u
}

// AppendCertifications appends value to the "certifications" field.
func (_u *WorkerUpdateOne) AppendCertifications(v []string) *WorkerUpdateOne {
	_u.mutation.AppendCertifications(v)
	return _u
}

// ClearCertifications clears the value of the "certifications" field.
func (_u *WorkerUpdateOne) ClearCertifications() *WorkerUpdateOne {
	_u.mutation.ClearCertifications()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkerUpdateOne) SetUpdatedAt(v time.Time) *WorkerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkerMutation object of the builder.
func (_u *WorkerUpdateOne) Mutation() *WorkerMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkerUpdate builder.
func (_u *WorkerUpdateOne) Where(ps ...predicate.Worker) *WorkerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkerUpdateOne) Select(field string, fields ...string) *WorkerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Worker entity.
func (_u *WorkerUpdateOne) Save(ctx context.Context) (*Worker, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkerUpdateOne) SaveX(ctx context.Context) *Worker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := worker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkerUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := worker.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Worker.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := worker.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Worker.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := worker.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Worker.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkerUpdateOne) sqlSave(ctx context.Context) (_node *Worker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(worker.Table, worker.Columns, sqlgraph.NewFieldSpec(worker.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Worker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, worker.FieldID)
		for _, f := range fields {
			if !worker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != worker.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(worker.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(worker.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(worker.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(worker.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(worker.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(worker.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(worker.FieldCompanyID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompanyID(); ok {
		_spec.AddField(worker.FieldCompanyID, field.TypeInt64, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(worker.FieldCompanyID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Certifications(); ok {
		_spec.SetField(worker.FieldCertifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCertifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, worker.FieldCertifications, value)
		})
	}
	if _u.mutation.CertificationsCleared() {
		_spec.ClearField(worker.FieldCertifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(worker.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Worker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{worker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
