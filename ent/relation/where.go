// Code generated by ent, DO NOT EDIT.

package relation

import (
	"previplan/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldID, id))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldParentID, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldChildID, v))
}

// Applies applies equality check predicate on the "applies" field. It's identical to AppliesEQ.
func Applies(v bool) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldApplies, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldUpdatedAt, v))
}

// ParentTypeEQ applies the EQ predicate on the "parent_type" field.
func ParentTypeEQ(v ParentType) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldParentType, v))
}

// ParentTypeNEQ applies the NEQ predicate on the "parent_type" field.
func ParentTypeNEQ(v ParentType) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldParentType, v))
}

// ParentTypeIn applies the In predicate on the "parent_type" field.
func ParentTypeIn(vs ...ParentType) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldParentType, vs...))
}

// ParentTypeNotIn applies the NotIn predicate on the "parent_type" field.
func ParentTypeNotIn(vs ...ParentType) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldParentType, vs...))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...int64) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...int64) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldParentID, v))
}

// ChildTypeEQ applies the EQ predicate on the "child_type" field.
func ChildTypeEQ(v ChildType) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldChildType, v))
}

// ChildTypeNEQ applies the NEQ predicate on the "child_type" field.
func ChildTypeNEQ(v ChildType) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldChildType, v))
}

// ChildTypeIn applies the In predicate on the "child_type" field.
func ChildTypeIn(vs ...ChildType) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldChildType, vs...))
}

// ChildTypeNotIn applies the NotIn predicate on the "child_type" field.
func ChildTypeNotIn(vs ...ChildType) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldChildType, vs...))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...int64) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...int64) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v int64) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldChildID, v))
}

// AppliesEQ applies the EQ predicate on the "applies" field.
func AppliesEQ(v bool) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldApplies, v))
}

// AppliesNEQ applies the NEQ predicate on the "applies" field.
func AppliesNEQ(v bool) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldApplies, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Relation {
	return predicate.Relation(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Relation) predicate.Relation {
	return predicate.Relation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Relation) predicate.Relation {
	return predicate.Relation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Relation) predicate.Relation {
	return predicate.Relation(sql.NotPredicates(p))
}
