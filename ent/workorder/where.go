// Code generated by ent, DO NOT EDIT.

package workorder

import (
	"previplan/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLTE(FieldID, id))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldReference, v))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldSiteID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldCompanyID, v))
}

// WorkDate applies equality check predicate on the "work_date" field. It's identical to WorkDateEQ.
func WorkDate(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldWorkDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldContainsFold(FieldReference, v))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDIsNil applies the IsNil predicate on the "site_id" field.
func SiteIDIsNil() predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIsNull(FieldSiteID))
}

// SiteIDNotNil applies the NotNil predicate on the "site_id" field.
func SiteIDNotNil() predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotNull(FieldSiteID))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v int64) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotNull(FieldCompanyID))
}

// WorkDateEQ applies the EQ predicate on the "work_date" field.
func WorkDateEQ(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldWorkDate, v))
}

// WorkDateNEQ applies the NEQ predicate on the "work_date" field.
func WorkDateNEQ(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNEQ(FieldWorkDate, v))
}

// WorkDateIn applies the In predicate on the "work_date" field.
func WorkDateIn(vs ...time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIn(FieldWorkDate, vs...))
}

// WorkDateNotIn applies the NotIn predicate on the "work_date" field.
func WorkDateNotIn(vs ...time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotIn(FieldWorkDate, vs...))
}

// WorkDateGT applies the GT predicate on the "work_date" field.
func WorkDateGT(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGT(FieldWorkDate, v))
}

// WorkDateGTE applies the GTE predicate on the "work_date" field.
func WorkDateGTE(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGTE(FieldWorkDate, v))
}

// WorkDateLT applies the LT predicate on the "work_date" field.
func WorkDateLT(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLT(FieldWorkDate, v))
}

// WorkDateLTE applies the LTE predicate on the "work_date" field.
func WorkDateLTE(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLTE(FieldWorkDate, v))
}

// WorkDateIsNil applies the IsNil predicate on the "work_date" field.
func WorkDateIsNil() predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIsNull(FieldWorkDate))
}

// WorkDateNotNil applies the NotNil predicate on the "work_date" field.
func WorkDateNotNil() predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotNull(FieldWorkDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkOrder {
	return predicate.WorkOrder(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkOrder) predicate.WorkOrder {
	return predicate.WorkOrder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkOrder) predicate.WorkOrder {
	return predicate.WorkOrder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkOrder) predicate.WorkOrder {
	return predicate.WorkOrder(sql.NotPredicates(p))
}
