// Code generated by ent, DO NOT EDIT.

package preventionplan

import (
	"previplan/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldID, id))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldReference, v))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldSiteID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldCompanyID, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldEndDate, v))
}

// IcpDate applies equality check predicate on the "icp_date" field. It's identical to IcpDateEQ.
func IcpDate(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldIcpDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldContainsFold(FieldReference, v))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDIsNil applies the IsNil predicate on the "site_id" field.
func SiteIDIsNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIsNull(FieldSiteID))
}

// SiteIDNotNil applies the NotNil predicate on the "site_id" field.
func SiteIDNotNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotNull(FieldSiteID))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v int64) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotNull(FieldCompanyID))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotNull(FieldStartDate))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotNull(FieldEndDate))
}

// IcpDateEQ applies the EQ predicate on the "icp_date" field.
func IcpDateEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldIcpDate, v))
}

// IcpDateNEQ applies the NEQ predicate on the "icp_date" field.
func IcpDateNEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldIcpDate, v))
}

// IcpDateIn applies the In predicate on the "icp_date" field.
func IcpDateIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldIcpDate, vs...))
}

// IcpDateNotIn applies the NotIn predicate on the "icp_date" field.
func IcpDateNotIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldIcpDate, vs...))
}

// IcpDateGT applies the GT predicate on the "icp_date" field.
func IcpDateGT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldIcpDate, v))
}

// IcpDateGTE applies the GTE predicate on the "icp_date" field.
func IcpDateGTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldIcpDate, v))
}

// IcpDateLT applies the LT predicate on the "icp_date" field.
func IcpDateLT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldIcpDate, v))
}

// IcpDateLTE applies the LTE predicate on the "icp_date" field.
func IcpDateLTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldIcpDate, v))
}

// IcpDateIsNil applies the IsNil predicate on the "icp_date" field.
func IcpDateIsNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIsNull(FieldIcpDate))
}

// IcpDateNotNil applies the NotNil predicate on the "icp_date" field.
func IcpDateNotNil() predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotNull(FieldIcpDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PreventionPlan) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PreventionPlan) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PreventionPlan) predicate.PreventionPlan {
	return predicate.PreventionPlan(sql.NotPredicates(p))
}
