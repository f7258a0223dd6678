// Code generated by ent, DO NOT EDIT.

package riskanalysis

import (
	"previplan/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLTE(FieldID, id))
}

// Activity applies equality check predicate on the "activity" field. It's identical to ActivityEQ.
func Activity(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldActivity, v))
}

// Measures applies equality check predicate on the "measures" field. It's identical to MeasuresEQ.
func Measures(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldMeasures, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldCompanyID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// ActivityEQ applies the EQ predicate on the "activity" field.
func ActivityEQ(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldActivity, v))
}

// ActivityNEQ applies the NEQ predicate on the "activity" field.
func ActivityNEQ(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNEQ(FieldActivity, v))
}

// ActivityIn applies the In predicate on the "activity" field.
func ActivityIn(vs ...string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIn(FieldActivity, vs...))
}

// ActivityNotIn applies the NotIn predicate on the "activity" field.
func ActivityNotIn(vs ...string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotIn(FieldActivity, vs...))
}

// ActivityGT applies the GT predicate on the "activity" field.
func ActivityGT(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGT(FieldActivity, v))
}

// ActivityGTE applies the GTE predicate on the "activity" field.
func ActivityGTE(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGTE(FieldActivity, v))
}

// ActivityLT applies the LT predicate on the "activity" field.
func ActivityLT(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLT(FieldActivity, v))
}

// ActivityLTE applies the LTE predicate on the "activity" field.
func ActivityLTE(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLTE(FieldActivity, v))
}

// ActivityContains applies the Contains predicate on the "activity" field.
func ActivityContains(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldContains(FieldActivity, v))
}

// ActivityHasPrefix applies the HasPrefix predicate on the "activity" field.
func ActivityHasPrefix(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldHasPrefix(FieldActivity, v))
}

// ActivityHasSuffix applies the HasSuffix predicate on the "activity" field.
func ActivityHasSuffix(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldHasSuffix(FieldActivity, v))
}

// ActivityEqualFold applies the EqualFold predicate on the "activity" field.
func ActivityEqualFold(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEqualFold(FieldActivity, v))
}

// ActivityContainsFold applies the ContainsFold predicate on the "activity" field.
func ActivityContainsFold(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldContainsFold(FieldActivity, v))
}

// MeasuresEQ applies the EQ predicate on the "measures" field.
func MeasuresEQ(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldMeasures, v))
}

// MeasuresNEQ applies the NEQ predicate on the "measures" field.
func MeasuresNEQ(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNEQ(FieldMeasures, v))
}

// MeasuresIn applies the In predicate on the "measures" field.
func MeasuresIn(vs ...string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIn(FieldMeasures, vs...))
}

// MeasuresNotIn applies the NotIn predicate on the "measures" field.
func MeasuresNotIn(vs ...string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotIn(FieldMeasures, vs...))
}

// MeasuresGT applies the GT predicate on the "measures" field.
func MeasuresGT(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGT(FieldMeasures, v))
}

// MeasuresGTE applies the GTE predicate on the "measures" field.
func MeasuresGTE(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGTE(FieldMeasures, v))
}

// MeasuresLT applies the LT predicate on the "measures" field.
func MeasuresLT(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLT(FieldMeasures, v))
}

// MeasuresLTE applies the LTE predicate on the "measures" field.
func MeasuresLTE(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLTE(FieldMeasures, v))
}

// MeasuresContains applies the Contains predicate on the "measures" field.
func MeasuresContains(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldContains(FieldMeasures, v))
}

// MeasuresHasPrefix applies the HasPrefix predicate on the "measures" field.
func MeasuresHasPrefix(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldHasPrefix(FieldMeasures, v))
}

// MeasuresHasSuffix applies the HasSuffix predicate on the "measures" field.
func MeasuresHasSuffix(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldHasSuffix(FieldMeasures, v))
}

// MeasuresIsNil applies the IsNil predicate on the "measures" field.
func MeasuresIsNil() predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIsNull(FieldMeasures))
}

// MeasuresNotNil applies the NotNil predicate on the "measures" field.
func MeasuresNotNil() predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotNull(FieldMeasures))
}

// MeasuresEqualFold applies the EqualFold predicate on the "measures" field.
func MeasuresEqualFold(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEqualFold(FieldMeasures, v))
}

// MeasuresContainsFold applies the ContainsFold predicate on the "measures" field.
func MeasuresContainsFold(v string) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldContainsFold(FieldMeasures, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v int64) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotNull(FieldCompanyID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RiskAnalysis) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RiskAnalysis) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RiskAnalysis) predicate.RiskAnalysis {
	return predicate.RiskAnalysis(sql.NotPredicates(p))
}
