// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// PreventionPlan is the predicate function for preventionplan builders.
type PreventionPlan func(*sql.Selector)

// Relation is the predicate function for relation builders.
type Relation func(*sql.Selector)

// Risk is the predicate function for risk builders.
type Risk func(*sql.Selector)

// RiskAnalysis is the predicate function for riskanalysis builders.
type RiskAnalysis func(*sql.Selector)

// SafetyAudit is the predicate function for safetyaudit builders.
type SafetyAudit func(*sql.Selector)

// SafetyDevice is the predicate function for safetydevice builders.
type SafetyDevice func(*sql.Selector)

// Site is the predicate function for site builders.
type Site func(*sql.Selector)

// WorkOrder is the predicate function for workorder builders.
type WorkOrder func(*sql.Selector)

// WorkPermit is the predicate function for workpermit builders.
type WorkPermit func(*sql.Selector)

// Worker is the predicate function for worker builders.
type Worker func(*sql.Selector)
