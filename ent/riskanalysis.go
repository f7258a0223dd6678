// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"previplan/ent/riskanalysis"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// RiskAnalysis is the model entity for the RiskAnalysis schema.
type RiskAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Activity holds the value of the "activity" field.
	Activity string `json:"activity,omitempty"`
	// Measures holds the value of the "measures" field.
	Measures string `json:"measures,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID int64 `json:"company_id,omitempty"`
	// Status holds the value of the "status" field.
	Status riskanalysis.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RiskAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case riskanalysis.FieldID, riskanalysis.FieldCompanyID:
			values[i] = new(sql.NullInt64)
		case riskanalysis.FieldActivity, riskanalysis.FieldMeasures, riskanalysis.FieldStatus:
			values[i] = new(sql.NullString)
		case riskanalysis.FieldCreatedAt, riskanalysis.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RiskAnalysis fields.
func (_m *RiskAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case riskanalysis.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case riskanalysis.FieldActivity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity", values[i])
			} else if value.Valid {
				_m.Activity = value.String
			}
		case riskanalysis.FieldMeasures:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field measures", values[i])
			} else if value.Valid {
				_m.Measures = value.String
			}
		case riskanalysis.FieldCompanyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.Int64
			}
		case riskanalysis.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = riskanalysis.Status(value.String)
			}
		case riskanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case riskanalysis.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RiskAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *RiskAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RiskAnalysis.
// Note that you need to call RiskAnalysis.Unwrap() before calling this method if this RiskAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RiskAnalysis) Update() *RiskAnalysisUpdateOne {
	return NewRiskAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RiskAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RiskAnalysis) Unwrap() *RiskAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RiskAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RiskAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("RiskAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("activity=")
	builder.WriteString(_m.Activity)
	builder.WriteString(", ")
	builder.WriteString("measures=")
	builder.WriteString(_m.Measures)
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RiskAnalyses is a parsable slice of RiskAnalysis.
type RiskAnalyses []*RiskAnalysis
