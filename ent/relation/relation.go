// Code generated by ent, DO NOT EDIT.

package relation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the relation type in the database.
	Label = "relation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldParentType holds the string denoting the parent_type field in the database.
	FieldParentType = "parent_type"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldChildType holds the string denoting the child_type field in the database.
	FieldChildType = "child_type"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldApplies holds the string denoting the applies field in the database.
	FieldApplies = "applies"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the relation in the database.
	Table = "relations"
)

// Columns holds all SQL columns for relation fields.
var Columns = []string{
	FieldID,
	FieldParentType,
	FieldParentID,
	FieldChildType,
	FieldChildID,
	FieldApplies,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultApplies holds the default value on creation for the "applies" field.
	DefaultApplies bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ParentType defines the type for the "parent_type" enum field.
type ParentType string

// ParentType values.
const (
	ParentTypePdp ParentType = "pdp"
	ParentTypeBdt ParentType = "bdt"
)

func (pt ParentType) String() string {
	return string(pt)
}

// ParentTypeValidator is a validator for the "parent_type" field enum values. It is called by the builders before save.
func ParentTypeValidator(pt ParentType) error {
	switch pt {
	case ParentTypePdp, ParentTypeBdt:
		return nil
	default:
		return fmt.Errorf("relation: invalid enum value for parent_type field: %q", pt)
	}
}

// ChildType defines the type for the "child_type" enum field.
type ChildType string

// ChildType values.
const (
	ChildTypeRisk     ChildType = "risk"
	ChildTypeDevice   ChildType = "device"
	ChildTypePermit   ChildType = "permit"
	ChildTypeAudit    ChildType = "audit"
	ChildTypeAnalysis ChildType = "analysis"
)

func (ct ChildType) String() string {
	return string(ct)
}

// ChildTypeValidator is a validator for the "child_type" field enum values. It is called by the builders before save.
func ChildTypeValidator(ct ChildType) error {
	switch ct {
	case ChildTypeRisk, ChildTypeDevice, ChildTypePermit, ChildTypeAudit, ChildTypeAnalysis:
		return nil
	default:
		return fmt.Errorf("relation: invalid enum value for child_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Relation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParentType orders the results by the parent_type field.
func ByParentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentType, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByChildType orders the results by the child_type field.
func ByChildType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildType, opts...).ToFunc()
}

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// ByApplies orders the results by the applies field.
func ByApplies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplies, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
