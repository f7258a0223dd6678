// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "admin"}, Default: "user"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "siret", Type: field.TypeString, Nullable: true, Size: 14},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "contact_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_name",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[1]},
			},
		},
	}
	// PreventionPlansColumns holds the columns for the "prevention_plans" table.
	PreventionPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "reference", Type: field.TypeString, Size: 64},
		{Name: "site_id", Type: field.TypeInt64, Nullable: true},
		{Name: "company_id", Type: field.TypeInt64, Nullable: true},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "icp_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "signed", "expired"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PreventionPlansTable holds the schema information for the "prevention_plans" table.
	PreventionPlansTable = &schema.Table{
		Name:       "prevention_plans",
		Columns:    PreventionPlansColumns,
		PrimaryKey: []*schema.Column{PreventionPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "preventionplan_site_id",
				Unique:  false,
				Columns: []*schema.Column{PreventionPlansColumns[2]},
			},
			{
				Name:    "preventionplan_company_id",
				Unique:  false,
				Columns: []*schema.Column{PreventionPlansColumns[3]},
			},
			{
				Name:    "preventionplan_reference",
				Unique:  true,
				Columns: []*schema.Column{PreventionPlansColumns[1]},
			},
		},
	}
	// RelationsColumns holds the columns for the "relations" table.
	RelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "parent_type", Type: field.TypeEnum, Enums: []string{"pdp", "bdt"}},
		{Name: "parent_id", Type: field.TypeInt64},
		{Name: "child_type", Type: field.TypeEnum, Enums: []string{"risk", "device", "permit", "audit", "analysis"}},
		{Name: "child_id", Type: field.TypeInt64},
		{Name: "applies", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RelationsTable holds the schema information for the "relations" table.
	RelationsTable = &schema.Table{
		Name:       "relations",
		Columns:    RelationsColumns,
		PrimaryKey: []*schema.Column{RelationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "relation_parent_type_parent_id",
				Unique:  false,
				Columns: []*schema.Column{RelationsColumns[1], RelationsColumns[2]},
			},
			{
				Name:    "relation_parent_type_parent_id_child_type_child_id",
				Unique:  true,
				Columns: []*schema.Column{RelationsColumns[1], RelationsColumns[2], RelationsColumns[3], RelationsColumns[4]},
			},
		},
	}
	// RisksColumns holds the columns for the "risks" table.
	RisksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "permit_required", Type: field.TypeBool, Default: false},
		{Name: "logo", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RisksTable holds the schema information for the "risks" table.
	RisksTable = &schema.Table{
		Name:       "risks",
		Columns:    RisksColumns,
		PrimaryKey: []*schema.Column{RisksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "risk_level",
				Unique:  false,
				Columns: []*schema.Column{RisksColumns[3]},
			},
			{
				Name:    "risk_title",
				Unique:  false,
				Columns: []*schema.Column{RisksColumns[1]},
			},
		},
	}
	// RiskAnalysesColumns holds the columns for the "risk_analyses" table.
	RiskAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "activity", Type: field.TypeString, Size: 255},
		{Name: "measures", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "company_id", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "validated"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RiskAnalysesTable holds the schema information for the "risk_analyses" table.
	RiskAnalysesTable = &schema.Table{
		Name:       "risk_analyses",
		Columns:    RiskAnalysesColumns,
		PrimaryKey: []*schema.Column{RiskAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "riskanalysis_company_id",
				Unique:  false,
				Columns: []*schema.Column{RiskAnalysesColumns[3]},
			},
		},
	}
	// SafetyAuditsColumns holds the columns for the "safety_audits" table.
	SafetyAuditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "logo", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SafetyAuditsTable holds the schema information for the "safety_audits" table.
	SafetyAuditsTable = &schema.Table{
		Name:       "safety_audits",
		Columns:    SafetyAuditsColumns,
		PrimaryKey: []*schema.Column{SafetyAuditsColumns[0]},
	}
	// SafetyDevicesColumns holds the columns for the "safety_devices" table.
	SafetyDevicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "logo", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SafetyDevicesTable holds the schema information for the "safety_devices" table.
	SafetyDevicesTable = &schema.Table{
		Name:       "safety_devices",
		Columns:    SafetyDevicesColumns,
		PrimaryKey: []*schema.Column{SafetyDevicesColumns[0]},
	}
	// SitesColumns holds the columns for the "sites" table.
	SitesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planned", "active", "closed"}, Default: "planned"},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SitesTable holds the schema information for the "sites" table.
	SitesTable = &schema.Table{
		Name:       "sites",
		Columns:    SitesColumns,
		PrimaryKey: []*schema.Column{SitesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "site_status",
				Unique:  false,
				Columns: []*schema.Column{SitesColumns[5]},
			},
			{
				Name:    "site_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SitesColumns[9]},
			},
		},
	}
	// WorkOrdersColumns holds the columns for the "work_orders" table.
	WorkOrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "reference", Type: field.TypeString, Size: 64},
		{Name: "site_id", Type: field.TypeInt64, Nullable: true},
		{Name: "company_id", Type: field.TypeInt64, Nullable: true},
		{Name: "work_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "signed", "done"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkOrdersTable holds the schema information for the "work_orders" table.
	WorkOrdersTable = &schema.Table{
		Name:       "work_orders",
		Columns:    WorkOrdersColumns,
		PrimaryKey: []*schema.Column{WorkOrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workorder_site_id",
				Unique:  false,
				Columns: []*schema.Column{WorkOrdersColumns[2]},
			},
			{
				Name:    "workorder_reference",
				Unique:  true,
				Columns: []*schema.Column{WorkOrdersColumns[1]},
			},
		},
	}
	// WorkPermitsColumns holds the columns for the "work_permits" table.
	WorkPermitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "logo", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkPermitsTable holds the schema information for the "work_permits" table.
	WorkPermitsTable = &schema.Table{
		Name:       "work_permits",
		Columns:    WorkPermitsColumns,
		PrimaryKey: []*schema.Column{WorkPermitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workpermit_valid_until",
				Unique:  false,
				Columns: []*schema.Column{WorkPermitsColumns[3]},
			},
		},
	}
	// WorkersColumns holds the columns for the "workers" table.
	WorkersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "company_id", Type: field.TypeInt64, Nullable: true},
		{Name: "certifications", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkersTable holds the schema information for the "workers" table.
	WorkersTable = &schema.Table{
		Name:       "workers",
		Columns:    WorkersColumns,
		PrimaryKey: []*schema.Column{WorkersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "worker_company_id",
				Unique:  false,
				Columns: []*schema.Column{WorkersColumns[5]},
			},
			{
				Name:    "worker_last_name",
				Unique:  false,
				Columns: []*schema.Column{WorkersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		CompaniesTable,
		PreventionPlansTable,
		RelationsTable,
		RisksTable,
		RiskAnalysesTable,
		SafetyAuditsTable,
		SafetyDevicesTable,
		SitesTable,
		WorkOrdersTable,
		WorkPermitsTable,
		WorkersTable,
	}
)

func init() {
}
