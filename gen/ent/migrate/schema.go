// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractClausesColumns holds the columns for the "contract_clauses" table.
	ContractClausesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "clause_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "page_reference", Type: field.TypeString, Nullable: true},
		{Name: "confidence_score", Type: field.TypeInt, Nullable: true},
		{Name: "source_document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// ContractClausesTable holds the schema information for the "contract_clauses" table.
	ContractClausesTable = &schema.Table{
		Name:       "contract_clauses",
		Columns:    ContractClausesColumns,
		PrimaryKey: []*schema.Column{ContractClausesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contract_clauses_contracts_clauses",
				Columns:    []*schema.Column{ContractClausesColumns[7]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clause_contract_id_clause_type",
				Unique:  false,
				Columns: []*schema.Column{ContractClausesColumns[7], ContractClausesColumns[1]},
			},
		},
	}
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "contract_type", Type: field.TypeString, Nullable: true},
		{Name: "direction", Type: field.TypeString, Default: "outbound"},
		{Name: "start_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "end_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "monthly_value", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "total_value", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "auto_renews", Type: field.TypeBool, Default: false},
		{Name: "renewal_term", Type: field.TypeString, Nullable: true},
		{Name: "notice_period_days", Type: field.TypeInt, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extraction_status", Type: field.TypeString, Default: "pending"},
		{Name: "baseline_json", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "last_changes_summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeUUID},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contracts_organizations_contracts",
				Columns:    []*schema.Column{ContractsColumns[18]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contract_organization_id_extraction_status",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[18], ContractsColumns[13]},
			},
			{
				Name:    "contract_organization_id_end_date",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[18], ContractsColumns[6]},
			},
		},
	}
	// ContractDocumentsColumns holds the columns for the "contract_documents" table.
	ContractDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "blob_key", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString, Default: "other"},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "extraction_status", Type: field.TypeString, Default: "pending"},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// ContractDocumentsTable holds the schema information for the "contract_documents" table.
	ContractDocumentsTable = &schema.Table{
		Name:       "contract_documents",
		Columns:    ContractDocumentsColumns,
		PrimaryKey: []*schema.Column{ContractDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contract_documents_contracts_documents",
				Columns:    []*schema.Column{ContractDocumentsColumns[11]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_contract_id_position",
				Unique:  false,
				Columns: []*schema.Column{ContractDocumentsColumns[11], ContractDocumentsColumns[5]},
			},
			{
				Name:    "document_contract_id_extraction_status",
				Unique:  false,
				Columns: []*schema.Column{ContractDocumentsColumns[11], ContractDocumentsColumns[6]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "plan", Type: field.TypeString, Default: "free"},
		{Name: "ai_extractions_count", Type: field.TypeInt, Default: 0},
		{Name: "ai_extractions_reset_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractClausesTable,
		ContractsTable,
		ContractDocumentsTable,
		OrganizationsTable,
	}
)

func init() {
	ContractClausesTable.ForeignKeys[0].RefTable = ContractsTable
	ContractClausesTable.Annotation = &entsql.Annotation{
		Table: "contract_clauses",
	}
	ContractsTable.ForeignKeys[0].RefTable = OrganizationsTable
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	ContractDocumentsTable.ForeignKeys[0].RefTable = ContractsTable
	ContractDocumentsTable.Annotation = &entsql.Annotation{
		Table: "contract_documents",
	}
	OrganizationsTable.Annotation = &entsql.Annotation{
		Table: "organizations",
	}
}
