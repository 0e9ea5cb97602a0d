// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contract type in the database.
	Label = "contract"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldVendorName holds the string denoting the vendor_name field in the database.
	FieldVendorName = "vendor_name"
	// FieldContractType holds the string denoting the contract_type field in the database.
	FieldContractType = "contract_type"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldMonthlyValue holds the string denoting the monthly_value field in the database.
	FieldMonthlyValue = "monthly_value"
	// FieldTotalValue holds the string denoting the total_value field in the database.
	FieldTotalValue = "total_value"
	// FieldAutoRenews holds the string denoting the auto_renews field in the database.
	FieldAutoRenews = "auto_renews"
	// FieldRenewalTerm holds the string denoting the renewal_term field in the database.
	FieldRenewalTerm = "renewal_term"
	// FieldNoticePeriodDays holds the string denoting the notice_period_days field in the database.
	FieldNoticePeriodDays = "notice_period_days"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldExtractionStatus holds the string denoting the extraction_status field in the database.
	FieldExtractionStatus = "extraction_status"
	// FieldBaselineJSON holds the string denoting the baseline_json field in the database.
	FieldBaselineJSON = "baseline_json"
	// FieldLastChangesSummary holds the string denoting the last_changes_summary field in the database.
	FieldLastChangesSummary = "last_changes_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOrganization holds the string denoting the organization edge name in mutations.
	EdgeOrganization = "organization"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeClauses holds the string denoting the clauses edge name in mutations.
	EdgeClauses = "clauses"
	// Table holds the table name of the contract in the database.
	Table = "contracts"
	// OrganizationTable is the table that holds the organization relation/edge.
	OrganizationTable = "contracts"
	// OrganizationInverseTable is the table name for the Organization entity.
	// It exists in this package in order to avoid circular dependency with the "organization" package.
	OrganizationInverseTable = "organizations"
	// OrganizationColumn is the table column denoting the organization relation/edge.
	OrganizationColumn = "organization_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "contract_documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "contract_documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "contract_id"
	// ClausesTable is the table that holds the clauses relation/edge.
	ClausesTable = "contract_clauses"
	// ClausesInverseTable is the table name for the Clause entity.
	// It exists in this package in order to avoid circular dependency with the "clause" package.
	ClausesInverseTable = "contract_clauses"
	// ClausesColumn is the table column denoting the clauses relation/edge.
	ClausesColumn = "contract_id"
)

// Columns holds all SQL columns for contract fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldTitle,
	FieldVendorName,
	FieldContractType,
	FieldDirection,
	FieldStartDate,
	FieldEndDate,
	FieldMonthlyValue,
	FieldTotalValue,
	FieldAutoRenews,
	FieldRenewalTerm,
	FieldNoticePeriodDays,
	FieldNotes,
	FieldExtractionStatus,
	FieldBaselineJSON,
	FieldLastChangesSummary,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// ContractTypeValidator is a validator for the "contract_type" field. It is called by the builders before save.
	ContractTypeValidator func(string) error
	// DefaultDirection holds the default value on creation for the "direction" field.
	DefaultDirection string
	// DirectionValidator is a validator for the "direction" field. It is called by the builders before save.
	DirectionValidator func(string) error
	// DefaultAutoRenews holds the default value on creation for the "auto_renews" field.
	DefaultAutoRenews bool
	// RenewalTermValidator is a validator for the "renewal_term" field. It is called by the builders before save.
	RenewalTermValidator func(string) error
	// NoticePeriodDaysValidator is a validator for the "notice_period_days" field. It is called by the builders before save.
	NoticePeriodDaysValidator func(int) error
	// DefaultExtractionStatus holds the default value on creation for the "extraction_status" field.
	DefaultExtractionStatus string
	// ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	ExtractionStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Contract queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByVendorName orders the results by the vendor_name field.
func ByVendorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorName, opts...).ToFunc()
}

// ByContractType orders the results by the contract_type field.
func ByContractType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractType, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByMonthlyValue orders the results by the monthly_value field.
func ByMonthlyValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyValue, opts...).ToFunc()
}

// ByTotalValue orders the results by the total_value field.
func ByTotalValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalValue, opts...).ToFunc()
}

// ByAutoRenews orders the results by the auto_renews field.
func ByAutoRenews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoRenews, opts...).ToFunc()
}

// ByRenewalTerm orders the results by the renewal_term field.
func ByRenewalTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenewalTerm, opts...).ToFunc()
}

// ByNoticePeriodDays orders the results by the notice_period_days field.
func ByNoticePeriodDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoticePeriodDays, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByExtractionStatus orders the results by the extraction_status field.
func ByExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionStatus, opts...).ToFunc()
}

// ByBaselineJSON orders the results by the baseline_json field.
func ByBaselineJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineJSON, opts...).ToFunc()
}

// ByLastChangesSummary orders the results by the last_changes_summary field.
func ByLastChangesSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastChangesSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOrganizationField orders the results by organization field.
func ByOrganizationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrganizationStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByClausesCount orders the results by clauses count.
func ByClausesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClausesStep(), opts...)
	}
}

// ByClauses orders the results by clauses terms.
func ByClauses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClausesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOrganizationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrganizationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newClausesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClausesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClausesTable, ClausesColumn),
	)
}
