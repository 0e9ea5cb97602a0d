// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/contractwatch/contractwatch/gen/ent/contract"
	"github.com/contractwatch/contractwatch/gen/ent/organization"
	"github.com/google/uuid"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID uuid.UUID `json:"organization_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName *string `json:"vendor_name,omitempty"`
	// ContractType holds the value of the "contract_type" field.
	ContractType *string `json:"contract_type,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction string `json:"direction,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate *time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate *time.Time `json:"end_date,omitempty"`
	// MonthlyValue holds the value of the "monthly_value" field.
	MonthlyValue *float64 `json:"monthly_value,omitempty"`
	// TotalValue holds the value of the "total_value" field.
	TotalValue *float64 `json:"total_value,omitempty"`
	// AutoRenews holds the value of the "auto_renews" field.
	AutoRenews bool `json:"auto_renews,omitempty"`
	// RenewalTerm holds the value of the "renewal_term" field.
	RenewalTerm *string `json:"renewal_term,omitempty"`
	// NoticePeriodDays holds the value of the "notice_period_days" field.
	NoticePeriodDays *int `json:"notice_period_days,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// ExtractionStatus holds the value of the "extraction_status" field.
	ExtractionStatus string `json:"extraction_status,omitempty"`
	// BaselineJSON holds the value of the "baseline_json" field.
	BaselineJSON *string `json:"baseline_json,omitempty"`
	// LastChangesSummary holds the value of the "last_changes_summary" field.
	LastChangesSummary *string `json:"last_changes_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges        ContractEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// Organization holds the value of the organization edge.
	Organization *Organization `json:"organization,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// Clauses holds the value of the clauses edge.
	Clauses []*Clause `json:"clauses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) OrganizationOrErr() (*Organization, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organization.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// ClausesOrErr returns the Clauses value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) ClausesOrErr() ([]*Clause, error) {
	if e.loadedTypes[2] {
		return e.Clauses, nil
	}
	return nil, &NotLoadedError{edge: "clauses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldAutoRenews:
			values[i] = new(sql.NullBool)
		case contract.FieldMonthlyValue, contract.FieldTotalValue:
			values[i] = new(sql.NullFloat64)
		case contract.FieldNoticePeriodDays:
			values[i] = new(sql.NullInt64)
		case contract.FieldTitle, contract.FieldVendorName, contract.FieldContractType, contract.FieldDirection, contract.FieldRenewalTerm, contract.FieldNotes, contract.FieldExtractionStatus, contract.FieldBaselineJSON, contract.FieldLastChangesSummary:
			values[i] = new(sql.NullString)
		case contract.FieldStartDate, contract.FieldEndDate, contract.FieldCreatedAt, contract.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contract.FieldID, contract.FieldOrganizationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contract.FieldOrganizationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value != nil {
				_m.OrganizationID = *value
			}
		case contract.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case contract.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = new(string)
				*_m.VendorName = value.String
			}
		case contract.FieldContractType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_type", values[i])
			} else if value.Valid {
				_m.ContractType = new(string)
				*_m.ContractType = value.String
			}
		case contract.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = value.String
			}
		case contract.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = new(time.Time)
				*_m.StartDate = value.Time
			}
		case contract.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = new(time.Time)
				*_m.EndDate = value.Time
			}
		case contract.FieldMonthlyValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_value", values[i])
			} else if value.Valid {
				_m.MonthlyValue = new(float64)
				*_m.MonthlyValue = value.Float64
			}
		case contract.FieldTotalValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_value", values[i])
			} else if value.Valid {
				_m.TotalValue = new(float64)
				*_m.TotalValue = value.Float64
			}
		case contract.FieldAutoRenews:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_renews", values[i])
			} else if value.Valid {
				_m.AutoRenews = value.Bool
			}
		case contract.FieldRenewalTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field renewal_term", values[i])
			} else if value.Valid {
				_m.RenewalTerm = new(string)
				*_m.RenewalTerm = value.String
			}
		case contract.FieldNoticePeriodDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field notice_period_days", values[i])
			} else if value.Valid {
				_m.NoticePeriodDays = new(int)
				*_m.NoticePeriodDays = int(value.Int64)
			}
		case contract.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case contract.FieldExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_status", values[i])
			} else if value.Valid {
				_m.ExtractionStatus = value.String
			}
		case contract.FieldBaselineJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_json", values[i])
			} else if value.Valid {
				_m.BaselineJSON = new(string)
				*_m.BaselineJSON = value.String
			}
		case contract.FieldLastChangesSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_changes_summary", values[i])
			} else if value.Valid {
				_m.LastChangesSummary = new(string)
				*_m.LastChangesSummary = value.String
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contract.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrganization queries the "organization" edge of the Contract entity.
func (_m *Contract) QueryOrganization() *OrganizationQuery {
	return NewContractClient(_m.config).QueryOrganization(_m)
}

// QueryDocuments queries the "documents" edge of the Contract entity.
func (_m *Contract) QueryDocuments() *DocumentQuery {
	return NewContractClient(_m.config).QueryDocuments(_m)
}

// QueryClauses queries the "clauses" edge of the Contract entity.
func (_m *Contract) QueryClauses() *ClauseQuery {
	return NewContractClient(_m.config).QueryClauses(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrganizationID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.VendorName; v != nil {
		builder.WriteString("vendor_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContractType; v != nil {
		builder.WriteString("contract_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(_m.Direction)
	builder.WriteString(", ")
	if v := _m.StartDate; v != nil {
		builder.WriteString("start_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndDate; v != nil {
		builder.WriteString("end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MonthlyValue; v != nil {
		builder.WriteString("monthly_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalValue; v != nil {
		builder.WriteString("total_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("auto_renews=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoRenews))
	builder.WriteString(", ")
	if v := _m.RenewalTerm; v != nil {
		builder.WriteString("renewal_term=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NoticePeriodDays; v != nil {
		builder.WriteString("notice_period_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_status=")
	builder.WriteString(_m.ExtractionStatus)
	builder.WriteString(", ")
	if v := _m.BaselineJSON; v != nil {
		builder.WriteString("baseline_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastChangesSummary; v != nil {
		builder.WriteString("last_changes_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
