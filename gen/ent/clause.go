// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/contractwatch/contractwatch/gen/ent/clause"
	"github.com/contractwatch/contractwatch/gen/ent/contract"
	"github.com/google/uuid"
)

// Clause is the model entity for the Clause schema.
type Clause struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// ClauseType holds the value of the "clause_type" field.
	ClauseType string `json:"clause_type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// PageReference holds the value of the "page_reference" field.
	PageReference *string `json:"page_reference,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *int `json:"confidence_score,omitempty"`
	// SourceDocumentID holds the value of the "source_document_id" field.
	SourceDocumentID *uuid.UUID `json:"source_document_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClauseQuery when eager-loading is set.
	Edges        ClauseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClauseEdges holds the relations/edges for other nodes in the graph.
type ClauseEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClauseEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Clause) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clause.FieldSourceDocumentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case clause.FieldConfidenceScore:
			values[i] = new(sql.NullInt64)
		case clause.FieldClauseType, clause.FieldContent, clause.FieldPageReference:
			values[i] = new(sql.NullString)
		case clause.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case clause.FieldID, clause.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Clause fields.
func (_m *Clause) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clause.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clause.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case clause.FieldClauseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clause_type", values[i])
			} else if value.Valid {
				_m.ClauseType = value.String
			}
		case clause.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case clause.FieldPageReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_reference", values[i])
			} else if value.Valid {
				_m.PageReference = new(string)
				*_m.PageReference = value.String
			}
		case clause.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(int)
				*_m.ConfidenceScore = int(value.Int64)
			}
		case clause.FieldSourceDocumentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_document_id", values[i])
			} else if value.Valid {
				_m.SourceDocumentID = new(uuid.UUID)
				*_m.SourceDocumentID = *value.S.(*uuid.UUID)
			}
		case clause.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Clause.
// This includes values selected through modifiers, order, etc.
func (_m *Clause) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the Clause entity.
func (_m *Clause) QueryContract() *ContractQuery {
	return NewClauseClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this Clause.
// Note that you need to call Clause.Unwrap() before calling this method if this Clause
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Clause) Update() *ClauseUpdateOne {
	return NewClauseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Clause entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Clause) Unwrap() *Clause {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Clause is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Clause) String() string {
	var builder strings.Builder
	builder.WriteString("Clause(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("clause_type=")
	builder.WriteString(_m.ClauseType)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.PageReference; v != nil {
		builder.WriteString("page_reference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SourceDocumentID; v != nil {
		builder.WriteString("source_document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Clauses is a parsable slice of Clause.
type Clauses []*Clause
