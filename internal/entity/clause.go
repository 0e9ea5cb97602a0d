package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clause represents a key clause derived by one analysis run. The full set
// for a contract is disposable: every successful analysis replaces it.
type Clause struct {
	ID               uuid.UUID  `json:"id"`
	ContractID       uuid.UUID  `json:"contract_id"`
	ClauseType       string     `json:"clause_type"`
	Content          string     `json:"content"`
	PageReference    *string    `json:"page_reference,omitempty"`
	ConfidenceScore  *int       `json:"confidence_score,omitempty"`
	SourceDocumentID *uuid.UUID `json:"source_document_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
