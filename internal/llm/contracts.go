package llm

import (
	"context"
	"encoding/json"
)

// Mode selects the analysis strategy.
type Mode string

const (
	// ModeFull combines all documents and only fills blank contract fields.
	ModeFull Mode = "full"
	// ModeIncremental diffs the new result against the stored baseline so
	// user edits survive re-analysis.
	ModeIncremental Mode = "incremental"
)

// Candidate is the sanitized, fully-typed shape of one model response.
// Nil means the model returned null or an unusable value for that field.
// JSON tags deliberately keep nulls: the marshalled form is the stored
// baseline used as the next incremental diff reference.
type Candidate struct {
	Title            *string           `json:"title"`
	VendorName       *string           `json:"vendor_name"`
	ContractType     *string           `json:"contract_type"`
	Direction        *string           `json:"direction"`
	StartDate        *string           `json:"start_date"`
	EndDate          *string           `json:"end_date"`
	MonthlyValue     *float64          `json:"monthly_value"`
	TotalValue       *float64          `json:"total_value"`
	AutoRenews       *bool             `json:"auto_renews"`
	RenewalTerm      *string           `json:"renewal_term"`
	NoticePeriodDays *int              `json:"notice_period_days"`
	KeyClauses       []CandidateClause `json:"key_clauses"`
	Summary          *string           `json:"summary"`
	ChangesSummary   *string           `json:"changes_summary,omitempty"`
}

// CandidateClause is one entry of the candidate's clause list. Invalid
// clause types and empty content survive sanitization; the merge engine
// drops them at materialization time.
type CandidateClause struct {
	ClauseType      string  `json:"clause_type"`
	Content         string  `json:"content"`
	PageReference   *string `json:"page_reference"`
	ConfidenceScore *int    `json:"confidence_score"`
	SourceDocument  *string `json:"source_document"`
}

// BaselineJSON renders the candidate as the stored baseline: the sanitized
// result verbatim, minus the change summary.
func (c *Candidate) BaselineJSON() (string, error) {
	cp := *c
	cp.ChangesSummary = nil
	b, err := json.Marshal(&cp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ModelClient issues a single bounded completion request and returns the
// text of the first content block.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
