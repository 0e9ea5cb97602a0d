package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
)

// Contract represents a contract aggregate for data transfer between layers.
// BaselineJSON is the last sanitized model output (minus changes summary),
// stored verbatim and replaced wholesale on every successful analysis.
type Contract struct {
	ID                 uuid.UUID                  `json:"id"`
	OrganizationID     uuid.UUID                  `json:"organization_id"`
	Title              string                     `json:"title"`
	VendorName         *string                    `json:"vendor_name,omitempty"`
	ContractType       *string                    `json:"contract_type,omitempty"`
	Direction          string                     `json:"direction"`
	StartDate          *time.Time                 `json:"start_date,omitempty"`
	EndDate            *time.Time                 `json:"end_date,omitempty"`
	MonthlyValue       *float64                   `json:"monthly_value,omitempty"`
	TotalValue         *float64                   `json:"total_value,omitempty"`
	AutoRenews         bool                       `json:"auto_renews"`
	RenewalTerm        *string                    `json:"renewal_term,omitempty"`
	NoticePeriodDays   *int                       `json:"notice_period_days,omitempty"`
	Notes              *string                    `json:"notes,omitempty"`
	ExtractionStatus   constants.ExtractionStatus `json:"extraction_status"`
	BaselineJSON       *string                    `json:"baseline_json,omitempty"`
	LastChangesSummary *string                    `json:"last_changes_summary,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

// HasBaseline reports whether a prior analysis result is stored, which is
// what makes incremental mode possible.
func (c *Contract) HasBaseline() bool {
	return c.BaselineJSON != nil && *c.BaselineJSON != ""
}

func (c *Contract) Processing() bool {
	return c.ExtractionStatus == constants.ExtractionProcessing
}
