package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization carries the quota bookkeeping consulted by the usage limiter.
type Organization struct {
	ID                    uuid.UUID  `json:"id"`
	Name                  string     `json:"name"`
	Plan                  string     `json:"plan"`
	AIExtractionsCount    int        `json:"ai_extractions_count"`
	AIExtractionsResetAt  *time.Time `json:"ai_extractions_reset_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
