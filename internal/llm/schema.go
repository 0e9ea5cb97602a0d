package llm

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// baselineSchema structurally validates a stored baseline before it is used
// as the incremental diff reference. Field values are loose by design (the
// sanitizer already coerced them); this only rejects baselines whose shape
// rotted, e.g. after a manual DB edit.
const baselineSchema = `{
  "type": "object",
  "properties": {
    "title": {"type": ["string", "null"]},
    "vendor_name": {"type": ["string", "null"]},
    "contract_type": {"type": ["string", "null"]},
    "direction": {"type": ["string", "null"]},
    "start_date": {"type": ["string", "null"]},
    "end_date": {"type": ["string", "null"]},
    "monthly_value": {"type": ["number", "null"]},
    "total_value": {"type": ["number", "null"]},
    "auto_renews": {"type": ["boolean", "null"]},
    "renewal_term": {"type": ["string", "null"]},
    "notice_period_days": {"type": ["integer", "null"]},
    "key_clauses": {"type": "array"},
    "summary": {"type": ["string", "null"]}
  },
  "required": ["key_clauses"]
}`

var compiledBaselineSchema = jsonschema.MustCompileString("baseline.json", baselineSchema)

// ValidateBaselineJSON reports whether a stored baseline is structurally
// usable. Callers fall back to full mode when it is not.
func ValidateBaselineJSON(baseline string) error {
	var doc any
	if err := json.Unmarshal([]byte(baseline), &doc); err != nil {
		return fmt.Errorf("decode baseline: %w", err)
	}
	if err := compiledBaselineSchema.Validate(doc); err != nil {
		return fmt.Errorf("validate baseline: %w", err)
	}
	return nil
}
