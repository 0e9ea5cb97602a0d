package constants

import "strings"

// Closed vocabularies for contract fields. The AI response sanitizer nulls out
// anything outside these sets, so the exact strings matter.
var (
	ContractTypes = []string{"lease", "service_agreement", "maintenance", "insurance", "software", "other"}
	Directions    = []string{"inbound", "outbound"}
	RenewalTerms  = []string{"month-to-month", "annual", "2-year", "custom"}
	ClauseTypes   = []string{"termination", "renewal", "penalty", "sla", "price_escalation", "liability", "insurance_requirement"}
)

// DirectionDefault is the direction a contract carries until something
// (the user or a full-mode analysis) overrides it.
const DirectionDefault = "outbound"

func ValidContractType(s string) bool { return contains(ContractTypes, s) }
func ValidDirection(s string) bool    { return contains(Directions, s) }
func ValidRenewalTerm(s string) bool  { return contains(RenewalTerms, s) }
func ValidClauseType(s string) bool   { return contains(ClauseTypes, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// DocumentType categorizes an uploaded document within its contract.
type DocumentType string

const (
	DocMainContract DocumentType = "main_contract"
	DocAddendum     DocumentType = "addendum"
	DocAmendment    DocumentType = "amendment"
	DocExhibit      DocumentType = "exhibit"
	DocSOW          DocumentType = "sow"
	DocOther        DocumentType = "other"
)

var DocumentTypes = []string{
	string(DocMainContract),
	string(DocAddendum),
	string(DocAmendment),
	string(DocExhibit),
	string(DocSOW),
	string(DocOther),
}

// Label renders the human-readable form used in prompt document headers,
// e.g. "main_contract" -> "Main Contract", "sow" -> "Sow".
func (d DocumentType) Label() string {
	parts := strings.Split(string(d), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
