package constants

// ExtractionStatus is the canonical status for both contract_documents and
// contracts. The two state machines are independent but share the vocabulary.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	ExtractionPending    ExtractionStatus = "pending"
	ExtractionProcessing ExtractionStatus = "processing"
	ExtractionCompleted  ExtractionStatus = "completed"
	ExtractionFailed     ExtractionStatus = "failed"
)

// ExtractionStatuses holds the allowed values for the extraction_status columns.
var ExtractionStatuses = []string{
	string(ExtractionPending),
	string(ExtractionProcessing),
	string(ExtractionCompleted),
	string(ExtractionFailed),
}

// Terminal reports whether no further extraction attempt happens for a
// document in this status without an explicit re-trigger.
func (s ExtractionStatus) Terminal() bool {
	return s == ExtractionCompleted || s == ExtractionFailed
}
