package llm

import (
	"fmt"
	"strings"

	"github.com/contractwatch/contractwatch/internal/entity"
)

// MaxInputChars caps the combined document corpus. ~400k chars is roughly
// 100k tokens, safely under the model's context window.
const MaxInputChars = 400_000

// sectionOverheadSlack is reserved per document on top of its header line
// when computing the truncation budget.
const sectionOverheadSlack = 20

const jsonSchemaText = `{
  "title": "A short descriptive title for this contract",
  "vendor_name": "The other party / vendor / landlord name",
  "contract_type": "One of: lease, service_agreement, maintenance, insurance, software, other",
  "direction": "inbound if the organization receiving this contract is being paid (revenue), outbound if the organization is paying (expense)",
  "start_date": "YYYY-MM-DD or null",
  "end_date": "YYYY-MM-DD or null",
  "monthly_value": numeric or null,
  "total_value": numeric or null,
  "auto_renews": true or false,
  "renewal_term": "month-to-month, annual, 2-year, or custom",
  "notice_period_days": numeric or null,
  "key_clauses": [
    {
      "clause_type": "One of: termination, renewal, penalty, sla, price_escalation, liability, insurance_requirement",
      "content": "The actual clause text or summary",
      "page_reference": "Page X or Section Y",
      "confidence_score": 0-100,
      "source_document": "The exact filename of the document this clause came from"
    }
  ],
  "summary": "2-3 sentence summary of the contract"
}`

const fullPromptHeader = `You are a contract analysis assistant. You will receive text from one or more contract documents.
Each document is labeled with a header like:
  === DOCUMENT 1: "filename.pdf" (Type: Main Contract) ===

Documents may include a main contract plus addendums, amendments, exhibits, or SOWs.
When there are multiple documents:
- Amendments and addendums OVERRIDE conflicting terms in the main contract.
- Later documents take precedence over earlier ones for the same field.
- Combine key clauses from ALL documents.

Return ONLY valid JSON with these fields (no markdown, no explanation):
` + jsonSchemaText + `

Be precise with dates and monetary values. If information is not found, use null.
For direction: if the contract describes services/goods being provided TO the organization (they pay), use "outbound". If the organization is providing services/goods and will be paid, use "inbound". Default to "outbound" if unclear.
For key clauses, include the most important ones that affect renewals, costs, and obligations.
For source_document, use the EXACT filename from the document header.

CONTRACT DOCUMENTS:
`

const incrementalPromptHeader = `You are a contract analysis assistant. A contract has already been analyzed and you are now given an additional document (addendum, amendment, exhibit, etc.) that was just uploaded.

PRIOR EXTRACTION RESULT (JSON):
%s

A new document has been added. Re-analyze the full contract considering this new document.
The new document may override or supplement terms from the prior extraction.
Amendments and addendums OVERRIDE conflicting terms in the main contract.

Return ONLY valid JSON with these fields (no markdown, no explanation):
` + jsonSchemaText + `

Also include an additional field:
  "changes_summary": "A brief human-readable summary of what changed compared to the prior extraction (e.g., 'End date extended from 2025-12-31 to 2026-06-30. Added SLA penalty clause.')"

Be precise with dates and monetary values. If information is not found, use null.
For direction: if the contract describes services/goods being provided TO the organization (they pay), use "outbound". If the organization is providing services/goods and will be paid, use "inbound". Default to "outbound" if unclear.
For key clauses, return the COMPLETE updated set of clauses from ALL documents (not just the new one).
For source_document, use the EXACT filename from the document header.

CONTRACT DOCUMENTS:
`

// BuildDocumentCorpus assembles the labeled, size-bounded corpus from the
// contract's completed documents, in position order.
func BuildDocumentCorpus(docs []*entity.Document) string {
	if len(docs) == 0 {
		return ""
	}
	sections := make([]string, len(docs))
	for i, doc := range docs {
		header := fmt.Sprintf("=== DOCUMENT %d: \"%s\" (Type: %s) ===", i+1, doc.Filename, doc.DocumentType.Label())
		sections[i] = header + "\n" + strings.TrimSpace(doc.Text())
	}

	combined := strings.Join(sections, "\n\n")
	if len(combined) > MaxInputChars {
		return truncateProportionally(sections)
	}
	return combined
}

// truncateProportionally gives each document a share of the available budget
// proportional to its own text length. Documents over their share keep the
// first 60% and last 40% of it with an explicit omission marker. The 60/40
// split is a tunable heuristic, not a load-bearing invariant.
func truncateProportionally(sections []string) string {
	overhead := 0
	for _, s := range sections {
		overhead += len(firstLine(s)) + sectionOverheadSlack
	}
	available := MaxInputChars - overhead
	if available <= 0 {
		// Budget exhausted by headers alone; fall back to the first
		// document's section truncated to the hard ceiling.
		s := sections[0]
		if len(s) > MaxInputChars {
			s = s[:runeBoundary(s, MaxInputChars)]
		}
		return s
	}

	totalLen := 0
	for _, s := range sections {
		totalLen += len(s)
	}

	out := make([]string, len(sections))
	for i, section := range sections {
		header := firstLine(section)
		body := section[len(header):]

		share := int(float64(len(body)) / float64(totalLen) * float64(available))
		if len(body) <= share {
			out[i] = section
			continue
		}
		keepStart := runeBoundary(body, int(float64(share)*0.6))
		tailStart := runeBoundary(body, len(body)-int(float64(share)*0.4))
		out[i] = fmt.Sprintf("%s%s\n\n[... %d characters truncated for length ...]\n\n%s",
			header, body[:keepStart], tailStart-keepStart, body[tailStart:])
	}
	return strings.Join(out, "\n\n")
}

// runeBoundary snaps i down so s[:i] never ends mid-rune.
func runeBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && s[i]&0xC0 == 0x80 {
		i--
	}
	return i
}

// firstLine returns everything up to and including the first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i+1]
	}
	return s
}

// BuildPrompt selects the instruction template for the mode and appends the
// document corpus. For incremental mode the prior baseline JSON is embedded
// verbatim, and newDoc (when known) adds a focus note for the model.
func BuildPrompt(mode Mode, corpus, baselineJSON string, newDoc *entity.Document) string {
	if mode != ModeIncremental {
		return fullPromptHeader + "\n" + corpus
	}

	hint := ""
	if newDoc != nil {
		hint = fmt.Sprintf("\n\nThe newly uploaded document is: \"%s\" (Type: %s). Pay special attention to how it modifies or supplements the existing contract terms.\n",
			newDoc.Filename, newDoc.DocumentType.Label())
	}
	return fmt.Sprintf(incrementalPromptHeader, baselineJSON) + hint + "\n" + corpus
}
