package merge

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/llm"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }
func boolPtr(b bool) *bool        { return &b }

func datePtr(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func newEngine() *Engine {
	return NewEngine(slog.New(slog.DiscardHandler))
}

func blankContract() *entity.Contract {
	return &entity.Contract{
		ID:        uuid.New(),
		Title:     "Untitled contract",
		Direction: constants.DirectionDefault,
	}
}

func TestFullModeFillsBlanksOnly(t *testing.T) {
	contract := blankContract()
	contract.VendorName = strPtr("Existing Vendor")
	contract.MonthlyValue = floatPtr(1000)

	cand := &llm.Candidate{
		VendorName:       strPtr("Model Vendor"),
		ContractType:     strPtr("lease"),
		MonthlyValue:     floatPtr(2500),
		TotalValue:       floatPtr(60000),
		NoticePeriodDays: intPtr(30),
	}

	ws := newEngine().Build(llm.ModeFull, contract, cand, nil)

	if ws.VendorName != nil {
		t.Errorf("populated vendor must survive, got %v", *ws.VendorName)
	}
	if ws.MonthlyValue != nil {
		t.Errorf("populated monthly value must survive, got %v", *ws.MonthlyValue)
	}
	if ws.ContractType == nil || *ws.ContractType != "lease" {
		t.Errorf("blank contract type should fill, got %v", ws.ContractType)
	}
	if ws.TotalValue == nil || *ws.TotalValue != 60000 {
		t.Errorf("blank total should fill, got %v", ws.TotalValue)
	}
	if ws.NoticePeriodDays == nil || *ws.NoticePeriodDays != 30 {
		t.Errorf("blank notice period should fill, got %v", ws.NoticePeriodDays)
	}
}

func TestFullModeDirectionOnlyOverridesDefault(t *testing.T) {
	e := newEngine()

	contract := blankContract()
	cand := &llm.Candidate{Direction: strPtr("inbound")}
	ws := e.Build(llm.ModeFull, contract, cand, nil)
	if ws.Direction == nil || *ws.Direction != "inbound" {
		t.Errorf("default direction should be overridable, got %v", ws.Direction)
	}

	contract.Direction = "inbound"
	cand = &llm.Candidate{Direction: strPtr("outbound")}
	ws = e.Build(llm.ModeFull, contract, cand, nil)
	if ws.Direction != nil {
		t.Errorf("non-default direction must survive, got %v", *ws.Direction)
	}
}

func TestFullModeAppliesAutoRenews(t *testing.T) {
	contract := blankContract()
	contract.AutoRenews = false
	ws := newEngine().Build(llm.ModeFull, contract, &llm.Candidate{AutoRenews: boolPtr(true)}, nil)
	if ws.AutoRenews == nil || !*ws.AutoRenews {
		t.Errorf("auto_renews should apply in full mode, got %v", ws.AutoRenews)
	}

	ws = newEngine().Build(llm.ModeFull, contract, &llm.Candidate{}, nil)
	if ws.AutoRenews != nil {
		t.Errorf("nil candidate auto_renews should not touch the field")
	}
}

func TestFullModeSummaryFillsNotes(t *testing.T) {
	contract := blankContract()
	ws := newEngine().Build(llm.ModeFull, contract, &llm.Candidate{Summary: strPtr("A lease.")}, nil)
	if ws.Notes == nil || *ws.Notes != "A lease." {
		t.Errorf("summary should fill blank notes, got %v", ws.Notes)
	}

	contract.Notes = strPtr("my own notes")
	ws = newEngine().Build(llm.ModeFull, contract, &llm.Candidate{Summary: strPtr("A lease.")}, nil)
	if ws.Notes != nil {
		t.Errorf("user notes must survive a full analysis, got %v", *ws.Notes)
	}
}

// The re-analysis preservation scenario: the user corrected the end date
// after the first analysis. A new document arrives; the model restates the
// old end date. The user's edit must survive. But when the model reports a
// date that genuinely differs from the baseline, it wins.
func TestIncrementalPreservesUserEdits(t *testing.T) {
	e := newEngine()

	contract := blankContract()
	contract.EndDate = datePtr("2026-06-01") // user's manual correction
	contract.BaselineJSON = strPtr(`{"end_date":"2026-12-31","key_clauses":[]}`)

	// Candidate restates the baseline: no write.
	cand := &llm.Candidate{EndDate: strPtr("2026-12-31")}
	ws := e.Build(llm.ModeIncremental, contract, cand, nil)
	if ws.EndDate != nil {
		t.Errorf("restated baseline must not clobber the user edit, got %v", *ws.EndDate)
	}

	// Candidate differs from the baseline: new information wins.
	cand = &llm.Candidate{EndDate: strPtr("2027-06-30")}
	ws = e.Build(llm.ModeIncremental, contract, cand, nil)
	if ws.EndDate == nil || !ws.EndDate.Equal(*datePtr("2027-06-30")) {
		t.Errorf("changed value should apply, got %v", ws.EndDate)
	}
}

func TestIncrementalStringComparisonIsNormalized(t *testing.T) {
	contract := blankContract()
	contract.VendorName = strPtr("My Renamed Vendor")
	contract.BaselineJSON = strPtr(`{"vendor_name":"Acme Corp","key_clauses":[]}`)

	// Case and whitespace variations of the baseline value do not count as
	// a change.
	cand := &llm.Candidate{VendorName: strPtr("  ACME CORP ")}
	ws := newEngine().Build(llm.ModeIncremental, contract, cand, nil)
	if ws.VendorName != nil {
		t.Errorf("case-variant restatement should not write, got %v", *ws.VendorName)
	}
}

func TestIncrementalWithoutBaselineActsLikeFull(t *testing.T) {
	contract := blankContract()
	contract.VendorName = strPtr("Existing")

	cand := &llm.Candidate{VendorName: strPtr("Model Vendor"), ContractType: strPtr("software")}
	ws := newEngine().Build(llm.ModeIncremental, contract, cand, nil)

	if ws.VendorName != nil {
		t.Errorf("degraded full mode must not overwrite, got %v", *ws.VendorName)
	}
	if ws.ContractType == nil || *ws.ContractType != "software" {
		t.Errorf("degraded full mode should fill blanks, got %v", ws.ContractType)
	}
}

func TestClauseFiltering(t *testing.T) {
	docID := uuid.New()
	docIDs := map[string]uuid.UUID{"lease.pdf": docID}

	cand := &llm.Candidate{
		KeyClauses: []llm.CandidateClause{
			{ClauseType: "termination", Content: "30 days notice.", SourceDocument: strPtr("lease.pdf")},
			{ClauseType: "bogus_type", Content: "dropped"},
			{ClauseType: "renewal", Content: "   "},
			{ClauseType: "sla", Content: "99.9% uptime", SourceDocument: strPtr("unknown.pdf")},
		},
	}

	ws := newEngine().Build(llm.ModeFull, blankContract(), cand, docIDs)
	if len(ws.Clauses) != 2 {
		t.Fatalf("expected 2 surviving clauses, got %d", len(ws.Clauses))
	}
	if ws.Clauses[0].SourceDocumentID == nil || *ws.Clauses[0].SourceDocumentID != docID {
		t.Errorf("known filename should resolve to the document id")
	}
	if ws.Clauses[1].SourceDocumentID != nil {
		t.Errorf("unknown filename should leave provenance empty")
	}
}

func TestChangesSummaryPassesThrough(t *testing.T) {
	cand := &llm.Candidate{ChangesSummary: strPtr("End date extended.")}
	ws := newEngine().Build(llm.ModeFull, blankContract(), cand, nil)
	if ws.ChangesSummary == nil || *ws.ChangesSummary != "End date extended." {
		t.Errorf("changes summary: got %v", ws.ChangesSummary)
	}
}
