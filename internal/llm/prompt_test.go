package llm

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/entity"
)

func doc(filename string, dt constants.DocumentType, text string) *entity.Document {
	return &entity.Document{
		Filename:      filename,
		DocumentType:  dt,
		ExtractedText: &text,
	}
}

func TestBuildDocumentCorpusHeaders(t *testing.T) {
	docs := []*entity.Document{
		doc("lease.pdf", constants.DocMainContract, "Lease body."),
		doc("addendum.docx", constants.DocAddendum, "Addendum body."),
	}
	corpus := BuildDocumentCorpus(docs)

	want := `=== DOCUMENT 1: "lease.pdf" (Type: Main Contract) ===` + "\nLease body.\n\n" +
		`=== DOCUMENT 2: "addendum.docx" (Type: Addendum) ===` + "\nAddendum body."
	if corpus != want {
		t.Errorf("corpus:\n got %q\nwant %q", corpus, want)
	}
}

func TestBuildDocumentCorpusEmpty(t *testing.T) {
	if got := BuildDocumentCorpus(nil); got != "" {
		t.Errorf("expected empty corpus, got %q", got)
	}
}

func TestBuildDocumentCorpusProportionalTruncation(t *testing.T) {
	small := strings.Repeat("a", 300_000)
	large := strings.Repeat("b", 500_000)
	docs := []*entity.Document{
		doc("small.txt", constants.DocMainContract, small),
		doc("large.txt", constants.DocExhibit, large),
	}
	corpus := BuildDocumentCorpus(docs)

	// Markers and headers ride on a small per-section slack, so allow a
	// narrow margin over the budget.
	if len(corpus) > MaxInputChars+200 {
		t.Errorf("corpus too far over budget: %d chars", len(corpus))
	}
	if !strings.Contains(corpus, "characters truncated for length") {
		t.Fatal("expected omission markers")
	}

	// Each section keeps a share proportional to its length: the large
	// document gets roughly 500/800 of the budget, the small one 300/800.
	sections := strings.SplitN(corpus, "\n\n=== DOCUMENT 2", 2)
	if len(sections) != 2 {
		t.Fatalf("expected both documents in corpus")
	}
	smallPart := len(sections[0])
	largePart := len(sections[1])
	if smallPart >= largePart {
		t.Errorf("larger document should keep more text: small=%d large=%d", smallPart, largePart)
	}

	// The 60/40 split leaves text from both the start and the end of each
	// document around the marker.
	if !strings.Contains(corpus, "aa\n\n[...") || !strings.Contains(corpus, "...]\n\naa") {
		t.Error("small document should keep start and end around the marker")
	}
}

func TestBuildDocumentCorpusTruncationKeepsRunesIntact(t *testing.T) {
	// Multibyte text forces the 60/40 cut points onto rune boundaries.
	small := strings.Repeat("ä", 150_000)
	large := strings.Repeat("語", 170_000)
	docs := []*entity.Document{
		doc("small.txt", constants.DocMainContract, small),
		doc("large.txt", constants.DocExhibit, large),
	}
	corpus := BuildDocumentCorpus(docs)
	if !strings.Contains(corpus, "characters truncated for length") {
		t.Fatal("expected omission markers")
	}
	if !utf8.ValidString(corpus) {
		t.Error("truncation must not split a rune")
	}
}

func TestBuildDocumentCorpusHeaderOnlyFallback(t *testing.T) {
	// So many documents that headers alone exhaust the budget.
	docs := make([]*entity.Document, 0, 5000)
	for i := 0; i < 5000; i++ {
		name := fmt.Sprintf("%s-%04d.txt", strings.Repeat("n", 60), i)
		docs = append(docs, doc(name, constants.DocOther, strings.Repeat("x", 200)))
	}
	corpus := BuildDocumentCorpus(docs)
	if len(corpus) > MaxInputChars {
		t.Errorf("fallback must respect the hard ceiling, got %d", len(corpus))
	}
	if !strings.HasPrefix(corpus, `=== DOCUMENT 1:`) {
		t.Errorf("fallback should keep the first document, got prefix %q", corpus[:40])
	}
}

func TestBuildPromptFull(t *testing.T) {
	p := BuildPrompt(ModeFull, "CORPUS", "", nil)
	if !strings.HasSuffix(p, "\nCORPUS") {
		t.Error("corpus should end the prompt")
	}
	if !strings.Contains(p, "JSON") {
		t.Error("instructions should mention the JSON output contract")
	}
	if strings.Contains(p, "changes_summary") {
		t.Error("full prompt should not ask for a change summary")
	}
}

func TestBuildPromptIncremental(t *testing.T) {
	baseline := `{"title":"Lease"}`
	newDoc := doc("amendment2.pdf", constants.DocAmendment, "")
	p := BuildPrompt(ModeIncremental, "CORPUS", baseline, newDoc)

	if !strings.Contains(p, baseline) {
		t.Error("baseline JSON should be embedded verbatim")
	}
	if !strings.Contains(p, `"amendment2.pdf" (Type: Amendment)`) {
		t.Error("new document hint missing")
	}
	if !strings.Contains(p, "changes_summary") {
		t.Error("incremental prompt should ask for a change summary")
	}
	if !strings.HasSuffix(p, "\nCORPUS") {
		t.Error("corpus should end the prompt")
	}
}

func TestBuildPromptIncrementalWithoutNewDoc(t *testing.T) {
	p := BuildPrompt(ModeIncremental, "CORPUS", "{}", nil)
	if strings.Contains(p, "newly uploaded document") {
		t.Error("no hint expected without a new document")
	}
}
