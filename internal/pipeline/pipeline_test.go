package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/extract"
	"github.com/contractwatch/contractwatch/internal/llm"
	"github.com/contractwatch/contractwatch/internal/merge"
	"github.com/contractwatch/contractwatch/internal/repository"
)

// --- fakes ---

type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocs(docs ...*entity.Document) *fakeDocs {
	f := &fakeDocs{docs: make(map[uuid.UUID]*entity.Document)}
	for _, d := range docs {
		f.docs[d.ID] = d
	}
	return f
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocs) Create(_ context.Context, _ *repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, errors.New("not used")
}

func (f *fakeDocs) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, id)
	return nil
}

func (f *fakeDocs) ListByContract(_ context.Context, contractID uuid.UUID) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, d := range f.docs {
		if d.ContractID == contractID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDocs) ListCompleted(_ context.Context, contractID uuid.UUID) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, d := range f.docs {
		if d.ContractID == contractID && d.ExtractionStatus == constants.ExtractionCompleted {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDocs) AllTerminal(_ context.Context, contractID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.docs {
		if d.ContractID == contractID && !d.ExtractionStatus.Terminal() {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeDocs) setStatus(id uuid.UUID, s constants.ExtractionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	d.ExtractionStatus = s
	return nil
}

func (f *fakeDocs) MarkProcessing(_ context.Context, id uuid.UUID) error {
	return f.setStatus(id, constants.ExtractionProcessing)
}

func (f *fakeDocs) MarkCompleted(_ context.Context, id uuid.UUID, text string, pageCount *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	d.ExtractionStatus = constants.ExtractionCompleted
	d.ExtractedText = &text
	d.PageCount = pageCount
	return nil
}

func (f *fakeDocs) MarkFailed(_ context.Context, id uuid.UUID) error {
	return f.setStatus(id, constants.ExtractionFailed)
}

func (f *fakeDocs) MarkPending(_ context.Context, id uuid.UUID) error {
	return f.setStatus(id, constants.ExtractionPending)
}

type appliedAnalysis struct {
	ws       merge.WriteSet
	baseline string
}

type fakeContracts struct {
	mu       sync.Mutex
	contract *entity.Contract
	applied  []appliedAnalysis
	failures int

	// claimGate, when set, is closed once claimWant ClaimAnalysis attempts
	// have been made; tests use it to hold racers concurrent.
	claimGate     chan struct{}
	claimWant     int
	claimAttempts int
}

func (f *fakeContracts) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.contract == nil || f.contract.ID != id {
		return nil, common.ErrNotFound
	}
	cp := *f.contract
	return &cp, nil
}

func (f *fakeContracts) ListByOrganization(_ context.Context, _ uuid.UUID) ([]*entity.Contract, error) {
	return nil, errors.New("not used")
}

func (f *fakeContracts) ListClauses(_ context.Context, _ uuid.UUID) ([]*entity.Clause, error) {
	return nil, nil
}

func (f *fakeContracts) ClaimAnalysis(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.claimAttempts++
	if f.claimGate != nil && f.claimAttempts == f.claimWant {
		close(f.claimGate)
	}
	if f.contract == nil || f.contract.ID != id {
		return false, common.ErrNotFound
	}
	if f.contract.ExtractionStatus == constants.ExtractionProcessing {
		return false, nil
	}
	f.contract.ExtractionStatus = constants.ExtractionProcessing
	return true, nil
}

func (f *fakeContracts) MarkFailed(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures++
	f.contract.ExtractionStatus = constants.ExtractionFailed
	return nil
}

func (f *fakeContracts) MarkPending(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contract.ExtractionStatus = constants.ExtractionPending
	return nil
}

func (f *fakeContracts) ClearAnalysis(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contract.BaselineJSON = nil
	f.contract.ExtractionStatus = constants.ExtractionPending
	return nil
}

func (f *fakeContracts) ApplyAnalysis(_ context.Context, _ uuid.UUID, ws merge.WriteSet, baseline string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied = append(f.applied, appliedAnalysis{ws: ws, baseline: baseline})
	f.contract.ExtractionStatus = constants.ExtractionCompleted
	f.contract.BaselineJSON = &baseline
	return nil
}

type fakeLimiter struct {
	mu       sync.Mutex
	atLimit  bool
	recorded int
}

func (f *fakeLimiter) AtLimit(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.atLimit, nil
}

func (f *fakeLimiter) Record(_ context.Context, _ uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded++
	return true, nil
}

type fakeBlobs struct {
	blobs map[string][]byte
}

func (f *fakeBlobs) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.blobs[key] = b
	return nil
}

func (f *fakeBlobs) Open(_ context.Context, key string) (io.ReadCloser, error) {
	b, ok := f.blobs[key]
	if !ok {
		return nil, errors.New("blob missing")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

type fakeExtractor struct {
	result extract.Result
	err    error
}

func (f *fakeExtractor) Extract(_ []byte, _ string) (extract.Result, error) {
	return f.result, f.err
}

type queuedAnalysis struct {
	contractID uuid.UUID
	mode       llm.Mode
	newDocID   *uuid.UUID
}

type fakeQueue struct {
	mu       sync.Mutex
	extracts []uuid.UUID
	analyses []queuedAnalysis
}

func (f *fakeQueue) EnqueueExtractDocument(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.extracts = append(f.extracts, id)
	return nil
}

func (f *fakeQueue) EnqueueAnalyzeContract(_ context.Context, id uuid.UUID, mode llm.Mode, newDocID *uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyses = append(f.analyses, queuedAnalysis{contractID: id, mode: mode, newDocID: newDocID})
	return nil
}

type fakeModel struct {
	response string
	err      error
	prompts  []string

	// gate, when set, blocks Complete until closed; tests use it to keep
	// the claim winner in flight while the other racers attempt to claim.
	gate <-chan struct{}
}

func (f *fakeModel) Complete(_ context.Context, prompt string) (string, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// --- extraction stage ---

type coordinatorFixture struct {
	docs      *fakeDocs
	contracts *fakeContracts
	blobs     *fakeBlobs
	queue     *fakeQueue
	limiter   *fakeLimiter
	c         *Coordinator
}

func newCoordinatorFixture(t *testing.T, extractor extract.TextExtractor, docs ...*entity.Document) *coordinatorFixture {
	t.Helper()
	contract := &entity.Contract{
		ID:               uuid.New(),
		OrganizationID:   uuid.New(),
		Title:            "Test contract",
		Direction:        constants.DirectionDefault,
		ExtractionStatus: constants.ExtractionPending,
	}
	for _, d := range docs {
		d.ContractID = contract.ID
	}
	fx := &coordinatorFixture{
		docs:      newFakeDocs(docs...),
		contracts: &fakeContracts{contract: contract},
		blobs:     &fakeBlobs{blobs: map[string][]byte{"blob-1": []byte("raw bytes")}},
		queue:     &fakeQueue{},
		limiter:   &fakeLimiter{},
	}
	logger := slog.New(slog.DiscardHandler)
	fx.c = NewCoordinator(fx.docs, fx.contracts, fx.blobs, extractor, repository.NewMutexLocker(), fx.limiter, fx.queue, logger)
	return fx
}

func pendingDoc(filename string) *entity.Document {
	return &entity.Document{
		ID:               uuid.New(),
		Filename:         filename,
		ContentType:      "text/plain",
		BlobKey:          "blob-1",
		DocumentType:     constants.DocMainContract,
		ExtractionStatus: constants.ExtractionPending,
	}
}

func completedDoc(filename, text string) *entity.Document {
	d := pendingDoc(filename)
	d.ExtractionStatus = constants.ExtractionCompleted
	d.ExtractedText = &text
	return d
}

func TestExtractDocumentSuccessTriggersFullAnalysis(t *testing.T) {
	doc := pendingDoc("lease.txt")
	ex := &fakeExtractor{result: extract.Result{Text: "the lease text"}}
	fx := newCoordinatorFixture(t, ex, doc)

	if err := fx.c.ExtractDocument(context.Background(), doc.ID); err != nil {
		t.Fatalf("extract: %v", err)
	}

	got, _ := fx.docs.GetByID(context.Background(), doc.ID)
	if got.ExtractionStatus != constants.ExtractionCompleted {
		t.Errorf("status: got %s", got.ExtractionStatus)
	}
	if got.Text() != "the lease text" {
		t.Errorf("text: got %q", got.Text())
	}
	if len(fx.queue.analyses) != 1 {
		t.Fatalf("expected 1 analysis queued, got %d", len(fx.queue.analyses))
	}
	q := fx.queue.analyses[0]
	if q.mode != llm.ModeFull || q.newDocID != nil {
		t.Errorf("expected full mode without new doc, got %s %v", q.mode, q.newDocID)
	}
}

func TestExtractDocumentIncrementalWhenBaselineExists(t *testing.T) {
	doc := pendingDoc("amendment.txt")
	ex := &fakeExtractor{result: extract.Result{Text: "amendment text"}}
	fx := newCoordinatorFixture(t, ex, doc)
	baseline := `{"title":"Lease","key_clauses":[]}`
	fx.contracts.contract.BaselineJSON = &baseline

	if err := fx.c.ExtractDocument(context.Background(), doc.ID); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(fx.queue.analyses) != 1 {
		t.Fatalf("expected 1 analysis queued, got %d", len(fx.queue.analyses))
	}
	q := fx.queue.analyses[0]
	if q.mode != llm.ModeIncremental {
		t.Errorf("mode: got %s", q.mode)
	}
	if q.newDocID == nil || *q.newDocID != doc.ID {
		t.Errorf("new doc id: got %v", q.newDocID)
	}
}

func TestExtractDocumentCompletedSkipsReextraction(t *testing.T) {
	doc := completedDoc("lease.txt", "already here")
	fx := newCoordinatorFixture(t, &fakeExtractor{}, doc)

	if err := fx.c.ExtractDocument(context.Background(), doc.ID); err != nil {
		t.Fatalf("extract: %v", err)
	}
	got, _ := fx.docs.GetByID(context.Background(), doc.ID)
	if got.Text() != "already here" {
		t.Errorf("completed document must not be re-extracted, got %q", got.Text())
	}
	// A redelivered job still runs the completion check, recovering a
	// trigger lost after the document was marked completed.
	if len(fx.queue.analyses) != 1 {
		t.Fatalf("expected 1 analysis queued, got %d", len(fx.queue.analyses))
	}
	if fx.queue.analyses[0].mode != llm.ModeFull {
		t.Errorf("mode: got %s", fx.queue.analyses[0].mode)
	}
}

func TestExtractDocumentWaitsForSiblings(t *testing.T) {
	doc := pendingDoc("one.txt")
	sibling := pendingDoc("two.txt")
	ex := &fakeExtractor{result: extract.Result{Text: "text"}}
	fx := newCoordinatorFixture(t, ex, doc, sibling)

	if err := fx.c.ExtractDocument(context.Background(), doc.ID); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(fx.queue.analyses) != 0 {
		t.Errorf("analysis must wait for the sibling")
	}
}

func TestExtractDocumentFailureUnblocksSiblings(t *testing.T) {
	doc := pendingDoc("broken.bin")
	sibling := completedDoc("good.txt", "good text")
	ex := &fakeExtractor{err: common.ErrUnsupportedFormat}
	fx := newCoordinatorFixture(t, ex, doc, sibling)

	err := fx.c.ExtractDocument(context.Background(), doc.ID)
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("the extraction error surfaces after the completion check: %v", err)
	}
	if common.Retryable(err) {
		t.Error("an unsupported format must not be retried")
	}

	got, _ := fx.docs.GetByID(context.Background(), doc.ID)
	if got.ExtractionStatus != constants.ExtractionFailed {
		t.Errorf("status: got %s", got.ExtractionStatus)
	}
	if len(fx.queue.analyses) != 1 {
		t.Fatalf("the failed document was the last holdout; analysis should queue")
	}
	if fx.queue.analyses[0].mode != llm.ModeFull {
		t.Errorf("mode: got %s", fx.queue.analyses[0].mode)
	}
}

func TestExtractDocumentRetryableErrorPropagates(t *testing.T) {
	doc := pendingDoc("lease.txt")
	ex := &fakeExtractor{err: errors.New("transient storage error")}
	fx := newCoordinatorFixture(t, ex, doc)

	err := fx.c.ExtractDocument(context.Background(), doc.ID)
	if err == nil {
		t.Fatal("expected the transient error to propagate for retry")
	}
	got, _ := fx.docs.GetByID(context.Background(), doc.ID)
	if got.ExtractionStatus != constants.ExtractionFailed {
		t.Errorf("document should be failed between attempts, got %s", got.ExtractionStatus)
	}
	if len(fx.queue.analyses) != 0 {
		t.Errorf("no analysis on a transient failure")
	}

	// The retry starts over from the failed state.
	ex.err = nil
	ex.result = extract.Result{Text: "recovered text"}
	if err := fx.c.ExtractDocument(context.Background(), doc.ID); err != nil {
		t.Fatalf("retry: %v", err)
	}
	got, _ = fx.docs.GetByID(context.Background(), doc.ID)
	if got.ExtractionStatus != constants.ExtractionCompleted {
		t.Errorf("retry should complete, got %s", got.ExtractionStatus)
	}
	if len(fx.queue.analyses) != 1 {
		t.Errorf("the successful retry runs the completion check, got %d analyses", len(fx.queue.analyses))
	}
}

func TestExtractDocumentQuotaSkipsAnalysis(t *testing.T) {
	doc := pendingDoc("lease.txt")
	ex := &fakeExtractor{result: extract.Result{Text: "text"}}
	fx := newCoordinatorFixture(t, ex, doc)
	fx.limiter.atLimit = true

	if err := fx.c.ExtractDocument(context.Background(), doc.ID); err != nil {
		t.Fatalf("extract: %v", err)
	}
	got, _ := fx.docs.GetByID(context.Background(), doc.ID)
	if got.ExtractionStatus != constants.ExtractionCompleted {
		t.Errorf("extraction itself is not quota-gated, got %s", got.ExtractionStatus)
	}
	if len(fx.queue.analyses) != 0 {
		t.Errorf("quota-blocked contract must not queue an analysis")
	}
	if fx.contracts.contract.ExtractionStatus != constants.ExtractionPending {
		t.Errorf("contract status must stay untouched, got %s", fx.contracts.contract.ExtractionStatus)
	}
}

// --- analysis stage ---

const modelResponse = `{
	"title": "Office Lease",
	"vendor_name": "Acme Properties",
	"contract_type": "lease",
	"direction": "outbound",
	"start_date": "2026-01-01",
	"end_date": "2027-12-31",
	"monthly_value": 2500,
	"total_value": 60000,
	"auto_renews": true,
	"renewal_term": "annual",
	"notice_period_days": 60,
	"key_clauses": [
		{"clause_type": "termination", "content": "60 days written notice.", "source_document": "lease.txt", "confidence_score": 90}
	],
	"summary": "A two-year office lease."
}`

type orchestratorFixture struct {
	docs      *fakeDocs
	contracts *fakeContracts
	limiter   *fakeLimiter
	model     *fakeModel
	o         *Orchestrator
}

func newOrchestratorFixture(t *testing.T, model *fakeModel, docs ...*entity.Document) *orchestratorFixture {
	t.Helper()
	contract := &entity.Contract{
		ID:               uuid.New(),
		OrganizationID:   uuid.New(),
		Title:            "Test contract",
		Direction:        constants.DirectionDefault,
		ExtractionStatus: constants.ExtractionPending,
	}
	for _, d := range docs {
		d.ContractID = contract.ID
	}
	logger := slog.New(slog.DiscardHandler)
	fx := &orchestratorFixture{
		docs:      newFakeDocs(docs...),
		contracts: &fakeContracts{contract: contract},
		limiter:   &fakeLimiter{},
		model:     model,
	}
	fx.o = NewOrchestrator(fx.contracts, fx.docs, fx.limiter, model, merge.NewEngine(logger), logger)
	return fx
}

func TestAnalyzeContractSuccess(t *testing.T) {
	doc := completedDoc("lease.txt", "the lease text")
	fx := newOrchestratorFixture(t, &fakeModel{response: modelResponse}, doc)

	err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeFull, nil)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if len(fx.contracts.applied) != 1 {
		t.Fatalf("expected one applied analysis, got %d", len(fx.contracts.applied))
	}
	a := fx.contracts.applied[0]
	if a.ws.VendorName == nil || *a.ws.VendorName != "Acme Properties" {
		t.Errorf("vendor write: got %v", a.ws.VendorName)
	}
	if len(a.ws.Clauses) != 1 {
		t.Fatalf("clause writes: got %d", len(a.ws.Clauses))
	}
	if a.ws.Clauses[0].SourceDocumentID == nil || *a.ws.Clauses[0].SourceDocumentID != doc.ID {
		t.Errorf("clause provenance should resolve by filename")
	}
	if !strings.Contains(a.baseline, `"vendor_name":"Acme Properties"`) {
		t.Errorf("baseline should carry the sanitized result: %s", a.baseline)
	}
	if fx.limiter.recorded != 1 {
		t.Errorf("quota should record exactly once, got %d", fx.limiter.recorded)
	}
	if fx.contracts.contract.ExtractionStatus != constants.ExtractionCompleted {
		t.Errorf("contract status: got %s", fx.contracts.contract.ExtractionStatus)
	}
}

func TestAnalyzeContractClauseProvenanceIgnoresFailedDocuments(t *testing.T) {
	doc := completedDoc("lease.txt", "the lease text")
	failed := pendingDoc("scan.pdf")
	failed.ExtractionStatus = constants.ExtractionFailed
	response := strings.Replace(modelResponse, `"source_document": "lease.txt"`, `"source_document": "scan.pdf"`, 1)
	fx := newOrchestratorFixture(t, &fakeModel{response: response}, doc, failed)

	if err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeFull, nil); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(fx.contracts.applied) != 1 {
		t.Fatalf("expected one applied analysis, got %d", len(fx.contracts.applied))
	}
	clauses := fx.contracts.applied[0].ws.Clauses
	if len(clauses) != 1 {
		t.Fatalf("clause writes: got %d", len(clauses))
	}
	// The failed document's text was never in the corpus, so a clause
	// citing its filename resolves to no source at all.
	if clauses[0].SourceDocumentID != nil {
		t.Errorf("clause provenance: got %v, want nil", clauses[0].SourceDocumentID)
	}
}

func TestAnalyzeContractQuotaLeavesStatusUnchanged(t *testing.T) {
	doc := completedDoc("lease.txt", "text")
	fx := newOrchestratorFixture(t, &fakeModel{response: modelResponse}, doc)
	fx.limiter.atLimit = true

	err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeFull, nil)
	if !errors.Is(err, common.ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
	if common.Retryable(err) {
		t.Error("quota errors must not retry")
	}
	if fx.contracts.contract.ExtractionStatus != constants.ExtractionPending {
		t.Errorf("status must stay unchanged, got %s", fx.contracts.contract.ExtractionStatus)
	}
	if len(fx.model.prompts) != 0 {
		t.Error("no model call when over quota")
	}
}

func TestAnalyzeContractClaimLostIsSilent(t *testing.T) {
	doc := completedDoc("lease.txt", "text")
	fx := newOrchestratorFixture(t, &fakeModel{response: modelResponse}, doc)
	fx.contracts.contract.ExtractionStatus = constants.ExtractionProcessing

	if err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeFull, nil); err != nil {
		t.Fatalf("losing the claim is not an error: %v", err)
	}
	if len(fx.model.prompts) != 0 {
		t.Error("the losing worker must not call the model")
	}
	if len(fx.contracts.applied) != 0 {
		t.Error("the losing worker must not write")
	}
}

func TestAnalyzeContractEmptyCorpusIsNoop(t *testing.T) {
	fx := newOrchestratorFixture(t, &fakeModel{response: modelResponse})

	if err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeFull, nil); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(fx.model.prompts) != 0 {
		t.Error("nothing to analyze, no model call")
	}
	if fx.contracts.contract.ExtractionStatus != constants.ExtractionPending {
		t.Errorf("status must stay unchanged, got %s", fx.contracts.contract.ExtractionStatus)
	}
}

func TestAnalyzeContractParseFailureIsRetryable(t *testing.T) {
	doc := completedDoc("lease.txt", "text")
	fx := newOrchestratorFixture(t, &fakeModel{response: "I could not find any JSON to return."}, doc)

	err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeFull, nil)
	if !errors.Is(err, common.ErrResponseParse) {
		t.Fatalf("expected ErrResponseParse, got %v", err)
	}
	if !common.Retryable(err) {
		t.Error("parse failures retry: the next response may be well-formed")
	}
	if fx.contracts.contract.ExtractionStatus != constants.ExtractionFailed {
		t.Errorf("contract should be marked failed between attempts, got %s", fx.contracts.contract.ExtractionStatus)
	}
}

func TestAnalyzeContractModelErrorMarksFailed(t *testing.T) {
	doc := completedDoc("lease.txt", "text")
	fx := newOrchestratorFixture(t, &fakeModel{err: errors.New("api 500")}, doc)

	err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeFull, nil)
	if err == nil {
		t.Fatal("expected the model error to propagate")
	}
	if fx.contracts.contract.ExtractionStatus != constants.ExtractionFailed {
		t.Errorf("status: got %s", fx.contracts.contract.ExtractionStatus)
	}
	if fx.limiter.recorded != 0 {
		t.Error("failed analyses must not consume quota")
	}
}

func TestAnalyzeContractInvalidBaselineFallsBackToFull(t *testing.T) {
	doc := completedDoc("lease.txt", "text")
	fx := newOrchestratorFixture(t, &fakeModel{response: modelResponse}, doc)
	bad := `{"key_clauses":"not an array"}`
	fx.contracts.contract.BaselineJSON = &bad

	if err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeIncremental, nil); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(fx.model.prompts) != 1 {
		t.Fatalf("prompts: got %d", len(fx.model.prompts))
	}
	if strings.Contains(fx.model.prompts[0], "PRIOR EXTRACTION RESULT") {
		t.Error("invalid baseline must degrade to a full-mode prompt")
	}
}

func TestAnalyzeContractIncrementalPromptCarriesBaseline(t *testing.T) {
	doc := completedDoc("lease.txt", "text")
	newDoc := completedDoc("amendment.txt", "amendment text")
	fx := newOrchestratorFixture(t, &fakeModel{response: modelResponse}, doc, newDoc)
	baseline := `{"title":"Lease","key_clauses":[]}`
	fx.contracts.contract.BaselineJSON = &baseline

	id := newDoc.ID
	if err := fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeIncremental, &id); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	prompt := fx.model.prompts[0]
	if !strings.Contains(prompt, baseline) {
		t.Error("baseline missing from the incremental prompt")
	}
	if !strings.Contains(prompt, `"amendment.txt"`) {
		t.Error("new document hint missing")
	}
}

func TestAnalyzeContractVanishedContract(t *testing.T) {
	fx := newOrchestratorFixture(t, &fakeModel{response: modelResponse})
	if err := fx.o.AnalyzeContract(context.Background(), uuid.New(), llm.ModeFull, nil); err != nil {
		t.Fatalf("a deleted contract is not an error: %v", err)
	}
}

// Two racing analyses: exactly one should win the claim and apply.
func TestAnalyzeContractConcurrentClaim(t *testing.T) {
	doc := completedDoc("lease.txt", "text")
	fx := newOrchestratorFixture(t, &fakeModel{response: modelResponse}, doc)

	// Hold the claim winner inside the model call until all 4 racers have
	// attempted ClaimAnalysis, so the losers race a genuinely in-flight run.
	gate := make(chan struct{})
	fx.contracts.claimGate = gate
	fx.contracts.claimWant = 4
	fx.model.gate = gate

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs[n] = fx.o.AnalyzeContract(context.Background(), fx.contracts.contract.ID, llm.ModeFull, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("racer %d: %v", i, err)
		}
	}
	if len(fx.contracts.applied) != 1 {
		t.Errorf("exactly one racer should apply, got %d", len(fx.contracts.applied))
	}
	if fx.limiter.recorded != 1 {
		t.Errorf("quota recorded once, got %d", fx.limiter.recorded)
	}
}
