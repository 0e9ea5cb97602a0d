package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/contractwatch/contractwatch/constants"
	contractsv1 "github.com/contractwatch/contractwatch/gen/proto/contracts/v1"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/llm"
	"github.com/contractwatch/contractwatch/internal/merge"
	"github.com/contractwatch/contractwatch/internal/repository"
)

// --- fakes ---

type stubContracts struct {
	contract      *entity.Contract
	markedPending int
	cleared       int
}

var _ repository.ContractRepository = (*stubContracts)(nil)

func (s *stubContracts) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	if s.contract == nil || s.contract.ID != id {
		return nil, common.ErrNotFound
	}
	cp := *s.contract
	return &cp, nil
}

func (s *stubContracts) ListByOrganization(_ context.Context, _ uuid.UUID) ([]*entity.Contract, error) {
	return nil, nil
}

func (s *stubContracts) ListClauses(_ context.Context, _ uuid.UUID) ([]*entity.Clause, error) {
	return nil, nil
}

func (s *stubContracts) ClaimAnalysis(_ context.Context, _ uuid.UUID) (bool, error) {
	return true, nil
}

func (s *stubContracts) MarkFailed(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubContracts) MarkPending(_ context.Context, _ uuid.UUID) error {
	s.markedPending++
	s.contract.ExtractionStatus = constants.ExtractionPending
	return nil
}

func (s *stubContracts) ApplyAnalysis(_ context.Context, _ uuid.UUID, _ merge.WriteSet, _ string) error {
	return nil
}

func (s *stubContracts) ClearAnalysis(_ context.Context, _ uuid.UUID) error {
	s.cleared++
	return nil
}

type stubDocs struct {
	docs    map[uuid.UUID]*entity.Document
	deleted []uuid.UUID
}

var _ repository.DocumentRepository = (*stubDocs)(nil)

func newStubDocs(docs ...*entity.Document) *stubDocs {
	s := &stubDocs{docs: make(map[uuid.UUID]*entity.Document)}
	for _, d := range docs {
		s.docs[d.ID] = d
	}
	return s
}

func (s *stubDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := s.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *stubDocs) Create(_ context.Context, _ *repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, nil
}

func (s *stubDocs) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.docs[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.docs, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubDocs) ListByContract(_ context.Context, contractID uuid.UUID) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range s.docs {
		if d.ContractID == contractID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *stubDocs) ListCompleted(_ context.Context, contractID uuid.UUID) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range s.docs {
		if d.ContractID == contractID && d.Completed() {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *stubDocs) AllTerminal(_ context.Context, contractID uuid.UUID) (bool, error) {
	for _, d := range s.docs {
		if d.ContractID == contractID && !d.ExtractionStatus.Terminal() {
			return false, nil
		}
	}
	return true, nil
}

func (s *stubDocs) MarkProcessing(_ context.Context, _ uuid.UUID) error { return nil }
func (s *stubDocs) MarkCompleted(_ context.Context, _ uuid.UUID, _ string, _ *int) error {
	return nil
}
func (s *stubDocs) MarkFailed(_ context.Context, _ uuid.UUID) error  { return nil }
func (s *stubDocs) MarkPending(_ context.Context, _ uuid.UUID) error { return nil }

type stubQueue struct {
	extracts []uuid.UUID
	analyses []uuid.UUID
}

func (q *stubQueue) EnqueueExtractDocument(_ context.Context, id uuid.UUID) error {
	q.extracts = append(q.extracts, id)
	return nil
}

func (q *stubQueue) EnqueueAnalyzeContract(_ context.Context, id uuid.UUID, _ llm.Mode, _ *uuid.UUID) error {
	q.analyses = append(q.analyses, id)
	return nil
}

func testContract(status constants.ExtractionStatus) *entity.Contract {
	return &entity.Contract{
		ID:               uuid.New(),
		OrganizationID:   uuid.New(),
		Title:            "Test contract",
		Direction:        constants.DirectionDefault,
		ExtractionStatus: status,
	}
}

func testDocument(contractID uuid.UUID, status constants.ExtractionStatus) *entity.Document {
	return &entity.Document{
		ID:               uuid.New(),
		ContractID:       contractID,
		Filename:         "lease.txt",
		ContentType:      "text/plain",
		BlobKey:          "blob-1",
		DocumentType:     constants.DocMainContract,
		ExtractionStatus: status,
	}
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected a status error, got %v", err)
	}
	if st.Code() != code {
		t.Fatalf("code: got %s, want %s", st.Code(), code)
	}
}

// --- TriggerAnalysis ---

func TestTriggerAnalysisQueuesWithCompletedDocument(t *testing.T) {
	contracts := &stubContracts{contract: testContract(constants.ExtractionCompleted)}
	docs := newStubDocs(testDocument(contracts.contract.ID, constants.ExtractionCompleted))
	queue := &stubQueue{}
	svc := NewContractsService(contracts, docs, nil, queue, slog.New(slog.DiscardHandler))

	resp, err := svc.TriggerAnalysis(context.Background(), &contractsv1.TriggerAnalysisRequest{
		ContractId: contracts.contract.ID.String(),
	})
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if !resp.GetQueued() {
		t.Error("expected queued=true")
	}
	if contracts.markedPending != 1 {
		t.Errorf("status reset: got %d", contracts.markedPending)
	}
	if len(queue.analyses) != 1 {
		t.Errorf("analyses queued: got %d", len(queue.analyses))
	}
}

func TestTriggerAnalysisRejectsWithoutCompletedDocuments(t *testing.T) {
	contracts := &stubContracts{contract: testContract(constants.ExtractionCompleted)}
	// One document, failed: terminal, but nothing ever extracted.
	docs := newStubDocs(testDocument(contracts.contract.ID, constants.ExtractionFailed))
	queue := &stubQueue{}
	svc := NewContractsService(contracts, docs, nil, queue, slog.New(slog.DiscardHandler))

	_, err := svc.TriggerAnalysis(context.Background(), &contractsv1.TriggerAnalysisRequest{
		ContractId: contracts.contract.ID.String(),
	})
	wantCode(t, err, codes.FailedPrecondition)
	if contracts.markedPending != 0 {
		t.Error("a rejected trigger must not reset the contract status")
	}
	if len(queue.analyses) != 0 {
		t.Error("a rejected trigger must not enqueue")
	}
}

func TestTriggerAnalysisRejectsWithNoDocuments(t *testing.T) {
	contracts := &stubContracts{contract: testContract(constants.ExtractionCompleted)}
	svc := NewContractsService(contracts, newStubDocs(), nil, &stubQueue{}, slog.New(slog.DiscardHandler))

	_, err := svc.TriggerAnalysis(context.Background(), &contractsv1.TriggerAnalysisRequest{
		ContractId: contracts.contract.ID.String(),
	})
	wantCode(t, err, codes.FailedPrecondition)
	if contracts.contract.ExtractionStatus != constants.ExtractionCompleted {
		t.Errorf("status must stay untouched, got %s", contracts.contract.ExtractionStatus)
	}
}

func TestTriggerAnalysisRejectsWhileExtracting(t *testing.T) {
	contracts := &stubContracts{contract: testContract(constants.ExtractionPending)}
	docs := newStubDocs(testDocument(contracts.contract.ID, constants.ExtractionProcessing))
	svc := NewContractsService(contracts, docs, nil, &stubQueue{}, slog.New(slog.DiscardHandler))

	_, err := svc.TriggerAnalysis(context.Background(), &contractsv1.TriggerAnalysisRequest{
		ContractId: contracts.contract.ID.String(),
	})
	wantCode(t, err, codes.FailedPrecondition)
}

// --- DeleteDocument ---

func TestDeleteDocumentQueuesReanalysis(t *testing.T) {
	contracts := &stubContracts{contract: testContract(constants.ExtractionCompleted)}
	doc := testDocument(contracts.contract.ID, constants.ExtractionCompleted)
	sibling := testDocument(contracts.contract.ID, constants.ExtractionCompleted)
	docs := newStubDocs(doc, sibling)
	queue := &stubQueue{}
	svc := NewDocumentsService(contracts, docs, nil, queue, slog.New(slog.DiscardHandler))

	resp, err := svc.DeleteDocument(context.Background(), &contractsv1.DeleteDocumentRequest{
		DocumentId: doc.ID.String(),
	})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !resp.GetReanalysisQueued() {
		t.Error("expected a re-analysis with extracted text remaining")
	}
	if len(queue.analyses) != 1 {
		t.Errorf("analyses queued: got %d", len(queue.analyses))
	}
}

func TestDeleteDocumentClearsAnalysisWhenLastExtracted(t *testing.T) {
	contracts := &stubContracts{contract: testContract(constants.ExtractionCompleted)}
	doc := testDocument(contracts.contract.ID, constants.ExtractionCompleted)
	docs := newStubDocs(doc)
	queue := &stubQueue{}
	svc := NewDocumentsService(contracts, docs, nil, queue, slog.New(slog.DiscardHandler))

	resp, err := svc.DeleteDocument(context.Background(), &contractsv1.DeleteDocumentRequest{
		DocumentId: doc.ID.String(),
	})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.GetReanalysisQueued() {
		t.Error("nothing left to analyze")
	}
	if contracts.cleared != 1 {
		t.Errorf("analysis clear: got %d", contracts.cleared)
	}
	if len(queue.analyses) != 0 {
		t.Errorf("analyses queued: got %d", len(queue.analyses))
	}
}

func TestDeleteDocumentRejectsWhileAnalysisRuns(t *testing.T) {
	contracts := &stubContracts{contract: testContract(constants.ExtractionProcessing)}
	doc := testDocument(contracts.contract.ID, constants.ExtractionCompleted)
	docs := newStubDocs(doc)
	svc := NewDocumentsService(contracts, docs, nil, &stubQueue{}, slog.New(slog.DiscardHandler))

	_, err := svc.DeleteDocument(context.Background(), &contractsv1.DeleteDocumentRequest{
		DocumentId: doc.ID.String(),
	})
	wantCode(t, err, codes.FailedPrecondition)
	if len(docs.deleted) != 0 {
		t.Error("the document must survive a rejected delete")
	}
	if _, gerr := docs.GetByID(context.Background(), doc.ID); gerr != nil {
		t.Errorf("document gone after rejected delete: %v", gerr)
	}
}

func TestDeleteDocumentRejectsWhileExtracting(t *testing.T) {
	contracts := &stubContracts{contract: testContract(constants.ExtractionPending)}
	doc := testDocument(contracts.contract.ID, constants.ExtractionProcessing)
	docs := newStubDocs(doc)
	svc := NewDocumentsService(contracts, docs, nil, &stubQueue{}, slog.New(slog.DiscardHandler))

	_, err := svc.DeleteDocument(context.Background(), &contractsv1.DeleteDocumentRequest{
		DocumentId: doc.ID.String(),
	})
	wantCode(t, err, codes.FailedPrecondition)
	if len(docs.deleted) != 0 {
		t.Error("the document must survive a rejected delete")
	}
}
