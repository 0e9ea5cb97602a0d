package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/contractwatch/contractwatch/constants"
	contractsv1 "github.com/contractwatch/contractwatch/gen/proto/contracts/v1"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/jobs"
	"github.com/contractwatch/contractwatch/internal/llm"
	"github.com/contractwatch/contractwatch/internal/repository"
	"github.com/contractwatch/contractwatch/internal/storage"
)

type DocumentsService struct {
	contractsv1.UnimplementedDocumentsServiceServer
	contracts repository.ContractRepository
	docs      repository.DocumentRepository
	blobs     storage.BlobStore
	queue     jobs.Queue
	logger    *slog.Logger
}

func NewDocumentsService(
	contracts repository.ContractRepository,
	docs repository.DocumentRepository,
	blobs storage.BlobStore,
	queue jobs.Queue,
	logger *slog.Logger,
) *DocumentsService {
	return &DocumentsService{
		contracts: contracts,
		docs:      docs,
		blobs:     blobs,
		queue:     queue,
		logger:    logger,
	}
}

// UploadDocument stores the blob under its content hash, registers the
// document, and queues extraction. Re-uploading a byte-identical file to the
// same contract returns the existing document instead of a duplicate.
func (s *DocumentsService) UploadDocument(ctx context.Context, req *contractsv1.UploadDocumentRequest) (*contractsv1.UploadDocumentResponse, error) {
	contractID, err := parseUUID(req.GetContractId(), "contract_id")
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	docType := constants.DocumentType(req.GetDocumentType())
	if req.GetDocumentType() == "" {
		docType = constants.DocOther
	}
	validType := false
	for _, t := range constants.DocumentTypes {
		if t == string(docType) {
			validType = true
			break
		}
	}
	if !validType {
		return nil, common.InvalidArgumentErrorf("document_type must be one of %v", constants.DocumentTypes)
	}

	if _, err := s.contracts.GetByID(ctx, contractID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("contract not found")
		}
		return nil, common.InternalError("get contract failed")
	}

	key := storage.ContentKey(content)
	existing, err := s.docs.ListByContract(ctx, contractID)
	if err != nil {
		return nil, common.InternalError("list documents failed")
	}
	for _, d := range existing {
		if d.BlobKey == key {
			s.logger.Info("upload deduplicated", "contract_id", contractID, "document_id", d.ID, "blob_key", key)
			return &contractsv1.UploadDocumentResponse{
				Document:     toProtoDocument(d),
				Deduplicated: true,
			}, nil
		}
	}

	if err := s.blobs.Put(ctx, key, bytes.NewReader(content), int64(len(content)), req.GetContentType()); err != nil {
		s.logger.Error("blob store failed", "contract_id", contractID, "blob_key", key, "error", err)
		return nil, common.InternalError("blob store failed")
	}

	doc, err := s.docs.Create(ctx, &repository.CreateDocumentRequest{
		ContractID:   contractID,
		Filename:     filename,
		ContentType:  req.GetContentType(),
		BlobKey:      key,
		DocumentType: docType,
	})
	if err != nil {
		return nil, common.InternalError("document create failed")
	}

	if err := s.queue.EnqueueExtractDocument(ctx, doc.ID); err != nil {
		s.logger.Error("extract enqueue failed", "document_id", doc.ID, "error", err)
		return nil, status.Error(codes.ResourceExhausted, "extraction queue full")
	}
	s.logger.Info("document uploaded", "contract_id", contractID, "document_id", doc.ID, "bytes", len(content))
	return &contractsv1.UploadDocumentResponse{Document: toProtoDocument(doc)}, nil
}

// DeleteDocument removes the document row and queues a fresh full analysis
// when extracted text remains, so derived contract terms stop reflecting the
// deleted document. Deletion is refused while the document or its contract is
// mid-run. The blob stays: content-addressed keys may be shared.
func (s *DocumentsService) DeleteDocument(ctx context.Context, req *contractsv1.DeleteDocumentRequest) (*contractsv1.DeleteDocumentResponse, error) {
	id, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalError("get document failed")
	}
	contract, err := s.contracts.GetByID(ctx, doc.ContractID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("contract not found")
		}
		return nil, common.InternalError("get contract failed")
	}
	// A delete racing an in-flight run would queue a re-analysis that loses
	// the status claim and is dropped, leaving clauses citing the deleted
	// document. Callers retry once the run finishes.
	if doc.Processing() || contract.Processing() {
		return nil, status.Error(codes.FailedPrecondition, "extraction or analysis in progress")
	}
	if err := s.docs.Delete(ctx, id); err != nil && !errors.Is(err, common.ErrNotFound) {
		s.logger.Error("document delete failed", "document_id", id, "error", err)
		return nil, common.InternalError("document delete failed")
	}
	s.logger.Info("document deleted", "document_id", id, "contract_id", doc.ContractID)

	remaining, err := s.docs.ListCompleted(ctx, doc.ContractID)
	if err != nil {
		return nil, common.InternalError("list documents failed")
	}
	if len(remaining) == 0 {
		// Nothing left to analyze: the stored terms no longer have a source.
		if err := s.contracts.ClearAnalysis(ctx, doc.ContractID); err != nil {
			return nil, common.InternalError("analysis clear failed")
		}
		return &contractsv1.DeleteDocumentResponse{}, nil
	}
	if err := s.queue.EnqueueAnalyzeContract(ctx, doc.ContractID, llm.ModeFull, nil); err != nil {
		s.logger.Error("reanalysis enqueue failed", "contract_id", doc.ContractID, "error", err)
		return nil, status.Error(codes.ResourceExhausted, "analysis queue full")
	}
	return &contractsv1.DeleteDocumentResponse{ReanalysisQueued: true}, nil
}

// ReextractDocument resets a document to pending and queues extraction again,
// the manual recovery path for failed extractions.
func (s *DocumentsService) ReextractDocument(ctx context.Context, req *contractsv1.ReextractDocumentRequest) (*contractsv1.ReextractDocumentResponse, error) {
	id, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.docs.GetByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		return nil, common.InternalError("get document failed")
	}
	if err := s.docs.MarkPending(ctx, id); err != nil {
		return nil, common.InternalError("status reset failed")
	}
	if err := s.queue.EnqueueExtractDocument(ctx, id); err != nil {
		s.logger.Error("extract enqueue failed", "document_id", id, "error", err)
		return nil, status.Error(codes.ResourceExhausted, "extraction queue full")
	}
	s.logger.Info("re-extraction queued", "document_id", id)
	return &contractsv1.ReextractDocumentResponse{Queued: true}, nil
}
