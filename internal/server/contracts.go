package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractsv1 "github.com/contractwatch/contractwatch/gen/proto/contracts/v1"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/export"
	"github.com/contractwatch/contractwatch/internal/jobs"
	"github.com/contractwatch/contractwatch/internal/llm"
	"github.com/contractwatch/contractwatch/internal/repository"
)

type ContractsService struct {
	contractsv1.UnimplementedContractsServiceServer
	contracts repository.ContractRepository
	docs      repository.DocumentRepository
	exporter  *export.Service
	queue     jobs.Queue
	logger    *slog.Logger
}

func NewContractsService(
	contracts repository.ContractRepository,
	docs repository.DocumentRepository,
	exporter *export.Service,
	queue jobs.Queue,
	logger *slog.Logger,
) *ContractsService {
	return &ContractsService{
		contracts: contracts,
		docs:      docs,
		exporter:  exporter,
		queue:     queue,
		logger:    logger,
	}
}

func (s *ContractsService) GetContract(ctx context.Context, req *contractsv1.GetContractRequest) (*contractsv1.GetContractResponse, error) {
	id, err := parseUUID(req.GetContractId(), "contract_id")
	if err != nil {
		return nil, err
	}
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("contract not found")
		}
		s.logger.Error("get contract failed", "contract_id", id, "error", err)
		return nil, common.InternalError("get contract failed")
	}
	clauses, err := s.contracts.ListClauses(ctx, id)
	if err != nil {
		s.logger.Error("list clauses failed", "contract_id", id, "error", err)
		return nil, common.InternalError("list clauses failed")
	}

	out := make([]*contractsv1.Clause, 0, len(clauses))
	for _, cl := range clauses {
		out = append(out, toProtoClause(cl))
	}
	return &contractsv1.GetContractResponse{
		Contract: toProtoContract(c),
		Clauses:  out,
	}, nil
}

func (s *ContractsService) ListContracts(ctx context.Context, req *contractsv1.ListContractsRequest) (*contractsv1.ListContractsResponse, error) {
	orgID, err := parseUUID(req.GetOrganizationId(), "organization_id")
	if err != nil {
		return nil, err
	}
	rows, err := s.contracts.ListByOrganization(ctx, orgID)
	if err != nil {
		s.logger.Error("list contracts failed", "organization_id", orgID, "error", err)
		return nil, common.InternalError("list contracts failed")
	}
	out := make([]*contractsv1.Contract, 0, len(rows))
	for _, c := range rows {
		out = append(out, toProtoContract(c))
	}
	return &contractsv1.ListContractsResponse{Contracts: out}, nil
}

func (s *ContractsService) ListDocuments(ctx context.Context, req *contractsv1.ListDocumentsRequest) (*contractsv1.ListDocumentsResponse, error) {
	id, err := parseUUID(req.GetContractId(), "contract_id")
	if err != nil {
		return nil, err
	}
	rows, err := s.docs.ListByContract(ctx, id)
	if err != nil {
		s.logger.Error("list documents failed", "contract_id", id, "error", err)
		return nil, common.InternalError("list documents failed")
	}
	out := make([]*contractsv1.Document, 0, len(rows))
	for _, d := range rows {
		out = append(out, toProtoDocument(d))
	}
	return &contractsv1.ListDocumentsResponse{Documents: out}, nil
}

// TriggerAnalysis queues a full analysis on demand. The contract's documents
// must all be done extracting and at least one must have extracted
// successfully; anything still in flight will queue its own analysis when it
// finishes.
func (s *ContractsService) TriggerAnalysis(ctx context.Context, req *contractsv1.TriggerAnalysisRequest) (*contractsv1.TriggerAnalysisResponse, error) {
	id, err := parseUUID(req.GetContractId(), "contract_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.contracts.GetByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("contract not found")
		}
		return nil, common.InternalError("get contract failed")
	}
	done, err := s.docs.AllTerminal(ctx, id)
	if err != nil {
		s.logger.Error("completion check failed", "contract_id", id, "error", err)
		return nil, common.InternalError("completion check failed")
	}
	if !done {
		return nil, status.Error(codes.FailedPrecondition, "documents are still extracting")
	}
	completed, err := s.docs.ListCompleted(ctx, id)
	if err != nil {
		s.logger.Error("completed documents lookup failed", "contract_id", id, "error", err)
		return nil, common.InternalError("completed documents lookup failed")
	}
	if len(completed) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "no successfully extracted documents to analyze")
	}

	// Releasing the status also recovers a claim stranded by a crashed worker.
	if err := s.contracts.MarkPending(ctx, id); err != nil {
		return nil, common.InternalError("status reset failed")
	}
	if err := s.queue.EnqueueAnalyzeContract(ctx, id, llm.ModeFull, nil); err != nil {
		s.logger.Error("analysis enqueue failed", "contract_id", id, "error", err)
		return nil, status.Error(codes.ResourceExhausted, "analysis queue full")
	}
	s.logger.Info("analysis triggered", "contract_id", id)
	return &contractsv1.TriggerAnalysisResponse{Queued: true}, nil
}

func (s *ContractsService) ExportContracts(ctx context.Context, req *contractsv1.ExportContractsRequest) (*contractsv1.ExportContractsResponse, error) {
	orgID, err := parseUUID(req.GetOrganizationId(), "organization_id")
	if err != nil {
		return nil, err
	}
	xlsx, err := s.exporter.ExportContractsXLSX(ctx, orgID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "organization_id", orgID, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &contractsv1.ExportContractsResponse{Xlsx: xlsx}, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}
