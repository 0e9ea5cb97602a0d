package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/gen/ent"
	"github.com/contractwatch/contractwatch/gen/ent/document"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/entity"
)

// CreateDocumentRequest wraps parameters for registering an uploaded document.
type CreateDocumentRequest struct {
	ContractID   uuid.UUID
	Filename     string
	ContentType  string
	BlobKey      string
	DocumentType constants.DocumentType
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*entity.Document, error)
	// ListCompleted returns the contract's completed documents in position
	// order, the order the prompt corpus presents them.
	ListCompleted(ctx context.Context, contractID uuid.UUID) ([]*entity.Document, error)
	// AllTerminal reports whether every document of the contract has reached
	// completed or failed, the precondition for starting an analysis.
	AllTerminal(ctx context.Context, contractID uuid.UUID) (bool, error)

	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, text string, pageCount *int) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	MarkPending(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	client *ent.Client
	log    *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, log: logger}
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	d, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	// Next position slots the document after its siblings.
	n, err := r.client.Document.Query().
		Where(document.ContractID(req.ContractID)).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	d, err := r.client.Document.Create().
		SetContractID(req.ContractID).
		SetFilename(req.Filename).
		SetContentType(req.ContentType).
		SetBlobKey(req.BlobKey).
		SetDocumentType(string(req.DocumentType)).
		SetPosition(n).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "contract_id", req.ContractID, "filename", req.Filename, "error", err)
		return nil, err
	}
	r.log.Info("document created", "document_id", d.ID, "contract_id", req.ContractID, "position", n)
	return toDocument(d), nil
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Document.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func (r *documentRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Where(document.ContractID(contractID)).
		Order(document.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Document, len(rows))
	for i, d := range rows {
		result[i] = toDocument(d)
	}
	return result, nil
}

func (r *documentRepository) ListCompleted(ctx context.Context, contractID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Where(
			document.ContractID(contractID),
			document.ExtractionStatusEQ(string(constants.ExtractionCompleted)),
		).
		Order(document.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Document, len(rows))
	for i, d := range rows {
		result[i] = toDocument(d)
	}
	return result, nil
}

func (r *documentRepository) AllTerminal(ctx context.Context, contractID uuid.UUID) (bool, error) {
	n, err := r.client.Document.Query().
		Where(
			document.ContractID(contractID),
			document.ExtractionStatusIn(
				string(constants.ExtractionPending),
				string(constants.ExtractionProcessing),
			),
		).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.ExtractionProcessing)
}

func (r *documentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, text string, pageCount *int) error {
	err := r.client.Document.UpdateOneID(id).
		SetExtractionStatus(string(constants.ExtractionCompleted)).
		SetExtractedText(text).
		SetNillablePageCount(pageCount).
		Exec(ctx)
	if err != nil {
		r.log.Error("document completion failed", "document_id", id, "error", err)
	}
	return err
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.ExtractionFailed)
}

func (r *documentRepository) MarkPending(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.ExtractionPending)
}

func (r *documentRepository) setStatus(ctx context.Context, id uuid.UUID, status constants.ExtractionStatus) error {
	err := r.client.Document.UpdateOneID(id).
		SetExtractionStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.log.Error("document status update failed", "document_id", id, "status", status, "error", err)
	}
	return err
}
