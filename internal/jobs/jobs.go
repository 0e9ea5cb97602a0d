// Package jobs runs document extraction and contract analysis asynchronously
// on an in-process worker pool with bounded retries.
package jobs

import (
	"context"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/internal/llm"
)

type Kind string

const (
	KindExtractDocument Kind = "extract_document"
	KindAnalyzeContract Kind = "analyze_contract"
)

// Job is one unit of queued work. Exactly the fields for its kind are set.
type Job struct {
	Kind          Kind
	DocumentID    uuid.UUID
	ContractID    uuid.UUID
	Mode          llm.Mode
	NewDocumentID *uuid.UUID

	attempt int
}

// Queue is what the pipeline and the API surface enqueue onto.
type Queue interface {
	EnqueueExtractDocument(ctx context.Context, documentID uuid.UUID) error
	EnqueueAnalyzeContract(ctx context.Context, contractID uuid.UUID, mode llm.Mode, newDocumentID *uuid.UUID) error
}

// Handler executes jobs. The pipeline stages implement it.
type Handler interface {
	ExtractDocument(ctx context.Context, documentID uuid.UUID) error
	AnalyzeContract(ctx context.Context, contractID uuid.UUID, mode llm.Mode, newDocumentID *uuid.UUID) error
}
