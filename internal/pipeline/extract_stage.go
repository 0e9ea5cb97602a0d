// Package pipeline wires document extraction and contract analysis into the
// job queue: every document upload fans out to text extraction, and the last
// sibling to finish triggers one analysis run for the contract.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/extract"
	"github.com/contractwatch/contractwatch/internal/jobs"
	"github.com/contractwatch/contractwatch/internal/limits"
	"github.com/contractwatch/contractwatch/internal/llm"
	"github.com/contractwatch/contractwatch/internal/repository"
	"github.com/contractwatch/contractwatch/internal/storage"
)

// Coordinator runs the extraction stage for one document and decides when
// its contract is ready for analysis.
type Coordinator struct {
	docs      repository.DocumentRepository
	contracts repository.ContractRepository
	blobs     storage.BlobStore
	extractor extract.TextExtractor
	locker    repository.ContractLocker
	limiter   limits.Limiter
	queue     jobs.Queue
	log       *slog.Logger
}

func NewCoordinator(
	docs repository.DocumentRepository,
	contracts repository.ContractRepository,
	blobs storage.BlobStore,
	extractor extract.TextExtractor,
	locker repository.ContractLocker,
	limiter limits.Limiter,
	queue jobs.Queue,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		docs:      docs,
		contracts: contracts,
		blobs:     blobs,
		extractor: extractor,
		locker:    locker,
		limiter:   limiter,
		queue:     queue,
		log:       logger,
	}
}

// ExtractDocument pulls the document's blob, extracts its text, and records
// the outcome. Re-running it for a completed document skips re-extraction but
// still runs the completion check, so a redelivered job can recover an
// analysis trigger lost after the document was marked. A document deleted
// since enqueue is not an error.
func (c *Coordinator) ExtractDocument(ctx context.Context, documentID uuid.UUID) error {
	doc, err := c.docs.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.log.Warn("document vanished before extraction", "document_id", documentID)
			return nil
		}
		return err
	}
	if doc.Completed() {
		c.log.Info("document already extracted", "document_id", documentID)
		return c.afterTerminal(ctx, doc, true)
	}

	c.log.Info("extract.start", "document_id", documentID, "contract_id", doc.ContractID, "content_type", doc.ContentType)
	if err := c.docs.MarkProcessing(ctx, documentID); err != nil {
		return err
	}

	result, err := c.extractText(ctx, doc)
	if err != nil {
		if merr := c.docs.MarkFailed(ctx, documentID); merr != nil {
			return merr
		}
		if common.Retryable(err) {
			// Failed is terminal, so siblings are not blocked while the
			// retry waits; a successful retry re-runs the completion check.
			return err
		}
		c.log.Error("extract.failed", "document_id", documentID, "error", err)
		// A permanently failed document may be the one unblocking its
		// siblings' analysis, so the completion check still runs. The
		// extraction error is surfaced either way.
		if aerr := c.afterTerminal(ctx, doc, false); aerr != nil {
			return aerr
		}
		return err
	}

	if err := c.docs.MarkCompleted(ctx, documentID, result.Text, result.PageCount); err != nil {
		return err
	}
	c.log.Info("extract.ok", "document_id", documentID, "text_len", len(result.Text), "warnings", len(result.Warnings))
	return c.afterTerminal(ctx, doc, true)
}

func (c *Coordinator) extractText(ctx context.Context, doc *entity.Document) (extract.Result, error) {
	rc, err := c.blobs.Open(ctx, doc.BlobKey)
	if err != nil {
		return extract.Result{}, fmt.Errorf("open blob %s: %w", doc.BlobKey, err)
	}
	defer func() {
		_ = rc.Close()
	}()
	content, err := io.ReadAll(rc)
	if err != nil {
		return extract.Result{}, fmt.Errorf("read blob %s: %w", doc.BlobKey, err)
	}
	return c.extractor.Extract(content, doc.ContentType)
}

// afterTerminal runs the completion check under the contract lock: if this
// was the last unfinished document, pick the analysis mode and enqueue it.
// Two documents finishing together must not both see the other as pending,
// hence the lock. extracted reports whether this document just completed
// with text, which is what qualifies it as the incremental-mode addition.
func (c *Coordinator) afterTerminal(ctx context.Context, doc *entity.Document, extracted bool) error {
	return c.locker.WithLock(ctx, doc.ContractID, func(ctx context.Context) error {
		done, err := c.docs.AllTerminal(ctx, doc.ContractID)
		if err != nil {
			return err
		}
		if !done {
			c.log.Info("siblings still extracting", "contract_id", doc.ContractID)
			return nil
		}

		contract, err := c.contracts.GetByID(ctx, doc.ContractID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil
			}
			return err
		}

		at, err := c.limiter.AtLimit(ctx, contract.OrganizationID)
		if err != nil {
			return err
		}
		if at {
			// Quota exhausted: skip the analysis and leave the contract
			// status untouched so a later re-trigger can pick it up.
			c.log.Warn("analysis skipped, quota reached",
				"contract_id", contract.ID, "organization_id", contract.OrganizationID)
			return nil
		}

		mode := llm.ModeFull
		var newDocID *uuid.UUID
		if contract.HasBaseline() && extracted {
			mode = llm.ModeIncremental
			id := doc.ID
			newDocID = &id
		}
		c.log.Info("analysis queued", "contract_id", contract.ID, "mode", mode)
		return c.queue.EnqueueAnalyzeContract(ctx, contract.ID, mode, newDocID)
	})
}
