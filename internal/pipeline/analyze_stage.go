package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/limits"
	"github.com/contractwatch/contractwatch/internal/llm"
	"github.com/contractwatch/contractwatch/internal/merge"
	"github.com/contractwatch/contractwatch/internal/repository"
)

// Orchestrator runs one contract analysis end to end: prompt, model call,
// sanitization, merge, and the transactional write-back.
type Orchestrator struct {
	contracts repository.ContractRepository
	docs      repository.DocumentRepository
	limiter   limits.Limiter
	model     llm.ModelClient
	engine    *merge.Engine
	log       *slog.Logger
}

func NewOrchestrator(
	contracts repository.ContractRepository,
	docs repository.DocumentRepository,
	limiter limits.Limiter,
	model llm.ModelClient,
	engine *merge.Engine,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		contracts: contracts,
		docs:      docs,
		limiter:   limiter,
		model:     model,
		engine:    engine,
		log:       logger,
	}
}

// AnalyzeContract analyzes a contract whose documents have all finished
// extracting. Concurrent runs race on a status claim; the losers exit
// silently. The quota guard fails the job without touching the contract's
// status, so a later upload or manual trigger can still run it.
func (o *Orchestrator) AnalyzeContract(ctx context.Context, contractID uuid.UUID, mode llm.Mode, newDocumentID *uuid.UUID) error {
	contract, err := o.contracts.GetByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			o.log.Warn("contract vanished before analysis", "contract_id", contractID)
			return nil
		}
		return err
	}

	at, err := o.limiter.AtLimit(ctx, contract.OrganizationID)
	if err != nil {
		return err
	}
	if at {
		return fmt.Errorf("organization %s: %w", contract.OrganizationID, common.ErrLimitReached)
	}

	docs, err := o.docs.ListCompleted(ctx, contractID)
	if err != nil {
		return err
	}
	corpus := llm.BuildDocumentCorpus(docs)
	if strings.TrimSpace(corpus) == "" {
		o.log.Warn("no extracted text to analyze", "contract_id", contractID)
		return nil
	}

	mode, baseline, newDoc := o.resolveMode(ctx, contract, mode, newDocumentID)

	claimed, err := o.contracts.ClaimAnalysis(ctx, contractID)
	if err != nil {
		return err
	}
	if !claimed {
		o.log.Info("analysis already running", "contract_id", contractID)
		return nil
	}

	o.log.Info("analyze.start", "contract_id", contractID, "mode", mode, "documents", len(docs), "corpus_len", len(corpus))

	prompt := llm.BuildPrompt(mode, corpus, baseline, newDoc)
	raw, err := o.model.Complete(ctx, prompt)
	if err != nil {
		return o.fail(ctx, contractID, err)
	}

	cand, err := llm.Sanitize(raw, o.log)
	if err != nil {
		return o.fail(ctx, contractID, err)
	}

	ws := o.engine.Build(mode, contract, cand, documentIDsByFilename(docs))
	baselineJSON, err := cand.BaselineJSON()
	if err != nil {
		return o.fail(ctx, contractID, err)
	}
	if err := o.contracts.ApplyAnalysis(ctx, contractID, ws, baselineJSON); err != nil {
		return o.fail(ctx, contractID, err)
	}

	if ok, err := o.limiter.Record(ctx, contract.OrganizationID); err != nil {
		o.log.Error("quota record failed", "organization_id", contract.OrganizationID, "error", err)
	} else if !ok {
		o.log.Warn("quota slot gone after analysis", "organization_id", contract.OrganizationID)
	}

	o.log.Info("analyze.ok", "contract_id", contractID, "mode", mode, "clauses", len(ws.Clauses))
	return nil
}

// resolveMode degrades incremental to full when there is no usable baseline
// to diff against.
func (o *Orchestrator) resolveMode(ctx context.Context, contract *entity.Contract, mode llm.Mode, newDocumentID *uuid.UUID) (llm.Mode, string, *entity.Document) {
	if mode != llm.ModeIncremental {
		return llm.ModeFull, "", nil
	}
	if !contract.HasBaseline() {
		o.log.Warn("incremental requested without baseline", "contract_id", contract.ID)
		return llm.ModeFull, "", nil
	}
	baseline := *contract.BaselineJSON
	if err := llm.ValidateBaselineJSON(baseline); err != nil {
		o.log.Warn("stored baseline invalid, falling back to full analysis",
			"contract_id", contract.ID, "error", err)
		return llm.ModeFull, "", nil
	}

	var newDoc *entity.Document
	if newDocumentID != nil {
		d, err := o.docs.GetByID(ctx, *newDocumentID)
		if err != nil {
			o.log.Warn("new document lookup failed", "document_id", *newDocumentID, "error", err)
		} else {
			newDoc = d
		}
	}
	return llm.ModeIncremental, baseline, newDoc
}

func (o *Orchestrator) fail(ctx context.Context, contractID uuid.UUID, cause error) error {
	o.log.Error("analyze.failed", "contract_id", contractID, "error", cause)
	if err := o.contracts.MarkFailed(ctx, contractID); err != nil {
		o.log.Error("contract failure mark failed", "contract_id", contractID, "error", err)
	}
	return cause
}

// documentIDsByFilename maps filenames to ids for clause provenance. Only
// completed documents qualify: a clause can never cite text that was not in
// the corpus.
func documentIDsByFilename(docs []*entity.Document) map[string]uuid.UUID {
	m := make(map[string]uuid.UUID, len(docs))
	for _, d := range docs {
		m[d.Filename] = d.ID
	}
	return m
}
