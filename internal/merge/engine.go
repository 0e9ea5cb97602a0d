// Package merge turns a sanitized model candidate into the set of contract
// writes to apply, honoring the fill-blank rules of a full analysis and the
// baseline-diff rules of an incremental one.
package merge

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/llm"
)

// WriteSet lists the contract fields to update. Nil means "do not touch".
// Clauses always replace the contract's full clause set.
type WriteSet struct {
	Title            *string
	VendorName       *string
	ContractType     *string
	Direction        *string
	StartDate        *time.Time
	EndDate          *time.Time
	MonthlyValue     *float64
	TotalValue       *float64
	AutoRenews       *bool
	RenewalTerm      *string
	NoticePeriodDays *int
	Notes            *string
	Clauses          []ClauseWrite
	ChangesSummary   *string
}

// ClauseWrite is one clause row to create after the existing set is cleared.
type ClauseWrite struct {
	ClauseType       string
	Content          string
	PageReference    *string
	ConfidenceScore  *int
	SourceDocumentID *uuid.UUID
}

// Engine builds write sets. It is stateless and safe for concurrent use.
type Engine struct {
	log *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{log: logger}
}

// Build computes the writes for one analysis run.
//
// contract is the live row at merge time, candidate the sanitized model
// output, and docIDs maps document filenames to ids for clause provenance.
// In incremental mode the contract's stored baseline is the diff reference;
// an absent or undecodable baseline degrades to full-mode rules.
func (e *Engine) Build(mode llm.Mode, contract *entity.Contract, candidate *llm.Candidate, docIDs map[string]uuid.UUID) WriteSet {
	full := mode == llm.ModeFull
	var baseline llm.Candidate
	if !full {
		if contract.BaselineJSON == nil || json.Unmarshal([]byte(*contract.BaselineJSON), &baseline) != nil {
			e.log.Warn("merge.baseline_unavailable", "contract_id", contract.ID, "mode", mode)
			full = true
		}
	}

	ws := WriteSet{
		Title:            decideString(full, baseline.Title, candidate.Title, liveStr(contract.Title)),
		VendorName:       decideString(full, baseline.VendorName, candidate.VendorName, contract.VendorName),
		ContractType:     decideString(full, baseline.ContractType, candidate.ContractType, contract.ContractType),
		StartDate:        decideDate(full, baseline.StartDate, candidate.StartDate, contract.StartDate),
		EndDate:          decideDate(full, baseline.EndDate, candidate.EndDate, contract.EndDate),
		MonthlyValue:     decideFloat(full, baseline.MonthlyValue, candidate.MonthlyValue, contract.MonthlyValue),
		TotalValue:       decideFloat(full, baseline.TotalValue, candidate.TotalValue, contract.TotalValue),
		AutoRenews:       decideBool(full, baseline.AutoRenews, candidate.AutoRenews),
		RenewalTerm:      decideString(full, baseline.RenewalTerm, candidate.RenewalTerm, contract.RenewalTerm),
		NoticePeriodDays: decideInt(full, baseline.NoticePeriodDays, candidate.NoticePeriodDays, contract.NoticePeriodDays),
		Notes:            decideString(full, baseline.Summary, candidate.Summary, contract.Notes),
		Clauses:          e.clauses(candidate.KeyClauses, docIDs),
		ChangesSummary:   candidate.ChangesSummary,
	}

	ws.Direction = e.direction(full, baseline.Direction, candidate.Direction, contract.Direction)
	return ws
}

// direction always has a stored value, so "blank" for fill-blank purposes
// means the contract still carries the default.
func (e *Engine) direction(full bool, baseline, candidate *string, live string) *string {
	if !strPresent(candidate) {
		return nil
	}
	if full {
		if live != constants.DirectionDefault {
			return nil
		}
		return candidate
	}
	if strPresent(baseline) && normalizeString(*baseline) == normalizeString(*candidate) {
		return nil
	}
	return candidate
}

func (e *Engine) clauses(in []llm.CandidateClause, docIDs map[string]uuid.UUID) []ClauseWrite {
	out := make([]ClauseWrite, 0, len(in))
	for _, c := range in {
		content := strings.TrimSpace(c.Content)
		if content == "" || !constants.ValidClauseType(c.ClauseType) {
			e.log.Debug("merge.clause_dropped", "clause_type", c.ClauseType, "content_len", len(content))
			continue
		}
		cw := ClauseWrite{
			ClauseType:      c.ClauseType,
			Content:         content,
			PageReference:   c.PageReference,
			ConfidenceScore: c.ConfidenceScore,
		}
		if c.SourceDocument != nil {
			if id, ok := docIDs[*c.SourceDocument]; ok {
				cw.SourceDocumentID = &id
			}
		}
		out = append(out, cw)
	}
	return out
}

func liveStr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
