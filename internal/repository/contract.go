package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/gen/ent"
	"github.com/contractwatch/contractwatch/gen/ent/clause"
	"github.com/contractwatch/contractwatch/gen/ent/contract"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/merge"
)

type ContractRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*entity.Contract, error)
	ListClauses(ctx context.Context, contractID uuid.UUID) ([]*entity.Clause, error)

	// ClaimAnalysis flips extraction_status to processing unless another
	// worker already holds it. False means someone else won the claim.
	ClaimAnalysis(ctx context.Context, id uuid.UUID) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID) error
	MarkPending(ctx context.Context, id uuid.UUID) error

	// ApplyAnalysis writes the merge result, the new baseline, and the
	// replacement clause set in one transaction, and marks the contract
	// completed.
	ApplyAnalysis(ctx context.Context, id uuid.UUID, ws merge.WriteSet, baselineJSON string) error

	// ClearAnalysis drops the baseline, the change summary, and the clause
	// set, and resets the contract to pending. Runs when the last extracted
	// document is deleted and there is nothing left to analyze.
	ClearAnalysis(ctx context.Context, id uuid.UUID) error
}

type contractRepository struct {
	client *ent.Client
	log    *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{client: client, log: logger}
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	c, err := r.client.Contract.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toContract(c), nil
}

func (r *contractRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*entity.Contract, error) {
	rows, err := r.client.Contract.Query().
		Where(contract.OrganizationID(orgID)).
		Order(contract.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list contracts", "organization_id", orgID, "error", err)
		return nil, err
	}
	result := make([]*entity.Contract, len(rows))
	for i, c := range rows {
		result[i] = toContract(c)
	}
	return result, nil
}

func (r *contractRepository) ListClauses(ctx context.Context, contractID uuid.UUID) ([]*entity.Clause, error) {
	rows, err := r.client.Clause.Query().
		Where(clause.ContractID(contractID)).
		Order(clause.ByClauseType(), clause.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Clause, len(rows))
	for i, c := range rows {
		result[i] = toClause(c)
	}
	return result, nil
}

func (r *contractRepository) ClaimAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.client.Contract.Update().
		Where(
			contract.ID(id),
			contract.ExtractionStatusNEQ(string(constants.ExtractionProcessing)),
		).
		SetExtractionStatus(string(constants.ExtractionProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("contract claim failed", "contract_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *contractRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.ExtractionFailed)
}

func (r *contractRepository) MarkPending(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, constants.ExtractionPending)
}

func (r *contractRepository) setStatus(ctx context.Context, id uuid.UUID, status constants.ExtractionStatus) error {
	err := r.client.Contract.UpdateOneID(id).
		SetExtractionStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.log.Error("contract status update failed", "contract_id", id, "status", status, "error", err)
	}
	return err
}

func (r *contractRepository) ApplyAnalysis(ctx context.Context, id uuid.UUID, ws merge.WriteSet, baselineJSON string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				r.log.Error("rollback failed", "contract_id", id, "error", rerr)
			}
		}
	}()

	upd := tx.Contract.UpdateOneID(id).
		SetExtractionStatus(string(constants.ExtractionCompleted)).
		SetBaselineJSON(baselineJSON).
		SetNillableVendorName(ws.VendorName).
		SetNillableContractType(ws.ContractType).
		SetNillableStartDate(ws.StartDate).
		SetNillableEndDate(ws.EndDate).
		SetNillableMonthlyValue(ws.MonthlyValue).
		SetNillableTotalValue(ws.TotalValue).
		SetNillableRenewalTerm(ws.RenewalTerm).
		SetNillableNoticePeriodDays(ws.NoticePeriodDays).
		SetNillableNotes(ws.Notes).
		SetNillableLastChangesSummary(ws.ChangesSummary)
	if ws.Title != nil {
		upd = upd.SetTitle(*ws.Title)
	}
	if ws.Direction != nil {
		upd = upd.SetDirection(*ws.Direction)
	}
	if ws.AutoRenews != nil {
		upd = upd.SetAutoRenews(*ws.AutoRenews)
	}
	if err = upd.Exec(ctx); err != nil {
		r.log.Error("contract update failed", "contract_id", id, "error", err)
		return err
	}

	// Replace the clause set wholesale.
	if _, err = tx.Clause.Delete().Where(clause.ContractID(id)).Exec(ctx); err != nil {
		return err
	}
	if len(ws.Clauses) > 0 {
		builders := make([]*ent.ClauseCreate, len(ws.Clauses))
		for i, cw := range ws.Clauses {
			builders[i] = tx.Clause.Create().
				SetContractID(id).
				SetClauseType(cw.ClauseType).
				SetContent(cw.Content).
				SetNillablePageReference(cw.PageReference).
				SetNillableConfidenceScore(cw.ConfidenceScore).
				SetNillableSourceDocumentID(cw.SourceDocumentID)
		}
		if _, err = tx.Clause.CreateBulk(builders...).Save(ctx); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	r.log.Info("analysis applied", "contract_id", id, "clauses", len(ws.Clauses))
	return nil
}

func (r *contractRepository) ClearAnalysis(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				r.log.Error("rollback failed", "contract_id", id, "error", rerr)
			}
		}
	}()

	err = tx.Contract.UpdateOneID(id).
		ClearBaselineJSON().
		ClearLastChangesSummary().
		SetExtractionStatus(string(constants.ExtractionPending)).
		Exec(ctx)
	if err != nil {
		r.log.Error("analysis clear failed", "contract_id", id, "error", err)
		return err
	}
	if _, err = tx.Clause.Delete().Where(clause.ContractID(id)).Exec(ctx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	r.log.Info("analysis cleared", "contract_id", id)
	return nil
}
