package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/gen/ent"
	"github.com/contractwatch/contractwatch/gen/ent/organization"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/entity"
)

type OrganizationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)

	// ResetCounterIfElapsed zeroes the extraction counter when the stored
	// reset marker predates the current calendar month.
	ResetCounterIfElapsed(ctx context.Context, id uuid.UUID, now time.Time) error

	// IncrementIfBelow bumps the counter only while it is under limit, so
	// concurrent analyses cannot overshoot the quota. A negative limit means
	// unlimited. Returns false when the guard blocked the increment.
	IncrementIfBelow(ctx context.Context, id uuid.UUID, limit int) (bool, error)
}

type organizationRepository struct {
	client *ent.Client
	log    *slog.Logger
}

func NewOrganizationRepository(client *ent.Client, logger *slog.Logger) OrganizationRepository {
	return &organizationRepository{client: client, log: logger}
}

func (r *organizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	o, err := r.client.Organization.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toOrganization(o), nil
}

func (r *organizationRepository) ResetCounterIfElapsed(ctx context.Context, id uuid.UUID, now time.Time) error {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	n, err := r.client.Organization.Update().
		Where(
			organization.ID(id),
			organization.Or(
				organization.AiExtractionsResetAtIsNil(),
				organization.AiExtractionsResetAtLT(monthStart),
			),
		).
		SetAiExtractionsCount(0).
		SetAiExtractionsResetAt(now).
		Save(ctx)
	if err != nil {
		r.log.Error("quota reset failed", "organization_id", id, "error", err)
		return err
	}
	if n > 0 {
		r.log.Info("quota counter reset", "organization_id", id)
	}
	return nil
}

func (r *organizationRepository) IncrementIfBelow(ctx context.Context, id uuid.UUID, limit int) (bool, error) {
	q := r.client.Organization.Update().
		Where(organization.ID(id))
	if limit >= 0 {
		q = q.Where(organization.AiExtractionsCountLT(limit))
	}
	n, err := q.AddAiExtractionsCount(1).Save(ctx)
	if err != nil {
		r.log.Error("quota increment failed", "organization_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}
