// Package limits enforces per-organization monthly analysis quotas.
package limits

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/repository"
)

// Unlimited disables the quota for a plan.
const Unlimited = -1

var planQuota = map[string]int{
	constants.PlanFree:    5,
	constants.PlanStarter: 50,
	constants.PlanPro:     Unlimited,
}

// MonthlyQuota returns the analyses-per-month allowance for a plan. Unknown
// plans get the free allowance.
func MonthlyQuota(plan string) int {
	if q, ok := planQuota[plan]; ok {
		return q
	}
	return planQuota[constants.PlanFree]
}

// Limiter gates analysis runs on the organization's quota.
type Limiter interface {
	// AtLimit resets the counter on a month boundary, then reports whether
	// the organization has used up its allowance.
	AtLimit(ctx context.Context, orgID uuid.UUID) (bool, error)
	// Record counts one completed analysis. False means a concurrent run
	// consumed the last slot first.
	Record(ctx context.Context, orgID uuid.UUID) (bool, error)
}

type limiter struct {
	orgs repository.OrganizationRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewLimiter(orgs repository.OrganizationRepository, logger *slog.Logger) Limiter {
	return &limiter{orgs: orgs, log: logger, now: time.Now}
}

func (l *limiter) AtLimit(ctx context.Context, orgID uuid.UUID) (bool, error) {
	if err := l.orgs.ResetCounterIfElapsed(ctx, orgID, l.now()); err != nil {
		return false, err
	}
	org, err := l.orgs.GetByID(ctx, orgID)
	if err != nil {
		return false, err
	}
	quota := MonthlyQuota(org.Plan)
	if quota == Unlimited {
		return false, nil
	}
	at := org.AIExtractionsCount >= quota
	if at {
		l.log.Warn("analysis quota reached", "organization_id", orgID, "plan", org.Plan, "used", org.AIExtractionsCount)
	}
	return at, nil
}

func (l *limiter) Record(ctx context.Context, orgID uuid.UUID) (bool, error) {
	org, err := l.orgs.GetByID(ctx, orgID)
	if err != nil {
		return false, err
	}
	return l.orgs.IncrementIfBelow(ctx, orgID, MonthlyQuota(org.Plan))
}
