package limits

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/repository"
)

type fakeOrgs struct {
	org *entity.Organization
}

func (f *fakeOrgs) GetByID(_ context.Context, id uuid.UUID) (*entity.Organization, error) {
	if f.org == nil || f.org.ID != id {
		return nil, common.ErrNotFound
	}
	cp := *f.org
	return &cp, nil
}

func (f *fakeOrgs) ResetCounterIfElapsed(_ context.Context, _ uuid.UUID, now time.Time) error {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if f.org.AIExtractionsResetAt == nil || f.org.AIExtractionsResetAt.Before(monthStart) {
		f.org.AIExtractionsCount = 0
		t := now
		f.org.AIExtractionsResetAt = &t
	}
	return nil
}

func (f *fakeOrgs) IncrementIfBelow(_ context.Context, _ uuid.UUID, limit int) (bool, error) {
	if limit >= 0 && f.org.AIExtractionsCount >= limit {
		return false, nil
	}
	f.org.AIExtractionsCount++
	return true, nil
}

var _ repository.OrganizationRepository = (*fakeOrgs)(nil)

func TestMonthlyQuota(t *testing.T) {
	tests := []struct {
		plan string
		want int
	}{
		{constants.PlanFree, 5},
		{constants.PlanStarter, 50},
		{constants.PlanPro, Unlimited},
		{"enterprise-trial", 5}, // unknown plans get the free allowance
		{"", 5},
	}
	for _, tt := range tests {
		if got := MonthlyQuota(tt.plan); got != tt.want {
			t.Errorf("MonthlyQuota(%q): got %d, want %d", tt.plan, got, tt.want)
		}
	}
}

func newTestLimiter(org *entity.Organization) (Limiter, *fakeOrgs) {
	orgs := &fakeOrgs{org: org}
	return NewLimiter(orgs, slog.New(slog.DiscardHandler)), orgs
}

func org(plan string, used int) *entity.Organization {
	now := time.Now()
	return &entity.Organization{
		ID:                   uuid.New(),
		Name:                 "Test Org",
		Plan:                 plan,
		AIExtractionsCount:   used,
		AIExtractionsResetAt: &now,
	}
}

func TestAtLimit(t *testing.T) {
	tests := []struct {
		name string
		plan string
		used int
		want bool
	}{
		{"free under", constants.PlanFree, 4, false},
		{"free at", constants.PlanFree, 5, true},
		{"free over", constants.PlanFree, 9, true},
		{"starter under", constants.PlanStarter, 49, false},
		{"starter at", constants.PlanStarter, 50, true},
		{"pro never", constants.PlanPro, 100000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := org(tt.plan, tt.used)
			l, _ := newTestLimiter(o)
			got, err := l.AtLimit(context.Background(), o.ID)
			if err != nil {
				t.Fatalf("AtLimit: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAtLimitResetsOnMonthBoundary(t *testing.T) {
	o := org(constants.PlanFree, 5)
	lastMonth := time.Now().AddDate(0, -1, 0)
	o.AIExtractionsResetAt = &lastMonth

	l, orgs := newTestLimiter(o)
	at, err := l.AtLimit(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("AtLimit: %v", err)
	}
	if at {
		t.Error("a new month starts with a fresh allowance")
	}
	if orgs.org.AIExtractionsCount != 0 {
		t.Errorf("counter should reset, got %d", orgs.org.AIExtractionsCount)
	}
}

func TestAtLimitNeverResetBefore(t *testing.T) {
	o := org(constants.PlanFree, 5)
	o.AIExtractionsResetAt = nil

	l, _ := newTestLimiter(o)
	at, err := l.AtLimit(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("AtLimit: %v", err)
	}
	if at {
		t.Error("the first reset should zero the counter")
	}
}

func TestRecordCountsUpToQuota(t *testing.T) {
	o := org(constants.PlanFree, 4)
	l, orgs := newTestLimiter(o)

	ok, err := l.Record(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !ok {
		t.Error("the last slot should record")
	}
	if orgs.org.AIExtractionsCount != 5 {
		t.Errorf("count: got %d, want 5", orgs.org.AIExtractionsCount)
	}

	ok, err = l.Record(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if ok {
		t.Error("recording past the quota must be refused")
	}
	if orgs.org.AIExtractionsCount != 5 {
		t.Errorf("count must not overshoot, got %d", orgs.org.AIExtractionsCount)
	}
}

func TestRecordUnlimitedPlan(t *testing.T) {
	o := org(constants.PlanPro, 100000)
	l, orgs := newTestLimiter(o)

	ok, err := l.Record(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !ok {
		t.Error("pro plans always record")
	}
	if orgs.org.AIExtractionsCount != 100001 {
		t.Errorf("count: got %d", orgs.org.AIExtractionsCount)
	}
}
