package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/gen/ent"
	"github.com/contractwatch/contractwatch/internal/common"
	"github.com/contractwatch/contractwatch/internal/merge"
)

// newTestClient opens an in-memory SQLite database scoped to the test and
// migrates the schema into it.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps the shared in-memory database alive for the
	// duration of the test.
	db.SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func seedOrg(t *testing.T, client *ent.Client, plan string, used int) uuid.UUID {
	t.Helper()
	o, err := client.Organization.Create().
		SetName("Test Org").
		SetPlan(plan).
		SetAiExtractionsCount(used).
		SetAiExtractionsResetAt(time.Now()).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed organization: %v", err)
	}
	return o.ID
}

func seedContract(t *testing.T, client *ent.Client, orgID uuid.UUID) uuid.UUID {
	t.Helper()
	c, err := client.Contract.Create().
		SetOrganizationID(orgID).
		SetTitle("Office Lease").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed contract: %v", err)
	}
	return c.ID
}

func seedDocument(t *testing.T, client *ent.Client, contractID uuid.UUID, filename string) uuid.UUID {
	t.Helper()
	d, err := client.Document.Create().
		SetContractID(contractID).
		SetFilename(filename).
		SetBlobKey("blob-" + filename).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return d.ID
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestContractGetByIDNotFound(t *testing.T) {
	repo := NewContractRepository(newTestClient(t), discard())
	if _, err := repo.GetByID(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContractClaimAnalysis(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 0)
	contractID := seedContract(t, client, orgID)
	repo := NewContractRepository(client, discard())
	ctx := context.Background()

	claimed, err := repo.ClaimAnalysis(ctx, contractID)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if !claimed {
		t.Fatal("the first claim should win")
	}

	claimed, err = repo.ClaimAnalysis(ctx, contractID)
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if claimed {
		t.Error("a second claim on a processing contract must lose")
	}

	// Releasing the claim makes it winnable again.
	if err := repo.MarkPending(ctx, contractID); err != nil {
		t.Fatalf("mark pending: %v", err)
	}
	claimed, err = repo.ClaimAnalysis(ctx, contractID)
	if err != nil {
		t.Fatalf("third claim: %v", err)
	}
	if !claimed {
		t.Error("a released contract should be claimable")
	}
}

func TestContractApplyAnalysis(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 0)
	contractID := seedContract(t, client, orgID)
	docID := seedDocument(t, client, contractID, "lease.pdf")
	repo := NewContractRepository(client, discard())
	ctx := context.Background()

	// A stale clause from a previous analysis; ApplyAnalysis replaces the set.
	_, err := client.Clause.Create().
		SetContractID(contractID).
		SetClauseType("renewal").
		SetContent("Stale clause from an earlier run.").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed clause: %v", err)
	}

	end := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)
	score := 90
	ws := merge.WriteSet{
		VendorName:   strPtr("Acme Properties"),
		ContractType: strPtr("lease"),
		EndDate:      &end,
		MonthlyValue: floatPtr(2500),
		Clauses: []merge.ClauseWrite{
			{
				ClauseType:       "termination",
				Content:          "60 days written notice.",
				ConfidenceScore:  &score,
				SourceDocumentID: &docID,
			},
		},
	}
	baseline := `{"title":"Office Lease","key_clauses":[]}`
	if err := repo.ApplyAnalysis(ctx, contractID, ws, baseline); err != nil {
		t.Fatalf("apply: %v", err)
	}

	got, err := repo.GetByID(ctx, contractID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ExtractionStatus != constants.ExtractionCompleted {
		t.Errorf("status: got %s", got.ExtractionStatus)
	}
	if got.VendorName == nil || *got.VendorName != "Acme Properties" {
		t.Errorf("vendor: got %v", got.VendorName)
	}
	if got.MonthlyValue == nil || *got.MonthlyValue != 2500 {
		t.Errorf("monthly value: got %v", got.MonthlyValue)
	}
	if got.BaselineJSON == nil || *got.BaselineJSON != baseline {
		t.Errorf("baseline: got %v", got.BaselineJSON)
	}
	if got.Title != "Office Lease" {
		t.Errorf("a nil title write must not clobber the title, got %q", got.Title)
	}

	clauses, err := repo.ListClauses(ctx, contractID)
	if err != nil {
		t.Fatalf("list clauses: %v", err)
	}
	if len(clauses) != 1 {
		t.Fatalf("clause set should be replaced wholesale, got %d", len(clauses))
	}
	if clauses[0].ClauseType != "termination" {
		t.Errorf("clause type: got %s", clauses[0].ClauseType)
	}
	if clauses[0].SourceDocumentID == nil || *clauses[0].SourceDocumentID != docID {
		t.Errorf("source document: got %v", clauses[0].SourceDocumentID)
	}
}

func TestContractClearAnalysis(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 0)
	contractID := seedContract(t, client, orgID)
	repo := NewContractRepository(client, discard())
	ctx := context.Background()

	ws := merge.WriteSet{
		VendorName: strPtr("Acme Properties"),
		Clauses:    []merge.ClauseWrite{{ClauseType: "renewal", Content: "Auto-renews annually."}},
	}
	if err := repo.ApplyAnalysis(ctx, contractID, ws, `{"key_clauses":[]}`); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := repo.ClearAnalysis(ctx, contractID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.GetByID(ctx, contractID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BaselineJSON != nil {
		t.Errorf("baseline should be gone, got %v", got.BaselineJSON)
	}
	if got.ExtractionStatus != constants.ExtractionPending {
		t.Errorf("status: got %s", got.ExtractionStatus)
	}
	// The vendor name survives: clearing drops analysis artifacts, not data.
	if got.VendorName == nil || *got.VendorName != "Acme Properties" {
		t.Errorf("vendor: got %v", got.VendorName)
	}
	clauses, _ := repo.ListClauses(ctx, contractID)
	if len(clauses) != 0 {
		t.Errorf("clauses should be gone, got %d", len(clauses))
	}
}

func TestContractListByOrganization(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 0)
	otherOrg := seedOrg(t, client, constants.PlanFree, 0)
	seedContract(t, client, orgID)
	seedContract(t, client, orgID)
	seedContract(t, client, otherOrg)
	repo := NewContractRepository(client, discard())

	rows, err := repo.ListByOrganization(context.Background(), orgID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d contracts, want 2", len(rows))
	}
}

func TestDocumentCreateAssignsPositions(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 0)
	contractID := seedContract(t, client, orgID)
	repo := NewDocumentRepository(client, discard())
	ctx := context.Background()

	for i, name := range []string{"main.pdf", "addendum.pdf", "exhibit.pdf"} {
		d, err := repo.Create(ctx, &CreateDocumentRequest{
			ContractID:   contractID,
			Filename:     name,
			ContentType:  "application/pdf",
			BlobKey:      "blob-" + name,
			DocumentType: constants.DocOther,
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if d.Position != i {
			t.Errorf("%s position: got %d, want %d", name, d.Position, i)
		}
	}

	rows, err := repo.ListByContract(ctx, contractID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 || rows[0].Filename != "main.pdf" || rows[2].Filename != "exhibit.pdf" {
		t.Errorf("unexpected order: %+v", rows)
	}
}

func TestDocumentAllTerminal(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 0)
	contractID := seedContract(t, client, orgID)
	a := seedDocument(t, client, contractID, "a.pdf")
	b := seedDocument(t, client, contractID, "b.pdf")
	repo := NewDocumentRepository(client, discard())
	ctx := context.Background()

	done, err := repo.AllTerminal(ctx, contractID)
	if err != nil {
		t.Fatalf("all terminal: %v", err)
	}
	if done {
		t.Error("pending documents are not terminal")
	}

	if err := repo.MarkCompleted(ctx, a, "text a", nil); err != nil {
		t.Fatalf("complete a: %v", err)
	}
	done, _ = repo.AllTerminal(ctx, contractID)
	if done {
		t.Error("one sibling still pending")
	}

	// Failed counts as terminal too.
	if err := repo.MarkFailed(ctx, b); err != nil {
		t.Fatalf("fail b: %v", err)
	}
	done, err = repo.AllTerminal(ctx, contractID)
	if err != nil {
		t.Fatalf("all terminal: %v", err)
	}
	if !done {
		t.Error("completed plus failed is terminal")
	}

	completed, err := repo.ListCompleted(ctx, contractID)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != a {
		t.Errorf("completed: got %+v", completed)
	}
	if completed[0].Text() != "text a" {
		t.Errorf("text: got %q", completed[0].Text())
	}
}

func TestDocumentDelete(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 0)
	contractID := seedContract(t, client, orgID)
	docID := seedDocument(t, client, contractID, "a.pdf")
	repo := NewDocumentRepository(client, discard())
	ctx := context.Background()

	if err := repo.Delete(ctx, docID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, docID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, docID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("double delete: got %v", err)
	}
}

func TestOrganizationIncrementIfBelow(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 4)
	repo := NewOrganizationRepository(client, discard())
	ctx := context.Background()

	ok, err := repo.IncrementIfBelow(ctx, orgID, 5)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if !ok {
		t.Error("4 < 5, the increment should pass")
	}

	ok, err = repo.IncrementIfBelow(ctx, orgID, 5)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if ok {
		t.Error("5 >= 5, the guard should block")
	}

	org, err := repo.GetByID(ctx, orgID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if org.AIExtractionsCount != 5 {
		t.Errorf("count: got %d, want 5", org.AIExtractionsCount)
	}

	// Negative limit means unlimited.
	ok, err = repo.IncrementIfBelow(ctx, orgID, -1)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if !ok {
		t.Error("unlimited increment should pass")
	}
}

func TestOrganizationResetCounterIfElapsed(t *testing.T) {
	client := newTestClient(t)
	orgID := seedOrg(t, client, constants.PlanFree, 5)
	repo := NewOrganizationRepository(client, discard())
	ctx := context.Background()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	// Marker in the current month: no reset.
	err := client.Organization.UpdateOneID(orgID).
		SetAiExtractionsResetAt(time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)).
		Exec(ctx)
	if err != nil {
		t.Fatalf("set marker: %v", err)
	}
	if err := repo.ResetCounterIfElapsed(ctx, orgID, now); err != nil {
		t.Fatalf("reset: %v", err)
	}
	org, _ := repo.GetByID(ctx, orgID)
	if org.AIExtractionsCount != 5 {
		t.Errorf("same-month marker must not reset, got %d", org.AIExtractionsCount)
	}

	// Marker from last month: reset.
	err = client.Organization.UpdateOneID(orgID).
		SetAiExtractionsResetAt(time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)).
		Exec(ctx)
	if err != nil {
		t.Fatalf("set marker: %v", err)
	}
	if err := repo.ResetCounterIfElapsed(ctx, orgID, now); err != nil {
		t.Fatalf("reset: %v", err)
	}
	org, _ = repo.GetByID(ctx, orgID)
	if org.AIExtractionsCount != 0 {
		t.Errorf("elapsed marker should reset, got %d", org.AIExtractionsCount)
	}
	if org.AIExtractionsResetAt == nil || !org.AIExtractionsResetAt.Equal(now) {
		t.Errorf("marker should advance to now, got %v", org.AIExtractionsResetAt)
	}
}

func TestMutexLocker(t *testing.T) {
	locker := NewMutexLocker()
	id := uuid.New()
	ctx := context.Background()

	var inside bool
	err := locker.WithLock(ctx, id, func(ctx context.Context) error {
		inside = true
		return nil
	})
	if err != nil {
		t.Fatalf("with lock: %v", err)
	}
	if !inside {
		t.Error("the callback should run")
	}

	wantErr := errors.New("callback failed")
	if err := locker.WithLock(ctx, id, func(ctx context.Context) error {
		return wantErr
	}); !errors.Is(err, wantErr) {
		t.Errorf("callback errors pass through, got %v", err)
	}
}
