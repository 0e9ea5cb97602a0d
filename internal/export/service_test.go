package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/internal/entity"
	"github.com/contractwatch/contractwatch/internal/merge"
)

type fakeContracts struct {
	contracts []*entity.Contract
	err       error
}

func (f *fakeContracts) ListByOrganization(_ context.Context, _ uuid.UUID) ([]*entity.Contract, error) {
	return f.contracts, f.err
}

func (f *fakeContracts) GetByID(context.Context, uuid.UUID) (*entity.Contract, error) {
	return nil, errors.New("not used")
}

func (f *fakeContracts) ListClauses(context.Context, uuid.UUID) ([]*entity.Clause, error) {
	return nil, errors.New("not used")
}

func (f *fakeContracts) ClaimAnalysis(context.Context, uuid.UUID) (bool, error) {
	return false, errors.New("not used")
}

func (f *fakeContracts) MarkFailed(context.Context, uuid.UUID) error  { return errors.New("not used") }
func (f *fakeContracts) MarkPending(context.Context, uuid.UUID) error { return errors.New("not used") }

func (f *fakeContracts) ApplyAnalysis(context.Context, uuid.UUID, merge.WriteSet, string) error {
	return errors.New("not used")
}

func (f *fakeContracts) ClearAnalysis(context.Context, uuid.UUID) error {
	return errors.New("not used")
}

func strPtr(s string) *string { return &s }

func TestExportContractsXLSX(t *testing.T) {
	vendor := "Acme Properties"
	monthly := 2500.0
	end := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)
	repo := &fakeContracts{contracts: []*entity.Contract{
		{
			ID:               uuid.New(),
			Title:            "Office Lease",
			VendorName:       &vendor,
			ContractType:     strPtr("lease"),
			Direction:        "outbound",
			EndDate:          &end,
			MonthlyValue:     &monthly,
			AutoRenews:       true,
			ExtractionStatus: constants.ExtractionCompleted,
		},
		{
			ID:               uuid.New(),
			Title:            "Sparse Contract",
			Direction:        "inbound",
			ExtractionStatus: constants.ExtractionPending,
		},
	}}

	svc := NewService(repo, slog.New(slog.DiscardHandler))
	data, err := svc.ExportContractsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("the output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Contracts")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 contracts", len(rows))
	}
	if rows[0][0] != "Title" || rows[0][5] != "End Date" {
		t.Errorf("header row: %v", rows[0])
	}

	first := rows[1]
	if first[0] != "Office Lease" || first[1] != "Acme Properties" {
		t.Errorf("row 1: %v", first)
	}
	if first[5] != "2027-12-31" {
		t.Errorf("end date: got %q", first[5])
	}

	second := rows[2]
	if second[0] != "Sparse Contract" {
		t.Errorf("row 2: %v", second)
	}
	if second[1] != "" {
		t.Errorf("missing vendor renders blank, got %q", second[1])
	}
}

func TestExportEmptyOrganization(t *testing.T) {
	svc := NewService(&fakeContracts{}, slog.New(slog.DiscardHandler))
	data, err := svc.ExportContractsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Contracts")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("an empty organization exports only the header, got %d rows", len(rows))
	}
}

func TestExportRepositoryError(t *testing.T) {
	svc := NewService(&fakeContracts{err: errors.New("db down")}, slog.New(slog.DiscardHandler))
	if _, err := svc.ExportContractsXLSX(context.Background(), uuid.New()); err == nil {
		t.Error("expected the repository error to propagate")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is well over the limit", 10, "this is w…"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d): got %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
	if got := truncate("abc", 1); got != "a" {
		t.Errorf("truncate to 1: got %q", got)
	}
}
