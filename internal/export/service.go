package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/contractwatch/contractwatch/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// the contract register export.
type Service struct {
	contracts repository.ContractRepository
	logger    *slog.Logger
}

func NewService(contracts repository.ContractRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contracts: contracts, logger: logger}
}

// ExportContractsXLSX returns an XLSX workbook (as bytes) listing every
// contract of the organization with its extracted terms.
func (s *Service) ExportContractsXLSX(ctx context.Context, orgID uuid.UUID) ([]byte, error) {
	start := time.Now()

	contracts, err := s.contracts.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Contracts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Title",
		"Vendor",
		"Type",
		"Direction",
		"Start Date",
		"End Date",
		"Monthly Value",
		"Total Value",
		"Auto-Renews",
		"Renewal Term",
		"Notice Period (Days)",
		"Status",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range contracts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.Title)
		write(2, deref(c.VendorName))
		write(3, deref(c.ContractType))
		write(4, c.Direction)
		write(5, fmtDate(c.StartDate))
		write(6, fmtDate(c.EndDate))
		if c.MonthlyValue != nil {
			write(7, *c.MonthlyValue)
		}
		if c.TotalValue != nil {
			write(8, *c.TotalValue)
		}
		write(9, c.AutoRenews)
		write(10, deref(c.RenewalTerm))
		if c.NoticePeriodDays != nil {
			write(11, *c.NoticePeriodDays)
		}
		write(12, string(c.ExtractionStatus))
		write(13, truncate(deref(c.Notes), 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 34) // title
	_ = f.SetColWidth(sheet, "B", "B", 24) // vendor
	_ = f.SetColWidth(sheet, "C", "D", 16)
	_ = f.SetColWidth(sheet, "E", "F", 12) // dates
	_ = f.SetColWidth(sheet, "G", "H", 14) // amounts
	_ = f.SetColWidth(sheet, "I", "K", 12)
	_ = f.SetColWidth(sheet, "L", "L", 12)
	_ = f.SetColWidth(sheet, "M", "M", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"organization_id", orgID.String(),
		"rows", len(contracts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
