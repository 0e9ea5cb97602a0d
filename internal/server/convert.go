package server

import (
	"time"

	contractsv1 "github.com/contractwatch/contractwatch/gen/proto/contracts/v1"
	"github.com/contractwatch/contractwatch/internal/entity"
)

func toProtoContract(c *entity.Contract) *contractsv1.Contract {
	out := &contractsv1.Contract{
		Id:               c.ID.String(),
		OrganizationId:   c.OrganizationID.String(),
		Title:            c.Title,
		Direction:        c.Direction,
		AutoRenews:       c.AutoRenews,
		ExtractionStatus: string(c.ExtractionStatus),
		CreatedAt:        c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.VendorName != nil {
		out.VendorName = *c.VendorName
	}
	if c.ContractType != nil {
		out.ContractType = *c.ContractType
	}
	if c.StartDate != nil {
		out.StartDate = c.StartDate.Format("2006-01-02")
	}
	if c.EndDate != nil {
		out.EndDate = c.EndDate.Format("2006-01-02")
	}
	if c.MonthlyValue != nil {
		out.MonthlyValue = *c.MonthlyValue
		out.HasMonthlyValue = true
	}
	if c.TotalValue != nil {
		out.TotalValue = *c.TotalValue
		out.HasTotalValue = true
	}
	if c.RenewalTerm != nil {
		out.RenewalTerm = *c.RenewalTerm
	}
	if c.NoticePeriodDays != nil {
		out.NoticePeriodDays = int32(*c.NoticePeriodDays)
		out.HasNoticePeriodDays = true
	}
	if c.Notes != nil {
		out.Notes = *c.Notes
	}
	if c.LastChangesSummary != nil {
		out.LastChangesSummary = *c.LastChangesSummary
	}
	return out
}

func toProtoClause(c *entity.Clause) *contractsv1.Clause {
	out := &contractsv1.Clause{
		Id:         c.ID.String(),
		ContractId: c.ContractID.String(),
		ClauseType: c.ClauseType,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.PageReference != nil {
		out.PageReference = *c.PageReference
	}
	if c.ConfidenceScore != nil {
		out.ConfidenceScore = int32(*c.ConfidenceScore)
		out.HasConfidenceScore = true
	}
	if c.SourceDocumentID != nil {
		out.SourceDocumentId = c.SourceDocumentID.String()
	}
	return out
}

func toProtoDocument(d *entity.Document) *contractsv1.Document {
	out := &contractsv1.Document{
		Id:               d.ID.String(),
		ContractId:       d.ContractID.String(),
		Filename:         d.Filename,
		ContentType:      d.ContentType,
		DocumentType:     string(d.DocumentType),
		Position:         int32(d.Position),
		ExtractionStatus: string(d.ExtractionStatus),
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.PageCount != nil {
		out.PageCount = int32(*d.PageCount)
		out.HasPageCount = true
	}
	return out
}
