package repository

import (
	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/gen/ent"
	"github.com/contractwatch/contractwatch/internal/entity"
)

func toContract(c *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:                 c.ID,
		OrganizationID:     c.OrganizationID,
		Title:              c.Title,
		VendorName:         c.VendorName,
		ContractType:       c.ContractType,
		Direction:          c.Direction,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		MonthlyValue:       c.MonthlyValue,
		TotalValue:         c.TotalValue,
		AutoRenews:         c.AutoRenews,
		RenewalTerm:        c.RenewalTerm,
		NoticePeriodDays:   c.NoticePeriodDays,
		Notes:              c.Notes,
		ExtractionStatus:   constants.ExtractionStatus(c.ExtractionStatus),
		BaselineJSON:       c.BaselineJSON,
		LastChangesSummary: c.LastChangesSummary,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:               d.ID,
		ContractID:       d.ContractID,
		Filename:         d.Filename,
		ContentType:      d.ContentType,
		BlobKey:          d.BlobKey,
		DocumentType:     constants.DocumentType(d.DocumentType),
		Position:         d.Position,
		ExtractionStatus: constants.ExtractionStatus(d.ExtractionStatus),
		ExtractedText:    d.ExtractedText,
		PageCount:        d.PageCount,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toClause(c *ent.Clause) *entity.Clause {
	return &entity.Clause{
		ID:               c.ID,
		ContractID:       c.ContractID,
		ClauseType:       c.ClauseType,
		Content:          c.Content,
		PageReference:    c.PageReference,
		ConfidenceScore:  c.ConfidenceScore,
		SourceDocumentID: c.SourceDocumentID,
		CreatedAt:        c.CreatedAt,
	}
}

func toOrganization(o *ent.Organization) *entity.Organization {
	return &entity.Organization{
		ID:                   o.ID,
		Name:                 o.Name,
		Plan:                 o.Plan,
		AIExtractionsCount:   o.AiExtractionsCount,
		AIExtractionsResetAt: o.AiExtractionsResetAt,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
