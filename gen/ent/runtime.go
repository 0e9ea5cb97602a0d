// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/contractwatch/contractwatch/db/ent/schema"
	"github.com/contractwatch/contractwatch/gen/ent/clause"
	"github.com/contractwatch/contractwatch/gen/ent/contract"
	"github.com/contractwatch/contractwatch/gen/ent/document"
	"github.com/contractwatch/contractwatch/gen/ent/organization"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clauseFields := schema.Clause{}.Fields()
	_ = clauseFields
	// clauseDescClauseType is the schema descriptor for clause_type field.
	clauseDescClauseType := clauseFields[2].Descriptor()
	// clause.ClauseTypeValidator is a validator for the "clause_type" field. It is called by the builders before save.
	clause.ClauseTypeValidator = func() func(string) error {
		validators := clauseDescClauseType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(clause_type string) error {
			for _, fn := range fns {
				if err := fn(clause_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clauseDescContent is the schema descriptor for content field.
	clauseDescContent := clauseFields[3].Descriptor()
	// clause.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	clause.ContentValidator = clauseDescContent.Validators[0].(func(string) error)
	// clauseDescConfidenceScore is the schema descriptor for confidence_score field.
	clauseDescConfidenceScore := clauseFields[5].Descriptor()
	// clause.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	clause.ConfidenceScoreValidator = clauseDescConfidenceScore.Validators[0].(func(int) error)
	// clauseDescCreatedAt is the schema descriptor for created_at field.
	clauseDescCreatedAt := clauseFields[7].Descriptor()
	// clause.DefaultCreatedAt holds the default value on creation for the created_at field.
	clause.DefaultCreatedAt = clauseDescCreatedAt.Default.(func() time.Time)
	// clauseDescID is the schema descriptor for id field.
	clauseDescID := clauseFields[0].Descriptor()
	// clause.DefaultID holds the default value on creation for the id field.
	clause.DefaultID = clauseDescID.Default.(func() uuid.UUID)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescTitle is the schema descriptor for title field.
	contractDescTitle := contractFields[2].Descriptor()
	// contract.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	contract.TitleValidator = contractDescTitle.Validators[0].(func(string) error)
	// contractDescContractType is the schema descriptor for contract_type field.
	contractDescContractType := contractFields[4].Descriptor()
	// contract.ContractTypeValidator is a validator for the "contract_type" field. It is called by the builders before save.
	contract.ContractTypeValidator = contractDescContractType.Validators[0].(func(string) error)
	// contractDescDirection is the schema descriptor for direction field.
	contractDescDirection := contractFields[5].Descriptor()
	// contract.DefaultDirection holds the default value on creation for the direction field.
	contract.DefaultDirection = contractDescDirection.Default.(string)
	// contract.DirectionValidator is a validator for the "direction" field. It is called by the builders before save.
	contract.DirectionValidator = contractDescDirection.Validators[0].(func(string) error)
	// contractDescAutoRenews is the schema descriptor for auto_renews field.
	contractDescAutoRenews := contractFields[10].Descriptor()
	// contract.DefaultAutoRenews holds the default value on creation for the auto_renews field.
	contract.DefaultAutoRenews = contractDescAutoRenews.Default.(bool)
	// contractDescRenewalTerm is the schema descriptor for renewal_term field.
	contractDescRenewalTerm := contractFields[11].Descriptor()
	// contract.RenewalTermValidator is a validator for the "renewal_term" field. It is called by the builders before save.
	contract.RenewalTermValidator = contractDescRenewalTerm.Validators[0].(func(string) error)
	// contractDescNoticePeriodDays is the schema descriptor for notice_period_days field.
	contractDescNoticePeriodDays := contractFields[12].Descriptor()
	// contract.NoticePeriodDaysValidator is a validator for the "notice_period_days" field. It is called by the builders before save.
	contract.NoticePeriodDaysValidator = contractDescNoticePeriodDays.Validators[0].(func(int) error)
	// contractDescExtractionStatus is the schema descriptor for extraction_status field.
	contractDescExtractionStatus := contractFields[14].Descriptor()
	// contract.DefaultExtractionStatus holds the default value on creation for the extraction_status field.
	contract.DefaultExtractionStatus = contractDescExtractionStatus.Default.(string)
	// contract.ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	contract.ExtractionStatusValidator = contractDescExtractionStatus.Validators[0].(func(string) error)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[17].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[18].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescBlobKey is the schema descriptor for blob_key field.
	documentDescBlobKey := documentFields[4].Descriptor()
	// document.BlobKeyValidator is a validator for the "blob_key" field. It is called by the builders before save.
	document.BlobKeyValidator = documentDescBlobKey.Validators[0].(func(string) error)
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[5].Descriptor()
	// document.DefaultDocumentType holds the default value on creation for the document_type field.
	document.DefaultDocumentType = documentDescDocumentType.Default.(string)
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = documentDescDocumentType.Validators[0].(func(string) error)
	// documentDescPosition is the schema descriptor for position field.
	documentDescPosition := documentFields[6].Descriptor()
	// document.DefaultPosition holds the default value on creation for the position field.
	document.DefaultPosition = documentDescPosition.Default.(int)
	// document.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	document.PositionValidator = documentDescPosition.Validators[0].(func(int) error)
	// documentDescExtractionStatus is the schema descriptor for extraction_status field.
	documentDescExtractionStatus := documentFields[7].Descriptor()
	// document.DefaultExtractionStatus holds the default value on creation for the extraction_status field.
	document.DefaultExtractionStatus = documentDescExtractionStatus.Default.(string)
	// document.ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	document.ExtractionStatusValidator = documentDescExtractionStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[10].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[11].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescPlan is the schema descriptor for plan field.
	organizationDescPlan := organizationFields[2].Descriptor()
	// organization.DefaultPlan holds the default value on creation for the plan field.
	organization.DefaultPlan = organizationDescPlan.Default.(string)
	// organization.PlanValidator is a validator for the "plan" field. It is called by the builders before save.
	organization.PlanValidator = organizationDescPlan.Validators[0].(func(string) error)
	// organizationDescAiExtractionsCount is the schema descriptor for ai_extractions_count field.
	organizationDescAiExtractionsCount := organizationFields[3].Descriptor()
	// organization.DefaultAiExtractionsCount holds the default value on creation for the ai_extractions_count field.
	organization.DefaultAiExtractionsCount = organizationDescAiExtractionsCount.Default.(int)
	// organization.AiExtractionsCountValidator is a validator for the "ai_extractions_count" field. It is called by the builders before save.
	organization.AiExtractionsCountValidator = organizationDescAiExtractionsCount.Validators[0].(func(int) error)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[5].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationFields[6].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationFields[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() uuid.UUID)
}
