// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/contractwatch/contractwatch/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldOrganizationID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTitle, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldVendorName, v))
}

// ContractType applies equality check predicate on the "contract_type" field. It's identical to ContractTypeEQ.
func ContractType(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractType, v))
}

// Direction applies equality check predicate on the "direction" field. It's identical to DirectionEQ.
func Direction(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDirection, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEndDate, v))
}

// MonthlyValue applies equality check predicate on the "monthly_value" field. It's identical to MonthlyValueEQ.
func MonthlyValue(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldMonthlyValue, v))
}

// TotalValue applies equality check predicate on the "total_value" field. It's identical to TotalValueEQ.
func TotalValue(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTotalValue, v))
}

// AutoRenews applies equality check predicate on the "auto_renews" field. It's identical to AutoRenewsEQ.
func AutoRenews(v bool) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAutoRenews, v))
}

// RenewalTerm applies equality check predicate on the "renewal_term" field. It's identical to RenewalTermEQ.
func RenewalTerm(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRenewalTerm, v))
}

// NoticePeriodDays applies equality check predicate on the "notice_period_days" field. It's identical to NoticePeriodDaysEQ.
func NoticePeriodDays(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNoticePeriodDays, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNotes, v))
}

// ExtractionStatus applies equality check predicate on the "extraction_status" field. It's identical to ExtractionStatusEQ.
func ExtractionStatus(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldExtractionStatus, v))
}

// BaselineJSON applies equality check predicate on the "baseline_json" field. It's identical to BaselineJSONEQ.
func BaselineJSON(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBaselineJSON, v))
}

// LastChangesSummary applies equality check predicate on the "last_changes_summary" field. It's identical to LastChangesSummaryEQ.
func LastChangesSummary(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLastChangesSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldTitle, v))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameIsNil applies the IsNil predicate on the "vendor_name" field.
func VendorNameIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldVendorName))
}

// VendorNameNotNil applies the NotNil predicate on the "vendor_name" field.
func VendorNameNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldVendorName))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldVendorName, v))
}

// ContractTypeEQ applies the EQ predicate on the "contract_type" field.
func ContractTypeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractType, v))
}

// ContractTypeNEQ applies the NEQ predicate on the "contract_type" field.
func ContractTypeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldContractType, v))
}

// ContractTypeIn applies the In predicate on the "contract_type" field.
func ContractTypeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldContractType, vs...))
}

// ContractTypeNotIn applies the NotIn predicate on the "contract_type" field.
func ContractTypeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldContractType, vs...))
}

// ContractTypeGT applies the GT predicate on the "contract_type" field.
func ContractTypeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldContractType, v))
}

// ContractTypeGTE applies the GTE predicate on the "contract_type" field.
func ContractTypeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldContractType, v))
}

// ContractTypeLT applies the LT predicate on the "contract_type" field.
func ContractTypeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldContractType, v))
}

// ContractTypeLTE applies the LTE predicate on the "contract_type" field.
func ContractTypeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldContractType, v))
}

// ContractTypeContains applies the Contains predicate on the "contract_type" field.
func ContractTypeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldContractType, v))
}

// ContractTypeHasPrefix applies the HasPrefix predicate on the "contract_type" field.
func ContractTypeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldContractType, v))
}

// ContractTypeHasSuffix applies the HasSuffix predicate on the "contract_type" field.
func ContractTypeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldContractType, v))
}

// ContractTypeIsNil applies the IsNil predicate on the "contract_type" field.
func ContractTypeIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldContractType))
}

// ContractTypeNotNil applies the NotNil predicate on the "contract_type" field.
func ContractTypeNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldContractType))
}

// ContractTypeEqualFold applies the EqualFold predicate on the "contract_type" field.
func ContractTypeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldContractType, v))
}

// ContractTypeContainsFold applies the ContainsFold predicate on the "contract_type" field.
func ContractTypeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldContractType, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDirection, vs...))
}

// DirectionGT applies the GT predicate on the "direction" field.
func DirectionGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldDirection, v))
}

// DirectionGTE applies the GTE predicate on the "direction" field.
func DirectionGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldDirection, v))
}

// DirectionLT applies the LT predicate on the "direction" field.
func DirectionLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldDirection, v))
}

// DirectionLTE applies the LTE predicate on the "direction" field.
func DirectionLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldDirection, v))
}

// DirectionContains applies the Contains predicate on the "direction" field.
func DirectionContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldDirection, v))
}

// DirectionHasPrefix applies the HasPrefix predicate on the "direction" field.
func DirectionHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldDirection, v))
}

// DirectionHasSuffix applies the HasSuffix predicate on the "direction" field.
func DirectionHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldDirection, v))
}

// DirectionEqualFold applies the EqualFold predicate on the "direction" field.
func DirectionEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldDirection, v))
}

// DirectionContainsFold applies the ContainsFold predicate on the "direction" field.
func DirectionContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldDirection, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldStartDate))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldEndDate))
}

// MonthlyValueEQ applies the EQ predicate on the "monthly_value" field.
func MonthlyValueEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldMonthlyValue, v))
}

// MonthlyValueNEQ applies the NEQ predicate on the "monthly_value" field.
func MonthlyValueNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldMonthlyValue, v))
}

// MonthlyValueIn applies the In predicate on the "monthly_value" field.
func MonthlyValueIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldMonthlyValue, vs...))
}

// MonthlyValueNotIn applies the NotIn predicate on the "monthly_value" field.
func MonthlyValueNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldMonthlyValue, vs...))
}

// MonthlyValueGT applies the GT predicate on the "monthly_value" field.
func MonthlyValueGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldMonthlyValue, v))
}

// MonthlyValueGTE applies the GTE predicate on the "monthly_value" field.
func MonthlyValueGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldMonthlyValue, v))
}

// MonthlyValueLT applies the LT predicate on the "monthly_value" field.
func MonthlyValueLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldMonthlyValue, v))
}

// MonthlyValueLTE applies the LTE predicate on the "monthly_value" field.
func MonthlyValueLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldMonthlyValue, v))
}

// MonthlyValueIsNil applies the IsNil predicate on the "monthly_value" field.
func MonthlyValueIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldMonthlyValue))
}

// MonthlyValueNotNil applies the NotNil predicate on the "monthly_value" field.
func MonthlyValueNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldMonthlyValue))
}

// TotalValueEQ applies the EQ predicate on the "total_value" field.
func TotalValueEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTotalValue, v))
}

// TotalValueNEQ applies the NEQ predicate on the "total_value" field.
func TotalValueNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTotalValue, v))
}

// TotalValueIn applies the In predicate on the "total_value" field.
func TotalValueIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTotalValue, vs...))
}

// TotalValueNotIn applies the NotIn predicate on the "total_value" field.
func TotalValueNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTotalValue, vs...))
}

// TotalValueGT applies the GT predicate on the "total_value" field.
func TotalValueGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTotalValue, v))
}

// TotalValueGTE applies the GTE predicate on the "total_value" field.
func TotalValueGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTotalValue, v))
}

// TotalValueLT applies the LT predicate on the "total_value" field.
func TotalValueLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTotalValue, v))
}

// TotalValueLTE applies the LTE predicate on the "total_value" field.
func TotalValueLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTotalValue, v))
}

// TotalValueIsNil applies the IsNil predicate on the "total_value" field.
func TotalValueIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldTotalValue))
}

// TotalValueNotNil applies the NotNil predicate on the "total_value" field.
func TotalValueNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldTotalValue))
}

// AutoRenewsEQ applies the EQ predicate on the "auto_renews" field.
func AutoRenewsEQ(v bool) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAutoRenews, v))
}

// AutoRenewsNEQ applies the NEQ predicate on the "auto_renews" field.
func AutoRenewsNEQ(v bool) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldAutoRenews, v))
}

// RenewalTermEQ applies the EQ predicate on the "renewal_term" field.
func RenewalTermEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRenewalTerm, v))
}

// RenewalTermNEQ applies the NEQ predicate on the "renewal_term" field.
func RenewalTermNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldRenewalTerm, v))
}

// RenewalTermIn applies the In predicate on the "renewal_term" field.
func RenewalTermIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldRenewalTerm, vs...))
}

// RenewalTermNotIn applies the NotIn predicate on the "renewal_term" field.
func RenewalTermNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldRenewalTerm, vs...))
}

// RenewalTermGT applies the GT predicate on the "renewal_term" field.
func RenewalTermGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldRenewalTerm, v))
}

// RenewalTermGTE applies the GTE predicate on the "renewal_term" field.
func RenewalTermGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldRenewalTerm, v))
}

// RenewalTermLT applies the LT predicate on the "renewal_term" field.
func RenewalTermLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldRenewalTerm, v))
}

// RenewalTermLTE applies the LTE predicate on the "renewal_term" field.
func RenewalTermLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldRenewalTerm, v))
}

// RenewalTermContains applies the Contains predicate on the "renewal_term" field.
func RenewalTermContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldRenewalTerm, v))
}

// RenewalTermHasPrefix applies the HasPrefix predicate on the "renewal_term" field.
func RenewalTermHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldRenewalTerm, v))
}

// RenewalTermHasSuffix applies the HasSuffix predicate on the "renewal_term" field.
func RenewalTermHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldRenewalTerm, v))
}

// RenewalTermIsNil applies the IsNil predicate on the "renewal_term" field.
func RenewalTermIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldRenewalTerm))
}

// RenewalTermNotNil applies the NotNil predicate on the "renewal_term" field.
func RenewalTermNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldRenewalTerm))
}

// RenewalTermEqualFold applies the EqualFold predicate on the "renewal_term" field.
func RenewalTermEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldRenewalTerm, v))
}

// RenewalTermContainsFold applies the ContainsFold predicate on the "renewal_term" field.
func RenewalTermContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldRenewalTerm, v))
}

// NoticePeriodDaysEQ applies the EQ predicate on the "notice_period_days" field.
func NoticePeriodDaysEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNoticePeriodDays, v))
}

// NoticePeriodDaysNEQ applies the NEQ predicate on the "notice_period_days" field.
func NoticePeriodDaysNEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldNoticePeriodDays, v))
}

// NoticePeriodDaysIn applies the In predicate on the "notice_period_days" field.
func NoticePeriodDaysIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldNoticePeriodDays, vs...))
}

// NoticePeriodDaysNotIn applies the NotIn predicate on the "notice_period_days" field.
func NoticePeriodDaysNotIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldNoticePeriodDays, vs...))
}

// NoticePeriodDaysGT applies the GT predicate on the "notice_period_days" field.
func NoticePeriodDaysGT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldNoticePeriodDays, v))
}

// NoticePeriodDaysGTE applies the GTE predicate on the "notice_period_days" field.
func NoticePeriodDaysGTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldNoticePeriodDays, v))
}

// NoticePeriodDaysLT applies the LT predicate on the "notice_period_days" field.
func NoticePeriodDaysLT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldNoticePeriodDays, v))
}

// NoticePeriodDaysLTE applies the LTE predicate on the "notice_period_days" field.
func NoticePeriodDaysLTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldNoticePeriodDays, v))
}

// NoticePeriodDaysIsNil applies the IsNil predicate on the "notice_period_days" field.
func NoticePeriodDaysIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldNoticePeriodDays))
}

// NoticePeriodDaysNotNil applies the NotNil predicate on the "notice_period_days" field.
func NoticePeriodDaysNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldNoticePeriodDays))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldNotes, v))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusGT applies the GT predicate on the "extraction_status" field.
func ExtractionStatusGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldExtractionStatus, v))
}

// ExtractionStatusGTE applies the GTE predicate on the "extraction_status" field.
func ExtractionStatusGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldExtractionStatus, v))
}

// ExtractionStatusLT applies the LT predicate on the "extraction_status" field.
func ExtractionStatusLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldExtractionStatus, v))
}

// ExtractionStatusLTE applies the LTE predicate on the "extraction_status" field.
func ExtractionStatusLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldExtractionStatus, v))
}

// ExtractionStatusContains applies the Contains predicate on the "extraction_status" field.
func ExtractionStatusContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldExtractionStatus, v))
}

// ExtractionStatusHasPrefix applies the HasPrefix predicate on the "extraction_status" field.
func ExtractionStatusHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldExtractionStatus, v))
}

// ExtractionStatusHasSuffix applies the HasSuffix predicate on the "extraction_status" field.
func ExtractionStatusHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldExtractionStatus, v))
}

// ExtractionStatusEqualFold applies the EqualFold predicate on the "extraction_status" field.
func ExtractionStatusEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldExtractionStatus, v))
}

// ExtractionStatusContainsFold applies the ContainsFold predicate on the "extraction_status" field.
func ExtractionStatusContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldExtractionStatus, v))
}

// BaselineJSONEQ applies the EQ predicate on the "baseline_json" field.
func BaselineJSONEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBaselineJSON, v))
}

// BaselineJSONNEQ applies the NEQ predicate on the "baseline_json" field.
func BaselineJSONNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldBaselineJSON, v))
}

// BaselineJSONIn applies the In predicate on the "baseline_json" field.
func BaselineJSONIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldBaselineJSON, vs...))
}

// BaselineJSONNotIn applies the NotIn predicate on the "baseline_json" field.
func BaselineJSONNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldBaselineJSON, vs...))
}

// BaselineJSONGT applies the GT predicate on the "baseline_json" field.
func BaselineJSONGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldBaselineJSON, v))
}

// BaselineJSONGTE applies the GTE predicate on the "baseline_json" field.
func BaselineJSONGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldBaselineJSON, v))
}

// BaselineJSONLT applies the LT predicate on the "baseline_json" field.
func BaselineJSONLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldBaselineJSON, v))
}

// BaselineJSONLTE applies the LTE predicate on the "baseline_json" field.
func BaselineJSONLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldBaselineJSON, v))
}

// BaselineJSONContains applies the Contains predicate on the "baseline_json" field.
func BaselineJSONContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldBaselineJSON, v))
}

// BaselineJSONHasPrefix applies the HasPrefix predicate on the "baseline_json" field.
func BaselineJSONHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldBaselineJSON, v))
}

// BaselineJSONHasSuffix applies the HasSuffix predicate on the "baseline_json" field.
func BaselineJSONHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldBaselineJSON, v))
}

// BaselineJSONIsNil applies the IsNil predicate on the "baseline_json" field.
func BaselineJSONIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldBaselineJSON))
}

// BaselineJSONNotNil applies the NotNil predicate on the "baseline_json" field.
func BaselineJSONNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldBaselineJSON))
}

// BaselineJSONEqualFold applies the EqualFold predicate on the "baseline_json" field.
func BaselineJSONEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldBaselineJSON, v))
}

// BaselineJSONContainsFold applies the ContainsFold predicate on the "baseline_json" field.
func BaselineJSONContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldBaselineJSON, v))
}

// LastChangesSummaryEQ applies the EQ predicate on the "last_changes_summary" field.
func LastChangesSummaryEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLastChangesSummary, v))
}

// LastChangesSummaryNEQ applies the NEQ predicate on the "last_changes_summary" field.
func LastChangesSummaryNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldLastChangesSummary, v))
}

// LastChangesSummaryIn applies the In predicate on the "last_changes_summary" field.
func LastChangesSummaryIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldLastChangesSummary, vs...))
}

// LastChangesSummaryNotIn applies the NotIn predicate on the "last_changes_summary" field.
func LastChangesSummaryNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldLastChangesSummary, vs...))
}

// LastChangesSummaryGT applies the GT predicate on the "last_changes_summary" field.
func LastChangesSummaryGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldLastChangesSummary, v))
}

// LastChangesSummaryGTE applies the GTE predicate on the "last_changes_summary" field.
func LastChangesSummaryGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldLastChangesSummary, v))
}

// LastChangesSummaryLT applies the LT predicate on the "last_changes_summary" field.
func LastChangesSummaryLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldLastChangesSummary, v))
}

// LastChangesSummaryLTE applies the LTE predicate on the "last_changes_summary" field.
func LastChangesSummaryLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldLastChangesSummary, v))
}

// LastChangesSummaryContains applies the Contains predicate on the "last_changes_summary" field.
func LastChangesSummaryContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldLastChangesSummary, v))
}

// LastChangesSummaryHasPrefix applies the HasPrefix predicate on the "last_changes_summary" field.
func LastChangesSummaryHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldLastChangesSummary, v))
}

// LastChangesSummaryHasSuffix applies the HasSuffix predicate on the "last_changes_summary" field.
func LastChangesSummaryHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldLastChangesSummary, v))
}

// LastChangesSummaryIsNil applies the IsNil predicate on the "last_changes_summary" field.
func LastChangesSummaryIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldLastChangesSummary))
}

// LastChangesSummaryNotNil applies the NotNil predicate on the "last_changes_summary" field.
func LastChangesSummaryNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldLastChangesSummary))
}

// LastChangesSummaryEqualFold applies the EqualFold predicate on the "last_changes_summary" field.
func LastChangesSummaryEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldLastChangesSummary, v))
}

// LastChangesSummaryContainsFold applies the ContainsFold predicate on the "last_changes_summary" field.
func LastChangesSummaryContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldLastChangesSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClauses applies the HasEdge predicate on the "clauses" edge.
func HasClauses() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClausesTable, ClausesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClausesWith applies the HasEdge predicate on the "clauses" edge with a given conditions (other predicates).
func HasClausesWith(preds ...predicate.Clause) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newClausesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
