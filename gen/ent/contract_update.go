// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/contractwatch/contractwatch/gen/ent/clause"
	"github.com/contractwatch/contractwatch/gen/ent/contract"
	"github.com/contractwatch/contractwatch/gen/ent/document"
	"github.com/contractwatch/contractwatch/gen/ent/organization"
	"github.com/contractwatch/contractwatch/gen/ent/predicate"
	"github.com/google/uuid"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *ContractUpdate) SetOrganizationID(v uuid.UUID) *ContractUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableOrganizationID(v *uuid.UUID) *ContractUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContractUpdate) SetTitle(v string) *ContractUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTitle(v *string) *ContractUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ContractUpdate) SetVendorName(v string) *ContractUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableVendorName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ContractUpdate) ClearVendorName() *ContractUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ContractUpdate) SetContractType(v string) *ContractUpdate {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableContractType(v *string) *ContractUpdate {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// ClearContractType clears the value of the "contract_type" field.
func (_u *ContractUpdate) ClearContractType() *ContractUpdate {
	_u.mutation.ClearContractType()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *ContractUpdate) SetDirection(v string) *ContractUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDirection(v *string) *ContractUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ContractUpdate) SetStartDate(v time.Time) *ContractUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableStartDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ContractUpdate) ClearStartDate() *ContractUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ContractUpdate) SetEndDate(v time.Time) *ContractUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableEndDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ContractUpdate) ClearEndDate() *ContractUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetMonthlyValue sets the "monthly_value" field.
func (_u *ContractUpdate) SetMonthlyValue(v float64) *ContractUpdate {
	_u.mutation.ResetMonthlyValue()
	_u.mutation.SetMonthlyValue(v)
	return _u
}

// SetNillableMonthlyValue sets the "monthly_value" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableMonthlyValue(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetMonthlyValue(*v)
	}
	return _u
}

// AddMonthlyValue adds value to the "monthly_value" field.
func (_u *ContractUpdate) AddMonthlyValue(v float64) *ContractUpdate {
	_u.mutation.AddMonthlyValue(v)
	return _u
}

// ClearMonthlyValue clears the value of the "monthly_value" field.
func (_u *ContractUpdate) ClearMonthlyValue() *ContractUpdate {
	_u.mutation.ClearMonthlyValue()
	return _u
}

// SetTotalValue sets the "total_value" field.
func (_u *ContractUpdate) SetTotalValue(v float64) *ContractUpdate {
	_u.mutation.ResetTotalValue()
	_u.mutation.SetTotalValue(v)
	return _u
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTotalValue(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetTotalValue(*v)
	}
	return _u
}

// AddTotalValue adds value to the "total_value" field.
func (_u *ContractUpdate) AddTotalValue(v float64) *ContractUpdate {
	_u.mutation.AddTotalValue(v)
	return _u
}

// ClearTotalValue clears the value of the "total_value" field.
func (_u *ContractUpdate) ClearTotalValue() *ContractUpdate {
	_u.mutation.ClearTotalValue()
	return _u
}

// SetAutoRenews sets the "auto_renews" field.
func (_u *ContractUpdate) SetAutoRenews(v bool) *ContractUpdate {
	_u.mutation.SetAutoRenews(v)
	return _u
}

// SetNillableAutoRenews sets the "auto_renews" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableAutoRenews(v *bool) *ContractUpdate {
	if v != nil {
		_u.SetAutoRenews(*v)
	}
	return _u
}

// SetRenewalTerm sets the "renewal_term" field.
func (_u *ContractUpdate) SetRenewalTerm(v string) *ContractUpdate {
	_u.mutation.SetRenewalTerm(v)
	return _u
}

// SetNillableRenewalTerm sets the "renewal_term" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableRenewalTerm(v *string) *ContractUpdate {
	if v != nil {
		_u.SetRenewalTerm(*v)
	}
	return _u
}

// ClearRenewalTerm clears the value of the "renewal_term" field.
func (_u *ContractUpdate) ClearRenewalTerm() *ContractUpdate {
	_u.mutation.ClearRenewalTerm()
	return _u
}

// SetNoticePeriodDays sets the "notice_period_days" field.
func (_u *ContractUpdate) SetNoticePeriodDays(v int) *ContractUpdate {
	_u.mutation.ResetNoticePeriodDays()
	_u.mutation.SetNoticePeriodDays(v)
	return _u
}

// SetNillableNoticePeriodDays sets the "notice_period_days" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableNoticePeriodDays(v *int) *ContractUpdate {
	if v != nil {
		_u.SetNoticePeriodDays(*v)
	}
	return _u
}

// AddNoticePeriodDays adds value to the "notice_period_days" field.
func (_u *ContractUpdate) AddNoticePeriodDays(v int) *ContractUpdate {
	_u.mutation.AddNoticePeriodDays(v)
	return _u
}

// ClearNoticePeriodDays clears the value of the "notice_period_days" field.
func (_u *ContractUpdate) ClearNoticePeriodDays() *ContractUpdate {
	_u.mutation.ClearNoticePeriodDays()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ContractUpdate) SetNotes(v string) *ContractUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableNotes(v *string) *ContractUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ContractUpdate) ClearNotes() *ContractUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *ContractUpdate) SetExtractionStatus(v string) *ContractUpdate {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableExtractionStatus(v *string) *ContractUpdate {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetBaselineJSON sets the "baseline_json" field.
func (_u *ContractUpdate) SetBaselineJSON(v string) *ContractUpdate {
	_u.mutation.SetBaselineJSON(v)
	return _u
}

// SetNillableBaselineJSON sets the "baseline_json" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableBaselineJSON(v *string) *ContractUpdate {
	if v != nil {
		_u.SetBaselineJSON(*v)
	}
	return _u
}

// ClearBaselineJSON clears the value of the "baseline_json" field.
func (_u *ContractUpdate) ClearBaselineJSON() *ContractUpdate {
	_u.mutation.ClearBaselineJSON()
	return _u
}

// SetLastChangesSummary sets the "last_changes_summary" field.
func (_u *ContractUpdate) SetLastChangesSummary(v string) *ContractUpdate {
	_u.mutation.SetLastChangesSummary(v)
	return _u
}

// SetNillableLastChangesSummary sets the "last_changes_summary" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableLastChangesSummary(v *string) *ContractUpdate {
	if v != nil {
		_u.SetLastChangesSummary(*v)
	}
	return _u
}

// ClearLastChangesSummary clears the value of the "last_changes_summary" field.
func (_u *ContractUpdate) ClearLastChangesSummary() *ContractUpdate {
	_u.mutation.ClearLastChangesSummary()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *ContractUpdate) SetOrganization(v *Organization) *ContractUpdate {
	return _u.SetOrganizationID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ContractUpdate) AddDocumentIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ContractUpdate) AddDocuments(v ...*Document) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddClauseIDs adds the "clauses" edge to the Clause entity by IDs.
func (_u *ContractUpdate) AddClauseIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddClauseIDs(ids...)
	return _u
}

// AddClauses adds the "clauses" edges to the Clause entity.
func (_u *ContractUpdate) AddClauses(v ...*Clause) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClauseIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *ContractUpdate) ClearOrganization() *ContractUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ContractUpdate) ClearDocuments() *ContractUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ContractUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ContractUpdate) RemoveDocuments(v ...*Document) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearClauses clears all "clauses" edges to the Clause entity.
func (_u *ContractUpdate) ClearClauses() *ContractUpdate {
	_u.mutation.ClearClauses()
	return _u
}

// RemoveClauseIDs removes the "clauses" edge to Clause entities by IDs.
func (_u *ContractUpdate) RemoveClauseIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveClauseIDs(ids...)
	return _u
}

// RemoveClauses removes "clauses" edges to Clause entities.
func (_u *ContractUpdate) RemoveClauses(v ...*Clause) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClauseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := contract.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Contract.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContractType(); ok {
		if err := contract.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := contract.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Contract.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RenewalTerm(); ok {
		if err := contract.RenewalTermValidator(v); err != nil {
			return &ValidationError{Name: "renewal_term", err: fmt.Errorf(`ent: validator failed for field "Contract.renewal_term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NoticePeriodDays(); ok {
		if err := contract.NoticePeriodDaysValidator(v); err != nil {
			return &ValidationError{Name: "notice_period_days", err: fmt.Errorf(`ent: validator failed for field "Contract.notice_period_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := contract.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Contract.extraction_status": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.organization"`)
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(contract.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(contract.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(contract.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(contract.FieldContractType, field.TypeString, value)
	}
	if _u.mutation.ContractTypeCleared() {
		_spec.ClearField(contract.FieldContractType, field.TypeString)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(contract.FieldDirection, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(contract.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(contract.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MonthlyValue(); ok {
		_spec.SetField(contract.FieldMonthlyValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyValue(); ok {
		_spec.AddField(contract.FieldMonthlyValue, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlyValueCleared() {
		_spec.ClearField(contract.FieldMonthlyValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalValue(); ok {
		_spec.SetField(contract.FieldTotalValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalValue(); ok {
		_spec.AddField(contract.FieldTotalValue, field.TypeFloat64, value)
	}
	if _u.mutation.TotalValueCleared() {
		_spec.ClearField(contract.FieldTotalValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AutoRenews(); ok {
		_spec.SetField(contract.FieldAutoRenews, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RenewalTerm(); ok {
		_spec.SetField(contract.FieldRenewalTerm, field.TypeString, value)
	}
	if _u.mutation.RenewalTermCleared() {
		_spec.ClearField(contract.FieldRenewalTerm, field.TypeString)
	}
	if value, ok := _u.mutation.NoticePeriodDays(); ok {
		_spec.SetField(contract.FieldNoticePeriodDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoticePeriodDays(); ok {
		_spec.AddField(contract.FieldNoticePeriodDays, field.TypeInt, value)
	}
	if _u.mutation.NoticePeriodDaysCleared() {
		_spec.ClearField(contract.FieldNoticePeriodDays, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(contract.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(contract.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(contract.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineJSON(); ok {
		_spec.SetField(contract.FieldBaselineJSON, field.TypeString, value)
	}
	if _u.mutation.BaselineJSONCleared() {
		_spec.ClearField(contract.FieldBaselineJSON, field.TypeString)
	}
	if value, ok := _u.mutation.LastChangesSummary(); ok {
		_spec.SetField(contract.FieldLastChangesSummary, field.TypeString, value)
	}
	if _u.mutation.LastChangesSummaryCleared() {
		_spec.ClearField(contract.FieldLastChangesSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.OrganizationTable,
			Columns: []string{contract.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.OrganizationTable,
			Columns: []string{contract.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DocumentsTable,
			Columns: []string{contract.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DocumentsTable,
			Columns: []string{contract.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DocumentsTable,
			Columns: []string{contract.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClausesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ClausesTable,
			Columns: []string{contract.ClausesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClausesIDs(); len(nodes) > 0 && !_u.mutation.ClausesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ClausesTable,
			Columns: []string{contract.ClausesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClausesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ClausesTable,
			Columns: []string{contract.ClausesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *ContractUpdateOne) SetOrganizationID(v uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *ContractUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ContractUpdateOne) SetTitle(v string) *ContractUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTitle(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ContractUpdateOne) SetVendorName(v string) *ContractUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableVendorName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ContractUpdateOne) ClearVendorName() *ContractUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ContractUpdateOne) SetContractType(v string) *ContractUpdateOne {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableContractType(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// ClearContractType clears the value of the "contract_type" field.
func (_u *ContractUpdateOne) ClearContractType() *ContractUpdateOne {
	_u.mutation.ClearContractType()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *ContractUpdateOne) SetDirection(v string) *ContractUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDirection(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ContractUpdateOne) SetStartDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableStartDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ContractUpdateOne) ClearStartDate() *ContractUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ContractUpdateOne) SetEndDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableEndDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ContractUpdateOne) ClearEndDate() *ContractUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetMonthlyValue sets the "monthly_value" field.
func (_u *ContractUpdateOne) SetMonthlyValue(v float64) *ContractUpdateOne {
	_u.mutation.ResetMonthlyValue()
	_u.mutation.SetMonthlyValue(v)
	return _u
}

// SetNillableMonthlyValue sets the "monthly_value" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableMonthlyValue(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetMonthlyValue(*v)
	}
	return _u
}

// AddMonthlyValue adds value to the "monthly_value" field.
func (_u *ContractUpdateOne) AddMonthlyValue(v float64) *ContractUpdateOne {
	_u.mutation.AddMonthlyValue(v)
	return _u
}

// ClearMonthlyValue clears the value of the "monthly_value" field.
func (_u *ContractUpdateOne) ClearMonthlyValue() *ContractUpdateOne {
	_u.mutation.ClearMonthlyValue()
	return _u
}

// SetTotalValue sets the "total_value" field.
func (_u *ContractUpdateOne) SetTotalValue(v float64) *ContractUpdateOne {
	_u.mutation.ResetTotalValue()
	_u.mutation.SetTotalValue(v)
	return _u
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTotalValue(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetTotalValue(*v)
	}
	return _u
}

// AddTotalValue adds value to the "total_value" field.
func (_u *ContractUpdateOne) AddTotalValue(v float64) *ContractUpdateOne {
	_u.mutation.AddTotalValue(v)
	return _u
}

// ClearTotalValue clears the value of the "total_value" field.
func (_u *ContractUpdateOne) ClearTotalValue() *ContractUpdateOne {
	_u.mutation.ClearTotalValue()
	return _u
}

// SetAutoRenews sets the "auto_renews" field.
func (_u *ContractUpdateOne) SetAutoRenews(v bool) *ContractUpdateOne {
	_u.mutation.SetAutoRenews(v)
	return _u
}

// SetNillableAutoRenews sets the "auto_renews" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableAutoRenews(v *bool) *ContractUpdateOne {
	if v != nil {
		_u.SetAutoRenews(*v)
	}
	return _u
}

// SetRenewalTerm sets the "renewal_term" field.
func (_u *ContractUpdateOne) SetRenewalTerm(v string) *ContractUpdateOne {
	_u.mutation.SetRenewalTerm(v)
	return _u
}

// SetNillableRenewalTerm sets the "renewal_term" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableRenewalTerm(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetRenewalTerm(*v)
	}
	return _u
}

// ClearRenewalTerm clears the value of the "renewal_term" field.
func (_u *ContractUpdateOne) ClearRenewalTerm() *ContractUpdateOne {
	_u.mutation.ClearRenewalTerm()
	return _u
}

// SetNoticePeriodDays sets the "notice_period_days" field.
func (_u *ContractUpdateOne) SetNoticePeriodDays(v int) *ContractUpdateOne {
	_u.mutation.ResetNoticePeriodDays()
	_u.mutation.SetNoticePeriodDays(v)
	return _u
}

// SetNillableNoticePeriodDays sets the "notice_period_days" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableNoticePeriodDays(v *int) *ContractUpdateOne {
	if v != nil {
		_u.SetNoticePeriodDays(*v)
	}
	return _u
}

// AddNoticePeriodDays adds value to the "notice_period_days" field.
func (_u *ContractUpdateOne) AddNoticePeriodDays(v int) *ContractUpdateOne {
	_u.mutation.AddNoticePeriodDays(v)
	return _u
}

// ClearNoticePeriodDays clears the value of the "notice_period_days" field.
func (_u *ContractUpdateOne) ClearNoticePeriodDays() *ContractUpdateOne {
	_u.mutation.ClearNoticePeriodDays()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ContractUpdateOne) SetNotes(v string) *ContractUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableNotes(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ContractUpdateOne) ClearNotes() *ContractUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *ContractUpdateOne) SetExtractionStatus(v string) *ContractUpdateOne {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableExtractionStatus(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetBaselineJSON sets the "baseline_json" field.
func (_u *ContractUpdateOne) SetBaselineJSON(v string) *ContractUpdateOne {
	_u.mutation.SetBaselineJSON(v)
	return _u
}

// SetNillableBaselineJSON sets the "baseline_json" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableBaselineJSON(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetBaselineJSON(*v)
	}
	return _u
}

// ClearBaselineJSON clears the value of the "baseline_json" field.
func (_u *ContractUpdateOne) ClearBaselineJSON() *ContractUpdateOne {
	_u.mutation.ClearBaselineJSON()
	return _u
}

// SetLastChangesSummary sets the "last_changes_summary" field.
func (_u *ContractUpdateOne) SetLastChangesSummary(v string) *ContractUpdateOne {
	_u.mutation.SetLastChangesSummary(v)
	return _u
}

// SetNillableLastChangesSummary sets the "last_changes_summary" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableLastChangesSummary(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetLastChangesSummary(*v)
	}
	return _u
}

// ClearLastChangesSummary clears the value of the "last_changes_summary" field.
func (_u *ContractUpdateOne) ClearLastChangesSummary() *ContractUpdateOne {
	_u.mutation.ClearLastChangesSummary()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *ContractUpdateOne) SetOrganization(v *Organization) *ContractUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ContractUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ContractUpdateOne) AddDocuments(v ...*Document) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddClauseIDs adds the "clauses" edge to the Clause entity by IDs.
func (_u *ContractUpdateOne) AddClauseIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddClauseIDs(ids...)
	return _u
}

// AddClauses adds the "clauses" edges to the Clause entity.
func (_u *ContractUpdateOne) AddClauses(v ...*Clause) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClauseIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *ContractUpdateOne) ClearOrganization() *ContractUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ContractUpdateOne) ClearDocuments() *ContractUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ContractUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ContractUpdateOne) RemoveDocuments(v ...*Document) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearClauses clears all "clauses" edges to the Clause entity.
func (_u *ContractUpdateOne) ClearClauses() *ContractUpdateOne {
	_u.mutation.ClearClauses()
	return _u
}

// RemoveClauseIDs removes the "clauses" edge to Clause entities by IDs.
func (_u *ContractUpdateOne) RemoveClauseIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveClauseIDs(ids...)
	return _u
}

// RemoveClauses removes "clauses" edges to Clause entities.
func (_u *ContractUpdateOne) RemoveClauses(v ...*Clause) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClauseIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := contract.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Contract.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContractType(); ok {
		if err := contract.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := contract.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Contract.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RenewalTerm(); ok {
		if err := contract.RenewalTermValidator(v); err != nil {
			return &ValidationError{Name: "renewal_term", err: fmt.Errorf(`ent: validator failed for field "Contract.renewal_term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NoticePeriodDays(); ok {
		if err := contract.NoticePeriodDaysValidator(v); err != nil {
			return &ValidationError{Name: "notice_period_days", err: fmt.Errorf(`ent: validator failed for field "Contract.notice_period_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := contract.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Contract.extraction_status": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.organization"`)
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(contract.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(contract.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(contract.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(contract.FieldContractType, field.TypeString, value)
	}
	if _u.mutation.ContractTypeCleared() {
		_spec.ClearField(contract.FieldContractType, field.TypeString)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(contract.FieldDirection, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(contract.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(contract.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.MonthlyValue(); ok {
		_spec.SetField(contract.FieldMonthlyValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyValue(); ok {
		_spec.AddField(contract.FieldMonthlyValue, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlyValueCleared() {
		_spec.ClearField(contract.FieldMonthlyValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalValue(); ok {
		_spec.SetField(contract.FieldTotalValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalValue(); ok {
		_spec.AddField(contract.FieldTotalValue, field.TypeFloat64, value)
	}
	if _u.mutation.TotalValueCleared() {
		_spec.ClearField(contract.FieldTotalValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AutoRenews(); ok {
		_spec.SetField(contract.FieldAutoRenews, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RenewalTerm(); ok {
		_spec.SetField(contract.FieldRenewalTerm, field.TypeString, value)
	}
	if _u.mutation.RenewalTermCleared() {
		_spec.ClearField(contract.FieldRenewalTerm, field.TypeString)
	}
	if value, ok := _u.mutation.NoticePeriodDays(); ok {
		_spec.SetField(contract.FieldNoticePeriodDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoticePeriodDays(); ok {
		_spec.AddField(contract.FieldNoticePeriodDays, field.TypeInt, value)
	}
	if _u.mutation.NoticePeriodDaysCleared() {
		_spec.ClearField(contract.FieldNoticePeriodDays, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(contract.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(contract.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(contract.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineJSON(); ok {
		_spec.SetField(contract.FieldBaselineJSON, field.TypeString, value)
	}
	if _u.mutation.BaselineJSONCleared() {
		_spec.ClearField(contract.FieldBaselineJSON, field.TypeString)
	}
	if value, ok := _u.mutation.LastChangesSummary(); ok {
		_spec.SetField(contract.FieldLastChangesSummary, field.TypeString, value)
	}
	if _u.mutation.LastChangesSummaryCleared() {
		_spec.ClearField(contract.FieldLastChangesSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.OrganizationTable,
			Columns: []string{contract.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.OrganizationTable,
			Columns: []string{contract.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DocumentsTable,
			Columns: []string{contract.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DocumentsTable,
			Columns: []string{contract.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.DocumentsTable,
			Columns: []string{contract.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClausesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ClausesTable,
			Columns: []string{contract.ClausesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClausesIDs(); len(nodes) > 0 && !_u.mutation.ClausesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ClausesTable,
			Columns: []string{contract.ClausesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClausesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ClausesTable,
			Columns: []string{contract.ClausesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
