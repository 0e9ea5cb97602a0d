// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/contractwatch/contractwatch/gen/ent/clause"
	"github.com/contractwatch/contractwatch/gen/ent/contract"
	"github.com/contractwatch/contractwatch/gen/ent/document"
	"github.com/contractwatch/contractwatch/gen/ent/organization"
	"github.com/google/uuid"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *ContractCreate) SetOrganizationID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ContractCreate) SetTitle(v string) *ContractCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *ContractCreate) SetVendorName(v string) *ContractCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *ContractCreate) SetNillableVendorName(v *string) *ContractCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetContractType sets the "contract_type" field.
func (_c *ContractCreate) SetContractType(v string) *ContractCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_c *ContractCreate) SetNillableContractType(v *string) *ContractCreate {
	if v != nil {
		_c.SetContractType(*v)
	}
	return _c
}

// SetDirection sets the "direction" field.
func (_c *ContractCreate) SetDirection(v string) *ContractCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_c *ContractCreate) SetNillableDirection(v *string) *ContractCreate {
	if v != nil {
		_c.SetDirection(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ContractCreate) SetStartDate(v time.Time) *ContractCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableStartDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ContractCreate) SetEndDate(v time.Time) *ContractCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableEndDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetMonthlyValue sets the "monthly_value" field.
func (_c *ContractCreate) SetMonthlyValue(v float64) *ContractCreate {
	_c.mutation.SetMonthlyValue(v)
	return _c
}

// SetNillableMonthlyValue sets the "monthly_value" field if the given value is not nil.
func (_c *ContractCreate) SetNillableMonthlyValue(v *float64) *ContractCreate {
	if v != nil {
		_c.SetMonthlyValue(*v)
	}
	return _c
}

// SetTotalValue sets the "total_value" field.
func (_c *ContractCreate) SetTotalValue(v float64) *ContractCreate {
	_c.mutation.SetTotalValue(v)
	return _c
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_c *ContractCreate) SetNillableTotalValue(v *float64) *ContractCreate {
	if v != nil {
		_c.SetTotalValue(*v)
	}
	return _c
}

// SetAutoRenews sets the "auto_renews" field.
func (_c *ContractCreate) SetAutoRenews(v bool) *ContractCreate {
	_c.mutation.SetAutoRenews(v)
	return _c
}

// SetNillableAutoRenews sets the "auto_renews" field if the given value is not nil.
func (_c *ContractCreate) SetNillableAutoRenews(v *bool) *ContractCreate {
	if v != nil {
		_c.SetAutoRenews(*v)
	}
	return _c
}

// SetRenewalTerm sets the "renewal_term" field.
func (_c *ContractCreate) SetRenewalTerm(v string) *ContractCreate {
	_c.mutation.SetRenewalTerm(v)
	return _c
}

// SetNillableRenewalTerm sets the "renewal_term" field if the given value is not nil.
func (_c *ContractCreate) SetNillableRenewalTerm(v *string) *ContractCreate {
	if v != nil {
		_c.SetRenewalTerm(*v)
	}
	return _c
}

// SetNoticePeriodDays sets the "notice_period_days" field.
func (_c *ContractCreate) SetNoticePeriodDays(v int) *ContractCreate {
	_c.mutation.SetNoticePeriodDays(v)
	return _c
}

// SetNillableNoticePeriodDays sets the "notice_period_days" field if the given value is not nil.
func (_c *ContractCreate) SetNillableNoticePeriodDays(v *int) *ContractCreate {
	if v != nil {
		_c.SetNoticePeriodDays(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ContractCreate) SetNotes(v string) *ContractCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ContractCreate) SetNillableNotes(v *string) *ContractCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetExtractionStatus sets the "extraction_status" field.
func (_c *ContractCreate) SetExtractionStatus(v string) *ContractCreate {
	_c.mutation.SetExtractionStatus(v)
	return _c
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_c *ContractCreate) SetNillableExtractionStatus(v *string) *ContractCreate {
	if v != nil {
		_c.SetExtractionStatus(*v)
	}
	return _c
}

// SetBaselineJSON sets the "baseline_json" field.
func (_c *ContractCreate) SetBaselineJSON(v string) *ContractCreate {
	_c.mutation.SetBaselineJSON(v)
	return _c
}

// SetNillableBaselineJSON sets the "baseline_json" field if the given value is not nil.
func (_c *ContractCreate) SetNillableBaselineJSON(v *string) *ContractCreate {
	if v != nil {
		_c.SetBaselineJSON(*v)
	}
	return _c
}

// SetLastChangesSummary sets the "last_changes_summary" field.
func (_c *ContractCreate) SetLastChangesSummary(v string) *ContractCreate {
	_c.mutation.SetLastChangesSummary(v)
	return _c
}

// SetNillableLastChangesSummary sets the "last_changes_summary" field if the given value is not nil.
func (_c *ContractCreate) SetNillableLastChangesSummary(v *string) *ContractCreate {
	if v != nil {
		_c.SetLastChangesSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *ContractCreate) SetOrganization(v *Organization) *ContractCreate {
	return _c.SetOrganizationID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *ContractCreate) AddDocumentIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *ContractCreate) AddDocuments(v ...*Document) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddClauseIDs adds the "clauses" edge to the Clause entity by IDs.
func (_c *ContractCreate) AddClauseIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddClauseIDs(ids...)
	return _c
}

// AddClauses adds the "clauses" edges to the Clause entity.
func (_c *ContractCreate) AddClauses(v ...*Clause) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClauseIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.Direction(); !ok {
		v := contract.DefaultDirection
		_c.mutation.SetDirection(v)
	}
	if _, ok := _c.mutation.AutoRenews(); !ok {
		v := contract.DefaultAutoRenews
		_c.mutation.SetAutoRenews(v)
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		v := contract.DefaultExtractionStatus
		_c.mutation.SetExtractionStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Contract.organization_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Contract.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := contract.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Contract.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ContractType(); ok {
		if err := contract.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "Contract.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := contract.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Contract.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoRenews(); !ok {
		return &ValidationError{Name: "auto_renews", err: errors.New(`ent: missing required field "Contract.auto_renews"`)}
	}
	if v, ok := _c.mutation.RenewalTerm(); ok {
		if err := contract.RenewalTermValidator(v); err != nil {
			return &ValidationError{Name: "renewal_term", err: fmt.Errorf(`ent: validator failed for field "Contract.renewal_term": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NoticePeriodDays(); ok {
		if err := contract.NoticePeriodDaysValidator(v); err != nil {
			return &ValidationError{Name: "notice_period_days", err: fmt.Errorf(`ent: validator failed for field "Contract.notice_period_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		return &ValidationError{Name: "extraction_status", err: errors.New(`ent: missing required field "Contract.extraction_status"`)}
	}
	if v, ok := _c.mutation.ExtractionStatus(); ok {
		if err := contract.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Contract.extraction_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	if len(_c.mutation.OrganizationIDs()) == 0 {
		return &ValidationError{Name: "organization", err: errors.New(`ent: missing required edge "Contract.organization"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(contract.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(contract.FieldVendorName, field.TypeString, value)
		_node.VendorName = &value
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(contract.FieldContractType, field.TypeString, value)
		_node.ContractType = &value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(contract.FieldDirection, field.TypeString, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(contract.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(contract.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.MonthlyValue(); ok {
		_spec.SetField(contract.FieldMonthlyValue, field.TypeFloat64, value)
		_node.MonthlyValue = &value
	}
	if value, ok := _c.mutation.TotalValue(); ok {
		_spec.SetField(contract.FieldTotalValue, field.TypeFloat64, value)
		_node.TotalValue = &value
	}
	if value, ok := _c.mutation.AutoRenews(); ok {
		_spec.SetField(contract.FieldAutoRenews, field.TypeBool, value)
		_node.AutoRenews = value
	}
	if value, ok := _c.mutation.RenewalTerm(); ok {
		_spec.SetField(contract.FieldRenewalTerm, field.TypeString, value)
		_node.RenewalTerm = &value
	}
	if value, ok := _c.mutation.NoticePeriodDays(); ok {
		_spec.SetField(contract.FieldNoticePeriodDays, field.TypeInt, value)
		_node.NoticePeriodDays = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(contract.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.ExtractionStatus(); ok {
		_spec.SetField(contract.FieldExtractionStatus, field.TypeString, value)
		_node.ExtractionStatus = value
	}
	if value, ok := _c.mutation.BaselineJSON(); ok {
		_spec.SetField(contract.FieldBaselineJSON, field.TypeString, value)
		_node.BaselineJSON = &value
	}
	if value, ok := _c.mutation.LastChangesSummary(); ok {
		_spec.SetField(contract.FieldLastChangesSummary, field.TypeString, value)
		_node.LastChangesSummary = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_node.OrganizationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClausesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
