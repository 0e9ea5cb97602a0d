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
	"github.com/contractwatch/contractwatch/gen/ent/contract"
	"github.com/contractwatch/contractwatch/gen/ent/organization"
	"github.com/contractwatch/contractwatch/gen/ent/predicate"
	"github.com/google/uuid"
)

// OrganizationUpdate is the builder for updating Organization entities.
type OrganizationUpdate struct {
	config
	hooks    []Hook
	mutation *OrganizationMutation
}

// Where appends a list predicates to the OrganizationUpdate builder.
func (_u *OrganizationUpdate) Where(ps ...predicate.Organization) *OrganizationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *OrganizationUpdate) SetName(v string) *OrganizationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableName(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *OrganizationUpdate) SetPlan(v string) *OrganizationUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillablePlan(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetAiExtractionsCount sets the "ai_extractions_count" field.
func (_u *OrganizationUpdate) SetAiExtractionsCount(v int) *OrganizationUpdate {
	_u.mutation.ResetAiExtractionsCount()
	_u.mutation.SetAiExtractionsCount(v)
	return _u
}

// SetNillableAiExtractionsCount sets the "ai_extractions_count" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableAiExtractionsCount(v *int) *OrganizationUpdate {
	if v != nil {
		_u.SetAiExtractionsCount(*v)
	}
	return _u
}

// AddAiExtractionsCount adds value to the "ai_extractions_count" field.
func (_u *OrganizationUpdate) AddAiExtractionsCount(v int) *OrganizationUpdate {
	_u.mutation.AddAiExtractionsCount(v)
	return _u
}

// SetAiExtractionsResetAt sets the "ai_extractions_reset_at" field.
func (_u *OrganizationUpdate) SetAiExtractionsResetAt(v time.Time) *OrganizationUpdate {
	_u.mutation.SetAiExtractionsResetAt(v)
	return _u
}

// SetNillableAiExtractionsResetAt sets the "ai_extractions_reset_at" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableAiExtractionsResetAt(v *time.Time) *OrganizationUpdate {
	if v != nil {
		_u.SetAiExtractionsResetAt(*v)
	}
	return _u
}

// ClearAiExtractionsResetAt clears the value of the "ai_extractions_reset_at" field.
func (_u *OrganizationUpdate) ClearAiExtractionsResetAt() *OrganizationUpdate {
	_u.mutation.ClearAiExtractionsResetAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrganizationUpdate) SetCreatedAt(v time.Time) *OrganizationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableCreatedAt(v *time.Time) *OrganizationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrganizationUpdate) SetUpdatedAt(v time.Time) *OrganizationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddContractIDs adds the "contracts" edge to the Contract entity by IDs.
func (_u *OrganizationUpdate) AddContractIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.AddContractIDs(ids...)
	return _u
}

// AddContracts adds the "contracts" edges to the Contract entity.
func (_u *OrganizationUpdate) AddContracts(v ...*Contract) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContractIDs(ids...)
}

// Mutation returns the OrganizationMutation object of the builder.
func (_u *OrganizationUpdate) Mutation() *OrganizationMutation {
	return _u.mutation
}

// ClearContracts clears all "contracts" edges to the Contract entity.
func (_u *OrganizationUpdate) ClearContracts() *OrganizationUpdate {
	_u.mutation.ClearContracts()
	return _u
}

// RemoveContractIDs removes the "contracts" edge to Contract entities by IDs.
func (_u *OrganizationUpdate) RemoveContractIDs(ids ...uuid.UUID) *OrganizationUpdate {
	_u.mutation.RemoveContractIDs(ids...)
	return _u
}

// RemoveContracts removes "contracts" edges to Contract entities.
func (_u *OrganizationUpdate) RemoveContracts(v ...*Contract) *OrganizationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContractIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrganizationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganizationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrganizationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganizationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrganizationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := organization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganizationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := organization.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Organization.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := organization.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Organization.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiExtractionsCount(); ok {
		if err := organization.AiExtractionsCountValidator(v); err != nil {
			return &ValidationError{Name: "ai_extractions_count", err: fmt.Errorf(`ent: validator failed for field "Organization.ai_extractions_count": %w`, err)}
		}
	}
	return nil
}

func (_u *OrganizationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organization.Table, organization.Columns, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(organization.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(organization.FieldPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiExtractionsCount(); ok {
		_spec.SetField(organization.FieldAiExtractionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiExtractionsCount(); ok {
		_spec.AddField(organization.FieldAiExtractionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiExtractionsResetAt(); ok {
		_spec.SetField(organization.FieldAiExtractionsResetAt, field.TypeTime, value)
	}
	if _u.mutation.AiExtractionsResetAtCleared() {
		_spec.ClearField(organization.FieldAiExtractionsResetAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(organization.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.ContractsTable,
			Columns: []string{organization.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContractsIDs(); len(nodes) > 0 && !_u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.ContractsTable,
			Columns: []string{organization.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.ContractsTable,
			Columns: []string{organization.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{organization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrganizationUpdateOne is the builder for updating a single Organization entity.
type OrganizationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrganizationMutation
}

// SetName sets the "name" field.
func (_u *OrganizationUpdateOne) SetName(v string) *OrganizationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableName(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *OrganizationUpdateOne) SetPlan(v string) *OrganizationUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillablePlan(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetAiExtractionsCount sets the "ai_extractions_count" field.
func (_u *OrganizationUpdateOne) SetAiExtractionsCount(v int) *OrganizationUpdateOne {
	_u.mutation.ResetAiExtractionsCount()
	_u.mutation.SetAiExtractionsCount(v)
	return _u
}

// SetNillableAiExtractionsCount sets the "ai_extractions_count" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableAiExtractionsCount(v *int) *OrganizationUpdateOne {
	if v != nil {
		_u.SetAiExtractionsCount(*v)
	}
	return _u
}

// AddAiExtractionsCount adds value to the "ai_extractions_count" field.
func (_u *OrganizationUpdateOne) AddAiExtractionsCount(v int) *OrganizationUpdateOne {
	_u.mutation.AddAiExtractionsCount(v)
	return _u
}

// SetAiExtractionsResetAt sets the "ai_extractions_reset_at" field.
func (_u *OrganizationUpdateOne) SetAiExtractionsResetAt(v time.Time) *OrganizationUpdateOne {
	_u.mutation.SetAiExtractionsResetAt(v)
	return _u
}

// SetNillableAiExtractionsResetAt sets the "ai_extractions_reset_at" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableAiExtractionsResetAt(v *time.Time) *OrganizationUpdateOne {
	if v != nil {
		_u.SetAiExtractionsResetAt(*v)
	}
	return _u
}

// ClearAiExtractionsResetAt clears the value of the "ai_extractions_reset_at" field.
func (_u *OrganizationUpdateOne) ClearAiExtractionsResetAt() *OrganizationUpdateOne {
	_u.mutation.ClearAiExtractionsResetAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrganizationUpdateOne) SetCreatedAt(v time.Time) *OrganizationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableCreatedAt(v *time.Time) *OrganizationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrganizationUpdateOne) SetUpdatedAt(v time.Time) *OrganizationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddContractIDs adds the "contracts" edge to the Contract entity by IDs.
func (_u *OrganizationUpdateOne) AddContractIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.AddContractIDs(ids...)
	return _u
}

// AddContracts adds the "contracts" edges to the Contract entity.
func (_u *OrganizationUpdateOne) AddContracts(v ...*Contract) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContractIDs(ids...)
}

// Mutation returns the OrganizationMutation object of the builder.
func (_u *OrganizationUpdateOne) Mutation() *OrganizationMutation {
	return _u.mutation
}

// ClearContracts clears all "contracts" edges to the Contract entity.
func (_u *OrganizationUpdateOne) ClearContracts() *OrganizationUpdateOne {
	_u.mutation.ClearContracts()
	return _u
}

// RemoveContractIDs removes the "contracts" edge to Contract entities by IDs.
func (_u *OrganizationUpdateOne) RemoveContractIDs(ids ...uuid.UUID) *OrganizationUpdateOne {
	_u.mutation.RemoveContractIDs(ids...)
	return _u
}

// RemoveContracts removes "contracts" edges to Contract entities.
func (_u *OrganizationUpdateOne) RemoveContracts(v ...*Contract) *OrganizationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContractIDs(ids...)
}

// Where appends a list predicates to the OrganizationUpdate builder.
func (_u *OrganizationUpdateOne) Where(ps ...predicate.Organization) *OrganizationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrganizationUpdateOne) Select(field string, fields ...string) *OrganizationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Organization entity.
func (_u *OrganizationUpdateOne) Save(ctx context.Context) (*Organization, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganizationUpdateOne) SaveX(ctx context.Context) *Organization {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrganizationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganizationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrganizationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := organization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganizationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := organization.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Organization.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := organization.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Organization.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiExtractionsCount(); ok {
		if err := organization.AiExtractionsCountValidator(v); err != nil {
			return &ValidationError{Name: "ai_extractions_count", err: fmt.Errorf(`ent: validator failed for field "Organization.ai_extractions_count": %w`, err)}
		}
	}
	return nil
}

func (_u *OrganizationUpdateOne) sqlSave(ctx context.Context) (_node *Organization, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organization.Table, organization.Columns, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Organization.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, organization.FieldID)
		for _, f := range fields {
			if !organization.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != organization.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(organization.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(organization.FieldPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiExtractionsCount(); ok {
		_spec.SetField(organization.FieldAiExtractionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiExtractionsCount(); ok {
		_spec.AddField(organization.FieldAiExtractionsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiExtractionsResetAt(); ok {
		_spec.SetField(organization.FieldAiExtractionsResetAt, field.TypeTime, value)
	}
	if _u.mutation.AiExtractionsResetAtCleared() {
		_spec.ClearField(organization.FieldAiExtractionsResetAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(organization.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.ContractsTable,
			Columns: []string{organization.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContractsIDs(); len(nodes) > 0 && !_u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.ContractsTable,
			Columns: []string{organization.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   organization.ContractsTable,
			Columns: []string{organization.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Organization{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{organization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
