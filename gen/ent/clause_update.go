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
	"github.com/contractwatch/contractwatch/gen/ent/predicate"
	"github.com/google/uuid"
)

// ClauseUpdate is the builder for updating Clause entities.
type ClauseUpdate struct {
	config
	hooks    []Hook
	mutation *ClauseMutation
}

// Where appends a list predicates to the ClauseUpdate builder.
func (_u *ClauseUpdate) Where(ps ...predicate.Clause) *ClauseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ClauseUpdate) SetContractID(v uuid.UUID) *ClauseUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ClauseUpdate) SetNillableContractID(v *uuid.UUID) *ClauseUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetClauseType sets the "clause_type" field.
func (_u *ClauseUpdate) SetClauseType(v string) *ClauseUpdate {
	_u.mutation.SetClauseType(v)
	return _u
}

// SetNillableClauseType sets the "clause_type" field if the given value is not nil.
func (_u *ClauseUpdate) SetNillableClauseType(v *string) *ClauseUpdate {
	if v != nil {
		_u.SetClauseType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ClauseUpdate) SetContent(v string) *ClauseUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ClauseUpdate) SetNillableContent(v *string) *ClauseUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetPageReference sets the "page_reference" field.
func (_u *ClauseUpdate) SetPageReference(v string) *ClauseUpdate {
	_u.mutation.SetPageReference(v)
	return _u
}

// SetNillablePageReference sets the "page_reference" field if the given value is not nil.
func (_u *ClauseUpdate) SetNillablePageReference(v *string) *ClauseUpdate {
	if v != nil {
		_u.SetPageReference(*v)
	}
	return _u
}

// ClearPageReference clears the value of the "page_reference" field.
func (_u *ClauseUpdate) ClearPageReference() *ClauseUpdate {
	_u.mutation.ClearPageReference()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ClauseUpdate) SetConfidenceScore(v int) *ClauseUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ClauseUpdate) SetNillableConfidenceScore(v *int) *ClauseUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ClauseUpdate) AddConfidenceScore(v int) *ClauseUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ClauseUpdate) ClearConfidenceScore() *ClauseUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *ClauseUpdate) SetSourceDocumentID(v uuid.UUID) *ClauseUpdate {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *ClauseUpdate) SetNillableSourceDocumentID(v *uuid.UUID) *ClauseUpdate {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (_u *ClauseUpdate) ClearSourceDocumentID() *ClauseUpdate {
	_u.mutation.ClearSourceDocumentID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClauseUpdate) SetCreatedAt(v time.Time) *ClauseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClauseUpdate) SetNillableCreatedAt(v *time.Time) *ClauseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ClauseUpdate) SetContract(v *Contract) *ClauseUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ClauseMutation object of the builder.
func (_u *ClauseUpdate) Mutation() *ClauseMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ClauseUpdate) ClearContract() *ClauseUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClauseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClauseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClauseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClauseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClauseUpdate) check() error {
	if v, ok := _u.mutation.ClauseType(); ok {
		if err := clause.ClauseTypeValidator(v); err != nil {
			return &ValidationError{Name: "clause_type", err: fmt.Errorf(`ent: validator failed for field "Clause.clause_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := clause.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Clause.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := clause.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Clause.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Clause.contract"`)
	}
	return nil
}

func (_u *ClauseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clause.Table, clause.Columns, sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClauseType(); ok {
		_spec.SetField(clause.FieldClauseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(clause.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageReference(); ok {
		_spec.SetField(clause.FieldPageReference, field.TypeString, value)
	}
	if _u.mutation.PageReferenceCleared() {
		_spec.ClearField(clause.FieldPageReference, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(clause.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(clause.FieldConfidenceScore, field.TypeInt, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(clause.FieldConfidenceScore, field.TypeInt)
	}
	if value, ok := _u.mutation.SourceDocumentID(); ok {
		_spec.SetField(clause.FieldSourceDocumentID, field.TypeUUID, value)
	}
	if _u.mutation.SourceDocumentIDCleared() {
		_spec.ClearField(clause.FieldSourceDocumentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(clause.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clause.ContractTable,
			Columns: []string{clause.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clause.ContractTable,
			Columns: []string{clause.ContractColumn},
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
			err = &NotFoundError{clause.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClauseUpdateOne is the builder for updating a single Clause entity.
type ClauseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClauseMutation
}

// SetContractID sets the "contract_id" field.
func (_u *ClauseUpdateOne) SetContractID(v uuid.UUID) *ClauseUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ClauseUpdateOne) SetNillableContractID(v *uuid.UUID) *ClauseUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetClauseType sets the "clause_type" field.
func (_u *ClauseUpdateOne) SetClauseType(v string) *ClauseUpdateOne {
	_u.mutation.SetClauseType(v)
	return _u
}

// SetNillableClauseType sets the "clause_type" field if the given value is not nil.
func (_u *ClauseUpdateOne) SetNillableClauseType(v *string) *ClauseUpdateOne {
	if v != nil {
		_u.SetClauseType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ClauseUpdateOne) SetContent(v string) *ClauseUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ClauseUpdateOne) SetNillableContent(v *string) *ClauseUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetPageReference sets the "page_reference" field.
func (_u *ClauseUpdateOne) SetPageReference(v string) *ClauseUpdateOne {
	_u.mutation.SetPageReference(v)
	return _u
}

// SetNillablePageReference sets the "page_reference" field if the given value is not nil.
func (_u *ClauseUpdateOne) SetNillablePageReference(v *string) *ClauseUpdateOne {
	if v != nil {
		_u.SetPageReference(*v)
	}
	return _u
}

// ClearPageReference clears the value of the "page_reference" field.
func (_u *ClauseUpdateOne) ClearPageReference() *ClauseUpdateOne {
	_u.mutation.ClearPageReference()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ClauseUpdateOne) SetConfidenceScore(v int) *ClauseUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ClauseUpdateOne) SetNillableConfidenceScore(v *int) *ClauseUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ClauseUpdateOne) AddConfidenceScore(v int) *ClauseUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ClauseUpdateOne) ClearConfidenceScore() *ClauseUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_u *ClauseUpdateOne) SetSourceDocumentID(v uuid.UUID) *ClauseUpdateOne {
	_u.mutation.SetSourceDocumentID(v)
	return _u
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_u *ClauseUpdateOne) SetNillableSourceDocumentID(v *uuid.UUID) *ClauseUpdateOne {
	if v != nil {
		_u.SetSourceDocumentID(*v)
	}
	return _u
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (_u *ClauseUpdateOne) ClearSourceDocumentID() *ClauseUpdateOne {
	_u.mutation.ClearSourceDocumentID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClauseUpdateOne) SetCreatedAt(v time.Time) *ClauseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClauseUpdateOne) SetNillableCreatedAt(v *time.Time) *ClauseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ClauseUpdateOne) SetContract(v *Contract) *ClauseUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the ClauseMutation object of the builder.
func (_u *ClauseUpdateOne) Mutation() *ClauseMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ClauseUpdateOne) ClearContract() *ClauseUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the ClauseUpdate builder.
func (_u *ClauseUpdateOne) Where(ps ...predicate.Clause) *ClauseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClauseUpdateOne) Select(field string, fields ...string) *ClauseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Clause entity.
func (_u *ClauseUpdateOne) Save(ctx context.Context) (*Clause, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClauseUpdateOne) SaveX(ctx context.Context) *Clause {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClauseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClauseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClauseUpdateOne) check() error {
	if v, ok := _u.mutation.ClauseType(); ok {
		if err := clause.ClauseTypeValidator(v); err != nil {
			return &ValidationError{Name: "clause_type", err: fmt.Errorf(`ent: validator failed for field "Clause.clause_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := clause.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Clause.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := clause.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Clause.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Clause.contract"`)
	}
	return nil
}

func (_u *ClauseUpdateOne) sqlSave(ctx context.Context) (_node *Clause, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clause.Table, clause.Columns, sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Clause.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clause.FieldID)
		for _, f := range fields {
			if !clause.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clause.FieldID {
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
	if value, ok := _u.mutation.ClauseType(); ok {
		_spec.SetField(clause.FieldClauseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(clause.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageReference(); ok {
		_spec.SetField(clause.FieldPageReference, field.TypeString, value)
	}
	if _u.mutation.PageReferenceCleared() {
		_spec.ClearField(clause.FieldPageReference, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(clause.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(clause.FieldConfidenceScore, field.TypeInt, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(clause.FieldConfidenceScore, field.TypeInt)
	}
	if value, ok := _u.mutation.SourceDocumentID(); ok {
		_spec.SetField(clause.FieldSourceDocumentID, field.TypeUUID, value)
	}
	if _u.mutation.SourceDocumentIDCleared() {
		_spec.ClearField(clause.FieldSourceDocumentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(clause.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clause.ContractTable,
			Columns: []string{clause.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clause.ContractTable,
			Columns: []string{clause.ContractColumn},
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
	_node = &Clause{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clause.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
