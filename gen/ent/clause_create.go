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
	"github.com/google/uuid"
)

// ClauseCreate is the builder for creating a Clause entity.
type ClauseCreate struct {
	config
	mutation *ClauseMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *ClauseCreate) SetContractID(v uuid.UUID) *ClauseCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetClauseType sets the "clause_type" field.
func (_c *ClauseCreate) SetClauseType(v string) *ClauseCreate {
	_c.mutation.SetClauseType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ClauseCreate) SetContent(v string) *ClauseCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetPageReference sets the "page_reference" field.
func (_c *ClauseCreate) SetPageReference(v string) *ClauseCreate {
	_c.mutation.SetPageReference(v)
	return _c
}

// SetNillablePageReference sets the "page_reference" field if the given value is not nil.
func (_c *ClauseCreate) SetNillablePageReference(v *string) *ClauseCreate {
	if v != nil {
		_c.SetPageReference(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ClauseCreate) SetConfidenceScore(v int) *ClauseCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *ClauseCreate) SetNillableConfidenceScore(v *int) *ClauseCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetSourceDocumentID sets the "source_document_id" field.
func (_c *ClauseCreate) SetSourceDocumentID(v uuid.UUID) *ClauseCreate {
	_c.mutation.SetSourceDocumentID(v)
	return _c
}

// SetNillableSourceDocumentID sets the "source_document_id" field if the given value is not nil.
func (_c *ClauseCreate) SetNillableSourceDocumentID(v *uuid.UUID) *ClauseCreate {
	if v != nil {
		_c.SetSourceDocumentID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClauseCreate) SetCreatedAt(v time.Time) *ClauseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClauseCreate) SetNillableCreatedAt(v *time.Time) *ClauseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClauseCreate) SetID(v uuid.UUID) *ClauseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClauseCreate) SetNillableID(v *uuid.UUID) *ClauseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *ClauseCreate) SetContract(v *Contract) *ClauseCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the ClauseMutation object of the builder.
func (_c *ClauseCreate) Mutation() *ClauseMutation {
	return _c.mutation
}

// Save creates the Clause in the database.
func (_c *ClauseCreate) Save(ctx context.Context) (*Clause, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClauseCreate) SaveX(ctx context.Context) *Clause {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClauseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClauseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClauseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clause.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clause.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClauseCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "Clause.contract_id"`)}
	}
	if _, ok := _c.mutation.ClauseType(); !ok {
		return &ValidationError{Name: "clause_type", err: errors.New(`ent: missing required field "Clause.clause_type"`)}
	}
	if v, ok := _c.mutation.ClauseType(); ok {
		if err := clause.ClauseTypeValidator(v); err != nil {
			return &ValidationError{Name: "clause_type", err: fmt.Errorf(`ent: validator failed for field "Clause.clause_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Clause.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := clause.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Clause.content": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := clause.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Clause.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Clause.created_at"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "Clause.contract"`)}
	}
	return nil
}

func (_c *ClauseCreate) sqlSave(ctx context.Context) (*Clause, error) {
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

func (_c *ClauseCreate) createSpec() (*Clause, *sqlgraph.CreateSpec) {
	var (
		_node = &Clause{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clause.Table, sqlgraph.NewFieldSpec(clause.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClauseType(); ok {
		_spec.SetField(clause.FieldClauseType, field.TypeString, value)
		_node.ClauseType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(clause.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.PageReference(); ok {
		_spec.SetField(clause.FieldPageReference, field.TypeString, value)
		_node.PageReference = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(clause.FieldConfidenceScore, field.TypeInt, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.SourceDocumentID(); ok {
		_spec.SetField(clause.FieldSourceDocumentID, field.TypeUUID, value)
		_node.SourceDocumentID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clause.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
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
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClauseCreateBulk is the builder for creating many Clause entities in bulk.
type ClauseCreateBulk struct {
	config
	err      error
	builders []*ClauseCreate
}

// Save creates the Clause entities in the database.
func (_c *ClauseCreateBulk) Save(ctx context.Context) ([]*Clause, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Clause, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClauseMutation)
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
func (_c *ClauseCreateBulk) SaveX(ctx context.Context) []*Clause {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClauseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClauseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
