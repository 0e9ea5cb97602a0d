// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/contractwatch/contractwatch/gen/ent/clause"
	"github.com/contractwatch/contractwatch/gen/ent/contract"
	"github.com/contractwatch/contractwatch/gen/ent/document"
	"github.com/contractwatch/contractwatch/gen/ent/organization"
	"github.com/contractwatch/contractwatch/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClause       = "Clause"
	TypeContract     = "Contract"
	TypeDocument     = "Document"
	TypeOrganization = "Organization"
)

// ClauseMutation represents an operation that mutates the Clause nodes in the graph.
type ClauseMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	clause_type         *string
	content             *string
	page_reference      *string
	confidence_score    *int
	addconfidence_score *int
	source_document_id  *uuid.UUID
	created_at          *time.Time
	clearedFields       map[string]struct{}
	contract            *uuid.UUID
	clearedcontract     bool
	done                bool
	oldValue            func(context.Context) (*Clause, error)
	predicates          []predicate.Clause
}

var _ ent.Mutation = (*ClauseMutation)(nil)

// clauseOption allows management of the mutation configuration using functional options.
type clauseOption func(*ClauseMutation)

// newClauseMutation creates new mutation for the Clause entity.
func newClauseMutation(c config, op Op, opts ...clauseOption) *ClauseMutation {
	m := &ClauseMutation{
		config:        c,
		op:            op,
		typ:           TypeClause,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClauseID sets the ID field of the mutation.
func withClauseID(id uuid.UUID) clauseOption {
	return func(m *ClauseMutation) {
		var (
			err   error
			once  sync.Once
			value *Clause
		)
		m.oldValue = func(ctx context.Context) (*Clause, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Clause.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClause sets the old Clause of the mutation.
func withClause(node *Clause) clauseOption {
	return func(m *ClauseMutation) {
		m.oldValue = func(context.Context) (*Clause, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClauseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClauseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Clause entities.
func (m *ClauseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClauseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClauseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Clause.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *ClauseMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *ClauseMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the Clause entity.
// If the Clause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClauseMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *ClauseMutation) ResetContractID() {
	m.contract = nil
}

// SetClauseType sets the "clause_type" field.
func (m *ClauseMutation) SetClauseType(s string) {
	m.clause_type = &s
}

// ClauseType returns the value of the "clause_type" field in the mutation.
func (m *ClauseMutation) ClauseType() (r string, exists bool) {
	v := m.clause_type
	if v == nil {
		return
	}
	return *v, true
}

// OldClauseType returns the old "clause_type" field's value of the Clause entity.
// If the Clause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClauseMutation) OldClauseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClauseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClauseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClauseType: %w", err)
	}
	return oldValue.ClauseType, nil
}

// ResetClauseType resets all changes to the "clause_type" field.
func (m *ClauseMutation) ResetClauseType() {
	m.clause_type = nil
}

// SetContent sets the "content" field.
func (m *ClauseMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ClauseMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Clause entity.
// If the Clause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClauseMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ClauseMutation) ResetContent() {
	m.content = nil
}

// SetPageReference sets the "page_reference" field.
func (m *ClauseMutation) SetPageReference(s string) {
	m.page_reference = &s
}

// PageReference returns the value of the "page_reference" field in the mutation.
func (m *ClauseMutation) PageReference() (r string, exists bool) {
	v := m.page_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldPageReference returns the old "page_reference" field's value of the Clause entity.
// If the Clause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClauseMutation) OldPageReference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageReference: %w", err)
	}
	return oldValue.PageReference, nil
}

// ClearPageReference clears the value of the "page_reference" field.
func (m *ClauseMutation) ClearPageReference() {
	m.page_reference = nil
	m.clearedFields[clause.FieldPageReference] = struct{}{}
}

// PageReferenceCleared returns if the "page_reference" field was cleared in this mutation.
func (m *ClauseMutation) PageReferenceCleared() bool {
	_, ok := m.clearedFields[clause.FieldPageReference]
	return ok
}

// ResetPageReference resets all changes to the "page_reference" field.
func (m *ClauseMutation) ResetPageReference() {
	m.page_reference = nil
	delete(m.clearedFields, clause.FieldPageReference)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ClauseMutation) SetConfidenceScore(i int) {
	m.confidence_score = &i
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ClauseMutation) ConfidenceScore() (r int, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Clause entity.
// If the Clause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClauseMutation) OldConfidenceScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds i to the "confidence_score" field.
func (m *ClauseMutation) AddConfidenceScore(i int) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += i
	} else {
		m.addconfidence_score = &i
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ClauseMutation) AddedConfidenceScore() (r int, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *ClauseMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[clause.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *ClauseMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[clause.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ClauseMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, clause.FieldConfidenceScore)
}

// SetSourceDocumentID sets the "source_document_id" field.
func (m *ClauseMutation) SetSourceDocumentID(u uuid.UUID) {
	m.source_document_id = &u
}

// SourceDocumentID returns the value of the "source_document_id" field in the mutation.
func (m *ClauseMutation) SourceDocumentID() (r uuid.UUID, exists bool) {
	v := m.source_document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocumentID returns the old "source_document_id" field's value of the Clause entity.
// If the Clause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClauseMutation) OldSourceDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocumentID: %w", err)
	}
	return oldValue.SourceDocumentID, nil
}

// ClearSourceDocumentID clears the value of the "source_document_id" field.
func (m *ClauseMutation) ClearSourceDocumentID() {
	m.source_document_id = nil
	m.clearedFields[clause.FieldSourceDocumentID] = struct{}{}
}

// SourceDocumentIDCleared returns if the "source_document_id" field was cleared in this mutation.
func (m *ClauseMutation) SourceDocumentIDCleared() bool {
	_, ok := m.clearedFields[clause.FieldSourceDocumentID]
	return ok
}

// ResetSourceDocumentID resets all changes to the "source_document_id" field.
func (m *ClauseMutation) ResetSourceDocumentID() {
	m.source_document_id = nil
	delete(m.clearedFields, clause.FieldSourceDocumentID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClauseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClauseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Clause entity.
// If the Clause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClauseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClauseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *ClauseMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[clause.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *ClauseMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *ClauseMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *ClauseMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the ClauseMutation builder.
func (m *ClauseMutation) Where(ps ...predicate.Clause) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClauseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClauseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Clause, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClauseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClauseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Clause).
func (m *ClauseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClauseMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.contract != nil {
		fields = append(fields, clause.FieldContractID)
	}
	if m.clause_type != nil {
		fields = append(fields, clause.FieldClauseType)
	}
	if m.content != nil {
		fields = append(fields, clause.FieldContent)
	}
	if m.page_reference != nil {
		fields = append(fields, clause.FieldPageReference)
	}
	if m.confidence_score != nil {
		fields = append(fields, clause.FieldConfidenceScore)
	}
	if m.source_document_id != nil {
		fields = append(fields, clause.FieldSourceDocumentID)
	}
	if m.created_at != nil {
		fields = append(fields, clause.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClauseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clause.FieldContractID:
		return m.ContractID()
	case clause.FieldClauseType:
		return m.ClauseType()
	case clause.FieldContent:
		return m.Content()
	case clause.FieldPageReference:
		return m.PageReference()
	case clause.FieldConfidenceScore:
		return m.ConfidenceScore()
	case clause.FieldSourceDocumentID:
		return m.SourceDocumentID()
	case clause.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClauseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clause.FieldContractID:
		return m.OldContractID(ctx)
	case clause.FieldClauseType:
		return m.OldClauseType(ctx)
	case clause.FieldContent:
		return m.OldContent(ctx)
	case clause.FieldPageReference:
		return m.OldPageReference(ctx)
	case clause.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case clause.FieldSourceDocumentID:
		return m.OldSourceDocumentID(ctx)
	case clause.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Clause field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClauseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clause.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case clause.FieldClauseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClauseType(v)
		return nil
	case clause.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case clause.FieldPageReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageReference(v)
		return nil
	case clause.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case clause.FieldSourceDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocumentID(v)
		return nil
	case clause.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Clause field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClauseMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, clause.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClauseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clause.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClauseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clause.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Clause numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClauseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clause.FieldPageReference) {
		fields = append(fields, clause.FieldPageReference)
	}
	if m.FieldCleared(clause.FieldConfidenceScore) {
		fields = append(fields, clause.FieldConfidenceScore)
	}
	if m.FieldCleared(clause.FieldSourceDocumentID) {
		fields = append(fields, clause.FieldSourceDocumentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClauseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClauseMutation) ClearField(name string) error {
	switch name {
	case clause.FieldPageReference:
		m.ClearPageReference()
		return nil
	case clause.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	case clause.FieldSourceDocumentID:
		m.ClearSourceDocumentID()
		return nil
	}
	return fmt.Errorf("unknown Clause nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClauseMutation) ResetField(name string) error {
	switch name {
	case clause.FieldContractID:
		m.ResetContractID()
		return nil
	case clause.FieldClauseType:
		m.ResetClauseType()
		return nil
	case clause.FieldContent:
		m.ResetContent()
		return nil
	case clause.FieldPageReference:
		m.ResetPageReference()
		return nil
	case clause.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case clause.FieldSourceDocumentID:
		m.ResetSourceDocumentID()
		return nil
	case clause.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Clause field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClauseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, clause.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClauseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clause.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClauseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClauseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClauseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, clause.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClauseMutation) EdgeCleared(name string) bool {
	switch name {
	case clause.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClauseMutation) ClearEdge(name string) error {
	switch name {
	case clause.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown Clause unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClauseMutation) ResetEdge(name string) error {
	switch name {
	case clause.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown Clause edge %s", name)
}

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	title                 *string
	vendor_name           *string
	contract_type         *string
	direction             *string
	start_date            *time.Time
	end_date              *time.Time
	monthly_value         *float64
	addmonthly_value      *float64
	total_value           *float64
	addtotal_value        *float64
	auto_renews           *bool
	renewal_term          *string
	notice_period_days    *int
	addnotice_period_days *int
	notes                 *string
	extraction_status     *string
	baseline_json         *string
	last_changes_summary  *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	organization          *uuid.UUID
	clearedorganization   bool
	documents             map[uuid.UUID]struct{}
	removeddocuments      map[uuid.UUID]struct{}
	cleareddocuments      bool
	clauses               map[uuid.UUID]struct{}
	removedclauses        map[uuid.UUID]struct{}
	clearedclauses        bool
	done                  bool
	oldValue              func(context.Context) (*Contract, error)
	predicates            []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id uuid.UUID) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *ContractMutation) SetOrganizationID(u uuid.UUID) {
	m.organization = &u
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *ContractMutation) OrganizationID() (r uuid.UUID, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldOrganizationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *ContractMutation) ResetOrganizationID() {
	m.organization = nil
}

// SetTitle sets the "title" field.
func (m *ContractMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ContractMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ContractMutation) ResetTitle() {
	m.title = nil
}

// SetVendorName sets the "vendor_name" field.
func (m *ContractMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *ContractMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldVendorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ClearVendorName clears the value of the "vendor_name" field.
func (m *ContractMutation) ClearVendorName() {
	m.vendor_name = nil
	m.clearedFields[contract.FieldVendorName] = struct{}{}
}

// VendorNameCleared returns if the "vendor_name" field was cleared in this mutation.
func (m *ContractMutation) VendorNameCleared() bool {
	_, ok := m.clearedFields[contract.FieldVendorName]
	return ok
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *ContractMutation) ResetVendorName() {
	m.vendor_name = nil
	delete(m.clearedFields, contract.FieldVendorName)
}

// SetContractType sets the "contract_type" field.
func (m *ContractMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *ContractMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ClearContractType clears the value of the "contract_type" field.
func (m *ContractMutation) ClearContractType() {
	m.contract_type = nil
	m.clearedFields[contract.FieldContractType] = struct{}{}
}

// ContractTypeCleared returns if the "contract_type" field was cleared in this mutation.
func (m *ContractMutation) ContractTypeCleared() bool {
	_, ok := m.clearedFields[contract.FieldContractType]
	return ok
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *ContractMutation) ResetContractType() {
	m.contract_type = nil
	delete(m.clearedFields, contract.FieldContractType)
}

// SetDirection sets the "direction" field.
func (m *ContractMutation) SetDirection(s string) {
	m.direction = &s
}

// Direction returns the value of the "direction" field in the mutation.
func (m *ContractMutation) Direction() (r string, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldDirection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *ContractMutation) ResetDirection() {
	m.direction = nil
}

// SetStartDate sets the "start_date" field.
func (m *ContractMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *ContractMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *ContractMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[contract.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *ContractMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *ContractMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, contract.FieldStartDate)
}

// SetEndDate sets the "end_date" field.
func (m *ContractMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *ContractMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *ContractMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[contract.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *ContractMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *ContractMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, contract.FieldEndDate)
}

// SetMonthlyValue sets the "monthly_value" field.
func (m *ContractMutation) SetMonthlyValue(f float64) {
	m.monthly_value = &f
	m.addmonthly_value = nil
}

// MonthlyValue returns the value of the "monthly_value" field in the mutation.
func (m *ContractMutation) MonthlyValue() (r float64, exists bool) {
	v := m.monthly_value
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyValue returns the old "monthly_value" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldMonthlyValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyValue: %w", err)
	}
	return oldValue.MonthlyValue, nil
}

// AddMonthlyValue adds f to the "monthly_value" field.
func (m *ContractMutation) AddMonthlyValue(f float64) {
	if m.addmonthly_value != nil {
		*m.addmonthly_value += f
	} else {
		m.addmonthly_value = &f
	}
}

// AddedMonthlyValue returns the value that was added to the "monthly_value" field in this mutation.
func (m *ContractMutation) AddedMonthlyValue() (r float64, exists bool) {
	v := m.addmonthly_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearMonthlyValue clears the value of the "monthly_value" field.
func (m *ContractMutation) ClearMonthlyValue() {
	m.monthly_value = nil
	m.addmonthly_value = nil
	m.clearedFields[contract.FieldMonthlyValue] = struct{}{}
}

// MonthlyValueCleared returns if the "monthly_value" field was cleared in this mutation.
func (m *ContractMutation) MonthlyValueCleared() bool {
	_, ok := m.clearedFields[contract.FieldMonthlyValue]
	return ok
}

// ResetMonthlyValue resets all changes to the "monthly_value" field.
func (m *ContractMutation) ResetMonthlyValue() {
	m.monthly_value = nil
	m.addmonthly_value = nil
	delete(m.clearedFields, contract.FieldMonthlyValue)
}

// SetTotalValue sets the "total_value" field.
func (m *ContractMutation) SetTotalValue(f float64) {
	m.total_value = &f
	m.addtotal_value = nil
}

// TotalValue returns the value of the "total_value" field in the mutation.
func (m *ContractMutation) TotalValue() (r float64, exists bool) {
	v := m.total_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalValue returns the old "total_value" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldTotalValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalValue: %w", err)
	}
	return oldValue.TotalValue, nil
}

// AddTotalValue adds f to the "total_value" field.
func (m *ContractMutation) AddTotalValue(f float64) {
	if m.addtotal_value != nil {
		*m.addtotal_value += f
	} else {
		m.addtotal_value = &f
	}
}

// AddedTotalValue returns the value that was added to the "total_value" field in this mutation.
func (m *ContractMutation) AddedTotalValue() (r float64, exists bool) {
	v := m.addtotal_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalValue clears the value of the "total_value" field.
func (m *ContractMutation) ClearTotalValue() {
	m.total_value = nil
	m.addtotal_value = nil
	m.clearedFields[contract.FieldTotalValue] = struct{}{}
}

// TotalValueCleared returns if the "total_value" field was cleared in this mutation.
func (m *ContractMutation) TotalValueCleared() bool {
	_, ok := m.clearedFields[contract.FieldTotalValue]
	return ok
}

// ResetTotalValue resets all changes to the "total_value" field.
func (m *ContractMutation) ResetTotalValue() {
	m.total_value = nil
	m.addtotal_value = nil
	delete(m.clearedFields, contract.FieldTotalValue)
}

// SetAutoRenews sets the "auto_renews" field.
func (m *ContractMutation) SetAutoRenews(b bool) {
	m.auto_renews = &b
}

// AutoRenews returns the value of the "auto_renews" field in the mutation.
func (m *ContractMutation) AutoRenews() (r bool, exists bool) {
	v := m.auto_renews
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoRenews returns the old "auto_renews" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldAutoRenews(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoRenews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoRenews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoRenews: %w", err)
	}
	return oldValue.AutoRenews, nil
}

// ResetAutoRenews resets all changes to the "auto_renews" field.
func (m *ContractMutation) ResetAutoRenews() {
	m.auto_renews = nil
}

// SetRenewalTerm sets the "renewal_term" field.
func (m *ContractMutation) SetRenewalTerm(s string) {
	m.renewal_term = &s
}

// RenewalTerm returns the value of the "renewal_term" field in the mutation.
func (m *ContractMutation) RenewalTerm() (r string, exists bool) {
	v := m.renewal_term
	if v == nil {
		return
	}
	return *v, true
}

// OldRenewalTerm returns the old "renewal_term" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldRenewalTerm(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenewalTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenewalTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenewalTerm: %w", err)
	}
	return oldValue.RenewalTerm, nil
}

// ClearRenewalTerm clears the value of the "renewal_term" field.
func (m *ContractMutation) ClearRenewalTerm() {
	m.renewal_term = nil
	m.clearedFields[contract.FieldRenewalTerm] = struct{}{}
}

// RenewalTermCleared returns if the "renewal_term" field was cleared in this mutation.
func (m *ContractMutation) RenewalTermCleared() bool {
	_, ok := m.clearedFields[contract.FieldRenewalTerm]
	return ok
}

// ResetRenewalTerm resets all changes to the "renewal_term" field.
func (m *ContractMutation) ResetRenewalTerm() {
	m.renewal_term = nil
	delete(m.clearedFields, contract.FieldRenewalTerm)
}

// SetNoticePeriodDays sets the "notice_period_days" field.
func (m *ContractMutation) SetNoticePeriodDays(i int) {
	m.notice_period_days = &i
	m.addnotice_period_days = nil
}

// NoticePeriodDays returns the value of the "notice_period_days" field in the mutation.
func (m *ContractMutation) NoticePeriodDays() (r int, exists bool) {
	v := m.notice_period_days
	if v == nil {
		return
	}
	return *v, true
}

// OldNoticePeriodDays returns the old "notice_period_days" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldNoticePeriodDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoticePeriodDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoticePeriodDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoticePeriodDays: %w", err)
	}
	return oldValue.NoticePeriodDays, nil
}

// AddNoticePeriodDays adds i to the "notice_period_days" field.
func (m *ContractMutation) AddNoticePeriodDays(i int) {
	if m.addnotice_period_days != nil {
		*m.addnotice_period_days += i
	} else {
		m.addnotice_period_days = &i
	}
}

// AddedNoticePeriodDays returns the value that was added to the "notice_period_days" field in this mutation.
func (m *ContractMutation) AddedNoticePeriodDays() (r int, exists bool) {
	v := m.addnotice_period_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearNoticePeriodDays clears the value of the "notice_period_days" field.
func (m *ContractMutation) ClearNoticePeriodDays() {
	m.notice_period_days = nil
	m.addnotice_period_days = nil
	m.clearedFields[contract.FieldNoticePeriodDays] = struct{}{}
}

// NoticePeriodDaysCleared returns if the "notice_period_days" field was cleared in this mutation.
func (m *ContractMutation) NoticePeriodDaysCleared() bool {
	_, ok := m.clearedFields[contract.FieldNoticePeriodDays]
	return ok
}

// ResetNoticePeriodDays resets all changes to the "notice_period_days" field.
func (m *ContractMutation) ResetNoticePeriodDays() {
	m.notice_period_days = nil
	m.addnotice_period_days = nil
	delete(m.clearedFields, contract.FieldNoticePeriodDays)
}

// SetNotes sets the "notes" field.
func (m *ContractMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ContractMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ContractMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[contract.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ContractMutation) NotesCleared() bool {
	_, ok := m.clearedFields[contract.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ContractMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, contract.FieldNotes)
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *ContractMutation) SetExtractionStatus(s string) {
	m.extraction_status = &s
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *ContractMutation) ExtractionStatus() (r string, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldExtractionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *ContractMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetBaselineJSON sets the "baseline_json" field.
func (m *ContractMutation) SetBaselineJSON(s string) {
	m.baseline_json = &s
}

// BaselineJSON returns the value of the "baseline_json" field in the mutation.
func (m *ContractMutation) BaselineJSON() (r string, exists bool) {
	v := m.baseline_json
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineJSON returns the old "baseline_json" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldBaselineJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineJSON: %w", err)
	}
	return oldValue.BaselineJSON, nil
}

// ClearBaselineJSON clears the value of the "baseline_json" field.
func (m *ContractMutation) ClearBaselineJSON() {
	m.baseline_json = nil
	m.clearedFields[contract.FieldBaselineJSON] = struct{}{}
}

// BaselineJSONCleared returns if the "baseline_json" field was cleared in this mutation.
func (m *ContractMutation) BaselineJSONCleared() bool {
	_, ok := m.clearedFields[contract.FieldBaselineJSON]
	return ok
}

// ResetBaselineJSON resets all changes to the "baseline_json" field.
func (m *ContractMutation) ResetBaselineJSON() {
	m.baseline_json = nil
	delete(m.clearedFields, contract.FieldBaselineJSON)
}

// SetLastChangesSummary sets the "last_changes_summary" field.
func (m *ContractMutation) SetLastChangesSummary(s string) {
	m.last_changes_summary = &s
}

// LastChangesSummary returns the value of the "last_changes_summary" field in the mutation.
func (m *ContractMutation) LastChangesSummary() (r string, exists bool) {
	v := m.last_changes_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldLastChangesSummary returns the old "last_changes_summary" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldLastChangesSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastChangesSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastChangesSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastChangesSummary: %w", err)
	}
	return oldValue.LastChangesSummary, nil
}

// ClearLastChangesSummary clears the value of the "last_changes_summary" field.
func (m *ContractMutation) ClearLastChangesSummary() {
	m.last_changes_summary = nil
	m.clearedFields[contract.FieldLastChangesSummary] = struct{}{}
}

// LastChangesSummaryCleared returns if the "last_changes_summary" field was cleared in this mutation.
func (m *ContractMutation) LastChangesSummaryCleared() bool {
	_, ok := m.clearedFields[contract.FieldLastChangesSummary]
	return ok
}

// ResetLastChangesSummary resets all changes to the "last_changes_summary" field.
func (m *ContractMutation) ResetLastChangesSummary() {
	m.last_changes_summary = nil
	delete(m.clearedFields, contract.FieldLastChangesSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (m *ContractMutation) ClearOrganization() {
	m.clearedorganization = true
	m.clearedFields[contract.FieldOrganizationID] = struct{}{}
}

// OrganizationCleared reports if the "organization" edge to the Organization entity was cleared.
func (m *ContractMutation) OrganizationCleared() bool {
	return m.clearedorganization
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) OrganizationIDs() (ids []uuid.UUID) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *ContractMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ContractMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ContractMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ContractMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ContractMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ContractMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ContractMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ContractMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddClauseIDs adds the "clauses" edge to the Clause entity by ids.
func (m *ContractMutation) AddClauseIDs(ids ...uuid.UUID) {
	if m.clauses == nil {
		m.clauses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.clauses[ids[i]] = struct{}{}
	}
}

// ClearClauses clears the "clauses" edge to the Clause entity.
func (m *ContractMutation) ClearClauses() {
	m.clearedclauses = true
}

// ClausesCleared reports if the "clauses" edge to the Clause entity was cleared.
func (m *ContractMutation) ClausesCleared() bool {
	return m.clearedclauses
}

// RemoveClauseIDs removes the "clauses" edge to the Clause entity by IDs.
func (m *ContractMutation) RemoveClauseIDs(ids ...uuid.UUID) {
	if m.removedclauses == nil {
		m.removedclauses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.clauses, ids[i])
		m.removedclauses[ids[i]] = struct{}{}
	}
}

// RemovedClauses returns the removed IDs of the "clauses" edge to the Clause entity.
func (m *ContractMutation) RemovedClausesIDs() (ids []uuid.UUID) {
	for id := range m.removedclauses {
		ids = append(ids, id)
	}
	return
}

// ClausesIDs returns the "clauses" edge IDs in the mutation.
func (m *ContractMutation) ClausesIDs() (ids []uuid.UUID) {
	for id := range m.clauses {
		ids = append(ids, id)
	}
	return
}

// ResetClauses resets all changes to the "clauses" edge.
func (m *ContractMutation) ResetClauses() {
	m.clauses = nil
	m.clearedclauses = false
	m.removedclauses = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.organization != nil {
		fields = append(fields, contract.FieldOrganizationID)
	}
	if m.title != nil {
		fields = append(fields, contract.FieldTitle)
	}
	if m.vendor_name != nil {
		fields = append(fields, contract.FieldVendorName)
	}
	if m.contract_type != nil {
		fields = append(fields, contract.FieldContractType)
	}
	if m.direction != nil {
		fields = append(fields, contract.FieldDirection)
	}
	if m.start_date != nil {
		fields = append(fields, contract.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, contract.FieldEndDate)
	}
	if m.monthly_value != nil {
		fields = append(fields, contract.FieldMonthlyValue)
	}
	if m.total_value != nil {
		fields = append(fields, contract.FieldTotalValue)
	}
	if m.auto_renews != nil {
		fields = append(fields, contract.FieldAutoRenews)
	}
	if m.renewal_term != nil {
		fields = append(fields, contract.FieldRenewalTerm)
	}
	if m.notice_period_days != nil {
		fields = append(fields, contract.FieldNoticePeriodDays)
	}
	if m.notes != nil {
		fields = append(fields, contract.FieldNotes)
	}
	if m.extraction_status != nil {
		fields = append(fields, contract.FieldExtractionStatus)
	}
	if m.baseline_json != nil {
		fields = append(fields, contract.FieldBaselineJSON)
	}
	if m.last_changes_summary != nil {
		fields = append(fields, contract.FieldLastChangesSummary)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contract.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldOrganizationID:
		return m.OrganizationID()
	case contract.FieldTitle:
		return m.Title()
	case contract.FieldVendorName:
		return m.VendorName()
	case contract.FieldContractType:
		return m.ContractType()
	case contract.FieldDirection:
		return m.Direction()
	case contract.FieldStartDate:
		return m.StartDate()
	case contract.FieldEndDate:
		return m.EndDate()
	case contract.FieldMonthlyValue:
		return m.MonthlyValue()
	case contract.FieldTotalValue:
		return m.TotalValue()
	case contract.FieldAutoRenews:
		return m.AutoRenews()
	case contract.FieldRenewalTerm:
		return m.RenewalTerm()
	case contract.FieldNoticePeriodDays:
		return m.NoticePeriodDays()
	case contract.FieldNotes:
		return m.Notes()
	case contract.FieldExtractionStatus:
		return m.ExtractionStatus()
	case contract.FieldBaselineJSON:
		return m.BaselineJSON()
	case contract.FieldLastChangesSummary:
		return m.LastChangesSummary()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	case contract.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case contract.FieldTitle:
		return m.OldTitle(ctx)
	case contract.FieldVendorName:
		return m.OldVendorName(ctx)
	case contract.FieldContractType:
		return m.OldContractType(ctx)
	case contract.FieldDirection:
		return m.OldDirection(ctx)
	case contract.FieldStartDate:
		return m.OldStartDate(ctx)
	case contract.FieldEndDate:
		return m.OldEndDate(ctx)
	case contract.FieldMonthlyValue:
		return m.OldMonthlyValue(ctx)
	case contract.FieldTotalValue:
		return m.OldTotalValue(ctx)
	case contract.FieldAutoRenews:
		return m.OldAutoRenews(ctx)
	case contract.FieldRenewalTerm:
		return m.OldRenewalTerm(ctx)
	case contract.FieldNoticePeriodDays:
		return m.OldNoticePeriodDays(ctx)
	case contract.FieldNotes:
		return m.OldNotes(ctx)
	case contract.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case contract.FieldBaselineJSON:
		return m.OldBaselineJSON(ctx)
	case contract.FieldLastChangesSummary:
		return m.OldLastChangesSummary(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contract.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldOrganizationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case contract.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case contract.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case contract.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case contract.FieldDirection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case contract.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case contract.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case contract.FieldMonthlyValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyValue(v)
		return nil
	case contract.FieldTotalValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalValue(v)
		return nil
	case contract.FieldAutoRenews:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoRenews(v)
		return nil
	case contract.FieldRenewalTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenewalTerm(v)
		return nil
	case contract.FieldNoticePeriodDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoticePeriodDays(v)
		return nil
	case contract.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case contract.FieldExtractionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case contract.FieldBaselineJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineJSON(v)
		return nil
	case contract.FieldLastChangesSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastChangesSummary(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contract.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	var fields []string
	if m.addmonthly_value != nil {
		fields = append(fields, contract.FieldMonthlyValue)
	}
	if m.addtotal_value != nil {
		fields = append(fields, contract.FieldTotalValue)
	}
	if m.addnotice_period_days != nil {
		fields = append(fields, contract.FieldNoticePeriodDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldMonthlyValue:
		return m.AddedMonthlyValue()
	case contract.FieldTotalValue:
		return m.AddedTotalValue()
	case contract.FieldNoticePeriodDays:
		return m.AddedNoticePeriodDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contract.FieldMonthlyValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyValue(v)
		return nil
	case contract.FieldTotalValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalValue(v)
		return nil
	case contract.FieldNoticePeriodDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNoticePeriodDays(v)
		return nil
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldVendorName) {
		fields = append(fields, contract.FieldVendorName)
	}
	if m.FieldCleared(contract.FieldContractType) {
		fields = append(fields, contract.FieldContractType)
	}
	if m.FieldCleared(contract.FieldStartDate) {
		fields = append(fields, contract.FieldStartDate)
	}
	if m.FieldCleared(contract.FieldEndDate) {
		fields = append(fields, contract.FieldEndDate)
	}
	if m.FieldCleared(contract.FieldMonthlyValue) {
		fields = append(fields, contract.FieldMonthlyValue)
	}
	if m.FieldCleared(contract.FieldTotalValue) {
		fields = append(fields, contract.FieldTotalValue)
	}
	if m.FieldCleared(contract.FieldRenewalTerm) {
		fields = append(fields, contract.FieldRenewalTerm)
	}
	if m.FieldCleared(contract.FieldNoticePeriodDays) {
		fields = append(fields, contract.FieldNoticePeriodDays)
	}
	if m.FieldCleared(contract.FieldNotes) {
		fields = append(fields, contract.FieldNotes)
	}
	if m.FieldCleared(contract.FieldBaselineJSON) {
		fields = append(fields, contract.FieldBaselineJSON)
	}
	if m.FieldCleared(contract.FieldLastChangesSummary) {
		fields = append(fields, contract.FieldLastChangesSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldVendorName:
		m.ClearVendorName()
		return nil
	case contract.FieldContractType:
		m.ClearContractType()
		return nil
	case contract.FieldStartDate:
		m.ClearStartDate()
		return nil
	case contract.FieldEndDate:
		m.ClearEndDate()
		return nil
	case contract.FieldMonthlyValue:
		m.ClearMonthlyValue()
		return nil
	case contract.FieldTotalValue:
		m.ClearTotalValue()
		return nil
	case contract.FieldRenewalTerm:
		m.ClearRenewalTerm()
		return nil
	case contract.FieldNoticePeriodDays:
		m.ClearNoticePeriodDays()
		return nil
	case contract.FieldNotes:
		m.ClearNotes()
		return nil
	case contract.FieldBaselineJSON:
		m.ClearBaselineJSON()
		return nil
	case contract.FieldLastChangesSummary:
		m.ClearLastChangesSummary()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case contract.FieldTitle:
		m.ResetTitle()
		return nil
	case contract.FieldVendorName:
		m.ResetVendorName()
		return nil
	case contract.FieldContractType:
		m.ResetContractType()
		return nil
	case contract.FieldDirection:
		m.ResetDirection()
		return nil
	case contract.FieldStartDate:
		m.ResetStartDate()
		return nil
	case contract.FieldEndDate:
		m.ResetEndDate()
		return nil
	case contract.FieldMonthlyValue:
		m.ResetMonthlyValue()
		return nil
	case contract.FieldTotalValue:
		m.ResetTotalValue()
		return nil
	case contract.FieldAutoRenews:
		m.ResetAutoRenews()
		return nil
	case contract.FieldRenewalTerm:
		m.ResetRenewalTerm()
		return nil
	case contract.FieldNoticePeriodDays:
		m.ResetNoticePeriodDays()
		return nil
	case contract.FieldNotes:
		m.ResetNotes()
		return nil
	case contract.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case contract.FieldBaselineJSON:
		m.ResetBaselineJSON()
		return nil
	case contract.FieldLastChangesSummary:
		m.ResetLastChangesSummary()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contract.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.organization != nil {
		edges = append(edges, contract.EdgeOrganization)
	}
	if m.documents != nil {
		edges = append(edges, contract.EdgeDocuments)
	}
	if m.clauses != nil {
		edges = append(edges, contract.EdgeClauses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeClauses:
		ids := make([]ent.Value, 0, len(m.clauses))
		for id := range m.clauses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocuments != nil {
		edges = append(edges, contract.EdgeDocuments)
	}
	if m.removedclauses != nil {
		edges = append(edges, contract.EdgeClauses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeClauses:
		ids := make([]ent.Value, 0, len(m.removedclauses))
		for id := range m.removedclauses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedorganization {
		edges = append(edges, contract.EdgeOrganization)
	}
	if m.cleareddocuments {
		edges = append(edges, contract.EdgeDocuments)
	}
	if m.clearedclauses {
		edges = append(edges, contract.EdgeClauses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeOrganization:
		return m.clearedorganization
	case contract.EdgeDocuments:
		return m.cleareddocuments
	case contract.EdgeClauses:
		return m.clearedclauses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	case contract.EdgeOrganization:
		m.ClearOrganization()
		return nil
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeOrganization:
		m.ResetOrganization()
		return nil
	case contract.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case contract.EdgeClauses:
		m.ResetClauses()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	filename          *string
	content_type      *string
	blob_key          *string
	document_type     *string
	position          *int
	addposition       *int
	extraction_status *string
	extracted_text    *string
	page_count        *int
	addpage_count     *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	contract          *uuid.UUID
	clearedcontract   bool
	done              bool
	oldValue          func(context.Context) (*Document, error)
	predicates        []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *DocumentMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *DocumentMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *DocumentMutation) ResetContractID() {
	m.contract = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *DocumentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *DocumentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *DocumentMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[document.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *DocumentMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *DocumentMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, document.FieldContentType)
}

// SetBlobKey sets the "blob_key" field.
func (m *DocumentMutation) SetBlobKey(s string) {
	m.blob_key = &s
}

// BlobKey returns the value of the "blob_key" field in the mutation.
func (m *DocumentMutation) BlobKey() (r string, exists bool) {
	v := m.blob_key
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobKey returns the old "blob_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBlobKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobKey: %w", err)
	}
	return oldValue.BlobKey, nil
}

// ResetBlobKey resets all changes to the "blob_key" field.
func (m *DocumentMutation) ResetBlobKey() {
	m.blob_key = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetPosition sets the "position" field.
func (m *DocumentMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *DocumentMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *DocumentMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *DocumentMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *DocumentMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *DocumentMutation) SetExtractionStatus(s string) {
	m.extraction_status = &s
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *DocumentMutation) ExtractionStatus() (r string, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *DocumentMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *DocumentMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *DocumentMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *DocumentMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[document.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *DocumentMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, document.FieldExtractedText)
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageCount clears the value of the "page_count" field.
func (m *DocumentMutation) ClearPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	m.clearedFields[document.FieldPageCount] = struct{}{}
}

// PageCountCleared returns if the "page_count" field was cleared in this mutation.
func (m *DocumentMutation) PageCountCleared() bool {
	_, ok := m.clearedFields[document.FieldPageCount]
	return ok
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	delete(m.clearedFields, document.FieldPageCount)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *DocumentMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[document.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *DocumentMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *DocumentMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.contract != nil {
		fields = append(fields, document.FieldContractID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, document.FieldContentType)
	}
	if m.blob_key != nil {
		fields = append(fields, document.FieldBlobKey)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.position != nil {
		fields = append(fields, document.FieldPosition)
	}
	if m.extraction_status != nil {
		fields = append(fields, document.FieldExtractionStatus)
	}
	if m.extracted_text != nil {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldContractID:
		return m.ContractID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldContentType:
		return m.ContentType()
	case document.FieldBlobKey:
		return m.BlobKey()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldPosition:
		return m.Position()
	case document.FieldExtractionStatus:
		return m.ExtractionStatus()
	case document.FieldExtractedText:
		return m.ExtractedText()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldContractID:
		return m.OldContractID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldContentType:
		return m.OldContentType(ctx)
	case document.FieldBlobKey:
		return m.OldBlobKey(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldPosition:
		return m.OldPosition(ctx)
	case document.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case document.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case document.FieldBlobKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobKey(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case document.FieldExtractionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case document.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, document.FieldPosition)
	}
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldPosition:
		return m.AddedPosition()
	case document.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldContentType) {
		fields = append(fields, document.FieldContentType)
	}
	if m.FieldCleared(document.FieldExtractedText) {
		fields = append(fields, document.FieldExtractedText)
	}
	if m.FieldCleared(document.FieldPageCount) {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldContentType:
		m.ClearContentType()
		return nil
	case document.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case document.FieldPageCount:
		m.ClearPageCount()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldContractID:
		m.ResetContractID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldContentType:
		m.ResetContentType()
		return nil
	case document.FieldBlobKey:
		m.ResetBlobKey()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldPosition:
		m.ResetPosition()
		return nil
	case document.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case document.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, document.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, document.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// OrganizationMutation represents an operation that mutates the Organization nodes in the graph.
type OrganizationMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	name                    *string
	plan                    *string
	ai_extractions_count    *int
	addai_extractions_count *int
	ai_extractions_reset_at *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	contracts               map[uuid.UUID]struct{}
	removedcontracts        map[uuid.UUID]struct{}
	clearedcontracts        bool
	done                    bool
	oldValue                func(context.Context) (*Organization, error)
	predicates              []predicate.Organization
}

var _ ent.Mutation = (*OrganizationMutation)(nil)

// organizationOption allows management of the mutation configuration using functional options.
type organizationOption func(*OrganizationMutation)

// newOrganizationMutation creates new mutation for the Organization entity.
func newOrganizationMutation(c config, op Op, opts ...organizationOption) *OrganizationMutation {
	m := &OrganizationMutation{
		config:        c,
		op:            op,
		typ:           TypeOrganization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganizationID sets the ID field of the mutation.
func withOrganizationID(id uuid.UUID) organizationOption {
	return func(m *OrganizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Organization
		)
		m.oldValue = func(ctx context.Context) (*Organization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Organization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrganization sets the old Organization of the mutation.
func withOrganization(node *Organization) organizationOption {
	return func(m *OrganizationMutation) {
		m.oldValue = func(context.Context) (*Organization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Organization entities.
func (m *OrganizationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganizationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganizationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Organization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OrganizationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrganizationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrganizationMutation) ResetName() {
	m.name = nil
}

// SetPlan sets the "plan" field.
func (m *OrganizationMutation) SetPlan(s string) {
	m.plan = &s
}

// Plan returns the value of the "plan" field in the mutation.
func (m *OrganizationMutation) Plan() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldPlan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ResetPlan resets all changes to the "plan" field.
func (m *OrganizationMutation) ResetPlan() {
	m.plan = nil
}

// SetAiExtractionsCount sets the "ai_extractions_count" field.
func (m *OrganizationMutation) SetAiExtractionsCount(i int) {
	m.ai_extractions_count = &i
	m.addai_extractions_count = nil
}

// AiExtractionsCount returns the value of the "ai_extractions_count" field in the mutation.
func (m *OrganizationMutation) AiExtractionsCount() (r int, exists bool) {
	v := m.ai_extractions_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAiExtractionsCount returns the old "ai_extractions_count" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldAiExtractionsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiExtractionsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiExtractionsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiExtractionsCount: %w", err)
	}
	return oldValue.AiExtractionsCount, nil
}

// AddAiExtractionsCount adds i to the "ai_extractions_count" field.
func (m *OrganizationMutation) AddAiExtractionsCount(i int) {
	if m.addai_extractions_count != nil {
		*m.addai_extractions_count += i
	} else {
		m.addai_extractions_count = &i
	}
}

// AddedAiExtractionsCount returns the value that was added to the "ai_extractions_count" field in this mutation.
func (m *OrganizationMutation) AddedAiExtractionsCount() (r int, exists bool) {
	v := m.addai_extractions_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiExtractionsCount resets all changes to the "ai_extractions_count" field.
func (m *OrganizationMutation) ResetAiExtractionsCount() {
	m.ai_extractions_count = nil
	m.addai_extractions_count = nil
}

// SetAiExtractionsResetAt sets the "ai_extractions_reset_at" field.
func (m *OrganizationMutation) SetAiExtractionsResetAt(t time.Time) {
	m.ai_extractions_reset_at = &t
}

// AiExtractionsResetAt returns the value of the "ai_extractions_reset_at" field in the mutation.
func (m *OrganizationMutation) AiExtractionsResetAt() (r time.Time, exists bool) {
	v := m.ai_extractions_reset_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAiExtractionsResetAt returns the old "ai_extractions_reset_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldAiExtractionsResetAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiExtractionsResetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiExtractionsResetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiExtractionsResetAt: %w", err)
	}
	return oldValue.AiExtractionsResetAt, nil
}

// ClearAiExtractionsResetAt clears the value of the "ai_extractions_reset_at" field.
func (m *OrganizationMutation) ClearAiExtractionsResetAt() {
	m.ai_extractions_reset_at = nil
	m.clearedFields[organization.FieldAiExtractionsResetAt] = struct{}{}
}

// AiExtractionsResetAtCleared returns if the "ai_extractions_reset_at" field was cleared in this mutation.
func (m *OrganizationMutation) AiExtractionsResetAtCleared() bool {
	_, ok := m.clearedFields[organization.FieldAiExtractionsResetAt]
	return ok
}

// ResetAiExtractionsResetAt resets all changes to the "ai_extractions_reset_at" field.
func (m *OrganizationMutation) ResetAiExtractionsResetAt() {
	m.ai_extractions_reset_at = nil
	delete(m.clearedFields, organization.FieldAiExtractionsResetAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrganizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrganizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrganizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrganizationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrganizationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrganizationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddContractIDs adds the "contracts" edge to the Contract entity by ids.
func (m *OrganizationMutation) AddContractIDs(ids ...uuid.UUID) {
	if m.contracts == nil {
		m.contracts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.contracts[ids[i]] = struct{}{}
	}
}

// ClearContracts clears the "contracts" edge to the Contract entity.
func (m *OrganizationMutation) ClearContracts() {
	m.clearedcontracts = true
}

// ContractsCleared reports if the "contracts" edge to the Contract entity was cleared.
func (m *OrganizationMutation) ContractsCleared() bool {
	return m.clearedcontracts
}

// RemoveContractIDs removes the "contracts" edge to the Contract entity by IDs.
func (m *OrganizationMutation) RemoveContractIDs(ids ...uuid.UUID) {
	if m.removedcontracts == nil {
		m.removedcontracts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.contracts, ids[i])
		m.removedcontracts[ids[i]] = struct{}{}
	}
}

// RemovedContracts returns the removed IDs of the "contracts" edge to the Contract entity.
func (m *OrganizationMutation) RemovedContractsIDs() (ids []uuid.UUID) {
	for id := range m.removedcontracts {
		ids = append(ids, id)
	}
	return
}

// ContractsIDs returns the "contracts" edge IDs in the mutation.
func (m *OrganizationMutation) ContractsIDs() (ids []uuid.UUID) {
	for id := range m.contracts {
		ids = append(ids, id)
	}
	return
}

// ResetContracts resets all changes to the "contracts" edge.
func (m *OrganizationMutation) ResetContracts() {
	m.contracts = nil
	m.clearedcontracts = false
	m.removedcontracts = nil
}

// Where appends a list predicates to the OrganizationMutation builder.
func (m *OrganizationMutation) Where(ps ...predicate.Organization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Organization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Organization).
func (m *OrganizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganizationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, organization.FieldName)
	}
	if m.plan != nil {
		fields = append(fields, organization.FieldPlan)
	}
	if m.ai_extractions_count != nil {
		fields = append(fields, organization.FieldAiExtractionsCount)
	}
	if m.ai_extractions_reset_at != nil {
		fields = append(fields, organization.FieldAiExtractionsResetAt)
	}
	if m.created_at != nil {
		fields = append(fields, organization.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, organization.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organization.FieldName:
		return m.Name()
	case organization.FieldPlan:
		return m.Plan()
	case organization.FieldAiExtractionsCount:
		return m.AiExtractionsCount()
	case organization.FieldAiExtractionsResetAt:
		return m.AiExtractionsResetAt()
	case organization.FieldCreatedAt:
		return m.CreatedAt()
	case organization.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organization.FieldName:
		return m.OldName(ctx)
	case organization.FieldPlan:
		return m.OldPlan(ctx)
	case organization.FieldAiExtractionsCount:
		return m.OldAiExtractionsCount(ctx)
	case organization.FieldAiExtractionsResetAt:
		return m.OldAiExtractionsResetAt(ctx)
	case organization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case organization.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Organization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organization.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case organization.FieldPlan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case organization.FieldAiExtractionsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiExtractionsCount(v)
		return nil
	case organization.FieldAiExtractionsResetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiExtractionsResetAt(v)
		return nil
	case organization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case organization.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganizationMutation) AddedFields() []string {
	var fields []string
	if m.addai_extractions_count != nil {
		fields = append(fields, organization.FieldAiExtractionsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganizationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case organization.FieldAiExtractionsCount:
		return m.AddedAiExtractionsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case organization.FieldAiExtractionsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiExtractionsCount(v)
		return nil
	}
	return fmt.Errorf("unknown Organization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganizationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(organization.FieldAiExtractionsResetAt) {
		fields = append(fields, organization.FieldAiExtractionsResetAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganizationMutation) ClearField(name string) error {
	switch name {
	case organization.FieldAiExtractionsResetAt:
		m.ClearAiExtractionsResetAt()
		return nil
	}
	return fmt.Errorf("unknown Organization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganizationMutation) ResetField(name string) error {
	switch name {
	case organization.FieldName:
		m.ResetName()
		return nil
	case organization.FieldPlan:
		m.ResetPlan()
		return nil
	case organization.FieldAiExtractionsCount:
		m.ResetAiExtractionsCount()
		return nil
	case organization.FieldAiExtractionsResetAt:
		m.ResetAiExtractionsResetAt()
		return nil
	case organization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case organization.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contracts != nil {
		edges = append(edges, organization.EdgeContracts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganizationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeContracts:
		ids := make([]ent.Value, 0, len(m.contracts))
		for id := range m.contracts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcontracts != nil {
		edges = append(edges, organization.EdgeContracts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganizationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeContracts:
		ids := make([]ent.Value, 0, len(m.removedcontracts))
		for id := range m.removedcontracts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontracts {
		edges = append(edges, organization.EdgeContracts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganizationMutation) EdgeCleared(name string) bool {
	switch name {
	case organization.EdgeContracts:
		return m.clearedcontracts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganizationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganizationMutation) ResetEdge(name string) error {
	switch name {
	case organization.EdgeContracts:
		m.ResetContracts()
		return nil
	}
	return fmt.Errorf("unknown Organization edge %s", name)
}
