// Code generated by ent, DO NOT EDIT.

package clause

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/contractwatch/contractwatch/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldContractID, v))
}

// ClauseType applies equality check predicate on the "clause_type" field. It's identical to ClauseTypeEQ.
func ClauseType(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldClauseType, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldContent, v))
}

// PageReference applies equality check predicate on the "page_reference" field. It's identical to PageReferenceEQ.
func PageReference(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldPageReference, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v int) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldConfidenceScore, v))
}

// SourceDocumentID applies equality check predicate on the "source_document_id" field. It's identical to SourceDocumentIDEQ.
func SourceDocumentID(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldSourceDocumentID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldCreatedAt, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldNotIn(FieldContractID, vs...))
}

// ClauseTypeEQ applies the EQ predicate on the "clause_type" field.
func ClauseTypeEQ(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldClauseType, v))
}

// ClauseTypeNEQ applies the NEQ predicate on the "clause_type" field.
func ClauseTypeNEQ(v string) predicate.Clause {
	return predicate.Clause(sql.FieldNEQ(FieldClauseType, v))
}

// ClauseTypeIn applies the In predicate on the "clause_type" field.
func ClauseTypeIn(vs ...string) predicate.Clause {
	return predicate.Clause(sql.FieldIn(FieldClauseType, vs...))
}

// ClauseTypeNotIn applies the NotIn predicate on the "clause_type" field.
func ClauseTypeNotIn(vs ...string) predicate.Clause {
	return predicate.Clause(sql.FieldNotIn(FieldClauseType, vs...))
}

// ClauseTypeGT applies the GT predicate on the "clause_type" field.
func ClauseTypeGT(v string) predicate.Clause {
	return predicate.Clause(sql.FieldGT(FieldClauseType, v))
}

// ClauseTypeGTE applies the GTE predicate on the "clause_type" field.
func ClauseTypeGTE(v string) predicate.Clause {
	return predicate.Clause(sql.FieldGTE(FieldClauseType, v))
}

// ClauseTypeLT applies the LT predicate on the "clause_type" field.
func ClauseTypeLT(v string) predicate.Clause {
	return predicate.Clause(sql.FieldLT(FieldClauseType, v))
}

// ClauseTypeLTE applies the LTE predicate on the "clause_type" field.
func ClauseTypeLTE(v string) predicate.Clause {
	return predicate.Clause(sql.FieldLTE(FieldClauseType, v))
}

// ClauseTypeContains applies the Contains predicate on the "clause_type" field.
func ClauseTypeContains(v string) predicate.Clause {
	return predicate.Clause(sql.FieldContains(FieldClauseType, v))
}

// ClauseTypeHasPrefix applies the HasPrefix predicate on the "clause_type" field.
func ClauseTypeHasPrefix(v string) predicate.Clause {
	return predicate.Clause(sql.FieldHasPrefix(FieldClauseType, v))
}

// ClauseTypeHasSuffix applies the HasSuffix predicate on the "clause_type" field.
func ClauseTypeHasSuffix(v string) predicate.Clause {
	return predicate.Clause(sql.FieldHasSuffix(FieldClauseType, v))
}

// ClauseTypeEqualFold applies the EqualFold predicate on the "clause_type" field.
func ClauseTypeEqualFold(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEqualFold(FieldClauseType, v))
}

// ClauseTypeContainsFold applies the ContainsFold predicate on the "clause_type" field.
func ClauseTypeContainsFold(v string) predicate.Clause {
	return predicate.Clause(sql.FieldContainsFold(FieldClauseType, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Clause {
	return predicate.Clause(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Clause {
	return predicate.Clause(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Clause {
	return predicate.Clause(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Clause {
	return predicate.Clause(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Clause {
	return predicate.Clause(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Clause {
	return predicate.Clause(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Clause {
	return predicate.Clause(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Clause {
	return predicate.Clause(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Clause {
	return predicate.Clause(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Clause {
	return predicate.Clause(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Clause {
	return predicate.Clause(sql.FieldContainsFold(FieldContent, v))
}

// PageReferenceEQ applies the EQ predicate on the "page_reference" field.
func PageReferenceEQ(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldPageReference, v))
}

// PageReferenceNEQ applies the NEQ predicate on the "page_reference" field.
func PageReferenceNEQ(v string) predicate.Clause {
	return predicate.Clause(sql.FieldNEQ(FieldPageReference, v))
}

// PageReferenceIn applies the In predicate on the "page_reference" field.
func PageReferenceIn(vs ...string) predicate.Clause {
	return predicate.Clause(sql.FieldIn(FieldPageReference, vs...))
}

// PageReferenceNotIn applies the NotIn predicate on the "page_reference" field.
func PageReferenceNotIn(vs ...string) predicate.Clause {
	return predicate.Clause(sql.FieldNotIn(FieldPageReference, vs...))
}

// PageReferenceGT applies the GT predicate on the "page_reference" field.
func PageReferenceGT(v string) predicate.Clause {
	return predicate.Clause(sql.FieldGT(FieldPageReference, v))
}

// PageReferenceGTE applies the GTE predicate on the "page_reference" field.
func PageReferenceGTE(v string) predicate.Clause {
	return predicate.Clause(sql.FieldGTE(FieldPageReference, v))
}

// PageReferenceLT applies the LT predicate on the "page_reference" field.
func PageReferenceLT(v string) predicate.Clause {
	return predicate.Clause(sql.FieldLT(FieldPageReference, v))
}

// PageReferenceLTE applies the LTE predicate on the "page_reference" field.
func PageReferenceLTE(v string) predicate.Clause {
	return predicate.Clause(sql.FieldLTE(FieldPageReference, v))
}

// PageReferenceContains applies the Contains predicate on the "page_reference" field.
func PageReferenceContains(v string) predicate.Clause {
	return predicate.Clause(sql.FieldContains(FieldPageReference, v))
}

// PageReferenceHasPrefix applies the HasPrefix predicate on the "page_reference" field.
func PageReferenceHasPrefix(v string) predicate.Clause {
	return predicate.Clause(sql.FieldHasPrefix(FieldPageReference, v))
}

// PageReferenceHasSuffix applies the HasSuffix predicate on the "page_reference" field.
func PageReferenceHasSuffix(v string) predicate.Clause {
	return predicate.Clause(sql.FieldHasSuffix(FieldPageReference, v))
}

// PageReferenceIsNil applies the IsNil predicate on the "page_reference" field.
func PageReferenceIsNil() predicate.Clause {
	return predicate.Clause(sql.FieldIsNull(FieldPageReference))
}

// PageReferenceNotNil applies the NotNil predicate on the "page_reference" field.
func PageReferenceNotNil() predicate.Clause {
	return predicate.Clause(sql.FieldNotNull(FieldPageReference))
}

// PageReferenceEqualFold applies the EqualFold predicate on the "page_reference" field.
func PageReferenceEqualFold(v string) predicate.Clause {
	return predicate.Clause(sql.FieldEqualFold(FieldPageReference, v))
}

// PageReferenceContainsFold applies the ContainsFold predicate on the "page_reference" field.
func PageReferenceContainsFold(v string) predicate.Clause {
	return predicate.Clause(sql.FieldContainsFold(FieldPageReference, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v int) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v int) predicate.Clause {
	return predicate.Clause(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...int) predicate.Clause {
	return predicate.Clause(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...int) predicate.Clause {
	return predicate.Clause(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v int) predicate.Clause {
	return predicate.Clause(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v int) predicate.Clause {
	return predicate.Clause(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v int) predicate.Clause {
	return predicate.Clause(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v int) predicate.Clause {
	return predicate.Clause(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.Clause {
	return predicate.Clause(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.Clause {
	return predicate.Clause(sql.FieldNotNull(FieldConfidenceScore))
}

// SourceDocumentIDEQ applies the EQ predicate on the "source_document_id" field.
func SourceDocumentIDEQ(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldSourceDocumentID, v))
}

// SourceDocumentIDNEQ applies the NEQ predicate on the "source_document_id" field.
func SourceDocumentIDNEQ(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldNEQ(FieldSourceDocumentID, v))
}

// SourceDocumentIDIn applies the In predicate on the "source_document_id" field.
func SourceDocumentIDIn(vs ...uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldIn(FieldSourceDocumentID, vs...))
}

// SourceDocumentIDNotIn applies the NotIn predicate on the "source_document_id" field.
func SourceDocumentIDNotIn(vs ...uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldNotIn(FieldSourceDocumentID, vs...))
}

// SourceDocumentIDGT applies the GT predicate on the "source_document_id" field.
func SourceDocumentIDGT(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldGT(FieldSourceDocumentID, v))
}

// SourceDocumentIDGTE applies the GTE predicate on the "source_document_id" field.
func SourceDocumentIDGTE(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldGTE(FieldSourceDocumentID, v))
}

// SourceDocumentIDLT applies the LT predicate on the "source_document_id" field.
func SourceDocumentIDLT(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldLT(FieldSourceDocumentID, v))
}

// SourceDocumentIDLTE applies the LTE predicate on the "source_document_id" field.
func SourceDocumentIDLTE(v uuid.UUID) predicate.Clause {
	return predicate.Clause(sql.FieldLTE(FieldSourceDocumentID, v))
}

// SourceDocumentIDIsNil applies the IsNil predicate on the "source_document_id" field.
func SourceDocumentIDIsNil() predicate.Clause {
	return predicate.Clause(sql.FieldIsNull(FieldSourceDocumentID))
}

// SourceDocumentIDNotNil applies the NotNil predicate on the "source_document_id" field.
func SourceDocumentIDNotNil() predicate.Clause {
	return predicate.Clause(sql.FieldNotNull(FieldSourceDocumentID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Clause {
	return predicate.Clause(sql.FieldLTE(FieldCreatedAt, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.Clause {
	return predicate.Clause(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.Clause {
	return predicate.Clause(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Clause) predicate.Clause {
	return predicate.Clause(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Clause) predicate.Clause {
	return predicate.Clause(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Clause) predicate.Clause {
	return predicate.Clause(sql.NotPredicates(p))
}
