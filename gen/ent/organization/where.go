// Code generated by ent, DO NOT EDIT.

package organization

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/contractwatch/contractwatch/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldName, v))
}

// Plan applies equality check predicate on the "plan" field. It's identical to PlanEQ.
func Plan(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldPlan, v))
}

// AiExtractionsCount applies equality check predicate on the "ai_extractions_count" field. It's identical to AiExtractionsCountEQ.
func AiExtractionsCount(v int) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldAiExtractionsCount, v))
}

// AiExtractionsResetAt applies equality check predicate on the "ai_extractions_reset_at" field. It's identical to AiExtractionsResetAtEQ.
func AiExtractionsResetAt(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldAiExtractionsResetAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContainsFold(FieldName, v))
}

// PlanEQ applies the EQ predicate on the "plan" field.
func PlanEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldPlan, v))
}

// PlanNEQ applies the NEQ predicate on the "plan" field.
func PlanNEQ(v string) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldPlan, v))
}

// PlanIn applies the In predicate on the "plan" field.
func PlanIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldPlan, vs...))
}

// PlanNotIn applies the NotIn predicate on the "plan" field.
func PlanNotIn(vs ...string) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldPlan, vs...))
}

// PlanGT applies the GT predicate on the "plan" field.
func PlanGT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldPlan, v))
}

// PlanGTE applies the GTE predicate on the "plan" field.
func PlanGTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldPlan, v))
}

// PlanLT applies the LT predicate on the "plan" field.
func PlanLT(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldPlan, v))
}

// PlanLTE applies the LTE predicate on the "plan" field.
func PlanLTE(v string) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldPlan, v))
}

// PlanContains applies the Contains predicate on the "plan" field.
func PlanContains(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContains(FieldPlan, v))
}

// PlanHasPrefix applies the HasPrefix predicate on the "plan" field.
func PlanHasPrefix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasPrefix(FieldPlan, v))
}

// PlanHasSuffix applies the HasSuffix predicate on the "plan" field.
func PlanHasSuffix(v string) predicate.Organization {
	return predicate.Organization(sql.FieldHasSuffix(FieldPlan, v))
}

// PlanEqualFold applies the EqualFold predicate on the "plan" field.
func PlanEqualFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldEqualFold(FieldPlan, v))
}

// PlanContainsFold applies the ContainsFold predicate on the "plan" field.
func PlanContainsFold(v string) predicate.Organization {
	return predicate.Organization(sql.FieldContainsFold(FieldPlan, v))
}

// AiExtractionsCountEQ applies the EQ predicate on the "ai_extractions_count" field.
func AiExtractionsCountEQ(v int) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldAiExtractionsCount, v))
}

// AiExtractionsCountNEQ applies the NEQ predicate on the "ai_extractions_count" field.
func AiExtractionsCountNEQ(v int) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldAiExtractionsCount, v))
}

// AiExtractionsCountIn applies the In predicate on the "ai_extractions_count" field.
func AiExtractionsCountIn(vs ...int) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldAiExtractionsCount, vs...))
}

// AiExtractionsCountNotIn applies the NotIn predicate on the "ai_extractions_count" field.
func AiExtractionsCountNotIn(vs ...int) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldAiExtractionsCount, vs...))
}

// AiExtractionsCountGT applies the GT predicate on the "ai_extractions_count" field.
func AiExtractionsCountGT(v int) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldAiExtractionsCount, v))
}

// AiExtractionsCountGTE applies the GTE predicate on the "ai_extractions_count" field.
func AiExtractionsCountGTE(v int) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldAiExtractionsCount, v))
}

// AiExtractionsCountLT applies the LT predicate on the "ai_extractions_count" field.
func AiExtractionsCountLT(v int) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldAiExtractionsCount, v))
}

// AiExtractionsCountLTE applies the LTE predicate on the "ai_extractions_count" field.
func AiExtractionsCountLTE(v int) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldAiExtractionsCount, v))
}

// AiExtractionsResetAtEQ applies the EQ predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldAiExtractionsResetAt, v))
}

// AiExtractionsResetAtNEQ applies the NEQ predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtNEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldAiExtractionsResetAt, v))
}

// AiExtractionsResetAtIn applies the In predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldAiExtractionsResetAt, vs...))
}

// AiExtractionsResetAtNotIn applies the NotIn predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtNotIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldAiExtractionsResetAt, vs...))
}

// AiExtractionsResetAtGT applies the GT predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtGT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldAiExtractionsResetAt, v))
}

// AiExtractionsResetAtGTE applies the GTE predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtGTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldAiExtractionsResetAt, v))
}

// AiExtractionsResetAtLT applies the LT predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtLT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldAiExtractionsResetAt, v))
}

// AiExtractionsResetAtLTE applies the LTE predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtLTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldAiExtractionsResetAt, v))
}

// AiExtractionsResetAtIsNil applies the IsNil predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtIsNil() predicate.Organization {
	return predicate.Organization(sql.FieldIsNull(FieldAiExtractionsResetAt))
}

// AiExtractionsResetAtNotNil applies the NotNil predicate on the "ai_extractions_reset_at" field.
func AiExtractionsResetAtNotNil() predicate.Organization {
	return predicate.Organization(sql.FieldNotNull(FieldAiExtractionsResetAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Organization {
	return predicate.Organization(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasContracts applies the HasEdge predicate on the "contracts" edge.
func HasContracts() predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContractsTable, ContractsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractsWith applies the HasEdge predicate on the "contracts" edge with a given conditions (other predicates).
func HasContractsWith(preds ...predicate.Contract) predicate.Organization {
	return predicate.Organization(func(s *sql.Selector) {
		step := newContractsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Organization) predicate.Organization {
	return predicate.Organization(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Organization) predicate.Organization {
	return predicate.Organization(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Organization) predicate.Organization {
	return predicate.Organization(sql.NotPredicates(p))
}
