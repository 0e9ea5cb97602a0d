package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/contractwatch/contractwatch/constants"
	"github.com/contractwatch/contractwatch/db/ent/schema/utils"
)

type Clause struct{ ent.Schema }

func (Clause) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contract_clauses"},
	}
}

func (Clause) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("clause_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ClauseTypes...)),
		field.String("content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("page_reference").Optional().Nillable(),
		field.Int("confidence_score").Optional().Nillable().
			Range(0, 100),
		// Kept as a plain column so clause rows survive document deletion.
		field.UUID("source_document_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Clause) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("clauses").
			Field("contract_id").
			Required().
			Unique(),
	}
}

func (Clause) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id", "clause_type"),
	}
}
