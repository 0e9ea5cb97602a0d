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

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contract_documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("content_type").Optional(),
		// Content-addressed key into the blob store.
		field.String("blob_key").NotEmpty(),
		field.String("document_type").Default(string(constants.DocOther)).
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.Int("position").Default(0).NonNegative(),
		field.String("extraction_status").Default(string(constants.ExtractionPending)).
			Validate(utils.EnumValidator(constants.ExtractionStatuses...)),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("page_count").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("documents").
			Field("contract_id").
			Required().
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id", "position"),
		index.Fields("contract_id", "extraction_status"),
	}
}
