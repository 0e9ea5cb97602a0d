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

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("organization_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("vendor_name").Optional().Nillable(),
		field.String("contract_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.ContractTypes...)),
		field.String("direction").Default(constants.DirectionDefault).
			Validate(utils.EnumValidator(constants.Directions...)),
		field.Time("start_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("end_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("monthly_value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("total_value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Bool("auto_renews").Default(false),
		field.String("renewal_term").Optional().Nillable().
			Validate(utils.EnumValidator(constants.RenewalTerms...)),
		field.Int("notice_period_days").Optional().Nillable().NonNegative(),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("extraction_status").Default(string(constants.ExtractionPending)).
			Validate(utils.EnumValidator(constants.ExtractionStatuses...)),
		// Sanitized model output from the last completed analysis, minus the
		// change summary. The incremental diff reference.
		field.String("baseline_json").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("last_changes_summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("contracts").
			Field("organization_id").
			Required().
			Unique(),
		edge.To("documents", Document.Type),
		edge.To("clauses", Clause.Type),
	}
}

func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "extraction_status"),
		index.Fields("organization_id", "end_date"),
	}
}
