package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/db/ent/schema/utils"
)

type ExtractionError struct{ ent.Schema }

func (ExtractionError) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_errors"},
	}
}

func (ExtractionError) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so queries can filter without loading the edge
		field.UUID("resume_id", uuid.UUID{}),
		field.String("field_kind").NotEmpty().
			Validate(utils.EnumValidator(constants.FieldKindStrings()...)),
		field.Text("message").NotEmpty(),
		field.String("severity").
			Default(string(constants.SeverityError)).
			Validate(utils.EnumValidator(constants.Severities...)),
		field.Bool("resolved").Default(false),
		field.Time("resolved_at").Optional().Nillable(),
		field.Time("occurred_at").Default(time.Now).Immutable(),
	}
}

func (ExtractionError) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("resume", Resume.Type).
			Ref("errors").
			Field("resume_id").
			Unique().
			Required(),
	}
}

func (ExtractionError) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resume_id"),
		index.Fields("severity", "resolved"),
		index.Fields("occurred_at"),
	}
}
