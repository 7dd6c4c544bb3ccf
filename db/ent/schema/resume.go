package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/db/ent/schema/utils"
)

type Resume struct {
	ent.Schema
}

func (Resume) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "resumes"},
	}
}

func (Resume) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// hex-encoded SHA-256 of the uploaded bytes; dedupe key
		field.String("file_hash").NotEmpty().Unique().Immutable(),
		field.String("file_name").NotEmpty().Immutable(),
		field.String("file_path").NotEmpty(),
		field.Int("file_size").NonNegative().Immutable(),
		field.String("file_type").NotEmpty().Immutable(),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		field.Text("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("structured_data", map[string]json.RawMessage{}).
			Optional(),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Resume) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE resume -> MANY extraction errors; rows die with their parent
		edge.To("errors", ExtractionError.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Resume) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("uploaded_at"),
	}
}
