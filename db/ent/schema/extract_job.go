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
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_jobs"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("company_id", uuid.UUID{}),
		field.UUID("boleto_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty(), // PDF | IMAGE
		field.String("strategy").Default("rules"),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").NotEmpty(),
		field.String("error_message").Optional().Nillable(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.Text("source_text").Optional().Nillable(),
		field.JSON("extracted_json", []byte{}).Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("jobs").
			Field("company_id").
			Required().
			Unique(),
		edge.From("file", BoletoFile.Type).
			Ref("jobs").
			Field("file_id").
			Required().
			Unique(),
		edge.From("boleto", Boleto.Type).
			Ref("jobs").
			Field("boleto_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "started_at"),
		index.Fields("file_id"),
	}
}
