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

type BoletoFile struct {
	ent.Schema
}

func (BoletoFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "boleto_files"},
	}
}

func (BoletoFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs so we can define a composite unique index and
		// link the file to its boleto after parse
		field.UUID("company_id", uuid.UUID{}),
		field.UUID("boleto_id", uuid.UUID{}).Optional().Nillable(),
		field.String("source_path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		// raw upload bytes, retained for viewing and re-extraction
		field.Bytes("content").
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (BoletoFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE company
		edge.From("company", Company.Type).
			Ref("files").
			Field("company_id").
			Required().
			Unique(),
		// MANY files -> ONE boleto (set after a successful parse)
		edge.From("boleto", Boleto.Type).
			Ref("files").
			Field("boleto_id").
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (BoletoFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "content_hash").Unique(),
		index.Fields("company_id", "uploaded_at"),
	}
}
