package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/brpayflow/boleto-tracker/constants"
)

var (
	reBarcode  = regexp.MustCompile(`^[0-9]{47,48}$`)
	errBarcode = errors.New("barcode must be 47 or 48 digits")
	errStatus  = errors.New("invalid boleto status")
)

type Boleto struct{ ent.Schema }

func (Boleto) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "boletos"},
	}
}

func (Boleto) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("company_id", uuid.UUID{}),
		field.String("recipient").Optional().Nillable(),
		field.String("drawee").Optional().Nillable(),
		field.Time("document_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("document_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		// authoritative payable value; the validation gate guarantees it
		// is present and non-zero before any write
		field.Float("amount").Positive().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("discount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("interest_and_fines").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("barcode").
			Validate(func(s string) error {
				if reBarcode.MatchString(s) {
					return nil
				}
				return errBarcode
			}),
		field.String("guide_number").Optional().Nillable(),
		field.String("pix_qr_code_text").Optional().Nillable(),
		field.String("status").
			Default(string(constants.StatusToPay)).
			Validate(func(s string) error {
				if constants.IsValidStatus(s) {
					return nil
				}
				return errStatus
			}),
		field.String("file_name").NotEmpty(),
		field.String("comments").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Boleto) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY boletos -> ONE company (FK: boletos.company_id)
		edge.From("company", Company.Type).
			Ref("boletos").
			Field("company_id").
			Required().
			Unique(),
		// ONE boleto -> MANY files
		edge.To("files", BoletoFile.Type),
		// ONE boleto -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Boleto) Indexes() []ent.Index {
	return []ent.Index{
		// barcode is the dedup key, scoped per tenant
		index.Fields("company_id", "barcode").Unique(),
		index.Fields("company_id", "status"),
		index.Fields("company_id", "due_date"),
	}
}
