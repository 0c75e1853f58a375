package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document is an uploaded case file tracked through the ingestion pipeline
// (extract text, extract facts, index prior-statement chunks).
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.String("file_name").
			NotEmpty(),
		field.String("mime_type"),
		field.String("storage_key"),
		field.String("doc_type").
			Default("EXHIBIT").
			Comment("DEPOSITION_TRANSCRIPT, AFFIDAVIT, EXHIBIT, ..."),
		field.String("file_hash").
			Optional().
			Comment("SHA-256 of the raw upload"),
		field.Int("page_count").
			Optional().
			Nillable(),
		field.Enum("ingestion_status").
			NamedValues(
				"Pending", "PENDING",
				"Uploading", "UPLOADING",
				"Indexing", "INDEXING",
				"Ready", "READY",
				"Failed", "FAILED",
			).
			Default("PENDING"),
		field.Text("ingestion_error").
			Optional().
			Nillable(),
		field.JSON("extracted_facts", map[string]interface{}{}).
			Optional(),
		field.Time("ingestion_started_at").
			Optional().
			Nillable(),
		field.Time("ingestion_completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("legal_case", LegalCase.Type).
			Ref("documents").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id"),
		index.Fields("case_id", "ingestion_status"),
	}
}
