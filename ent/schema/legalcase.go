package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LegalCase is a matter under preparation. Named LegalCase because "case" is a
// Go keyword and ent derives package names from the type name.
type LegalCase struct {
	ent.Schema
}

// Fields of the LegalCase.
func (LegalCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),
		field.String("firm_id").
			Immutable(),
		field.String("case_name").
			NotEmpty().
			Comment("Canonicalized (trimmed, inner whitespace collapsed) before write"),
		field.Enum("case_type").
			NamedValues(
				"MedicalMalpractice", "MEDICAL_MALPRACTICE",
				"EmploymentDiscrimination", "EMPLOYMENT_DISCRIMINATION",
				"CommercialDispute", "COMMERCIAL_DISPUTE",
				"ContractBreach", "CONTRACT_BREACH",
				"Other", "OTHER",
			).
			Default("OTHER"),
		field.String("opposing_party").
			Optional().
			Comment("Canonicalized like case_name"),
		field.String("case_number").
			Optional(),
		field.Text("description").
			Optional(),
		field.Time("deposition_date").
			Optional().
			Nillable(),
		field.JSON("extracted_facts", map[string]interface{}{}).
			Optional().
			Comment("Aggregated document analysis (parties, key dates, disputed facts)"),
		field.Text("prior_statements").
			Optional().
			Comment("Free-text summary of prior sworn testimony; the indexed chunks live in the vector store"),
		field.Text("exhibit_list").
			Optional().
			Comment("Exhibit summaries fed to the interrogator prompt"),
		field.JSON("focus_areas", []string{}).
			Optional().
			Comment("Default focus topics copied onto new sessions when the request omits them"),
		field.Enum("aggression_preset").
			NamedValues(
				"Standard", "STANDARD",
				"Elevated", "ELEVATED",
				"HighStakes", "HIGH_STAKES",
			).
			Default("STANDARD").
			Comment("Default aggression for new sessions on this case"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the LegalCase.
func (LegalCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("firm", Firm.Type).
			Ref("cases").
			Field("firm_id").
			Unique().
			Required().
			Immutable(),
		edge.To("witnesses", Witness.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the LegalCase.
func (LegalCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("firm_id"),
		index.Fields("firm_id", "case_name"),
	}
}
