// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "alert_type", Type: field.TypeEnum, Enums: []string{"CONTRADICTION", "OBJECTION", "COMPOSURE"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "CONFIRMED", "REJECTED"}, Default: "PENDING"},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "impeachment_risk", Type: field.TypeEnum, Nullable: true, Enums: []string{"LOW", "MEDIUM", "HIGH"}},
		{Name: "prior_quote", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prior_source_page", Type: field.TypeInt, Nullable: true},
		{Name: "prior_source_line", Type: field.TypeInt, Nullable: true},
		{Name: "current_quote", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fre_rule", Type: field.TypeString, Nullable: true},
		{Name: "fre_classification", Type: field.TypeString, Nullable: true},
		{Name: "question_number", Type: field.TypeInt, Nullable: true},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "rejected_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alerts_sessions_alerts",
				Columns:    []*schema.Column{AlertsColumns[15]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alert_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[15], AlertsColumns[2]},
			},
			{
				Name:    "alert_session_id_alert_type",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[15], AlertsColumns[1]},
			},
		},
	}
	// BriefsColumns holds the columns for the "briefs" table.
	BriefsColumns = []*schema.Column{
		{Name: "brief_id", Type: field.TypeString, Unique: true},
		{Name: "session_score", Type: field.TypeFloat64},
		{Name: "consistency_rate", Type: field.TypeFloat64},
		{Name: "weakness_map", Type: field.TypeJSON},
		{Name: "narrative_text", Type: field.TypeString, Size: 2147483647},
		{Name: "recommendations", Type: field.TypeJSON},
		{Name: "confirmed_flags", Type: field.TypeInt, Default: 0},
		{Name: "objection_count", Type: field.TypeInt, Default: 0},
		{Name: "composure_alerts", Type: field.TypeInt, Default: 0},
		{Name: "delta_vs_baseline", Type: field.TypeFloat64, Nullable: true},
		{Name: "share_token", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "share_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "pdf_key", Type: field.TypeString, Nullable: true},
		{Name: "coach_audio_key", Type: field.TypeString, Nullable: true},
		{Name: "generated_by", Type: field.TypeEnum, Enums: []string{"MODEL", "HEURISTIC"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// BriefsTable holds the schema information for the "briefs" table.
	BriefsTable = &schema.Table{
		Name:       "briefs",
		Columns:    BriefsColumns,
		PrimaryKey: []*schema.Column{BriefsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "briefs_sessions_brief",
				Columns:    []*schema.Column{BriefsColumns[16]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "brief_share_token",
				Unique:  false,
				Columns: []*schema.Column{BriefsColumns[10]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "doc_type", Type: field.TypeString, Default: "EXHIBIT"},
		{Name: "file_hash", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "ingestion_status", Type: field.TypeEnum, Enums: []string{"PENDING", "UPLOADING", "INDEXING", "READY", "FAILED"}, Default: "PENDING"},
		{Name: "ingestion_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_facts", Type: field.TypeJSON, Nullable: true},
		{Name: "ingestion_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ingestion_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_legal_cases_documents",
				Columns:    []*schema.Column{DocumentsColumns[13]},
				RefColumns: []*schema.Column{LegalCasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_case_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[13]},
			},
			{
				Name:    "document_case_id_ingestion_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[13], DocumentsColumns[7]},
			},
		},
	}
	// FirmsColumns holds the columns for the "firms" table.
	FirmsColumns = []*schema.Column{
		{Name: "firm_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "retention_days", Type: field.TypeInt, Default: 90},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FirmsTable holds the schema information for the "firms" table.
	FirmsTable = &schema.Table{
		Name:       "firms",
		Columns:    FirmsColumns,
		PrimaryKey: []*schema.Column{FirmsColumns[0]},
	}
	// LegalCasesColumns holds the columns for the "legal_cases" table.
	LegalCasesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "case_name", Type: field.TypeString},
		{Name: "case_type", Type: field.TypeEnum, Enums: []string{"MEDICAL_MALPRACTICE", "EMPLOYMENT_DISCRIMINATION", "COMMERCIAL_DISPUTE", "CONTRACT_BREACH", "OTHER"}, Default: "OTHER"},
		{Name: "opposing_party", Type: field.TypeString, Nullable: true},
		{Name: "case_number", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "deposition_date", Type: field.TypeTime, Nullable: true},
		{Name: "extracted_facts", Type: field.TypeJSON, Nullable: true},
		{Name: "prior_statements", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "exhibit_list", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "focus_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "aggression_preset", Type: field.TypeEnum, Enums: []string{"STANDARD", "ELEVATED", "HIGH_STAKES"}, Default: "STANDARD"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "firm_id", Type: field.TypeString},
	}
	// LegalCasesTable holds the schema information for the "legal_cases" table.
	LegalCasesTable = &schema.Table{
		Name:       "legal_cases",
		Columns:    LegalCasesColumns,
		PrimaryKey: []*schema.Column{LegalCasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "legal_cases_firms_cases",
				Columns:    []*schema.Column{LegalCasesColumns[14]},
				RefColumns: []*schema.Column{FirmsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "legalcase_firm_id",
				Unique:  false,
				Columns: []*schema.Column{LegalCasesColumns[14]},
			},
			{
				Name:    "legalcase_firm_id_case_name",
				Unique:  false,
				Columns: []*schema.Column{LegalCasesColumns[14], LegalCasesColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"LOBBY", "ACTIVE", "PAUSED", "COMPLETE", "ABANDONED"}, Default: "LOBBY"},
		{Name: "aggression_level", Type: field.TypeEnum, Enums: []string{"STANDARD", "ELEVATED", "HIGH_STAKES"}, Default: "STANDARD"},
		{Name: "focus_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 30},
		{Name: "current_topic", Type: field.TypeString, Nullable: true},
		{Name: "objection_copilot_enabled", Type: field.TypeBool, Default: true},
		{Name: "sentinel_enabled", Type: field.TypeBool, Default: true},
		{Name: "brief_status", Type: field.TypeEnum, Enums: []string{"NONE", "PENDING", "GENERATING", "DONE", "FAILED"}, Default: "NONE"},
		{Name: "witness_token", Type: field.TypeString, Unique: true},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "paused_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_pause_ms", Type: field.TypeInt64, Default: 0},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "consistency_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "prior_weak_areas", Type: field.TypeJSON, Nullable: true},
		{Name: "external_context_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
		{Name: "witness_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_legal_cases_sessions",
				Columns:    []*schema.Column{SessionsColumns[22]},
				RefColumns: []*schema.Column{LegalCasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "sessions_witnesses_sessions",
				Columns:    []*schema.Column{SessionsColumns[23]},
				RefColumns: []*schema.Column{WitnessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_case_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[22]},
			},
			{
				Name:    "session_witness_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[23]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[15]},
			},
			{
				Name:    "session_brief_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8], SessionsColumns[21]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"SESSION_STARTED", "QUESTION_ASKED", "ANSWER_RECEIVED", "OBJECTION_RAISED", "FLAG_RAISED", "SESSION_PAUSED", "SESSION_RESUMED", "SESSION_ENDED", "SESSION_ABANDONED", "BRIEF_GENERATED"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_events_sessions_events",
				Columns:    []*schema.Column{SessionEventsColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_session_id_seq",
				Unique:  true,
				Columns: []*schema.Column{SessionEventsColumns[5], SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_session_id_event_type",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5], SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"PARTNER", "ASSOCIATE", "PARALEGAL", "ADMIN"}, Default: "ASSOCIATE"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "firm_id", Type: field.TypeString},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_firms_users",
				Columns:    []*schema.Column{UsersColumns[7]},
				RefColumns: []*schema.Column{FirmsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_firm_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// WitnessesColumns holds the columns for the "witnesses" table.
	WitnessesColumns = []*schema.Column{
		{Name: "witness_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "session_count", Type: field.TypeInt, Default: 0},
		{Name: "latest_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "baseline_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "plateau_detected", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// WitnessesTable holds the schema information for the "witnesses" table.
	WitnessesTable = &schema.Table{
		Name:       "witnesses",
		Columns:    WitnessesColumns,
		PrimaryKey: []*schema.Column{WitnessesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "witnesses_legal_cases_witnesses",
				Columns:    []*schema.Column{WitnessesColumns[9]},
				RefColumns: []*schema.Column{LegalCasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "witness_case_id",
				Unique:  false,
				Columns: []*schema.Column{WitnessesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		BriefsTable,
		DocumentsTable,
		FirmsTable,
		LegalCasesTable,
		SessionsTable,
		SessionEventsTable,
		UsersTable,
		WitnessesTable,
	}
)

func init() {
	AlertsTable.ForeignKeys[0].RefTable = SessionsTable
	BriefsTable.ForeignKeys[0].RefTable = SessionsTable
	DocumentsTable.ForeignKeys[0].RefTable = LegalCasesTable
	LegalCasesTable.ForeignKeys[0].RefTable = FirmsTable
	SessionsTable.ForeignKeys[0].RefTable = LegalCasesTable
	SessionsTable.ForeignKeys[1].RefTable = WitnessesTable
	SessionEventsTable.ForeignKeys[0].RefTable = SessionsTable
	UsersTable.ForeignKeys[0].RefTable = FirmsTable
	WitnessesTable.ForeignKeys[0].RefTable = LegalCasesTable
}
