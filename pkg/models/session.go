// Package models contains request/response types shared by the services and
// API layers.
package models

import (
	"time"

	"github.com/verdictlabs/verdict/ent"
)

// CreateSessionRequest contains fields for creating a rehearsal session.
// AggressionLevel and FocusAreas fall back to the case's defaults when
// omitted.
type CreateSessionRequest struct {
	CaseID                  string   `json:"case_id"`
	WitnessID               string   `json:"witness_id"`
	AggressionLevel         string   `json:"aggression_level,omitempty"`
	FocusAreas              []string `json:"focus_areas,omitempty"`
	DurationMinutes         int      `json:"duration_minutes,omitempty"`
	ObjectionCopilotEnabled *bool    `json:"objection_copilot_enabled,omitempty"`
	SentinelEnabled         *bool    `json:"sentinel_enabled,omitempty"`
	ExternalContextID       string   `json:"external_context_id,omitempty"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	CaseID    string `json:"case_id,omitempty"`
	WitnessID string `json:"witness_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// SessionResponse wraps a Session with optional loaded edges.
type SessionResponse struct {
	*ent.Session
}

// SessionListResponse contains a paginated session list.
type SessionListResponse struct {
	Sessions   []*ent.Session `json:"sessions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// TranscriptEntry is one question or answer on the live-state transcript.
type TranscriptEntry struct {
	Seq            int    `json:"seq"`
	Kind           string `json:"kind"`
	QuestionNumber int    `json:"question_number,omitempty"`
	Text           string `json:"text"`
	Truncated      bool   `json:"truncated,omitempty"`
}

// LiveState is the polling snapshot shown on the attorney console.
type LiveState struct {
	SessionID         string            `json:"session_id"`
	Status            string            `json:"status"`
	QuestionCount     int               `json:"question_count"`
	CurrentTopic      string            `json:"current_topic,omitempty"`
	ElapsedSeconds    int64             `json:"elapsed_seconds"`
	TotalSeconds      int64             `json:"total_seconds"`
	PendingObjections int               `json:"pending_objections"`
	PendingFlags      int               `json:"pending_flags"`
	Transcript        []TranscriptEntry `json:"transcript"`
	Alerts            []*ent.Alert      `json:"alerts"`
	WitnessConnected  bool              `json:"witness_connected"`
	ServiceStatus     map[string]string `json:"service_status,omitempty"`
	LastQuestion      string            `json:"last_question,omitempty"`
	LastInteractionAt *time.Time        `json:"last_interaction_at,omitempty"`
}
