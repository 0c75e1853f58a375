package models

import (
	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/alert"
)

// CreateAlertRequest describes a new attorney-facing alert.
type CreateAlertRequest struct {
	SessionID         string
	AlertType         alert.AlertType
	Confidence        float64
	ImpeachmentRisk   alert.ImpeachmentRisk
	PriorQuote        string
	PriorSourcePage   *int
	PriorSourceLine   *int
	CurrentQuote      string
	FreRule           string
	FreClassification string
	QuestionNumber    *int
}

// AlertListResponse contains a session's alerts, newest first.
type AlertListResponse struct {
	Alerts []*ent.Alert `json:"alerts"`
}
