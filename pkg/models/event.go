package models

import (
	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/sessionevent"
)

// AppendEventRequest describes a timeline append. Seq is assigned by the
// event service, never by callers.
type AppendEventRequest struct {
	SessionID string
	EventType sessionevent.EventType
	Payload   map[string]any
}

// EventListResponse contains a session's timeline in seq order.
type EventListResponse struct {
	Events []*ent.SessionEvent `json:"events"`
}
