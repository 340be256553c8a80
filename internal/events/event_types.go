package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventScreenChanged       EventType = "screen_changed"
	EventTicketResponded     EventType = "ticket_responded"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventWalkStarted         EventType = "walk_started"
	EventPhotoPosted         EventType = "photo_posted"
	EventSupportTicketOpened EventType = "support_ticket_opened"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Flow      domain.Flow `json:"flow,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with a fresh id.
func New(eventType EventType, sessionID string, flow domain.Flow, at time.Time, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sessionID,
		Flow:      flow,
		Timestamp: at,
		Payload:   payload,
	}
}

// ScreenChangedPayload payload.
type ScreenChangedPayload struct {
	From  domain.Screen `json:"from"`
	To    domain.Screen `json:"to"`
	Event string        `json:"event"`
}

// TicketRespondedPayload payload.
type TicketRespondedPayload struct {
	TicketID    string `json:"ticket_id"`
	Protocol    string `json:"protocol"`
	BodyPreview string `json:"body_preview"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string              `json:"ticket_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// WalkStartedPayload payload.
type WalkStartedPayload struct {
	WalkerID string `json:"walker_id,omitempty"`
}

// PhotoPostedPayload payload.
type PhotoPostedPayload struct {
	Caption string `json:"caption,omitempty"`
}

// SupportTicketOpenedPayload payload.
type SupportTicketOpenedPayload struct {
	TicketID string            `json:"ticket_id"`
	Category domain.TicketType `json:"category"`
	Title    string            `json:"title"`
}
