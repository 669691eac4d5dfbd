package entity

import "time"

// Event types emitted on ticket and passenger lifecycle changes.
const (
	EventTicketCreated    = "ticket.created"
	EventTicketDeleted    = "ticket.deleted"
	EventPassengerDeleted = "passenger.deleted"
)

// Event is a best-effort lifecycle notification. Delivery failures never
// fail the operation that produced the event.
type Event struct {
	Type       string         `json:"type"`
	Key        string         `json:"key"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}
