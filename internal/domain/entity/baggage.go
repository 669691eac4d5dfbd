package entity

import "time"

// Baggage is a ledger-store record owned by a ticket. It is removed by the
// best-effort cascade when its ticket is deleted.
type Baggage struct {
	BaggageID   string    `json:"baggage_id"`
	TicketID    string    `json:"ticket_id"`
	Weight      float64   `json:"weight"`
	Status      string    `json:"status"`
	LastUpdated time.Time `json:"last_updated"`
}
