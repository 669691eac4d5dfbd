package entity

import "time"

// Ticket is a ledger-store record. One ticket belongs to exactly one
// passenger and one flight.
type Ticket struct {
	TicketID    string    `json:"ticket_id"`
	PassengerID string    `json:"passenger_id"`
	FlightID    string    `json:"flight_id"`
	Seat        string    `json:"seat"`
	ClassPlace  string    `json:"class_place"`
	Price       float64   `json:"price"`
	BookingDate time.Time `json:"booking_date"`
}

// TicketCreate is the payload for creating a ticket.
type TicketCreate struct {
	PassengerID string  `json:"passenger_id" validate:"required"`
	FlightID    string  `json:"flight_id" validate:"required"`
	Seat        string  `json:"seat" validate:"required"`
	ClassPlace  string  `json:"class_place" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// TicketUpdate is a partial update; nil fields are left untouched.
type TicketUpdate struct {
	Seat       *string  `json:"seat,omitempty"`
	ClassPlace *string  `json:"class_place,omitempty"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the update carries no fields.
func (u TicketUpdate) IsEmpty() bool {
	return u.Seat == nil && u.ClassPlace == nil && u.Price == nil
}

// TicketFilter narrows a ticket listing by secondary identifiers.
type TicketFilter struct {
	PassengerID string
	FlightID    string
	Limit       int
	Offset      int
}

// TicketWithDetails is the federated ticket view: the ledger record enriched
// with the passenger's name from the document store and the flight route from
// the graph store. Enrichment fields degrade ("Unknown", "? → ?") instead of
// failing the read.
type TicketWithDetails struct {
	Ticket
	PassengerName string `json:"passenger_name"`
	FlightRoute   string `json:"flight_route"`
}

// TicketClassStats is one row of the by-class revenue aggregate.
type TicketClassStats struct {
	ClassPlace   string  `json:"class_place"`
	Count        int64   `json:"count"`
	TotalRevenue float64 `json:"total_revenue"`
}
