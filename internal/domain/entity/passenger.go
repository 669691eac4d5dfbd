package entity

import "time"

// Contact is a passenger's contact block.
type Contact struct {
	Email string `bson:"email" json:"email" validate:"required,email"`
	Phone string `bson:"phone" json:"phone" validate:"required"`
}

// Passenger is the document-store profile of a traveller, keyed by
// passenger id. Tickets are referenced from the ledger store, never embedded.
type Passenger struct {
	ID          string     `bson:"_id,omitempty" json:"-"`
	PassengerID string     `bson:"passenger_id" json:"passenger_id"`
	FullName    string     `bson:"full_name" json:"full_name"`
	Passport    string     `bson:"passport" json:"passport"`
	Nationality string     `bson:"nationality" json:"nationality"`
	Contact     Contact    `bson:"contact" json:"contact"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// PassengerCreate is the payload for creating a passenger.
type PassengerCreate struct {
	FullName    string  `json:"full_name" validate:"required"`
	Passport    string  `json:"passport" validate:"required"`
	Nationality string  `json:"nationality" validate:"required"`
	Contact     Contact `json:"contact" validate:"required"`
}

// PassengerUpdate is a partial update; nil fields are left untouched.
type PassengerUpdate struct {
	FullName    *string  `json:"full_name,omitempty"`
	Passport    *string  `json:"passport,omitempty"`
	Nationality *string  `json:"nationality,omitempty"`
	Contact     *Contact `json:"contact,omitempty" validate:"omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u PassengerUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Passport == nil && u.Nationality == nil && u.Contact == nil
}

// PassengerWithTickets is the federated passenger view: the document-store
// profile merged with the ledger-store ticket set.
type PassengerWithTickets struct {
	Passenger
	Tickets []Ticket `json:"tickets"`
}

// CountryStats is one row of the by-nationality aggregate.
type CountryStats struct {
	Country string `bson:"country" json:"country"`
	Count   int64  `bson:"count" json:"count"`
}

// TotalSpent is the cross-store spend aggregate for one passenger.
type TotalSpent struct {
	PassengerID string  `json:"passenger_id"`
	TotalSpent  float64 `json:"total_spent"`
	Currency    string  `json:"currency"`
}
