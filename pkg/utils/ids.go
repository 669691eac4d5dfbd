package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
)

func randomHex(n int) string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:n]
}

// NewPassengerID returns an id like "pas_1a2b3c4d".
func NewPassengerID() string {
	return "pas_" + randomHex(8)
}

// NewTicketID returns an id like "tkt_1a2b3c".
func NewTicketID() string {
	return "tkt_" + randomHex(6)
}

// NewBaggageID returns an id like "bag_1a2b3c4d".
func NewBaggageID() string {
	return "bag_" + randomHex(8)
}

// NewRegNumber returns an aircraft registration like "REG-1a2b3c".
func NewRegNumber() string {
	return "REG-" + randomHex(6)
}
