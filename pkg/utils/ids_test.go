package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFormats(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^pas_[0-9a-f]{8}$`), NewPassengerID())
	assert.Regexp(t, regexp.MustCompile(`^tkt_[0-9a-f]{6}$`), NewTicketID())
	assert.Regexp(t, regexp.MustCompile(`^bag_[0-9a-f]{8}$`), NewBaggageID())
	assert.Regexp(t, regexp.MustCompile(`^REG-[0-9a-f]{6}$`), NewRegNumber())
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewPassengerID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
