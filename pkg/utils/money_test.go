package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"two decimals pass through", 19.99, 19.99},
		{"rounds up at half", 1.375, 1.38},
		{"rounds down below half", 1.374, 1.37},
		{"negative rounds away from zero", -1.375, -1.38},
		{"zero", 0, 0},
		{"float representation below half cent", 10.005 + 20.00, 30.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundMoney(tt.in))
		})
	}
}
