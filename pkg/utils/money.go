package utils

import "math"

// RoundMoney rounds a monetary amount to two decimal places, half away from
// zero. The rounding operates on the float64 representation of the amount, so
// a sum whose binary value sits just below the half-cent boundary (e.g.
// 10.005 + 20.00) rounds down.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
