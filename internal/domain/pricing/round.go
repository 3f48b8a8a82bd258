package pricing

import "math"

// roundCurrency rounds to the nearest whole currency unit. Every function
// producing a monetary value rounds its own output with this, so no
// floating residue survives past a rounding boundary.
func roundCurrency(v float64) float64 {
	return math.Round(v)
}

// clamp pins v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wholeCount turns a free-form numeric count into a usable one: fractions
// truncate toward zero, negatives clamp to zero.
func wholeCount(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Trunc(v)
}

// nonNegative clamps measurements that cannot meaningfully be negative.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
