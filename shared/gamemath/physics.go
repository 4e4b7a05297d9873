package gamemath

import "math"

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Bob returns the vertical offset of a sine oscillation at the given phase.
func Bob(phase, amplitude float64) float64 {
	return math.Sin(phase) * amplitude
}

// SpanDistance is the horizontal gap between x and the span [lo, hi], zero
// when x lies inside it.
func SpanDistance(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo - x
	case x > hi:
		return x - hi
	}
	return 0
}
