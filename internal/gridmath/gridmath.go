// Package gridmath provides the scalar numeric helpers shared by the
// grid engine: linear interpolation, inverse linear interpolation, and
// the approximate-equality rule the binary search depends on.
package gridmath

import (
	"math"
)

// ApproxEqual reports whether a and b are close enough to be considered
// equal for grid purposes.
//
// The rule is relative, scaled by the larger magnitude of the two
// operands:
//
//	|a-b| <= max(|a|, |b|) * machineEpsilon * approxEqualFactor
//
// The generous multiplier absorbs the floating-point noise that
// accumulates in axis data produced by repeated addition (uniform axes,
// unit conversions). Both the binary-search exact-match short-circuit
// and the degenerate inverse-lerp case depend on this exact rule, so it
// must not be swapped for a different tolerance scheme.
func ApproxEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= scale*machineEpsilon*approxEqualFactor
}

// Lerp returns the value found t of the way from a to b:
//
//	a + t*(b - a)
//
// t is not clamped; t outside [0, 1] extrapolates.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InvLerp returns how far v is between a and b as a fraction
// (e.g. a=2.0, b=3.5, v=2.75 -> 0.5). The inverse of Lerp.
//
// When a and b are approximately equal the bracket has collapsed and
// any fraction describes the same point; 0 is returned to avoid
// dividing by zero.
func InvLerp(a, b, v float64) float64 {
	if ApproxEqual(a, b) {
		return 0
	}
	return (v - a) / (b - a)
}
