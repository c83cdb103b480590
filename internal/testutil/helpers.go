// Package testutil provides reusable test helper functions for lookup
// table tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// DefaultTolerance is the delta used for comparisons that should agree
// to floating-point noise.
const DefaultTolerance = 1e-10

// AssertStrictlyIncreasing verifies that every adjacent pair of s is
// strictly increasing, the shape every table axis must have.
func AssertStrictlyIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%g >= s[%d]=%g", i-1, s[i-1], i, s[i])
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual
// and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual)
}
