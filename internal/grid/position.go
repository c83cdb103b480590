package grid

import (
	"fmt"

	"github.com/tphakala/go-lookup-table/internal/gridmath"
)

// Position locates a query coordinate along one axis: the index of the
// grid point at or below the coordinate, and the fractional progress
// from that point toward the next one.
//
// Frac is normally in [0, 1). The one exception is a query at the last
// grid point of an axis: Low is pulled back by one so that Low+1 stays
// addressable, and Frac carries the overshoot (1.0 at the endpoint
// itself), which interpolates to the same value.
type Position struct {
	Low  int
	Frac float64
}

// ResolvePosition finds the bracketing grid index and fractional
// progress of coordinate v along the given axis via binary search.
//
// Both axis endpoints are inside the domain; anything beyond either of
// them fails with ErrOutOfDomain. The search short-circuits to an
// exact match when v is approximately equal to a grid value, so a
// coordinate within the equality band of a grid point resolves with
// Frac == 0 rather than a sliver of interpolation.
func (g *Grid) ResolvePosition(axis int, v float64) (Position, error) {
	if !g.valid {
		return Position{}, ErrInvalidGrid
	}
	if axis < 0 || axis >= len(g.axes) {
		return Position{}, fmt.Errorf("%w: axis %d out of range [0, %d)", ErrOutOfBounds, axis, len(g.axes))
	}

	data := g.axes[axis]
	if len(data) == 0 {
		return Position{}, fmt.Errorf("%w: axis %d has no grid points", ErrOutOfDomain, axis)
	}
	if v < data[0] || v > data[len(data)-1] {
		return Position{}, fmt.Errorf("%w: %g outside axis %d range [%g, %g]",
			ErrOutOfDomain, v, axis, data[0], data[len(data)-1])
	}

	// Narrow a half-open bracket [l, r) until it collapses to a single
	// interval, short-circuiting when a grid value matches v.
	l, r := 0, len(data)
	m := (l + r) / 2
	for l < m && m < r {
		if gridmath.ApproxEqual(v, data[m]) {
			l, r = m, m
			break
		}
		if v < data[m] {
			r = m
		} else {
			l = m
		}
		m = (l + r) / 2
	}

	var pos float64
	switch {
	case l == r:
		// Exact match.
		pos = float64(l)
	case r >= len(data):
		// Single-point axis; the bounds check has already pinned v to
		// its only value.
		pos = float64(l)
	default:
		pos = float64(l) + gridmath.InvLerp(data[l], data[r], v)
	}

	low := int(pos)
	frac := pos - float64(low)
	if low > 0 && low == len(data)-1 {
		// A hit on the last grid point becomes (last-1, frac+1.0) so
		// the interpolator can always address Low+1. The addition
		// rather than assignment keeps the overshoot meaningful if the
		// domain check were ever relaxed to allow extrapolation.
		low--
		frac += 1.0
	}
	return Position{Low: low, Frac: frac}, nil
}
