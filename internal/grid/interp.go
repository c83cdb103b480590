package grid

import (
	"fmt"

	"github.com/tphakala/go-lookup-table/internal/gridmath"
)

// Interpolate returns the multilinear interpolation of the grid's
// values at a tuple of real-valued coordinates, one per axis.
//
// Each coordinate is resolved to a (low index, fraction) pair, the 2^D
// grid corners bracketing the query point are gathered, and the corner
// values are collapsed pairwise, one axis per round, into the final
// scalar. A coordinate outside its axis's range fails with
// ErrOutOfDomain; no extrapolation or clamping is performed.
func (g *Grid) Interpolate(coords []float64) (float64, error) {
	if !g.valid {
		return 0, ErrInvalidGrid
	}
	dims := len(g.axes)
	if len(coords) != dims {
		return 0, fmt.Errorf("%w: got %d coordinates for %d axes", ErrArityMismatch, len(coords), dims)
	}

	lows := make([]int, dims)
	fracs := make([]float64, dims)
	for i, v := range coords {
		pos, err := g.ResolvePosition(i, v)
		if err != nil {
			return 0, err
		}
		lows[i] = pos.Low
		fracs[i] = pos.Frac
	}

	// Gather the 2^D corners surrounding the query point. Corner c is
	// a binary counter over the axes with the last axis as the least
	// significant bit: bit 0 selects Low, bit 1 selects Low+1, so the
	// last axis flips fastest across the sequence. The collapse below
	// depends on this ordering.
	corners := 1 << dims
	indices := make([]int, dims)
	vals := make([]float64, corners)
	for c := 0; c < corners; c++ {
		for i := 0; i < dims; i++ {
			indices[i] = lows[i] + (c>>(dims-1-i))&1
		}
		v, err := g.LookupIndices(indices)
		if err != nil {
			// Reachable only for an axis with a single grid point,
			// where Low+1 does not exist.
			return 0, err
		}
		vals[c] = v
	}

	// Collapse pairwise, one axis per round. Adjacent corners differ
	// in the fastest-flipping axis, so the first round blends along
	// the last axis and each later round moves one axis outward,
	// halving the sequence until one value remains.
	count := corners
	for round := 0; round < dims; round++ {
		t := fracs[dims-1-round]
		for j := 1; j < count; j += 2 {
			vals[j/2] = gridmath.Lerp(vals[j-1], vals[j], t)
		}
		count >>= 1
	}
	return vals[0], nil
}
