package lookuptable

import (
	"fmt"

	"github.com/tphakala/go-lookup-table/internal/gridmath"
)

// Table3D is a three-axis lookup table with a loop-unrolled trilinear
// fast path. It embeds Table, so the whole generic API remains
// available; At produces results bit-identical to LookupValues.
type Table3D struct {
	Table
}

// New3D returns a three-dimensional table over the x, y and z axes.
// values holds one dependent value per (x, y, z) triple with x varying
// fastest: the value at (x[i], y[j], z[k]) lives at offset
// i + j*len(x) + k*len(x)*len(y).
func New3D(x, y, z, values []float64) (*Table3D, error) {
	t := &Table3D{}
	if err := t.Populate([][]float64{x, y, z}, values); err != nil {
		return nil, err
	}
	return t, nil
}

// At returns the trilinear interpolation of the table at (x, y, z).
func (t *Table3D) At(x, y, z float64) (float64, error) {
	if !t.Valid() {
		return 0, ErrInvalidTable
	}
	// The embedded Table promotes Populate, so the grid can have been
	// repopulated with a different arity since construction. Refuse
	// rather than interpolate a slice of a higher-dimensional table.
	if d := t.Dims(); d != 3 {
		return 0, fmt.Errorf("%w: got 3 coordinates for %d axes", ErrArityMismatch, d)
	}

	px, err := t.grid.ResolvePosition(0, x)
	if err != nil {
		return 0, err
	}
	py, err := t.grid.ResolvePosition(1, y)
	if err != nil {
		return 0, err
	}
	pz, err := t.grid.ResolvePosition(2, z)
	if err != nil {
		return 0, err
	}

	nx, err := t.grid.AxisLen(0)
	if err != nil {
		return 0, err
	}
	ny, err := t.grid.AxisLen(1)
	if err != nil {
		return 0, err
	}
	nz, err := t.grid.AxisLen(2)
	if err != nil {
		return 0, err
	}

	// A single-point axis cannot supply its high corner. The check is
	// per axis: the flat offset alone can stay in range while reading
	// a neighbor from the wrong row or plane.
	if px.Low+1 >= nx {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d) on axis 0", ErrOutOfBounds, px.Low+1, nx)
	}
	if py.Low+1 >= ny {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d) on axis 1", ErrOutOfBounds, py.Low+1, ny)
	}
	if pz.Low+1 >= nz {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d) on axis 2", ErrOutOfBounds, pz.Low+1, nz)
	}

	// The eight bracketing corners, named by their (x, y, z) side.
	// Row-major with x fastest: +1 steps x, +nx steps y, +nx*ny steps z.
	base := px.Low + py.Low*nx + pz.Low*nx*ny
	plane := nx * ny

	// Corner offsets ordered with z flipping fastest, then y, then x,
	// the order the blends below assume.
	offsets := [8]int{0, plane, nx, nx + plane, 1, 1 + plane, 1 + nx, 1 + nx + plane}
	var c [8]float64
	for n, offset := range offsets {
		c[n], err = t.grid.ValueAt(base + offset)
		if err != nil {
			return 0, err
		}
	}

	// Blend along z, then y, then x, matching the generic collapse
	// order exactly.
	lowLow := gridmath.Lerp(c[0], c[1], pz.Frac)
	lowHigh := gridmath.Lerp(c[2], c[3], pz.Frac)
	highLow := gridmath.Lerp(c[4], c[5], pz.Frac)
	highHigh := gridmath.Lerp(c[6], c[7], pz.Frac)

	low := gridmath.Lerp(lowLow, lowHigh, py.Frac)
	high := gridmath.Lerp(highLow, highHigh, py.Frac)

	return gridmath.Lerp(low, high, px.Frac), nil
}

// AtIndices returns the exact stored value at integer indices (i, j, k).
func (t *Table3D) AtIndices(i, j, k int) (float64, error) {
	return t.grid.LookupIndices([]int{i, j, k})
}

// QueryAt is At in tagged-result form.
func (t *Table3D) QueryAt(x, y, z float64) Result[float64] {
	return resultOf(t.At(x, y, z))
}
