package lookuptable

import (
	"fmt"

	"github.com/tphakala/go-lookup-table/internal/gridmath"
)

// Table2D is a two-axis lookup table with a loop-unrolled bilinear fast
// path. It embeds Table, so the whole generic API remains available;
// At performs the same corner fetches and pairwise blends as
// LookupValues without the per-dimension bookkeeping, and its results
// are bit-identical to the generic path.
type Table2D struct {
	Table
}

// New2D returns a two-dimensional table over the x and y axes.
// values holds one dependent value per (x, y) pair with x varying
// fastest: the value at (x[i], y[j]) lives at offset i + j*len(x).
func New2D(x, y, values []float64) (*Table2D, error) {
	t := &Table2D{}
	if err := t.Populate([][]float64{x, y}, values); err != nil {
		return nil, err
	}
	return t, nil
}

// At returns the bilinear interpolation of the table at (x, y).
func (t *Table2D) At(x, y float64) (float64, error) {
	if !t.Valid() {
		return 0, ErrInvalidTable
	}
	// The embedded Table promotes Populate, so the grid can have been
	// repopulated with a different arity since construction. Refuse
	// rather than interpolate a slice of a higher-dimensional table.
	if d := t.Dims(); d != 2 {
		return 0, fmt.Errorf("%w: got 2 coordinates for %d axes", ErrArityMismatch, d)
	}

	px, err := t.grid.ResolvePosition(0, x)
	if err != nil {
		return 0, err
	}
	py, err := t.grid.ResolvePosition(1, y)
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

	// A single-point axis cannot supply its high corner. The check is
	// per axis: the flat offset alone can stay in range while reading
	// a neighbor from the wrong row.
	if px.Low+1 >= nx {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d) on axis 0", ErrOutOfBounds, px.Low+1, nx)
	}
	if py.Low+1 >= ny {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d) on axis 1", ErrOutOfBounds, py.Low+1, ny)
	}

	// The four bracketing corners. Row-major with x fastest, so the
	// y neighbor is one x-row (nx values) away.
	base := px.Low + py.Low*nx
	lowLow, err := t.grid.ValueAt(base)
	if err != nil {
		return 0, err
	}
	lowHigh, err := t.grid.ValueAt(base + nx)
	if err != nil {
		return 0, err
	}
	highLow, err := t.grid.ValueAt(base + 1)
	if err != nil {
		return 0, err
	}
	highHigh, err := t.grid.ValueAt(base + nx + 1)
	if err != nil {
		return 0, err
	}

	// Blend along y first, then x, matching the generic collapse
	// order exactly.
	return gridmath.Lerp(
		gridmath.Lerp(lowLow, lowHigh, py.Frac),
		gridmath.Lerp(highLow, highHigh, py.Frac),
		px.Frac,
	), nil
}

// AtIndices returns the exact stored value at integer indices (i, j).
func (t *Table2D) AtIndices(i, j int) (float64, error) {
	return t.grid.LookupIndices([]int{i, j})
}

// QueryAt is At in tagged-result form.
func (t *Table2D) QueryAt(x, y float64) Result[float64] {
	return resultOf(t.At(x, y))
}

// X returns the grid coordinate i points along the x axis, mirroring
// the layout documented on New2D.
func (t *Table2D) X(i int) (float64, error) {
	return t.grid.AxisValue(0, i)
}

// Y returns the grid coordinate j points along the y axis.
func (t *Table2D) Y(j int) (float64, error) {
	return t.grid.AxisValue(1, j)
}
