// Package grid implements the N-dimensional lookup table engine:
// validated axis/value storage, row-major flat index mapping,
// binary-search position resolution, and multilinear interpolation.
package grid

import (
	"errors"
	"fmt"
)

// Errors reported by grid operations. The public package re-exports
// these so callers can match them with errors.Is at either layer.
var (
	// ErrInvalidGrid indicates a query against a grid that has never
	// been populated, or whose last population failed validation.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrOutOfDomain indicates a coordinate outside an axis's value
	// range. Extrapolation is refused, never approximated.
	ErrOutOfDomain = errors.New("coordinate out of domain")

	// ErrOutOfBounds indicates an integer index outside an axis's
	// length, or an axis number outside the grid's dimension count.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrShapeMismatch indicates candidate data that cannot form a
	// grid: fewer than two axes, a value count that does not equal the
	// product of the axis lengths, or an axis that is not strictly
	// increasing.
	ErrShapeMismatch = errors.New("data shape mismatch")

	// ErrArityMismatch indicates a coordinate or index tuple whose
	// length differs from the grid's dimension count.
	ErrArityMismatch = errors.New("input arity mismatch")
)

// minAxes is the smallest supported dimension count. One-dimensional
// tables are left to simpler structures.
const minAxes = 2

// Grid owns the validated axes and the flattened dependent values of a
// rectilinear lookup table. The zero value is an empty, invalid grid.
//
// A Grid is not internally synchronized. Populate once (or under
// external locking), then read from any number of goroutines.
type Grid struct {
	axes   [][]float64
	values []float64
	valid  bool
}

// New returns an empty, invalid grid.
func New() *Grid {
	return &Grid{}
}

// Validate checks whether axes and values can form a grid: at least
// two axes, every axis strictly increasing, and exactly one value per
// grid point (len(values) == product of axis lengths). It reports the
// first violation found as an ErrShapeMismatch.
//
// Strictness is a plain < comparison between adjacent axis elements;
// equal adjacent elements fail even when they are within the
// approximate-equality band used during position resolution.
func Validate(axes [][]float64, values []float64) error {
	if len(axes) < minAxes {
		return fmt.Errorf("%w: need at least %d axes, got %d", ErrShapeMismatch, minAxes, len(axes))
	}

	points := 1
	for i, axis := range axes {
		for j := 1; j < len(axis); j++ {
			if axis[j-1] >= axis[j] {
				return fmt.Errorf("%w: axis %d is not strictly increasing at element %d (%g >= %g)",
					ErrShapeMismatch, i, j, axis[j-1], axis[j])
			}
		}
		points *= len(axis)
	}

	if len(values) != points {
		return fmt.Errorf("%w: got %d values for %d grid points", ErrShapeMismatch, len(values), points)
	}

	return nil
}

// Populate validates the candidate data and, on success, replaces the
// grid's contents with private copies of it. On failure the grid is
// reset to the empty, invalid state; there is no partially populated
// outcome.
func (g *Grid) Populate(axes [][]float64, values []float64) error {
	if err := Validate(axes, values); err != nil {
		g.Reset()
		return err
	}

	g.axes = make([][]float64, len(axes))
	for i, axis := range axes {
		g.axes[i] = append([]float64(nil), axis...)
	}
	g.values = append([]float64(nil), values...)
	g.valid = true
	return nil
}

// Reset clears the grid to the empty, invalid state.
func (g *Grid) Reset() {
	g.axes = nil
	g.values = nil
	g.valid = false
}

// Valid reports whether the grid currently holds validated data.
func (g *Grid) Valid() bool {
	return g.valid
}

// Dims returns the number of axes.
func (g *Grid) Dims() int {
	return len(g.axes)
}

// ValueCount returns the length of the dependent value array.
func (g *Grid) ValueCount() int {
	return len(g.values)
}

// AxisLen returns the number of grid points along the given axis.
func (g *Grid) AxisLen(axis int) (int, error) {
	if axis < 0 || axis >= len(g.axes) {
		return 0, fmt.Errorf("%w: axis %d out of range [0, %d)", ErrOutOfBounds, axis, len(g.axes))
	}
	return len(g.axes[axis]), nil
}

// FlatIndex maps a tuple of per-axis indices to the offset of the
// corresponding value in the flattened dependent array. The mapping is
// row-major with axis 0 varying fastest:
//
//	offset = i + j*n0 + k*n1*n0 + ...
//
// which must match the order the dependent array was populated in.
func (g *Grid) FlatIndex(indices []int) (int, error) {
	if !g.valid {
		return 0, ErrInvalidGrid
	}
	if len(indices) != len(g.axes) {
		return 0, fmt.Errorf("%w: got %d indices for %d axes", ErrArityMismatch, len(indices), len(g.axes))
	}

	flat, stride := 0, 1
	for i, idx := range indices {
		n := len(g.axes[i])
		if idx < 0 || idx >= n {
			return 0, fmt.Errorf("%w: index %d out of range [0, %d) on axis %d", ErrOutOfBounds, idx, n, i)
		}
		flat += idx * stride
		stride *= n
	}

	// Unreachable after validation; kept as an internal consistency
	// check rather than letting a slice access panic downstream.
	if flat >= len(g.values) {
		return 0, fmt.Errorf("%w: computed offset %d exceeds value count %d", ErrOutOfBounds, flat, len(g.values))
	}
	return flat, nil
}

// ValueAt returns the dependent value at a flat offset.
func (g *Grid) ValueAt(flat int) (float64, error) {
	if !g.valid {
		return 0, ErrInvalidGrid
	}
	if flat < 0 || flat >= len(g.values) {
		return 0, fmt.Errorf("%w: offset %d out of range [0, %d)", ErrOutOfBounds, flat, len(g.values))
	}
	return g.values[flat], nil
}

// AxisValue returns the grid coordinate at position i along an axis.
func (g *Grid) AxisValue(axis, i int) (float64, error) {
	if !g.valid {
		return 0, ErrInvalidGrid
	}
	if axis < 0 || axis >= len(g.axes) {
		return 0, fmt.Errorf("%w: axis %d out of range [0, %d)", ErrOutOfBounds, axis, len(g.axes))
	}
	if i < 0 || i >= len(g.axes[axis]) {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d) on axis %d", ErrOutOfBounds, i, len(g.axes[axis]), axis)
	}
	return g.axes[axis][i], nil
}

// LookupIndices returns the exact stored value at a tuple of per-axis
// indices. No interpolation is performed.
func (g *Grid) LookupIndices(indices []int) (float64, error) {
	flat, err := g.FlatIndex(indices)
	if err != nil {
		return 0, err
	}
	return g.values[flat], nil
}

// Snapshot returns deep copies of the grid's axes and values, or nil
// slices when the grid is invalid. The grid's own storage is never
// exposed.
func (g *Grid) Snapshot() (axes [][]float64, values []float64) {
	if !g.valid {
		return nil, nil
	}
	axes = make([][]float64, len(g.axes))
	for i, axis := range g.axes {
		axes[i] = append([]float64(nil), axis...)
	}
	return axes, append([]float64(nil), g.values...)
}
