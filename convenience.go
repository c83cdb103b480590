package lookuptable

import (
	"gonum.org/v1/gonum/floats"
)

// UniformAxis returns n grid coordinates starting at start and spaced
// step apart. A step of zero or less yields an axis that population
// will reject, since axes must be strictly increasing.
func UniformAxis(start, step float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	axis := make([]float64, n)
	floats.Span(axis, start, start+step*float64(n-1))
	return axis
}

// NewUniform2D returns a two-dimensional table whose axes are uniformly
// spaced: nx points from x0 spaced dx apart, ny points from y0 spaced
// dy apart. values follows the layout documented on New2D.
func NewUniform2D(x0, dx float64, nx int, y0, dy float64, ny int, values []float64) (*Table2D, error) {
	return New2D(UniformAxis(x0, dx, nx), UniformAxis(y0, dy, ny), values)
}

// NewUniform3D returns a three-dimensional table whose axes are
// uniformly spaced. values follows the layout documented on New3D.
func NewUniform3D(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	z0, dz float64, nz int,
	values []float64,
) (*Table3D, error) {
	return New3D(
		UniformAxis(x0, dx, nx),
		UniformAxis(y0, dy, ny),
		UniformAxis(z0, dz, nz),
		values,
	)
}
