package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestInterpolate_ExactGridPoints(t *testing.T) {
	g := newTestGrid(t)

	for _, tc := range []struct {
		x, y, want float64
	}{
		{1, 10, 100}, {2, 10, 200}, {3, 10, 300},
		{1, 20, 400}, {2, 20, 500}, {3, 20, 600},
	} {
		v, err := g.Interpolate([]float64{tc.x, tc.y})
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, "at (%g, %g)", tc.x, tc.y)
	}
}

func TestInterpolate_Midpoints2D(t *testing.T) {
	g := newTestGrid(t)

	v, err := g.Interpolate([]float64{1.5, 10})
	require.NoError(t, err)
	assert.Equal(t, 150.0, v)

	v, err = g.Interpolate([]float64{2, 15})
	require.NoError(t, err)
	assert.Equal(t, 350.0, v)

	// Both axes fractional at once.
	v, err = g.Interpolate([]float64{1.5, 15})
	require.NoError(t, err)
	assert.Equal(t, 300.0, v)
}

func TestInterpolate_OutOfDomain(t *testing.T) {
	g := newTestGrid(t)

	_, err := g.Interpolate([]float64{0.5, 10})
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = g.Interpolate([]float64{2, 25})
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestInterpolate_ArityMismatch(t *testing.T) {
	g := newTestGrid(t)

	_, err := g.Interpolate([]float64{1})
	assert.ErrorIs(t, err, ErrArityMismatch)
	_, err = g.Interpolate([]float64{1, 10, 0})
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestInterpolate_CenterOf3DCube(t *testing.T) {
	// 2x2x2 grid holding 0..7: the center is the mean of all corners.
	g := New()
	require.NoError(t, g.Populate(
		[][]float64{{0, 1}, {0, 1}, {0, 1}},
		[]float64{0, 1, 2, 3, 4, 5, 6, 7},
	))

	v, err := g.Interpolate([]float64{0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestInterpolate_3DCorners(t *testing.T) {
	g := New()
	require.NoError(t, g.Populate(
		[][]float64{{0, 1}, {0, 1}, {0, 1}},
		[]float64{0, 1, 2, 3, 4, 5, 6, 7},
	))

	// Axis 0 varies fastest in the flat layout, so corner (i, j, k)
	// stores i + 2j + 4k.
	for k := 0.0; k <= 1; k++ {
		for j := 0.0; j <= 1; j++ {
			for i := 0.0; i <= 1; i++ {
				v, err := g.Interpolate([]float64{i, j, k})
				require.NoError(t, err)
				assert.Equal(t, i+2*j+4*k, v, "corner (%g, %g, %g)", i, j, k)
			}
		}
	}
}

func TestInterpolate_LinearAlongSingleAxis(t *testing.T) {
	g := newTestGrid(t)

	// Holding y fixed, the result is exactly linear in x between grid
	// points: values along y=10 are 100, 200, 300.
	for _, x := range []float64{1, 1.1, 1.25, 1.5, 1.9, 2, 2.75, 3} {
		v, err := g.Interpolate([]float64{x, 10})
		require.NoError(t, err)
		assert.InDelta(t, 100*x, v, 1e-9, "at x=%g", x)
	}
}

func TestInterpolate_MonotonicSweep(t *testing.T) {
	g := newTestGrid(t)

	// Sweeping x across one interval of monotonic data must produce a
	// monotonic result.
	xs := make([]float64, 101)
	floats.Span(xs, 1, 2)
	prev := -1.0
	for _, x := range xs {
		v, err := g.Interpolate([]float64{x, 10})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev, "at x=%g", x)
		prev = v
	}
}

func TestInterpolate_4D(t *testing.T) {
	// 2^4 grid whose value at (a, b, c, d) is a + 2b + 4c + 8d, axis 0
	// fastest. Multilinear interpolation reproduces any multilinear
	// function exactly, inside the grid as well as at its corners.
	axes := [][]float64{{0, 1}, {0, 1}, {0, 1}, {0, 1}}
	values := make([]float64, 16)
	for i := range values {
		values[i] = float64(i)
	}
	g := New()
	require.NoError(t, g.Populate(axes, values))

	v, err := g.Interpolate([]float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	v, err = g.Interpolate([]float64{0.25, 0, 1, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.25+4+4, v, 1e-12)
}

func BenchmarkInterpolate2D(b *testing.B) {
	g := New()
	if err := g.Populate(
		[][]float64{{1, 2, 3}, {10, 20}},
		[]float64{100, 200, 300, 400, 500, 600},
	); err != nil {
		b.Fatal(err)
	}
	coords := []float64{1.5, 15}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Interpolate(coords); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInterpolate6D(b *testing.B) {
	axes := make([][]float64, 6)
	for i := range axes {
		axes[i] = []float64{0, 1, 2}
	}
	values := make([]float64, 729)
	for i := range values {
		values[i] = float64(i)
	}
	g := New()
	if err := g.Populate(axes, values); err != nil {
		b.Fatal(err)
	}
	coords := []float64{0.5, 1.5, 0.25, 1.75, 1.0, 0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Interpolate(coords); err != nil {
			b.Fatal(err)
		}
	}
}
