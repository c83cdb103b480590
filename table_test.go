package lookuptable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAxes and testValues form the canonical 3x2 fixture used across
// the package tests: value at (x, y) grid point (i, j) is stored at
// offset i + j*3.
var (
	testAxes   = [][]float64{{1, 2, 3}, {10, 20}}
	testValues = []float64{100, 200, 300, 400, 500, 600}
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl := New()
	require.NoError(t, tbl.Populate(testAxes, testValues))
	return tbl
}

func TestNew_StartsInvalid(t *testing.T) {
	tbl := New()
	assert.False(t, tbl.Valid())
	assert.Equal(t, 0, tbl.Dims())
	assert.Equal(t, 0, tbl.ValueCount())

	_, err := tbl.LookupValues(1, 10)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestNewFromAxes(t *testing.T) {
	tbl := NewFromAxes(testAxes, testValues)
	assert.True(t, tbl.Valid())

	// Bad data yields an invalid table instead of an error.
	tbl = NewFromAxes(testAxes, []float64{1, 2, 3})
	assert.False(t, tbl.Valid())
}

func TestNewFromDataSet(t *testing.T) {
	tbl := NewFromDataSet([][]float64{{1, 2, 3}, {10, 20}, testValues})
	require.True(t, tbl.Valid())

	v, err := tbl.LookupValues(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 200.0, v)

	assert.False(t, NewFromDataSet(nil).Valid())
	assert.False(t, NewFromDataSet([][]float64{{1, 2}}).Valid())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(testAxes, testValues))
	assert.ErrorIs(t, Validate(testAxes, testValues[:5]), ErrShapeMismatch)
	assert.ErrorIs(t, Validate([][]float64{{1, 2}}, []float64{1, 2}), ErrShapeMismatch)
}

func TestValidateDataSet(t *testing.T) {
	assert.NoError(t, ValidateDataSet([][]float64{{1, 2, 3}, {10, 20}, testValues}))
	assert.ErrorIs(t, ValidateDataSet([][]float64{{1, 2, 3}, testValues}), ErrShapeMismatch)
	assert.ErrorIs(t, ValidateDataSet(nil), ErrShapeMismatch)
}

func TestPopulate_DoesNotMutateOnFailure(t *testing.T) {
	tbl := newTestTable(t)
	require.ErrorIs(t, tbl.Populate([][]float64{{3, 2, 1}, {10, 20}}, testValues), ErrShapeMismatch)

	assert.False(t, tbl.Valid())
	_, err := tbl.LookupValues(2, 10)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestMetadata(t *testing.T) {
	tbl := newTestTable(t)

	assert.Equal(t, 2, tbl.Dims())
	assert.Equal(t, 6, tbl.ValueCount())

	n, err := tbl.AxisLen(0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = tbl.AxisLen(5)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	v, err := tbl.AxisValue(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)
	_, err = tbl.AxisValue(1, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestLookupValues_SpecScenarios(t *testing.T) {
	tbl := newTestTable(t)

	v, err := tbl.LookupValues(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 200.0, v)

	v, err = tbl.LookupValues(1.5, 10)
	require.NoError(t, err)
	assert.Equal(t, 150.0, v)

	v, err = tbl.LookupValues(2, 15)
	require.NoError(t, err)
	assert.Equal(t, 350.0, v)

	_, err = tbl.LookupValues(0.5, 10)
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestLookupIndices(t *testing.T) {
	tbl := newTestTable(t)

	v, err := tbl.LookupIndices(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 500.0, v)

	_, err = tbl.LookupIndices(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = tbl.LookupIndices(1)
	assert.ErrorIs(t, err, ErrArityMismatch)
}

func TestFlatIndex(t *testing.T) {
	tbl := newTestTable(t)

	flat, err := tbl.FlatIndex(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, flat)
}

func TestReset(t *testing.T) {
	tbl := newTestTable(t)
	tbl.Reset()
	assert.False(t, tbl.Valid())

	// The table is reusable after a reset.
	require.NoError(t, tbl.Populate(testAxes, testValues))
	assert.True(t, tbl.Valid())
}

// The Query* forms must agree with the canonical forms on both values
// and failure classification for identical inputs.
func TestQueryForms_MatchCanonical(t *testing.T) {
	tbl := newTestTable(t)

	queries := [][]float64{
		{1.5, 10}, {2, 15}, {3, 20}, {0.5, 10}, {2, 30}, {1.5},
	}
	for _, q := range queries {
		want, wantErr := tbl.LookupValues(q...)
		res := tbl.QueryValues(q...)

		assert.Equal(t, wantErr == nil, res.Valid(), "query %v", q)
		if wantErr != nil {
			assert.EqualError(t, res.Err(), wantErr.Error(), "query %v", q)
		} else {
			assert.Equal(t, want, res.Value(), "query %v", q)
		}
	}

	idxQueries := [][]int{{0, 0}, {2, 1}, {3, 0}, {0}}
	for _, q := range idxQueries {
		want, wantErr := tbl.LookupIndices(q...)
		res := tbl.QueryIndices(q...)
		assert.Equal(t, wantErr == nil, res.Valid(), "indices %v", q)
		if wantErr == nil {
			assert.Equal(t, want, res.Value(), "indices %v", q)
		}

		wantFlat, wantFlatErr := tbl.FlatIndex(q...)
		flatRes := tbl.QueryFlatIndex(q...)
		assert.Equal(t, wantFlatErr == nil, flatRes.Valid(), "indices %v", q)
		if wantFlatErr == nil {
			assert.Equal(t, wantFlat, flatRes.Value(), "indices %v", q)
		}
	}
}
