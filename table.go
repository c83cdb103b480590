package lookuptable

import (
	"github.com/tphakala/go-lookup-table/internal/grid"
)

// Table is a rectilinear N-dimensional lookup table supporting exact
// lookups by integer indices and multilinear interpolation by
// real-valued coordinates.
//
// A Table owns its data: Populate stores private copies of the supplied
// slices, and nothing the Table returns aliases its internal storage.
// The zero value is an empty, invalid table, ready for Populate.
//
// A Table is not internally synchronized; see the package documentation
// for the populate-once, read-many concurrency contract.
type Table struct {
	grid grid.Grid
}

// New returns an empty, invalid table.
func New() *Table {
	return &Table{}
}

// NewFromAxes returns a table populated from independent axes and a
// separate dependent value array. If the data fails validation the
// returned table is empty and invalid, mirroring construction from bad
// data; use Populate directly to learn why.
func NewFromAxes(axes [][]float64, values []float64) *Table {
	t := New()
	_ = t.Populate(axes, values)
	return t
}

// NewFromDataSet is like NewFromAxes but takes one combined data set
// whose final array is the dependent data.
func NewFromDataSet(dataSet [][]float64) *Table {
	t := New()
	_ = t.PopulateDataSet(dataSet)
	return t
}

// Validate checks whether axes and values could populate a table,
// without modifying any state: at least two axes, every axis strictly
// increasing, and len(values) equal to the product of the axis lengths.
// Violations are reported as ErrShapeMismatch.
func Validate(axes [][]float64, values []float64) error {
	return grid.Validate(axes, values)
}

// ValidateDataSet is like Validate for a combined data set whose final
// array is the dependent data.
func ValidateDataSet(dataSet [][]float64) error {
	axes, values := splitDataSet(dataSet)
	return grid.Validate(axes, values)
}

// splitDataSet separates a combined data set into axes and dependent
// values. The resulting axes slice aliases the input; validation and
// population copy before storing.
func splitDataSet(dataSet [][]float64) (axes [][]float64, values []float64) {
	if len(dataSet) == 0 {
		return nil, nil
	}
	return dataSet[:len(dataSet)-1], dataSet[len(dataSet)-1]
}

// Populate validates the supplied axes and values and, on success,
// atomically replaces the table's contents with copies of them. On
// failure the table is cleared to the empty, invalid state; previous
// contents are never retained and partial population is not observable.
//
// This is the only mutation path besides Reset.
func (t *Table) Populate(axes [][]float64, values []float64) error {
	return t.grid.Populate(axes, values)
}

// PopulateDataSet is like Populate but takes one combined data set
// whose final array is the dependent data.
func (t *Table) PopulateDataSet(dataSet [][]float64) error {
	axes, values := splitDataSet(dataSet)
	return t.grid.Populate(axes, values)
}

// Reset clears the table to the empty, invalid state.
func (t *Table) Reset() {
	t.grid.Reset()
}

// Valid reports whether the table currently holds validated data.
func (t *Table) Valid() bool {
	return t.grid.Valid()
}

// Dims returns the number of axes, or 0 for an invalid table.
func (t *Table) Dims() int {
	return t.grid.Dims()
}

// ValueCount returns the length of the dependent value array.
func (t *Table) ValueCount() int {
	return t.grid.ValueCount()
}

// AxisLen returns the number of grid points along the given axis.
// Fails with ErrOutOfBounds when axis is at or beyond Dims.
func (t *Table) AxisLen(axis int) (int, error) {
	return t.grid.AxisLen(axis)
}

// AxisValue returns the grid coordinate at position i along an axis.
func (t *Table) AxisValue(axis, i int) (float64, error) {
	return t.grid.AxisValue(axis, i)
}

// FlatIndex maps one integer index per axis to the offset of the
// corresponding value in the flattened dependent array (row-major,
// axis 0 fastest).
func (t *Table) FlatIndex(indices ...int) (int, error) {
	return t.grid.FlatIndex(indices)
}

// LookupIndices returns the exact stored value addressed by one integer
// index per axis. No interpolation is performed.
func (t *Table) LookupIndices(indices ...int) (float64, error) {
	return t.grid.LookupIndices(indices)
}

// LookupValues returns the multilinear interpolation of the table at
// one real-valued coordinate per axis, the table's primary entry
// point. A coordinate equal to either end of its axis is in domain;
// anything beyond fails with ErrOutOfDomain.
func (t *Table) LookupValues(coords ...float64) (float64, error) {
	return t.grid.Interpolate(coords)
}

// QueryFlatIndex is FlatIndex in tagged-result form.
func (t *Table) QueryFlatIndex(indices ...int) Result[int] {
	return resultOf(t.grid.FlatIndex(indices))
}

// QueryIndices is LookupIndices in tagged-result form.
func (t *Table) QueryIndices(indices ...int) Result[float64] {
	return resultOf(t.grid.LookupIndices(indices))
}

// QueryValues is LookupValues in tagged-result form.
func (t *Table) QueryValues(coords ...float64) Result[float64] {
	return resultOf(t.grid.Interpolate(coords))
}

// resultOf folds a canonical (value, error) pair into a Result.
func resultOf[T any](value T, err error) Result[T] {
	if err != nil {
		return Errf[T](err)
	}
	return Ok(value)
}
