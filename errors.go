package lookuptable

import (
	"errors"

	"github.com/tphakala/go-lookup-table/internal/grid"
)

// Common errors returned by lookup tables. All of them are recoverable,
// caller-facing conditions; none indicate a fault in the table itself.
// Wrapped errors carry the offending value and axis, so match with
// errors.Is rather than equality.
var (
	// ErrInvalidTable indicates a query against a table that has never
	// been populated, or whose last population failed validation.
	ErrInvalidTable = grid.ErrInvalidGrid

	// ErrOutOfDomain indicates a real-valued coordinate outside the
	// corresponding axis's range. Extrapolation is not supported.
	ErrOutOfDomain = grid.ErrOutOfDomain

	// ErrOutOfBounds indicates an integer index at or beyond the
	// corresponding axis's length.
	ErrOutOfBounds = grid.ErrOutOfBounds

	// ErrShapeMismatch indicates supplied data that cannot form a
	// table: fewer than two axes, a non-strictly-increasing axis, or a
	// value count different from the product of the axis lengths.
	ErrShapeMismatch = grid.ErrShapeMismatch

	// ErrArityMismatch indicates a coordinate or index tuple whose
	// length differs from the table's dimension count.
	ErrArityMismatch = grid.ErrArityMismatch

	// ErrBadSnapshot indicates snapshot data that is corrupt,
	// truncated, or was not written by WriteSnapshot.
	ErrBadSnapshot = errors.New("malformed table snapshot")
)
