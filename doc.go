// Package lookuptable provides multilinear interpolation over
// rectilinear N-dimensional grids in pure Go.
//
// A lookup table holds two or more monotonically increasing coordinate
// axes and a dense array of sampled values, one per combination of axis
// points. Queries between grid points are answered by blending the 2^D
// surrounding grid values with repeated pairwise linear interpolation.
// Extrapolation beyond the axis bounds is refused, never approximated.
//
// # Features
//
//   - Generalized N-dimensional engine (D >= 2) with irregular axis spacing
//   - Loop-unrolled bilinear and trilinear fast paths ([Table2D], [Table3D])
//     producing bit-identical results to the generic engine
//   - Exact lookups by integer indices alongside interpolated lookups
//     by real-valued coordinates
//   - Atomic population: a table is either fully valid or empty, never partial
//   - Parallel batch evaluation for large query sets
//   - Compressed snapshot persistence for populated tables
//
// # Quick Start
//
//	tbl := lookuptable.New()
//	err := tbl.Populate(
//	    [][]float64{{1, 2, 3}, {10, 20}},        // axes, each strictly increasing
//	    []float64{100, 200, 300, 400, 500, 600}, // values, axis 0 fastest
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, err := tbl.LookupValues(1.5, 10) // 150: midpoint of 100 and 200
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The dependent array is laid out row-major with axis 0 varying
// fastest: the value at indices (i, j, k) lives at offset
// i + j*n0 + k*n1*n0.
//
// # Error Handling
//
// Every fallible operation is available in two equivalent forms: the
// canonical (value, error) return, and a tagged [Result] returned by
// the Query* methods for callers that prefer to pass outcomes around
// as single values. Failures are classified by the sentinel errors
// [ErrInvalidTable], [ErrOutOfDomain], [ErrOutOfBounds],
// [ErrShapeMismatch] and [ErrArityMismatch], all matchable with
// errors.Is. All conditions are recoverable and caller-facing; nothing
// is clamped, retried, or auto-corrected.
//
// # Thread Safety
//
// A [Table] is not internally synchronized. Populate it once (or under
// external locking), after which any number of goroutines may query it
// concurrently. [Table.LookupValuesBatch] relies on exactly this
// read-only guarantee.
package lookuptable
