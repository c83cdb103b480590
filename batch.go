package lookuptable

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch evaluation constants.
const (
	// batchChunkSize is the number of query points handed to one
	// worker goroutine. Chunking amortizes goroutine overhead for the
	// common case of many cheap lookups.
	batchChunkSize = 256

	// batchMaxWorkers caps concurrent workers so a huge batch does not
	// spawn an unbounded number of goroutines.
	batchMaxWorkers = 16
)

// LookupValuesBatch evaluates LookupValues for every point and returns
// the results in input order. Points are processed concurrently in
// chunks, which is safe because lookups are pure reads.
//
// The call is all-or-nothing: if any point fails, the error (annotated
// with the point's position in the batch) is returned and no results
// are.
func (t *Table) LookupValuesBatch(points [][]float64) ([]float64, error) {
	out := make([]float64, len(points))
	if len(points) == 0 {
		return out, nil
	}

	var group errgroup.Group
	group.SetLimit(batchMaxWorkers)
	for start := 0; start < len(points); start += batchChunkSize {
		start := start
		end := min(start+batchChunkSize, len(points))
		group.Go(func() error {
			for i := start; i < end; i++ {
				v, err := t.LookupValues(points[i]...)
				if err != nil {
					return fmt.Errorf("point %d: %w", i, err)
				}
				out[i] = v
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
