// Command tablequery loads a lookup table and interpolates it at the
// requested coordinates.
//
// Table files are plain text: one "axis:" line per independent axis
// (strictly increasing, comma-separated), then one "values:" line with
// the dependent data laid out with the first axis varying fastest.
//
//	axis: 1, 2, 3
//	axis: 10, 20
//	values: 100, 200, 300, 400, 500, 600
//
// Lines starting with # are comments.
package main

import (
	"flag"
	"fmt"
	"log"

	lookuptable "github.com/tphakala/go-lookup-table"
)

func main() {
	var (
		tablePath = flag.String("table", "", "Path to a table file (see package comment for the format)")
		query     = flag.String("query", "", "Comma-separated query coordinates, one per axis")
		indices   = flag.String("indices", "", "Comma-separated integer indices for an exact lookup")
		demo      = flag.Bool("demo", false, "Run a demonstration on a built-in table")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}
	if *tablePath == "" {
		log.Fatal("either -table or -demo is required")
	}

	tbl, err := loadTableFile(*tablePath)
	if err != nil {
		log.Fatalf("Failed to load table: %v", err)
	}

	fmt.Printf("Table loaded: %d axes, %d values\n", tbl.Dims(), tbl.ValueCount())
	for i := 0; i < tbl.Dims(); i++ {
		n, err := tbl.AxisLen(i)
		if err != nil {
			log.Fatalf("Failed to read axis %d: %v", i, err)
		}
		lo, _ := tbl.AxisValue(i, 0)
		hi, _ := tbl.AxisValue(i, n-1)
		fmt.Printf("  axis %d: %d points in [%g, %g]\n", i, n, lo, hi)
	}

	switch {
	case *query != "":
		coords, err := parseCoords(*query)
		if err != nil {
			log.Fatalf("Bad -query: %v", err)
		}
		v, err := tbl.LookupValues(coords...)
		if err != nil {
			log.Fatalf("Lookup failed: %v", err)
		}
		fmt.Printf("table%v = %g\n", coords, v)

	case *indices != "":
		idx, err := parseIndices(*indices)
		if err != nil {
			log.Fatalf("Bad -indices: %v", err)
		}
		v, err := tbl.LookupIndices(idx...)
		if err != nil {
			log.Fatalf("Lookup failed: %v", err)
		}
		fmt.Printf("table%v = %g\n", idx, v)

	default:
		log.Fatal("nothing to do: pass -query or -indices")
	}
}

// runDemo exercises the API on a small altitude/throttle thrust table.
func runDemo() {
	altitudes := []float64{0, 5000, 10000} // feet
	throttles := []float64{0.2, 0.6, 1.0}
	// Thrust in pounds, altitude varying fastest.
	thrust := []float64{
		4200, 3800, 3300,
		12500, 11400, 9900,
		21000, 19200, 16700,
	}

	tbl, err := lookuptable.New2D(altitudes, throttles, thrust)
	if err != nil {
		log.Fatalf("Failed to build demo table: %v", err)
	}

	fmt.Println("Thrust table demo (altitude ft x throttle):")
	for _, q := range [][2]float64{
		{0, 0.2},
		{5000, 0.6},
		{2500, 0.6},
		{7500, 0.8},
	} {
		v, err := tbl.At(q[0], q[1])
		if err != nil {
			log.Fatalf("Lookup failed: %v", err)
		}
		fmt.Printf("  thrust(alt=%6g, throttle=%.1f) = %8.1f lb\n", q[0], q[1], v)
	}

	// Out-of-domain queries are refused rather than extrapolated.
	if _, err := tbl.At(20000, 0.5); err != nil {
		fmt.Printf("  thrust(alt= 20000, throttle=0.5): %v\n", err)
	}
}
