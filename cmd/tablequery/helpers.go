package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	lookuptable "github.com/tphakala/go-lookup-table"
)

// parseCoords parses a comma-separated list of floats.
func parseCoords(s string) ([]float64, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no coordinates in %q", s)
	}
	coords := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		coords[i] = v
	}
	return coords, nil
}

// parseIndices parses a comma-separated list of non-negative integers.
func parseIndices(s string) ([]int, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no indices in %q", s)
	}
	indices := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		indices[i] = v
	}
	return indices, nil
}

// splitList splits a comma-separated list, trimming whitespace and
// dropping empty fields.
func splitList(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// loadTableFile reads and populates a table from the text format
// described in the package comment.
func loadTableFile(path string) (*lookuptable.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseTableData(string(data))
}

// parseTableData builds a table from "axis:" and "values:" lines.
func parseTableData(data string) (*lookuptable.Table, error) {
	var axes [][]float64
	var values []float64

	for n, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("line %d: expected \"axis:\" or \"values:\"", n+1)
		}
		nums, err := parseCoords(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		switch strings.TrimSpace(key) {
		case "axis":
			if values != nil {
				return nil, fmt.Errorf("line %d: axis after values", n+1)
			}
			axes = append(axes, nums)
		case "values":
			if values != nil {
				return nil, fmt.Errorf("line %d: duplicate values line", n+1)
			}
			values = nums
		default:
			return nil, fmt.Errorf("line %d: unknown key %q", n+1, key)
		}
	}

	tbl := lookuptable.New()
	if err := tbl.Populate(axes, values); err != nil {
		return nil, err
	}
	return tbl, nil
}
