// SPDX-License-Identifier: MIT

package deme

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// arraySep separates values inside the simulator's AverageArray cell.
const arraySep = ";"

// ParseArray parses a ";"-separated AverageArray cell into floats.
// Surrounding whitespace and empty tokens (e.g. a trailing separator) are
// ignored.
//
// Complexity: O(len(s)).
func ParseArray(s string) ([]float64, error) {
	fields := strings.Split(s, arraySep)
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseArray: token %d %q: %w", i, f, ErrParse)
		}
		out = append(out, v)
	}

	return out, nil
}

// LastGeneration keeps the records written at the final simulator generation:
// those whose floor(Generation) equals floor(max Generation). Order is kept.
// The input slice is not modified.
//
// Complexity: O(n).
func LastGeneration(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	last := math.Inf(-1)
	for _, r := range records {
		if r.Generation > last {
			last = r.Generation
		}
	}
	last = math.Floor(last)

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if math.Floor(r.Generation) == last {
			out = append(out, r)
		}
	}

	return out
}

// FromColumns builds an observed-format dataset from named columns, ordering
// them as: names containing "A" (shorter names first), then names containing
// "B" (same rule), then the rest in input order. Ordering within equal-length
// names is stable. A name containing both letters is treated as side A.
//
// Complexity: O(n log n).
func FromColumns(names []string, cols [][]float64) (Columnar, error) {
	if len(names) != len(cols) {
		return Columnar{}, ErrDimensionMismatch
	}
	var colsA, colsB, rest []int
	for i, name := range names {
		switch {
		case strings.Contains(name, "A"):
			colsA = append(colsA, i)
		case strings.Contains(name, "B"):
			colsB = append(colsB, i)
		default:
			rest = append(rest, i)
		}
	}
	byLen := func(idx []int) {
		sort.SliceStable(idx, func(a, b int) bool { return len(names[idx[a]]) < len(names[idx[b]]) })
	}
	byLen(colsA)
	byLen(colsB)

	order := make([]int, 0, len(names))
	order = append(order, colsA...)
	order = append(order, colsB...)
	order = append(order, rest...)

	out := Columnar{Names: make([]string, len(order)), Columns: make([][]float64, len(order))}
	for k, i := range order {
		out.Names[k] = names[i]
		out.Columns[k] = cols[i]
	}

	return out, nil
}
