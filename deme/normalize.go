// SPDX-License-Identifier: MIT

package deme

import (
	"fmt"
	"sort"
)

// Normalize converts either dataset format into Normalized.
//
// Implementation:
//   - Structured: validate sides, then order rows by (Side, OriginTime) with a
//     stable sort over an index slice; the input slice is never reordered.
//   - Columnar: keep column order; sides are positional (first half A).
//
// Deme count is not checked here: metrics turn wrong counts into penalties.
//
// Complexity: O(n log n) for n demes; arrays are shared, not copied.
func Normalize(d Dataset) (Normalized, error) {
	if d == nil {
		return Normalized{}, ErrNilDataset
	}

	return d.normalize()
}

func (s Structured) normalize() (Normalized, error) {
	n := len(s.Records)
	order := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		if !s.Records[i].Side.Valid() {
			return Normalized{}, fmt.Errorf("record %d: %w", i, ErrUnknownSide)
		}
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := s.Records[order[a]], s.Records[order[b]]
		if ra.Side != rb.Side {
			return ra.Side < rb.Side
		}
		return ra.OriginTime < rb.OriginTime
	})

	out := Normalized{Arrays: make([][]float64, n), Sides: make([]Side, n)}
	for i = 0; i < n; i++ {
		out.Arrays[i] = s.Records[order[i]].Array
		out.Sides[i] = s.Records[order[i]].Side
	}

	return out, nil
}

func (c Columnar) normalize() (Normalized, error) {
	if c.Names != nil && len(c.Names) != len(c.Columns) {
		return Normalized{}, ErrDimensionMismatch
	}
	n := len(c.Columns)
	out := Normalized{Arrays: make([][]float64, n), Sides: make([]Side, n)}
	var i int
	for i = 0; i < n; i++ {
		out.Arrays[i] = c.Columns[i]
		if i < n/2 {
			out.Sides[i] = SideA
		} else {
			out.Sides[i] = SideB
		}
	}

	return out, nil
}

// Partition returns the indices of side-A and side-B demes in ascending order.
// It fails with ErrSideSplit unless the dataset holds exactly Count demes,
// PerSide on each side.
//
// Complexity: O(n).
func (n Normalized) Partition() (sideA, sideB []int, err error) {
	if n.Len() != Count || len(n.Sides) != n.Len() {
		return nil, nil, fmt.Errorf("Partition: %d demes: %w", n.Len(), ErrSideSplit)
	}
	sideA = make([]int, 0, PerSide)
	sideB = make([]int, 0, PerSide)
	for i, s := range n.Sides {
		switch s {
		case SideA:
			sideA = append(sideA, i)
		case SideB:
			sideB = append(sideB, i)
		default:
			return nil, nil, fmt.Errorf("Partition: deme %d: %w", i, ErrUnknownSide)
		}
	}
	if len(sideA) != PerSide || len(sideB) != PerSide {
		return nil, nil, fmt.Errorf("Partition: %d/%d split: %w", len(sideA), len(sideB), ErrSideSplit)
	}

	return sideA, sideB, nil
}

// Sites returns the shortest array length, or 0 for an empty dataset.
func (n Normalized) Sites() int {
	if n.Len() == 0 {
		return 0
	}
	m := len(n.Arrays[0])
	for _, a := range n.Arrays[1:] {
		if len(a) < m {
			m = len(a)
		}
	}

	return m
}
