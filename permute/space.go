// SPDX-License-Identifier: MIT

package permute

import "fmt"

// Count is the size of the relabeling space for 8 demes, 4 per side.
const Count = 2 * 24 * 24

// Space is the set of side-respecting relabelings of one dataset.
// A Space is immutable after construction and safe for concurrent use.
type Space struct {
	n      int
	half   int
	sideA  []int   // indices of side-A demes, ascending
	sideB  []int   // indices of side-B demes, ascending
	orders [][]int // every ordering of {0..half-1}, lexicographic
}

// NewSpace builds the relabeling space from the two side index lists.
//
// Implementation:
//   - Stage 1: require equal, non-empty halves that together cover {0..n-1}
//     exactly once.
//   - Stage 2: precompute the half! orderings of one half in lexicographic order.
//
// Errors: ErrBadPartition.
//
// Complexity: O(half!·half) time and space (24 orderings for half=4).
func NewSpace(sideA, sideB []int) (*Space, error) {
	half := len(sideA)
	if half == 0 || len(sideB) != half {
		return nil, fmt.Errorf("NewSpace(%d,%d): %w", len(sideA), len(sideB), ErrBadPartition)
	}
	n := 2 * half
	seen := make([]bool, n)
	for _, group := range [][]int{sideA, sideB} {
		for _, v := range group {
			if v < 0 || v >= n || seen[v] {
				return nil, fmt.Errorf("NewSpace: index %d: %w", v, ErrBadPartition)
			}
			seen[v] = true
		}
	}

	s := &Space{
		n:      n,
		half:   half,
		sideA:  append([]int(nil), sideA...),
		sideB:  append([]int(nil), sideB...),
		orders: orderings(half),
	}

	return s, nil
}

// Len returns the number of candidates: 2 · (half!)².
func (s *Space) Len() int {
	f := len(s.orders)

	return 2 * f * f
}

// N returns the number of elements each candidate permutes.
func (s *Space) N() int { return s.n }

// Decode splits a candidate index into its mixed-radix digits:
// the side swap flag and the orderings used for the first and second half.
func (s *Space) Decode(idx int) (swap bool, first, second int, err error) {
	if idx < 0 || idx >= s.Len() {
		return false, 0, 0, fmt.Errorf("Decode(%d): %w", idx, ErrOutOfRange)
	}
	f := len(s.orders)
	swap = idx >= f*f
	rem := idx % (f * f)

	return swap, rem / f, rem % f, nil
}

// At writes candidate idx into dst (resized to N()) and returns it.
// Passing a reused dst avoids allocation in hot loops; pass nil to allocate.
//
// Positions [0,half) take the first group (side A, or side B when swapped)
// in the chosen ordering; positions [half,n) take the other group.
//
// Complexity: O(n).
func (s *Space) At(idx int, dst Permutation) (Permutation, error) {
	swap, i1, i2, err := s.Decode(idx)
	if err != nil {
		return nil, err
	}
	if cap(dst) < s.n {
		dst = make(Permutation, s.n)
	}
	dst = dst[:s.n]

	g1, g2 := s.sideA, s.sideB
	if swap {
		g1, g2 = s.sideB, s.sideA
	}
	o1, o2 := s.orders[i1], s.orders[i2]
	for k := 0; k < s.half; k++ {
		dst[k] = g1[o1[k]]
		dst[s.half+k] = g2[o2[k]]
	}

	return dst, nil
}

// Each calls fn for every candidate in index order until fn returns false.
// The Permutation passed to fn is reused between calls; Clone it to keep it.
func (s *Space) Each(fn func(idx int, p Permutation) bool) {
	buf := make(Permutation, s.n)
	total := s.Len()
	for idx := 0; idx < total; idx++ {
		p, _ := s.At(idx, buf) // idx is in range by construction
		if !fn(idx, p) {
			return
		}
	}
}

// IndexOf returns the candidate index of p, or ErrOutOfRange when p is not a
// member of the space.
// Complexity: O(Len()·n).
func (s *Space) IndexOf(p Permutation) (int, error) {
	found := -1
	s.Each(func(idx int, q Permutation) bool {
		if q.Equal(p) {
			found = idx
			return false
		}
		return true
	})
	if found < 0 {
		return 0, fmt.Errorf("IndexOf: %w", ErrOutOfRange)
	}

	return found, nil
}

// orderings returns every permutation of {0..k-1} in lexicographic order.
func orderings(k int) [][]int {
	cur := make([]int, k)
	for i := range cur {
		cur[i] = i
	}
	var out [][]int
	for {
		out = append(out, append([]int(nil), cur...))
		if !nextPermutation(cur) {
			return out
		}
	}
}

// nextPermutation advances a to its lexicographic successor in place.
// Returns false when a is already the last permutation.
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}
