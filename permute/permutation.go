// SPDX-License-Identifier: MIT

package permute

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPermutation is returned for a slice that is not a bijection on {0..n-1}.
	ErrNotPermutation = errors.New("permute: not a permutation")

	// ErrBadPartition is returned when side index lists do not split {0..n-1}
	// into two equal halves.
	ErrBadPartition = errors.New("permute: sides do not partition the index set evenly")

	// ErrOutOfRange is returned for a candidate index outside [0, Len()).
	ErrOutOfRange = errors.New("permute: candidate index out of range")
)

// Permutation reorders a sequence: reordered[k] = original[p[k]].
type Permutation []int

// Identity returns the identity permutation on n elements.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate checks that p is a bijection on {0..len(p)-1}.
// Complexity: O(n) time, O(n) space.
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for k, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return fmt.Errorf("position %d -> %d: %w", k, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// IsIdentity reports whether p[k] == k for every k.
func (p Permutation) IsIdentity() bool {
	for k, v := range p {
		if v != k {
			return false
		}
	}

	return true
}

// Equal reports whether p and q are the same permutation.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for k := range p {
		if p[k] != q[k] {
			return false
		}
	}

	return true
}

// Inverse returns q with q[p[k]] = k, so applying p then q restores the order.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for k, v := range p {
		q[v] = k
	}

	return q
}

// Compose returns r with r[k] = p[q[k]]: applying r equals applying p, then q.
func (p Permutation) Compose(q Permutation) (Permutation, error) {
	if len(p) != len(q) {
		return nil, fmt.Errorf("Compose(%d,%d): %w", len(p), len(q), ErrNotPermutation)
	}
	r := make(Permutation, len(p))
	for k, v := range q {
		r[k] = p[v]
	}

	return r, nil
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	return append(Permutation(nil), p...)
}

// Apply returns a new slice out[k] = xs[p[k]]; xs is not modified.
func Apply[T any](p Permutation, xs []T) ([]T, error) {
	if len(p) != len(xs) {
		return nil, fmt.Errorf("Apply(%d,%d): %w", len(p), len(xs), ErrNotPermutation)
	}
	out := make([]T, len(xs))
	for k, v := range p {
		if v < 0 || v >= len(xs) {
			return nil, fmt.Errorf("Apply: position %d -> %d: %w", k, v, ErrNotPermutation)
		}
		out[k] = xs[v]
	}

	return out, nil
}
