// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/penalty"
	"github.com/katalvlaran/demedist/permute"
	"github.com/katalvlaran/demedist/wasserstein"
)

// cell is one lazily computed point-cloud pair cost.
type cell struct {
	once sync.Once
	v    float64
}

// Table memoises Distributional and PointCloud for one pair of datasets.
//
// The Count×Count Wasserstein table is filled eagerly by NewTable. Point-cloud
// pair costs are keyed by (a, b, i, j): deme a and b of the first dataset
// placed at positions i<j against demes i and j of the second. They are
// computed on first use, exactly once, by whichever goroutine asks first.
//
// A Table is safe for concurrent use. Lookups take permutations produced by
// permute.Space and do not re-validate them.
type Table struct {
	n1, n2   deme.Normalized
	complete bool
	w        [deme.Count][deme.Count]float64 // w[a][k] = W1(n1[a], n2[k])
	cells    []cell                          // Count⁴ slots, only a≠b, i<j used
	solved   atomic.Int64
}

// NewTable prepares the memo for n1 against n2.
//
// Implementation:
//   - Stage 1: if either dataset does not hold Count demes, return a table
//     that answers with the penalties.
//   - Stage 2: compute all Count² Wasserstein distances.
//
// Errors: wasserstein.ErrEmpty, wasserstein.ErrNaN.
//
// Complexity: O(Count²·S log S) time; O(Count⁴) space for the cell slots.
func NewTable(n1, n2 deme.Normalized) (*Table, error) {
	t := &Table{n1: n1, n2: n2, complete: complete(n1, n2)}
	if !t.complete {
		return t, nil
	}
	var (
		a, k int
		err  error
	)
	for a = 0; a < deme.Count; a++ {
		for k = 0; k < deme.Count; k++ {
			if t.w[a][k], err = wasserstein.Distance(n1.Arrays[a], n2.Arrays[k]); err != nil {
				return nil, fmt.Errorf("NewTable: deme %d->%d: %w", a, k, err)
			}
		}
	}
	t.cells = make([]cell, deme.Count*deme.Count*deme.Count*deme.Count)

	return t, nil
}

// Distributional returns the memoised Distributional(n1, n2, p).
// Complexity: O(Count).
func (t *Table) Distributional(p permute.Permutation) float64 {
	if !t.complete {
		return penalty.Distributional
	}
	var sum float64
	for k := 0; k < deme.Count; k++ {
		sum += t.w[p[k]][k]
	}

	return sum
}

// PointCloud returns the memoised PointCloud(n1, n2, p). Cells computed by
// this call use w, which must belong to the calling goroutine.
//
// Complexity: O(Pairs) on a warm table; a cold cell costs one PairCost.
func (t *Table) PointCloud(p permute.Permutation, w *Workspace) float64 {
	if !t.complete {
		return Pairs * penalty.PointCloudPair
	}
	var sum float64
	for i := 0; i < deme.Count; i++ {
		for j := i + 1; j < deme.Count; j++ {
			sum += t.pair(p[i], p[j], i, j, w)
		}
	}

	return sum
}

func (t *Table) pair(a, b, i, j int, w *Workspace) float64 {
	c := &t.cells[((a*deme.Count+b)*deme.Count+i)*deme.Count+j]
	c.once.Do(func() {
		c.v = pairOrPenalty(w, t.n1.Arrays[a], t.n1.Arrays[b], t.n2.Arrays[i], t.n2.Arrays[j])
		t.solved.Add(1)
	})

	return c.v
}

// Solved returns how many point-cloud cells have been computed so far.
func (t *Table) Solved() int { return int(t.solved.Load()) }
