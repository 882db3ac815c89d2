// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/demedist/assignment"
	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/penalty"
	"github.com/katalvlaran/demedist/permute"
	"github.com/katalvlaran/demedist/wasserstein"
)

// Pairs is the number of unordered deme pairs, Count·(Count-1)/2.
const Pairs = deme.Count * (deme.Count - 1) / 2

// Workspace bundles the reusable buffers of PairCost.
// It is not safe for concurrent use; give each goroutine its own.
type Workspace struct {
	solver *assignment.Solver
	cost   []float64
}

// NewWorkspace returns an empty workspace; buffers grow on first use.
func NewWorkspace() *Workspace {
	return &Workspace{solver: assignment.NewSolver()}
}

// complete reports whether both datasets hold exactly Count demes.
func complete(n1, n2 deme.Normalized) bool {
	return n1.Len() == deme.Count && n2.Len() == deme.Count
}

// resolve returns p, or the identity when p is nil, after checking that it
// relabels Count demes.
func resolve(p []int) (permute.Permutation, error) {
	if p == nil {
		return permute.Identity(deme.Count), nil
	}
	q := permute.Permutation(p)
	if len(q) != deme.Count {
		return nil, fmt.Errorf("%d indices: %w", len(q), ErrBadPermutation)
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadPermutation)
	}

	return q, nil
}

// Distributional returns sum_k W1(n1[p[k]], n2[k]). A nil p means the identity.
//
// Implementation:
//   - Stage 1: if either dataset does not hold Count demes, return
//     penalty.Distributional without computing anything.
//   - Stage 2: sum the Wasserstein distances in position order.
//
// Errors: ErrBadPermutation, wasserstein.ErrEmpty, wasserstein.ErrNaN.
//
// Complexity: O(Count·S log S) for S sites.
func Distributional(n1, n2 deme.Normalized, p []int) (float64, error) {
	if !complete(n1, n2) {
		return penalty.Distributional, nil
	}
	q, err := resolve(p)
	if err != nil {
		return 0, fmt.Errorf("Distributional: %w", err)
	}
	var sum, d float64
	for k := 0; k < deme.Count; k++ {
		if d, err = wasserstein.Distance(n1.Arrays[q[k]], n2.Arrays[k]); err != nil {
			return 0, fmt.Errorf("Distributional: deme %d->%d: %w", q[k], k, err)
		}
		sum += d
	}

	return sum, nil
}

// PointCloud returns the point-cloud transport distance under p.
// A nil p means the identity.
//
// Every one of the Pairs position pairs contributes either its PairCost or,
// when that fails, penalty.PointCloudPair. If either dataset does not hold
// Count demes all pairs are failed pairs.
//
// Errors: ErrBadPermutation only; metric failures become penalties.
//
// Complexity: O(Pairs·S³) for S sites.
func PointCloud(n1, n2 deme.Normalized, p []int) (float64, error) {
	if !complete(n1, n2) {
		return Pairs * penalty.PointCloudPair, nil
	}
	q, err := resolve(p)
	if err != nil {
		return 0, fmt.Errorf("PointCloud: %w", err)
	}
	w := NewWorkspace()
	var sum float64
	for i := 0; i < deme.Count; i++ {
		for j := i + 1; j < deme.Count; j++ {
			sum += pairOrPenalty(w, n1.Arrays[q[i]], n1.Arrays[q[j]], n2.Arrays[i], n2.Arrays[j])
		}
	}

	return sum, nil
}

func pairOrPenalty(w *Workspace, x1a, x1b, x2a, x2b []float64) float64 {
	c, err := PairCost(w, x1a, x1b, x2a, x2b)
	if err != nil {
		return penalty.PointCloudPair
	}

	return c
}

// PairCost matches the cloud {(x1a[s], x1b[s])} against {(x2a[t], x2b[t])}
// and returns the optimal total Euclidean cost divided by the number of points.
// All four arrays are truncated to the shortest one. A nil w allocates a
// throwaway workspace.
//
// Implementation:
//   - Stage 1: L = min length; L == 0 is ErrEmptyCloud.
//   - Stage 2: fill the L×L cost matrix row-major into the workspace buffer.
//   - Stage 3: solve the balanced assignment and normalise by L.
//
// Errors: ErrEmptyCloud, assignment.ErrNaN, assignment.ErrInfeasible.
//
// Complexity: O(L³) time, O(L²) space.
func PairCost(w *Workspace, x1a, x1b, x2a, x2b []float64) (float64, error) {
	if w == nil {
		w = NewWorkspace()
	}
	l := min(len(x1a), len(x1b), len(x2a), len(x2b))
	if l == 0 {
		return 0, ErrEmptyCloud
	}
	if cap(w.cost) < l*l {
		w.cost = make([]float64, l*l)
	}
	cost := w.cost[:l*l]

	var (
		s, t   int
		dx, dy float64
	)
	for s = 0; s < l; s++ {
		for t = 0; t < l; t++ {
			dx = x1a[s] - x2a[t]
			dy = x1b[s] - x2b[t]
			cost[s*l+t] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	res, err := w.solver.SolveFlat(l, cost)
	if err != nil {
		return 0, fmt.Errorf("PairCost(%d): %w", l, err)
	}

	return res.Cost / float64(l), nil
}
