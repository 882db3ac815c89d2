// SPDX-License-Identifier: MIT

package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/demedist/matrix"
)

// Solver holds the O(n) scratch state of the shortest-augmenting-path method.
// A Solver is not safe for concurrent use; give each goroutine its own.
type Solver struct {
	n int

	cost []float64 // row-major costs of the current problem (not owned)

	u, v      []float64 // row and column dual potentials
	spc       []float64 // shortest path cost to each column in the current search
	path      []int     // predecessor row of each column on the shortest path tree
	col4row   []int     // matching: column of each row (-1 = free)
	row4col   []int     // matching: row of each column (-1 = free)
	remaining []int     // columns not yet scanned in the current search
	sr, sc    []bool    // rows / columns already in the search tree
}

// NewSolver returns an empty workspace; buffers grow on first use.
func NewSolver() *Solver { return &Solver{} }

// Solve copies m into a flat buffer and solves it with a fresh workspace.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquare, ErrEmpty, ErrNaN, ErrInfeasible.
//
// Complexity: O(n³).
func Solve(m matrix.Matrix) (Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Result{}, err
	}
	n := m.Rows()
	if m.Cols() != n {
		return Result{}, ErrNonSquare
	}
	if n == 0 {
		return Result{}, ErrEmpty
	}
	flat := make([]float64, n*n)
	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if flat[i*n+j], err = m.At(i, j); err != nil {
				return Result{}, err
			}
		}
	}

	return NewSolver().SolveFlat(n, flat)
}

// SolveFlat solves the n×n problem stored row-major in cost (len n*n).
// cost is read, never written. The returned RowToCol slice is freshly
// allocated and owned by the caller.
//
// Implementation:
//   - Stage 1: validate shape and values, reset the workspace.
//   - Stage 2: for each row, find the shortest augmenting path to a free
//     column (augment), update the duals, and flip the path.
//   - Stage 3: sum the matched costs.
//
// Complexity: O(n³) time; no allocations beyond the result once grown.
func (s *Solver) SolveFlat(n int, cost []float64) (Result, error) {
	if n <= 0 {
		return Result{}, ErrEmpty
	}
	if len(cost) != n*n {
		return Result{}, ErrNonSquare
	}
	for _, c := range cost {
		if math.IsNaN(c) || math.IsInf(c, -1) {
			return Result{}, ErrNaN
		}
	}
	s.reset(n, cost)

	var (
		cur, i, j, sink int
		minVal          float64
	)
	for cur = 0; cur < n; cur++ {
		sink, minVal = s.augment(cur)
		if sink < 0 {
			return Result{}, fmt.Errorf("row %d: %w", cur, ErrInfeasible)
		}

		// Update dual potentials.
		s.u[cur] += minVal
		for i = 0; i < n; i++ {
			if s.sr[i] && i != cur {
				s.u[i] += minVal - s.spc[s.col4row[i]]
			}
		}
		for j = 0; j < n; j++ {
			if s.sc[j] {
				s.v[j] -= minVal - s.spc[j]
			}
		}

		// Flip the alternating path ending at sink.
		j = sink
		for {
			i = s.path[j]
			s.row4col[j] = i
			s.col4row[i], j = j, s.col4row[i]
			if i == cur {
				break
			}
		}
	}

	res := Result{RowToCol: make([]int, n)}
	for i = 0; i < n; i++ {
		res.RowToCol[i] = s.col4row[i]
		res.Cost += cost[i*n+s.col4row[i]]
	}

	return res, nil
}

// reset sizes the workspace for n and clears the matching and duals.
func (s *Solver) reset(n int, cost []float64) {
	if cap(s.u) < n {
		s.u = make([]float64, n)
		s.v = make([]float64, n)
		s.spc = make([]float64, n)
		s.path = make([]int, n)
		s.col4row = make([]int, n)
		s.row4col = make([]int, n)
		s.remaining = make([]int, n)
		s.sr = make([]bool, n)
		s.sc = make([]bool, n)
	}
	s.n = n
	s.cost = cost
	s.u, s.v, s.spc = s.u[:n], s.v[:n], s.spc[:n]
	s.path, s.col4row, s.row4col = s.path[:n], s.col4row[:n], s.row4col[:n]
	s.remaining, s.sr, s.sc = s.remaining[:n], s.sr[:n], s.sc[:n]
	for k := 0; k < n; k++ {
		s.u[k], s.v[k] = 0, 0
		s.path[k], s.col4row[k], s.row4col[k] = -1, -1, -1
	}
}

// augment runs the shortest augmenting path search from row cur.
// Returns the free column reached (sink) and the path length, or sink=-1
// when every remaining column is unreachable (+Inf).
func (s *Solver) augment(cur int) (sink int, minVal float64) {
	n := s.n
	inf := math.Inf(1)

	// Columns are scanned in reverse index order; combined with the
	// "prefer free columns" rule below this fixes every tie-break.
	var it int
	for it = 0; it < n; it++ {
		s.remaining[it] = n - it - 1
		s.sr[it], s.sc[it] = false, false
		s.spc[it] = inf
	}
	numRemaining := n
	sink = -1
	i := cur

	var (
		j, index int
		lowest   float64
		r        float64
		base     int
	)
	for sink == -1 {
		index = -1
		lowest = inf
		s.sr[i] = true
		base = i * n

		for it = 0; it < numRemaining; it++ {
			j = s.remaining[it]
			r = minVal + s.cost[base+j] - s.u[i] - s.v[j]
			if r < s.spc[j] {
				s.path[j] = i
				s.spc[j] = r
			}
			if s.spc[j] < lowest || (s.spc[j] == lowest && s.row4col[j] == -1) {
				lowest = s.spc[j]
				index = it
			}
		}

		minVal = lowest
		if math.IsInf(minVal, 1) || index < 0 {
			return -1, minVal
		}

		j = s.remaining[index]
		if s.row4col[j] == -1 {
			sink = j
		} else {
			i = s.row4col[j]
		}
		s.sc[j] = true
		numRemaining--
		s.remaining[index] = s.remaining[numRemaining]
	}

	return sink, minVal
}
