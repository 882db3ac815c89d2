package assignment_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/demedist/assignment"
	"github.com/katalvlaran/demedist/matrix"
	"github.com/katalvlaran/demedist/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce enumerates every permutation of {0..n-1} and returns the minimum cost.
func bruteForce(n int, cost []float64) float64 {
	perm := make([]int, n)
	used := make([]bool, n)
	best := math.Inf(1)
	var rec func(row int, acc float64)
	rec = func(row int, acc float64) {
		if row == n {
			if acc < best {
				best = acc
			}
			return
		}
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			perm[row] = j
			rec(row+1, acc+cost[row*n+j])
			used[j] = false
		}
	}
	rec(0, 0)
	return best
}

// isPermutation reports whether p is a bijection on {0..n-1}.
func isPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// TestSolve_KnownInstance uses a classic 3×3 example with a unique optimum.
func TestSolve_KnownInstance(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	require.NoError(t, err)

	res, err := assignment.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.RowToCol)
	assert.Equal(t, 5.0, res.Cost)
}

// TestSolveFlat_MatchesBruteForce cross-checks optimality on random instances.
func TestSolveFlat_MatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(2024)
	s := assignment.NewSolver()
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 25; trial++ {
			cost := rng.Array(n * n)
			res, err := s.SolveFlat(n, cost)
			require.NoError(t, err)
			require.True(t, isPermutation(res.RowToCol), "n=%d trial=%d", n, trial)
			assert.InDelta(t, bruteForce(n, cost), res.Cost, 1e-12, "n=%d trial=%d", n, trial)
		}
	}
}

// TestSolveFlat_IntegerTies exercises heavy ties; the optimum must still be reached.
func TestSolveFlat_IntegerTies(t *testing.T) {
	n := 5
	cost := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cost[i*n+j] = float64((i + j) % 3)
		}
	}
	res, err := assignment.NewSolver().SolveFlat(n, cost)
	require.NoError(t, err)
	assert.Equal(t, bruteForce(n, cost), res.Cost)
}

// TestSolveFlat_Deterministic repeats a tie-heavy problem and expects the same matching.
func TestSolveFlat_Deterministic(t *testing.T) {
	n := 4
	cost := make([]float64, n*n) // all zeros: every matching is optimal
	first, err := assignment.NewSolver().SolveFlat(n, cost)
	require.NoError(t, err)
	for k := 0; k < 10; k++ {
		again, err := assignment.NewSolver().SolveFlat(n, cost)
		require.NoError(t, err)
		assert.Equal(t, first.RowToCol, again.RowToCol)
	}
}

// TestSolveFlat_ForbiddenPairs uses +Inf to force the matching.
func TestSolveFlat_ForbiddenPairs(t *testing.T) {
	inf := math.Inf(1)
	cost := []float64{
		inf, 1,
		1, inf,
	}
	res, err := assignment.NewSolver().SolveFlat(2, cost)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.RowToCol)
	assert.Equal(t, 2.0, res.Cost)

	_, err = assignment.NewSolver().SolveFlat(2, []float64{inf, inf, 1, 1})
	assert.ErrorIs(t, err, assignment.ErrInfeasible)
}

// TestSolve_Errors covers every sentinel.
func TestSolve_Errors(t *testing.T) {
	s := assignment.NewSolver()
	_, err := s.SolveFlat(0, nil)
	assert.ErrorIs(t, err, assignment.ErrEmpty)
	_, err = s.SolveFlat(2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, assignment.ErrNonSquare)
	_, err = s.SolveFlat(1, []float64{math.NaN()})
	assert.ErrorIs(t, err, assignment.ErrNaN)
	_, err = s.SolveFlat(1, []float64{math.Inf(-1)})
	assert.ErrorIs(t, err, assignment.ErrNaN)

	rect, _ := matrix.NewDense(2, 3)
	_, err = assignment.Solve(rect)
	assert.ErrorIs(t, err, assignment.ErrNonSquare)
	_, err = assignment.Solve(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSolver_ReuseAcrossSizes shrinks and grows the workspace between calls.
func TestSolver_ReuseAcrossSizes(t *testing.T) {
	rng := testutil.NewRNG(8)
	s := assignment.NewSolver()
	for _, n := range []int{6, 2, 5, 1, 6} {
		cost := rng.Array(n * n)
		res, err := s.SolveFlat(n, cost)
		require.NoError(t, err)
		assert.InDelta(t, bruteForce(n, cost), res.Cost, 1e-12)
	}
}
