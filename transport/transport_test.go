package transport_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/demedist/assignment"
	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/penalty"
	"github.com/katalvlaran/demedist/permute"
	"github.com/katalvlaran/demedist/testutil"
	"github.com/katalvlaran/demedist/transport"
	"github.com/katalvlaran/demedist/wasserstein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sites = 12

func fixture(seed int64) deme.Normalized {
	return testutil.MustNormalize(testutil.NewRNG(seed).Structured(sites))
}

func reversed() []int { return []int{7, 6, 5, 4, 3, 2, 1, 0} }

// TestDistributional_SelfIsZero covers the identity and a relabeled copy.
func TestDistributional_SelfIsZero(t *testing.T) {
	n := fixture(1)
	d, err := transport.Distributional(n, n, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	moved := testutil.MustNormalize(testutil.Relabel(n, reversed()))
	d, err = transport.Distributional(n, moved, reversed())
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = transport.Distributional(n, moved, nil)
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)
}

// TestDistributional_SumsPerDeme compares against per-deme Wasserstein calls.
func TestDistributional_SumsPerDeme(t *testing.T) {
	n1, n2 := fixture(2), fixture(3)
	var want float64
	for k := 0; k < deme.Count; k++ {
		w, err := wasserstein.Distance(n1.Arrays[k], n2.Arrays[k])
		require.NoError(t, err)
		want += w
	}
	got, err := transport.Distributional(n1, n2, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestDistributional_WrongCount returns the sentinel without computing.
func TestDistributional_WrongCount(t *testing.T) {
	n := fixture(4)
	short := deme.Normalized{Arrays: n.Arrays[:7], Sides: n.Sides[:7]}
	for _, pair := range [][2]deme.Normalized{{short, n}, {n, short}} {
		d, err := transport.Distributional(pair[0], pair[1], nil)
		require.NoError(t, err)
		assert.Equal(t, penalty.Distributional, d)
	}
}

// TestDistributional_Errors propagates Wasserstein and permutation failures.
func TestDistributional_Errors(t *testing.T) {
	n := fixture(5)
	_, err := transport.Distributional(n, n, []int{0, 1, 2})
	assert.ErrorIs(t, err, transport.ErrBadPermutation)
	_, err = transport.Distributional(n, n, []int{0, 0, 2, 3, 4, 5, 6, 7})
	assert.ErrorIs(t, err, transport.ErrBadPermutation)

	broken := deme.Normalized{Arrays: append([][]float64{{}}, n.Arrays[1:]...), Sides: n.Sides}
	_, err = transport.Distributional(broken, n, nil)
	assert.ErrorIs(t, err, wasserstein.ErrEmpty)
}

// TestPairCost_Known checks a translated cloud and a swapped cloud.
func TestPairCost_Known(t *testing.T) {
	c, err := transport.PairCost(nil, []float64{0, 1}, []float64{0, 1}, []float64{1, 0}, []float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)

	// Shift by (0.3, 0.4): every point moves 0.5.
	c, err = transport.PairCost(nil,
		[]float64{0, 1, 0.2}, []float64{0, 1, 0.9},
		[]float64{0.3, 1.3, 0.5}, []float64{0.4, 1.4, 1.3})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c, 1e-12)
}

// TestPairCost_Truncates ignores points beyond the shortest array.
func TestPairCost_Truncates(t *testing.T) {
	w := transport.NewWorkspace()
	a, b := []float64{0.1, 0.7}, []float64{0.2, 0.4}
	short, err := transport.PairCost(w, a, b, []float64{0.5, 0.9}, []float64{0.3, 0.8})
	require.NoError(t, err)
	long, err := transport.PairCost(w, a, b, []float64{0.5, 0.9, 0, 0, 0}, []float64{0.3, 0.8, 1})
	require.NoError(t, err)
	assert.Equal(t, short, long)
}

// TestPairCost_Errors covers empty clouds and NaN coordinates.
func TestPairCost_Errors(t *testing.T) {
	_, err := transport.PairCost(nil, nil, []float64{1}, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, transport.ErrEmptyCloud)
	_, err = transport.PairCost(nil, []float64{math.NaN()}, []float64{1}, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, assignment.ErrNaN)
}

// TestPointCloud_SelfIsZero covers the identity and a relabeled copy.
func TestPointCloud_SelfIsZero(t *testing.T) {
	n := fixture(6)
	d, err := transport.PointCloud(n, n, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	moved := testutil.MustNormalize(testutil.Relabel(n, reversed()))
	d, err = transport.PointCloud(n, moved, reversed())
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestPointCloud_PairPenalty charges only the pairs touching a broken deme.
func TestPointCloud_PairPenalty(t *testing.T) {
	n := fixture(7)
	arrays := append([][]float64(nil), n.Arrays...)
	arrays[0] = nil
	broken := deme.Normalized{Arrays: arrays, Sides: n.Sides}

	d, err := transport.PointCloud(broken, broken, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(deme.Count-1)*penalty.PointCloudPair, d)
}

// TestPointCloud_WrongCount charges every pair.
func TestPointCloud_WrongCount(t *testing.T) {
	n := fixture(8)
	long := deme.Normalized{
		Arrays: append(append([][]float64(nil), n.Arrays...), n.Arrays[0]),
		Sides:  append(append([]deme.Side(nil), n.Sides...), deme.SideA),
	}
	d, err := transport.PointCloud(n, long, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(transport.Pairs)*penalty.PointCloudPair, d)
	assert.Equal(t, 28, transport.Pairs)
}

// TestTable_MatchesDirect compares memoised and direct values bit for bit.
func TestTable_MatchesDirect(t *testing.T) {
	n1, n2 := fixture(9), fixture(10)
	tab, err := transport.NewTable(n1, n2)
	require.NoError(t, err)
	space, err := permute.NewSpace([]int{0, 1, 2, 3}, []int{4, 5, 6, 7})
	require.NoError(t, err)

	w := transport.NewWorkspace()
	for idx := 0; idx < space.Len(); idx += 37 {
		p, err := space.At(idx, nil)
		require.NoError(t, err)

		wantD, err := transport.Distributional(n1, n2, p)
		require.NoError(t, err)
		assert.Equal(t, wantD, tab.Distributional(p), "idx=%d", idx)

		wantP, err := transport.PointCloud(n1, n2, p)
		require.NoError(t, err)
		assert.Equal(t, wantP, tab.PointCloud(p, w), "idx=%d", idx)
	}
}

// TestTable_ConcurrentSweep computes each reachable cell exactly once.
func TestTable_ConcurrentSweep(t *testing.T) {
	n1, n2 := fixture(11), fixture(12)
	tab, err := transport.NewTable(n1, n2)
	require.NoError(t, err)
	space, err := permute.NewSpace([]int{0, 1, 2, 3}, []int{4, 5, 6, 7})
	require.NoError(t, err)

	sweep := func() {
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				w := transport.NewWorkspace()
				buf := make(permute.Permutation, deme.Count)
				for idx := g; idx < space.Len(); idx += 8 {
					p, _ := space.At(idx, buf)
					_ = tab.PointCloud(p, w)
				}
			}(g)
		}
		wg.Wait()
	}

	sweep()
	// 12 same-half pairs × 24 orderings + 16 cross pairs × 32 orderings.
	assert.Equal(t, 800, tab.Solved())
	sweep()
	assert.Equal(t, 800, tab.Solved())
}

// TestTable_Penalties answers with sentinels for incomplete datasets.
func TestTable_Penalties(t *testing.T) {
	n := fixture(13)
	short := deme.Normalized{Arrays: n.Arrays[:7], Sides: n.Sides[:7]}
	tab, err := transport.NewTable(n, short)
	require.NoError(t, err)
	p := permute.Identity(deme.Count)
	assert.Equal(t, penalty.Distributional, tab.Distributional(p))
	assert.Equal(t, float64(transport.Pairs)*penalty.PointCloudPair, tab.PointCloud(p, nil))
	assert.Equal(t, 0, tab.Solved())
}

// TestNewTable_Error surfaces Wasserstein failures up front.
func TestNewTable_Error(t *testing.T) {
	n := fixture(14)
	arrays := append([][]float64(nil), n.Arrays...)
	arrays[3] = []float64{0.5, math.NaN()}
	_, err := transport.NewTable(deme.Normalized{Arrays: arrays, Sides: n.Sides}, n)
	assert.ErrorIs(t, err, wasserstein.ErrNaN)
}
