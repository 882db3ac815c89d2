// SPDX-License-Identifier: MIT

// Package testutil builds deterministic deme datasets for tests, examples and
// benchmarks.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/demedist/deme"
)

// RNG wraps a seeded math/rand source. It is safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Array returns sites methylation fractions drawn uniformly from [0,1).
func (r *RNG) Array(sites int) []float64 {
	out := make([]float64, sites)
	for i := range out {
		out[i] = r.Float64()
	}
	return out
}

// Records returns deme.Count simulator records, deme.PerSide per side, with
// strictly increasing origin times inside each side and random arrays.
// Records are emitted interleaved (A, B, A, B, ...) so normalization has
// real reordering work to do.
func (r *RNG) Records(sites int) []deme.Record {
	out := make([]deme.Record, 0, deme.Count)
	for k := 0; k < deme.PerSide; k++ {
		out = append(out,
			deme.Record{Side: deme.SideA, OriginTime: float64(k), Array: r.Array(sites)},
			deme.Record{Side: deme.SideB, OriginTime: float64(k), Array: r.Array(sites)},
		)
	}
	return out
}

// Structured returns Records wrapped as a dataset.
func (r *RNG) Structured(sites int) deme.Structured {
	return deme.Structured{Records: r.Records(sites)}
}

// Columns returns the normalized arrays of n in order, as an observed-format
// dataset without names.
func Columns(n deme.Normalized) deme.Columnar {
	cols := make([][]float64, n.Len())
	copy(cols, n.Arrays)
	return deme.Columnar{Columns: cols}
}

// Relabel returns an observed-format dataset whose column k is deme p[k] of n.
// Applying the inverse relabeling during a search recovers n exactly.
func Relabel(n deme.Normalized, p []int) deme.Columnar {
	cols := make([][]float64, len(p))
	for k, i := range p {
		cols[k] = n.Arrays[i]
	}
	return deme.Columnar{Columns: cols}
}

// MustNormalize normalizes d and panics on error. For fixtures only.
func MustNormalize(d deme.Dataset) deme.Normalized {
	n, err := deme.Normalize(d)
	if err != nil {
		panic(err)
	}
	return n
}
