// SPDX-License-Identifier: MIT

package wasserstein

import (
	"errors"
	"math"
	"slices"
)

var (
	// ErrEmpty is returned when either sample is empty.
	ErrEmpty = errors.New("wasserstein: empty distribution")

	// ErrNaN is returned when a sample holds NaN or ±Inf.
	ErrNaN = errors.New("wasserstein: non-finite value in distribution")
)

// Distance returns the first Wasserstein distance between samples u and v.
//
// Algorithm Outline:
//  1. Sort copies of u and v; merge them into the sorted support `all`.
//  2. Sweep consecutive support points x_k < x_{k+1}, tracking
//     iu = #{u ≤ x_k} and iv = #{v ≤ x_k} with two pointers.
//  3. Accumulate |iu/n − iv/m| · (x_{k+1} − x_k).
//
// Errors:
//   - ErrEmpty if len(u)==0 or len(v)==0.
//   - ErrNaN if any value is NaN or ±Inf.
//
// Complexity: O((n+m)·log(n+m)) time, O(n+m) space.
func Distance(u, v []float64) (float64, error) {
	n, m := len(u), len(v)
	if n == 0 || m == 0 {
		return 0, ErrEmpty
	}
	us, err := sortedFinite(u)
	if err != nil {
		return 0, err
	}
	vs, err := sortedFinite(v)
	if err != nil {
		return 0, err
	}
	all := merge(us, vs)

	var (
		iu, iv int
		fn     = float64(n)
		fm     = float64(m)
		sum    float64
		k      int
	)
	for k = 0; k < len(all)-1; k++ {
		// Advance both CDF pointers past every value ≤ all[k].
		for iu < n && us[iu] <= all[k] {
			iu++
		}
		for iv < m && vs[iv] <= all[k] {
			iv++
		}
		sum += math.Abs(float64(iu)/fn-float64(iv)/fm) * (all[k+1] - all[k])
	}

	return sum, nil
}

// sortedFinite returns a sorted copy of a, rejecting non-finite values.
func sortedFinite(a []float64) ([]float64, error) {
	out := make([]float64, len(a))
	for i, x := range a {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNaN
		}
		out[i] = x
	}
	slices.Sort(out)

	return out, nil
}

// merge combines two sorted slices into one sorted slice.
func merge(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}
