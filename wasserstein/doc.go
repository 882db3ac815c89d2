// SPDX-License-Identifier: MIT

// Package wasserstein computes the first Wasserstein (earth mover's) distance
// between two one-dimensional empirical distributions.
//
// 🚀 What is it?
//
//	Each input is an unsorted sample with equal point weights. The distance
//	is the minimum total work needed to morph one histogram into the other,
//	which in one dimension equals the area between the two empirical CDFs:
//
//	  W1(u, v) = ∫ |F_u(x) − F_v(x)| dx
//
// ✨ Length policy:
//
//	Samples may differ in length. The integral is evaluated exactly over the
//	merged sorted support (the quantile-matching construction), so no padding
//	or interpolation is needed. For equal lengths the result equals
//	mean(|sort(u)_i − sort(v)_i|).
//
// Performance:
//
//   - Time:   O((n+m)·log(n+m)) for the sorts, O(n+m) for the sweep.
//   - Memory: O(n+m); inputs are never modified.
package wasserstein
