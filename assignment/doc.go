// SPDX-License-Identifier: MIT

// Package assignment solves the balanced linear assignment problem: given an
// n×n cost matrix, find the perfect matching of rows to columns with minimum
// total cost.
//
// 🚀 Algorithm
//
//	Shortest augmenting paths in the Jonker–Volgenant style (the variant
//	described by Crouse, 2016). Rows are inserted one at a time; each
//	insertion runs a Dijkstra-like search over reduced costs
//	c[i][j] − u[i] − v[j], then updates the dual potentials u, v and flips
//	the alternating path. Reduced costs stay non-negative, so every search is
//	exact and the final matching is optimal.
//
// ✨ Key features:
//   - Solve(matrix.Matrix) for one-off calls.
//   - Solver: a reusable workspace; SolveFlat(n, cost) reads a row-major
//     buffer and allocates nothing once the workspace has grown to n.
//   - Deterministic: ties are broken by a fixed column scan order, so equal
//     inputs always yield the same matching.
//   - +Inf marks a forbidden pair; NaN and −Inf are rejected.
//
// Performance:
//
//   - Time:   O(n³) worst case.
//   - Memory: O(n) workspace plus the caller's n² cost buffer.
package assignment
