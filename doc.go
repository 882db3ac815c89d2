// SPDX-License-Identifier: MIT

// Package demedist measures how far apart two spatially sampled tumours are,
// given the methylation arrays of their demes (glands).
//
// A tumour dataset holds 8 demes, 4 on each of two sides. Deme labels inside
// a side, and the names of the sides themselves, carry no meaning, so the
// distance is minimised over every relabeling that respects the sides
// (2·4!·4! = 1152 of them). Each relabeling is scored as
//
//	structural + distributional + point cloud
//
// where the structural term compares the pairwise deme distance matrices,
// the distributional term sums per-deme 1-D Wasserstein distances, and the
// point-cloud term solves a balanced assignment for every pair of demes.
//
// Malformed input never fails a comparison: wrong deme counts and unsolvable
// pairs become large finite penalties, and anything worse becomes +Inf. This
// keeps an approximate Bayesian computation loop running over millions of
// simulated samples.
//
// Packages:
//
//	engine/        permutation search, failure ladder, logging and metrics hooks
//	deme/          dataset formats, normalization, parsing and validation
//	structural/    deme distance matrices and their L2 distance
//	wasserstein/   1-D first Wasserstein distance
//	assignment/    shortest augmenting path assignment solver
//	transport/     distributional and point-cloud metrics with a per-call memo
//	permute/       permutations and the side-respecting relabeling space
//	matrix/        dense matrix primitives
//	penalty/       the penalty ladder
//	promobserver/  Prometheus adapter for engine metrics
//	testutil/      deterministic fixtures
//
// Quick start:
//
//	score := engine.TotalDistance(simulated, observed)
package demedist
