// SPDX-License-Identifier: MIT

// Package engine computes the deme-matching distance between two tumour
// datasets.
//
// The distance is the minimum, over every side-respecting relabeling of the
// first dataset, of three components:
//
//	structural      L2 distance between the pairwise deme matrices
//	distributional  per-deme 1-D Wasserstein distances, summed
//	point cloud     pairwise-deme assignment transport, summed over 28 pairs
//
// A relabeling either keeps or swaps the two sides and reorders the demes
// inside each side, so an 8-deme dataset has 2·4!·4! = 1152 candidates. The
// search scores all of them (no pruning) on a bounded worker group and keeps
// the lowest score; ties go to the earliest candidate, the identity first.
// Results are bit-identical for any worker count.
//
// Failure ladder used by TotalDistance and Compare:
//  1. the search fails → score the identity relabeling instead;
//  2. that fails as well → +Inf.
//
// A first dataset without 8 demes split 4/4 is not an error: the search
// returns the identity with a +Inf score. Shape problems in the second
// dataset become the finite penalties of package penalty.
//
// Panics raised while scoring are recovered and handled as errors, so
// TotalDistance never panics.
package engine
