// SPDX-License-Identifier: MIT

// Package permute enumerates the deme relabelings allowed by two-sided
// symmetry.
//
// What & Why:
//
//	Demes are unordered within a side, and the two sides are interchangeable
//	as a whole. A relabeling therefore chooses which side of the first
//	tumour fills the first half of positions (2 ways), then an ordering of
//	each half (k! ways each, k = demes per side). For 4 demes per side the
//	space holds 2 × 4! × 4! = 1152 candidates.
//
// Convention:
//
//	A Permutation p reorders a dataset by reordered[k] = original[p[k]].
//
// Enumeration:
//
//	Space maps an index in [0, Len()) to a candidate by mixed-radix
//	decoding (swap flag, first-half ordering, second-half ordering), so
//	candidates are generated lazily and any contiguous index range can be
//	handed to a worker. Index 0 is the identity whenever the side-A indices
//	precede the side-B indices, which makes "first minimum wins" favour the
//	unrelabeled dataset on ties.
//
// Complexity: NewSpace O(k!·k); At O(n); Each O(Len()·n).
package permute
