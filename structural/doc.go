// SPDX-License-Identifier: MIT

// Package structural compares the pairwise-distance structure of two tumours.
//
// Each tumour is summarized by its deme matrix: entry (i,j) is the mean
// squared difference between the methylation arrays of demes i and j. Two
// tumours are then compared by the L2 distance between their deme matrices,
// halved under the root because each off-diagonal discrepancy of a symmetric
// matrix appears twice.
//
// A dataset without exactly deme.Count demes yields a constant matrix filled
// with penalty.Structural instead of an error.
//
// Complexity: DemeMatrix O(Count²·sites); MatrixL2 O(Count²); Permuted O(Count²).
package structural
