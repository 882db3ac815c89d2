// SPDX-License-Identifier: MIT

// Package transport implements the two optimal-transport components of the
// deme-matching distance.
//
// Distributional compares the methylation distribution of each deme of one
// dataset with the deme it is mapped to in the other, using the 1-D first
// Wasserstein distance, and sums over the Count demes.
//
// PointCloud looks at pairs of demes jointly. For every unordered pair of
// positions (i<j) the sites of the two demes form a cloud of 2-D points; the
// clouds of the two datasets are matched one-to-one by a balanced assignment
// on Euclidean costs, and the mean matched cost is the pair's contribution.
// A pair that cannot be solved contributes penalty.PointCloudPair instead of
// failing the whole metric.
//
// Both metrics take a permutation p of the first dataset: position k of the
// relabeled dataset is deme p[k] of the original.
//
// Table memoises both metrics for one pair of datasets so that the
// permutation search pays for each Wasserstein distance and each point-cloud
// assignment at most once, however many candidates reuse them.
package transport
