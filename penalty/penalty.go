// SPDX-License-Identifier: MIT

// Package penalty is the single source of truth for the rejection ladder.
//
// Every metric in this module degrades malformed input to a numeric penalty
// instead of an error, so the calling inference loop never stalls on one bad
// sample. The ladder is strictly ordered:
//
//	legitimate score  <  Structural (100)  <  Distributional (1000)  <  Reject (+Inf)
//
// Legitimate scores on methylation fractions in [0,1] are single or double
// digit values, so each rung dominates everything below it.
package penalty

import "math"

const (
	// Structural fills every cell of a deme distance matrix built from a
	// dataset that does not hold exactly deme.Count demes.
	Structural = 100.0

	// Distributional is returned by the per-deme Wasserstein metric when either
	// dataset does not hold exactly deme.Count demes.
	Distributional = 1000.0

	// PointCloudPair is added for each deme pair whose transport cost could
	// not be computed. Failures are local: other pairs still contribute.
	PointCloudPair = 1000.0
)

// Reject returns the hard-failure sentinel (+Inf).
// It is larger than any finite score, so samplers can compare it directly.
func Reject() float64 { return math.Inf(1) }

// IsReject reports whether score is the hard-failure sentinel.
func IsReject(score float64) bool { return math.IsInf(score, 1) }
