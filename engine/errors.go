// SPDX-License-Identifier: MIT

package engine

import "errors"

var (
	// ErrNaNScore is returned when a candidate scores NaN.
	ErrNaNScore = errors.New("engine: candidate score is NaN")

	// ErrNoCandidate is returned when no candidate reached a finite score.
	ErrNoCandidate = errors.New("engine: no candidate with a finite score")

	// ErrPanic wraps a panic recovered while scoring.
	ErrPanic = errors.New("engine: panic while scoring")
)

// Reject reasons passed to MetricsCollector.RecordReject and logged.
const (
	// ReasonDemeCount: the first dataset does not hold deme.Count demes.
	ReasonDemeCount = "deme_count"

	// ReasonSideSplit: the first dataset is not split PerSide/PerSide.
	ReasonSideSplit = "side_split"

	// ReasonFailure: both the search and the identity fallback failed.
	ReasonFailure = "failure"
)
