// SPDX-License-Identifier: MIT

package deme

import "errors"

var (
	// ErrNilDataset is returned when Normalize receives a nil Dataset.
	ErrNilDataset = errors.New("deme: dataset is nil")

	// ErrUnknownSide is returned for a side value other than A or B.
	ErrUnknownSide = errors.New("deme: unknown side")

	// ErrDimensionMismatch signals inconsistent column names and columns.
	ErrDimensionMismatch = errors.New("deme: dimension mismatch")

	// ErrSideSplit signals a dataset that is not Count demes split PerSide/PerSide.
	ErrSideSplit = errors.New("deme: demes do not split evenly between sides")

	// ErrEmptyArray signals a deme with no methylation sites.
	ErrEmptyArray = errors.New("deme: empty methylation array")

	// ErrValueRange signals a methylation value outside [0,1] or NaN.
	ErrValueRange = errors.New("deme: methylation value outside [0,1]")

	// ErrParse signals a malformed AverageArray cell.
	ErrParse = errors.New("deme: cannot parse methylation array")
)
