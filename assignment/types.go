// SPDX-License-Identifier: MIT

package assignment

import "errors"

var (
	// ErrEmpty is returned for a 0×0 problem.
	ErrEmpty = errors.New("assignment: empty cost matrix")

	// ErrNonSquare is returned when the cost matrix is not n×n.
	ErrNonSquare = errors.New("assignment: cost matrix is not square")

	// ErrNaN is returned when the cost matrix holds NaN or −Inf.
	ErrNaN = errors.New("assignment: NaN or -Inf cost")

	// ErrInfeasible is returned when no perfect matching avoids +Inf costs.
	ErrInfeasible = errors.New("assignment: no feasible perfect matching")
)

// Result holds an optimal matching.
type Result struct {
	// RowToCol[i] is the column matched to row i.
	RowToCol []int

	// Cost is the sum of the matched costs.
	Cost float64
}
