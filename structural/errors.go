// SPDX-License-Identifier: MIT

package structural

import "errors"

var (
	// ErrLengthMismatch is returned when two glands have different site counts.
	ErrLengthMismatch = errors.New("structural: gland arrays differ in length")

	// ErrEmptyArray is returned when a gland has no sites.
	ErrEmptyArray = errors.New("structural: empty gland array")
)
