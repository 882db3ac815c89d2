// SPDX-License-Identifier: MIT

package transport

import "errors"

var (
	// ErrEmptyCloud is returned by PairCost when a cloud has no points.
	ErrEmptyCloud = errors.New("transport: empty point cloud")

	// ErrBadPermutation is returned when p is not a permutation of the demes.
	ErrBadPermutation = errors.New("transport: invalid deme permutation")
)
