// SPDX-License-Identifier: MIT

// Package matrix provides the small dense-matrix surface used by the deme
// distance metrics.
//
// What & Why:
//
//	Deme distance matrices are tiny (8×8) but they are built, reordered and
//	compared thousands of times per inference step. Dense stores them in a
//	flat row-major buffer so hot loops index data directly, while the public
//	At/Set surface stays bounds-checked and never panics on user input.
//
// Surface:
//   - Dense, NewDense, NewFilled: row-major storage and constructors.
//   - Induced: copy a submatrix selected (and reordered) by index lists.
//   - Sub, FrobeniusNorm: the two kernels behind the L2 matrix distance.
//   - ValidateNotNil, ValidateSameShape, ValidateSquare, ValidateSymmetric,
//     ValidateZeroDiagonal: centralized guards returning sentinel errors.
//
// Complexity:
//
//	At/Set O(1); Clone, Sub, FrobeniusNorm O(r·c); Induced O(r'·c').
package matrix
