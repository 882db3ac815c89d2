// SPDX-License-Identifier: MIT

package structural

import (
	"fmt"

	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/matrix"
	"github.com/katalvlaran/demedist/penalty"
)

// symmetryDivisor removes the double counting of off-diagonal cells.
const symmetryDivisor = 2.0

// SquaredGlandDistance returns sum((a_i-b_i)^2) / len(a).
//
// Errors:
//   - ErrEmptyArray if a is empty.
//   - ErrLengthMismatch if len(a) != len(b).
//
// Complexity: O(len(a)).
func SquaredGlandDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("SquaredGlandDistance(%d,%d): %w", len(a), len(b), ErrLengthMismatch)
	}
	if len(a) == 0 {
		return 0, ErrEmptyArray
	}
	var sum, d float64
	for i := range a {
		d = a[i] - b[i]
		sum += d * d
	}

	return sum / float64(len(a)), nil
}

// DemeMatrix builds the Count×Count matrix of squared gland distances.
//
// Implementation:
//   - Stage 1: a dataset without exactly deme.Count demes returns a matrix
//     filled with penalty.Structural and a nil error.
//   - Stage 2: fill the upper triangle and mirror it; the diagonal stays 0.
//
// Errors: ErrLengthMismatch / ErrEmptyArray from SquaredGlandDistance.
//
// Complexity: O(Count²·sites).
func DemeMatrix(n deme.Normalized) (*matrix.Dense, error) {
	if n.Len() != deme.Count {
		return matrix.NewFilled(deme.Count, deme.Count, penalty.Structural)
	}
	m, err := matrix.NewDense(deme.Count, deme.Count)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		d    float64
	)
	for i = 0; i < deme.Count; i++ {
		for j = i + 1; j < deme.Count; j++ {
			if d, err = SquaredGlandDistance(n.Arrays[i], n.Arrays[j]); err != nil {
				return nil, fmt.Errorf("DemeMatrix(%d,%d): %w", i, j, err)
			}
			_ = m.Set(i, j, d) // in range by construction
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}

// MatrixL2 returns sqrt(sum((m1-m2)^2) / 2).
// Callers pass full symmetric matrices; they must not halve them first.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity: O(r·c).
func MatrixL2(m1, m2 matrix.Matrix) (float64, error) {
	diff, err := matrix.Sub(m1, m2)
	if err != nil {
		return 0, fmt.Errorf("MatrixL2: %w", err)
	}

	return matrix.ScaledFrobeniusNorm(diff, symmetryDivisor)
}

// Permuted relabels a square deme matrix: out[k][l] = m[p[k]][p[l]].
// m is left untouched.
func Permuted(m *matrix.Dense, p []int) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, err
	}
	if len(p) != m.Rows() {
		return nil, fmt.Errorf("Permuted: %d indices for order %d: %w", len(p), m.Rows(), matrix.ErrDimensionMismatch)
	}

	return m.Induced(p, p)
}

// Distance is the structural metric between dataset n1 relabeled by p and n2.
// A nil p means the identity.
func Distance(n1, n2 deme.Normalized, p []int) (float64, error) {
	m1, err := DemeMatrix(n1)
	if err != nil {
		return 0, err
	}
	m2, err := DemeMatrix(n2)
	if err != nil {
		return 0, err
	}
	if p != nil {
		if m1, err = Permuted(m1, p); err != nil {
			return 0, err
		}
	}

	return MatrixL2(m1, m2)
}
