// SPDX-License-Identifier: MIT

// Package matrix - element-wise kernels.
//
// Only the two kernels the distance metrics need live here: Sub and
// FrobeniusNorm. Both have a *Dense fast path over the flat buffer and a
// generic fallback through At for any other Matrix implementation.

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf tags an error with the public function that produced it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// Sub returns a new matrix a - b.
//
// Implementation:
//   - Stage 1: validate non-nil operands with equal shape.
//   - Stage 2: subtract cell by cell in fixed i→j order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Sub", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Sub", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Sub", err)
	}
	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf("Sub", err)
	}

	// Dense fast-path: one pass over both flat buffers.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for k := range out.data {
			out.data[k] = da.data[k] - db.data[k]
		}
		return out, nil
	}

	var (
		i, j   int
		va, vb float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf("Sub", err)
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf("Sub", err)
			}
			out.data[i*out.c+j] = va - vb
		}
	}

	return out, nil
}

// FrobeniusNorm returns sqrt(sum(m[i][j]^2)).
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	return frobenius(m, 1)
}

// ScaledFrobeniusNorm returns sqrt(sum(m[i][j]^2) / div).
// div must be positive; the structural metric uses div=2 to count each
// off-diagonal discrepancy of a symmetric matrix once.
func ScaledFrobeniusNorm(m Matrix, div float64) (float64, error) {
	if !(div > 0) || math.IsInf(div, 0) {
		return 0, matrixErrorf("ScaledFrobeniusNorm", ErrNaNInf)
	}

	return frobenius(m, div)
}

func frobenius(m Matrix, div float64) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("FrobeniusNorm", err)
	}
	var sum float64
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			sum += v * v
		}
		return math.Sqrt(sum / div), nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf("FrobeniusNorm", err)
			}
			sum += v * v
		}
	}

	return math.Sqrt(sum / div), nil
}
