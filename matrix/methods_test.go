package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/demedist/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plain is a minimal non-Dense Matrix used to exercise the generic fallbacks.
type plain struct{ a [][]float64 }

func (p plain) Rows() int { return len(p.a) }
func (p plain) Cols() int { return len(p.a[0]) }
func (p plain) At(i, j int) (float64, error) {
	if i < 0 || i >= len(p.a) || j < 0 || j >= len(p.a[0]) {
		return 0, matrix.ErrOutOfRange
	}
	return p.a[i][j], nil
}
func (p plain) Set(i, j int, v float64) error { p.a[i][j] = v; return nil }
func (p plain) Clone() matrix.Matrix         { return p }

// TestSub_DenseAndGeneric checks both code paths agree.
func TestSub_DenseAndGeneric(t *testing.T) {
	a, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
	b, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})

	fast, err := matrix.Sub(a, b)
	require.NoError(t, err)
	slow, err := matrix.Sub(plain{a: [][]float64{{5, 6}, {7, 8}}}, b)
	require.NoError(t, err)
	assert.Equal(t, fast.String(), slow.String())
	v, _ := fast.At(1, 1)
	assert.Equal(t, 4.0, v)
}

// TestSub_Errors covers nil and shape mismatch.
func TestSub_Errors(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(3, 2)
	_, err := matrix.Sub(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense
	_, err = matrix.Sub(a, nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFrobeniusNorm checks the plain and scaled norms.
func TestFrobeniusNorm(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{0, 3}, {4, 0}})
	n, err := matrix.FrobeniusNorm(m)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, n, 1e-12)

	half, err := matrix.ScaledFrobeniusNorm(m, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), half, 1e-12)

	g, err := matrix.FrobeniusNorm(plain{a: [][]float64{{0, 3}, {4, 0}}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, g, 1e-12)

	_, err = matrix.ScaledFrobeniusNorm(m, 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
