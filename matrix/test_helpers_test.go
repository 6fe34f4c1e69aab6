// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and structural assertions shared by
//     the dense, transpose and LU tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/matrix"
)

// defaultTol bounds rounding differences in float64 reconstruction checks.
const defaultTol = 1e-9

// MustNew ADOPTS vals as an r×c matrix or fails the test.
// Implementation:
//   - Stage 1: Call matrix.New(r, c, vals).
//   - Stage 2: require.NoError to abort the test early.
//
// Notes:
//   - vals is adopted, not copied; do not reuse the slice across fixtures.
func MustNew[T algebra.Scalar](t testing.TB, r, c int, vals []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.New(r, c, vals)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustSquare BUILDS an n×n matrix from a flat slice whose length is a perfect square.
func MustSquare[T algebra.Scalar](t testing.TB, vals []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromSlice(vals)
	require.NoError(t, err)

	return m
}

// RandFilledDense RETURNS a new r×c matrix filled with deterministic U(-1,1) values.
// Determinism:
//   - Deterministic per seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}

	return MustNew(t, r, c, vals)
}

// RequireApprox FAILS the test unless want and got agree element-wise within tol.
func RequireApprox(t testing.TB, want, got *matrix.Dense[float64], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.InDeltaSlice(t, want.Data(), got.Data(), tol, "want:\n%vgot:\n%v", want, got)
}

// RequireReconstruction checks P·A == L·U within tol.
func RequireReconstruction(t testing.TB, A, P, L, U *matrix.Dense[float64], tol float64) {
	t.Helper()
	PA, err := matrix.Mul(P, A)
	require.NoError(t, err)
	LU, err := matrix.Mul(L, U)
	require.NoError(t, err)
	RequireApprox(t, PA, LU, tol)
}

// isUnitLower reports whether m has One on the diagonal and Zero strictly above it.
func isUnitLower[T algebra.Scalar](m *matrix.Dense[T]) bool {
	for i := 0; i < m.Rows(); i++ {
		for j := i; j < m.Cols(); j++ {
			want := algebra.Zero[T]()
			if i == j {
				want = algebra.One[T]()
			}
			if m.At(i, j) != want {
				return false
			}
		}
	}

	return true
}

// isUpper reports whether every entry strictly below the diagonal is Zero.
func isUpper[T algebra.Scalar](m *matrix.Dense[T]) bool {
	for i := 1; i < m.Rows(); i++ {
		for j := 0; j < i && j < m.Cols(); j++ {
			if m.At(i, j) != algebra.Zero[T]() {
				return false
			}
		}
	}

	return true
}

// isPermutation reports whether every row and every column of m holds exactly
// one One and Zero elsewhere.
func isPermutation[T algebra.Scalar](m *matrix.Dense[T]) bool {
	if m.Rows() != m.Cols() {
		return false
	}
	n := m.Rows()
	one, zero := algebra.One[T](), algebra.Zero[T]()
	colHits := make([]int, n)
	for i := 0; i < n; i++ {
		rowHits := 0
		for j := 0; j < n; j++ {
			switch m.At(i, j) {
			case one:
				rowHits++
				colHits[j]++
			case zero:
			default:
				return false
			}
		}
		if rowHits != 1 {
			return false
		}
	}
	for _, h := range colHits {
		if h != 1 {
			return false
		}
	}

	return true
}
