// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/vector"
)

// Solve returns x with A·x = b, where A is the matrix the factors were built from.
// Implementation:
//   - Stage 1: validate square factors, len(b) == n and full rank.
//   - Stage 2: y = forward substitution of L·y = P·b (unit diagonal, no division).
//   - Stage 3: x = back substitution of U·x = y.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, ErrSingular (Rank < n); all wrapped with "Solve".
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LUFactors[T]) Solve(b []T) ([]T, error) {
	if err := ValidateSquare(f.U); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.U.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if f.Rank < n {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	// Forward: L·y = P·b, with (P·b)[i] = b[Perm[i]].
	y := make([]T, n)
	var i int
	for i = 0; i < n; i++ {
		y[i] = b[f.Perm[i]] - vector.Dot(f.L.Row(i)[:i], y[:i])
	}

	// Backward: U·x = y.
	x := make([]T, n)
	var row []T
	for i = n - 1; i >= 0; i-- {
		row = f.U.Row(i)
		x[i] = (y[i] - vector.Dot(row[i+1:], x[i+1:])) / row[i]
	}

	return x, nil
}

// Det returns det(A) = det(P)·Π U[i][i], with det(P) = (-1)^swaps.
// A rank-deficient factorization returns Zero.
// Errors: ErrNonSquare (wrapped with "Det").
func (f *LUFactors[T]) Det() (T, error) {
	if err := ValidateSquare(f.U); err != nil {
		return algebra.Zero[T](), matrixErrorf(opDet, err)
	}
	n := f.U.r
	if f.Rank < n {
		return algebra.Zero[T](), nil
	}

	det := algebra.One[T]()
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}
	if f.swaps%2 == 1 {
		det = -det
	}

	return det, nil
}

// Inverse returns A⁻¹ by solving A·x = e_j for every column j.
// Errors: ErrNonSquare, ErrSingular (wrapped with "Inverse").
// Complexity: Time O(n³), Space O(n²).
func (f *LUFactors[T]) Inverse() (*Dense[T], error) {
	if err := ValidateSquare(f.U); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.U.r
	if f.Rank < n {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv := Zeros[T](n, n)
	e := make([]T, n)
	one, zero := algebra.One[T](), algebra.Zero[T]()
	var i, j int
	for j = 0; j < n; j++ {
		e[j] = one
		x, err := f.Solve(e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+j] = x[i]
		}
		e[j] = zero
	}

	return inv, nil
}

// Solve factors a (borrowed) and solves a·x = b.
func Solve[T algebra.Scalar](a *Dense[T], b []T, opts ...Option) ([]T, error) {
	if err := ValidateWellFormed(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return Factorize(a, opts...).Solve(b)
}

// Det factors a (borrowed) and returns its determinant.
func Det[T algebra.Scalar](a *Dense[T], opts ...Option) (T, error) {
	if err := ValidateWellFormed(a); err != nil {
		return algebra.Zero[T](), matrixErrorf(opDet, err)
	}

	return Factorize(a, opts...).Det()
}

// Inverse factors a (borrowed) and returns a⁻¹.
func Inverse[T algebra.Scalar](a *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateWellFormed(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return Factorize(a, opts...).Inverse()
}
