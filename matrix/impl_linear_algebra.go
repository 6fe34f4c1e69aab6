// SPDX-License-Identifier: MIT
// Package matrix provides generic operations on Dense matrices: products,
// comparisons and the shared error-wrapping helper used by every kernel.
//
// Purpose:
//   - Declare operation tags and the uniform "Op: underlying" error shape.
//   - Host the small kernels the factorization engine and its tests rely on
//     (Mul for reconstruction, Equal/EqualApprox for verification).

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opSafeTranspose = "SafeTranspose"
	opLU            = "LU"
	opSolve         = "Solve"
	opDet           = "Det"
	opInverse       = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (well-formed) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j order: C.Row(i) += A[i,k] * B.Row(k) via vector.Axpy,
//     skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrStructure, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T algebra.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := Zeros[T](a.r, b.c)
	zero := algebra.Zero[T]()
	var i, k int
	var av T
	for i = 0; i < a.r; i++ {
		out := res.Row(i)
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == zero {
				continue // skip zero for performance
			}
			vector.Axpy(av, b.Row(k), out)
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; malformed matrices compare by raw storage.
func Equal[T algebra.Scalar](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether a and b have the same shape and every pair of
// elements differs by at most tol in absolute value.
func EqualApprox[T algebra.Scalar](a, b *Dense[T], tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		d := math.Abs(float64(a.data[i]) - float64(b.data[i]))
		if d > tol || math.IsNaN(d) {
			return false
		}
	}

	return true
}
