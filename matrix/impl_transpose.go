// SPDX-License-Identifier: MIT

// Package matrix - transpose engine.
//
// Three surfaces share two kernels:
//   - owned     : Transpose(m)          transposes m itself and returns it.
//   - shared    : TransposeOf(m)        returns a new matrix, m untouched.
//   - exclusive : m.TransposeInPlace()  mutates m, returns nothing.
//
// Each has a checked counterpart (SafeTranspose, SafeTransposeOf,
// SafeTransposeInPlace) that verifies len(storage) == rows*cols first and
// returns ErrStructure without touching the input. The unchecked surface
// panics with ErrStructure on malformed input.

package matrix

import (
	"github.com/katalvlaran/linalg/algebra"
)

// transposeSquare swaps data[i][j] with data[j][i] for every i < j in an n×n
// row-major buffer. The diagonal is untouched and nothing is allocated.
// Complexity: Time O(n²), Space O(1).
func transposeSquare[T any](data []T, n int) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			algebra.Swap(&data[i*n+j], &data[j*n+i])
		}
	}
}

// transposeInto returns a fresh buffer holding the transpose of the rows×cols
// row-major buffer src, written in output order: out[i][j] = src[j][i]
// for i in [0,cols), j in [0,rows).
// Complexity: Time O(r*c), Space O(r*c).
func transposeInto[T any](src []T, rows, cols int) []T {
	out := make([]T, len(src))
	var i, j, base int
	for i = 0; i < cols; i++ {
		base = i * rows
		for j = 0; j < rows; j++ {
			out[base+j] = src[j*cols+i]
		}
	}

	return out
}

// TransposeInPlace replaces m by mᵀ.
// Implementation:
//   - Stage 1: fail fast (panic with ErrStructure) when m is malformed.
//   - Stage 2: square → pairwise swap in place; rectangular → reshaping copy
//     into a new buffer, then swap the dimensions.
//
// Behavior highlights:
//   - Square matrices never allocate.
//   - Rectangular matrices replace their backing slice; slices previously
//     obtained via Data/Row keep pointing at the old buffer.
//
// Complexity:
//   - Time O(r*c); Space O(1) square, O(r*c) rectangular.
func (m *Dense[T]) TransposeInPlace() {
	mustWellFormed(opTranspose, m)
	if m.r == m.c {
		transposeSquare(m.data, m.r)
		return
	}
	m.data = transposeInto(m.data, m.r, m.c)
	m.r, m.c = m.c, m.r
}

// Transpose consumes m: it is transposed in place and returned.
// The caller must treat the argument as moved into the result.
func Transpose[T algebra.Scalar](m *Dense[T]) *Dense[T] {
	m.TransposeInPlace()

	return m
}

// TransposeOf returns mᵀ as a new matrix; m is not modified.
// Panics with ErrStructure when m is malformed.
// Complexity: Time O(r*c), Space O(r*c).
func TransposeOf[T algebra.Scalar](m *Dense[T]) *Dense[T] {
	mustWellFormed(opTranspose, m)

	return &Dense[T]{r: m.c, c: m.r, data: transposeInto(m.data, m.r, m.c)}
}

// SafeTransposeInPlace is the checked form of TransposeInPlace.
// Errors:
//   - ErrNilMatrix, ErrStructure (wrapped with "SafeTranspose"); m is left unchanged.
func (m *Dense[T]) SafeTransposeInPlace() error {
	if err := ValidateWellFormed(m); err != nil {
		return matrixErrorf(opSafeTranspose, err)
	}
	m.TransposeInPlace()

	return nil
}

// SafeTranspose is the checked form of Transpose (consuming).
// On error the argument is left unchanged and the result is nil.
func SafeTranspose[T algebra.Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := m.SafeTransposeInPlace(); err != nil {
		return nil, err
	}

	return m, nil
}

// SafeTransposeOf is the checked form of TransposeOf (borrowing).
func SafeTransposeOf[T algebra.Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateWellFormed(m); err != nil {
		return nil, matrixErrorf(opSafeTranspose, err)
	}

	return TransposeOf(m), nil
}
