// SPDX-License-Identifier: MIT

// Package vector provides BLAS level-1 style helpers over plain slices.
//
// All helpers take []T with T constrained by algebra.Scalar, walk the slices in
// index order and never allocate unless they return a fresh slice.
// Length mismatches are programmer errors at this level and panic with
// ErrLengthMismatch; the matrix package validates shapes before calling in.
package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/linalg/algebra"
)

// ErrLengthMismatch is the panic value raised when two operands differ in length.
var ErrLengthMismatch = errors.New("vector: length mismatch")

func mustSameLen(op string, a, b int) {
	if a != b {
		panic(errors.Wrapf(ErrLengthMismatch, "%s: %d != %d", op, a, b))
	}
}

// Dot returns Σ x[i]*y[i].
// Complexity: O(n).
func Dot[T algebra.Scalar](x, y []T) T {
	mustSameLen("Dot", len(x), len(y))

	sum := algebra.Zero[T]()
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum
}

// Axpy computes y += alpha*x in place.
// Complexity: O(n).
func Axpy[T algebra.Scalar](alpha T, x, y []T) {
	mustSameLen("Axpy", len(x), len(y))
	if alpha == algebra.Zero[T]() {
		return
	}
	for i := range x {
		y[i] += alpha * x[i]
	}
}

// AxpyTo returns a fresh slice holding alpha*x + y; x and y are not modified.
// Complexity: O(n) time and space.
func AxpyTo[T algebra.Scalar](alpha T, x, y []T) []T {
	out := make([]T, len(y))
	copy(out, y)
	Axpy(alpha, x, out)

	return out
}

// Scale multiplies every element of x by alpha in place.
func Scale[T algebra.Scalar](alpha T, x []T) {
	for i := range x {
		x[i] *= alpha
	}
}

// Add returns x + y as a fresh slice.
func Add[T algebra.Scalar](x, y []T) []T {
	mustSameLen("Add", len(x), len(y))

	out := make([]T, len(x))
	for i := range x {
		out[i] = x[i] + y[i]
	}

	return out
}

// ArgMaxAbs returns the index of the first element with the greatest magnitude
// at or after index from, and that magnitude.
// Elements equal in magnitude to the current best never replace it, so the
// lowest index wins ties. A run of zeros reports (from, 0).
// Magnitudes are compared on the negative side, so the most negative signed
// integer is found; its reported magnitude wraps to itself (negative, nonzero).
// Panics when from is outside [0, len(x)].
func ArgMaxAbs[T algebra.Scalar](x []T, from int) (int, T) {
	best := from
	bestNeg := algebra.Zero[T]()
	for i := from; i < len(x); i++ {
		if n := algebra.NegAbs(x[i]); n < bestNeg {
			best, bestNeg = i, n
		}
	}

	return best, algebra.Zero[T]() - bestNeg
}
