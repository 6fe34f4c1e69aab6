// SPDX-License-Identifier: MIT

// Package algebra declares the element capability set shared by the vector and
// matrix kernels.
//
// Purpose:
//   - Describe which element types the kernels accept (Scalar).
//   - Provide the additive/multiplicative identities, magnitude and the swap
//     primitive every kernel uses, so no kernel hardcodes a numeric type.
//
// Notes:
//   - Unsigned integers are excluded on purpose: elimination subtracts and the
//     pivot search compares magnitudes, both of which need a sign.
package algebra

import "golang.org/x/exp/constraints"

// Scalar is the capability set required from a matrix element:
// additive identity, multiplicative identity, absolute value, in-place
// addition, total ordering and division.
// Every signed integer and floating-point type (and types derived from them)
// satisfies it.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Scalar]() T {
	var z T

	return z
}

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Scalar]() T { return T(1) }

// Abs returns |v|.
// For signed integers the most negative value maps onto itself (two's complement),
// the same behavior as negation in Go.
// Complexity: O(1).
func Abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// NegAbs returns -|v|. Unlike Abs it is exact for every value, including the
// most negative signed integer, so magnitudes compare correctly as NegAbs(a) < NegAbs(b).
func NegAbs[T Scalar](v T) T {
	if v > 0 {
		return -v
	}

	return v
}

// IsZero reports whether v equals the additive identity.
func IsZero[T Scalar](v T) bool { return v == Zero[T]() }

// Swap exchanges the values held by two slots.
// It is the single swap primitive used at every row/pivot swap site.
// Passing the same slot twice is a no-op.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// SwapAt exchanges s[i] and s[j].
// Panics when i or j is out of range (programmer error).
func SwapAt[T any](s []T, i, j int) {
	Swap(&s[i], &s[j])
}

// Float64 converts v to float64 for tolerance comparisons against
// float-valued options.
func Float64[T Scalar](v T) float64 { return float64(v) }
