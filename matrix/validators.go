// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for nil/shape/structure checks.
//  - Return sentinels wrapped with the validator tag so call sites can wrap
//    once more with their operation tag and callers still match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/linalg/algebra"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T algebra.Scalar](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateWellFormed – Composite: NotNil → len(storage) == rows*cols.
//
// Errors: ErrNilMatrix, ErrStructure.
// Complexity: O(1).
func ValidateWellFormed[T algebra.Scalar](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return validatorErrorf("ValidateWellFormed", err)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil.
func ValidateSquare[T algebra.Scalar](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible – Composite: WellFormed(a) → WellFormed(b) → a.Cols == b.Rows.
func ValidateMulCompatible[T algebra.Scalar](a, b *Dense[T]) error {
	if err := ValidateWellFormed(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateWellFormed(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen[T algebra.Scalar](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// mustWellFormed is the fail-fast guard of the unchecked surface: it panics
// with ErrStructure (wrapped with op) instead of letting a malformed buffer
// produce a garbage result.
func mustWellFormed[T algebra.Scalar](op string, m *Dense[T]) {
	if err := m.Validate(); err != nil {
		panic(matrixErrorf(op, err))
	}
}
