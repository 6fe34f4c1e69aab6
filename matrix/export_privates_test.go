// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/linalg/algebra"
)

// Test bridge (white-box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose the unexported transpose kernels, the pivot predicate and the
//     effective Options to matrix_test only, without widening the prod API.
//   - The file ends in _test.go, so it never ships in production builds.

// OptionsSnapshot is a read-only view of the internal Options.
type OptionsSnapshot struct {
	PivotTol  float64
	HasLogger bool
}

// Panic message exports to avoid magic strings in tests.
const PanicPivotToleranceInvalid_TestOnly = panicPivotToleranceInvalid

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		PivotTol:  o.pivotTol,
		HasLogger: o.logger.GetLevel() != zerolog.Disabled,
	}
}

// TransposeSquare_TestOnly runs the in-place square kernel.
func TransposeSquare_TestOnly[T any](data []T, n int) { transposeSquare(data, n) }

// TransposeInto_TestOnly runs the reshaping kernel.
func TransposeInto_TestOnly[T any](src []T, rows, cols int) []T {
	return transposeInto(src, rows, cols)
}

// Negligible_TestOnly exposes the pivot predicate.
func Negligible_TestOnly(mag, tol float64) bool { return negligible(mag, tol) }

// Swaps_TestOnly exposes the row exchange count of a factorization.
func Swaps_TestOnly[T algebra.Scalar](f *LUFactors[T]) int { return f.swaps }
