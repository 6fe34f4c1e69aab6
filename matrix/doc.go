// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense row-major matrix, a transpose
// engine and LU decomposition with partial pivoting.
//
// Data model:
//
//   - Dense[T] stores rows×cols elements of any algebra.Scalar (signed
//     integers or floats) in one flat buffer; element (i,j) lives at i*cols+j.
//   - A matrix is well-formed when len(storage) == rows*cols. Every
//     constructor except FromRaw guarantees it.
//
// Two access surfaces:
//
//   - Unchecked (At, Set, Row, Col, Transpose*, LU*): panic on misuse with an
//     error value that still matches the sentinels via errors.Is.
//   - Checked (SafeAt, SafeSet, SafeTranspose*, Validate, Solve, Det,
//     Inverse): return errors built on the sentinels in errors.go.
//
// Transpose surfaces:
//
//   - Transpose(m) consumes m and returns it transposed.
//   - TransposeOf(m) returns a new matrix and leaves m untouched.
//   - m.TransposeInPlace() mutates m; square matrices never allocate.
//
// LU decomposition:
//
//	P, L, U := matrix.LUOf(A) // P·A == L·U
//
// A column with no nonzero entry at or below the current rank row is skipped,
// so singular and rectangular inputs factor without error. Factorize exposes
// the row permutation and rank; Solve, Det and Inverse build on it.
//
// Options:
//
//   - WithPivotTolerance(tol) treats |pivot| <= tol as zero.
//   - WithLogger(l) emits zerolog debug events for swaps and skipped columns.
//
// Determinism: loops run in fixed index order and the first maximal pivot
// wins ties, so equal inputs give bit-identical outputs.
package matrix
