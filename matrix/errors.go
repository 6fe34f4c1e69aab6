// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinels plus the IndexError carrier.
// Checked operations return these (possibly wrapped with an operation tag) and
// tests match them via errors.Is. Unchecked operations panic with the same
// sentinels so a recovered panic value can be classified identically.

package matrix

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Every message is prefixed with "matrix: ..." for grep-ability.
// Wrap at the outer boundary with matrixErrorf(op, err); callers still use errors.Is.

var (
	// ErrStructure is returned when the storage length does not match rows*cols.
	// Only checked ("Safe") operations report it; unchecked ones panic with it.
	ErrStructure = errors.New("matrix: storage length does not match shape")

	// ErrIndexOutOfRange indicates that a row or column index is outside valid bounds.
	// Returned (inside *IndexError) by SafeAt/SafeSet; At/Set panic with it.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates negative dimensions or a rows*cols product that overflows int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0 with rows*cols within int range")

	// ErrNotSquareLength is returned by FromSlice when len(data) is not a perfect square.
	ErrNotSquareLength = errors.New("matrix: length is not a perfect square")

	// ErrDimensionMismatch indicates incompatible operand shapes (Mul, Solve).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix was passed to a checked operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by Solve/Inverse when the factorization is rank deficient.
	// Decomposition itself never fails on singular input.
	ErrSingular = errors.New("matrix: singular matrix")
)

// IndexError reports an out-of-range access together with the matrix shape.
// errors.Is(err, ErrIndexOutOfRange) holds for every *IndexError.
type IndexError struct {
	Row, Col   int // requested index
	Rows, Cols int // matrix dimensions at the time of access
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("matrix: index (%d,%d) exceeds dimensions (%d,%d)", e.Row, e.Col, e.Rows, e.Cols)
}

// Unwrap exposes the sentinel.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func newIndexError(row, col, rows, cols int) *IndexError {
	return &IndexError{Row: row, Col: col, Rows: rows, Cols: cols}
}

// structureError wraps ErrStructure with the observed mismatch.
func structureError(length, rows, cols int) error {
	return errors.Wrapf(ErrStructure, "len %d != %d*%d", length, rows, cols)
}
