// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Offer two access surfaces: unchecked (At/Set/Row, panic on misuse) for kernels
//     and checked (SafeAt/SafeSet/Validate) for callers that need errors.
//   - Keep loop orders fixed (no map iteration) so results are reproducible.
//
// Complexity quicksheet:
//   - New/Zeros/Identity: O(r*c); At/Set/Row: O(1); Col: O(r); Clone/Scaled: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer in row-major order (offset = i*c + j).
//
// A Dense is well-formed when len(data) == r*c. Every constructor except
// FromRaw guarantees it.
type Dense[T algebra.Scalar] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// New adopts data as an r×c matrix (no copy).
// MAIN DESCRIPTION:
//   - Validating constructor: negative dims, or dims whose product overflows
//     int, give ErrInvalidDimensions; a length mismatch gives ErrStructure.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T algebra.Scalar](rows, cols int, data []T) (*Dense[T], error) {
	if !validDims(rows, cols) {
		return nil, errors.Wrapf(ErrInvalidDimensions, "New(%d,%d)", rows, cols)
	}
	if !shapeHolds(len(data), rows, cols) {
		return nil, structureError(len(data), rows, cols)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// FromRaw adopts data with caller-supplied dimensions and performs NO validation.
// The result may be malformed; only checked operations (Validate, Safe*) detect it.
func FromRaw[T algebra.Scalar](rows, cols int, data []T) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: data}
}

// FromSlice adopts data as an n×n matrix where n*n == len(data).
// Returns ErrNotSquareLength when the length is not a perfect square.
func FromSlice[T algebra.Scalar](data []T) (*Dense[T], error) {
	n := isqrt(len(data))
	if n*n != len(data) {
		return nil, errors.Wrapf(ErrNotSquareLength, "FromSlice(len=%d)", len(data))
	}

	return &Dense[T]{r: n, c: n, data: data}, nil
}

// isqrt returns floor(sqrt(n)) for n >= 0, corrected for float rounding.
func isqrt(n int) int {
	s := int(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}

	return s
}

// Zeros returns an r×c matrix filled with the additive identity.
// Panics with ErrInvalidDimensions on negative dimensions.
func Zeros[T algebra.Scalar](rows, cols int) *Dense[T] {
	if !validDims(rows, cols) {
		panic(errors.Wrapf(ErrInvalidDimensions, "Zeros(%d,%d)", rows, cols))
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Identity returns the n×n identity: One on the diagonal, Zero elsewhere.
func Identity[T algebra.Scalar](n int) *Dense[T] {
	return Eye[T](n, n)
}

// Eye returns an r×c matrix with One on the main diagonal (i == j) and Zero elsewhere.
func Eye[T algebra.Scalar](rows, cols int) *Dense[T] {
	m := Zeros[T](rows, cols)
	one := algebra.One[T]()
	for i := 0; i < rows && i < cols; i++ {
		m.data[i*cols+i] = one
	}

	return m
}

// IdentityLike returns Eye with the shape of m.
func IdentityLike[T algebra.Scalar](m *Dense[T]) *Dense[T] {
	return Eye[T](m.r, m.c)
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the storage length (== Rows*Cols when well-formed).
func (m *Dense[T]) Len() int { return len(m.data) }

// Data exposes the row-major backing slice. Writes are visible in m.
func (m *Dense[T]) Data() []T { return m.data }

// WellFormed reports whether len(storage) == rows*cols.
// Negative dimensions and shapes whose element count overflows int are never well-formed.
func (m *Dense[T]) WellFormed() bool { return shapeHolds(len(m.data), m.r, m.c) }

// validDims reports whether rows and cols are non-negative and rows*cols fits in an int.
func validDims(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= math.MaxInt/cols
}

// shapeHolds reports n == rows*cols without computing the (possibly overflowing) product.
func shapeHolds(n, rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}
	if cols == 0 {
		return n == 0
	}

	return n%cols == 0 && n/cols == rows
}

// Validate returns a wrapped ErrStructure when m is malformed.
func (m *Dense[T]) Validate() error {
	if !m.WellFormed() {
		return structureError(len(m.data), m.r, m.c)
	}

	return nil
}

// inBounds reports whether (row,col) addresses a cell of m.
func (m *Dense[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the element at (row, col).
// Panics with an *IndexError when the index is out of range.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) T {
	if !m.inBounds(row, col) {
		panic(newIndexError(row, col, m.r, m.c))
	}

	return m.data[row*m.c+col]
}

// Set stores v at (row, col).
// Panics with an *IndexError when the index is out of range.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) {
	if !m.inBounds(row, col) {
		panic(newIndexError(row, col, m.r, m.c))
	}
	m.data[row*m.c+col] = v
}

// SafeAt returns the element at (row, col) or an *IndexError.
// A malformed matrix whose storage does not cover the offset yields ErrStructure.
// Never panics.
func (m *Dense[T]) SafeAt(row, col int) (T, error) {
	if !m.inBounds(row, col) {
		return algebra.Zero[T](), newIndexError(row, col, m.r, m.c)
	}
	if !m.covers(row, col) {
		return algebra.Zero[T](), structureError(len(m.data), m.r, m.c)
	}

	return m.data[row*m.c+col], nil
}

// SafeSet stores v at (row, col) or returns an *IndexError (ErrStructure for
// storage that does not cover the offset). Never panics.
func (m *Dense[T]) SafeSet(row, col int, v T) error {
	if !m.inBounds(row, col) {
		return newIndexError(row, col, m.r, m.c)
	}
	if !m.covers(row, col) {
		return structureError(len(m.data), m.r, m.c)
	}
	m.data[row*m.c+col] = v

	return nil
}

// covers reports whether storage holds offset row*c+col for an in-bounds
// (row, col), comparing by division so huge malformed shapes cannot overflow.
func (m *Dense[T]) covers(row, col int) bool {
	q, rem := len(m.data)/m.c, len(m.data)%m.c

	return row < q || (row == q && col < rem)
}

// Row returns row i as a live slice of the backing storage: m.Row(i)[j] reads
// and writes element (i,j). The slice capacity is clipped to the row.
// Panics with an *IndexError when i is out of range.
func (m *Dense[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		panic(newIndexError(i, 0, m.r, m.c))
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// SetRowSlice copies src into row i starting at column from,
// replacing columns [from, from+len(src)).
// Panics with an *IndexError when the run does not fit in the row.
func (m *Dense[T]) SetRowSlice(i, from int, src []T) {
	if i < 0 || i >= m.r || from < 0 || from+len(src) > m.c {
		panic(newIndexError(i, from+len(src)-1, m.r, m.c))
	}
	copy(m.data[i*m.c+from:], src)
}

// Col returns a copy of column j across all rows, in row order.
// Panics with an *IndexError when j is out of range.
// Complexity: O(r) time and space.
func (m *Dense[T]) Col(j int) []T {
	if j < 0 || j >= m.c {
		panic(newIndexError(0, j, m.r, m.c))
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Clone returns a deep copy (new buffer, same shape).
// A malformed matrix is cloned as-is.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Scale multiplies every element by alpha in place.
func (m *Dense[T]) Scale(alpha T) {
	vector.Scale(alpha, m.data)
}

// Scaled returns a new matrix alpha*m; m is untouched.
// Scaled(Zero) yields a same-shaped zero matrix.
func (m *Dense[T]) Scaled(alpha T) *Dense[T] {
	out := m.Clone()
	out.Scale(alpha)

	return out
}

// String renders rows as "[a, b]\n" lines using %v.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if base+j < len(m.data) {
				fmt.Fprintf(&b, "%v", m.data[base+j])
			} else {
				b.WriteString("?") // malformed storage
			}
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// swapRowRange exchanges m[i][from:to] and m[j][from:to] element by element.
// i == j is a no-op. Indices are trusted (internal kernels only).
func (m *Dense[T]) swapRowRange(i, j, from, to int) {
	if i == j {
		return
	}
	bi, bj := i*m.c, j*m.c
	for col := from; col < to; col++ {
		algebra.Swap(&m.data[bi+col], &m.data[bj+col])
	}
}
