// Package matrix_test contains unit tests for the Dense storage and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestNewValidation ensures New rejects negative dimensions and length mismatches.
func TestNewValidation(t *testing.T) {
	_, err := matrix.New(-1, 2, []float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrStructure)

	m, err := matrix.New(0, 3, []float64{}) // empty shapes are legal
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
}

// hugeDim squared wraps to 0 in int arithmetic on both 32- and 64-bit targets.
const hugeDim = math.MaxInt/2 + 1

// TestNewValidation_DimensionOverflow rejects shapes whose element count overflows int.
func TestNewValidation_DimensionOverflow(t *testing.T) {
	_, err := matrix.New(hugeDim, hugeDim, []float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New(math.MaxInt, 2, []int{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// the largest representable product is still a plain length check
	_, err = matrix.New(math.MaxInt, 1, []int{})
	require.ErrorIs(t, err, matrix.ErrStructure)
	require.NotErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.New(math.MaxInt, 0, []int{})
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())

	require.Panics(t, func() { matrix.Zeros[int](hugeDim, hugeDim) })
	require.Panics(t, func() { matrix.Eye[int](hugeDim, hugeDim) })
}

// TestFromSlice infers square shapes from perfect-square lengths only.
func TestFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantDim int
		wantErr error
	}{
		{"empty", 0, 0, nil},
		{"1x1", 1, 1, nil},
		{"3x3", 9, 3, nil},
		{"5x5", 25, 5, nil},
		{"not square 8", 8, 0, matrix.ErrNotSquareLength},
		{"not square 2", 2, 0, matrix.ErrNotSquareLength},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromSlice(make([]int, tc.n))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantDim, m.Rows())
			require.Equal(t, tc.wantDim, m.Cols())
		})
	}
}

// TestAtSetUnchecked validates the panicking surface.
func TestAtSetUnchecked(t *testing.T) {
	m := MustNew(t, 2, 3, []int{0, 1, 2, 3, 4, 5})
	require.Equal(t, 5, m.At(1, 2))

	m.Set(0, 1, 9)
	require.Equal(t, 9, m.At(0, 1))
	require.Equal(t, 9, m.Row(0)[1]) // Row is a live view

	m.Row(1)[0] = 7
	require.Equal(t, 7, m.At(1, 0))

	require.Panics(t, func() { m.At(2, 0) })
	require.Panics(t, func() { m.Set(0, -1, 1) })
	require.Panics(t, func() { m.Row(5) })
	require.Panics(t, func() { m.Col(3) })
}

// TestUncheckedPanicValue ensures the panic carries an *IndexError.
func TestUncheckedPanicValue(t *testing.T) {
	m := MustNew(t, 2, 2, []float64{1, 2, 3, 4})
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(err, matrix.ErrIndexOutOfRange))
	}()
	_ = m.At(0, 2)
}

// TestSafeAtSet ensures the checked surface reports the index and the shape.
func TestSafeAtSet(t *testing.T) {
	m := MustNew(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	v, err := m.SafeAt(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	require.NoError(t, m.SafeSet(0, 0, -1))
	require.Equal(t, -1.0, m.At(0, 0))

	_, err = m.SafeAt(2, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	var ie *matrix.IndexError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, matrix.IndexError{Row: 2, Col: 1, Rows: 2, Cols: 3}, *ie)
	require.Equal(t, "matrix: index (2,1) exceeds dimensions (2,3)", err.Error())

	err = m.SafeSet(0, 3, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	// a malformed matrix surfaces a structural error instead of panicking
	bad := matrix.FromRaw(2, 2, []float64{1, 2, 3})
	_, err = bad.SafeAt(1, 1)
	require.ErrorIs(t, err, matrix.ErrStructure)
	require.ErrorIs(t, bad.SafeSet(1, 1, 0), matrix.ErrStructure)
	v, err = bad.SafeAt(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	// offsets of an overflowing shape wrap in int arithmetic and must still be reported
	huge := matrix.FromRaw(hugeDim, hugeDim, []float64{7})
	require.NotPanics(t, func() { _, err = huge.SafeAt(hugeDim-1, hugeDim-1) })
	require.ErrorIs(t, err, matrix.ErrStructure)
	require.NotPanics(t, func() { err = huge.SafeSet(2, 3, 1) })
	require.ErrorIs(t, err, matrix.ErrStructure)
	v, err = huge.SafeAt(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

// TestColAndSetRowSlice covers the column extractor and the row-run writer.
func TestColAndSetRowSlice(t *testing.T) {
	m := MustNew(t, 3, 3, []int{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	})
	col := m.Col(1)
	require.Equal(t, []int{1, 4, 7}, col)

	col[0] = 100 // copy, not a view
	require.Equal(t, 1, m.At(0, 1))

	m.SetRowSlice(2, 1, []int{-7, -8})
	require.Equal(t, []int{6, -7, -8}, m.Row(2))

	require.Panics(t, func() { m.SetRowSlice(0, 2, []int{1, 2}) })

	// Row capacity is clipped, so append never bleeds into the next row.
	r0 := m.Row(0)
	_ = append(r0, 42)
	require.Equal(t, 3, m.At(1, 0))
}

// TestIdentityAndScaled covers the identity builders and scalar multiplication.
func TestIdentityAndScaled(t *testing.T) {
	I := matrix.Identity[float32](3)
	require.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, I.Data())

	E := matrix.Eye[int](2, 3)
	require.Equal(t, []int{1, 0, 0, 0, 1, 0}, E.Data())

	m := MustNew(t, 2, 2, []float64{1, -2, 3, 4})
	like := matrix.IdentityLike(m)
	require.True(t, matrix.Equal(like, matrix.Identity[float64](2)))

	zero := m.Scaled(0)
	require.Equal(t, []float64{0, 0, 0, 0}, zero.Data())
	require.Equal(t, []float64{1, -2, 3, 4}, m.Data(), "Scaled must not mutate")

	m.Scale(2)
	require.Equal(t, []float64{2, -4, 6, 8}, m.Data())

	require.Panics(t, func() { matrix.Zeros[int](-1, 1) })
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := MustNew(t, 2, 2, []float64{1, 0, 0, 2})
	clone := m.Clone()
	clone.Set(0, 0, 3)

	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 3.0, clone.At(0, 0))
}

// TestWellFormed covers Validate/WellFormed on raw constructions.
func TestWellFormed(t *testing.T) {
	require.True(t, matrix.FromRaw(2, 2, []int{1, 2, 3, 4}).WellFormed())

	bad := matrix.FromRaw(2, 3, []int{1, 2, 3, 4})
	require.False(t, bad.WellFormed())
	err := bad.Validate()
	require.ErrorIs(t, err, matrix.ErrStructure)
	require.Contains(t, err.Error(), "len 4 != 2*3")

	// rows*cols wraps to 0 here; an empty buffer must not pass as well-formed
	huge := matrix.FromRaw(hugeDim, hugeDim, []int{})
	require.False(t, huge.WellFormed())
	require.ErrorIs(t, huge.Validate(), matrix.ErrStructure)

	require.False(t, matrix.FromRaw(-1, -1, []int{1}).WellFormed())
	require.False(t, matrix.FromRaw(-2, 0, []int{}).WellFormed())
	require.True(t, matrix.FromRaw(5, 0, []int{}).WellFormed())
	require.False(t, matrix.FromRaw(0, 0, []int{1}).WellFormed())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustNew(t, 2, 2, []float64{1, 2.5, 3, 4})
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())

	bad := matrix.FromRaw(1, 2, []int{7})
	require.Equal(t, "[7, ?]\n", bad.String())
}
