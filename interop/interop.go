// SPDX-License-Identifier: MIT

// Package interop bridges matrix.Dense[float64] and gonum's *mat.Dense.
//
// Purpose:
//   - Copy matrices across the two representations (both are row-major, so a
//     conversion is one flat copy).
//   - Cross-check our LU results against gonum as an independent reference:
//     reconstruction residual ‖P·A − L·U‖_F and the determinant.
//
// Conversions never share storage: mutating one side never affects the other.
package interop

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// ErrEmpty is returned when a zero-sized matrix is converted; gonum does not
// represent empty dense matrices.
var ErrEmpty = errors.New("interop: gonum cannot hold a zero-sized matrix")

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix / ErrStructure from matrix validation, ErrEmpty.
func ToGonum(m *matrix.Dense[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateWellFormed(m); err != nil {
		return nil, errors.Wrap(err, "ToGonum")
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, errors.Wrapf(ErrEmpty, "ToGonum(%dx%d)", r, c)
	}
	data := make([]float64, r*c)
	copy(data, m.Data())

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any gonum matrix into a new matrix.Dense[float64].
// *mat.Dense with a contiguous stride is copied row-block at once;
// other implementations go through At.
func FromGonum(g mat.Matrix) *matrix.Dense[float64] {
	r, c := g.Dims()
	out := matrix.Zeros[float64](r, c)
	if d, ok := g.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.Row(i), raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return out
	}
	var i, j int
	for i = 0; i < r; i++ {
		row := out.Row(i)
		for j = 0; j < c; j++ {
			row[j] = g.At(i, j)
		}
	}

	return out
}
