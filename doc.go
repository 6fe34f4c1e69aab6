// Package linalg is a small dense linear algebra toolkit built around two
// engines: LU decomposition with partial pivoting and matrix transposition.
//
// What is inside?
//
//	algebra/   - the Scalar element constraint (signed integers and floats),
//	             identities, magnitude and the swap primitive
//	vector/    - BLAS level-1 helpers over plain slices (Dot, Axpy, ArgMaxAbs)
//	matrix/    - Dense[T] row-major storage, checked and unchecked accessors,
//	             the transpose engine, LU / Solve / Det / Inverse
//	interop/   - conversion to and from gonum's *mat.Dense, gonum cross-checks
//	codec/     - matrix documents in YAML, JSON, CBOR and TOML
//	cmd/linalg - command-line front end over all of the above
//
// Quick start:
//
//	A, _ := matrix.FromSlice([]float64{
//		2, 2, -1,
//		2, -1, 0,
//		1, 3, 1,
//	})
//	P, L, U := matrix.LUOf(A)  // P·A == L·U, A untouched
//	x, _ := matrix.Solve(A, []float64{3, 0, 10})
//	At := matrix.TransposeOf(A)
//
// Singular and rectangular inputs factor without error: a column with no
// usable pivot is skipped and the rank is reported by matrix.Factorize.
//
// Every operation that can observe malformed storage (len(data) != rows*cols)
// has an unchecked form that panics and a checked Safe* form that returns
// matrix.ErrStructure. See the package docs of matrix for details.
package linalg
