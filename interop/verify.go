// SPDX-License-Identifier: MIT

package interop

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// DefaultDetRelTol bounds the relative disagreement accepted by Verify
// between our determinant and gonum's.
const DefaultDetRelTol = 1e-9

// Residual returns ‖P·A − L·U‖_F computed with gonum.
// Errors: conversion errors and gonum shape panics surfaced as
// matrix.ErrDimensionMismatch.
func Residual(A, P, L, U *matrix.Dense[float64]) (res float64, err error) {
	ga, err := ToGonum(A)
	if err != nil {
		return 0, errors.Wrap(err, "Residual: A")
	}
	gp, err := ToGonum(P)
	if err != nil {
		return 0, errors.Wrap(err, "Residual: P")
	}
	gl, err := ToGonum(L)
	if err != nil {
		return 0, errors.Wrap(err, "Residual: L")
	}
	gu, err := ToGonum(U)
	if err != nil {
		return 0, errors.Wrap(err, "Residual: U")
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(matrix.ErrDimensionMismatch, "Residual: %v", r)
		}
	}()

	var pa, lu, diff mat.Dense
	pa.Mul(gp, ga)
	lu.Mul(gl, gu)
	diff.Sub(&pa, &lu)

	return mat.Norm(&diff, 2), nil
}

// Report summarizes a cross-check of our factorization against gonum.
type Report struct {
	Rows, Cols int
	Rank       int
	Residual   float64 // ‖P·A − L·U‖_F
	// Det and RefDet are only set for square input.
	Det, RefDet float64
	DetAgrees   bool
}

// Verify factors A (borrowed) with matrix.Factorize and checks the result
// against gonum: the reconstruction residual for any shape and, for square A,
// the determinant against mat.Det within DefaultDetRelTol (relative to the
// larger magnitude, absolute below 1).
func Verify(A *matrix.Dense[float64], opts ...matrix.Option) (Report, error) {
	if err := matrix.ValidateWellFormed(A); err != nil {
		return Report{}, errors.Wrap(err, "Verify")
	}
	f := matrix.Factorize(A, opts...)
	rep := Report{Rows: A.Rows(), Cols: A.Cols(), Rank: f.Rank}

	var err error
	rep.Residual, err = Residual(A, f.P, f.L, f.U)
	if err != nil {
		return rep, errors.Wrap(err, "Verify")
	}
	if A.Rows() != A.Cols() {
		return rep, nil
	}

	if rep.Det, err = f.Det(); err != nil {
		return rep, errors.Wrap(err, "Verify")
	}
	ga, err := ToGonum(A)
	if err != nil {
		return rep, errors.Wrap(err, "Verify")
	}
	rep.RefDet = mat.Det(ga)
	scale := math.Max(1, math.Max(math.Abs(rep.Det), math.Abs(rep.RefDet)))
	rep.DetAgrees = math.Abs(rep.Det-rep.RefDet) <= DefaultDetRelTol*scale

	return rep, nil
}
