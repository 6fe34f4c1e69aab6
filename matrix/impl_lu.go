// SPDX-License-Identifier: MIT

// Package matrix - LU decomposition with partial pivoting.
//
// Purpose:
//   - Factor A into (P, L, U) with P·A = L·U, P a permutation matrix,
//     L unit-lower-triangular and U upper-triangular.
//   - Keep going on singular input: a column whose remaining entries are all
//     zero is skipped and the rank cursor does not advance.
//
// Surfaces:
//   - LU(a)        consumes a (it is the working copy and ends up reduced).
//   - LUOf(a)      borrows a: clones, then delegates to LU.
//   - Factorize(a) borrows a and also returns the permutation and rank,
//     used by Solve/Det/Inverse (impl_lu_solve.go).

package matrix

import (
	"math"

	"github.com/katalvlaran/linalg/algebra"
	"github.com/katalvlaran/linalg/vector"
)

// LUFactors is the result of a pivoted LU decomposition.
// P, L and U are never mutated by this package after the call returns.
type LUFactors[T algebra.Scalar] struct {
	P, L, U *Dense[T]
	// Perm maps factored row i to source row Perm[i]: (P·A)[i] = A[Perm[i]].
	Perm []int
	// Rank is the number of pivoted (nonzero) columns.
	Rank int
	// swaps counts effective row exchanges (piv != r); its parity is det(P).
	swaps int
}

// LU decomposes a into (P, L, U) such that P·a == L·U up to rounding.
// MAIN DESCRIPTION:
//   - Pivoted Gaussian elimination with an explicit rank cursor r, separate
//     from the column index k, so rank-deficient columns are skipped without
//     corrupting the triangular factors.
//
// Implementation:
//   - Stage 1: L = I, U = zeros(rows, cols), perm = [0..rows), r = 0.
//   - Stage 2: for each column k: pick the row with the greatest |a[row][k]|
//     (first occurrence wins); when that entry is nonzero:
//     swap rows r/piv of a over columns k.., of L over columns 0..r-1, and in perm;
//     L[row][r] = a[row][k] / a[r][k] for rows below r;
//     U[r][k..] = a[r][k..];
//     a[row][k..] -= L[row][r]·U[r][k..] for rows r..;
//     r++.
//   - Stage 3: materialize P from perm: P[i][perm[i]] = 1.
//
// Behavior highlights:
//   - Consumes a: its storage is the working copy and is left reduced (all zeros
//     on every pivoted column). Use LUOf to keep the input.
//   - No error path: singular columns degrade via the skip rule.
//   - Rectangular r×c input yields P r×r, L r×r, U r×c; elimination stops once
//     every row has been pivoted. Square input is the classic case.
//
// Inputs:
//   - a: well-formed matrix. Panics with ErrStructure otherwise.
//   - opts: WithPivotTolerance, WithLogger.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r² + r·c).
//
// Notes:
//   - Integer element types truncate the multipliers; use a float type when
//     P·A == L·U must hold.
func LU[T algebra.Scalar](a *Dense[T], opts ...Option) (P, L, U *Dense[T]) {
	f := decompose(a, gatherOptions(opts...))

	return f.P, f.L, f.U
}

// LUOf is the borrowing form of LU: a is cloned first and never modified.
func LUOf[T algebra.Scalar](a *Dense[T], opts ...Option) (P, L, U *Dense[T]) {
	mustWellFormed(opLU, a)

	return LU(a.Clone(), opts...)
}

// Factorize returns the full factorization of a (borrowed, not modified),
// including the row permutation and rank.
func Factorize[T algebra.Scalar](a *Dense[T], opts ...Option) *LUFactors[T] {
	mustWellFormed(opLU, a)

	return decompose(a.Clone(), gatherOptions(opts...))
}

// decompose runs the elimination on a (destroyed) and returns all factors.
func decompose[T algebra.Scalar](a *Dense[T], o Options) *LUFactors[T] {
	mustWellFormed(opLU, a)

	rows, cols := a.r, a.c
	L := Identity[T](rows)
	U := Zeros[T](rows, cols)
	perm := identityPerm(rows)

	var (
		r, k, row, piv, swaps int
		mag, pivot            T
	)
	for k = 0; k < cols && r < rows; k++ {
		// Rows above r are already reduced to zero in every column >= k,
		// so scanning from r finds the same first maximum as a full scan.
		piv, mag = vector.ArgMaxAbs(a.Col(k), r)
		if negligible(mag, o.pivotTol) {
			o.logger.Debug().Int("col", k).Int("rank", r).Msg("lu: zero pivot column skipped")
			continue
		}

		if piv != r {
			a.swapRowRange(r, piv, k, cols)
			L.swapRowRange(r, piv, 0, r)
			algebra.SwapAt(perm, piv, r)
			swaps++
			o.logger.Debug().Int("col", k).Int("row", r).Int("pivot_row", piv).Msg("lu: rows swapped")
		}

		// Multipliers below the pivot.
		pivot = a.data[r*cols+k]
		for row = r + 1; row < rows; row++ {
			L.data[row*rows+r] = a.data[row*cols+k] / pivot
		}

		// Pivot row becomes row r of U.
		U.SetRowSlice(r, k, a.Row(r)[k:])

		// Eliminate; the pivot row itself (L[r][r] == 1) is reduced to zero.
		uTail := U.Row(r)[k:]
		for row = r; row < rows; row++ {
			vector.Axpy(-L.data[row*rows+r], uTail, a.Row(row)[k:])
		}
		r++
	}

	return &LUFactors[T]{
		P:     permutationMatrix[T](perm),
		L:     L,
		U:     U,
		Perm:  perm,
		Rank:  r,
		swaps: swaps,
	}
}

// negligible reports whether a pivot magnitude counts as zero.
// mag may be negative when it comes from the most negative signed integer.
func negligible[T algebra.Scalar](mag T, tol float64) bool {
	if algebra.IsZero(mag) {
		return true
	}

	return tol > 0 && math.Abs(algebra.Float64(mag)) <= tol
}

// identityPerm returns [0, 1, ..., n-1].
func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// permutationMatrix materializes perm into an n×n 0/1 matrix whose row i has
// a single One at column perm[i].
func permutationMatrix[T algebra.Scalar](perm []int) *Dense[T] {
	n := len(perm)
	P := Zeros[T](n, n)
	one := algebra.One[T]()
	for i, j := range perm {
		P.data[i*n+j] = one
	}

	return P
}
