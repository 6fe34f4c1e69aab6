// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorization kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Zero options reproduce the textbook algorithm exactly (exact-zero pivot test, silent).
package matrix

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the magnitude at or below which a pivot counts as zero.
	// 0 means only an exact zero pivot skips the column.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	pivotTol float64        // >= 0; DefaultPivotTolerance
	logger   zerolog.Logger // zerolog.Nop() unless WithLogger
}

// WithPivotTolerance treats a pivot with |pivot| <= tol as zero, so its column
// is skipped like an exactly-zero column.
// Panics when tol is negative, NaN or infinite (programmer error).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithLogger routes factorization diagnostics (row swaps, skipped columns)
// to l at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters over the defaults, in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol: DefaultPivotTolerance,
		logger:   zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
