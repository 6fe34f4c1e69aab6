// SPDX-License-Identifier: MIT

// Package cli implements the linalg command tree: LU factorization,
// transposition, solving and verification of matrices stored as documents.
package cli

import (
	"context"
	"io"
	"math"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/matrix"
)

// Default flag values.
const (
	DefaultLogLevel  = "warn"
	DefaultVerifyTol = 1e-8
)

// env carries the streams and the parsed persistent flags shared by every subcommand.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	logLevel string
	pivotTol float64
	format   string
	out      string

	log zerolog.Logger
}

// matrixOptions maps the CLI flags onto factorization options.
func (e *env) matrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithPivotTolerance(e.pivotTol),
		matrix.WithLogger(e.log),
	}
}

// NewRootCommand builds the command tree over the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "linalg",
		Short: "dense matrix toolkit: LU decomposition and transposition",
		Long: `
Reads a matrix document {rows, cols, data} in YAML, JSON, CBOR or TOML and
runs the LU or transpose engine on it. The input format is taken from the file
extension unless --format is given; "-" reads stdin.
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: e.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&e.logLevel, "log-level", DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	pf.Float64Var(&e.pivotTol, "pivot-tol", matrix.DefaultPivotTolerance, "pivots with magnitude <= tol count as zero")
	pf.StringVarP(&e.format, "format", "f", "", "input format (yaml, json, cbor, toml); default from the file extension")
	pf.StringVarP(&e.out, "out", "o", "", "write the result as a document to this path instead of printing it")

	root.AddCommand(
		newLUCommand(e),
		newTransposeCommand(e),
		newSolveCommand(e),
		newDetCommand(e),
		newVerifyCommand(e),
	)

	return root
}

// setup validates the persistent flags and builds the logger.
func (e *env) setup(_ *cobra.Command, _ []string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(e.logLevel))
	if err != nil {
		return errors.Wrapf(err, "--log-level %q", e.logLevel)
	}
	if e.pivotTol < 0 || math.IsNaN(e.pivotTol) || math.IsInf(e.pivotTol, 0) {
		return errors.Newf("--pivot-tol must be finite and >= 0, got %v", e.pivotTol)
	}
	e.log = zerolog.New(zerolog.ConsoleWriter{Out: e.stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()

	return nil
}

// Execute runs the command tree with args and returns the process exit code.
// Failures are reported through the logger on stderr.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("linalg failed")

		return 1
	}

	return 0
}
