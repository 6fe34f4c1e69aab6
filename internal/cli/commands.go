// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/interop"
	"github.com/katalvlaran/linalg/matrix"
)

// ErrVerifyFailed is returned by verify when a cross-check exceeds its tolerance.
var ErrVerifyFailed = errors.New("linalg: verification failed")

func newLUCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "lu FILE",
		Short: "factor a matrix into P, L, U with P·A = L·U",
		Long: `
Runs LU decomposition with partial pivoting. Columns without a nonzero pivot
are skipped, so singular and rectangular matrices factor without error.
With --out, the factors are written to <out>.P.<ext>, <out>.L.<ext> and <out>.U.<ext>.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := e.readMatrix(args[0])
			if err != nil {
				return err
			}
			f := matrix.Factorize(A, e.matrixOptions()...)
			e.log.Info().Int("rows", A.Rows()).Int("cols", A.Cols()).Int("rank", f.Rank).Msg("lu: factored")

			if e.out != "" {
				for _, part := range []struct {
					tag string
					m   *matrix.Dense[float64]
				}{{"P", f.P}, {"L", f.L}, {"U", f.U}} {
					if err = e.writeMatrix(suffixed(e.out, part.tag), part.m); err != nil {
						return err
					}
				}

				return nil
			}

			e.printMatrix("P", f.P)
			e.printMatrix("L", f.L)
			e.printMatrix("U", f.U)
			fmt.Fprintf(e.stdout, "perm = %v\nrank = %d\n", f.Perm, f.Rank)

			return nil
		},
	}
}

func newTransposeCommand(e *env) *cobra.Command {
	var safe bool
	cmd := &cobra.Command{
		Use:   "transpose FILE",
		Short: "transpose a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var m *matrix.Dense[float64]
			if safe {
				// the document is adopted as-is so the checked transpose reports its shape
				doc, err := e.readDocument(args[0])
				if err != nil {
					return err
				}
				if m, err = matrix.SafeTranspose(matrix.FromRaw(doc.Rows, doc.Cols, doc.Data)); err != nil {
					return errors.Wrapf(err, "transpose %s", args[0])
				}
			} else {
				in, err := e.readMatrix(args[0])
				if err != nil {
					return err
				}
				m = matrix.Transpose(in)
			}
			e.log.Debug().Bool("safe", safe).Int("rows", m.Rows()).Int("cols", m.Cols()).Msg("transposed")

			if e.out != "" {
				return e.writeMatrix(e.out, m)
			}
			e.printMatrix("T", m)

			return nil
		},
	}
	cmd.Flags().BoolVar(&safe, "safe", false, "skip shape validation at load and let the checked transpose report a storage/shape mismatch")

	return cmd
}

func newSolveCommand(e *env) *cobra.Command {
	var rhs []float64
	cmd := &cobra.Command{
		Use:   "solve FILE --rhs b1,b2,...",
		Short: "solve A·x = b through the LU factors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := e.readMatrix(args[0])
			if err != nil {
				return err
			}
			x, err := matrix.Solve(A, rhs, e.matrixOptions()...)
			if err != nil {
				return err
			}

			if e.out != "" {
				col, err := matrix.New(len(x), 1, x)
				if err != nil {
					return err
				}

				return e.writeMatrix(e.out, col)
			}
			fmt.Fprintf(e.stdout, "x = %s\n", formatVector(x))

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&rhs, "rhs", nil, "right-hand side vector b")
	_ = cmd.MarkFlagRequired("rhs")

	return cmd
}

func newDetCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "print the determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := e.readMatrix(args[0])
			if err != nil {
				return err
			}
			d, err := matrix.Det(A, e.matrixOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "det = %.*g\n", printPrecision, d)

			return nil
		},
	}
}

func newVerifyCommand(e *env) *cobra.Command {
	var tol float64
	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "cross-check the LU factorization against gonum",
		Long: `
Factors the matrix, measures the reconstruction residual ||P·A - L·U||_F with
gonum and, for square input, compares the determinant with gonum's mat.Det.
Exits non-zero when the residual exceeds --tol or the determinants disagree.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := e.readMatrix(args[0])
			if err != nil {
				return err
			}
			rep, err := interop.Verify(A, e.matrixOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "shape = %dx%d\nrank = %d\nresidual = %g\n", rep.Rows, rep.Cols, rep.Rank, rep.Residual)
			square := rep.Rows == rep.Cols
			if square {
				fmt.Fprintf(e.stdout, "det = %g\ngonum det = %g\n", rep.Det, rep.RefDet)
			}

			switch {
			case rep.Residual > tol:
				return errors.Wrapf(ErrVerifyFailed, "residual %g > %g", rep.Residual, tol)
			case square && !rep.DetAgrees:
				return errors.Wrapf(ErrVerifyFailed, "det %g != gonum %g", rep.Det, rep.RefDet)
			}
			e.log.Info().Float64("residual", rep.Residual).Msg("verify: ok")
			fmt.Fprintln(e.stdout, "ok")

			return nil
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", DefaultVerifyTol, "maximum accepted reconstruction residual")

	return cmd
}
