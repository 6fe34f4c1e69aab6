// Package matrix_test provides benchmarks for the transpose and LU kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkV []float64
	sinkF float64
)

func BenchmarkTransposeInPlace_Square(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				A.TransposeInPlace()
			}
			sinkM = A
		})
	}
}

func BenchmarkTransposeOf_Rectangular(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n+8, 7) // rectangular
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = matrix.TransposeOf(A)
			}
		})
	}
}

func BenchmarkLUOf(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _, sinkM = matrix.LUOf(A)
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 42)
			f := matrix.Factorize(A)
			rhs := A.Col(0)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := f.Solve(rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
