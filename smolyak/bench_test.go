// SPDX-License-Identifier: MIT
// Benchmarks for assembly and evaluation.
package smolyak_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsegrid/smolyak"
	"github.com/katalvlaran/sparsegrid/univariate"
)

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkV []float64
	sinkD int
)

func BenchmarkBasisMatrix(b *testing.B) {
	b.ReportAllocs()
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("N=3/L=4/workers=%d", workers), func(b *testing.B) {
			basis := MustBasis(b, univariate.NewChebyshev(), smolyak.Isotropic(3), 4, smolyak.WithWorkers(workers))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a, _, err := smolyak.BasisMatrix(basis)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = a.Rows()
			}
		})
	}
}

func BenchmarkDegreesOfFreedom(b *testing.B) {
	b.ReportAllocs()
	basis := MustBasis(b, univariate.NewChebyshev(), smolyak.Isotropic(8), 6)
	for i := 0; i < b.N; i++ {
		d, err := smolyak.DegreesOfFreedom(basis)
		if err != nil {
			b.Fatal(err)
		}
		sinkD = d
	}
}

func BenchmarkInterpolate(b *testing.B) {
	b.ReportAllocs()
	basis := MustBasis(b, univariate.NewLeja(), smolyak.Isotropic(3), 4)
	d, err := smolyak.DegreesOfFreedom(basis)
	if err != nil {
		b.Fatal(err)
	}
	c := randomVec(d, 1)
	pt := []float64{0.1, -0.4, 0.7}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := smolyak.Interpolate(basis, c, pt)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = v
	}
}

func BenchmarkEvaluateBatch(b *testing.B) {
	b.ReportAllocs()
	pts := randomPoints(256, 3, -1, 1, 2)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			basis := MustBasis(b, univariate.NewLeja(), smolyak.Isotropic(3), 4, smolyak.WithWorkers(workers))
			d, err := smolyak.DegreesOfFreedom(basis)
			if err != nil {
				b.Fatal(err)
			}
			c := randomVec(d, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := smolyak.EvaluateBatch(basis, c, pts)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
