// SPDX-License-Identifier: MIT
// Package: genops/tsp

package tsp_test

import (
	"testing"

	"github.com/katalvlaran/genops/permutation"
	"github.com/katalvlaran/genops/tsp"
)

func BenchmarkTourLength(b *testing.B) {
	dist := circle(b, 200)
	p, err := permutation.Random(200, permutation.NewRand(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TourLength(dist, p); err != nil {
			b.Fatal(err)
		}
	}
}
