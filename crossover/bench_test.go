// Benchmarks for the permutation operators. Inputs are built outside the
// timer from a fixed seed.
package crossover_test

import (
	"testing"

	"github.com/katalvlaran/genops/crossover"
	"github.com/katalvlaran/genops/permutation"
)

const benchN = 256

func benchPair(b *testing.B) ([]int, []int) {
	b.Helper()
	return randomPair(b, benchN, permutation.NewRand(99))
}

func BenchmarkPMX_n256(b *testing.B) {
	p1, p2 := benchPair(b)
	rng := permutation.NewRand(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := crossover.PMX(p1, p2, rng); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOX_n256(b *testing.B) {
	p1, p2 := benchPair(b)
	rng := permutation.NewRand(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := crossover.OX(p1, p2, rng); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCycle_n256(b *testing.B) {
	p1, p2 := benchPair(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := crossover.Cycle(p1, p2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEdge_n256(b *testing.B) {
	p1, p2 := benchPair(b)
	rng := permutation.NewRand(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crossover.Edge(p1, p2, benchN, rng); err != nil {
			b.Fatal(err)
		}
	}
}
