// SPDX-License-Identifier: MIT
// Package: genops/nqueens

package nqueens

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/genops/permutation"
	"github.com/katalvlaran/genops/population"
)

// MaxQuality returns n(n-1)/2, the quality of a solved board.
func MaxQuality(n int) int { return n * (n - 1) / 2 }

// Attacks counts diagonal attack pairs. perm must be a permutation of 0..n-1.
//
// Complexity: O(n²).
func Attacks(perm []int) (int, error) {
	if err := permutation.Validate(perm, len(perm)); err != nil {
		return 0, fmt.Errorf("Attacks: %w", err)
	}
	var count int
	for i := 0; i < len(perm)-1; i++ {
		for j := i + 1; j < len(perm); j++ {
			if j-i == abs(perm[i]-perm[j]) {
				count++
			}
		}
	}

	return count, nil
}

// Quality returns MaxQuality(n) - Attacks(perm).
func Quality(perm []int) (int, error) {
	a, err := Attacks(perm)
	if err != nil {
		return 0, fmt.Errorf("Quality: %w", err)
	}

	return MaxQuality(len(perm)) - a, nil
}

// IsSolution reports whether no two queens attack each other.
func IsSolution(perm []int) (bool, error) {
	a, err := Attacks(perm)
	if err != nil {
		return false, err
	}

	return a == 0, nil
}

// InitialPopulation draws size random boards of n queens and evaluates them.
func InitialPopulation(n, size int, rng *rand.Rand) (population.Snapshot, error) {
	if rng == nil {
		return population.Snapshot{}, fmt.Errorf("InitialPopulation: %w", ErrNilRand)
	}
	if n <= 0 || size <= 0 {
		return population.Snapshot{}, fmt.Errorf("InitialPopulation: n=%d size=%d: %w", n, size, ErrBadSize)
	}
	var (
		inds = make([][]int, size)
		qual = make([]float64, size)
	)
	for k := range inds {
		p, err := permutation.Random(n, rng)
		if err != nil {
			return population.Snapshot{}, fmt.Errorf("InitialPopulation: %w", err)
		}
		q, err := Quality(p)
		if err != nil {
			return population.Snapshot{}, fmt.Errorf("InitialPopulation: %w", err)
		}
		inds[k], qual[k] = p, float64(q)
	}

	return population.New(inds, qual)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
