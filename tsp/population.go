// SPDX-License-Identifier: MIT
// Package: genops/tsp

package tsp

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/genops/permutation"
	"github.com/katalvlaran/genops/population"
)

// InitialPopulation validates dist, draws size random tours and evaluates them.
func InitialPopulation(dist mat.Matrix, size int, rng *rand.Rand) (population.Snapshot, error) {
	if rng == nil {
		return population.Snapshot{}, fmt.Errorf("InitialPopulation: %w", ErrNilRand)
	}
	if size <= 0 {
		return population.Snapshot{}, fmt.Errorf("InitialPopulation: size=%d: %w", size, ErrBadSize)
	}
	n, err := ValidateCostMatrix(dist)
	if err != nil {
		return population.Snapshot{}, fmt.Errorf("InitialPopulation: %w", err)
	}

	var (
		inds = make([][]int, size)
		qual = make([]float64, size)
	)
	for k := range inds {
		if inds[k], err = permutation.Random(n, rng); err != nil {
			return population.Snapshot{}, fmt.Errorf("InitialPopulation: %w", err)
		}
		if qual[k], err = Quality(dist, inds[k]); err != nil {
			return population.Snapshot{}, fmt.Errorf("InitialPopulation: individual %d: %w", k, err)
		}
	}

	return population.New(inds, qual)
}
