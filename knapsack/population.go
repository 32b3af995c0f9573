// SPDX-License-Identifier: MIT
// Package: genops/knapsack

package knapsack

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/genops/population"
)

// DefaultMaxAttempts bounds rejection sampling per individual.
const DefaultMaxAttempts = 10000

// RandomFeasible draws fair-coin candidates until one is feasible, at most
// maxAttempts times.
//
// Complexity: O(maxAttempts·n) worst case.
func (in *Instance) RandomFeasible(rng *rand.Rand, maxAttempts int) ([]int, error) {
	if in == nil {
		return nil, fmt.Errorf("RandomFeasible: %w", ErrNilInstance)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomFeasible: %w", ErrNilRand)
	}
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("RandomFeasible: maxAttempts=%d: %w", maxAttempts, ErrBadSize)
	}
	x := make([]int, in.Dim())
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var cost float64
		for i := range x {
			x[i] = rng.Intn(2)
			cost += in.Costs[i] * float64(x[i])
		}
		if cost <= in.Capacity {
			return x, nil
		}
	}

	return nil, fmt.Errorf("RandomFeasible: %d attempts: %w", maxAttempts, ErrNoFeasible)
}

// InitialPopulation draws size feasible individuals with DefaultMaxAttempts
// each and evaluates them.
func InitialPopulation(in *Instance, size int, rng *rand.Rand) (population.Snapshot, error) {
	if in == nil {
		return population.Snapshot{}, fmt.Errorf("InitialPopulation: %w", ErrNilInstance)
	}
	if size <= 0 {
		return population.Snapshot{}, fmt.Errorf("InitialPopulation: size=%d: %w", size, ErrBadSize)
	}
	var (
		inds = make([][]int, size)
		qual = make([]float64, size)
		err  error
	)
	for k := 0; k < size; k++ {
		if inds[k], err = in.RandomFeasible(rng, DefaultMaxAttempts); err != nil {
			return population.Snapshot{}, fmt.Errorf("InitialPopulation: individual %d: %w", k, err)
		}
		if qual[k], err = in.Quality(inds[k]); err != nil {
			return population.Snapshot{}, fmt.Errorf("InitialPopulation: %w", err)
		}
	}

	return population.New(inds, qual)
}
