// SPDX-License-Identifier: MIT
// Package: genops/knapsack

package knapsack

import "errors"

var (
	// ErrDimensionMismatch indicates vectors of different lengths.
	ErrDimensionMismatch = errors.New("knapsack: dimension mismatch")

	// ErrNegative indicates a negative or non-finite cost or value.
	ErrNegative = errors.New("knapsack: negative or non-finite entry")

	// ErrBadCapacity indicates a capacity that is not a positive finite number.
	ErrBadCapacity = errors.New("knapsack: capacity must be positive")

	// ErrNotBinary indicates a candidate gene outside {0, 1}.
	ErrNotBinary = errors.New("knapsack: candidate is not binary")

	// ErrNoFeasible indicates rejection sampling ran out of attempts.
	ErrNoFeasible = errors.New("knapsack: no feasible candidate found")

	// ErrBadSize indicates a non-positive population size or attempt budget.
	ErrBadSize = errors.New("knapsack: size must be positive")

	// ErrNilInstance indicates a nil *Instance receiver or argument.
	ErrNilInstance = errors.New("knapsack: instance is nil")

	// ErrNilRand indicates a nil *rand.Rand.
	ErrNilRand = errors.New("knapsack: rng is required")
)
