// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// vector.go: encoding-agnostic operators for binary, integer and real genomes.

package crossover

import "math/rand"

// OnePoint draws a crossover point uniformly from [1, n-1] and applies
// OnePointAt.
func OnePoint[T any](p1, p2 []T, rng *rand.Rand) ([]T, []T, error) {
	if rng == nil {
		return nil, nil, wrapf(MethodOnePoint, ErrNilRand, "rng")
	}
	if err := validateVectorParents(MethodOnePoint, len(p1), len(p2), 2); err != nil {
		return nil, nil, err
	}

	c1, c2 := onePoint(p1, p2, 1+rng.Intn(len(p1)-1))

	return c1, c2, nil
}

// OnePointAt exchanges the tails starting at point: child 1 is
// p1[:point] ++ p2[point:], child 2 is p2[:point] ++ p1[point:].
// point must lie in [1, n-1] so that both parents contribute.
//
// Complexity: O(n).
func OnePointAt[T any](p1, p2 []T, point int) ([]T, []T, error) {
	if err := validateVectorParents(MethodOnePoint, len(p1), len(p2), 2); err != nil {
		return nil, nil, err
	}
	if point < 1 || point > len(p1)-1 {
		return nil, nil, wrapf(MethodOnePoint, ErrBadPosition, "point=%d n=%d", point, len(p1))
	}
	c1, c2 := onePoint(p1, p2, point)

	return c1, c2, nil
}

func onePoint[T any](p1, p2 []T, point int) ([]T, []T) {
	var n = len(p1)
	c1 := make([]T, n)
	c2 := make([]T, n)
	copy(c1, p1[:point])
	copy(c1[point:], p2[point:])
	copy(c2, p2[:point])
	copy(c2[point:], p1[point:])

	return c1, c2
}

// Uniform flips a fair coin per gene: heads keeps the genes in place, tails
// swaps them between the children.
//
// Complexity: O(n).
func Uniform[T any](p1, p2 []T, rng *rand.Rand) ([]T, []T, error) {
	if rng == nil {
		return nil, nil, wrapf(MethodUniform, ErrNilRand, "rng")
	}
	if err := validateVectorParents(MethodUniform, len(p1), len(p2), 1); err != nil {
		return nil, nil, err
	}

	var n = len(p1)
	c1 := make([]T, n)
	c2 := make([]T, n)
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			c1[i], c2[i] = p1[i], p2[i]
		} else {
			c1[i], c2[i] = p2[i], p1[i]
		}
	}

	return c1, c2, nil
}
