// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// arithmetic.go: arithmetic recombination for real-valued genomes.
//
// Every blended gene follows
//
//	c1[i] = α·p1[i] + (1−α)·p2[i]
//	c2[i] = α·p2[i] + (1−α)·p1[i]
//
// with α ∈ [0,1]. Genes outside the blended range are copied unchanged.

package crossover

import "math/rand"

// SingleArithmetic blends one gene chosen uniformly from [0, n-1].
func SingleArithmetic(p1, p2 []float64, alpha float64, rng *rand.Rand) ([]float64, []float64, error) {
	if rng == nil {
		return nil, nil, wrapf(MethodSingleArithmetic, ErrNilRand, "rng")
	}
	if err := validateVectorParents(MethodSingleArithmetic, len(p1), len(p2), 1); err != nil {
		return nil, nil, err
	}

	return SingleArithmeticAt(p1, p2, alpha, rng.Intn(len(p1)))
}

// SingleArithmeticAt blends gene k only.
func SingleArithmeticAt(p1, p2 []float64, alpha float64, k int) ([]float64, []float64, error) {
	if err := checkArithmetic(MethodSingleArithmetic, p1, p2, alpha, k); err != nil {
		return nil, nil, err
	}
	c1, c2 := blend(p1, p2, alpha, k, k+1)

	return c1, c2, nil
}

// SimpleArithmetic blends genes k..n-1, with k chosen uniformly from [0, n-1].
func SimpleArithmetic(p1, p2 []float64, alpha float64, rng *rand.Rand) ([]float64, []float64, error) {
	if rng == nil {
		return nil, nil, wrapf(MethodSimpleArithmetic, ErrNilRand, "rng")
	}
	if err := validateVectorParents(MethodSimpleArithmetic, len(p1), len(p2), 1); err != nil {
		return nil, nil, err
	}

	return SimpleArithmeticAt(p1, p2, alpha, rng.Intn(len(p1)))
}

// SimpleArithmeticAt blends genes k..n-1.
func SimpleArithmeticAt(p1, p2 []float64, alpha float64, k int) ([]float64, []float64, error) {
	if err := checkArithmetic(MethodSimpleArithmetic, p1, p2, alpha, k); err != nil {
		return nil, nil, err
	}
	c1, c2 := blend(p1, p2, alpha, k, len(p1))

	return c1, c2, nil
}

// WholeArithmetic blends every gene. It uses no randomness.
func WholeArithmetic(p1, p2 []float64, alpha float64) ([]float64, []float64, error) {
	if err := checkArithmetic(MethodWholeArithmetic, p1, p2, alpha, 0); err != nil {
		return nil, nil, err
	}
	c1, c2 := blend(p1, p2, alpha, 0, len(p1))

	return c1, c2, nil
}

func checkArithmetic(method string, p1, p2 []float64, alpha float64, k int) error {
	if err := validateVectorParents(method, len(p1), len(p2), 1); err != nil {
		return err
	}
	if err := validateAlpha(method, alpha); err != nil {
		return err
	}
	if k < 0 || k >= len(p1) {
		return wrapf(method, ErrBadPosition, "k=%d n=%d", k, len(p1))
	}

	return nil
}

// blend copies the parents and blends the half-open range [from, to).
func blend(p1, p2 []float64, alpha float64, from, to int) ([]float64, []float64) {
	c1 := append([]float64(nil), p1...)
	c2 := append([]float64(nil), p2...)
	for i := from; i < to; i++ {
		c1[i] = alpha*p1[i] + (1-alpha)*p2[i]
		c2[i] = alpha*p2[i] + (1-alpha)*p1[i]
	}

	return c1, c2
}
