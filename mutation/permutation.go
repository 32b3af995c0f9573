// SPDX-License-Identifier: MIT
// Package: genops/mutation
//
// permutation.go: order-based mutations for permutation genomes.

package mutation

import (
	"math/rand"

	"github.com/katalvlaran/genops/crossover"
	"github.com/katalvlaran/genops/permutation"
)

// Inversion reverses a random segment, drawn with crossover.RandomCut.
//
//	InversionAt([4 3 6 5 7 2 1 8], {2,6}) = [4 3 1 2 7 5 6 8]
func Inversion(p []int, rng *rand.Rand) ([]int, error) {
	cut, err := randomCut("Inversion", p, rng)
	if err != nil {
		return nil, err
	}

	return InversionAt(p, cut)
}

// InversionAt reverses p[Lo..Hi] in a copy of p.
//
// Complexity: O(n).
func InversionAt(p []int, cut crossover.Cut) ([]int, error) {
	if err := checkCut("Inversion", p, cut); err != nil {
		return nil, err
	}
	out := permutation.Clone(p)
	for i, j := cut.Lo, cut.Hi; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// Swap exchanges two distinct random positions.
//
//	SwapAt([4 3 6 5 7 2 1 8], 2, 6) = [4 3 1 5 7 2 6 8]
func Swap(p []int, rng *rand.Rand) ([]int, error) {
	cut, err := randomCut("Swap", p, rng)
	if err != nil {
		return nil, err
	}

	return SwapAt(p, cut.Lo, cut.Hi)
}

// SwapAt exchanges positions i and j in a copy of p.
func SwapAt(p []int, i, j int) ([]int, error) {
	if len(p) < 2 {
		return nil, wrapf("Swap", ErrTooShort, "n=%d", len(p))
	}
	if i < 0 || j < 0 || i >= len(p) || j >= len(p) {
		return nil, wrapf("Swap", ErrBadPosition, "i=%d j=%d n=%d", i, j, len(p))
	}
	out := permutation.Clone(p)
	out[i], out[j] = out[j], out[i]

	return out, nil
}

// Insertion moves a random gene next to another, drawn with crossover.RandomCut.
//
//	InsertionAt([4 3 6 5 7 2 1 8], {2,6}) = [4 3 6 1 5 7 2 8]
func Insertion(p []int, rng *rand.Rand) ([]int, error) {
	cut, err := randomCut("Insertion", p, rng)
	if err != nil {
		return nil, err
	}

	return InsertionAt(p, cut)
}

// InsertionAt moves p[Hi] to position Lo+1 and shifts p[Lo+1..Hi-1] one step
// right. Genes outside the segment are untouched.
//
// Complexity: O(n).
func InsertionAt(p []int, cut crossover.Cut) ([]int, error) {
	if err := checkCut("Insertion", p, cut); err != nil {
		return nil, err
	}
	out := permutation.Clone(p)
	moved := p[cut.Hi]
	copy(out[cut.Lo+2:cut.Hi+1], p[cut.Lo+1:cut.Hi])
	out[cut.Lo+1] = moved

	return out, nil
}

func randomCut(method string, p []int, rng *rand.Rand) (crossover.Cut, error) {
	if rng == nil {
		return crossover.Cut{}, wrapf(method, ErrNilRand, "rng")
	}
	if len(p) < 2 {
		return crossover.Cut{}, wrapf(method, ErrTooShort, "n=%d", len(p))
	}
	cut, err := crossover.RandomCut(len(p), rng)
	if err != nil {
		return crossover.Cut{}, wrapf(method, ErrBadPosition, "%v", err)
	}

	return cut, nil
}

func checkCut(method string, p []int, cut crossover.Cut) error {
	if len(p) < 2 {
		return wrapf(method, ErrTooShort, "n=%d", len(p))
	}
	if err := cut.Validate(len(p)); err != nil {
		return wrapf(method, ErrBadPosition, "%v", err)
	}

	return nil
}
