// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// pmx.go: Partially Mapped Crossover.

package crossover

import (
	"math/rand"

	"github.com/katalvlaran/genops/permutation"
)

// PMX draws a random cut with RandomCut and applies PMXAt.
//
// Errors: ErrNilRand, ErrLengthMismatch, ErrTooShort, ErrNotPermutation,
// ErrInvariantBroken.
func PMX(p1, p2 []int, rng *rand.Rand) ([]int, []int, error) {
	if rng == nil {
		return nil, nil, wrapf(MethodPMX, ErrNilRand, "rng")
	}
	if err := validatePermParents(MethodPMX, p1, p2, 2); err != nil {
		return nil, nil, err
	}
	cut, err := RandomCut(len(p1), rng)
	if err != nil {
		return nil, nil, wrapf(MethodPMX, err, "cut")
	}

	return pmxPair(p1, p2, cut)
}

// PMXAt runs Partially Mapped Crossover with a fixed cut.
//
// Child 1 keeps p1[Lo..Hi] in place. Every value v = p2[i] of the same span
// that is not already in the child is placed by the conflict chase:
//
//	pos := index of p1[i] in p2
//	while child[pos] is filled: pos = index of p1[pos] in p2
//	child[pos] = v
//
// Remaining empty positions take p2's value at that position. Child 2 is the
// same procedure with the parents swapped. With Lo=0 and Hi=n-1 the children
// equal their parents.
//
// Complexity: O(n) expected time, O(n) space.
func PMXAt(p1, p2 []int, cut Cut) ([]int, []int, error) {
	if err := validatePermParents(MethodPMX, p1, p2, 2); err != nil {
		return nil, nil, err
	}
	if err := cut.Validate(len(p1)); err != nil {
		return nil, nil, wrapf(MethodPMX, err, "cut")
	}

	return pmxPair(p1, p2, cut)
}

func pmxPair(p1, p2 []int, cut Cut) ([]int, []int, error) {
	c1, err := pmxChild(p1, p2, cut)
	if err != nil {
		return nil, nil, err
	}
	c2, err := pmxChild(p2, p1, cut)
	if err != nil {
		return nil, nil, err
	}
	if err = verifyChildren(MethodPMX, p1, c1, c2); err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// pmxChild builds one child keeping donor[Lo..Hi] and mapping other's values.
// filled is the slot marker; placed is the value marker.
func pmxChild(donor, other []int, cut Cut) ([]int, error) {
	var n = len(donor)
	child := make([]int, n)
	filled := make([]bool, n)
	placed := make(map[int]struct{}, n)
	posInOther := permutation.IndexOf(other)

	var i int
	for i = cut.Lo; i <= cut.Hi; i++ {
		child[i] = donor[i]
		filled[i] = true
		placed[donor[i]] = struct{}{}
	}

	var (
		v     int
		pos   int
		next  int
		steps int
		ok    bool
	)
	for i = cut.Lo; i <= cut.Hi; i++ {
		v = other[i]
		if _, ok = placed[v]; ok {
			continue
		}
		if pos, ok = posInOther[donor[i]]; !ok {
			return nil, wrapf(MethodPMX, ErrInvariantBroken, "value %d missing from mapping", donor[i])
		}
		// Each hop lands on a distinct segment position, so n hops is a hard ceiling.
		for steps = 0; filled[pos]; steps++ {
			if steps >= n {
				return nil, wrapf(MethodPMX, ErrInvariantBroken, "conflict chase for %d did not terminate", v)
			}
			if next, ok = posInOther[donor[pos]]; !ok {
				return nil, wrapf(MethodPMX, ErrInvariantBroken, "value %d missing from mapping", donor[pos])
			}
			pos = next
		}
		child[pos] = v
		filled[pos] = true
		placed[v] = struct{}{}
	}

	for i = 0; i < n; i++ {
		if !filled[i] {
			child[i] = other[i]
			filled[i] = true
		}
	}

	return child, nil
}
