// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// ox.go: Order Crossover.

package crossover

import "math/rand"

// OX draws a random cut with RandomCut and applies OXAt.
//
// Errors: ErrNilRand, ErrLengthMismatch, ErrTooShort, ErrNotPermutation,
// ErrInvariantBroken.
func OX(p1, p2 []int, rng *rand.Rand) ([]int, []int, error) {
	if rng == nil {
		return nil, nil, wrapf(MethodOX, ErrNilRand, "rng")
	}
	if err := validatePermParents(MethodOX, p1, p2, 2); err != nil {
		return nil, nil, err
	}
	cut, err := RandomCut(len(p1), rng)
	if err != nil {
		return nil, nil, wrapf(MethodOX, err, "cut")
	}

	return oxPair(p1, p2, cut)
}

// OXAt runs Order Crossover with a fixed cut.
//
// Child 1 keeps p1[Lo..Hi] in place. A write cursor starts at (Hi+1) mod n and a
// read cursor at Hi in p2; both wrap at n. Each value read from p2 that is not
// yet in the child is written at the write cursor, which then advances; the read
// cursor advances on every step. The walk stops when the child is full. Child 2
// swaps the parents.
//
// Complexity: O(n) expected time, O(n) space.
func OXAt(p1, p2 []int, cut Cut) ([]int, []int, error) {
	if err := validatePermParents(MethodOX, p1, p2, 2); err != nil {
		return nil, nil, err
	}
	if err := cut.Validate(len(p1)); err != nil {
		return nil, nil, wrapf(MethodOX, err, "cut")
	}

	return oxPair(p1, p2, cut)
}

func oxPair(p1, p2 []int, cut Cut) ([]int, []int, error) {
	c1, err := oxChild(p1, p2, cut)
	if err != nil {
		return nil, nil, err
	}
	c2, err := oxChild(p2, p1, cut)
	if err != nil {
		return nil, nil, err
	}
	if err = verifyChildren(MethodOX, p1, c1, c2); err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

func oxChild(donor, other []int, cut Cut) ([]int, error) {
	var n = len(donor)
	child := make([]int, n)
	filled := make([]bool, n)
	placed := make(map[int]struct{}, n)

	var i int
	for i = cut.Lo; i <= cut.Hi; i++ {
		child[i] = donor[i]
		filled[i] = true
		placed[donor[i]] = struct{}{}
	}

	var (
		empty = n - cut.Len()
		w     = (cut.Hi + 1) % n
		r     = cut.Hi
		reads int
		v     int
		ok    bool
	)
	for empty > 0 {
		// One full lap over other yields every missing value exactly once.
		if reads >= n {
			return nil, wrapf(MethodOX, ErrInvariantBroken, "%d slots still empty after a full lap", empty)
		}
		v = other[r]
		if _, ok = placed[v]; !ok {
			if filled[w] {
				return nil, wrapf(MethodOX, ErrInvariantBroken, "write cursor hit filled slot %d", w)
			}
			child[w] = v
			filled[w] = true
			placed[v] = struct{}{}
			w = (w + 1) % n
			empty--
		}
		r = (r + 1) % n
		reads++
	}

	return child, nil
}
