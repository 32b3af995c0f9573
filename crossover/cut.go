// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// cut.go: two-point cut selection shared by PMX and OX.

package crossover

import (
	"fmt"
	"math/rand"
)

// Cut is an inclusive segment [Lo, Hi] of a parent copied verbatim into the
// child. A valid cut on n genes satisfies 0 <= Lo < Hi <= n-1, so the segment
// always holds at least two genes and never the empty set.
type Cut struct {
	Lo int
	Hi int
}

// Len returns the number of genes in the segment.
func (c Cut) Len() int { return c.Hi - c.Lo + 1 }

// Contains reports whether position i lies inside the segment.
func (c Cut) Contains(i int) bool { return i >= c.Lo && i <= c.Hi }

// String renders the cut as "[Lo..Hi]".
func (c Cut) String() string { return fmt.Sprintf("[%d..%d]", c.Lo, c.Hi) }

// Validate checks the cut against a genome of n genes.
func (c Cut) Validate(n int) error {
	if n < 2 {
		return fmt.Errorf("cut %s on n=%d: %w", c, n, ErrTooShort)
	}
	if c.Lo < 0 || c.Hi > n-1 || c.Lo >= c.Hi {
		return fmt.Errorf("cut %s on n=%d: %w", c, n, ErrBadCut)
	}

	return nil
}

// RandomCut draws Lo uniformly from [0, n-2] and then Hi uniformly from
// [Lo+1, n-1]. Note that this is not uniform over all segments: short
// segments near the end are favoured.
//
// Complexity: O(1).
func RandomCut(n int, rng *rand.Rand) (Cut, error) {
	if rng == nil {
		return Cut{}, ErrNilRand
	}
	if n < 2 {
		return Cut{}, fmt.Errorf("RandomCut: n=%d: %w", n, ErrTooShort)
	}
	var c Cut
	c.Lo = rng.Intn(n - 1)
	c.Hi = c.Lo + 1 + rng.Intn(n-1-c.Lo)

	return c, nil
}
