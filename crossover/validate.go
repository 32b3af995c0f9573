// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// validate.go: precondition and postcondition checks shared by operators.

package crossover

import (
	"fmt"
	"math"

	"github.com/katalvlaran/genops/permutation"
)

// validatePermParents enforces the permutation-operator preconditions:
// equal lengths, duplicate-free parents over one value set, len >= minLen.
//
// Complexity: O(n) time, O(n) space.
func validatePermParents(method string, p1, p2 []int, minLen int) error {
	if len(p1) != len(p2) {
		return wrapf(method, ErrLengthMismatch, "len(p1)=%d len(p2)=%d", len(p1), len(p2))
	}
	if len(p1) < minLen {
		return wrapf(method, ErrTooShort, "n=%d, need at least %d", len(p1), minLen)
	}
	if err := permutation.ValidatePair(p1, p2); err != nil {
		return fmt.Errorf("%s: parents: %w: %w", method, ErrNotPermutation, err)
	}

	return nil
}

// validateVectorParents enforces equal lengths and len >= minLen for the
// encoding-agnostic operators.
func validateVectorParents(method string, n1, n2, minLen int) error {
	if n1 != n2 {
		return wrapf(method, ErrLengthMismatch, "len(p1)=%d len(p2)=%d", n1, n2)
	}
	if n1 < minLen {
		return wrapf(method, ErrTooShort, "n=%d, need at least %d", n1, minLen)
	}

	return nil
}

// validateAlpha accepts alpha in [0,1]; NaN is rejected.
func validateAlpha(method string, alpha float64) error {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return wrapf(method, ErrBadAlpha, "alpha=%v", alpha)
	}

	return nil
}

// verifyChildren re-checks that each child is an ordering of the reference
// parent's value set. Any failure is a defect in the operator itself.
func verifyChildren(method string, ref []int, children ...[]int) error {
	var (
		i   int
		c   []int
		err error
	)
	for i, c = range children {
		if err = permutation.ValidatePair(ref, c); err != nil {
			return fmt.Errorf("%s: child %d: %w: %w", method, i+1, ErrInvariantBroken, err)
		}
	}

	return nil
}
