// SPDX-License-Identifier: MIT
// Package: genops/tsp
//
// tour.go: closed-tour form of a city permutation.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/genops/permutation"
)

// MakeTourFromPermutation returns the closed tour of perm that starts and ends
// at start: perm rotated so start comes first, followed by start again.
//
//	MakeTourFromPermutation([2 0 3 1], 0) = [0 3 1 2 0]
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, start int) ([]int, error) {
	n := len(perm)
	if err := permutation.Validate(perm, n); err != nil {
		return nil, fmt.Errorf("MakeTourFromPermutation: %w", err)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("MakeTourFromPermutation: start=%d n=%d: %w", start, n, ErrStartOutOfRange)
	}
	at := permutation.IndexOf(perm)[start]

	tour := make([]int, 0, n+1)
	tour = append(tour, perm[at:]...)
	tour = append(tour, perm[:at]...)

	return append(tour, start), nil
}

// ValidateTour checks that tour is closed over n cities: n+1 entries, the
// last equal to the first, and the first n a permutation of 0..n-1.
//
// Complexity: O(n).
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("ValidateTour: len=%d n=%d: %w", len(tour), n, permutation.ErrDimensionMismatch)
	}
	if tour[0] != tour[n] {
		return fmt.Errorf("ValidateTour: open tour %d..%d: %w", tour[0], tour[n], permutation.ErrDimensionMismatch)
	}
	if err := permutation.Validate(tour[:n], n); err != nil {
		return fmt.Errorf("ValidateTour: %w", err)
	}

	return nil
}
