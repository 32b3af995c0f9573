// SPDX-License-Identifier: MIT
// Package: genops/permutation
//
// permutation.go: structural helpers over []int permutations.

package permutation

import "fmt"

// Validate checks that p is a bijection on {0..n-1} of length n.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func Validate(p []int, n int) error {
	if n <= 0 || len(p) != n {
		return fmt.Errorf("Validate: len=%d n=%d: %w", len(p), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = p[i]
		if v < 0 || v >= n {
			return fmt.Errorf("Validate: p[%d]=%d: %w", i, v, ErrOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("Validate: p[%d]=%d: %w", i, v, ErrDuplicate)
		}
		seen[v] = true
	}

	return nil
}

// ValidatePair checks that a and b are duplicate-free orderings of the same
// value set. The values themselves are unconstrained, so [1..9] pairs are
// accepted as well as canonical {0..n-1} pairs.
//
// Complexity: O(n) time, O(n) space.
func ValidatePair(a, b []int) error {
	if len(a) != len(b) {
		return fmt.Errorf("ValidatePair: len(a)=%d len(b)=%d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	inA := make(map[int]struct{}, len(a))

	var (
		i  int
		v  int
		ok bool
	)
	for i, v = range a {
		if _, ok = inA[v]; ok {
			return fmt.Errorf("ValidatePair: a[%d]=%d: %w", i, v, ErrDuplicate)
		}
		inA[v] = struct{}{}
	}

	inB := make(map[int]struct{}, len(b))
	for i, v = range b {
		if _, ok = inB[v]; ok {
			return fmt.Errorf("ValidatePair: b[%d]=%d: %w", i, v, ErrDuplicate)
		}
		if _, ok = inA[v]; !ok {
			return fmt.Errorf("ValidatePair: b[%d]=%d: %w", i, v, ErrValueSetMismatch)
		}
		inB[v] = struct{}{}
	}

	return nil
}

// IndexOf returns the value→position map of p. For duplicate values the last
// position wins; validate first when that matters.
//
// Complexity: O(n) time, O(n) space.
func IndexOf(p []int) map[int]int {
	idx := make(map[int]int, len(p))
	for i, v := range p {
		idx[v] = i
	}

	return idx
}

// Identity returns [0 1 … n-1]. For n <= 0 it returns an empty slice.
func Identity(n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Clone returns an independent copy of p (nil stays nil).
func Clone(p []int) []int {
	if p == nil {
		return nil
	}
	out := make([]int, len(p))
	copy(out, p)

	return out
}
