// SPDX-License-Identifier: MIT
// Package: genops/permutation
//
// errors.go: sentinel errors for the permutation package.
//
// Callers branch with errors.Is; messages are stable.

package permutation

import "errors"

// ErrDimensionMismatch indicates a length mismatch: len(p) != n, n <= 0, or
// two permutations of different lengths.
var ErrDimensionMismatch = errors.New("permutation: dimension mismatch")

// ErrDuplicate indicates that a value occurs more than once.
var ErrDuplicate = errors.New("permutation: duplicate value")

// ErrOutOfRange indicates a value outside the canonical domain {0..n-1}.
var ErrOutOfRange = errors.New("permutation: value out of range")

// ErrValueSetMismatch indicates two duplicate-free slices that do not hold the
// same set of values.
var ErrValueSetMismatch = errors.New("permutation: value sets differ")
