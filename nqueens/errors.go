// SPDX-License-Identifier: MIT
// Package: genops/nqueens

package nqueens

import "errors"

var (
	// ErrBadSize indicates a non-positive board or population size.
	ErrBadSize = errors.New("nqueens: size must be positive")

	// ErrNilRand indicates a nil *rand.Rand.
	ErrNilRand = errors.New("nqueens: rng is required")
)
