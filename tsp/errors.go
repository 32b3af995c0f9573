// SPDX-License-Identifier: MIT
// Package: genops/tsp

package tsp

import "errors"

var (
	// ErrNonSquare indicates a cost matrix that is not n×n.
	ErrNonSquare = errors.New("tsp: cost matrix is not square")

	// ErrTooFewCities indicates fewer than two cities.
	ErrTooFewCities = errors.New("tsp: at least two cities are required")

	// ErrNonZeroDiagonal indicates a city with a non-zero cost to itself.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal must be zero")

	// ErrNegativeWeight indicates a negative travel cost.
	ErrNegativeWeight = errors.New("tsp: negative cost")

	// ErrNonFinite indicates a NaN or infinite travel cost.
	ErrNonFinite = errors.New("tsp: non-finite cost")

	// ErrZeroLength indicates a tour of total length 0, whose quality is undefined.
	ErrZeroLength = errors.New("tsp: zero-length tour")

	// ErrStartOutOfRange indicates a start city outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrBadSize indicates a non-positive population size.
	ErrBadSize = errors.New("tsp: size must be positive")

	// ErrNilRand indicates a nil *rand.Rand.
	ErrNilRand = errors.New("tsp: rng is required")
)
