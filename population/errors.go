// SPDX-License-Identifier: MIT
// Package: genops/population

package population

import "errors"

var (
	// ErrEmpty indicates a snapshot without individuals.
	ErrEmpty = errors.New("population: empty snapshot")

	// ErrShape indicates len(Individuals) != len(Qualities).
	ErrShape = errors.New("population: individuals and qualities differ in length")
)
