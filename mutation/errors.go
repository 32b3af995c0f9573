// SPDX-License-Identifier: MIT
// Package: genops/mutation
//
// errors.go: sentinel errors for the mutation package.

package mutation

import (
	"errors"
	"fmt"
)

// ErrBadRange indicates an empty or non-finite value range, or a bad sigma.
var ErrBadRange = errors.New("mutation: invalid value range")

// ErrTooShort indicates a permutation with fewer than two genes.
var ErrTooShort = errors.New("mutation: permutation too short")

// ErrBadPosition indicates positions outside the permutation or not ordered
// as the operator requires.
var ErrBadPosition = errors.New("mutation: position out of range")

// ErrNilRand indicates a nil *rand.Rand.
var ErrNilRand = errors.New("mutation: rng is required")

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// ErrUnknownOperator indicates a name that Lookup does not recognise.
var ErrUnknownOperator = errors.New("mutation: unknown operator")
