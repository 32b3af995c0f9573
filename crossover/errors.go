// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// errors.go: sentinel errors for the crossover package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Operators attach context with wrapf(method, detail, sentinel).
//   - Operators never panic on caller input.

package crossover

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates parents of different lengths, or an explicit size
// argument that disagrees with the parents.
var ErrLengthMismatch = errors.New("crossover: length mismatch")

// ErrNotPermutation indicates a parent with duplicate values, or two parents
// that are not orderings of the same value set.
var ErrNotPermutation = errors.New("crossover: parents are not permutations of one value set")

// ErrTooShort indicates parents too short for the operator (cut-point operators
// need at least two genes).
var ErrTooShort = errors.New("crossover: parents too short")

// ErrBadCut indicates cut points outside 0 <= Lo < Hi <= n-1.
var ErrBadCut = errors.New("crossover: invalid cut points")

// ErrBadPosition indicates a crossover point or gene index out of range.
var ErrBadPosition = errors.New("crossover: position out of range")

// ErrBadAlpha indicates an arithmetic blend weight outside [0,1].
var ErrBadAlpha = errors.New("crossover: alpha out of range")

// ErrNilRand indicates that a stochastic operator received a nil *rand.Rand.
var ErrNilRand = errors.New("crossover: rng is required")

// ErrUnknownOperator indicates a name that Lookup does not recognise.
var ErrUnknownOperator = errors.New("crossover: unknown operator")

// ErrInvariantBroken indicates an internal bookkeeping defect: a conflict chase
// that does not terminate, a missing edge-table entry, or a child that fails the
// permutation check. It is never caused by valid input.
var ErrInvariantBroken = errors.New("crossover: internal invariant broken")

// Method tokens used as error context.
const (
	MethodPMX              = "PMX"
	MethodOX               = "OX"
	MethodCycle            = "Cycle"
	MethodEdge             = "Edge"
	MethodOnePoint         = "OnePoint"
	MethodUniform          = "Uniform"
	MethodSingleArithmetic = "SingleArithmetic"
	MethodSimpleArithmetic = "SimpleArithmetic"
	MethodWholeArithmetic  = "WholeArithmetic"
)

// wrapf prefixes sentinel with the method and a formatted detail, keeping the
// sentinel reachable through errors.Is.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
