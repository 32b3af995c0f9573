// SPDX-License-Identifier: MIT
// Package: genops/knapsack

package knapsack

import (
	"fmt"
	"math"
)

// Instance is an immutable 0-1 knapsack problem.
type Instance struct {
	Costs    []float64
	Values   []float64
	Capacity float64
}

// NewInstance validates and copies its inputs.
func NewInstance(costs, values []float64, capacity float64) (*Instance, error) {
	if len(costs) != len(values) {
		return nil, fmt.Errorf("NewInstance: %d costs, %d values: %w", len(costs), len(values), ErrDimensionMismatch)
	}
	if len(costs) == 0 {
		return nil, fmt.Errorf("NewInstance: no items: %w", ErrDimensionMismatch)
	}
	for i := range costs {
		if !nonNegative(costs[i]) {
			return nil, fmt.Errorf("NewInstance: cost[%d]=%v: %w", i, costs[i], ErrNegative)
		}
		if !nonNegative(values[i]) {
			return nil, fmt.Errorf("NewInstance: value[%d]=%v: %w", i, values[i], ErrNegative)
		}
	}
	if !(capacity > 0) || math.IsInf(capacity, 0) {
		return nil, fmt.Errorf("NewInstance: capacity=%v: %w", capacity, ErrBadCapacity)
	}

	inst := &Instance{
		Costs:    append([]float64(nil), costs...),
		Values:   append([]float64(nil), values...),
		Capacity: capacity,
	}

	return inst, nil
}

// Dim returns the number of items, 0 for a nil instance.
func (in *Instance) Dim() int {
	if in == nil {
		return 0
	}

	return len(in.Costs)
}

// Cost returns Σ Costs[i]·x[i].
func (in *Instance) Cost(x []int) (float64, error) {
	if in == nil {
		return 0, fmt.Errorf("Cost: %w", ErrNilInstance)
	}

	return in.dot("Cost", in.Costs, x)
}

// Feasible reports whether x fits into the knapsack.
func (in *Instance) Feasible(x []int) (bool, error) {
	if in == nil {
		return false, fmt.Errorf("Feasible: %w", ErrNilInstance)
	}
	c, err := in.dot("Feasible", in.Costs, x)
	if err != nil {
		return false, err
	}

	return c <= in.Capacity, nil
}

// Quality returns Σ Values[i]·x[i]. Feasibility is not checked.
func (in *Instance) Quality(x []int) (float64, error) {
	if in == nil {
		return 0, fmt.Errorf("Quality: %w", ErrNilInstance)
	}

	return in.dot("Quality", in.Values, x)
}

func (in *Instance) dot(method string, w []float64, x []int) (float64, error) {
	if len(x) != len(w) {
		return 0, fmt.Errorf("%s: len(x)=%d, want %d: %w", method, len(x), len(w), ErrDimensionMismatch)
	}
	var sum float64
	for i, b := range x {
		switch b {
		case 0:
		case 1:
			sum += w[i]
		default:
			return 0, fmt.Errorf("%s: x[%d]=%d: %w", method, i, b, ErrNotBinary)
		}
	}

	return sum, nil
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
