// SPDX-License-Identifier: MIT
// Package: genops/tsp
//
// validate.go: cost matrix construction and validation.

package tsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// diagTol is the tolerance for the zero-diagonal check.
const diagTol = 1e-12

// NewCostMatrix builds a validated cost matrix from rows, as read by
// numfile.ReadMatrix.
func NewCostMatrix(rows [][]float64) (*mat.Dense, error) {
	n := len(rows)
	if n < 2 {
		return nil, fmt.Errorf("NewCostMatrix: n=%d: %w", n, ErrTooFewCities)
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewCostMatrix: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		data = append(data, row...)
	}
	dist := mat.NewDense(n, n, data)
	if _, err := ValidateCostMatrix(dist); err != nil {
		return nil, fmt.Errorf("NewCostMatrix: %w", err)
	}

	return dist, nil
}

// ValidateCostMatrix checks shape, diagonal and entries and returns n.
//
// Rules:
//   - square with n >= 2,
//   - |a_ii| <= 1e-12,
//   - every entry finite and non-negative.
//
// Complexity: O(n²).
func ValidateCostMatrix(dist mat.Matrix) (int, error) {
	if dist == nil {
		return 0, fmt.Errorf("ValidateCostMatrix: nil matrix: %w", ErrNonSquare)
	}
	nr, nc := dist.Dims()
	if nr != nc {
		return 0, fmt.Errorf("ValidateCostMatrix: %dx%d: %w", nr, nc, ErrNonSquare)
	}
	if nr < 2 {
		return 0, fmt.Errorf("ValidateCostMatrix: n=%d: %w", nr, ErrTooFewCities)
	}

	var (
		n    = nr
		i, j int
		a    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a = dist.At(i, j)
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return 0, fmt.Errorf("ValidateCostMatrix: a[%d][%d]=%v: %w", i, j, a, ErrNonFinite)
			}
			if i == j {
				if math.Abs(a) > diagTol {
					return 0, fmt.Errorf("ValidateCostMatrix: a[%d][%d]=%v: %w", i, j, a, ErrNonZeroDiagonal)
				}
				continue
			}
			if a < 0 {
				return 0, fmt.Errorf("ValidateCostMatrix: a[%d][%d]=%v: %w", i, j, a, ErrNegativeWeight)
			}
		}
	}

	return n, nil
}
