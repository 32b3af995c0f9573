// SPDX-License-Identifier: MIT
// Package: genops/tsp
//
// cost.go: tour length and quality over a cost matrix.

package tsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/genops/permutation"
)

// roundScale stabilizes summed costs to 1e-9 absolute precision.
const roundScale = 1e9

// QualityScale is the numerator of Quality.
const QualityScale = 100.0

// TourLength returns the length of the cycle visiting perm in order and
// returning from the last city to the first. perm must be a permutation of
// 0..n-1 where n is the matrix order. The matrix itself is not re-validated;
// pass it through ValidateCostMatrix or NewCostMatrix first.
//
// Complexity: O(n).
func TourLength(dist mat.Matrix, perm []int) (float64, error) {
	if dist == nil {
		return 0, fmt.Errorf("TourLength: nil matrix: %w", ErrNonSquare)
	}
	n, nc := dist.Dims()
	if n != nc {
		return 0, fmt.Errorf("TourLength: %dx%d: %w", n, nc, ErrNonSquare)
	}
	if err := permutation.Validate(perm, n); err != nil {
		return 0, fmt.Errorf("TourLength: %w", err)
	}

	var sum float64
	for i := 0; i < n-1; i++ {
		sum += dist.At(perm[i], perm[i+1])
	}
	sum += dist.At(perm[n-1], perm[0])

	return round1e9(sum), nil
}

// Quality returns QualityScale / TourLength(dist, perm).
func Quality(dist mat.Matrix, perm []int) (float64, error) {
	l, err := TourLength(dist, perm)
	if err != nil {
		return 0, fmt.Errorf("Quality: %w", err)
	}
	if l == 0 {
		return 0, fmt.Errorf("Quality: %w", ErrZeroLength)
	}

	return QualityScale / l, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
