// SPDX-License-Identifier: MIT
// Package: genops/tsp

package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/genops/tsp"
)

func TestValidateCostMatrix(t *testing.T) {
	cases := []struct {
		name string
		m    mat.Matrix
		want error
	}{
		{"non-square", mat.NewDense(2, 3, nil), tsp.ErrNonSquare},
		{"single city", mat.NewDense(1, 1, nil), tsp.ErrTooFewCities},
		{"diagonal", mat.NewDense(2, 2, []float64{1, 2, 2, 0}), tsp.ErrNonZeroDiagonal},
		{"negative", mat.NewDense(2, 2, []float64{0, -2, 2, 0}), tsp.ErrNegativeWeight},
		{"nan", mat.NewDense(2, 2, []float64{0, math.NaN(), 2, 0}), tsp.ErrNonFinite},
		{"inf", mat.NewDense(2, 2, []float64{0, 1, math.Inf(1), 0}), tsp.ErrNonFinite},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.ValidateCostMatrix(tc.m)
			require.ErrorIs(t, err, tc.want)
		})
	}

	n, err := tsp.ValidateCostMatrix(mat.NewDense(3, 3, []float64{0, 1, 2, 1, 0, 3, 2, 3, 0}))
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestNewCostMatrix(t *testing.T) {
	dist, err := tsp.NewCostMatrix([][]float64{{0, 5}, {7, 0}})
	require.NoError(t, err)
	require.Equal(t, 7.0, dist.At(1, 0))

	_, err = tsp.NewCostMatrix([][]float64{{0, 5}, {7}})
	require.ErrorIs(t, err, tsp.ErrNonSquare)
	_, err = tsp.NewCostMatrix([][]float64{{0}})
	require.ErrorIs(t, err, tsp.ErrTooFewCities)
	_, err = tsp.NewCostMatrix([][]float64{{0, -1}, {1, 0}})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}
