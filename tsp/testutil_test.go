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

// epsTiny absorbs the 1e-9 rounding applied to tour lengths.
const epsTiny = 1e-8

// euclid builds a symmetric Euclidean cost matrix for the given points.
func euclid(t testing.TB, pts [][2]float64) *mat.Dense {
	t.Helper()
	n := len(pts)
	rows := make([][]float64, n)
	for i := range pts {
		rows[i] = make([]float64, n)
		for j := range pts {
			rows[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}
	dist, err := tsp.NewCostMatrix(rows)
	require.NoError(t, err)

	return dist
}

// unitSquare places cities 0..3 on the corners of a unit square, in order.
func unitSquare(t testing.TB) *mat.Dense {
	return euclid(t, [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}

// circle places n cities evenly on the unit circle.
func circle(t testing.TB, n int) *mat.Dense {
	pts := make([][2]float64, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}

	return euclid(t, pts)
}
