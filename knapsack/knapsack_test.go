// SPDX-License-Identifier: MIT
// Package: genops/knapsack

package knapsack_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genops/knapsack"
	"github.com/katalvlaran/genops/permutation"
)

func smallInstance(t *testing.T) *knapsack.Instance {
	t.Helper()
	in, err := knapsack.NewInstance(
		[]float64{10, 20, 30, 5, 15},
		[]float64{60, 100, 120, 10, 40},
		50,
	)
	require.NoError(t, err)

	return in
}

func TestNewInstanceValidation(t *testing.T) {
	cases := []struct {
		name   string
		costs  []float64
		values []float64
		cap    float64
		want   error
	}{
		{"length", []float64{1, 2}, []float64{1}, 5, knapsack.ErrDimensionMismatch},
		{"empty", nil, nil, 5, knapsack.ErrDimensionMismatch},
		{"neg cost", []float64{-1}, []float64{1}, 5, knapsack.ErrNegative},
		{"nan value", []float64{1}, []float64{math.NaN()}, 5, knapsack.ErrNegative},
		{"zero cap", []float64{1}, []float64{1}, 0, knapsack.ErrBadCapacity},
		{"nan cap", []float64{1}, []float64{1}, math.NaN(), knapsack.ErrBadCapacity},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := knapsack.NewInstance(tc.costs, tc.values, tc.cap)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewInstanceCopies(t *testing.T) {
	costs := []float64{1, 2}
	in, err := knapsack.NewInstance(costs, []float64{3, 4}, 10)
	require.NoError(t, err)
	costs[0] = 99
	assert.Equal(t, 1.0, in.Costs[0])
}

func TestFeasibleAndQuality(t *testing.T) {
	in := smallInstance(t)

	ok, err := in.Feasible([]int{1, 1, 0, 0, 1})
	require.NoError(t, err)
	assert.True(t, ok, "cost 45 fits")

	ok, err = in.Feasible([]int{0, 1, 1, 1, 0})
	require.NoError(t, err)
	assert.False(t, ok, "cost 55 does not fit")

	q, err := in.Quality([]int{1, 1, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 200.0, q)

	c, err := in.Cost([]int{1, 0, 1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 40.0, c)

	_, err = in.Quality([]int{1, 0})
	require.ErrorIs(t, err, knapsack.ErrDimensionMismatch)
	_, err = in.Feasible([]int{1, 0, 2, 0, 0})
	require.ErrorIs(t, err, knapsack.ErrNotBinary)
}

func TestInitialPopulationFeasible(t *testing.T) {
	in := smallInstance(t)
	snap, err := knapsack.InitialPopulation(in, 40, permutation.NewRand(9))
	require.NoError(t, err)
	require.Equal(t, 40, snap.Len())

	for k, x := range snap.Individuals {
		ok, err := in.Feasible(x)
		require.NoError(t, err)
		require.True(t, ok, "individual %d infeasible", k)
		q, err := in.Quality(x)
		require.NoError(t, err)
		require.Equal(t, q, snap.Qualities[k])
	}
}

func TestInitialPopulationDeterministic(t *testing.T) {
	in := smallInstance(t)
	a, err := knapsack.InitialPopulation(in, 10, permutation.NewRand(5))
	require.NoError(t, err)
	b, err := knapsack.InitialPopulation(in, 10, permutation.NewRand(5))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandomFeasibleExhausted(t *testing.T) {
	// Every item alone exceeds the capacity; only the all-zero vector fits.
	in, err := knapsack.NewInstance([]float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}, make([]float64, 20), 1)
	require.NoError(t, err)
	_, err = in.RandomFeasible(permutation.NewRand(1), 3)
	require.ErrorIs(t, err, knapsack.ErrNoFeasible)

	_, err = in.RandomFeasible(nil, 3)
	require.ErrorIs(t, err, knapsack.ErrNilRand)
	_, err = in.RandomFeasible(permutation.NewRand(1), 0)
	require.ErrorIs(t, err, knapsack.ErrBadSize)
	_, err = knapsack.InitialPopulation(in, 0, permutation.NewRand(1))
	require.ErrorIs(t, err, knapsack.ErrBadSize)
}

func TestNilInstance(t *testing.T) {
	var in *knapsack.Instance
	x := []int{1, 0, 1}

	assert.Zero(t, in.Dim())
	_, err := in.Cost(x)
	require.ErrorIs(t, err, knapsack.ErrNilInstance)
	_, err = in.Feasible(x)
	require.ErrorIs(t, err, knapsack.ErrNilInstance)
	_, err = in.Quality(x)
	require.ErrorIs(t, err, knapsack.ErrNilInstance)
	_, err = in.RandomFeasible(permutation.NewRand(1), 10)
	require.ErrorIs(t, err, knapsack.ErrNilInstance)

	_, err = knapsack.InitialPopulation(nil, 3, permutation.NewRand(1))
	require.ErrorIs(t, err, knapsack.ErrNilInstance)
}
