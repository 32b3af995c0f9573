// SPDX-License-Identifier: MIT
// Package: genops/nqueens

package nqueens_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genops/nqueens"
	"github.com/katalvlaran/genops/permutation"
)

func TestQualityKnownBoards(t *testing.T) {
	cases := []struct {
		name    string
		board   []int
		attacks int
		quality int
	}{
		{"single queen", []int{0}, 0, 0},
		{"4 solved", []int{1, 3, 0, 2}, 0, 6},
		{"4 diagonal", []int{0, 1, 2, 3}, 6, 0},
		{"4 partial", []int{0, 2, 1, 3}, 2, 4},
		{"8 solved", []int{0, 4, 7, 5, 2, 6, 1, 3}, 0, 28},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a, err := nqueens.Attacks(tc.board)
			require.NoError(t, err)
			assert.Equal(t, tc.attacks, a)

			q, err := nqueens.Quality(tc.board)
			require.NoError(t, err)
			assert.Equal(t, tc.quality, q)

			ok, err := nqueens.IsSolution(tc.board)
			require.NoError(t, err)
			assert.Equal(t, tc.attacks == 0, ok)
		})
	}
}

func TestQualityRejectsNonPermutation(t *testing.T) {
	_, err := nqueens.Quality([]int{0, 0, 1})
	require.ErrorIs(t, err, permutation.ErrDuplicate)
}

func TestInitialPopulation(t *testing.T) {
	snap, err := nqueens.InitialPopulation(8, 25, permutation.NewRand(4))
	require.NoError(t, err)
	require.Equal(t, 25, snap.Len())
	for k, p := range snap.Individuals {
		require.NoError(t, permutation.Validate(p, 8))
		q, err := nqueens.Quality(p)
		require.NoError(t, err)
		require.Equal(t, float64(q), snap.Qualities[k])
		require.LessOrEqual(t, q, nqueens.MaxQuality(8))
	}

	_, err = nqueens.InitialPopulation(0, 5, permutation.NewRand(4))
	require.ErrorIs(t, err, nqueens.ErrBadSize)
	_, err = nqueens.InitialPopulation(4, 5, nil)
	require.ErrorIs(t, err, nqueens.ErrNilRand)
}
