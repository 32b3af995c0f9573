// Package crossover_test exercises the public operators of genops/crossover.
package crossover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genops/permutation"
)

// Parents of the worked examples: [1..9] and a shuffled copy.
var (
	scenarioP1 = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	scenarioP2 = []int{9, 3, 7, 8, 2, 6, 5, 1, 4}
)

// randomPair returns two random permutations of {0..n-1} from one seeded stream.
func randomPair(t testing.TB, n int, rng *rand.Rand) ([]int, []int) {
	t.Helper()
	p1, err := permutation.Random(n, rng)
	require.NoError(t, err)
	p2, err := permutation.Random(n, rng)
	require.NoError(t, err)

	return p1, p2
}

// requirePermOf fails unless child is an ordering of ref's value set.
func requirePermOf(t testing.TB, ref, child []int) {
	t.Helper()
	require.Len(t, child, len(ref))
	require.NoError(t, permutation.ValidatePair(ref, child))
}

// circularEdges returns the undirected adjacency set of a circular tour.
func circularEdges(p []int) map[[2]int]bool {
	edges := make(map[[2]int]bool, len(p))
	n := len(p)
	for i := range p {
		a, b := p[i], p[(i+1)%n]
		if a > b {
			a, b = b, a
		}
		edges[[2]int{a, b}] = true
	}

	return edges
}
