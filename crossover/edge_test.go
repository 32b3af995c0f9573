package crossover_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/genops/crossover"
	"github.com/katalvlaran/genops/permutation"
)

// EdgeSuite exercises Edge Crossover.
type EdgeSuite struct {
	suite.Suite
}

// TestIdenticalParentsKeepEveryEdge: with one shared tour every neighbour is
// common, the random fallback never fires, and the child walks the same cycle.
func (s *EdgeSuite) TestIdenticalParentsKeepEveryEdge() {
	p := []int{0, 1, 2, 3, 4}
	child, err := crossover.Edge(p, p, 5, permutation.NewRand(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 4, 3, 2, 1}, child)
	require.Equal(s.T(), circularEdges(p), circularEdges(child))
}

// TestCommonThenShortestList follows the choice rules by hand:
//
//	table: 0:[3* 1 2] 1:[2* 0 3] 2:[1* 3 0] 3:[0* 2 1]   (* = common)
//	0 → 3 (common) → 2 (tie on list length, first wins) → 1
func (s *EdgeSuite) TestCommonThenShortestList() {
	child, err := crossover.Edge([]int{0, 1, 2, 3}, []int{0, 2, 1, 3}, 4, permutation.NewRand(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 3, 2, 1}, child)
}

// TestTermination checks n distinct values for every n >= 1.
func (s *EdgeSuite) TestTermination() {
	rng := permutation.NewRand(77)
	for n := 1; n <= 64; n++ {
		p1, p2 := randomPair(s.T(), n, rng)
		child, err := crossover.Edge(p1, p2, n, rng)
		require.NoError(s.T(), err)
		requirePermOf(s.T(), p1, child)
		require.Equal(s.T(), p1[0], child[0])
	}
}

// TestEdgesComeFromParents: when no fallback is needed, every child edge
// exists in at least one parent; check the weaker statistical property that
// most do.
func (s *EdgeSuite) TestEdgesComeFromParents() {
	rng := permutation.NewRand(31)
	p1, p2 := randomPair(s.T(), 30, rng)
	child, err := crossover.Edge(p1, p2, 30, rng)
	require.NoError(s.T(), err)

	e1, e2 := circularEdges(p1), circularEdges(p2)
	inherited := 0
	for e := range circularEdges(child) {
		if e1[e] || e2[e] {
			inherited++
		}
	}
	require.Greater(s.T(), inherited, 20)
}

// TestReplay checks that equal seeds give equal children.
func (s *EdgeSuite) TestReplay() {
	a, err := crossover.Edge(scenarioP1, scenarioP2, 9, permutation.NewRand(5))
	require.NoError(s.T(), err)
	b, err := crossover.Edge(scenarioP1, scenarioP2, 9, permutation.NewRand(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
	requirePermOf(s.T(), scenarioP1, a)
}

// TestEdgePair returns one child per parent order.
func (s *EdgeSuite) TestEdgePair() {
	c1, c2, err := crossover.EdgePair(scenarioP1, scenarioP2, permutation.NewRand(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), scenarioP1[0], c1[0])
	require.Equal(s.T(), scenarioP2[0], c2[0])
	requirePermOf(s.T(), scenarioP1, c2)
}

// TestErrors covers the precondition sentinels.
func (s *EdgeSuite) TestErrors() {
	rng := permutation.NewRand(1)

	_, err := crossover.Edge(scenarioP1, scenarioP2, 9, nil)
	require.ErrorIs(s.T(), err, crossover.ErrNilRand)

	_, err = crossover.Edge(scenarioP1, scenarioP2, 10, rng)
	require.ErrorIs(s.T(), err, crossover.ErrLengthMismatch)

	_, err = crossover.Edge([]int{}, []int{}, 0, rng)
	require.ErrorIs(s.T(), err, crossover.ErrTooShort)

	_, err = crossover.Edge([]int{0, 1, 2}, []int{0, 1, 5}, 3, rng)
	require.ErrorIs(s.T(), err, crossover.ErrNotPermutation)
}

func TestEdgeSuite(t *testing.T) {
	suite.Run(t, new(EdgeSuite))
}
