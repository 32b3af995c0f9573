// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// edge.go: Edge (neighbour-list) Crossover.
//
// The edge table is created, consumed and discarded inside a single call; it
// is never shared between calls or goroutines.

package crossover

import (
	"math/rand"

	"github.com/katalvlaran/genops/permutation"
)

// neighbor is one adjacency candidate of a value. common marks a value that is
// adjacent in both parents.
type neighbor struct {
	value  int
	common bool
}

// edgeTable maps every value to its remaining adjacency candidates.
type edgeTable map[int][]neighbor

// buildEdgeTable collects, for each value, its circular neighbours in p1 and
// p2. Entries are ordered: common neighbours, then p1-only, then p2-only, each
// group in parent order (left before right). A value is never its own
// neighbour, so n=1 yields an empty list and n=2 a single common entry.
//
// Complexity: O(n) expected time and space.
func buildEdgeTable(p1, p2 []int) edgeTable {
	var n = len(p1)
	table := make(edgeTable, n)
	posInP2 := permutation.IndexOf(p2)

	var (
		i, j int
		v, u int
		x, y [2]int
		list []neighbor
	)
	for i = 0; i < n; i++ {
		v = p1[i]
		j = posInP2[v]
		x = [2]int{p1[(i-1+n)%n], p1[(i+1)%n]}
		y = [2]int{p2[(j-1+n)%n], p2[(j+1)%n]}

		list = make([]neighbor, 0, 4)
		for _, u = range x {
			if u != v && (u == y[0] || u == y[1]) && !hasNeighbor(list, u) {
				list = append(list, neighbor{value: u, common: true})
			}
		}
		for _, u = range x {
			if u != v && !hasNeighbor(list, u) {
				list = append(list, neighbor{value: u})
			}
		}
		for _, u = range y {
			if u != v && !hasNeighbor(list, u) {
				list = append(list, neighbor{value: u})
			}
		}
		table[v] = list
	}

	return table
}

func hasNeighbor(list []neighbor, v int) bool {
	for _, nb := range list {
		if nb.value == v {
			return true
		}
	}

	return false
}

// remove deletes v from every remaining neighbour list, in place.
//
// Complexity: O(n).
func (t edgeTable) remove(v int) {
	var (
		k    int
		list []neighbor
		i    int
	)
	for k, list = range t {
		for i = 0; i < len(list); i++ {
			if list[i].value == v {
				t[k] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

// choose picks the next value among several candidates: the first common
// neighbour if any, otherwise the candidate with the fewest remaining
// neighbours (first occurrence wins ties).
func (t edgeTable) choose(lp []neighbor) int {
	var nb neighbor
	for _, nb = range lp {
		if nb.common {
			return nb.value
		}
	}

	var (
		best    = lp[0].value
		bestLen = len(t[lp[0].value])
		l       int
		i       int
	)
	for i = 1; i < len(lp); i++ {
		l = len(t[lp[i].value])
		if l < bestLen {
			best, bestLen = lp[i].value, l
		}
	}

	return best
}

// Edge runs Edge Crossover and returns a single child of length n.
//
// The child starts with p1[0]. After each placed value a, a is removed from
// every neighbour list and the next value is drawn from a's remaining list:
//
//   - empty list  ⇒ a uniformly random value not yet placed,
//   - one entry   ⇒ that entry,
//   - more        ⇒ see choose (common first, then fewest neighbours).
//
// Exactly n placements happen, so the call always terminates; rng is consulted
// only on empty lists. n must equal len(p1) and len(p2); n >= 1.
//
// Errors: ErrNilRand, ErrLengthMismatch, ErrTooShort, ErrNotPermutation,
// ErrInvariantBroken.
//
// Complexity: O(n²) time, O(n) space.
func Edge(p1, p2 []int, n int, rng *rand.Rand) ([]int, error) {
	if rng == nil {
		return nil, wrapf(MethodEdge, ErrNilRand, "rng")
	}
	if n != len(p1) {
		return nil, wrapf(MethodEdge, ErrLengthMismatch, "n=%d len(p1)=%d", n, len(p1))
	}
	if err := validatePermParents(MethodEdge, p1, p2, 1); err != nil {
		return nil, err
	}

	table := buildEdgeTable(p1, p2)
	child := make([]int, 0, n)

	// unused holds the values not yet placed; unusedPos indexes it for O(1)
	// swap-removal.
	unused := permutation.Clone(p1)
	unusedPos := permutation.IndexOf(unused)

	var (
		next = p1[0]
		a    int
		at   int
		last int
		lp   []neighbor
		ok   bool
	)
	for len(child) < n {
		a = next
		if at, ok = unusedPos[a]; !ok {
			return nil, wrapf(MethodEdge, ErrInvariantBroken, "value %d selected twice", a)
		}
		child = append(child, a)
		last = unused[len(unused)-1]
		unused[at] = last
		unusedPos[last] = at
		unused = unused[:len(unused)-1]
		delete(unusedPos, a)
		if len(child) == n {
			break
		}

		table.remove(a)
		if lp, ok = table[a]; !ok {
			return nil, wrapf(MethodEdge, ErrInvariantBroken, "value %d missing from edge table", a)
		}
		delete(table, a)

		switch len(lp) {
		case 0:
			next = unused[rng.Intn(len(unused))]
		case 1:
			next = lp[0].value
		default:
			next = table.choose(lp)
		}
	}
	if err := verifyChildren(MethodEdge, p1, child); err != nil {
		return nil, err
	}

	return child, nil
}

// EdgePair produces two Edge children, the second with the parents swapped,
// so Edge fits the two-child Operator shape.
func EdgePair(p1, p2 []int, rng *rand.Rand) ([]int, []int, error) {
	c1, err := Edge(p1, p2, len(p1), rng)
	if err != nil {
		return nil, nil, err
	}
	c2, err := Edge(p2, p1, len(p2), rng)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}
