// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// cycle.go: Cycle Crossover.

package crossover

import "github.com/katalvlaran/genops/permutation"

// CycleDecomposition partitions the positions of two parents into cycles.
// The cycle through position i follows i → j where p1[j] == p2[i] until the
// walk returns to i. Cycles are numbered from 1 in order of their lowest
// position; out[i] is the number of the cycle containing i. A position with
// p1[i] == p2[i] forms a cycle of its own and still consumes a number.
//
// Complexity: O(n) expected time, O(n) space.
func CycleDecomposition(p1, p2 []int) ([]int, error) {
	if err := validatePermParents(MethodCycle, p1, p2, 1); err != nil {
		return nil, err
	}

	return cycleNumbers(p1, p2)
}

func cycleNumbers(p1, p2 []int) ([]int, error) {
	var n = len(p1)
	cycles := make([]int, n) // 0 marks an unvisited position
	posInP1 := permutation.IndexOf(p1)

	var (
		no    int
		i, j  int
		next  int
		steps int
		ok    bool
	)
	for i = 0; i < n; i++ {
		if cycles[i] != 0 {
			continue
		}
		no++
		j = i
		for steps = 0; ; steps++ {
			if steps >= n {
				return nil, wrapf(MethodCycle, ErrInvariantBroken, "cycle from %d did not close", i)
			}
			cycles[j] = no
			if next, ok = posInP1[p2[j]]; !ok {
				return nil, wrapf(MethodCycle, ErrInvariantBroken, "value %d missing from mapping", p2[j])
			}
			j = next
			if j == i {
				break
			}
			if cycles[j] != 0 {
				return nil, wrapf(MethodCycle, ErrInvariantBroken, "position %d reached by two cycles", j)
			}
		}
	}

	return cycles, nil
}

// Cycle runs Cycle Crossover. Odd-numbered cycles copy p1 into child 1 and p2
// into child 2; even-numbered cycles swap the donors. The operator uses no
// randomness, and Cycle(p, p) returns two copies of p.
//
// Errors: ErrLengthMismatch, ErrTooShort (empty parents), ErrNotPermutation,
// ErrInvariantBroken.
//
// Complexity: O(n) expected time, O(n) space.
func Cycle(p1, p2 []int) ([]int, []int, error) {
	if err := validatePermParents(MethodCycle, p1, p2, 1); err != nil {
		return nil, nil, err
	}
	cycles, err := cycleNumbers(p1, p2)
	if err != nil {
		return nil, nil, err
	}

	var n = len(p1)
	c1 := make([]int, n)
	c2 := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		if cycles[i]%2 == 1 {
			c1[i] = p1[i]
			c2[i] = p2[i]
		} else {
			c1[i] = p2[i]
			c2[i] = p1[i]
		}
	}
	if err = verifyChildren(MethodCycle, p1, c1, c2); err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}
