// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// registry.go: name → operator lookup for permutation operators.

package crossover

import (
	"math/rand"
	"sort"
	"strings"
)

// Operator is the two-parent, two-child shape shared by the permutation
// operators. Deterministic operators ignore rng.
type Operator func(p1, p2 []int, rng *rand.Rand) ([]int, []int, error)

var operators = map[string]Operator{
	"pmx": PMX,
	"ox":  OX,
	"cx": func(p1, p2 []int, _ *rand.Rand) ([]int, []int, error) {
		return Cycle(p1, p2)
	},
	"ecx": EdgePair,
	"onepoint": func(p1, p2 []int, rng *rand.Rand) ([]int, []int, error) {
		return OnePoint(p1, p2, rng)
	},
	"uniform": func(p1, p2 []int, rng *rand.Rand) ([]int, []int, error) {
		return Uniform(p1, p2, rng)
	},
}

// Lookup returns the operator registered under name (case-insensitive):
// pmx, ox, cx, ecx, onepoint, uniform. onepoint and uniform do not preserve
// the permutation property and are meant for binary or integer genomes.
func Lookup(name string) (Operator, error) {
	op, ok := operators[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, wrapf("Lookup", ErrUnknownOperator, "%q", name)
	}

	return op, nil
}

// Names lists the registered operator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(operators))
	for name := range operators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// PreservesPermutation reports whether the named operator always returns
// permutations of its parents' value set.
func PreservesPermutation(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pmx", "ox", "cx", "ecx":
		return true
	default:
		return false
	}
}
