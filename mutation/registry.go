// SPDX-License-Identifier: MIT
// Package: genops/mutation

package mutation

import (
	"math/rand"
	"sort"
	"strings"
)

// Operator is the shape shared by the permutation mutations.
type Operator func(p []int, rng *rand.Rand) ([]int, error)

var operators = map[string]Operator{
	"inversion": Inversion,
	"swap":      Swap,
	"insertion": Insertion,
}

// Lookup returns the permutation mutation registered under name
// (case-insensitive): inversion, swap, insertion.
func Lookup(name string) (Operator, error) {
	op, ok := operators[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, wrapf("Lookup", ErrUnknownOperator, "%q", name)
	}

	return op, nil
}

// Names lists the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(operators))
	for name := range operators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
