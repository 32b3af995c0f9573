// SPDX-License-Identifier: MIT
// Package: genops/crossover
//
// Package crossover implements pairwise recombination operators for genetic
// algorithms.
//
// Permutation operators (parents are orderings of one shared value set):
//
//   - PMX / PMXAt: Partially Mapped Crossover. A segment of the first parent
//     is kept in place; the displaced values of the second parent are placed by
//     chasing the p1→p2 position mapping until an empty slot is reached.
//   - OX / OXAt: Order Crossover. A segment of the first parent is kept in
//     place; the rest is filled with the second parent's values in the cyclic
//     order starting right after the segment.
//   - Cycle: Cycle Crossover. Positions are partitioned into cycles;
//     odd cycles inherit from the first parent, even cycles from the second.
//   - Edge: Edge (neighbour-list) Crossover. A single child is grown
//     from a circular adjacency table, preferring common edges and then the
//     neighbour with the fewest remaining options.
//
// Vector operators (any gene type): OnePoint / OnePointAt, Uniform.
// Real-valued operators: SingleArithmetic, SimpleArithmetic, WholeArithmetic.
//
// Contracts shared by every operator:
//
//   - Parents are never modified; children are freshly allocated.
//   - Randomness comes only from the *rand.Rand argument. The …At variants take
//     fixed cut points and are fully deterministic.
//   - Preconditions are checked up front and reported through the sentinels in
//     errors.go, wrapped with the operator name (e.g. "PMX: parents: …").
//   - Permutation children are re-validated before return; a failure there is
//     reported as ErrInvariantBroken and indicates a bookkeeping defect, not bad
//     input.
//
// Complexity (n = permutation length): PMX, OX and Cycle run in O(n) expected
// time with hash-map lookups; Edge runs in O(n²) because every placement scans
// the whole adjacency table.
//
// Concurrency: operators hold no shared state and may run in parallel as long
// as each goroutine owns its *rand.Rand.
package crossover
