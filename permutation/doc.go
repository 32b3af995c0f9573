// SPDX-License-Identifier: MIT
// Package: genops/permutation
//
// Package permutation holds the shared vocabulary of every permutation-encoded
// operator in genops: validation, value→position indexing, and a seeded
// permutation supplier.
//
// A permutation is a []int of n distinct values. Two shapes are recognised:
//
//   - Canonical: a bijection on {0..n-1}. Validate checks this shape and is what
//     the problem packages (nqueens, tsp) expect.
//   - Value-set: any n distinct integers. ValidatePair checks that two such
//     slices are orderings of the same value set; crossover operators only
//     require this weaker shape.
//
// Randomness:
//
//	No package-level generator exists. NewRand applies the seed policy used
//	across genops (seed==0 ⇒ a fixed default seed) and DeriveRand splits
//	independent streams from a base generator. A *rand.Rand is NOT safe for
//	concurrent use; give each goroutine its own stream.
//
// Errors are sentinels (see errors.go) and must be matched with errors.Is.
package permutation
