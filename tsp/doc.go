// SPDX-License-Identifier: MIT
// Package: genops/tsp
//
// Package tsp encodes the Travelling Salesman Problem for a genetic algorithm.
//
// An instance is an n×n cost matrix (*mat.Dense from gonum) with a zero
// diagonal and non-negative finite entries; it need not be symmetric. A
// candidate is a permutation of the cities 0..n-1. Its length is the sum of
// the costs along consecutive cities plus the closing edge back to the first
// city, and its quality is 100/length, so shorter tours score higher.
//
// MakeTourFromPermutation turns a candidate into its closed tour (len n+1,
// tour[0]==tour[n]), the form gasnap reports for the best individual.
//
// Typical use:
//
//	dist, err := tsp.NewCostMatrix(rows)
//	snap, err := tsp.InitialPopulation(dist, 30, permutation.NewRand(seed))
package tsp
