// SPDX-License-Identifier: MIT
// Package: genops
//
// Package genops is a toolbox of genetic-algorithm building blocks for three
// classic toy problems: 0-1 Knapsack, N-Queens and the Travelling Salesman
// Problem.
//
// It stops short of a GA driver: selection, the generational loop and
// termination are left to the caller. The packages combine freely:
//
//	permutation/  validation, seeded RNG and random permutations
//	crossover/    PMX, OX, cycle and edge crossover; one-point, uniform and
//	              arithmetic recombination for vector genomes
//	mutation/     bit flip, resetting, creep, Gaussian noise; inversion,
//	              swap and insertion for permutations
//	knapsack/     feasibility, quality and feasible initial populations
//	nqueens/      diagonal attacks, quality and random boards
//	tsp/          cost matrices (gonum/mat), tour length and quality
//	population/   one evaluated generation with stats, chart and numeric dump
//	numfile/      plain whitespace-separated numeric input files
//	cmd/gasnap    command-line front end
//
// All randomness flows through an explicit *rand.Rand. permutation.NewRand
// maps seed 0 to a fixed default, so every run is reproducible.
//
// Quick example:
//
//	rng := permutation.NewRand(7)
//	p1, _ := permutation.Random(9, rng)
//	p2, _ := permutation.Random(9, rng)
//	c1, c2, err := crossover.PMX(p1, p2, rng)
package genops
