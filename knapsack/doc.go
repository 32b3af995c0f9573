// SPDX-License-Identifier: MIT
// Package: genops/knapsack
//
// Package knapsack encodes the 0-1 knapsack problem for a genetic algorithm.
//
// A candidate is a binary vector x of the instance's dimension. It is
// feasible when Σ Costs[i]·x[i] <= Capacity, and its quality is
// Σ Values[i]·x[i].
//
// InitialPopulation draws feasible candidates by rejection sampling: each
// bit is a fair coin and infeasible draws are discarded. The all-zero vector
// is always feasible, so sampling only gives up after a caller-chosen number
// of attempts (ErrNoFeasible), never loops forever.
package knapsack
