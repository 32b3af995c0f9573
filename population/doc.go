// SPDX-License-Identifier: MIT
// Package: genops/population
//
// Package population holds one generation of candidate solutions together
// with their qualities, as produced by the problem initializers.
//
// A Snapshot is a value, not a driver: nothing here selects, evolves or
// terminates. It offers summary statistics (gonum/stat), the classic
// index-vs-quality chart (gonum/plot, green line with square markers) and a
// plain numeric dump, one row per individual with the quality last.
package population
