// SPDX-License-Identifier: MIT
// Package: genops/numfile
//
// Package numfile reads the plain numeric text files used for problem
// instances: knapsack cost and value vectors, and TSP distance matrices.
//
// Format:
//
//	# comment lines and trailing comments start with '#'
//	0   12  7.5
//	12  0   3
//	7.5 3   0
//
// Tokens are separated by any whitespace. Blank lines are skipped. A vector
// file may spread its numbers over any number of lines; a matrix file must
// have the same number of columns on every data line.
package numfile
