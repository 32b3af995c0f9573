// SPDX-License-Identifier: MIT
// Package: genops/nqueens
//
// Package nqueens encodes the N-Queens puzzle as a permutation problem.
//
// perm[col] is the row of the queen in column col. Using a permutation rules
// out row and column clashes, so only diagonal attacks remain: columns i and j
// attack each other when |i-j| == |perm[i]-perm[j]|. Quality counts the
// non-attacking pairs, so a solution scores n(n-1)/2.
package nqueens
