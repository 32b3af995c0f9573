// SPDX-License-Identifier: MIT
// Package: genops/mutation
//
// Package mutation provides single-parent variation operators.
//
// Gene-level operators return a new gene value and never leave the allowed
// range:
//
//   - BitFlip: binary genes.
//   - RandomResetting, Creep: integer genes in [lo, hi) and [lo, hi].
//   - UniformReal, NonUniform: real genes in [lo, hi].
//
// Permutation operators return a fresh slice and leave the input untouched;
// the result is always a permutation of the input's values:
//
//   - Inversion / InversionAt: reverse p[Lo..Hi].
//   - Swap / SwapAt: exchange two positions.
//   - Insertion / InsertionAt: move p[Hi] right after p[Lo].
//
// Random positions are drawn like crossover cut points (crossover.RandomCut),
// so Lo < Hi always holds. Randomness comes only from the *rand.Rand argument.
package mutation
