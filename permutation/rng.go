// SPDX-License-Identifier: MIT
// Package: genops/permutation
//
// rng.go: deterministic generators and the random permutation supplier.
//
// Policy:
//   - seed==0 ⇒ DefaultSeed; any other seed is used verbatim.
//   - No time-based sources anywhere in the library.
//   - math/rand.Rand is NOT goroutine-safe; derive one stream per worker.

package permutation

import (
	"fmt"
	"math/rand"
)

// DefaultSeed is the fixed seed substituted for seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand under the seed policy above.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// golden is the SplitMix64 increment, 2^64 divided by the golden ratio.
const golden uint64 = 0x9e3779b97f4a7c15

// splitmix64 returns the output of one SplitMix64 step from state x.
func splitmix64(x uint64) uint64 {
	x += golden
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb

	return x ^ x>>31
}

// DeriveRand returns the generator for stream id of base. base.Int63() is
// consumed once per call, so deriving streams 0, 1, ... in a fixed order
// from one NewRand(seed) is reproducible. base==nil uses DefaultSeed.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := uint64(DefaultSeed)
	if base != nil {
		parent = uint64(base.Int63())
	}

	return rand.New(rand.NewSource(int64(splitmix64(parent + stream*golden))))
}

// Shuffle performs an in-place Fisher–Yates shuffle of p.
// rng==nil falls back to NewRand(0).
//
// Complexity: O(n) time, O(1) space.
func Shuffle(p []int, rng *rand.Rand) {
	var n = len(p)
	if n <= 1 {
		return
	}

	var (
		r = rng
		i int
		j int
	)
	if r == nil {
		r = NewRand(0)
	}
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

// Random returns a uniformly random permutation of {0..n-1} drawn from rng.
// This is the permutation supplier used by the problem initializers.
//
// Complexity: O(n) time, O(n) space.
func Random(n int, rng *rand.Rand) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrDimensionMismatch)
	}
	p := Identity(n)
	Shuffle(p, rng)

	return p, nil
}
