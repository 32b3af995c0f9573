// SPDX-License-Identifier: MIT
// Package: genops/mutation
//
// gene.go: gene-level mutations for binary, integer and real encodings.

package mutation

import (
	"math"
	"math/rand"
)

// BitFlip returns 1 for a zero gene and 0 for any other value.
func BitFlip(bit int) int {
	if bit == 0 {
		return 1
	}

	return 0
}

// RandomResetting draws a fresh integer uniformly from [lo, hi).
func RandomResetting(lo, hi int, rng *rand.Rand) (int, error) {
	if rng == nil {
		return 0, wrapf("RandomResetting", ErrNilRand, "rng")
	}
	if lo >= hi {
		return 0, wrapf("RandomResetting", ErrBadRange, "[%d, %d)", lo, hi)
	}

	return lo + rng.Intn(hi-lo), nil
}

// Creep nudges v by ±1 (fair coin) and clamps the result to [lo, hi].
func Creep(v, lo, hi int, rng *rand.Rand) (int, error) {
	if rng == nil {
		return 0, wrapf("Creep", ErrNilRand, "rng")
	}
	if lo > hi {
		return 0, wrapf("Creep", ErrBadRange, "[%d, %d]", lo, hi)
	}
	step := 1
	if rng.Intn(2) == 0 {
		step = -1
	}

	return clampInt(v+step, lo, hi), nil
}

// UniformReal draws a fresh real uniformly from [lo, hi).
func UniformReal(lo, hi float64, rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, wrapf("UniformReal", ErrNilRand, "rng")
	}
	if err := checkRealRange("UniformReal", lo, hi); err != nil {
		return 0, err
	}

	return lo + rng.Float64()*(hi-lo), nil
}

// NonUniform adds Gaussian noise N(0, sigma²) to v and clamps to [lo, hi].
// sigma must be finite and non-negative; sigma=0 only clamps.
func NonUniform(v, sigma, lo, hi float64, rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, wrapf("NonUniform", ErrNilRand, "rng")
	}
	if err := checkRealRange("NonUniform", lo, hi); err != nil {
		return 0, err
	}
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return 0, wrapf("NonUniform", ErrBadRange, "sigma=%v", sigma)
	}

	return clampFloat(v+rng.NormFloat64()*sigma, lo, hi), nil
}

func checkRealRange(method string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return wrapf(method, ErrBadRange, "[%v, %v]", lo, hi)
	}

	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
