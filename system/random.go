package system

import "math/rand/v2"

// Random is the source of chance for spawn decisions
// *rand.Rand from math/rand/v2 satisfies it; tests substitute scripted values
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom returns a PCG-backed source seeded with seed
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform returns a value in [lo, hi)
func uniform(rng Random, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
