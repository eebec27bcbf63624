package core

import "math/rand/v2"

// RNG wraps a PCG source so seeding stays reproducible across runs.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillThreshold sets each byte of buf to 1 when an independent draw exceeds
// threshold and to 0 otherwise.
func FillThreshold(r *rand.Rand, buf []uint8, threshold float64) {
	for i := range buf {
		if r.Float64() > threshold {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
