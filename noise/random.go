// SPDX-License-Identifier: EPL-2.0

package noise

import "math/rand/v2"

// Random supplies uniformly distributed values in [-1, 1].
// Implementations are not required to be safe for concurrent use.
type Random interface {
	Next() float64
}

type rngRandom struct {
	rng *rand.Rand
}

func (r *rngRandom) Next() float64 {
	return r.rng.Float64()*2 - 1
}

// NewRandom returns a Random seeded from the runtime entropy source.
func NewRandom() Random {
	return &rngRandom{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRandom returns a deterministic Random. Two sources created with the
// same seed produce the same sequence.
func NewSeededRandom(seed uint64) Random {
	return &rngRandom{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// RandomFunc adapts a plain function to the Random interface.
type RandomFunc func() float64

func (f RandomFunc) Next() float64 { return f() }
