// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic random sources for tests.
//
// The types here satisfy noise.Random without importing it, so any package
// can use them without import cycles.
package audiotest

import "math/rand/v2"

// SequenceRandom replays a fixed list of draws, wrapping around at the end.
type SequenceRandom struct {
	values []float64
	pos    int
	calls  int
}

// NewSequenceRandom returns a source that yields values in order.
func NewSequenceRandom(values ...float64) *SequenceRandom {
	return &SequenceRandom{values: values}
}

// NewConstantRandom returns a source that always yields value.
func NewConstantRandom(value float64) *SequenceRandom {
	return NewSequenceRandom(value)
}

func (s *SequenceRandom) Next() float64 {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	return v
}

// Calls returns how many draws were taken.
func (s *SequenceRandom) Calls() int { return s.calls }

// Reset rewinds to the first value and clears the call counter.
func (s *SequenceRandom) Reset() {
	s.pos = 0
	s.calls = 0
}

// Draws returns n uniform values in [-1, 1] from a seeded PCG generator.
// The same seed always produces the same slice.
func Draws(seed uint64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// NewSeededSequence returns a SequenceRandom over Draws(seed, n).
func NewSeededSequence(seed uint64, n int) *SequenceRandom {
	return NewSequenceRandom(Draws(seed, n)...)
}
