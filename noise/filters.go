// SPDX-License-Identifier: EPL-2.0

package noise

import "fmt"

// whiteScale is applied to every raw draw before filtering.
const whiteScale = 0.5

// Filter shapes uniform draws into a colored noise signal.
//
// Fill writes len(dst) samples, consuming exactly one draw from r per sample.
// Stateful filters keep their taps between calls, so filling two halves of a
// buffer yields the same samples as filling the whole buffer at once.
// A Filter must not be shared between goroutines.
type Filter interface {
	Fill(dst []float32, r Random)
}

// NewFilter returns a filter for t in its initial state.
func NewFilter(t Type) (Filter, error) {
	switch t {
	case White:
		return WhiteFilter{}, nil
	case Pink:
		return &PinkFilter{}, nil
	case Brown:
		return &BrownFilter{}, nil
	case Blue:
		return &BlueFilter{}, nil
	case Violet:
		return &VioletFilter{}, nil
	case Grey:
		return GreyFilter{}, nil
	case Orange:
		return &OrangeFilter{}, nil
	}
	return nil, fmt.Errorf("%v: %w", t, ErrUnsupportedNoiseType)
}

// WhiteFilter passes scaled draws through unchanged.
type WhiteFilter struct{}

func (WhiteFilter) Fill(dst []float32, r Random) {
	for i := range dst {
		dst[i] = float32(r.Next() * whiteScale)
	}
}

// PinkFilter approximates a 1/f spectrum with Paul Kellet's refined method:
// six leaky integrators plus a one-sample delayed tap.
type PinkFilter struct {
	b [7]float64
}

var pinkPoles = [6]struct{ a, c float64 }{
	{0.99886, 0.0555179},
	{0.99332, 0.0750759},
	{0.96900, 0.1538520},
	{0.86650, 0.3104856},
	{0.55000, 0.5329522},
	{-0.7616, -0.0168980},
}

func (f *PinkFilter) Fill(dst []float32, r Random) {
	b := f.b
	for i := range dst {
		white := r.Next() * whiteScale
		sum := 0.0
		for k, p := range pinkPoles {
			b[k] = p.a*b[k] + white*p.c
			sum += b[k]
		}
		// b[6] still holds the previous step's tap here.
		out := sum + b[6] + white*0.5362
		dst[i] = float32(out * 0.11)
		b[6] = white * 0.115926
	}
	f.b = b
}

// BrownFilter is a leaky integrator giving a 1/f² spectrum.
type BrownFilter struct {
	last float64
}

func (f *BrownFilter) Fill(dst []float32, r Random) {
	last := f.last
	for i := range dst {
		white := r.Next() * whiteScale
		last = (last + white*0.02) * 0.99
		dst[i] = float32(last * 3.5)
	}
	f.last = last
}

// BlueFilter is a first difference of white noise.
type BlueFilter struct {
	prev float64
}

func (f *BlueFilter) Fill(dst []float32, r Random) {
	prev := f.prev
	for i := range dst {
		white := r.Next() * whiteScale
		dst[i] = float32((white - prev) * 0.5)
		prev = white
	}
	f.prev = prev
}

// VioletFilter is a second difference of white noise.
type VioletFilter struct {
	prev1, prev2 float64
}

func (f *VioletFilter) Fill(dst []float32, r Random) {
	p1, p2 := f.prev1, f.prev2
	for i := range dst {
		white := r.Next() * whiteScale
		dst[i] = float32((white - 2*p1 + p2) * 0.3)
		p2, p1 = p1, white
	}
	f.prev1, f.prev2 = p1, p2
}

// GreyFilter applies a rough equal-loudness blend of two one-pole smoothers.
//
// The smoothers restart from zero on every Fill call, so a chunked run differs
// from an unchunked one at each chunk boundary.
type GreyFilter struct{}

func (GreyFilter) Fill(dst []float32, r Random) {
	var s1, s2 float64
	for i := range dst {
		x := r.Next() * whiteScale * 0.7 * 0.6
		s1 += (x - s1) * 0.01
		s2 += (x - s2) * 0.05
		dst[i] = float32((0.4*s1 + 0.3*s2 + 0.3*x) * 1.2)
	}
}

// OrangeFilter runs white noise through two cascaded leaky integrators.
type OrangeFilter struct {
	state, last float64
}

func (f *OrangeFilter) Fill(dst []float32, r Random) {
	state, last := f.state, f.last
	for i := range dst {
		white := r.Next() * whiteScale
		state = state*0.992 + white*0.008
		last = (last + state*0.015) * 0.995
		dst[i] = float32(last * 2.8)
	}
	f.state, f.last = state, last
}
