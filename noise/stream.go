// SPDX-License-Identifier: EPL-2.0

package noise

import "fmt"

// Stream is an endless mono noise source. It satisfies audio.Source.
//
// Unlike Generator it never ends and never normalizes: samples come straight
// from the filter, whose state carries across ReadSamples calls.
type Stream struct {
	sampleRate int
	filter     Filter
	random     Random
	gain       float32
	closed     bool
}

// NewStream creates a Stream of type t at sampleRate Hz. A nil r uses an
// entropy-seeded source.
func NewStream(t Type, sampleRate int, r Random) (*Stream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%d Hz: %w", sampleRate, ErrInvalidSampleRate)
	}

	filter, err := NewFilter(t)
	if err != nil {
		return nil, err
	}

	if r == nil {
		r = NewRandom()
	}

	return &Stream{
		sampleRate: sampleRate,
		filter:     filter,
		random:     r,
		gain:       1,
	}, nil
}

// SetGain scales every subsequent sample by g.
func (s *Stream) SetGain(g float32) { s.gain = g }

func (s *Stream) SampleRate() int { return s.sampleRate }
func (s *Stream) Channels() int   { return 1 }
func (s *Stream) BufSize() int    { return 4096 }

func (s *Stream) Close() error {
	s.closed = true
	return nil
}

// ReadSamples fills dst completely. After Close it returns ErrStreamClosed.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, ErrStreamClosed
	}
	if len(dst) == 0 {
		return 0, nil
	}

	s.filter.Fill(dst, s.random)
	if s.gain != 1 {
		for i := range dst {
			dst[i] *= s.gain
		}
	}

	return len(dst), nil
}
