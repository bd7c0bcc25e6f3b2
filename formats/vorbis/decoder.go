// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audnoise/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing.
// Read returns the number of values decoded, always a multiple of Channels.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// Whole frames only.
	want := len(dst) / s.channels * s.channels
	if want == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	n, err := s.dec.Read(dst[:want])
	switch {
	case err == io.EOF:
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
	case err != nil:
		return n, fmt.Errorf("vorbis: %w", err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec)
}

func newSource(dec oggReader) (*source, error) {
	if dec.Channels() <= 0 || dec.SampleRate() <= 0 {
		return nil, fmt.Errorf("%d channels at %d Hz: %w",
			dec.Channels(), dec.SampleRate(), ErrUnsupportedLayout)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
