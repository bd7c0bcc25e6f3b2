// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
)

// funcSource renders frames from a waveform function for a fixed length.
type funcSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       func(frame, channel int) float32
	closed     bool
	failAfter  int // frames before ReadSamples fails; 0 disables
}

var errMockRead = errors.New("mock read failure")

func newFuncSource(sampleRate, channels, frames int, wave func(frame, channel int) float32) *funcSource {
	return &funcSource{sampleRate: sampleRate, channels: channels, frames: frames, wave: wave}
}

func newConstSource(sampleRate, channels, frames int, v float32) *funcSource {
	return newFuncSource(sampleRate, channels, frames, func(int, int) float32 { return v })
}

func newSineSource(sampleRate, frames int, freq float64) *funcSource {
	return newFuncSource(sampleRate, 1, frames, func(f, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(f) / float64(sampleRate)))
	})
}

// newRampSource yields frame index f as the sample value on every channel.
func newRampSource(sampleRate, channels, frames int) *funcSource {
	return newFuncSource(sampleRate, channels, frames, func(f, _ int) float32 { return float32(f) })
}

func (m *funcSource) SampleRate() int { return m.sampleRate }
func (m *funcSource) Channels() int   { return m.channels }
func (m *funcSource) BufSize() int    { return 64 * m.channels }

func (m *funcSource) Close() error {
	m.closed = true
	return nil
}

func (m *funcSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter > 0 && m.pos >= m.failAfter {
		return 0, errMockRead
	}
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.wave(m.pos+f, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// readAll drains src with a buffer of size samples.
func readAll(src Source, size int) ([]float32, error) {
	var out []float32
	buf := make([]float32, size)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
