// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves an in-memory interleaved signal as a Source.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	off        int
}

// NewBufferSource wraps samples recorded at sampleRate Hz. Channels below 1
// are treated as mono.
func NewBufferSource(samples []float32, sampleRate, channels int) *BufferSource {
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Remaining returns the number of samples not yet read.
func (b *BufferSource) Remaining() int { return len(b.samples) - b.off }

// ReadSamples copies the next samples into dst. The read that reaches the end
// of the buffer returns io.EOF along with its samples.
func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.off >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.off:])
	b.off += n

	if b.off >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}
