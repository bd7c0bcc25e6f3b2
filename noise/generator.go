// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"
)

const (
	// DefaultChunkDuration is how much audio is produced between yields.
	DefaultChunkDuration = 10 * time.Second

	// progressMinChunks is the chunk count above which progress is reported.
	progressMinChunks = 10
	progressSteps     = 10
)

// ProgressFunc receives the completed fraction of a generation run, in (0, 1].
type ProgressFunc func(fraction float64)

// Generator drives a Filter over a full buffer in bounded chunks.
//
// The zero value is not usable; create one with NewGenerator.
// A Generator holds no filter state between calls to Generate, but its Random
// is shared, so calls must not overlap.
type Generator struct {
	sampleRate int
	chunkSize  int
	random     Random
	progress   ProgressFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithChunkSize sets the chunk length in samples. Values below 1 are ignored.
func WithChunkSize(samples int) Option {
	return func(g *Generator) {
		if samples > 0 {
			g.chunkSize = samples
		}
	}
}

// WithRandom replaces the default entropy-seeded source.
func WithRandom(r Random) Option {
	return func(g *Generator) {
		if r != nil {
			g.random = r
		}
	}
}

// WithProgress registers a callback invoked between chunks on long runs.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// NewGenerator creates a Generator for sampleRate Hz.
func NewGenerator(sampleRate int, opts ...Option) (*Generator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%d Hz: %w", sampleRate, ErrInvalidSampleRate)
	}

	g := &Generator{
		sampleRate: sampleRate,
		chunkSize:  int(int64(sampleRate) * int64(DefaultChunkDuration/time.Second)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.random == nil {
		g.random = NewRandom()
	}

	return g, nil
}

// SampleRate of the produced signal in Hz.
func (g *Generator) SampleRate() int { return g.sampleRate }

// ChunkSize returns the number of samples produced between yields.
func (g *Generator) ChunkSize() int { return g.chunkSize }

// SampleCount converts seconds to a sample count at the generator's rate,
// rounding to the nearest sample.
func (g *Generator) SampleCount(seconds float64) int {
	return SampleCount(seconds, g.sampleRate)
}

// SampleCount returns round(seconds × sampleRate). NaN and results that do not
// fit an int return -1.
func SampleCount(seconds float64, sampleRate int) int {
	n := math.Round(seconds * float64(sampleRate))
	if math.IsNaN(n) || math.Abs(n) >= math.MaxInt {
		return -1
	}
	return int(n)
}

// Generate produces sampleCount samples of noise type t.
//
// The type and count are validated before the buffer is allocated. Between
// chunks the goroutine yields and ctx is checked; a cancelled context returns
// ctx.Err() and no samples.
func (g *Generator) Generate(ctx context.Context, t Type, sampleCount int) ([]float32, error) {
	if sampleCount <= 0 {
		return nil, fmt.Errorf("%d samples: %w", sampleCount, ErrInvalidDuration)
	}

	filter, err := NewFilter(t)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := make([]float32, sampleCount)
	chunks := (sampleCount + g.chunkSize - 1) / g.chunkSize
	report := g.progress != nil && chunks > progressMinChunks

	for c := range chunks {
		start := c * g.chunkSize
		end := min(start+g.chunkSize, sampleCount)
		filter.Fill(buf[start:end], g.random)

		if report && c*progressSteps/chunks != (c+1)*progressSteps/chunks {
			g.progress(float64(c+1) / float64(chunks))
		}

		runtime.Gosched()

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// Generate is a convenience wrapper around NewGenerator and Generator.Generate
// using the default chunk size and an entropy-seeded source.
func Generate(ctx context.Context, t Type, seconds float64, sampleRate int) ([]float32, error) {
	g, err := NewGenerator(sampleRate)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, t, g.SampleCount(seconds))
}
