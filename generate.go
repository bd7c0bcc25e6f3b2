// SPDX-License-Identifier: EPL-2.0

package audnoise

import (
	"context"
	"fmt"
	"time"

	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/formats/aiff"
	"github.com/ik5/audnoise/formats/wav"
	"github.com/ik5/audnoise/noise"
)

const (
	// DefaultSampleRate is used when a Request leaves SampleRate at zero.
	DefaultSampleRate = 44100

	// DefaultFormat is the container used when a Request leaves Format empty.
	DefaultFormat = "wav"
)

// Encoders holds the containers Generate can produce.
var Encoders = newEncoders()

func newEncoders() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Encoder{})
	r.Register("aiff", aiff.Encoder{})
	return r
}

// Request describes one noise rendering.
type Request struct {
	Type noise.Type

	// Duration wins over Seconds when both are set.
	Duration time.Duration
	Seconds  float64

	SampleRate int
	Format     string

	// ChunkSize overrides the generator chunk length in samples.
	ChunkSize int
	Random    noise.Random
	Progress  noise.ProgressFunc
}

func (r Request) seconds() float64 {
	if r.Duration != 0 {
		return r.Duration.Seconds()
	}
	return r.Seconds
}

func (r Request) sampleRate() int {
	if r.SampleRate == 0 {
		return DefaultSampleRate
	}
	return r.SampleRate
}

func (r Request) format() string {
	if r.Format == "" {
		return DefaultFormat
	}
	return r.Format
}

// GenerateSamples renders req into a normalized mono float32 buffer.
func GenerateSamples(ctx context.Context, req Request) ([]float32, error) {
	g, err := noise.NewGenerator(req.sampleRate(),
		noise.WithChunkSize(req.ChunkSize),
		noise.WithRandom(req.Random),
		noise.WithProgress(req.Progress),
	)
	if err != nil {
		return nil, err
	}

	samples, err := g.Generate(ctx, req.Type, g.SampleCount(req.seconds()))
	if err != nil {
		return nil, err
	}

	audio.Normalize(samples)
	return samples, nil
}

// Generate renders req and encodes it in the requested container. On any
// error, cancellation included, no bytes are returned.
func Generate(ctx context.Context, req Request) ([]byte, error) {
	enc, ok := Encoders.Get(req.format())
	if !ok {
		return nil, fmt.Errorf("%q: %w", req.format(), audio.ErrUnknownFormat)
	}

	samples, err := GenerateSamples(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := enc.Encode(req.sampleRate(), samples)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", req.format(), err)
	}

	return data, nil
}
