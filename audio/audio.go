// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sort"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames).
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Encoder serializes a complete mono float32 signal into a container.
type Encoder interface {
	Encode(sampleRate int, samples []float32) ([]byte, error)
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(sampleRate int, samples []float32) ([]byte, error)

func (f EncoderFunc) Encode(sampleRate int, samples []float32) ([]byte, error) {
	return f(sampleRate, samples)
}

// Registry for encoders by format key (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Encoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = e
}

func (r *Registry) Get(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.codecs[format]
	return e, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Encode looks up format and runs its encoder.
func (r *Registry) Encode(format string, sampleRate int, samples []float32) ([]byte, error) {
	e, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return e.Encode(sampleRate, samples)
}
