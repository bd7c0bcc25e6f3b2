// SPDX-License-Identifier: EPL-2.0

// Package config loads and validates noise render requests for the command
// line tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audnoise"
	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/noise"
)

const (
	MaxDuration   = 120 * time.Minute
	MinSampleRate = 8000
	MaxSampleRate = 192000
)

// Request is the on-disk form of a render request.
//
//	type: pink
//	duration: 1m30s
//	sample_rate: 48000
//	format: wav
//	seed: 42
type Request struct {
	Type       string   `yaml:"type" json:"type"`
	Duration   Duration `yaml:"duration" json:"duration"`
	SampleRate int      `yaml:"sample_rate" json:"sample_rate"`
	Format     string   `yaml:"format" json:"format"`
	Seed       *uint64  `yaml:"seed,omitempty" json:"seed,omitempty"`
	ChunkSize  int      `yaml:"chunk_size,omitempty" json:"chunk_size,omitempty"`
}

// Default returns ten seconds of white noise at 44.1 kHz as WAV.
func Default() Request {
	return Request{
		Type:       noise.White.String(),
		Duration:   Duration(10 * time.Second),
		SampleRate: audnoise.DefaultSampleRate,
		Format:     audnoise.DefaultFormat,
	}
}

func fileDefault() Request {
	r := Default()
	r.Format = ""
	return r
}

// Load reads a YAML or JSON request file on top of Default.
func Load(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data according to the extension of filename. Unknown
// extensions try YAML first, then JSON.
//
// Format stays empty unless the file sets it, so callers can still pick the
// container from an output path.
func Parse(data []byte, filename string) (Request, error) {
	req := fileDefault()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		if err := json.Unmarshal(data, &req); err != nil {
			return Request{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return Request{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &req); err != nil {
			req = fileDefault()
			if err := json.Unmarshal(data, &req); err != nil {
				return Request{}, fmt.Errorf("failed to parse file (tried YAML and JSON): %w", err)
			}
		}
	}

	return req, nil
}

// Validate applies the tool's limits on top of the generator's own checks.
func (r Request) Validate() error {
	if _, err := noise.ParseType(r.Type); err != nil {
		return err
	}

	d := time.Duration(r.Duration)
	if d <= 0 {
		return fmt.Errorf("%v: %w", d, noise.ErrInvalidDuration)
	}
	if d > MaxDuration {
		return fmt.Errorf("%v > %v: %w", d, MaxDuration, ErrDurationTooLong)
	}

	if r.SampleRate < MinSampleRate || r.SampleRate > MaxSampleRate {
		return fmt.Errorf("%d Hz not in [%d, %d]: %w",
			r.SampleRate, MinSampleRate, MaxSampleRate, ErrSampleRateOutOfRange)
	}

	if r.ChunkSize < 0 {
		return fmt.Errorf("%d samples: %w", r.ChunkSize, ErrInvalidChunkSize)
	}

	if _, ok := audnoise.Encoders.Get(r.format()); !ok {
		return fmt.Errorf("%q: %w", r.Format, audio.ErrUnknownFormat)
	}

	return nil
}

// format returns the container key, DefaultFormat when unset.
func (r Request) format() string {
	if r.Format == "" {
		return audnoise.DefaultFormat
	}
	return r.Format
}

// Build validates r and turns it into a render request.
func (r Request) Build() (audnoise.Request, error) {
	if err := r.Validate(); err != nil {
		return audnoise.Request{}, err
	}

	t, _ := noise.ParseType(r.Type)
	req := audnoise.Request{
		Type:       t,
		Duration:   time.Duration(r.Duration),
		SampleRate: r.SampleRate,
		Format:     r.format(),
		ChunkSize:  r.ChunkSize,
	}
	if r.Seed != nil {
		req.Random = noise.NewSeededRandom(*r.Seed)
	}

	return req, nil
}
