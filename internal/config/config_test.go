// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/noise"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		data     string
		want     Request
	}{
		{
			name:     "yaml",
			filename: "req.yaml",
			data:     "type: pink\nduration: 1m30s\nsample_rate: 48000\nformat: aiff\n",
			want:     Request{Type: "pink", Duration: Duration(90 * time.Second), SampleRate: 48000, Format: "aiff"},
		},
		{
			name:     "yaml seconds",
			filename: "req.yml",
			data:     "type: brown\nduration: 2.5\n",
			want:     Request{Type: "brown", Duration: Duration(2500 * time.Millisecond), SampleRate: 44100},
		},
		{
			name:     "json",
			filename: "req.json",
			data:     `{"type":"violet","duration":3,"sample_rate":22050}`,
			want:     Request{Type: "violet", Duration: Duration(3 * time.Second), SampleRate: 22050},
		},
		{
			name:     "json string duration",
			filename: "req.json",
			data:     `{"type":"grey","duration":"250ms"}`,
			want:     Request{Type: "grey", Duration: Duration(250 * time.Millisecond), SampleRate: 44100},
		},
		{
			name:     "no extension falls back",
			filename: "request",
			data:     `{"type":"orange"}`,
			want:     Request{Type: "orange", Duration: Duration(10 * time.Second), SampleRate: 44100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(tt.data), tt.filename)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got.Type != tt.want.Type || got.Duration != tt.want.Duration ||
				got.SampleRate != tt.want.SampleRate || got.Format != tt.want.Format {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_Seed(t *testing.T) {
	t.Parallel()

	got, err := Parse([]byte("type: white\nseed: 42\n"), "r.yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Seed == nil || *got.Seed != 42 {
		t.Errorf("Seed = %v, want 42", got.Seed)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		data     string
	}{
		{"bad.yaml", "duration: soon\n"},
		{"bad.yaml", "duration: [1, 2]\n"},
		{"bad.json", `{"duration": true}`},
		{"bad.json", `{"type":`},
	}

	for _, tt := range tests {
		if _, err := Parse([]byte(tt.data), tt.filename); err == nil {
			t.Errorf("Parse(%s, %q) succeeded", tt.filename, tt.data)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "req.yaml")
	if err := os.WriteFile(path, []byte("type: blue\nduration: 5s\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Type != "blue" || time.Duration(got.Duration) != 5*time.Second {
		t.Errorf("Load() = %+v", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Default()

	tests := []struct {
		name   string
		modify func(*Request)
		want   error
	}{
		{"default", func(*Request) {}, nil},
		{"max duration", func(r *Request) { r.Duration = Duration(MaxDuration) }, nil},
		{"unknown type", func(r *Request) { r.Type = "unknown" }, noise.ErrUnsupportedNoiseType},
		{"zero duration", func(r *Request) { r.Duration = 0 }, noise.ErrInvalidDuration},
		{"too long", func(r *Request) { r.Duration = Duration(MaxDuration + time.Second) }, ErrDurationTooLong},
		{"rate low", func(r *Request) { r.SampleRate = 4000 }, ErrSampleRateOutOfRange},
		{"rate high", func(r *Request) { r.SampleRate = 384000 }, ErrSampleRateOutOfRange},
		{"format", func(r *Request) { r.Format = "mp3" }, audio.ErrUnknownFormat},
		{"empty format", func(r *Request) { r.Format = "" }, nil},
		{"zero chunk", func(r *Request) { r.ChunkSize = 0 }, nil},
		{"negative chunk", func(r *Request) { r.ChunkSize = -1 }, ErrInvalidChunkSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := valid
			tt.modify(&r)

			err := r.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	seed := uint64(9)
	r := Request{Type: "Orange", Duration: Duration(2 * time.Second), SampleRate: 16000, Format: "aiff", Seed: &seed}

	req, err := r.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if req.Type != noise.Orange || req.Duration != 2*time.Second || req.SampleRate != 16000 || req.Format != "aiff" {
		t.Errorf("Build() = %+v", req)
	}
	if req.Random == nil {
		t.Fatal("seeded request has no Random")
	}

	want := noise.NewSeededRandom(9)
	for i := range 5 {
		if a, b := req.Random.Next(), want.Next(); a != b {
			t.Fatalf("draw %d: %v != %v", i, a, b)
		}
	}

	noFormat := r
	noFormat.Format = ""
	if req, err := noFormat.Build(); err != nil || req.Format != "wav" {
		t.Errorf("Build() without format = (%q, %v), want wav", req.Format, err)
	}

	if _, err := (Request{}).Build(); err == nil {
		t.Error("Build() of the zero Request succeeded")
	}
}

func TestDuration_Marshal(t *testing.T) {
	t.Parallel()

	d := Duration(90 * time.Second)

	j, err := d.MarshalJSON()
	if err != nil || string(j) != `"1m30s"` {
		t.Errorf("MarshalJSON() = %s, %v", j, err)
	}

	y, err := d.MarshalYAML()
	if err != nil || y != "1m30s" {
		t.Errorf("MarshalYAML() = %v, %v", y, err)
	}
}
