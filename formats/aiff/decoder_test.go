// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	failWith   error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newMockSource(samples ...int) *source {
	return &source{
		dec:        &mockAiffReader{sampleRate: 8000, channels: 1, samples: samples},
		sampleRate: 8000,
		channels:   1,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not AIFF data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newMockSource(0, 16384, -16384, 32767, -32768)

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	expected := []float32{0.0, 0.5, -0.5, 0.999969482, -1.0}
	for i := range n {
		if dst[i] < expected[i]-0.001 || dst[i] > expected[i]+0.001 {
			t.Errorf("dst[%d] = %f, want ~%f", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := newMockSource(100, 200)

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 2 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (2, EOF)", n, err)
	}

	n, err = src.ReadSamples(make([]float32, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	n, err := newMockSource(1, 2, 3).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newMockSource()
	src.dec.(*mockAiffReader).failWith = io.ErrUnexpectedEOF

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := newMockSource(1, 2, 3, 4)
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() before read = %d, want 4096", src.BufSize())
	}

	_, _ = src.ReadSamples(make([]float32, 64))
	if src.BufSize() != 64 {
		t.Errorf("BufSize() after read = %d, want 64", src.BufSize())
	}
}
