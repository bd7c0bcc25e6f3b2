// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ik5/audnoise/audio"
)

// Header holds the fields of a canonical 44-byte PCM WAV header.
type Header struct {
	AudioFormat   uint16
	Channels      int
	SampleRate    int
	ByteRate      int
	BlockAlign    int
	BitsPerSample int
	DataSize      int
}

// Samples returns the number of samples per channel in the data chunk.
func (h Header) Samples() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return h.DataSize / h.BlockAlign
}

// Duration returns the playing time described by the header.
func (h Header) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.Samples()) * time.Second / time.Duration(h.SampleRate)
}

// ParseHeader decodes a canonical RIFF/WAVE PCM16 header: fmt chunk at
// offset 12 and data chunk at offset 36.
func ParseHeader(header []byte) (Header, error) {
	if len(header) < HeaderSize {
		return Header{}, fmt.Errorf("%d header bytes: %w", len(header), ErrUnsupportedWavLayout)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) {
		return Header{}, ErrUnsupportedWavLayout
	}

	h := Header{
		AudioFormat:   binary.LittleEndian.Uint16(header[20:22]),
		Channels:      int(binary.LittleEndian.Uint16(header[22:24])),
		SampleRate:    int(binary.LittleEndian.Uint32(header[24:28])),
		ByteRate:      int(binary.LittleEndian.Uint32(header[28:32])),
		BlockAlign:    int(binary.LittleEndian.Uint16(header[32:34])),
		BitsPerSample: int(binary.LittleEndian.Uint16(header[34:36])),
	}

	if h.AudioFormat != pcmFormat || h.BitsPerSample != bitsPerSample {
		return Header{}, ErrOnlyPCM16bitSupported
	}

	if !bytes.HasPrefix(header[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavChunks
	}
	h.DataSize = int(binary.LittleEndian.Uint32(header[40:44]))

	return h, nil
}

type wavSource struct {
	r         io.Reader
	header    Header
	remaining int
	buf       []byte
}

func (s *wavSource) SampleRate() int { return s.header.SampleRate }
func (s *wavSource) Channels() int   { return s.header.Channels }
func (s *wavSource) BufSize() int    { return cap(s.buf) / 2 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining <= 0 {
		return 0, io.EOF
	}

	want := min(len(dst)*2, s.remaining)
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	s.remaining -= n

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = float32(v) / 32768.0
	}

	if samples == 0 {
		return 0, io.EOF
	}
	if err != nil {
		// Source ended before the declared data size.
		s.remaining = 0
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	header := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	h, err := ParseHeader(header)
	if err != nil {
		return nil, err
	}

	return &wavSource{
		r:         r,
		header:    h,
		remaining: h.DataSize,
		buf:       make([]byte, 4096),
	}, nil
}

// ReadAll decodes every sample of a mono or interleaved PCM16 WAV.
func ReadAll(r io.Reader) ([]float32, Header, error) {
	src, err := Decoder{}.Decode(r)
	if err != nil {
		return nil, Header{}, err
	}
	defer src.Close()

	h := src.(*wavSource).header
	out := make([]float32, 0, min(h.DataSize/2, 1<<22))
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Header{}, err
		}
	}

	return out, h, nil
}
