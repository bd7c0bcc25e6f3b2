// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audnoise/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / 32768.0
	}

	// Fewer samples than requested without an error means the stream ended.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Info describes a 16-bit PCM AIFF stream.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	src, _, err := decode(r)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// ReadInfo validates an AIFF stream and returns its format fields.
func ReadInfo(r io.Reader) (Info, error) {
	_, info, err := decode(r)
	return info, err
}

func decode(r io.Reader) (*source, Info, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, Info{}, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, Info{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != bitDepth {
		return nil, Info{}, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, Info{}, ErrUnsupportedAiffLayout
	}

	info := Info{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   int(dec.BitDepth),
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, info, nil
}
