// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audnoise/utils"
)

const bitDepth = 16

// EncodeAIFF16 serializes float samples in [-1, 1] into a mono 16-bit PCM
// AIFF file held in memory. Samples are converted exactly as the WAV encoder
// converts them.
func EncodeAIFF16(sampleRate int, samples []float32) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%d Hz: %w", sampleRate, ErrInvalidSampleRate)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(utils.Float32ToInt16(s))
	}

	ws := &writeSeeker{buf: make([]byte, 0, 54+len(samples)*2)}
	enc := aiff.NewEncoder(ws, sampleRate, bitDepth, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("writing aiff data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finalizing aiff: %w", err)
	}

	return ws.buf, nil
}

// Encoder is the audio.Encoder for mono PCM16 AIFF.
type Encoder struct{}

func (Encoder) Encode(sampleRate int, samples []float32) ([]byte, error) {
	return EncodeAIFF16(sampleRate, samples)
}

// writeSeeker implements io.WriteSeeker over a growing byte slice.
// go-audio seeks back to patch chunk sizes once all samples are written.
type writeSeeker struct {
	buf    []byte
	offset int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.buf)) {
		if end > int64(cap(ws.buf)) {
			grown := make([]byte, len(ws.buf), max(end, 2*int64(cap(ws.buf))))
			copy(grown, ws.buf)
			ws.buf = grown
		}
		ws.buf = ws.buf[:end]
	}

	copy(ws.buf[ws.offset:end], p)
	ws.offset = end

	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	ws.offset = newOffset
	return newOffset, nil
}
