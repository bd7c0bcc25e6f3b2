// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audnoise/utils"
)

const (
	// HeaderSize is the length of the canonical RIFF/WAVE PCM header.
	HeaderSize = 44

	pcmFormat     = 1
	bitsPerSample = 16
	fmtChunkSize  = 16

	// maxDataSize keeps both the RIFF size (36 + data) and the data size
	// within their uint32 fields.
	maxDataSize = math.MaxUint32 - (HeaderSize - 8)
)

// putHeader writes a 44-byte mono PCM16 header for dataSize bytes of samples.
func putHeader(header []byte, sampleRate int, dataSize uint32) {
	numChannels := uint16(1)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * uint16(bitsPerSample/8)
	riffSize := 36 + dataSize

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
}

func dataSize(samples int) (uint32, error) {
	if samples < 0 || int64(samples)*2 > maxDataSize {
		return 0, fmt.Errorf("%d samples: %w", samples, ErrDataTooLarge)
	}
	return uint32(samples * 2), nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.  samples must be int16 PCM.
// This uses an optimized implementation for minimal allocations.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%d Hz: %w", sampleRate, ErrInvalidSampleRate)
	}

	size, err := dataSize(len(samples))
	if err != nil {
		return err
	}

	header := make([]byte, HeaderSize)
	putHeader(header, sampleRate, size)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	// For better performance with large files, write in chunks
	const chunkSize = 8192
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeWAV16 serializes float samples in [-1, 1] into a complete mono PCM16
// WAV file held in memory. Out of range samples are clamped.
func EncodeWAV16(sampleRate int, samples []float32) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%d Hz: %w", sampleRate, ErrInvalidSampleRate)
	}

	size, err := dataSize(len(samples))
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+int(size))
	putHeader(out[:HeaderSize], sampleRate, size)

	data := out[HeaderSize:]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:i*2+2], uint16(utils.Float32ToInt16(s)))
	}

	return out, nil
}

// Encoder is the audio.Encoder for mono PCM16 WAV.
type Encoder struct{}

func (Encoder) Encode(sampleRate int, samples []float32) ([]byte, error) {
	return EncodeWAV16(sampleRate, samples)
}
