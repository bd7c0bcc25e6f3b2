// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file encoding and decoding.
//
// Only the canonical layout is handled: a 44-byte header with the fmt chunk
// at offset 12 and the data chunk at offset 36, mono or interleaved, PCM
// 16-bit little-endian.
//
// # Encoding
//
// EncodeWAV16 turns float samples into a complete file in memory:
//
//	data, err := wav.EncodeWAV16(44100, samples)
//
// Samples are clamped to [-1, 1]. Negative values scale by 32768 and
// non-negative values by 32767, truncating, so the full int16 range is used
// without overflow on the positive side.
//
// WriteWAV16 writes samples that are already int16 PCM to an io.Writer.
//
// # Decoding
//
// ParseHeader reads the format fields back from the first 44 bytes, and
// Decoder returns an audio.Source over the data chunk:
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # File Format
//
//	offset 0   "RIFF"
//	offset 4   36 + dataBytes
//	offset 8   "WAVE"
//	offset 12  "fmt "
//	offset 16  16 (fmt chunk size)
//	offset 20  1 (PCM)
//	offset 22  channels
//	offset 24  sample rate
//	offset 28  byte rate
//	offset 32  block align
//	offset 34  16 (bits per sample)
//	offset 36  "data"
//	offset 40  dataBytes
//	offset 44  samples
//
// # Errors
//
//   - ErrNotWavFile: missing RIFF/WAVE markers
//   - ErrOnlyPCM16bitSupported: format other than PCM 16-bit
//   - ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: non-canonical layout
//   - ErrDataTooLarge: more samples than the 32-bit size fields can describe
package wav
