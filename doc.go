// SPDX-License-Identifier: EPL-2.0

// Package audnoise renders colored noise into in-memory audio files.
//
// A render runs in four steps: a random source feeds a noise filter, the
// generator drives the filter over the full buffer in chunks, the buffer is
// peak normalized, and an encoder wraps it in a container.
//
//	data, err := audnoise.Generate(ctx, audnoise.Request{
//		Type:       noise.Pink,
//		Duration:   30 * time.Second,
//		SampleRate: 44100,
//	})
//
// The result is a canonical 44 byte RIFF/WAVE header followed by mono
// 16-bit little endian PCM. Set Request.Format to "aiff" for AIFF output.
//
// # Noise types
//
// White, Pink, Brown, Blue, Violet, Grey and Orange are supported; see the
// noise package for the filters behind each one.
//
// # Cancellation
//
// Long renders yield between chunks and stop as soon as ctx is done. A
// cancelled render returns the context error and no bytes. Request.Progress
// receives ten evenly spaced updates on renders spanning more than ten chunks.
//
// # Subpackages
//
//   - noise: random sources, filters, the chunked generator and an endless Stream
//   - audio: Source plumbing, normalization, resampling and the encoder Registry
//   - formats/wav: PCM16 WAV writer, header parser and decoder
//   - formats/aiff: PCM16 AIFF writer and decoder
//   - utils: sample conversion and interpolation helpers
package audnoise
