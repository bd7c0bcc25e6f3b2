// SPDX-License-Identifier: EPL-2.0

// Package audio holds the signal plumbing shared by the generators, the
// container encoders and the command line player.
//
// # Sources
//
// Source is a pull based stream of interleaved float32 samples in [-1, 1].
// Decoders, noise.Stream, BufferSource and the processors in this package all
// implement it, so they chain:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	pcm := audio.NewPlaybackReader(src, 48000) // mono, 48 kHz, int16 LE
//
// Resampler converts between rates with Catmull-Rom interpolation and
// MonoMixer averages channels down to one.
//
// # Normalization
//
// Normalize scales a complete buffer so that its peak does not exceed
// PeakLimit. Applying it twice is the same as applying it once.
//
// # Encoders
//
// Encoder turns a finished mono signal into container bytes. A Registry maps
// format keys such as "wav" and "aiff" to encoders:
//
//	r := audio.NewRegistry()
//	r.Register("wav", wav.Encoder{})
//	data, err := r.Encode("wav", 44100, samples)
package audio
