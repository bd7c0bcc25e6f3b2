// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Decoder returns an audio.Source of interleaved float32 samples at the
// stream's own rate and channel count. Reads always cover whole frames.
// Encoding is not supported.
package vorbis
