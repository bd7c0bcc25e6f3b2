// SPDX-License-Identifier: EPL-2.0

// Package aiff encodes and decodes 16-bit PCM AIFF files using
// github.com/go-audio/aiff.
//
// EncodeAIFF16 is the AIFF counterpart of wav.EncodeWAV16 and applies the
// same float to int16 conversion. Decoder returns an audio.Source and
// ReadInfo reports the format of an existing file.
package aiff
