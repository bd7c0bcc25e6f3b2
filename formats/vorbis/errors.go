// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile indicates the stream is not Ogg Vorbis
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

	// ErrUnsupportedLayout indicates a stream without channels or sample rate
	ErrUnsupportedLayout = errors.New("unsupported Ogg Vorbis layout")
)
