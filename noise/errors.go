// SPDX-License-Identifier: EPL-2.0

package noise

import "errors"

var (
	// ErrUnsupportedNoiseType indicates the requested noise type is not known.
	ErrUnsupportedNoiseType = errors.New("unsupported noise type")

	// ErrInvalidDuration indicates the request resolves to zero or fewer samples.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidSampleRate indicates a zero or negative sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrStreamClosed is returned when reading from a closed Stream.
	ErrStreamClosed = errors.New("noise stream closed")
)
