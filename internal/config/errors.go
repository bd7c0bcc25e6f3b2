// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrDurationTooLong      = errors.New("duration exceeds the maximum")
	ErrSampleRateOutOfRange = errors.New("sample rate out of range")
	ErrInvalidDurationValue = errors.New("invalid duration value")
	ErrInvalidChunkSize     = errors.New("negative chunk size")
)
