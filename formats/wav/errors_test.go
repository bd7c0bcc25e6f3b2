// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"
)

var allErrors = map[string]struct {
	err error
	msg string
}{
	"ErrNotWavFile":            {ErrNotWavFile, "not a WAV file"},
	"ErrUnsupportedWavLayout":  {ErrUnsupportedWavLayout, "unsupported WAV layout"},
	"ErrOnlyPCM16bitSupported": {ErrOnlyPCM16bitSupported, "only PCM 16-bit supported"},
	"ErrUnsupportedWavChunks":  {ErrUnsupportedWavChunks, "unsupported WAV chunks"},
	"ErrInvalidSampleRate":     {ErrInvalidSampleRate, "invalid sample rate"},
	"ErrDataTooLarge":          {ErrDataTooLarge, "sample data exceeds WAV size limit"},
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	for name, tt := range allErrors {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatalf("%s is nil", name)
			}
			if tt.err.Error() != tt.msg {
				t.Errorf("%s.Error() = %q, want %q", name, tt.err.Error(), tt.msg)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for name, tt := range allErrors {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false, want true", name)
			}

			if errors.Is(errors.New(tt.msg), tt.err) {
				t.Errorf("errors.Is(otherErr, %s) = true, want false", name)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for name, tt := range allErrors {
		if other, found := seen[tt.msg]; found {
			t.Errorf("%s has same message as %s: %q", name, other, tt.msg)
		}
		seen[tt.msg] = name
	}
}
