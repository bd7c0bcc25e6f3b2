// SPDX-License-Identifier: EPL-2.0

package audio

// PeakLimit is the highest absolute sample value Normalize leaves in place.
const PeakLimit float32 = 0.99

// Peak returns the largest absolute sample value in samples.
func Peak(samples []float32) float32 {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// Normalize rescales samples in place so that no value exceeds PeakLimit.
// Buffers already within the limit are left untouched. The returned gain is
// the factor applied, 1 when nothing changed.
//
// Running Normalize on its own output is a no-op.
func Normalize(samples []float32) float32 {
	peak := Peak(samples)
	if peak <= PeakLimit {
		return 1
	}

	// Computed in float64 so the loudest sample lands exactly on PeakLimit
	// after rounding back to float32.
	gain := float64(PeakLimit) / float64(peak)
	for i, s := range samples {
		samples[i] = float32(float64(s) * gain)
	}

	return float32(gain)
}
