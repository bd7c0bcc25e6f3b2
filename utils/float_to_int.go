// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a sample in [-1, 1] to signed 16-bit PCM.
//
// Input is clamped first. Negative values scale by 32768 and non-negative
// values by 32767, so -1 maps to math.MinInt16 and 1 to math.MaxInt16.
// The fractional part is truncated toward zero.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}

// Float32SliceToInt16 converts src into dst and returns the number of samples
// written, which is min(len(dst), len(src)).
func Float32SliceToInt16(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}
	return n
}
