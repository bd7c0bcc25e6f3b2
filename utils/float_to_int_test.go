// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  math.MinInt16,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16383, // 32767 * 0.5 = 16383.5, truncated
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -16384,
		},
		{
			name:  "quarter positive",
			input: 0.25,
			want:  8191, // 32767 * 0.25 = 8191.75
		},
		{
			name:  "small positive",
			input: 0.001,
			want:  32, // 32.767
		},
		{
			name:  "small negative",
			input: -0.001,
			want:  -32, // -32.768 truncates toward zero
		},
		{
			name:  "clamp over max",
			input: 1.5,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp over min",
			input: -1.5,
			want:  math.MinInt16,
		},
		{
			name:  "clamp way over max",
			input: 100.0,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp way under min",
			input: -100.0,
			want:  math.MinInt16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16Range tests full range conversion
func TestFloat32ToInt16Range(t *testing.T) {
	t.Parallel()

	for f := -1.0; f <= 1.0; f += 0.01 {
		result := int32(Float32ToInt16(float32(f)))

		scale := 32767.0
		if f < 0 {
			scale = 32768.0
		}
		expected := int32(f * scale)
		diff := math.Abs(float64(result - expected))

		// float32 rounding of f may move the product across an integer.
		if diff > 1 {
			t.Errorf("Float32ToInt16(%v) = %v, want ≈%v (diff %v)",
				f, result, expected, diff)
		}
	}
}

// TestFloat32ToInt16Asymmetry checks the negative side reaches one step further.
func TestFloat32ToInt16Asymmetry(t *testing.T) {
	t.Parallel()

	testVals := []float32{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0}

	for _, val := range testVals {
		pos := int32(Float32ToInt16(val))
		neg := int32(Float32ToInt16(-val))

		if -neg < pos {
			t.Errorf("|Float32ToInt16(-%v)| = %v, want >= %v", val, -neg, pos)
		}
		if -neg-pos > 2 {
			t.Errorf("Float32ToInt16 too asymmetric: +%v=%v, -%v=%v", val, pos, val, neg)
		}
	}
}

// TestFloat32ToInt16Monotonic tests that function is monotonic
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32SliceToInt16(t *testing.T) {
	t.Parallel()

	src := []float32{-1, -0.5, 0, 0.5, 1, 2}
	dst := make([]int16, 4)

	n := Float32SliceToInt16(dst, src)
	if n != 4 {
		t.Fatalf("Float32SliceToInt16() = %d, want 4", n)
	}

	want := []int16{math.MinInt16, -16384, 0, 16383}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

// BenchmarkFloat32ToInt16 tests performance and allocations
func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16
	input := float32(0.5)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		result = Float32ToInt16(input)
	}

	_ = result
}

// BenchmarkFloat32SliceToInt16 simulates converting ten seconds of 44.1kHz audio
func BenchmarkFloat32SliceToInt16(b *testing.B) {
	floatSamples := make([]float32, 441000)
	int16Samples := make([]int16, 441000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		Float32SliceToInt16(int16Samples, floatSamples)
	}
}

// TestFloat32ToInt16_ZeroAllocs verifies no heap allocations
func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	floatBuf := make([]float32, 1024)
	int16Buf := make([]int16, 1024)

	allocs := testing.AllocsPerRun(100, func() {
		Float32SliceToInt16(int16Buf, floatBuf)
	})

	if allocs > 0 {
		t.Errorf("Float32SliceToInt16 allocated %v times, want 0", allocs)
	}
}
