// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audnoise/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation. Interleaved channels are preserved.
//
// When downsampling, each source frame passes through a one-pole low-pass
// before interpolation to take the edge off aliasing. At equal rates the
// output is the source, sample for sample.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// hist holds the frames at t-1, t, t+1 and t+2 around pos.
	hist  [4][]float32
	ahead int // real (not padded) frames in hist[2:]
	pos   float64

	in           []float32
	inPos, inLen int
	srcEOF       bool

	smooth bool
	lp     []float32
	lpInit bool

	primed bool
	done   bool
}

// NewResampler wraps src so that it reads at dstRate Hz. A dstRate below 1
// keeps the source rate.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	if dstRate < 1 {
		dstRate = src.SampleRate()
	}

	step := float64(src.SampleRate()) / float64(dstRate)
	bufFrames := max(src.BufSize()/channels, 1)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, bufFrames*channels),
		smooth:   step > 1,
		lp:       make([]float32, channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// nextFrame copies one source frame into dst. It reports false once the
// source is drained.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if errors.Is(err, io.EOF) {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("resampler: %w", err)
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.smooth {
		if !r.lpInit {
			copy(r.lp, dst)
			r.lpInit = true
		}
		for c := range dst {
			dst[c] = 0.5*dst[c] + 0.5*r.lp[c]
			r.lp[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}
	copy(r.hist[0], r.hist[1])

	for i := 2; i < len(r.hist); i++ {
		ok, err := r.nextFrame(r.hist[i])
		if err != nil {
			return err
		}
		if ok {
			r.ahead++
		} else {
			copy(r.hist[i], r.hist[i-1])
		}
	}

	return nil
}

// advance moves the window one source frame forward. Past the last real
// frame the edge is repeated.
func (r *Resampler) advance() error {
	if r.ahead == 0 {
		r.done = true
		return nil
	}

	oldest := r.hist[0]
	r.hist[0], r.hist[1], r.hist[2] = r.hist[1], r.hist[2], r.hist[3]
	r.hist[3] = oldest
	r.ahead--

	ok, err := r.nextFrame(r.hist[3])
	if err != nil {
		return err
	}
	if ok {
		r.ahead++
	} else {
		copy(r.hist[3], r.hist[2])
	}

	return nil
}

// ReadSamples fills dst with interleaved frames at the target rate.
// len(dst) must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for !r.done && r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if r.done {
			break
		}

		x := float32(r.pos)
		out := dst[written*r.channels:]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written++
		r.pos += r.step
	}

	if r.done {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}
