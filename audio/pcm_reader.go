// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audnoise/utils"
)

// PCM16Reader exposes a Source as a stream of signed 16-bit little endian
// bytes, the layout audio devices and WAV data chunks expect.
type PCM16Reader struct {
	src Source
	buf []float32
	pcm []byte
	off int
	err error
}

func NewPCM16Reader(src Source) *PCM16Reader {
	size := max(src.BufSize(), 1)
	return &PCM16Reader{
		src: src,
		buf: make([]float32, size),
		pcm: make([]byte, 0, size*2),
	}
}

// Read implements io.Reader. The source error, io.EOF included, is returned
// once every converted byte has been delivered.
func (r *PCM16Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for r.off >= len(r.pcm) {
		if r.err != nil {
			return 0, r.err
		}

		n, err := r.src.ReadSamples(r.buf)
		r.pcm = r.pcm[:n*2]
		for i, s := range r.buf[:n] {
			binary.LittleEndian.PutUint16(r.pcm[2*i:], uint16(utils.Float32ToInt16(s)))
		}
		r.off = 0

		if err == io.EOF {
			r.err = io.EOF
		} else if err != nil {
			r.err = fmt.Errorf("pcm16: %w", err)
		}
	}

	n := copy(p, r.pcm[r.off:])
	r.off += n
	return n, nil
}

func (r *PCM16Reader) Close() error {
	return r.src.Close()
}

// NewPlaybackReader mixes src down to mono, converts it to targetRate Hz and
// returns it as 16-bit PCM bytes.
func NewPlaybackReader(src Source, targetRate int) *PCM16Reader {
	var s Source = NewMonoMixer(src)
	if targetRate > 0 && targetRate != src.SampleRate() {
		s = NewResampler(s, targetRate)
	}
	return NewPCM16Reader(s)
}
