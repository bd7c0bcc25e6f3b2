// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	gowav "github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/formats/aiff"
	"github.com/ik5/audnoise/formats/wav"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the format of an audio file",
	Long: `Print the format, duration and peak level of a WAV, AIFF, MP3 or
Ogg Vorbis file. Compressed files are fully decoded to measure them.

Examples:
  audnoise inspect pink.wav
  audnoise inspect orange.aiff
  audnoise inspect surf.ogg`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var fields [][2]string
	switch dec, container := decoderFor(path); container {
	case "WAV":
		fields, err = inspectWAV(f)
	case "AIFF":
		fields, err = inspectAIFF(f)
	default:
		fields, err = inspectDecoded(f, dec, container)
	}
	if err != nil {
		return fmt.Errorf("inspect %s: %w", path, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderFields(filepath.Base(path), fields))
	return nil
}

func inspectWAV(f io.ReadSeeker) ([][2]string, error) {
	d := gowav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, wav.ErrNotWavFile
	}

	dur, err := d.Duration()
	if err != nil {
		return nil, err
	}

	fields := [][2]string{
		{"container", "WAV"},
		{"encoding", wavEncoding(d.WavAudioFormat)},
		{"sample rate", fmt.Sprintf("%d Hz", d.SampleRate)},
		{"channels", strconv.Itoa(int(d.NumChans))},
		{"bit depth", strconv.Itoa(int(d.BitDepth))},
		{"duration", dur.String()},
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	samples, h, err := wav.ReadAll(f)
	if err != nil {
		return append(fields, [2]string{"layout", "non-canonical: " + err.Error()}), nil
	}

	return append(fields,
		[2]string{"layout", fmt.Sprintf("canonical, %d byte header", wav.HeaderSize)},
		[2]string{"samples", strconv.Itoa(h.Samples())},
		[2]string{"peak", formatPeak(audio.Peak(samples))},
	), nil
}

func inspectAIFF(f io.ReadSeeker) ([][2]string, error) {
	info, err := aiff.ReadInfo(f)
	if err != nil {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	peak, count, err := scanSource(src)
	if err != nil {
		return nil, err
	}

	frames := count / max(info.Channels, 1)
	return [][2]string{
		{"container", "AIFF"},
		{"sample rate", fmt.Sprintf("%d Hz", info.SampleRate)},
		{"channels", strconv.Itoa(info.Channels)},
		{"bit depth", strconv.Itoa(info.BitDepth)},
		{"duration", formatSeconds(float64(frames) / float64(max(info.SampleRate, 1)))},
		{"samples", strconv.Itoa(frames)},
		{"peak", formatPeak(peak)},
	}, nil
}

// inspectDecoded reports what can be learned by decoding the whole stream.
func inspectDecoded(r io.Reader, dec decoder, container string) ([][2]string, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	peak, count, err := scanSource(src)
	if err != nil {
		return nil, err
	}

	frames := count / max(src.Channels(), 1)
	return [][2]string{
		{"container", container},
		{"sample rate", fmt.Sprintf("%d Hz", src.SampleRate())},
		{"channels", strconv.Itoa(src.Channels())},
		{"duration", formatSeconds(float64(frames) / float64(max(src.SampleRate(), 1)))},
		{"samples", strconv.Itoa(frames)},
		{"peak", formatPeak(peak)},
	}, nil
}

// scanSource drains src and returns its peak and value count.
func scanSource(src audio.Source) (peak float32, count int, err error) {
	buf := make([]float32, max(src.BufSize(), 1024))
	for {
		var n int
		n, err = src.ReadSamples(buf)
		count += n
		peak = max(peak, audio.Peak(buf[:n]))
		if err == io.EOF {
			return peak, count, nil
		}
		if err != nil {
			return 0, 0, err
		}
	}
}

func wavEncoding(tag uint16) string {
	switch tag {
	case 1:
		return "PCM"
	case 3:
		return "IEEE float"
	case 0xfffe:
		return "extensible"
	}
	return fmt.Sprintf("format 0x%04x", tag)
}

// formatPeak prints a linear peak with its level in dBFS.
func formatPeak(p float32) string {
	if p <= 0 {
		return "0 (silence)"
	}
	return fmt.Sprintf("%.4f (%.2f dBFS)", p, 20*math.Log10(float64(p)))
}

func formatSeconds(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.2fs", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm%ds", int(seconds/60), int(seconds)%60)
	}
	return fmt.Sprintf("%dh%dm", int(seconds/3600), (int(seconds)%3600)/60)
}
