// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ik5/audnoise"
	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/noise"
)

var (
	deviceRate int
	streamMode bool
	streamGain float64
	volume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Play noise or an audio file",
	Long: `Play noise through the default audio device.

Without arguments the request is rendered first, then played. With --stream
noise is synthesized on the fly until interrupted. With a file argument the
file (WAV, AIFF, MP3 or Ogg Vorbis) is decoded, mixed to mono, resampled
to the device rate and played.

Examples:
  audnoise play -t pink -d 30s
  audnoise play -t brown --stream
  audnoise play rain.wav
  audnoise play surf.ogg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addRequestFlags(playCmd)
	playCmd.Flags().IntVar(&deviceRate, "device-rate", 48000, "output device sample rate in Hz")
	playCmd.Flags().BoolVar(&streamMode, "stream", false, "play endless noise until interrupted")
	playCmd.Flags().Float64Var(&streamGain, "stream-gain", 0.8, "gain applied to streamed noise")
	playCmd.Flags().Float64Var(&volume, "volume", 1, "player volume (0-1)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log := slog.With("request_id", uuid.NewString())

	var (
		src audio.Source
		err error
	)
	switch {
	case len(args) == 1:
		src, err = openAudioFile(args[0])
	case streamMode:
		src, err = openStream(cmd)
	default:
		src, err = renderForPlayback(ctx, cmd)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	log.Debug("playing", "source_rate", src.SampleRate(), "channels", src.Channels(), "device_rate", deviceRate)

	return playSource(ctx, src, deviceRate, volume)
}

func renderForPlayback(ctx context.Context, cmd *cobra.Command) (audio.Source, error) {
	creq, err := buildRequest(cmd)
	if err != nil {
		return nil, err
	}
	req, err := creq.Build()
	if err != nil {
		return nil, err
	}

	bar := newProgressBar(cmd.ErrOrStderr(), 30)
	req.Progress = bar.Update
	samples, err := audnoise.GenerateSamples(ctx, req)
	bar.Done()
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return audio.NewBufferSource(samples, req.SampleRate, 1), nil
}

func openStream(cmd *cobra.Command) (audio.Source, error) {
	creq, err := buildRequest(cmd)
	if err != nil {
		return nil, err
	}
	if err := creq.Validate(); err != nil {
		return nil, err
	}

	t, _ := noise.ParseType(creq.Type)
	var r noise.Random
	if creq.Seed != nil {
		r = noise.NewSeededRandom(*creq.Seed)
	}

	s, err := noise.NewStream(t, creq.SampleRate, r)
	if err != nil {
		return nil, err
	}
	if streamGain > 1 {
		printWarning(cmd.ErrOrStderr(), "stream gain %.2f may clip", streamGain)
	}
	s.SetGain(float32(streamGain))

	return s, nil
}

// fileSource closes the underlying file along with the decoder.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func openAudioFile(path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	dec, _ := decoderFor(path)
	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return fileSource{Source: src, f: f}, nil
}

// playSource plays src at rate Hz until it ends or ctx is done.
func playSource(ctx context.Context, src audio.Source, rate int, vol float64) error {
	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	otoCtx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}
	<-readyChan

	player := otoCtx.NewPlayer(audio.NewPlaybackReader(src, rate))
	defer player.Close()

	player.SetVolume(min(max(vol, 0), 1))
	player.Play()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return nil
		case <-ticker.C:
		}
	}

	return player.Err()
}
