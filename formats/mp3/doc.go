// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels at the stream's own rate. Feed
// the source to audio.NewPlaybackReader, or wrap it in audio.NewMonoMixer
// and audio.NewResampler, to get mono audio at a device rate:
//
//	f, _ := os.Open("rain.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // not an MP3 stream
//	}
//	mono := audio.NewResampler(audio.NewMonoMixer(src), 48000)
//
// Encoding is not supported.
package mp3
