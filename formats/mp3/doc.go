// SPDX-License-Identifier: Apache-2.0

// Package mp3 provides MP3 decoding.
//
// It uses github.com/hajimehoshi/go-mp3. Decoding is the only direction
// implemented here: MP3 is a lossy format that needs a real encoder,
// so saving goes through the external transcoding backends instead.
//
//	decoder := mp3.Decoder{}
//	src, err := decoder.Decode(file)
//
// go-mp3 always outputs 16-bit stereo PCM at the stream's sample rate;
// mono streams are upmixed, so Channels() reports 2 for every source.
package mp3
