// SPDX-License-Identifier: Apache-2.0

package flac

import (
	"fmt"
	"os"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/utils"
)

// encodeBlock is the number of frames written per FLAC frame.
const encodeBlock = 4096

// Encoder writes buffers as 16-bit FLAC files using verbatim subframes.
// Mono and stereo only; wider layouts go through the transcoding
// backend instead.
type Encoder struct{}

// Name identifies the backend in fallback-chain logs.
func (Encoder) Name() string { return "flac" }

// Encode writes buf to path. Any existing file is truncated.
func (Encoder) Encode(buf *audio.Buffer, path string) error {
	channels := buf.Channels()

	var layout frame.Channels
	switch channels {
	case 1:
		layout = frame.ChannelsMono
	case 2:
		layout = frame.ChannelsLR
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  65535,
		SampleRate:    uint32(buf.SampleRate()),
		NChannels:     uint8(channels),
		BitsPerSample: 16,
	}

	enc, err := flac.NewEncoder(f, info)
	if err != nil {
		f.Close()
		return fmt.Errorf("creating flac encoder: %w", err)
	}

	frames := buf.Frames()
	for start := 0; start < frames; start += encodeBlock {
		end := start + encodeBlock
		if end > frames {
			end = frames
		}
		n := end - start

		subframes := make([]*frame.Subframe, channels)
		for c := 0; c < channels; c++ {
			samples := make([]int32, n)
			for i, s := range buf.Channel(c)[start:end] {
				samples[i] = int32(utils.Float32ToInt16(s))
			}
			subframes[c] = &frame.Subframe{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   samples,
				NSamples:  n,
			}
		}

		fr := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: false,
				BlockSize:         uint16(n),
				SampleRate:        uint32(buf.SampleRate()),
				Channels:          layout,
				BitsPerSample:     16,
				Num:               uint64(start),
			},
			Subframes: subframes,
		}

		if err := enc.WriteFrame(fr); err != nil {
			enc.Close()
			f.Close()
			return fmt.Errorf("writing flac frame: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing flac file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
