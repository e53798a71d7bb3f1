// SPDX-License-Identifier: Apache-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/utils"
)

type source struct {
	stream     *flac.Stream
	sampleRate int
	channels   int
	bitDepth   int
	pending    []float32 // interleaved samples decoded but not yet delivered
	eof        bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("closing flac stream: %w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.decodeFrame(); err != nil {
				if err == io.EOF {
					s.eof = true
					continue
				}
				return written, err
			}
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}
	return written, nil
}

// decodeFrame parses the next FLAC frame and interleaves its subframes
// into the pending buffer.
func (s *source) decodeFrame() error {
	fr, err := s.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("parsing flac frame: %w", err)
	}

	frames := len(fr.Subframes[0].Samples)
	scale := utils.PCMScale(s.bitDepth)

	out := make([]float32, frames*s.channels)
	for c, sub := range fr.Subframes {
		for i, v := range sub.Samples {
			out[i*s.channels+c] = float32(v) / scale
		}
	}
	s.pending = out
	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFlacFile, err)
	}

	info := stream.Info
	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
