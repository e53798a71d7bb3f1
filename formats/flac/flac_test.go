// SPDX-License-Identifier: Apache-2.0

package flac_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/formats/flac"
	"github.com/henricksmedia/ACE-Step-1.5/internal/audiotest"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		frames   int
	}{
		{"mono", 1, 3000},
		{"stereo", 2, 3000},
		{"stereo multiple blocks", 2, 10000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const rate = 44100
			in, err := audio.New(audiotest.SineBuffer(rate, tt.channels, tt.frames, 440, 0.8), rate, true)
			if err != nil {
				t.Fatal(err)
			}

			path := filepath.Join(t.TempDir(), "clip.flac")
			if err := (flac.Encoder{}).Encode(in, path); err != nil {
				t.Fatal(err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			src, err := flac.Decoder{}.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			defer src.Close()

			out, err := audio.ReadAll(src)
			if err != nil {
				t.Fatal(err)
			}

			if out.SampleRate() != rate {
				t.Errorf("SampleRate = %d, want %d", out.SampleRate(), rate)
			}
			if out.Channels() != tt.channels {
				t.Errorf("Channels = %d, want %d", out.Channels(), tt.channels)
			}
			if out.Frames() != tt.frames {
				t.Fatalf("Frames = %d, want %d", out.Frames(), tt.frames)
			}

			// FLAC is lossless; only the 16-bit quantization remains.
			const tol = 2.0 / 32768
			for c := 0; c < tt.channels; c++ {
				for i := range in.Channel(c) {
					got, want := out.Channel(c)[i], in.Channel(c)[i]
					if math.Abs(float64(got-want)) > tol {
						t.Fatalf("sample [%d][%d] = %v, want %v +-%v", c, i, got, want, tol)
					}
				}
			}
		})
	}
}

func TestEncodeUnsupportedChannels(t *testing.T) {
	t.Parallel()

	in, err := audio.New(audiotest.SilentBuffer(3, 100), 48000, true)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "clip.flac")
	if err := (flac.Encoder{}).Encode(in, path); !errors.Is(err, flac.ErrUnsupportedChannels) {
		t.Fatalf("error = %v, want ErrUnsupportedChannels", err)
	}
}

func TestDecodeNotFlac(t *testing.T) {
	t.Parallel()

	_, err := flac.Decoder{}.Decode(bytes.NewReader([]byte("not a flac stream")))
	if !errors.Is(err, flac.ErrNotFlacFile) {
		t.Fatalf("error = %v, want ErrNotFlacFile", err)
	}
}
