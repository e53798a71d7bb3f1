// SPDX-License-Identifier: Apache-2.0

package saver_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/internal/audiotest"
	"github.com/henricksmedia/ACE-Step-1.5/saver"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   saver.Format
		wantOK bool
	}{
		{"flac", saver.FormatFLAC, true},
		{"FLAC", saver.FormatFLAC, true},
		{".flac", saver.FormatFLAC, true},
		{"wav", saver.FormatWAV, true},
		{".MP3", saver.FormatMP3, true},
		{"ogg", "", false},
		{"", "", false},
		{"opus", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			t.Parallel()

			got, ok := saver.ParseFormat(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ParseFormat(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSavePathResolution(t *testing.T) {
	t.Parallel()

	data := audiotest.SineBuffer(8000, 1, 4000, 440, 0.5)

	tests := []struct {
		name    string
		path    string
		format  saver.Format
		wantExt string
	}{
		{"no extension gets default", "clip", "", ".flac"},
		{"no extension gets requested format", "clip", saver.FormatWAV, ".wav"},
		{"recognized extension wins over format", "clip.wav", saver.FormatMP3, ".wav"},
		{"unrecognized extension replaced", "clip.ogg", saver.FormatWAV, ".wav"},
		{"unsupported format falls back to default", "clip", "opus", ".flac"},
		{"decodable but unsavable format falls back", "clip", "ogg", ".flac"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := saver.New(saver.FormatFLAC)
			path := filepath.Join(t.TempDir(), tt.path)

			written, err := s.Save(data, path, saver.Options{
				SampleRate:    8000,
				Format:        tt.format,
				ChannelsFirst: true,
			})
			if err != nil {
				t.Fatal(err)
			}
			if got := filepath.Ext(written); got != tt.wantExt {
				t.Fatalf("written %q has extension %q, want %q", written, got, tt.wantExt)
			}
			if _, err := os.Stat(written); err != nil {
				t.Fatalf("written file missing: %v", err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []saver.Format{saver.FormatWAV, saver.FormatFLAC} {
		format := format
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			const rate = 44100
			data := audiotest.SineBuffer(rate, 2, 5000, 440, 0.5)

			s := saver.New(saver.DefaultFormat)
			path, err := s.Save(data, filepath.Join(t.TempDir(), "clip"), saver.Options{
				SampleRate:    rate,
				Format:        format,
				ChannelsFirst: true,
			})
			if err != nil {
				t.Fatal(err)
			}

			buf, err := s.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if buf.SampleRate() != rate {
				t.Errorf("SampleRate = %d, want %d", buf.SampleRate(), rate)
			}
			if buf.Channels() != 2 {
				t.Errorf("Channels = %d, want 2", buf.Channels())
			}
			if buf.Frames() != 5000 {
				t.Errorf("Frames = %d, want 5000", buf.Frames())
			}
		})
	}
}

func TestSaveOrientationHeuristic(t *testing.T) {
	t.Parallel()

	// Frame-major stereo declared channel-major: many rows of two
	// samples. The saver must notice and transpose.
	frames := 2000
	data := make([][]float32, frames)
	for i := range data {
		data[i] = []float32{0.1, -0.1}
	}

	s := saver.New(saver.FormatWAV)
	path, err := s.Save(data, filepath.Join(t.TempDir(), "clip.wav"), saver.Options{
		SampleRate:    8000,
		ChannelsFirst: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	buf, err := s.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Channels() != 2 || buf.Frames() != frames {
		t.Fatalf("got %d channels x %d frames, want 2 x %d", buf.Channels(), buf.Frames(), frames)
	}
}

func TestSaveInvalidData(t *testing.T) {
	t.Parallel()

	s := saver.New(saver.FormatWAV)
	dir := t.TempDir()

	if _, err := s.Save(nil, filepath.Join(dir, "a"), saver.DefaultOptions()); !errors.Is(err, audio.ErrEmptyBuffer) {
		t.Fatalf("error = %v, want ErrEmptyBuffer", err)
	}

	ragged := [][]float32{{1, 2, 3}, {1}}
	if _, err := s.Save(ragged, filepath.Join(dir, "b"), saver.DefaultOptions()); !errors.Is(err, audio.ErrRaggedBuffer) {
		t.Fatalf("error = %v, want ErrRaggedBuffer", err)
	}
}

// failingEncoder always errors, to force fallback.
type failingEncoder struct{}

func (failingEncoder) Name() string { return "failing" }
func (failingEncoder) Encode(*audio.Buffer, string) error {
	return errors.New("simulated encoder failure")
}

func TestSaveFallsBackToNextBackend(t *testing.T) {
	t.Parallel()

	s := saver.New(saver.FormatWAV, saver.WithEncoder(saver.FormatWAV, failingEncoder{}))

	data := audiotest.SineBuffer(8000, 1, 1000, 440, 0.5)
	path, err := s.Save(data, filepath.Join(t.TempDir(), "clip.wav"), saver.Options{
		SampleRate:    8000,
		ChannelsFirst: true,
	})
	if err != nil {
		t.Fatalf("fallback chain failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fallback did not produce the file: %v", err)
	}
}

func TestSaveAllBackendsFail(t *testing.T) {
	t.Parallel()

	data := audiotest.SineBuffer(8000, 1, 1000, 440, 0.5)

	// Every backend fails to create a file inside a missing directory.
	s := saver.New(saver.FormatWAV)
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "clip.wav")

	_, err := s.Save(data, missing, saver.Options{SampleRate: 8000, ChannelsFirst: true})
	var encErr *saver.EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("error = %v, want *EncodeError", err)
	}
	if encErr.Format != saver.FormatWAV {
		t.Errorf("EncodeError.Format = %q, want wav", encErr.Format)
	}
	if len(encErr.Attempts) == 0 {
		t.Error("EncodeError.Attempts is empty")
	}
	if !strings.Contains(encErr.Error(), "clip.wav") {
		t.Errorf("message %q missing output path", encErr.Error())
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	o := saver.DefaultOptions()
	if o.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", o.SampleRate)
	}
	if o.Format != "" {
		t.Errorf("Format = %q, want empty (saver default)", o.Format)
	}
	if !o.ChannelsFirst {
		t.Error("ChannelsFirst = false, want true")
	}
}

func TestNewUnsupportedDefaultFormat(t *testing.T) {
	t.Parallel()

	s := saver.New("opus")
	if got := s.DefaultFormat(); got != saver.FormatFLAC {
		t.Fatalf("DefaultFormat = %q, want flac", got)
	}
}
