// SPDX-License-Identifier: Apache-2.0

package saver_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/henricksmedia/ACE-Step-1.5/internal/audiotest"
	"github.com/henricksmedia/ACE-Step-1.5/saver"
)

func TestSaveBatch(t *testing.T) {
	t.Parallel()

	t.Run("names and order", func(t *testing.T) {
		t.Parallel()

		batch := [][][]float32{
			audiotest.SineBuffer(8000, 1, 1000, 440, 0.5),
			audiotest.SineBuffer(8000, 1, 1000, 880, 0.5),
			audiotest.SineBuffer(8000, 1, 1000, 220, 0.5),
		}

		s := saver.New(saver.FormatWAV)
		dir := filepath.Join(t.TempDir(), "out")

		paths, err := s.SaveBatch(batch, dir, "", saver.Options{
			SampleRate:    8000,
			ChannelsFirst: true,
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 3 {
			t.Fatalf("got %d paths, want 3", len(paths))
		}

		for i, want := range []string{"audio_0000.wav", "audio_0001.wav", "audio_0002.wav"} {
			if got := filepath.Base(paths[i]); got != want {
				t.Errorf("paths[%d] = %q, want %q", i, got, want)
			}
			if _, err := os.Stat(paths[i]); err != nil {
				t.Errorf("file %q missing: %v", paths[i], err)
			}
		}
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		batch := [][][]float32{audiotest.SineBuffer(8000, 1, 500, 440, 0.5)}

		s := saver.New(saver.FormatWAV)
		paths, err := s.SaveBatch(batch, t.TempDir(), "take", saver.Options{
			SampleRate:    8000,
			ChannelsFirst: true,
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := filepath.Base(paths[0]); got != "take_0000.wav" {
			t.Fatalf("path = %q, want take_0000.wav", got)
		}
	})

	t.Run("stops at first failure", func(t *testing.T) {
		t.Parallel()

		batch := [][][]float32{
			audiotest.SineBuffer(8000, 1, 500, 440, 0.5),
			{{1, 2, 3}, {1}}, // ragged
			audiotest.SineBuffer(8000, 1, 500, 440, 0.5),
		}

		s := saver.New(saver.FormatWAV)
		paths, err := s.SaveBatch(batch, t.TempDir(), "", saver.Options{
			SampleRate:    8000,
			ChannelsFirst: true,
		})
		if err == nil {
			t.Fatal("expected error for ragged clip")
		}
		if !strings.Contains(err.Error(), "clip 1") {
			t.Errorf("error %q does not name the failing clip", err)
		}
		if len(paths) != 1 {
			t.Fatalf("got %d saved paths before failure, want 1", len(paths))
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		s := saver.New(saver.FormatWAV)
		paths, err := s.SaveBatch(nil, t.TempDir(), "", saver.DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 0 {
			t.Fatalf("got %d paths, want 0", len(paths))
		}
	})
}
