// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"errors"
	"strings"
	"testing"
)

func TestFFmpegArgs(t *testing.T) {
	t.Parallel()

	args := FFmpegArgs(44100, 2, "/tmp/out.mp3")
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"-f f32le",
		"-ar 44100",
		"-ac 2",
		"-i pipe:0",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if args[len(args)-1] != "/tmp/out.mp3" {
		t.Errorf("output path = %q, want last argument", args[len(args)-1])
	}
	if args[0] != "-y" {
		t.Error("missing -y overwrite flag")
	}
}

func TestExecError(t *testing.T) {
	t.Parallel()

	inner := errors.New("exit status 1")
	err := &ExecError{
		Backend:  "ffmpeg",
		ExitCode: 1,
		Stderr:   strings.Repeat("x", 300),
		Err:      inner,
	}

	if !errors.Is(err, inner) {
		t.Error("ExecError did not unwrap to the inner error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "ffmpeg") || !strings.Contains(msg, "exit=1") {
		t.Errorf("message %q missing backend or exit code", msg)
	}
	if !strings.Contains(msg, "...") {
		t.Errorf("long stderr was not truncated: %q", msg)
	}
}
