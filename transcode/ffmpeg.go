// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os/exec"
	"strconv"

	"go.uber.org/zap"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/logger"
)

// FFmpegEncoder encodes buffers by piping raw float32 PCM into an
// external ffmpeg process. ffmpeg picks the container and codec from
// the output path's extension, which makes this the catch-all backend:
// it can produce MP3 (the primary use) as well as any format the local
// ffmpeg build supports.
type FFmpegEncoder struct {
	path string
	log  *logger.Logger
}

// NewFFmpegEncoder locates ffmpeg on PATH. A nil logger disables
// logging.
func NewFFmpegEncoder(log *logger.Logger) (*FFmpegEncoder, error) {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: ffmpeg", ErrBackendNotFound)
	}
	return &FFmpegEncoder{path: path, log: logger.OrNop(log)}, nil
}

// Name identifies the backend in fallback-chain logs.
func (e *FFmpegEncoder) Name() string { return "ffmpeg" }

// Encode writes buf to path via ffmpeg.
func (e *FFmpegEncoder) Encode(buf *audio.Buffer, path string) error {
	args := FFmpegArgs(buf.SampleRate(), buf.Channels(), path)

	cmd := exec.CommandContext(context.Background(), e.path, args...)
	cmd.Stdin = bytes.NewReader(rawFloat32LE(buf))

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	e.log.Debug("executing ffmpeg", zap.Strings("args", args))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return &ExecError{
			Backend:  "ffmpeg",
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}
	return nil
}

// FFmpegArgs builds the argument list for encoding raw f32le PCM from
// stdin into the given output path.
func FFmpegArgs(sampleRate, channels int, outputPath string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "f32le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"-i", "pipe:0",
		outputPath,
	}
}

// rawFloat32LE flattens buf into interleaved little-endian float32
// bytes, the f32le format ffmpeg reads from stdin.
func rawFloat32LE(buf *audio.Buffer) []byte {
	samples := buf.Interleaved()
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}
	return out
}
