// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/formats/wav"
	"github.com/henricksmedia/ACE-Step-1.5/logger"
)

// LameEncoder encodes buffers to MP3 with the external lame binary.
// It is the secondary MP3 backend, tried when ffmpeg is missing or
// fails. The buffer is staged as a temporary WAV file because lame's
// WAV reader is far less error-prone than its raw-PCM flag soup.
type LameEncoder struct {
	path string
	log  *logger.Logger
}

// NewLameEncoder locates lame on PATH. A nil logger disables logging.
func NewLameEncoder(log *logger.Logger) (*LameEncoder, error) {
	path, err := exec.LookPath("lame")
	if err != nil {
		return nil, fmt.Errorf("%w: lame", ErrBackendNotFound)
	}
	return &LameEncoder{path: path, log: logger.OrNop(log)}, nil
}

// Name identifies the backend in fallback-chain logs.
func (e *LameEncoder) Name() string { return "lame" }

// Encode writes buf to path as MP3.
func (e *LameEncoder) Encode(buf *audio.Buffer, path string) error {
	tmp, err := os.CreateTemp("", "acestep-*.wav")
	if err != nil {
		return fmt.Errorf("creating staging file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := (wav.Encoder{}).Encode(buf, tmpPath); err != nil {
		return fmt.Errorf("staging wav for lame: %w", err)
	}

	args := []string{"--quiet", "-h", tmpPath, path}
	cmd := exec.CommandContext(context.Background(), e.path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	e.log.Debug("executing lame", zap.Strings("args", args))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return &ExecError{
			Backend:  "lame",
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}
	return nil
}
