// SPDX-License-Identifier: Apache-2.0

package saver

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
)

// Load decodes an audio file into a buffer. The decoder is picked by
// file extension first; when the extension is unknown or its decoder
// rejects the file, every registered decoder is tried in turn.
func (s *Saver) Load(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ext := filepath.Ext(path)
	if d, ok := s.registry.Get(ext); ok {
		src, err := d.Decode(f)
		if err == nil {
			defer src.Close()
			return audio.ReadAll(src)
		}
		s.log.Debug("extension decoder rejected file, sniffing",
			zap.String("path", path),
			zap.String("ext", ext),
			zap.Error(err),
		)
	}

	for _, key := range s.registry.Formats() {
		if _, err := f.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("seek %s: %w", path, err)
		}
		d, _ := s.registry.Get(key)
		src, err := d.Decode(f)
		if err != nil {
			continue
		}
		defer src.Close()
		return audio.ReadAll(src)
	}

	return nil, fmt.Errorf("%w: %s", ErrUndecodable, path)
}

// Convert decodes inputPath and re-encodes it as format at outputPath,
// preserving the source sample rate. When removeInput is true the
// input file is deleted after a successful save, never before.
func (s *Saver) Convert(inputPath, outputPath string, format Format, removeInput bool) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	buf, err := s.Load(inputPath)
	if err != nil {
		return "", err
	}

	written, err := s.Save(buf.Data(), outputPath, Options{
		SampleRate:    buf.SampleRate(),
		Format:        format,
		ChannelsFirst: true,
	})
	if err != nil {
		return "", err
	}

	if removeInput {
		if err := os.Remove(inputPath); err != nil {
			s.log.Warn("could not remove input file",
				zap.String("path", inputPath),
				zap.Error(err),
			)
		}
	}
	return written, nil
}
