// SPDX-License-Identifier: Apache-2.0

package saver

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveBatch writes each clip in batch to outputDir, named
// "<prefix>_0000", "<prefix>_0001", and so on. An empty prefix
// defaults to "audio". The batch is written in order and stops at the
// first failure; the paths saved before the failure are returned
// alongside the error.
func (s *Saver) SaveBatch(batch [][][]float32, outputDir, prefix string, o Options) ([]string, error) {
	if prefix == "" {
		prefix = "audio"
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(batch))
	for i, clip := range batch {
		name := fmt.Sprintf("%s_%04d", prefix, i)
		written, err := s.Save(clip, filepath.Join(outputDir, name), o)
		if err != nil {
			return paths, fmt.Errorf("save clip %d: %w", i, err)
		}
		paths = append(paths, written)
	}
	return paths, nil
}
