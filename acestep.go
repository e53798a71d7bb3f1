// SPDX-License-Identifier: Apache-2.0

package acestep

import (
	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/logger"
	"github.com/henricksmedia/ACE-Step-1.5/saver"
)

// NormalizeLoudness rescales a sample matrix so its integrated
// loudness matches targetLUFS. Silent or too-short clips come back
// unchanged. The result is always channel-major, whatever the input
// layout.
func NormalizeLoudness(data [][]float32, sampleRate int, targetLUFS float64, channelsFirst bool) ([][]float32, error) {
	buf, err := audio.New(data, sampleRate, channelsFirst)
	if err != nil {
		return nil, err
	}
	norm := audio.NewNormalizer(targetLUFS, logger.Default())
	return norm.Apply(buf).Data(), nil
}

// ApplyPeakLimiter scales a sample matrix so no sample exceeds
// ceilingDB. Matrices already under the ceiling come back unchanged.
// The result is always channel-major, whatever the input layout.
func ApplyPeakLimiter(data [][]float32, sampleRate int, ceilingDB float64, channelsFirst bool) ([][]float32, error) {
	buf, err := audio.New(data, sampleRate, channelsFirst)
	if err != nil {
		return nil, err
	}
	limiter := audio.NewPeakLimiter(logger.Default())
	return limiter.Limit(buf, ceilingDB).Data(), nil
}

// PostProcess runs the full mastering chain (normalize, then limit)
// over a sample matrix according to cfg. The result is always
// channel-major, whatever the input layout.
func PostProcess(data [][]float32, cfg audio.ProcessConfig) ([][]float32, error) {
	buf, err := audio.New(data, cfg.SampleRate, cfg.ChannelsFirst)
	if err != nil {
		return nil, err
	}
	p := audio.NewPipeline(cfg, logger.Default())
	return p.Process(buf).Data(), nil
}

// ProcessAndSave post-processes a sample matrix per cfg and writes the
// result to outputPath as format. It returns the path actually
// written, which may differ from outputPath by extension.
func ProcessAndSave(data [][]float32, outputPath string, cfg audio.ProcessConfig, format saver.Format) (string, error) {
	processed, err := PostProcess(data, cfg)
	if err != nil {
		return "", err
	}

	s := saver.New(format, saver.WithLogger(logger.Default()))
	return s.Save(processed, outputPath, saver.Options{
		SampleRate:    cfg.SampleRate,
		Format:        format,
		ChannelsFirst: true,
	})
}

// ReadFile decodes an audio file into a channel-major float32 sample
// matrix and reports its sample rate. WAV, FLAC, MP3, Ogg Vorbis and
// AIFF inputs are supported.
func ReadFile(path string) ([][]float32, int, error) {
	s := saver.New(saver.DefaultFormat, saver.WithLogger(logger.Default()))
	buf, err := s.Load(path)
	if err != nil {
		return nil, 0, err
	}
	return buf.Data(), buf.SampleRate(), nil
}
