// SPDX-License-Identifier: Apache-2.0

package audio

import (
	"github.com/henricksmedia/ACE-Step-1.5/logger"
)

// ProcessConfig controls the post-processing chain. It is immutable per
// invocation; there is no shared mutable processing state.
type ProcessConfig struct {
	// SampleRate of incoming raw sample matrices, Hz.
	SampleRate int
	// Normalize toggles loudness normalization to TargetLUFS.
	Normalize  bool
	TargetLUFS float64
	// LimitPeaks toggles peak limiting at PeakCeilingDB.
	LimitPeaks    bool
	PeakCeilingDB float64
	// ChannelsFirst declares the layout of raw sample matrices.
	ChannelsFirst bool
}

// DefaultProcessConfig returns the streaming-platform defaults:
// normalize to -14 LUFS, limit at -1 dB, 48 kHz channel-major input.
func DefaultProcessConfig() ProcessConfig {
	return ProcessConfig{
		SampleRate:    48000,
		Normalize:     true,
		TargetLUFS:    -14.0,
		LimitPeaks:    true,
		PeakCeilingDB: -1.0,
		ChannelsFirst: true,
	}
}

// Pipeline composes the post-processing stages. The order is fixed:
// normalization first (sets the overall level), limiting second
// (catches peaks the normalization gain may have pushed over the
// ceiling).
type Pipeline struct {
	cfg     ProcessConfig
	norm    *Normalizer
	limiter *PeakLimiter
}

// NewPipeline builds a pipeline from a config. A nil logger disables
// logging.
func NewPipeline(cfg ProcessConfig, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		norm:    NewNormalizer(cfg.TargetLUFS, log),
		limiter: NewPeakLimiter(log),
	}
}

// Config returns the pipeline's configuration.
func (p *Pipeline) Config() ProcessConfig { return p.cfg }

// Process runs the enabled stages over buf. With both stages disabled
// the buffer comes back untouched.
func (p *Pipeline) Process(buf *Buffer) *Buffer {
	if p.cfg.Normalize {
		buf = p.norm.Apply(buf)
	}
	if p.cfg.LimitPeaks {
		buf = p.limiter.Limit(buf, p.cfg.PeakCeilingDB)
	}
	return buf
}
