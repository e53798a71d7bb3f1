// SPDX-License-Identifier: Apache-2.0

package audio

import (
	"errors"

	"go.uber.org/zap"

	"github.com/henricksmedia/ACE-Step-1.5/logger"
	"github.com/henricksmedia/ACE-Step-1.5/utils"
)

// Normalizer rescales buffers to a target integrated loudness.
//
// Normalization never fails: silent or too-short clips pass through
// unchanged (amplifying the noise floor of near-silence would only make
// it audible), and any metering problem degrades to a logged no-op.
type Normalizer struct {
	target float64
	log    *logger.Logger
}

// NewNormalizer builds a normalizer for the given target LUFS.
// Common targets: -14 (Spotify/YouTube), -16 (Apple Music),
// -23 (EBU R128 broadcast). A nil logger disables logging.
func NewNormalizer(targetLUFS float64, log *logger.Logger) *Normalizer {
	return &Normalizer{target: targetLUFS, log: logger.OrNop(log)}
}

// Target returns the configured loudness target in LUFS.
func (n *Normalizer) Target() float64 { return n.target }

// Apply measures buf and returns a copy scaled so its integrated
// loudness matches the target. The input buffer is returned unchanged
// when measurement is impossible or the clip is effectively silent.
func (n *Normalizer) Apply(buf *Buffer) *Buffer {
	meter, err := NewMeter(buf.SampleRate())
	if err != nil {
		n.log.Warn("loudness metering unavailable, skipping normalization",
			zap.Int("sample_rate", buf.SampleRate()),
			zap.Error(err),
		)
		return buf
	}

	current, err := meter.Integrated(buf)
	if err != nil {
		if errors.Is(err, ErrSilence) || errors.Is(err, ErrTooShort) {
			n.log.Debug("audio too quiet or too short, skipping normalization",
				zap.Error(err),
			)
		} else {
			n.log.Warn("loudness measurement failed, returning original audio",
				zap.Error(err),
			)
		}
		return buf
	}

	gain := utils.DBToLinear(n.target - current)
	n.log.Debug("normalized loudness",
		zap.Float64("from_lufs", current),
		zap.Float64("to_lufs", n.target),
		zap.Float64("gain", gain),
	)
	return buf.Scale(gain)
}
