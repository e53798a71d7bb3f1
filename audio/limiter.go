// SPDX-License-Identifier: Apache-2.0

package audio

import (
	"go.uber.org/zap"

	"github.com/henricksmedia/ACE-Step-1.5/logger"
	"github.com/henricksmedia/ACE-Step-1.5/utils"
)

// PeakLimiter clamps sample magnitude to a ceiling by uniform gain
// reduction: if the clip's peak exceeds the ceiling, every sample is
// scaled by ceiling/peak. This is a brick-wall approximation, not a
// true-peak limiter -- inter-sample peaks after reconstruction can
// still exceed the nominal ceiling.
type PeakLimiter struct {
	log *logger.Logger
}

// NewPeakLimiter builds a limiter. A nil logger disables logging.
func NewPeakLimiter(log *logger.Logger) *PeakLimiter {
	return &PeakLimiter{log: logger.OrNop(log)}
}

// Limit returns buf scaled so no sample exceeds ceilingDB. When the
// peak is already at or under the ceiling the input buffer is returned
// as-is.
func (l *PeakLimiter) Limit(buf *Buffer, ceilingDB float64) *Buffer {
	ceiling := utils.DBToLinear(ceilingDB)
	peak := float64(buf.Peak())
	if peak <= ceiling {
		return buf
	}

	reduction := ceiling / peak
	l.log.Debug("limited peak",
		zap.Float64("reduction_db", utils.LinearToDB(reduction)),
		zap.Float64("ceiling_db", ceilingDB),
	)
	return buf.Scale(reduction)
}
