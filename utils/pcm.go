// SPDX-License-Identifier: Apache-2.0

package utils

import "math"

// Float32ToInt16 converts one normalized sample to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for both extremes to keep the conversion symmetric
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts one 16-bit PCM sample to the normalized
// [-1, 1] range.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// PCMScale returns the full-scale divisor for a PCM bit depth. Unknown
// depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// DBToLinear converts a decibel value to a linear gain factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20.0)
}

// LinearToDB converts a linear gain factor to decibels.
func LinearToDB(gain float64) float64 {
	return 20.0 * math.Log10(gain)
}
