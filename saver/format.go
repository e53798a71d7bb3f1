// SPDX-License-Identifier: Apache-2.0

package saver

import "strings"

// Format is a supported save target.
type Format string

const (
	FormatFLAC Format = "flac"
	FormatWAV  Format = "wav"
	FormatMP3  Format = "mp3"
)

// DefaultFormat is used when a requested format is unsupported. FLAC:
// lossless and the fastest path.
const DefaultFormat = FormatFLAC

// ParseFormat normalizes a format string ("FLAC", ".mp3", "wav") into a
// Format. ok is false for anything outside the supported set.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	switch f {
	case FormatFLAC, FormatWAV, FormatMP3:
		return f, true
	default:
		return "", false
	}
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string { return "." + string(f) }
