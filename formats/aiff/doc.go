// SPDX-License-Identifier: Apache-2.0

// Package aiff provides AIFF decoding.
//
// It uses github.com/go-audio/aiff to decode PCM AIFF files so format
// conversion can load existing .aiff sources. AIFF is not a supported
// save target; requests to save it fall back to the saver's default
// format.
//
//	decoder := aiff.Decoder{}
//	src, err := decoder.Decode(file)
//
// Decode prefers an io.ReadSeeker; other readers are buffered into
// memory first.
package aiff
