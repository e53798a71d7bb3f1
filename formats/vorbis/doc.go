// SPDX-License-Identifier: Apache-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// It uses github.com/jfreymuth/oggvorbis. The package exists so
// format conversion can load existing .ogg sources; Ogg Vorbis is not
// a supported save target and requests to save it fall back to the
// saver's default format.
//
//	decoder := vorbis.Decoder{}
//	src, err := decoder.Decode(file)
package vorbis
