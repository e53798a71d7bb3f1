// SPDX-License-Identifier: Apache-2.0

// Package saver persists audio buffers to disk and converts existing
// audio files between formats.
//
// # Formats and Fallback
//
// FLAC, WAV and MP3 are supported as save targets. Each format has a
// chain of encoder backends that are tried in order: FLAC and WAV are
// encoded natively with ffmpeg as a fallback, MP3 is encoded with
// ffmpeg with lame as a fallback. Backends whose binaries are not on
// PATH are dropped when the Saver is built. When every backend in a
// chain fails, Save returns an *EncodeError carrying each attempt.
//
// # Paths
//
// A recognized extension on the output path decides the effective
// format. Unrecognized extensions are replaced, and a missing
// extension is appended, so the returned path may differ from the one
// requested.
//
// # Decoding
//
// Load and Convert read WAV, FLAC, MP3, Ogg Vorbis and AIFF files.
// Decoding resolves by extension first and falls back to trying every
// registered decoder against the file contents.
package saver
