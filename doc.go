// SPDX-License-Identifier: Apache-2.0

// Package acestep provides the audio post-processing and persistence
// core for generated music: loudness normalization, peak limiting,
// multi-format saving with encoder fallback, and content
// identification.
//
// # Post-processing
//
// Generated audio arrives as raw float32 sample matrices. The
// package-level helpers run the standard mastering chain over them:
//
//	out, err := acestep.PostProcess(samples, audio.DefaultProcessConfig())
//
// which normalizes integrated loudness to -14 LUFS (ITU-R BS.1770-4)
// and then limits peaks to -1 dB. The individual stages are available
// as NormalizeLoudness and ApplyPeakLimiter, and as composable types
// in the audio subpackage.
//
// # Saving
//
// ProcessAndSave runs the chain and writes the result in one call:
//
//	path, err := acestep.ProcessAndSave(samples, "out/track", audio.DefaultProcessConfig(), saver.FormatFLAC)
//
// FLAC and WAV encode natively; MP3 goes through ffmpeg or lame. When
// a backend fails the next one in the chain is tried. The saver
// subpackage exposes the full API, including batch saving and format
// conversion of existing files.
//
// # Reading
//
// ReadFile decodes WAV, FLAC, MP3, Ogg Vorbis and AIFF files into
// channel-major float32 matrices:
//
//	samples, rate, err := acestep.ReadFile("input.ogg")
//
// # Identity
//
// The identity subpackage derives stable identifiers for audio
// content: MD5 digests over files and buffers, and deterministic
// UUIDs over generation parameter maps.
package acestep
