// SPDX-License-Identifier: Apache-2.0

// Package audio provides the core audio processing primitives of the
// post-processing pipeline.
//
// This package contains the building blocks the rest of the module is
// assembled from:
//   - Buffer, the canonical channel-major float32 clip representation
//   - Meter for ITU-R BS.1770-4 integrated loudness measurement
//   - Normalizer for LUFS loudness normalization
//   - PeakLimiter for uniform-gain peak limiting
//   - Pipeline composing normalization and limiting
//   - Source interface and decoder Registry for format decoders
//
// # Buffers
//
// A Buffer holds a complete clip as one float32 slice per channel plus
// a sample rate. Constructors accept channel-major or sample-major
// matrices, mono slices, or interleaved streams:
//
//	buf, err := audio.New(data, 48000, true)
//	buf, err := audio.NewMono(samples, 48000)
//	buf, err := audio.FromInterleaved(samples, 2, 44100)
//
// Processing operations never mutate a buffer in place; Scale and the
// pipeline stages return new buffers, and identity cases (nothing to
// do) return the input buffer itself.
//
// # Loudness
//
// The Meter implements gated integrated loudness per ITU-R BS.1770-4:
// K-weighting filters, 400 ms blocks with 75 % overlap, absolute and
// relative gating:
//
//	meter, _ := audio.NewMeter(48000)
//	lufs, err := meter.Integrated(buf)
//
// Clips below the -70 LUFS gate report ErrSilence and clips shorter
// than one gating block report ErrTooShort. The Normalizer treats both
// as "leave the audio alone", so normalizing near-silence never
// amplifies the noise floor into audibility.
//
// # Post-processing
//
// The Pipeline runs normalization then limiting, each independently
// toggleable:
//
//	p := audio.NewPipeline(audio.DefaultProcessConfig(), log)
//	out := p.Process(buf)
//
// The order is significant: normalization sets the perceived level,
// limiting catches any peaks the gain change pushed over the ceiling.
//
// # Decoders
//
// Format decoders implement Decoder and produce a Source of interleaved
// float32 samples. The Registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - ±1.0 represents maximum amplitude
//
// This normalized format decouples processing from codec bit depths.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Measurement
// errors of the Meter (ErrSilence, ErrTooShort, ErrTooManyChannels)
// are sentinel values and can be tested with errors.Is.
package audio
