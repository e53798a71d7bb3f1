// SPDX-License-Identifier: Apache-2.0

// Package wav provides WAV encoding and decoding.
//
// It uses the github.com/go-audio library for WAV file handling. The
// Decoder accepts PCM WAV input at 8/16/24/32-bit depth and produces an
// audio.Source of normalized float32 samples; the Encoder writes
// buffers as 16-bit PCM, the interchange depth of the save pipeline.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Decode prefers an io.ReadSeeker; other readers are buffered into
// memory first.
//
// # Encoding
//
//	enc := wav.Encoder{}
//	err := enc.Encode(buf, "output.wav")
//
// The encoder is the primary WAV backend of the save fallback chain.
package wav
