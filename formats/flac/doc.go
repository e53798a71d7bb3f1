// SPDX-License-Identifier: Apache-2.0

// Package flac provides FLAC encoding and decoding.
//
// It uses github.com/mewkiz/flac. The Decoder handles any FLAC input
// the library can parse and produces an audio.Source of normalized
// float32 samples. The Encoder writes 16-bit lossless FLAC with
// verbatim (uncompressed-prediction) subframes -- files are valid FLAC
// and decode everywhere, at the cost of a weaker compression ratio than
// a reference encoder. FLAC is the default save format of the pipeline
// because it is lossless and fast to write.
//
// # Decoding
//
//	decoder := flac.Decoder{}
//	src, err := decoder.Decode(file)
//
// # Encoding
//
//	enc := flac.Encoder{}
//	err := enc.Encode(buf, "output.flac")
//
// The encoder accepts mono and stereo buffers; wider channel layouts
// return ErrUnsupportedChannels so the save fallback chain can hand
// the clip to the external transcoder instead.
package flac
