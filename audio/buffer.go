// SPDX-License-Identifier: Apache-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds a complete audio clip as channel-major float32 samples in
// [-1, 1] with an associated sample rate. The canonical layout is one
// slice per channel; constructors convert sample-major input on the way
// in, and Rows converts back on the way out. A Buffer never aliases the
// caller's slices.
type Buffer struct {
	data [][]float32 // channel-major
	rate int
}

// New builds a Buffer from a 2-D sample matrix. When channelsFirst is
// true each row of data is one channel; otherwise each row is one frame
// (one sample per channel) and the matrix is transposed.
func New(data [][]float32, sampleRate int, channelsFirst bool) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptyBuffer
	}
	for _, row := range data[1:] {
		if len(row) != len(data[0]) {
			return nil, ErrRaggedBuffer
		}
	}

	if !channelsFirst {
		return &Buffer{data: transpose(data), rate: sampleRate}, nil
	}

	cp := make([][]float32, len(data))
	for i, ch := range data {
		cp[i] = append([]float32(nil), ch...)
	}
	return &Buffer{data: cp, rate: sampleRate}, nil
}

// NewMono builds a single-channel Buffer.
func NewMono(samples []float32, sampleRate int) (*Buffer, error) {
	return New([][]float32{samples}, sampleRate, true)
}

// FromInterleaved builds a Buffer from interleaved samples
// (frame-major: s0c0, s0c1, s1c0, s1c1, ...). The sample count must be a
// multiple of channels.
func FromInterleaved(samples []float32, channels, sampleRate int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}
	if channels <= 0 || len(samples) == 0 {
		return nil, ErrEmptyBuffer
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	frames := len(samples) / channels
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			data[c][f] = samples[f*channels+c]
		}
	}
	return &Buffer{data: data, rate: sampleRate}, nil
}

// SampleRate of the clip in Hz.
func (b *Buffer) SampleRate() int { return b.rate }

// Channels count.
func (b *Buffer) Channels() int { return len(b.data) }

// Frames is the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// Channel returns one channel's samples. The slice is a view into the
// buffer; callers must not modify it.
func (b *Buffer) Channel(i int) []float32 { return b.data[i] }

// Data returns the channel-major sample matrix as a view.
func (b *Buffer) Data() [][]float32 { return b.data }

// Rows returns the samples in the requested layout. Channel-major
// returns a copy of the internal matrix; sample-major transposes.
func (b *Buffer) Rows(channelsFirst bool) [][]float32 {
	if !channelsFirst {
		return transpose(b.data)
	}
	cp := make([][]float32, len(b.data))
	for i, ch := range b.data {
		cp[i] = append([]float32(nil), ch...)
	}
	return cp
}

// Interleaved flattens the buffer into frame-major interleaved samples.
func (b *Buffer) Interleaved() []float32 {
	frames := b.Frames()
	channels := b.Channels()
	out := make([]float32, frames*channels)
	for c, ch := range b.data {
		for f, s := range ch {
			out[f*channels+c] = s
		}
	}
	return out
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	cp := make([][]float32, len(b.data))
	for i, ch := range b.data {
		cp[i] = append([]float32(nil), ch...)
	}
	return &Buffer{data: cp, rate: b.rate}
}

// Peak returns the maximum absolute sample value.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, ch := range b.data {
		for _, s := range ch {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
	}
	return peak
}

// Scale returns a new buffer with every sample multiplied by gain. The
// receiver is left untouched.
func (b *Buffer) Scale(gain float64) *Buffer {
	g := float32(gain)
	out := make([][]float32, len(b.data))
	for i, ch := range b.data {
		scaled := make([]float32, len(ch))
		for j, s := range ch {
			scaled[j] = s * g
		}
		out[i] = scaled
	}
	return &Buffer{data: out, rate: b.rate}
}

// InferChannelsFirst guesses the orientation of a 2-D sample matrix:
// the shorter axis is assumed to be the channel axis. This is a
// heuristic only -- it misjudges very short multi-channel clips where
// the channel count exceeds the frame count.
func InferChannelsFirst(data [][]float32) bool {
	if len(data) == 0 || len(data[0]) == 0 {
		return true
	}
	return len(data) <= len(data[0])
}

func transpose(data [][]float32) [][]float32 {
	rows := len(data)
	cols := len(data[0])
	out := make([][]float32, cols)
	for i := range out {
		out[i] = make([]float32, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = data[j][i]
		}
	}
	return out
}

// ReadAll drains a Source into a Buffer. The source is read to io.EOF
// but not closed.
func ReadAll(src Source) (*Buffer, error) {
	buf := make([]float32, 4096)
	var all []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			all = append(all, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	// Drop a trailing partial frame if the source ended mid-frame.
	if ch := src.Channels(); ch > 0 {
		all = all[:len(all)-len(all)%ch]
	}
	return FromInterleaved(all, src.Channels(), src.SampleRate())
}
