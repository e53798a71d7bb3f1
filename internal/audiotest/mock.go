// SPDX-License-Identifier: Apache-2.0

// Package audiotest provides mock sources and signal generators for
// tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio data for testing. It implements the
// audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate (samples per channel)
	generated   int // frames generated so far
	waveform    func(frame, channel int) float32
}

// NewMockSource creates a mock source. waveform produces the sample
// value for a given frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave at the
// given frequency and amplitude on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64, amplitude float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalFrames - m.generated; frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += frames

	n := frames * m.channels
	if m.generated >= m.totalFrames {
		return n, io.EOF
	}
	return n, nil
}

// SineBuffer builds a channel-major sample matrix holding a sine wave
// of the given frequency and amplitude on every channel.
func SineBuffer(sampleRate, channels, frames int, frequency float64, amplitude float32) [][]float32 {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	for f := 0; f < frames; f++ {
		t := float64(f) / float64(sampleRate)
		s := amplitude * float32(math.Sin(2*math.Pi*frequency*t))
		for c := range data {
			data[c][f] = s
		}
	}
	return data
}

// SilentBuffer builds a channel-major all-zero sample matrix.
func SilentBuffer(channels, frames int) [][]float32 {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	return data
}
