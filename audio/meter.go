// SPDX-License-Identifier: Apache-2.0

package audio

import (
	"fmt"
	"math"
)

// Gating constants from ITU-R BS.1770-4: 400 ms blocks with 75 %
// overlap, a -70 LUFS absolute gate and a -10 LU relative gate.
const (
	blockSeconds  = 0.4
	stepSeconds   = 0.1
	absoluteGate  = -70.0
	relativeGate  = -10.0
	loudnessShift = -0.691
)

// Meter measures integrated loudness per ITU-R BS.1770-4: the signal is
// K-weighted (a high-shelf stage modelling the acoustic effect of the
// head followed by a high-pass stage), cut into overlapping 400 ms
// blocks, and the block powers are averaged after absolute and relative
// gating.
type Meter struct {
	rate  int
	shelf biquad
	hp    biquad
}

// NewMeter builds a meter for the given sample rate. The K-weighting
// filter coefficients are redesigned analytically for the rate, so any
// positive rate is accepted.
func NewMeter(sampleRate int) (*Meter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}
	return &Meter{
		rate:  sampleRate,
		shelf: highShelf(sampleRate),
		hp:    highPass(sampleRate),
	}, nil
}

// SampleRate the meter was built for.
func (m *Meter) SampleRate() int { return m.rate }

// Integrated returns the gated integrated loudness of buf in LUFS.
// It returns ErrTooShort for clips under one gating block (400 ms),
// ErrSilence when every block is below the absolute gate, and
// ErrTooManyChannels above the 5-channel weighting table.
func (m *Meter) Integrated(buf *Buffer) (float64, error) {
	channels := buf.Channels()
	frames := buf.Frames()
	if channels == 0 || frames == 0 {
		return 0, ErrEmptyBuffer
	}
	if channels > 5 {
		return 0, fmt.Errorf("%w: %d", ErrTooManyChannels, channels)
	}

	block := int(blockSeconds * float64(m.rate))
	step := int(stepSeconds * float64(m.rate))
	if frames < block {
		return 0, fmt.Errorf("%w: %d frames at %d Hz", ErrTooShort, frames, m.rate)
	}

	// K-weight each channel.
	weighted := make([][]float64, channels)
	for c := 0; c < channels; c++ {
		w := make([]float64, frames)
		for i, s := range buf.Channel(c) {
			w[i] = float64(s)
		}
		m.shelf.filter(w)
		m.hp.filter(w)
		weighted[c] = w
	}

	// Mean square of every channel over every block.
	numBlocks := 1 + (frames-block)/step
	power := make([][]float64, numBlocks) // power[j][c]
	for j := 0; j < numBlocks; j++ {
		start := j * step
		z := make([]float64, channels)
		for c := 0; c < channels; c++ {
			var sum float64
			for _, s := range weighted[c][start : start+block] {
				sum += s * s
			}
			z[c] = sum / float64(block)
		}
		power[j] = z
	}

	loudness := func(z []float64) float64 {
		var sum float64
		for c, p := range z {
			sum += channelWeight(c) * p
		}
		return loudnessShift + 10*math.Log10(sum)
	}

	// Absolute gate.
	var absGated [][]float64
	for _, z := range power {
		if l := loudness(z); l > absoluteGate && !math.IsInf(l, 0) && !math.IsNaN(l) {
			absGated = append(absGated, z)
		}
	}
	if len(absGated) == 0 {
		return 0, ErrSilence
	}

	// Relative gate, computed from the mean power of the surviving blocks.
	relThreshold := loudness(meanPower(absGated)) + relativeGate

	var gated [][]float64
	for _, z := range absGated {
		if loudness(z) > relThreshold {
			gated = append(gated, z)
		}
	}
	if len(gated) == 0 {
		return 0, ErrSilence
	}

	lufs := loudness(meanPower(gated))
	if math.IsInf(lufs, 0) || math.IsNaN(lufs) {
		return 0, ErrSilence
	}
	return lufs, nil
}

// channelWeight returns the BS.1770 channel weighting: unity for
// left/right/centre, +1.5 dB (1.41) for the surround pair.
func channelWeight(c int) float64 {
	if c == 3 || c == 4 {
		return 1.41
	}
	return 1.0
}

func meanPower(blocks [][]float64) []float64 {
	channels := len(blocks[0])
	mean := make([]float64, channels)
	for _, z := range blocks {
		for c, p := range z {
			mean[c] += p
		}
	}
	for c := range mean {
		mean[c] /= float64(len(blocks))
	}
	return mean
}

// biquad is a direct-form-I second order IIR section.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// filter runs the section over x in place.
func (f biquad) filter(x []float64) {
	var x1, x2, y1, y2 float64
	for i, s := range x {
		y := f.b0*s + f.b1*x1 + f.b2*x2 - f.a1*y1 - f.a2*y2
		x2, x1 = x1, s
		y2, y1 = y1, y
		x[i] = y
	}
}

// highShelf designs the first K-weighting stage (spherical head model)
// for an arbitrary sample rate. Parameter values reproduce the BS.1770
// reference coefficients at 48 kHz.
func highShelf(rate int) biquad {
	const (
		f0 = 1681.9744509555319
		g  = 3.99984385397
		q  = 0.7071752369554196
	)
	k := math.Tan(math.Pi * f0 / float64(rate))
	vh := math.Pow(10, g/20.0)
	vb := math.Pow(vh, 0.4996667741545416)
	a0 := 1 + k/q + k*k
	return biquad{
		b0: (vh + vb*k/q + k*k) / a0,
		b1: 2 * (k*k - vh) / a0,
		b2: (vh - vb*k/q + k*k) / a0,
		a1: 2 * (k*k - 1) / a0,
		a2: (1 - k/q + k*k) / a0,
	}
}

// highPass designs the second K-weighting stage for an arbitrary sample
// rate. The numerator is fixed per the standard.
func highPass(rate int) biquad {
	const (
		f0 = 38.13547087602444
		q  = 0.5003270373238773
	)
	k := math.Tan(math.Pi * f0 / float64(rate))
	a0 := 1 + k/q + k*k
	return biquad{
		b0: 1,
		b1: -2,
		b2: 1,
		a1: 2 * (k*k - 1) / a0,
		a2: (1 - k/q + k*k) / a0,
	}
}
