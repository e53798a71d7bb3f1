// SPDX-License-Identifier: Apache-2.0

package audio

import "errors"

var (
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrEmptyBuffer     = errors.New("buffer has no samples")
	ErrRaggedBuffer    = errors.New("channels have different lengths")
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrSilence         = errors.New("audio below loudness gate")
	ErrTooShort        = errors.New("buffer shorter than one gating block")
	ErrTooManyChannels = errors.New("too many channels for loudness weighting")
)
