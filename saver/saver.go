// SPDX-License-Identifier: Apache-2.0

package saver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/formats/aiff"
	flacfmt "github.com/henricksmedia/ACE-Step-1.5/formats/flac"
	mp3fmt "github.com/henricksmedia/ACE-Step-1.5/formats/mp3"
	"github.com/henricksmedia/ACE-Step-1.5/formats/vorbis"
	wavfmt "github.com/henricksmedia/ACE-Step-1.5/formats/wav"
	"github.com/henricksmedia/ACE-Step-1.5/logger"
	"github.com/henricksmedia/ACE-Step-1.5/transcode"
)

// Encoder writes a buffer to a file. Implementations are tried in
// order by the per-format fallback chains.
type Encoder interface {
	Name() string
	Encode(buf *audio.Buffer, path string) error
}

// Saver persists buffers to disk with per-format encoder fallback
// chains and decodes existing files for conversion. A Saver holds only
// immutable configuration set at construction and is safe to share
// across goroutines.
type Saver struct {
	defaultFormat Format
	log           *logger.Logger
	registry      *audio.Registry
	chains        map[Format][]Encoder
}

// Option configures a Saver.
type Option func(*Saver)

// WithLogger sets the saver's logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Saver) { s.log = logger.OrNop(l) }
}

// WithEncoder prepends an encoder to a format's fallback chain.
func WithEncoder(f Format, enc Encoder) Option {
	return func(s *Saver) {
		s.chains[f] = append([]Encoder{enc}, s.chains[f]...)
	}
}

// New builds a Saver. An unsupported defaultFormat is replaced by FLAC
// with a warning, never an error. The encoder chains are:
//
//	flac: native flac -> ffmpeg
//	wav:  native wav  -> ffmpeg
//	mp3:  ffmpeg      -> lame
//
// Transcoding backends missing from PATH are dropped from the chains
// at construction.
func New(defaultFormat Format, opts ...Option) *Saver {
	s := &Saver{
		defaultFormat: defaultFormat,
		log:           logger.Nop(),
		registry:      audio.NewRegistry(),
		chains:        make(map[Format][]Encoder),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, ok := ParseFormat(string(s.defaultFormat)); !ok {
		s.log.Warn("unsupported default format, using flac",
			zap.String("format", string(s.defaultFormat)),
		)
		s.defaultFormat = DefaultFormat
	}

	s.registry.Register("wav", wavfmt.Decoder{})
	s.registry.Register("flac", flacfmt.Decoder{})
	s.registry.Register("mp3", mp3fmt.Decoder{})
	s.registry.Register("ogg", vorbis.Decoder{})
	s.registry.Register("aiff", aiff.Decoder{})

	s.chains[FormatFLAC] = append(s.chains[FormatFLAC], flacfmt.Encoder{})
	s.chains[FormatWAV] = append(s.chains[FormatWAV], wavfmt.Encoder{})

	if ffmpeg, err := transcode.NewFFmpegEncoder(s.log); err == nil {
		s.chains[FormatFLAC] = append(s.chains[FormatFLAC], ffmpeg)
		s.chains[FormatWAV] = append(s.chains[FormatWAV], ffmpeg)
		s.chains[FormatMP3] = append(s.chains[FormatMP3], ffmpeg)
	} else {
		s.log.Debug("ffmpeg backend unavailable", zap.Error(err))
	}
	if lame, err := transcode.NewLameEncoder(s.log); err == nil {
		s.chains[FormatMP3] = append(s.chains[FormatMP3], lame)
	} else {
		s.log.Debug("lame backend unavailable", zap.Error(err))
	}

	return s
}

// DefaultFormat returns the saver's default save format.
func (s *Saver) DefaultFormat() Format { return s.defaultFormat }

// Options control a single save call.
type Options struct {
	// SampleRate of the data, Hz. Zero means 48000.
	SampleRate int
	// Format to encode. Empty means the saver's default; unsupported
	// values are substituted by the default with a warning.
	Format Format
	// ChannelsFirst declares the layout of the sample matrix.
	ChannelsFirst bool
}

// DefaultOptions returns 48 kHz, saver-default format, channel-major.
func DefaultOptions() Options {
	return Options{SampleRate: 48000, ChannelsFirst: true}
}

// Save writes data to outputPath and returns the path actually
// written. A recognized extension on outputPath decides the effective
// format; otherwise the extension is derived from the requested (or
// default) format and any unrecognized extension is replaced.
func (s *Saver) Save(data [][]float32, outputPath string, o Options) (string, error) {
	if o.SampleRate == 0 {
		o.SampleRate = 48000
	}

	format := s.defaultFormat
	if o.Format != "" {
		f, ok := ParseFormat(string(o.Format))
		if !ok {
			s.log.Warn("unsupported format, using default",
				zap.String("format", string(o.Format)),
				zap.String("default", string(s.defaultFormat)),
			)
			f = s.defaultFormat
		}
		format = f
	}

	outputPath, format = s.resolvePath(outputPath, format)

	buf, err := s.toBuffer(data, o)
	if err != nil {
		return "", err
	}

	chain := s.chains[format]
	encErr := &EncodeError{Format: format, Path: outputPath}
	for _, enc := range chain {
		err := enc.Encode(buf, outputPath)
		if err == nil {
			s.log.Debug("saved audio",
				zap.String("path", outputPath),
				zap.String("format", string(format)),
				zap.String("backend", enc.Name()),
				zap.Int("sample_rate", o.SampleRate),
			)
			return outputPath, nil
		}

		s.log.Warn("encode backend failed, trying fallback",
			zap.String("backend", enc.Name()),
			zap.Error(err),
		)
		encErr.Attempts = append(encErr.Attempts, fmt.Errorf("%s: %w", enc.Name(), err))
		// Remove any partial output before the next attempt.
		os.Remove(outputPath)
	}

	return "", encErr
}

// resolvePath reconciles the output path's extension with the
// requested format. A recognized extension is authoritative; anything
// else is replaced by the effective format's extension.
func (s *Saver) resolvePath(path string, format Format) (string, Format) {
	ext := strings.ToLower(filepath.Ext(path))
	if extFormat, ok := ParseFormat(ext); ok {
		return path, extFormat
	}
	if ext != "" {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	return path + format.Ext(), format
}

// toBuffer canonicalizes a raw sample matrix, second-guessing an
// implausible channel-major declaration: when the matrix has more rows
// than columns the shorter axis is assumed to be the channel axis.
// That assumption is a heuristic and is logged, not trusted silently.
func (s *Saver) toBuffer(data [][]float32, o Options) (*audio.Buffer, error) {
	channelsFirst := o.ChannelsFirst
	if channelsFirst && len(data) > 1 && !audio.InferChannelsFirst(data) {
		s.log.Warn("channel-major layout looks implausible, assuming shorter axis is channels",
			zap.Int("rows", len(data)),
			zap.Int("cols", len(data[0])),
		)
		channelsFirst = false
	}

	buf, err := audio.New(data, o.SampleRate, channelsFirst)
	if err != nil {
		return nil, fmt.Errorf("invalid audio data: %w", err)
	}
	return buf, nil
}
