package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a FLAC file")
	ErrUnsupportedChannels = errors.New("flac encoder supports mono and stereo only")
)
