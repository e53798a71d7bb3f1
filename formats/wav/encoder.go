// SPDX-License-Identifier: Apache-2.0

package wav

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/henricksmedia/ACE-Step-1.5/audio"
	"github.com/henricksmedia/ACE-Step-1.5/utils"
)

// Encoder writes buffers as 16-bit PCM WAV files.
type Encoder struct{}

// Name identifies the backend in fallback-chain logs.
func (Encoder) Name() string { return "wav" }

// Encode writes buf to path. Any existing file is truncated.
func (Encoder) Encode(buf *audio.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	enc := gowav.NewEncoder(f, buf.SampleRate(), 16, buf.Channels(), 1)

	interleaved := buf.Interleaved()
	data := make([]int, len(interleaved))
	for i, s := range interleaved {
		data[i] = int(utils.Float32ToInt16(s))
	}

	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels(),
			SampleRate:  buf.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(ib); err != nil {
		f.Close()
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing wav file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
