// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/busmix/audio"
	"github.com/ik5/busmix/utils"
)

// BitDepth of the files Encode writes.
const BitDepth = 16

// Encode drains src into w as 16-bit PCM at the rate and channel count of
// src, reading bufSize samples at a time. It returns the number of frames
// written. The header is finalized even when src fails mid stream.
func Encode(w io.WriteSeeker, src audio.Source, bufSize int) (frames int, err error) {
	if bufSize <= 0 {
		return 0, audio.ErrInvalidBufferSize
	}

	channels := src.Channels()
	if channels < 1 {
		return 0, ErrUnsupportedWavLayout
	}
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	enc := wav.NewEncoder(w, src.SampleRate(), BitDepth, channels, formatPCM)
	defer func() {
		if cerr := enc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing wav: %w", cerr)
		}
	}()

	samples := make([]float32, bufSize)
	out := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  src.SampleRate(),
		},
		Data:           make([]int, bufSize),
		SourceBitDepth: BitDepth,
	}

	total := 0
	for {
		n, rerr := src.ReadSamples(samples)
		if n > 0 {
			out.Data = out.Data[:utils.ToPCM16(out.Data[:cap(out.Data)], samples[:n])]
			if werr := enc.Write(out); werr != nil {
				return total / channels, fmt.Errorf("writing wav: %w", werr)
			}
			total += n
		}

		if errors.Is(rerr, io.EOF) {
			return total / channels, nil
		}
		if rerr != nil {
			return total / channels, fmt.Errorf("reading source: %w", rerr)
		}
	}
}
