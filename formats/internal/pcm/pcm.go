// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio integer decoders to audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// Reader is the part of the go-audio wav and aiff decoders a Source reads.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Supported reports whether Scale knows the bit depth.
func Supported(bitDepth int) bool {
	switch bitDepth {
	case 16, 24, 32:
		return true
	}
	return false
}

// Scale is the divisor that maps a signed sample of bitDepth to [-1, 1).
func Scale(bitDepth int) float32 {
	switch bitDepth {
	case 24:
		return 1 << 23
	case 32:
		return 1 << 31
	default:
		return 1 << 15
	}
}

// Source reads interleaved int samples and normalizes them to float32.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	buf        *goaudio.IntBuffer
}

func NewSource(dec Reader, bitDepth int) *Source {
	f := dec.Format()
	return &Source{
		dec:        dec,
		sampleRate: f.SampleRate,
		channels:   f.NumChannels,
		scale:      Scale(bitDepth),
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	if err == nil && n < len(dst) {
		err = io.EOF
	}
	return n, err
}

// ReadSeeker returns r if it can seek, otherwise buffers it in memory.
// The go-audio decoders need to seek over chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
