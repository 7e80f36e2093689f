// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides generated audio sources for tests. The types
// satisfy audio.Source without importing it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame index frame.
type Waveform func(frame, ch int) float32

// MockSource generates a fixed number of frames from a Waveform.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	waveform   Waveform
	closed     bool
}

func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewStereoSource holds left on channel 0 and right on channel 1.
func NewStereoSource(sampleRate, frames int, left, right float32) *MockSource {
	return NewMockSource(sampleRate, 2, frames, func(_, ch int) float32 {
		if ch == 0 {
			return left
		}
		return right
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.frames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
