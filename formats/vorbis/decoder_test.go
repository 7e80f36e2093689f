// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggVorbisReader returns its interleaved samples like oggvorbis.Reader:
// the count is in float32 values, not frames.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func newSource(m *mockOggVorbisReader) *source {
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("OggS but not really a vorbis stream")} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		if !errors.Is(err, ErrNotVorbisFile) {
			t.Errorf("Decode(%q) error = %v, want ErrNotVorbisFile", data, err)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s := newSource(&mockOggVorbisReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	})

	if s.SampleRate() != 48000 || s.Channels() != 2 {
		t.Fatalf("got %d Hz / %d ch", s.SampleRate(), s.Channels())
	}

	dst := make([]float32, 5) // trimmed to 4
	n, err := s.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}
	if dst[3] != -0.2 {
		t.Errorf("dst[3] = %v, want -0.2", dst[3])
	}

	n, _ = s.ReadSamples(dst)
	if n != 2 || dst[0] != 0.3 || dst[1] != -0.3 {
		t.Errorf("second read = %d %v", n, dst[:n])
	}

	if n, err := s.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("read after end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_LessThanFrame(t *testing.T) {
	t.Parallel()

	s := newSource(&mockOggVorbisReader{channels: 2, samples: []float32{1, 1}})
	if n, err := s.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples() = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	s := newSource(&mockOggVorbisReader{channels: 1, err: boom})

	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
