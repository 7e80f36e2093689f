// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type fakeReader struct {
	format *goaudio.Format
	data   []int
	pos    int
	err    error
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_Normalizes(t *testing.T) {
	t.Parallel()

	dec := &fakeReader{
		format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		data:   []int{0, 16384, -32768, 32767},
	}
	s := NewSource(dec, 16)

	if s.SampleRate() != 44100 || s.Channels() != 2 {
		t.Fatalf("got %d Hz / %d ch", s.SampleRate(), s.Channels())
	}

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("short read error = %v, want io.EOF", err)
	}

	want := []float32{0, 0.5, -1, 32767.0 / 32768.0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}

	if n, err := s.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = (%d, %v)", n, err)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	s := NewSource(&fakeReader{format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}, err: boom}, 16)

	if _, err := s.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth int
		want  float32
		ok    bool
	}{
		{8, 32768, false},
		{16, 32768, true},
		{24, 8388608, true},
		{32, 2147483648, true},
	}

	for _, tt := range tests {
		if got := Scale(tt.depth); got != tt.want {
			t.Errorf("Scale(%d) = %v, want %v", tt.depth, got, tt.want)
		}
		if got := Supported(tt.depth); got != tt.ok {
			t.Errorf("Supported(%d) = %v, want %v", tt.depth, got, tt.ok)
		}
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("RIFF"))
	rs, err := ReadSeeker(br)
	if err != nil || rs != io.ReadSeeker(br) {
		t.Errorf("ReadSeeker() should return a seeker unchanged, got %v, %v", rs, err)
	}

	rs, err = ReadSeeker(strings.NewReader("FORM")) // strings.Reader seeks too
	if err != nil || rs == nil {
		t.Fatalf("ReadSeeker() = %v, %v", rs, err)
	}

	rs, err = ReadSeeker(io.MultiReader(strings.NewReader("da"), strings.NewReader("ta")))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if _, err := rs.Seek(2, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "ta" {
		t.Errorf("after seek read %q, want %q", rest, "ta")
	}
}
