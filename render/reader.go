// SPDX-License-Identifier: EPL-2.0

package render

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/ik5/busmix/audio"
)

// Reader exposes a Source as float32 little endian bytes, the layout of
// oto.FormatFloat32LE.
type Reader struct {
	src  audio.Source
	buf  []float32
	raw  []byte
	rest []byte
	err  error
}

func NewReader(src audio.Source) *Reader {
	return &Reader{src: src}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(r.rest) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if err := r.decode(len(p) / 4); err != nil {
			r.err = err
		}
		if len(r.rest) == 0 {
			return 0, r.err
		}
	}

	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	return n, nil
}

// decode reads about want samples, rounded to whole frames, into rest.
func (r *Reader) decode(want int) error {
	ch := r.src.Channels()
	want = max(want-want%ch, ch)

	if cap(r.buf) < want {
		r.buf = make([]float32, want)
		r.raw = make([]byte, want*4)
	}

	n, err := r.src.ReadSamples(r.buf[:want])
	raw := r.raw[:n*4]
	for i, v := range r.buf[:n] {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(v))
	}
	r.rest = raw

	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	return err
}
