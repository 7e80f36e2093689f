// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/busmix/audio"
	"github.com/ik5/busmix/mixer"
)

// deck is one stereo input with its interleaved read buffer.
type deck struct {
	src  audio.Source
	buf  []float32
	done bool
}

// fill reads until buf holds a full block or the source ends, and returns
// the number of frames read.
func (d *deck) fill() (int, error) {
	if d.done {
		return 0, nil
	}

	n := 0
	for n < len(d.buf) {
		m, err := d.src.ReadSamples(d.buf[n:])
		n += m
		if errors.Is(err, io.EOF) {
			d.done = true
			break
		}
		if err != nil {
			return n / 2, err
		}
		if m == 0 {
			break
		}
	}
	return n / 2, nil
}

// MixSource renders bus A and bus B through an engine, block by block.
type MixSource struct {
	a, b    deck
	engine  *mixer.Engine
	frames  int
	planes  mixer.Buffers
	out     []float32
	pending []float32
	stopped bool
}

// NewMixSource checks that both decks are stereo at the same rate. frames
// is the block size handed to the engine per Process call.
func NewMixSource(a, b audio.Source, engine *mixer.Engine, frames int) (*MixSource, error) {
	if frames <= 0 {
		return nil, audio.ErrInvalidBufferSize
	}
	if a.Channels() != 2 {
		return nil, fmt.Errorf("deck a: %w: %d channels", ErrNotStereo, a.Channels())
	}
	if b.Channels() != 2 {
		return nil, fmt.Errorf("deck b: %w: %d channels", ErrNotStereo, b.Channels())
	}
	if a.SampleRate() != b.SampleRate() {
		return nil, fmt.Errorf("%w: %d Hz and %d Hz", ErrSampleRateMismatch, a.SampleRate(), b.SampleRate())
	}

	plane := func() []float32 { return make([]float32, frames) }
	return &MixSource{
		a:      deck{src: a, buf: make([]float32, frames*2)},
		b:      deck{src: b, buf: make([]float32, frames*2)},
		engine: engine,
		frames: frames,
		planes: mixer.Buffers{
			ALeft: plane(), ARight: plane(),
			BLeft: plane(), BRight: plane(),
			Left: plane(), Right: plane(),
		},
		out: make([]float32, frames*2),
	}, nil
}

func (m *MixSource) SampleRate() int { return m.a.src.SampleRate() }
func (m *MixSource) Channels() int   { return 2 }
func (m *MixSource) BufSize() int    { return m.frames * 2 }

// Close closes both decks.
func (m *MixSource) Close() error {
	return errors.Join(m.a.src.Close(), m.b.src.Close())
}

// ReadSamples writes interleaved L/R output. It returns io.EOF once both
// decks have ended, or after the engine asked to stop.
func (m *MixSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	written := 0
	for written < len(dst) {
		if len(m.pending) == 0 {
			if err := m.render(); err != nil {
				return written, err
			}
			if len(m.pending) == 0 {
				return written, nil
			}
		}
		n := copy(dst[written:], m.pending)
		m.pending = m.pending[n:]
		written += n
	}
	return written, nil
}

// render mixes the next block into pending. It returns io.EOF when there
// is nothing left to mix.
func (m *MixSource) render() error {
	if m.stopped {
		return io.EOF
	}

	na, err := m.a.fill()
	if err != nil {
		return fmt.Errorf("deck a: %w", err)
	}
	nb, err := m.b.fill()
	if err != nil {
		return fmt.Errorf("deck b: %w", err)
	}

	n := max(na, nb)
	if n == 0 {
		if m.a.done && m.b.done {
			return io.EOF
		}
		// A source returned no data and no error; try again next call.
		return nil
	}

	p := m.planes
	deinterleave(m.a.buf, na, n, p.ALeft, p.ARight)
	deinterleave(m.b.buf, nb, n, p.BLeft, p.BRight)

	ctl := m.engine.Process(mixer.Buffers{
		ALeft: p.ALeft[:n], ARight: p.ARight[:n],
		BLeft: p.BLeft[:n], BRight: p.BRight[:n],
		Left: p.Left[:n], Right: p.Right[:n],
	})
	if ctl == mixer.Stop {
		m.stopped = true
	}

	for i := range n {
		m.out[2*i] = p.Left[i]
		m.out[2*i+1] = p.Right[i]
	}
	m.pending = m.out[:2*n]
	return nil
}

// deinterleave splits the first have frames of src into l and r and pads
// both with silence up to n.
func deinterleave(src []float32, have, n int, l, r []float32) {
	for i := range have {
		l[i] = src[2*i]
		r[i] = src[2*i+1]
	}
	clear(l[have:n])
	clear(r[have:n])
}
