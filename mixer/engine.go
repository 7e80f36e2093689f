// SPDX-License-Identifier: EPL-2.0

package mixer

import "sync/atomic"

// Control is what Process hands back to the backend after each buffer.
type Control uint8

const (
	Continue Control = iota
	Stop
)

func (c Control) String() string {
	if c == Stop {
		return "stop"
	}
	return "continue"
}

// Buffers is one callback's worth of planar samples. Inputs are only read,
// outputs are overwritten. The slices are borrowed from the backend for the
// duration of a single Process call.
type Buffers struct {
	ALeft  []float32
	ARight []float32
	BLeft  []float32
	BRight []float32
	Left   []float32
	Right  []float32
}

// Frames is the number of frames Process will mix: the length of the
// shortest slice.
func (b *Buffers) Frames() int {
	return min(len(b.ALeft), len(b.ARight), len(b.BLeft), len(b.BRight), len(b.Left), len(b.Right))
}

// Validate reports ErrBufferMismatch when the slices differ in length.
// Backends call it while setting up a stream, not per buffer.
func (b *Buffers) Validate() error {
	n := len(b.Left)
	if len(b.ALeft) != n || len(b.ARight) != n || len(b.BLeft) != n ||
		len(b.BRight) != n || len(b.Right) != n {
		return ErrBufferMismatch
	}
	return nil
}

// Stats are running totals kept by the engine.
type Stats struct {
	Buffers  uint64
	Frames   uint64
	Commands uint64
}

// Engine mixes bus A and bus B into a stereo output.
type Engine struct {
	rx    *Receiver
	state State

	buffers  atomic.Uint64
	frames   atomic.Uint64
	commands atomic.Uint64
}

// NewEngine creates an engine in its default state that drains commands
// from rx. A nil rx gives an engine that only ever mixes at default gains.
func NewEngine(rx *Receiver) *Engine {
	return &Engine{
		rx:    rx,
		state: NewState(),
	}
}

// Process applies every pending command and then mixes one buffer. It is
// realtime safe and always returns Continue.
func (e *Engine) Process(buf Buffers) Control {
	if e.rx != nil {
		if n := e.rx.applyTo(&e.state); n > 0 {
			e.commands.Add(uint64(n))
		}
	}

	// One snapshot per buffer.
	gal, gar := e.state.ALeft, e.state.ARight
	gbl, gbr := e.state.BLeft, e.state.BRight

	n := buf.Frames()
	al, ar := buf.ALeft[:n], buf.ARight[:n]
	bl, br := buf.BLeft[:n], buf.BRight[:n]
	l, r := buf.Left[:n], buf.Right[:n]

	for i := range n {
		l[i] = al[i]*gal + bl[i]*gbl
		r[i] = ar[i]*gar + br[i]*gbr
	}

	e.buffers.Add(1)
	e.frames.Add(uint64(n))

	return Continue
}

// State returns a copy of the mixer state. Call it only from the goroutine
// that runs Process, or after the backend has stopped.
func (e *Engine) State() State { return e.state }

// Stats may be called from any goroutine.
func (e *Engine) Stats() Stats {
	return Stats{
		Buffers:  e.buffers.Load(),
		Frames:   e.frames.Load(),
		Commands: e.commands.Load(),
	}
}
