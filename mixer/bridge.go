// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"context"
	"iter"
	"sync"
)

// DefaultCapacity is the number of commands the bridge holds before
// TrySend starts reporting ErrFull.
const DefaultCapacity = 10

// Sender is the producer end of the bridge. It is a value; copy it into
// every control that needs to send commands.
type Sender struct {
	cmds chan<- Command
	done <-chan struct{}
}

// Receiver is the consumer end of the bridge. Only the engine drains it.
type Receiver struct {
	cmds chan Command
	done chan struct{}
	once sync.Once
}

// NewBridge creates a bounded command channel. A capacity below 1 falls
// back to DefaultCapacity.
func NewBridge(capacity int) (Sender, *Receiver) {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	rx := &Receiver{
		cmds: make(chan Command, capacity),
		done: make(chan struct{}),
	}

	return Sender{cmds: rx.cmds, done: rx.done}, rx
}

// Send enqueues cmd, waiting while the channel is full.
func (s Sender) Send(ctx context.Context, cmd Command) error {
	if s.cmds == nil {
		return ErrDisconnected
	}

	select {
	case <-s.done:
		return ErrDisconnected
	default:
	}

	select {
	case s.cmds <- cmd:
		return nil
	case <-s.done:
		return ErrDisconnected
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend enqueues cmd without waiting. It returns ErrFull when the channel
// is at capacity and ErrDisconnected once the receiver was closed.
func (s Sender) TrySend(cmd Command) error {
	if s.cmds == nil {
		return ErrDisconnected
	}

	select {
	case <-s.done:
		return ErrDisconnected
	default:
	}

	select {
	case s.cmds <- cmd:
		return nil
	case <-s.done:
		return ErrDisconnected
	default:
		return ErrFull
	}
}

// Volume is a shorthand for TrySend(Volume(ch, gain)).
func (s Sender) Volume(ch Channel, gain float32) error {
	return s.TrySend(Volume(ch, gain))
}

// Crossfade is a shorthand for TrySend(Crossfade(position)).
func (s Sender) Crossfade(position float32) error {
	return s.TrySend(Crossfade(position))
}

// Len is the number of commands waiting to be drained.
func (r *Receiver) Len() int { return len(r.cmds) }

// Cap is the bridge capacity.
func (r *Receiver) Cap() int { return cap(r.cmds) }

// Drain returns the commands queued at the moment iteration starts, oldest
// first. It never blocks; with nothing queued the sequence is empty.
// Commands enqueued while draining are left for the next call.
func (r *Receiver) Drain() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for range len(r.cmds) {
			select {
			case cmd := <-r.cmds:
				if !yield(cmd) {
					return
				}
			default:
				return
			}
		}
	}
}

// applyTo is Drain specialised for the engine: no closure, no allocation.
func (r *Receiver) applyTo(s *State) int {
	n := len(r.cmds)
	for i := range n {
		select {
		case cmd := <-r.cmds:
			s.Apply(cmd)
		default:
			return i
		}
	}
	return n
}

// Close disconnects every Sender. Queued commands can still be drained.
// The data channel itself stays open so racing senders never panic.
func (r *Receiver) Close() {
	r.once.Do(func() { close(r.done) })
}

// Closed reports whether Close was called.
func (r *Receiver) Closed() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}
