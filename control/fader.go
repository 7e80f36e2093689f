// SPDX-License-Identifier: EPL-2.0

package control

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ik5/busmix/internal/logger"
	"github.com/ik5/busmix/mixer"
)

// Fader is one control of the surface. It owns its own copy of the mixer
// Sender and turns a position into a Command.
type Fader struct {
	name     string
	min, max float64
	build    func(float32) mixer.Command
	tx       mixer.Sender

	value   atomic.Uint64 // math.Float64bits of the last position
	dropped atomic.Uint64
}

// NewGainFader returns a 0..1.2 fader for ch, starting at unity gain.
func NewGainFader(ch mixer.Channel, tx mixer.Sender) *Fader {
	f := &Fader{
		name: ch.String(),
		min:  float64(mixer.MinGain),
		max:  float64(mixer.MaxGain),
		build: func(v float32) mixer.Command {
			return mixer.Volume(ch, v)
		},
		tx: tx,
	}
	f.value.Store(math.Float64bits(float64(mixer.DefaultGain)))
	return f
}

// NewCrossfader returns a -1..1 fader, starting centred.
func NewCrossfader(tx mixer.Sender) *Fader {
	f := &Fader{
		name:  CrossfadeControl,
		min:   float64(mixer.MinCrossfade),
		max:   float64(mixer.MaxCrossfade),
		build: mixer.Crossfade,
		tx:    tx,
	}
	f.value.Store(math.Float64bits(float64(mixer.DefaultCrossfade)))
	return f
}

func (f *Fader) Name() string { return f.name }

// Range is the position range the fader clamps to.
func (f *Fader) Range() (float64, float64) { return f.min, f.max }

// Value is the last position set. It reflects what the user asked for even
// when the update itself was dropped.
func (f *Fader) Value() float64 { return math.Float64frombits(f.value.Load()) }

// Dropped counts updates lost to a full bridge.
func (f *Fader) Dropped() uint64 { return f.dropped.Load() }

// Set moves the fader and sends the change to the engine. A full bridge
// drops the update and logs it; only a disconnected engine is an error.
func (f *Fader) Set(v float64) error {
	cmd, err := f.move(v)
	if err != nil {
		return err
	}

	err = f.tx.TrySend(cmd)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mixer.ErrFull):
		f.dropped.Add(1)
		logger.WithFields(logger.F{
			"control": f.name,
			"value":   f.Value(),
		}).WithError(err).Warn("control update dropped")
		return nil
	default:
		return fmt.Errorf("%s: %w", f.name, err)
	}
}

// Preset moves the fader and waits until the change is queued. Nothing is
// dropped: a starting position has no later update to replace it.
func (f *Fader) Preset(ctx context.Context, v float64) error {
	cmd, err := f.move(v)
	if err != nil {
		return err
	}
	if err := f.tx.Send(ctx, cmd); err != nil {
		return fmt.Errorf("%s: %w", f.name, err)
	}
	return nil
}

// move clamps v, records it and builds the command for it.
func (f *Fader) move(v float64) (mixer.Command, error) {
	if math.IsNaN(v) {
		return mixer.Command{}, fmt.Errorf("%s: %w", f.name, ErrInvalidValue)
	}
	v = min(max(v, f.min), f.max)
	f.value.Store(math.Float64bits(v))
	return f.build(float32(v)), nil
}
