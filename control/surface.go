// SPDX-License-Identifier: EPL-2.0

// Package control holds the control surfaces of busmix. A surface can only
// build a mixer.Command and send it; it never sees mixer state.
package control

import (
	"context"
	"fmt"

	"github.com/ik5/busmix/mixer"
)

// CrossfadeControl is the name of the crossfader on every surface.
const CrossfadeControl = "crossfade"

// Controls is the number of faders on a surface.
const Controls = len(mixer.Channels) + 1

// Surface is the full set of controls: one gain fader per input channel and
// the crossfader.
type Surface struct {
	faders []*Fader
	byName map[string]*Fader
}

// NewSurface builds the five faders, each with its own copy of tx.
func NewSurface(tx mixer.Sender) *Surface {
	s := &Surface{byName: make(map[string]*Fader)}

	for _, ch := range mixer.Channels {
		s.add(NewGainFader(ch, tx))
	}
	s.add(NewCrossfader(tx))

	return s
}

func (s *Surface) add(f *Fader) {
	s.faders = append(s.faders, f)
	s.byName[f.Name()] = f
}

// Fader looks up a control by name.
func (s *Surface) Fader(name string) (*Fader, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Set moves the named control.
func (s *Surface) Set(name string, v float64) error {
	f, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownControl, name)
	}
	return f.Set(v)
}

// Preset moves the named control to its starting position, waiting for
// room on the bridge instead of dropping the update.
func (s *Surface) Preset(ctx context.Context, name string, v float64) error {
	f, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownControl, name)
	}
	return f.Preset(ctx, v)
}

// Names lists the controls in surface order.
func (s *Surface) Names() []string {
	names := make([]string, len(s.faders))
	for i, f := range s.faders {
		names[i] = f.Name()
	}
	return names
}

// Values returns the last position of every control.
func (s *Surface) Values() map[string]float64 {
	values := make(map[string]float64, len(s.faders))
	for _, f := range s.faders {
		values[f.Name()] = f.Value()
	}
	return values
}

// Dropped sums the dropped updates of all controls.
func (s *Surface) Dropped() uint64 {
	var n uint64
	for _, f := range s.faders {
		n += f.Dropped()
	}
	return n
}
