// SPDX-License-Identifier: EPL-2.0

package mixer

const (
	DefaultGain      float32 = 1.0
	MinGain          float32 = 0.0
	MaxGain          float32 = 1.2
	DefaultCrossfade float32 = 0.0
	MinCrossfade     float32 = -1.0
	MaxCrossfade     float32 = 1.0
)

// State holds the gain configuration of the mixer. It is owned by whoever
// calls Engine.Process and must not be touched from any other goroutine.
type State struct {
	ALeft     float32
	ARight    float32
	BLeft     float32
	BRight    float32
	Crossfade float32
}

func NewState() State {
	return State{
		ALeft:     DefaultGain,
		ARight:    DefaultGain,
		BLeft:     DefaultGain,
		BRight:    DefaultGain,
		Crossfade: DefaultCrossfade,
	}
}

// Apply overwrites the field addressed by cmd. Values are stored as given,
// range limits are the control surface's job.
func (s *State) Apply(cmd Command) {
	switch cmd.kind {
	case KindVolume:
		switch cmd.channel {
		case ALeft:
			s.ALeft = cmd.value
		case ARight:
			s.ARight = cmd.value
		case BLeft:
			s.BLeft = cmd.value
		case BRight:
			s.BRight = cmd.value
		}
	case KindCrossfade:
		s.Crossfade = cmd.value
	}
}

// Gain returns the current gain of ch, or 0 for an unknown channel.
func (s State) Gain(ch Channel) float32 {
	switch ch {
	case ALeft:
		return s.ALeft
	case ARight:
		return s.ARight
	case BLeft:
		return s.BLeft
	case BRight:
		return s.BRight
	}
	return 0
}
