// SPDX-License-Identifier: EPL-2.0

package mixer

import "fmt"

// Kind tags the variant carried by a Command.
type Kind uint8

const (
	KindVolume Kind = iota + 1
	KindCrossfade
)

func (k Kind) String() string {
	switch k {
	case KindVolume:
		return "volume"
	case KindCrossfade:
		return "crossfade"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Command is a single gain or crossfade change. It is a small value so that
// sending it over the bridge never allocates.
type Command struct {
	kind    Kind
	channel Channel
	value   float32
}

// Volume builds a command that sets the gain of ch.
func Volume(ch Channel, gain float32) Command {
	return Command{kind: KindVolume, channel: ch, value: gain}
}

// Crossfade builds a command that sets the crossfade position.
func Crossfade(position float32) Command {
	return Command{kind: KindCrossfade, value: position}
}

func (c Command) Kind() Kind { return c.kind }

// Channel is only meaningful for KindVolume.
func (c Command) Channel() Channel { return c.channel }

// Value is the gain for KindVolume and the position for KindCrossfade.
func (c Command) Value() float32 { return c.value }

func (c Command) String() string {
	switch c.kind {
	case KindVolume:
		return fmt.Sprintf("volume(%s, %.2f)", c.channel, c.value)
	case KindCrossfade:
		return fmt.Sprintf("crossfade(%.2f)", c.value)
	default:
		return "command(invalid)"
	}
}
