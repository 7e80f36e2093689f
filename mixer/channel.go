// SPDX-License-Identifier: EPL-2.0

package mixer

import "fmt"

// Channel selects one of the four input channels of the mixer.
type Channel uint8

const (
	ALeft Channel = iota
	ARight
	BLeft
	BRight
)

// Channels lists every input channel in port order.
var Channels = [...]Channel{ALeft, ARight, BLeft, BRight}

var channelNames = [...]string{
	ALeft:  "a_left",
	ARight: "a_right",
	BLeft:  "b_left",
	BRight: "b_right",
}

var channelLabels = [...]string{
	ALeft:  "A - Left",
	ARight: "A - Right",
	BLeft:  "B - Left",
	BRight: "B - Right",
}

// String returns the control name of the channel (e.g. "a_left").
func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("channel(%d)", uint8(c))
}

// Label returns the human port label of the channel (e.g. "A - Left").
func (c Channel) Label() string {
	if int(c) < len(channelLabels) {
		return channelLabels[c]
	}
	return c.String()
}

// Valid reports whether c is one of the four known channels.
func (c Channel) Valid() bool { return int(c) < len(channelNames) }

// ParseChannel maps a control name back to its Channel.
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}
