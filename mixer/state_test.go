// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_Defaults(t *testing.T) {
	t.Parallel()

	s := NewState()
	for _, ch := range Channels {
		assert.Equal(t, DefaultGain, s.Gain(ch), ch.String())
	}
	assert.Equal(t, DefaultCrossfade, s.Crossfade)
}

func TestState_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  Command
		want State
	}{
		{
			name: "a left",
			cmd:  Volume(ALeft, 0.3),
			want: State{ALeft: 0.3, ARight: 1, BLeft: 1, BRight: 1},
		},
		{
			name: "a right",
			cmd:  Volume(ARight, 0.4),
			want: State{ALeft: 1, ARight: 0.4, BLeft: 1, BRight: 1},
		},
		{
			name: "b left",
			cmd:  Volume(BLeft, 0),
			want: State{ALeft: 1, ARight: 1, BLeft: 0, BRight: 1},
		},
		{
			name: "b right",
			cmd:  Volume(BRight, 1.2),
			want: State{ALeft: 1, ARight: 1, BLeft: 1, BRight: 1.2},
		},
		{
			name: "crossfade",
			cmd:  Crossfade(-0.75),
			want: State{ALeft: 1, ARight: 1, BLeft: 1, BRight: 1, Crossfade: -0.75},
		},
		{
			name: "out of range gain is stored as is",
			cmd:  Volume(ALeft, 7.5),
			want: State{ALeft: 7.5, ARight: 1, BLeft: 1, BRight: 1},
		},
		{
			name: "negative gain is stored as is",
			cmd:  Volume(BRight, -2),
			want: State{ALeft: 1, ARight: 1, BLeft: 1, BRight: -2},
		},
		{
			name: "unknown channel is ignored",
			cmd:  Volume(Channel(42), 0.1),
			want: State{ALeft: 1, ARight: 1, BLeft: 1, BRight: 1},
		},
		{
			name: "zero command is ignored",
			cmd:  Command{},
			want: State{ALeft: 1, ARight: 1, BLeft: 1, BRight: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewState()
			s.Apply(tt.cmd)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestState_ApplyIdempotent(t *testing.T) {
	t.Parallel()

	once := NewState()
	once.Apply(Volume(ARight, 0.6))

	twice := NewState()
	twice.Apply(Volume(ARight, 0.6))
	twice.Apply(Volume(ARight, 0.6))

	assert.Equal(t, once, twice)
}

func TestChannel_Names(t *testing.T) {
	t.Parallel()

	for _, ch := range Channels {
		got, err := ParseChannel(ch.String())
		require.NoError(t, err)
		assert.Equal(t, ch, got)
		assert.True(t, ch.Valid())
	}

	assert.Equal(t, "B - Right", BRight.Label())
	assert.False(t, Channel(9).Valid())
	assert.Equal(t, "channel(9)", Channel(9).String())

	_, err := ParseChannel("c_left")
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestCommand_Accessors(t *testing.T) {
	t.Parallel()

	v := Volume(BLeft, 0.5)
	assert.Equal(t, KindVolume, v.Kind())
	assert.Equal(t, BLeft, v.Channel())
	assert.Equal(t, float32(0.5), v.Value())
	assert.Equal(t, "volume(b_left, 0.50)", v.String())

	c := Crossfade(-1)
	assert.Equal(t, KindCrossfade, c.Kind())
	assert.Equal(t, float32(-1), c.Value())
	assert.Equal(t, "crossfade(-1.00)", c.String())
}
