// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/busmix/audio"
	"github.com/ik5/busmix/internal/logger"
)

const pollInterval = 50 * time.Millisecond

// output is the part of *oto.Player the Player drives.
type output interface {
	Play()
	Pause()
	IsPlaying() bool
	Err() error
}

// Player plays a Source on the default output device through oto. oto
// allows one context per process, so create a single Player.
type Player struct {
	ctx    *oto.Context
	player output
}

// NewPlayer opens the device at the rate and channel count of src. buffer
// is the device buffer length; zero lets oto choose.
func NewPlayer(src audio.Source, buffer time.Duration) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   src.SampleRate(),
		ChannelCount: src.Channels(),
		Format:       oto.FormatFloat32LE,
		BufferSize:   buffer,
	})
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	<-ready

	logger.WithFields(logger.F{
		"rate":     src.SampleRate(),
		"channels": src.Channels(),
		"buffer":   buffer,
	}).Debug("output ready")

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(NewReader(src)),
	}, nil
}

// Play blocks until the source is exhausted or ctx is done.
func (p *Player) Play(ctx context.Context) error {
	p.player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for p.player.IsPlaying() {
		select {
		case <-ctx.Done():
			p.player.Pause()
			return p.player.Err()
		case <-ticker.C:
		}
	}
	return p.player.Err()
}

// Close pauses playback and reports any error the output hit. The source
// stays open; it belongs to the caller.
func (p *Player) Close() error {
	p.player.Pause()
	if err := p.player.Err(); err != nil {
		return fmt.Errorf("closing player: %w", err)
	}
	return nil
}
