// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"time"

	"github.com/ik5/busmix"
	"github.com/ik5/busmix/internal/config"
	"github.com/ik5/busmix/internal/logger"
	"github.com/ik5/busmix/render"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) newPlayCmd() *cobra.Command {
	var ff faderFlags

	cmd := &cobra.Command{
		Use:   "play A B",
		Short: "Mix two files and play the result, with live faders",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd.Context(), args[0], args[1], ff)
		},
	}

	f := cmd.Flags()
	ff = newFaderFlags(f)
	f.String("listen", "", "Control server address")
	f.Int("frames", 0, "Frames mixed per engine call")
	a.bind(config.KeyListen, f, "listen")
	a.bind(config.KeyFramesPerBuffer, f, "frames")

	return cmd
}

func (a *app) runPlay(ctx context.Context, pathA, pathB string, ff faderFlags) error {
	s, err := openSession(ctx, pathA, pathB, a.cfg.Capacity(), ff)
	if err != nil {
		return err
	}
	defer s.Close()

	frames := a.cfg.FramesPerBuffer()
	mix, err := busmix.NewMix(s.a, s.b, s.engine, frames)
	if err != nil {
		return err
	}

	buffer := time.Duration(frames) * time.Second / time.Duration(mix.SampleRate())
	player, err := render.NewPlayer(mix, 4*buffer)
	if err != nil {
		return err
	}
	defer player.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if err := a.serveControl(gctx, g, s.surface); err != nil {
		return err
	}

	go logStats(gctx, s.engine, s.surface)
	go untilQuit(gctx, cancel)

	logger.WithFields(logger.F{"a": pathA, "b": pathB}).Info("playing")
	err = player.Play(gctx)
	cancel()

	if gerr := g.Wait(); err == nil {
		err = gerr
	}
	s.rx.Close()

	logger.WithField("dropped", s.surface.Dropped()).Info("playback ended")
	return err
}
