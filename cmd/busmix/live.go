// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"

	"github.com/ik5/busmix/control"
	"github.com/ik5/busmix/internal/config"
	"github.com/ik5/busmix/internal/logger"
	"github.com/ik5/busmix/live"
	"github.com/ik5/busmix/mixer"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) newLiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Mix the four input ports to the stereo output in real time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLive(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.String("listen", "", "Control server address")
	f.Int("rate", 0, "Sample rate in Hz")
	f.Int("frames", 0, "Frames per buffer")
	f.String("latency", "", "Device latency: low or high")
	a.bind(config.KeyListen, f, "listen")
	a.bind(config.KeySampleRate, f, "rate")
	a.bind(config.KeyFramesPerBuffer, f, "frames")
	a.bind(config.KeyLatency, f, "latency")

	return cmd
}

func (a *app) runLive(ctx context.Context) error {
	latency, err := live.ParseLatency(a.cfg.Latency())
	if err != nil {
		return err
	}

	tx, rx := mixer.NewBridge(a.cfg.Capacity())
	defer rx.Close()

	engine := mixer.NewEngine(rx)
	surface := control.NewSurface(tx)

	stream, err := live.Open(engine, live.Config{
		SampleRate:      int(a.cfg.SampleRate()),
		FramesPerBuffer: a.cfg.FramesPerBuffer(),
		Latency:         latency,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if err := a.serveControl(gctx, g, surface); err != nil {
		return err
	}
	if err := stream.Start(); err != nil {
		cancel()
		_ = g.Wait()
		return err
	}

	go logStats(gctx, engine, surface)
	go untilQuit(gctx, cancel)

	select {
	case <-gctx.Done():
	case <-stream.Done():
		logger.Info("engine stopped the stream")
	}

	// Control surface first, then the stream, then the bridge.
	cancel()
	err = g.Wait()
	if serr := stream.Stop(); serr != nil {
		err = errors.Join(err, serr)
	}
	rx.Close()

	logger.WithField("dropped", surface.Dropped()).Info("live session ended")
	return err
}
