// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/ik5/busmix/control"
	"github.com/ik5/busmix/internal/logger"
	"github.com/ik5/busmix/internal/run"
	"github.com/ik5/busmix/mixer"
	"golang.org/x/sync/errgroup"
)

const statsInterval = 10 * time.Second

// serveControl starts the WebSocket surface in g when it is enabled. It
// stops when ctx is done.
func (a *app) serveControl(ctx context.Context, g *errgroup.Group, surface *control.Surface) error {
	if !a.cfg.ControlEnabled() {
		logger.Debug("control server disabled")
		return nil
	}

	ln, err := net.Listen("tcp", a.cfg.Listen())
	if err != nil {
		return fmt.Errorf("control listen: %w", err)
	}

	srv := control.NewServer(surface)
	g.Go(func() error {
		defer run.Recover()
		return srv.Serve(ctx, ln)
	})
	return nil
}

// logStats reports engine totals at debug level until ctx is done.
func logStats(ctx context.Context, engine *mixer.Engine, surface *control.Surface) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := engine.Stats()
			logger.WithFields(logger.F{
				"buffers":  s.Buffers,
				"frames":   s.Frames,
				"commands": s.Commands,
				"dropped":  surface.Dropped(),
			}).Debug("engine stats")
		}
	}
}

// untilQuit cancels the group context on SIGINT, SIGTERM or SIGQUIT.
func untilQuit(ctx context.Context, cancel context.CancelFunc) {
	if sig := run.UntilQuit(ctx); sig != nil {
		logger.WithField("signal", sig.String()).Info("shutting down")
	}
	cancel()
}
