// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ik5/busmix"
	"github.com/ik5/busmix/internal/config"
	"github.com/ik5/busmix/internal/logger"
	"github.com/spf13/cobra"
)

func (a *app) newRenderCmd() *cobra.Command {
	var ff faderFlags

	cmd := &cobra.Command{
		Use:   "render A B OUT.wav",
		Short: "Mix two files offline into a 16-bit stereo WAV",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.Context(), args[0], args[1], args[2], ff)
		},
	}

	f := cmd.Flags()
	ff = newFaderFlags(f)
	f.Int("buffer", 0, "Frames mixed per engine call")
	a.bind(config.KeyRenderBuffer, f, "buffer")

	return cmd
}

func (a *app) runRender(ctx context.Context, pathA, pathB, out string, ff faderFlags) (err error) {
	s, err := openSession(ctx, pathA, pathB, a.cfg.Capacity(), ff)
	if err != nil {
		return err
	}
	defer s.Close()

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	start := time.Now()
	frames, err := busmix.MixToWAV(f, s.a, s.b, s.engine, a.cfg.RenderBufferFrames())
	if err != nil {
		return fmt.Errorf("render %s: %w", out, err)
	}

	logger.WithFields(logger.F{
		"file":    out,
		"frames":  frames,
		"seconds": float64(frames) / float64(s.a.SampleRate()),
		"took":    time.Since(start).Round(time.Millisecond),
		"faders":  s.surface.Values(),
	}).Info("render done")
	return nil
}
