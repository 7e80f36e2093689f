// SPDX-License-Identifier: EPL-2.0

// Package run holds process lifecycle helpers for the busmix commands.
package run

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/busmix/internal/logger"
)

// SigChanFunc builds the channel signals are delivered on. Tests swap it.
var SigChanFunc = defaultSigChanFunc

func defaultSigChanFunc() chan os.Signal {
	return make(chan os.Signal, 1)
}

// UntilSignal blocks until one of signals arrives or ctx is done.
// It returns the received signal, or nil when ctx ended first.
func UntilSignal(ctx context.Context, signals ...os.Signal) os.Signal {
	ch := SigChanFunc()
	signal.Notify(ch, signals...)
	defer signal.Stop(ch)

	select {
	case sig := <-ch:
		return sig
	case <-ctx.Done():
		return nil
	}
}

// UntilQuit waits for SIGINT, SIGTERM or SIGQUIT.
func UntilQuit(ctx context.Context) os.Signal {
	return UntilSignal(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// Recover logs a panic instead of crashing the calling goroutine. Use it in
// control goroutines only; a panic in the audio callback must stay fatal.
func Recover() {
	if r := recover(); r != nil {
		logger.WithField("panic", r).Error("panic recovered")
	}
}
