// SPDX-License-Identifier: EPL-2.0

// Command busmix mixes two stereo buses, A and B, into one stereo output.
package main

import (
	"context"
	"os"

	"github.com/ik5/busmix/internal/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.WithError(err).Error("busmix failed")
		os.Exit(1)
	}
}
