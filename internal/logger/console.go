// SPDX-License-Identifier: EPL-2.0

package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// consoleHook writes errors to stderr and everything else to stdout.
type consoleHook struct {
	stdout io.Writer
	stderr io.Writer
}

func (h *consoleHook) Fire(entry *logrus.Entry) error {
	serialized, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}

	if entry.Level <= logrus.ErrorLevel {
		_, err = h.stderr.Write(serialized)
	} else {
		_, err = h.stdout.Write(serialized)
	}
	return err
}

func (h *consoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
