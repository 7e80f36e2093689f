// SPDX-License-Identifier: EPL-2.0

// Package logger is the process wide logrus logger used outside the audio
// callback.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// F is a short form of logrus.Fields.
type F = logrus.Fields

var global atomic.Pointer[logrus.Entry]

func init() {
	global.Store(logrus.NewEntry(newLogger(os.Stdout, os.Stderr)))
}

func newLogger(stdout, stderr io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.Hooks.Add(&consoleHook{stdout: stdout, stderr: stderr})
	return log
}

// Setup configures level and format of the global logger.
// Level is one of debug, info, warn, error; format is text or json.
func Setup(level, format string) error {
	log := L().Logger

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		log.Formatter = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	return nil
}

func parseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	}
	return logrus.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

// SetOutput sends every level to w. Used by tests.
func SetOutput(w io.Writer) {
	log := L().Logger
	log.ReplaceHooks(make(logrus.LevelHooks))
	log.Hooks.Add(&consoleHook{stdout: w, stderr: w})
}

// L returns the global entry.
func L() *logrus.Entry { return global.Load() }

func WithField(k string, v any) *logrus.Entry { return L().WithField(k, v) }
func WithFields(fields F) *logrus.Entry { return L().WithFields(fields) }
func WithError(err error) *logrus.Entry { return L().WithError(err) }

func Debug(msg string, v ...any) { L().Debugf(msg, v...) }
func Info(msg string, v ...any) { L().Infof(msg, v...) }
func Warn(msg string, v ...any) { L().Warnf(msg, v...) }
func Error(msg string, v ...any) { L().Errorf(msg, v...) }
