// SPDX-License-Identifier: EPL-2.0

// Package build reports what was compiled. Set the values with
//
//	-ldflags "-X github.com/ik5/busmix/internal/build.version=v1.0.0"
package build

import (
	"runtime"
	"runtime/debug"
)

var (
	version string
	commit  string
)

// Version falls back to the module version recorded by the go tool.
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "n/a"
}

// Commit falls back to the vcs revision recorded by the go tool.
func Commit() string {
	if commit != "" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "n/a"
}

func OS() string   { return runtime.GOOS }
func Arch() string { return runtime.GOARCH }
