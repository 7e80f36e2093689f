// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ik5/busmix/audio"
	"github.com/ik5/busmix/control"
	"github.com/ik5/busmix/formats/aiff"
	"github.com/ik5/busmix/formats/mp3"
	"github.com/ik5/busmix/formats/vorbis"
	"github.com/ik5/busmix/formats/wav"
	"github.com/ik5/busmix/internal/logger"
	"github.com/ik5/busmix/mixer"
	"github.com/spf13/pflag"
)

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// openDeck decodes path by its extension. The file stays open until the
// returned source is closed.
func openDeck(registry *audio.Registry, path string) (audio.Source, error) {
	dec, err := registry.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.WithFields(logger.F{
		"file":     path,
		"rate":     src.SampleRate(),
		"channels": src.Channels(),
	}).Debug("deck opened")
	return &fileSource{Source: src, f: f}, nil
}

// fileSource closes the file under a decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if ferr := s.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// faderFlags are the starting positions for a render or playback.
type faderFlags struct {
	fs *pflag.FlagSet
}

func newFaderFlags(fs *pflag.FlagSet) faderFlags {
	for _, ch := range mixer.Channels {
		fs.Float64(flagName(ch.String()), mixer.DefaultGain, "Starting gain of "+ch.Label())
	}
	fs.Float64(control.CrossfadeControl, mixer.DefaultCrossfade, "Starting crossfader position")
	return faderFlags{fs: fs}
}

// apply presets every fader the user moved. It waits for the bridge rather
// than dropping, so the size of the bridge must cover all controls before
// the engine drains it.
func (ff faderFlags) apply(ctx context.Context, surface *control.Surface) error {
	for _, name := range surface.Names() {
		flag := ff.fs.Lookup(flagName(name))
		if flag == nil || !flag.Changed {
			continue
		}
		v, err := ff.fs.GetFloat64(flagName(name))
		if err != nil {
			return err
		}
		if err := surface.Preset(ctx, name, v); err != nil {
			return err
		}
	}
	return nil
}

// flagName turns a control name like a_left into a-left.
func flagName(control string) string {
	return strings.ReplaceAll(control, "_", "-")
}

// session is two open decks and the engine that mixes them.
type session struct {
	a, b    audio.Source
	engine  *mixer.Engine
	surface *control.Surface
	rx      *mixer.Receiver
}

// openSession opens both decks and presets the starting faders through the
// surface, so they reach the engine on its first buffer. The bridge holds at
// least one command per control.
func openSession(ctx context.Context, pathA, pathB string, capacity int, ff faderFlags) (*session, error) {
	registry := newRegistry()

	a, err := openDeck(registry, pathA)
	if err != nil {
		return nil, fmt.Errorf("deck a: %w", err)
	}
	b, err := openDeck(registry, pathB)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("deck b: %w", err)
	}

	tx, rx := mixer.NewBridge(max(capacity, control.Controls))
	s := &session{
		a:       a,
		b:       b,
		engine:  mixer.NewEngine(rx),
		surface: control.NewSurface(tx),
		rx:      rx,
	}
	if err := ff.apply(ctx, s.surface); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) Close() error {
	s.rx.Close()
	return errors.Join(s.a.Close(), s.b.Close())
}
