// SPDX-License-Identifier: EPL-2.0

// Package live runs a mixer.Engine inside a PortAudio duplex callback with
// four inputs (A left, A right, B left, B right) and a stereo output.
package live

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/ik5/busmix/internal/logger"
	"github.com/ik5/busmix/mixer"
)

const (
	InputChannels  = 4
	OutputChannels = 2
)

// Port names, in channel order.
var (
	InputPorts  = [InputChannels]string{"A - Left", "A - Right", "B - Left", "B - Right"}
	OutputPorts = [OutputChannels]string{"Left", "Right"}
)

type Latency string

const (
	LatencyLow  Latency = "low"
	LatencyHigh Latency = "high"
)

func ParseLatency(s string) (Latency, error) {
	switch l := Latency(s); l {
	case LatencyLow, LatencyHigh:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLatency, s)
}

type Config struct {
	SampleRate      int
	FramesPerBuffer int
	Latency         Latency
}

// Stream owns the PortAudio session. Open initializes PortAudio and Close
// terminates it.
type Stream struct {
	engine *mixer.Engine
	stream *portaudio.Stream
	done   chan struct{}
	once   sync.Once
}

func Open(engine *mixer.Engine, cfg Config) (*Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	s := &Stream{engine: engine, done: make(chan struct{})}

	params, err := parameters(cfg)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}

	stream, err := portaudio.OpenStream(params, s.process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open stream: %w", err)
	}
	s.stream = stream

	info := stream.Info()
	logger.WithFields(logger.F{
		"input":          params.Input.Device.Name,
		"output":         params.Output.Device.Name,
		"rate":           info.SampleRate,
		"frames":         cfg.FramesPerBuffer,
		"input_latency":  info.InputLatency,
		"output_latency": info.OutputLatency,
	}).Info("audio stream opened")

	return s, nil
}

func parameters(cfg Config) (portaudio.StreamParameters, error) {
	host, err := portaudio.DefaultHostApi()
	if err != nil {
		return portaudio.StreamParameters{}, fmt.Errorf("host api: %w", err)
	}
	if host.DefaultInputDevice == nil || host.DefaultOutputDevice == nil {
		return portaudio.StreamParameters{}, ErrNoDevice
	}

	var params portaudio.StreamParameters
	switch cfg.Latency {
	case LatencyHigh:
		params = portaudio.HighLatencyParameters(host.DefaultInputDevice, host.DefaultOutputDevice)
	case LatencyLow, "":
		params = portaudio.LowLatencyParameters(host.DefaultInputDevice, host.DefaultOutputDevice)
	default:
		return portaudio.StreamParameters{}, fmt.Errorf("%w: %q", ErrUnknownLatency, cfg.Latency)
	}

	params.Input.Channels = InputChannels
	params.Output.Channels = OutputChannels
	params.SampleRate = float64(cfg.SampleRate)
	params.FramesPerBuffer = cfg.FramesPerBuffer
	return params, nil
}

// process is the PortAudio callback. Buffers are non-interleaved, one
// slice per port. Without all four inputs nothing is mixed and the outputs
// are zeroed; PortAudio does not clear them between callbacks.
func (s *Stream) process(in, out [][]float32) {
	var buf mixer.Buffers
	ok := len(in) >= InputChannels
	if ok {
		buf.ALeft, buf.ARight, buf.BLeft, buf.BRight = in[0], in[1], in[2], in[3]
	}
	if len(out) >= OutputChannels {
		buf.Left, buf.Right = out[0], out[1]
	}

	ctl := s.engine.Process(buf)
	if !ok {
		for _, plane := range out {
			clear(plane)
		}
	}
	if ctl == mixer.Stop {
		s.once.Do(func() { close(s.done) })
	}
}

func (s *Stream) Start() error {
	if err := s.stream.Start(); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}
	logger.Info("audio stream started")
	return nil
}

func (s *Stream) Stop() error {
	if err := s.stream.Stop(); err != nil {
		return fmt.Errorf("stop stream: %w", err)
	}
	logger.Info("audio stream stopped")
	return nil
}

// Done is closed once the engine asks the stream to stop.
func (s *Stream) Done() <-chan struct{} { return s.done }

func (s *Stream) Close() error {
	defer portaudio.Terminate()

	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("close stream: %w", err)
	}
	return nil
}
