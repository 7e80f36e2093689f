// SPDX-License-Identifier: EPL-2.0

// Package config reads busmix settings from a TOML file, the environment
// and command line flags.
//
// Example TOML:
//
//	[audio]
//	sample_rate = 48000
//	frames_per_buffer = 256
//	latency = "low"
//
//	[control]
//	listen = "127.0.0.1:8420"
//
//	[log]
//	level = "debug"
//
// Environment variables use the BUSMIX prefix: BUSMIX_AUDIO_SAMPLE_RATE,
// BUSMIX_LOG_LEVEL and so on.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeySampleRate      = "audio.sample_rate"
	KeyFramesPerBuffer = "audio.frames_per_buffer"
	KeyLatency         = "audio.latency"
	KeyCapacity        = "mixer.capacity"
	KeyListen          = "control.listen"
	KeyControlEnabled  = "control.enabled"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyRenderBuffer    = "render.buffer_frames"
)

// Config is a typed view over a viper instance.
type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetConfigType("toml")
	v.SetConfigName("config")
	v.AddConfigPath("/etc/busmix")
	v.AddConfigPath("$HOME/.config/busmix")
	v.SetEnvPrefix("BUSMIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySampleRate, 48000)
	v.SetDefault(KeyFramesPerBuffer, 256)
	v.SetDefault(KeyLatency, "low")
	v.SetDefault(KeyCapacity, 10)
	v.SetDefault(KeyListen, "127.0.0.1:8420")
	v.SetDefault(KeyControlEnabled, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyRenderBuffer, 1024)

	return &Config{v: v}
}

// Read loads path, or searches the default locations when path is empty.
// A missing file in the default locations is not an error.
func (c *Config) Read(path string) error {
	if path != "" {
		c.v.SetConfigFile(path)
	}

	err := c.v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}

	return fmt.Errorf("read config: %w", err)
}

// BindFlag lets a command line flag override key.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: no such flag", key)
	}
	return c.v.BindPFlag(key, flag)
}

// Set overrides key for the rest of the process.
func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

// File returns the config file in use, if any.
func (c *Config) File() string { return c.v.ConfigFileUsed() }

func (c *Config) SampleRate() float64 { return c.v.GetFloat64(KeySampleRate) }
func (c *Config) FramesPerBuffer() int { return c.v.GetInt(KeyFramesPerBuffer) }
func (c *Config) Latency() string { return c.v.GetString(KeyLatency) }
func (c *Config) Capacity() int { return c.v.GetInt(KeyCapacity) }
func (c *Config) Listen() string { return c.v.GetString(KeyListen) }
func (c *Config) ControlEnabled() bool { return c.v.GetBool(KeyControlEnabled) }
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogFormat() string { return c.v.GetString(KeyLogFormat) }
func (c *Config) RenderBufferFrames() int { return c.v.GetInt(KeyRenderBuffer) }
