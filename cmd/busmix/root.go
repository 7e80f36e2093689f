// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/busmix/internal/config"
	"github.com/ik5/busmix/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type binding struct {
	key  string
	flag *pflag.Flag
}

// app carries the state shared by every subcommand.
type app struct {
	cfg        *config.Config
	configPath string
	bindings   []binding
}

// bind lets flag name of fs override key once the config is read.
func (a *app) bind(key string, fs *pflag.FlagSet, name string) {
	a.bindings = append(a.bindings, binding{key: key, flag: fs.Lookup(name)})
}

// setup binds the flags of cmd, reads the config and starts the logger.
// Subcommands share keys, so only the running command's flags are bound.
func (a *app) setup(cmd *cobra.Command) error {
	for _, b := range a.bindings {
		if b.flag != nil && cmd.Flags().Lookup(b.flag.Name) != b.flag {
			continue
		}
		if err := a.cfg.BindFlag(b.key, b.flag); err != nil {
			return err
		}
	}
	if err := a.cfg.Read(a.configPath); err != nil {
		return err
	}
	if err := logger.Setup(a.cfg.LogLevel(), a.cfg.LogFormat()); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if f := a.cfg.File(); f != "" {
		logger.WithField("file", f).Debug("config loaded")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.New()}

	cmd := &cobra.Command{
		Use:           "busmix",
		Short:         "Two bus stereo mixer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Optional path to a TOML config file")
	pf.StringP("log-level", "l", "", "Log level: debug, info, warn or error")
	pf.String("log-format", "", "Log format: text or json")
	a.bind(config.KeyLogLevel, pf, "log-level")
	a.bind(config.KeyLogFormat, pf, "log-format")

	cmd.AddCommand(
		a.newLiveCmd(),
		a.newRenderCmd(),
		a.newPlayCmd(),
		newVersionCmd(),
	)

	return cmd
}
