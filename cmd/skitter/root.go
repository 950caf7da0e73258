package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oomph-ac/skitter/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app holds what the root command prepares for every subcommand.
var app struct {
	v        *viper.Viper
	settings settings.Settings
	log      *logrus.Logger
	closer   io.Closer
}

var cfgFile string

// flagKeys maps command flags onto the settings keys they override.
var flagKeys = map[string]string{
	"preset": "scene.preset",
	"biome":  "scene.biome",
	"fps":    "scene.fps",
	"seed":   "scene.seed",
	"stream": "stream.output",
	"level":  "logging.level",
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "skitter",
		Short:         "Skitter runs a procedurally animated eight-legged walker across generated terrain.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.Flags(), cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.closer != nil {
				_ = app.closer.Close()
			}
		},
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (TOML)")
	root.PersistentFlags().String("level", "info", "log level")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(newRunCmd(), newTerrainCmd(), newPresetsCmd(), newInitCmd(), newVersionCmd())
	return root
}

// setup loads the settings, applying flag overrides, and builds a logger writing to stderr so
// stdout stays free for frames and heightfields.
func setup(flags *pflag.FlagSet, stderr io.Writer) error {
	v, err := settings.NewViper(cfgFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}
	s, err := settings.Decode(v)
	if err != nil {
		return err
	}

	log, closer, err := settings.NewLogger(s.Logging, stderr)
	if err != nil {
		return err
	}
	app.v, app.settings, app.log, app.closer = v, s, log, closer
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if app.log != nil {
			app.log.Errorf("command failed: %v", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
