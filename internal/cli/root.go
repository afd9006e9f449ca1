// Package cli implements the orienteer command line.
package cli

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/internal/config"
	"github.com/katalvlaran/orienteer/internal/logger"
)

// Execute runs the command line and exits non-zero on failure.
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "orienteer",
		Short:             "Find the most interesting closed walk through a map within a time budget.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup(ctx, input),
	}
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&input.configPath, "config", "c", "", "configuration file (default: $XDG_CONFIG_HOME/"+config.FileName+")")
	pf.StringVar(&input.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&input.logFormat, "log-format", "", "log format: text or json (default: auto)")
	pf.StringVar(&input.storePath, "store", "", "map and run database")

	rootCmd.AddCommand(
		newSolveCommand(input),
		newGenerateCommand(input),
		newRenderCommand(input),
		newMapsCommand(input),
		newRunsCommand(input),
	)

	return rootCmd
}

// setup loads the configuration, applies persistent flags and installs the
// logger in the command context.
func setup(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(input.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = input.logLevel
		}
		if flags.Changed("log-format") {
			cfg.LogFormat = input.logFormat
		}
		if flags.Changed("store") {
			cfg.StorePath = input.storePath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		input.cfg = cfg

		log, err := logger.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
		if err != nil {
			return errors.Wrap(err, "logger")
		}
		cmd.SetContext(logger.WithLogger(ctx, log))

		return nil
	}
}
