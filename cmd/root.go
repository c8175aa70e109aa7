// Package cmd implements the tickres command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/ethpandaops/tickres/internal/config"
	"github.com/ethpandaops/tickres/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for the command
	Logger *logrus.Logger

	rootCmd = &cobra.Command{
		Use:   "tickres",
		Short: "Print the resolution of the monotonic tick clock",
		Long: `tickres asks the host for a monotonic tick and prints the smallest time
delta that tick can express, in seconds.

Arguments are accepted and ignored. Behaviour is tuned through the
environment (or a .env file):
  LOG_LEVEL               logrus level for stderr diagnostics
  TICKRES_SOURCE          host, runtime or measured
  TICKRES_MEASURE_ROUNDS  sample pairs used by the measured source`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			Logger.SetOutput(cmd.ErrOrStderr())
			log := Logger.WithField("command", cmd.Name())

			r := report.NewReporter(log, appConfig.Source, appConfig.MeasureRounds)
			if err := r.Run(cmd.OutOrStdout()); err != nil {
				log.WithError(err).Error("Failed to report resolution")
			}

			return nil
		},
	}

	appConfig = config.Default()
)

// InitLogger loads the configuration from the environment and applies it to
// Logger. Invalid values are logged and left at their defaults.
func InitLogger() {
	cfg, err := config.Load()
	appConfig = cfg

	Logger.SetLevel(cfg.LogLevel)
	if err != nil {
		Logger.WithError(err).Warn("Ignoring invalid configuration")
	}
	Logger.WithField("source", cfg.Source).Debug("Loaded configuration")
}

// Execute runs the root command. Command line arguments never reach cobra,
// so none of its reserved words (completion, __complete) are interpreted.
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	rootCmd.SetArgs([]string{})
	return rootCmd.Execute()
}

func init() {
	Logger = newLogger(os.Stderr, logrus.InfoLevel)
}
