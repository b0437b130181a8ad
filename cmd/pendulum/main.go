package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/tui"
)

var (
	configFile string
	logFile    string
)

// main runs the pendulum form and animation in the terminal. It exits with
// status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "pendulum",
		Short:        "damped pendulum with air resistance",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write JSON logs to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := newLogger(logFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	log.Info("starting", zap.String("config", configFile), zap.Any("simulation", cfg.Simulation))
	return tui.Run(cfg, log)
}

// newLogger writes to path, or discards everything when path is empty.
// The terminal belongs to the UI, so logs never go to stderr.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}
