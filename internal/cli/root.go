// SPDX-License-Identifier: MIT

// Package cli wires the fxarb cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fxarb/internal/config"
	"github.com/katalvlaran/fxarb/internal/logging"
	"github.com/katalvlaran/fxarb/metrics"
	"github.com/katalvlaran/fxarb/ratesheet"
	"github.com/katalvlaran/fxarb/report"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	recorder *metrics.Recorder
}

// NewRootCommand returns the fxarb command tree. cfg supplies flag defaults.
func NewRootCommand(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "fxarb",
		Short: "Detect currency arbitrage in exchange-rate matrices",
		Long: `fxarb turns an exchange-rate matrix into a graph with -ln(rate) edge
weights and runs Bellman-Ford from the first currency. A negative cycle is a
sequence of conversions that ends with more money than it started with.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	root.PersistentFlags().BoolVar(&a.cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	root.PersistentFlags().StringVar(&a.cfg.Format, "format", cfg.Format, "report format: text or json")
	root.PersistentFlags().StringVar(&a.cfg.MetricsFile, "metrics-file", cfg.MetricsFile,
		"write prometheus metrics to this textfile-collector path")

	root.AddCommand(a.detectCommand(), a.batchCommand(), a.generateCommand())

	return root
}

func (a *app) init(_ *cobra.Command, _ []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(a.cfg.Debug)
	if err != nil {
		return err
	}
	a.logger = logger
	a.recorder = metrics.NewRecorder()

	return nil
}

// run wraps a command body so metrics are flushed and the logger synced
// whether or not the body fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if a.cfg.MetricsFile != "" && a.recorder != nil {
			if werr := a.recorder.WriteTextfile(a.cfg.MetricsFile); werr != nil {
				a.logger.Error("metrics not written", zap.Error(werr))
				if err == nil {
					err = werr
				}
			}
		}
		logging.Sync(a.logger)

		return err
	}
}

// render writes one report in the configured format.
func (a *app) render(cmd *cobra.Command, rep report.Report) error {
	if a.cfg.Format == config.FormatJSON {
		return report.WriteJSON(cmd.OutOrStdout(), rep)
	}

	return report.WriteText(cmd.OutOrStdout(), rep)
}

// loadSheet resolves the sheet for a command: an explicit path, then the
// configured default path, then the built-in matrix.
func (a *app) loadSheet(args []string) (*ratesheet.Sheet, error) {
	path := a.cfg.Rates
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		a.logger.Debug("using built-in rate sheet")
		return ratesheet.Default(), nil
	}
	s, err := ratesheet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load rate sheet: %w", err)
	}

	return s, nil
}
