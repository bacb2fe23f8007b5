// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fxarb/batch"
	"github.com/katalvlaran/fxarb/internal/config"
	"github.com/katalvlaran/fxarb/ratesheet"
	"github.com/katalvlaran/fxarb/report"
)

func (a *app) batchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <sheet>...",
		Short: "Evaluate many rate sheets concurrently",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.Flags().IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "maximum concurrent detections")
	cmd.Flags().IntVar(&a.cfg.CacheSize, "cache-size", a.cfg.CacheSize, "number of results kept in the cache")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		if err := a.cfg.Validate(); err != nil {
			return err
		}
		ev, err := batch.New(
			batch.WithWorkers(a.cfg.Workers),
			batch.WithCacheSize(a.cfg.CacheSize),
			batch.WithLogger(a.logger),
			batch.WithRecorder(a.recorder),
		)
		if err != nil {
			return err
		}

		reports := make([]report.Report, len(args))
		var sheets []*ratesheet.Sheet
		var slots []int
		rejected := 0
		for i, path := range args {
			s, err := ratesheet.Load(path)
			if err != nil {
				a.logger.Warn("sheet not loaded", zap.String("path", path), zap.Error(err))
				a.recorder.ObserveRejected()
				reports[i] = report.FromError(path, err)
				rejected++
				continue
			}
			sheets = append(sheets, s)
			slots = append(slots, i)
		}

		outcomes, err := ev.Evaluate(cmd.Context(), sheets)
		if err != nil {
			return err
		}
		for k, o := range outcomes {
			if o.Err != nil {
				reports[slots[k]] = report.FromError(o.Sheet.Name, o.Err)
				rejected++
				continue
			}
			reports[slots[k]] = report.FromResult(o.Sheet, o.Result)
		}

		st := ev.Stats()
		a.logger.Info("batch finished", zap.Int("sheets", len(args)), zap.Int("rejected", rejected),
			zap.Uint64("cache_hits", st.Hits), zap.Uint64("cache_misses", st.Misses))

		if err := a.renderAll(cmd, args, reports); err != nil {
			return err
		}
		if rejected > 0 {
			return fmt.Errorf("%d of %d sheets rejected", rejected, len(args))
		}

		return nil
	})

	return cmd
}

// renderAll writes a JSON array, or one titled text block per sheet.
func (a *app) renderAll(cmd *cobra.Command, paths []string, reports []report.Report) error {
	if a.cfg.Format == config.FormatJSON {
		return report.WriteJSON(cmd.OutOrStdout(), reports)
	}
	for i, rep := range reports {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", paths[i]); err != nil {
			return err
		}
		if err := report.WriteText(cmd.OutOrStdout(), rep); err != nil {
			return err
		}
	}

	return nil
}
