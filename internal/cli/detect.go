// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/fxarb/arbitrage"
	"github.com/katalvlaran/fxarb/internal/config"
	"github.com/katalvlaran/fxarb/matrix"
	"github.com/katalvlaran/fxarb/report"
)

// errVerify reports a disagreement between Bellman-Ford and Floyd-Warshall.
var errVerify = errors.New("distance verification failed")

const verifyTolerance = 1e-9

func (a *app) detectCommand() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "detect [sheet]",
		Short: "Detect an arbitrage cycle in one rate sheet",
		Long: `Load a YAML or JSON rate sheet (or the built-in USD/EUR/GBP matrix when none
is given) and report the first arbitrage cycle reachable from currency 0.`,
		Args: cobra.MaximumNArgs(1),
	}
	cmd.Flags().BoolVar(&a.cfg.Trace, "trace", a.cfg.Trace, "print the distance vector after every relaxation round")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the result against Floyd-Warshall")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		sheet, err := a.loadSheet(args)
		if err != nil {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return a.reject(cmd, name, err)
		}
		log := a.logger.With(zap.String("sheet", sheet.Name), zap.Int("currencies", sheet.Size()))

		var hooks []arbitrage.RoundHook
		if a.logger.Core().Enabled(zapcore.DebugLevel) {
			hooks = append(hooks, func(round int, d []float64) {
				log.Debug("relaxation round", zap.Int("round", round), zap.Float64s("distances", d))
			})
		}
		var tracer *report.Tracer
		if a.cfg.Trace {
			tracer = report.NewTracer(a.traceWriter(cmd))
			hooks = append(hooks, tracer.Hook())
		}
		var opts []arbitrage.Option
		if len(hooks) > 0 {
			opts = append(opts, arbitrage.WithRoundHook(chainHooks(hooks)))
		}

		start := time.Now()
		res, err := arbitrage.Detect(sheet.Size(), sheet.Rates, opts...)
		if err != nil {
			return a.reject(cmd, sheet.Name, err)
		}
		a.recorder.ObserveResult(res, time.Since(start))
		log.Info("detection finished", zap.Bool("found", res.Found), zap.Ints("cycle", res.Cycle),
			zap.Float64("profit", res.Profit), zap.Duration("took", time.Since(start)))

		if tracer != nil {
			tracer.Final(res.Distances)
			if err := tracer.Err(); err != nil {
				return fmt.Errorf("write trace: %w", err)
			}
		}

		if verify {
			if err := a.verify(log, sheet.Rates, res); err != nil {
				return err
			}
		}

		return a.render(cmd, report.FromResult(sheet, res))
	})

	return cmd
}

// traceWriter keeps stdout a single JSON document in json mode.
func (a *app) traceWriter(cmd *cobra.Command) io.Writer {
	if a.cfg.Format == config.FormatJSON {
		return cmd.ErrOrStderr()
	}

	return cmd.OutOrStdout()
}

// reject records and renders a sheet that could not be evaluated, then
// returns err unchanged.
func (a *app) reject(cmd *cobra.Command, name string, err error) error {
	a.recorder.ObserveRejected()
	a.logger.Warn("sheet rejected", zap.String("sheet", name), zap.Error(err))
	if rerr := a.render(cmd, report.FromError(name, err)); rerr != nil {
		return rerr
	}

	return err
}

// verify checks res against the Floyd-Warshall closure of the weight graph:
// a negative diagonal must appear exactly when a cycle was found, and
// without a cycle every distance must match the closure's source row.
func (a *app) verify(log *zap.Logger, rates [][]float64, res *arbitrage.Result) error {
	closed, err := arbitrage.Closure(rates)
	if err != nil {
		return fmt.Errorf("%w: %v", errVerify, err)
	}
	neg, err := matrix.HasNegativeCycle(closed)
	if err != nil {
		return fmt.Errorf("%w: %v", errVerify, err)
	}
	if neg != res.Found {
		// Weight of the cycle claimed by whichever side saw one. A cycle worth
		// exactly 1 may round either way, so only a clear margin is an error.
		margin := minDiagonal(closed)
		if res.Found {
			margin = -math.Log(res.Profit)
		}
		if math.IsNaN(margin) || math.Abs(margin) > verifyTolerance {
			return fmt.Errorf("%w: found=%t but floyd-warshall disagrees (cycle weight %g)", errVerify, res.Found, margin)
		}
		log.Warn("verification inconclusive: cycle on the rounding boundary")
		return nil
	}
	if res.Found {
		log.Info("negative cycle confirmed")
		return nil
	}

	// Without a negative cycle every currency reaches every other.
	if err = matrix.ValidateFinite(closed); err != nil {
		return fmt.Errorf("%w: %v", errVerify, err)
	}
	want := closed.RowView(arbitrage.Source)
	for v, got := range res.Distances {
		if !closeEnough(got, want[v]) {
			return fmt.Errorf("%w: distance[%d]=%g, floyd-warshall=%g", errVerify, v, got, want[v])
		}
	}
	log.Info("distances verified", zap.Int("vertices", len(want)))

	return nil
}

func minDiagonal(d *matrix.Dense) float64 {
	lowest := math.Inf(1)
	for i := 0; i < d.Rows(); i++ {
		if v := d.RowView(i)[i]; v < lowest {
			lowest = v
		}
	}

	return lowest
}

func closeEnough(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}

	return math.Abs(a-b) <= verifyTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func chainHooks(hooks []arbitrage.RoundHook) arbitrage.RoundHook {
	if len(hooks) == 1 {
		return hooks[0]
	}

	return func(round int, d []float64) {
		for _, h := range hooks {
			h(round, d)
		}
	}
}
