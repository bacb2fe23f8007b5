// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fxarb/builder"
	"github.com/katalvlaran/fxarb/ratesheet"
)

func (a *app) generateCommand() *cobra.Command {
	var (
		n           int
		seed        int64
		spread      float64
		inject      []int
		gain        float64
		name        string
		sheetFormat string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random rate sheet, optionally with a planted arbitrage cycle",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&n, "n", 3, "number of currencies")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&spread, "spread", 0.001, "fraction lost on every conversion, in [0,1)")
	cmd.Flags().IntSliceVar(&inject, "inject", nil, "currency indices of a cycle to make profitable, e.g. 0,1,2")
	cmd.Flags().Float64Var(&gain, "gain", 1.01, "product of rates along the injected cycle")
	cmd.Flags().StringVar(&name, "name", "generated", "sheet name")
	cmd.Flags().StringVar(&sheetFormat, "sheet-format", string(ratesheet.FormatYAML), "output encoding: yaml or json")

	cmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		f, err := ratesheet.ParseFormat(sheetFormat)
		if err != nil {
			return err
		}
		if !(spread >= 0 && spread < 1) {
			return fmt.Errorf("spread %g outside [0,1)", spread)
		}

		rates, err := builder.Random(n, builder.WithSeed(seed), builder.WithSpread(spread))
		if err != nil {
			return err
		}
		if len(inject) > 0 {
			cycle := inject
			if cycle[0] != cycle[len(cycle)-1] {
				cycle = append(append([]int(nil), cycle...), cycle[0])
			}
			if rates, err = builder.InjectCycle(rates, cycle, gain); err != nil {
				return err
			}
			a.logger.Debug("cycle injected", zap.Ints("cycle", cycle), zap.Float64("gain", gain))
		}

		sheet := &ratesheet.Sheet{Name: name, Rates: rates}
		data, err := sheet.Encode(f)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)

		return err
	})

	return cmd
}
