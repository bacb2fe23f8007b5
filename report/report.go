// SPDX-License-Identifier: MIT

// Package report renders detection results for people and machines.
//
// Text output keeps the phrasing of the classic console tool
// ("Arbitrage opportunity detected!", "Cycle: a -> b -> a", ...); JSON output
// is a flat Report document.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/fxarb/arbitrage"
	"github.com/katalvlaran/fxarb/ratesheet"
)

// Report is the labelled view of one detection.
type Report struct {
	Sheet   string   `json:"sheet,omitempty"`
	Found   bool     `json:"found"`
	Cycle   []string `json:"cycle,omitempty"`
	Indices []int    `json:"indices,omitempty"`
	Profit  float64  `json:"profit,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// FromResult labels res with the currency codes of s.
func FromResult(s *ratesheet.Sheet, res *arbitrage.Result) Report {
	rep := Report{Sheet: s.Name}
	if res == nil {
		return rep
	}
	rep.Found = res.Found
	rep.Indices = res.Cycle
	rep.Cycle = s.Labels(res.Cycle)
	rep.Profit = res.Profit

	return rep
}

// FromError reports a sheet that was rejected.
func FromError(name string, err error) Report {
	return Report{Sheet: name, Error: err.Error()}
}

// WriteText writes rep in the console phrasing.
func WriteText(w io.Writer, rep Report) error {
	var sb strings.Builder
	switch {
	case rep.Error != "":
		fmt.Fprintf(&sb, "Rejected: %s\n", rep.Error)
	case !rep.Found:
		sb.WriteString("No arbitrage opportunity.\n")
	case len(rep.Cycle) == 0:
		sb.WriteString("Arbitrage opportunity detected!\n")
		sb.WriteString("Cycle could not be reconstructed.\n")
	default:
		sb.WriteString("Arbitrage opportunity detected!\n")
		fmt.Fprintf(&sb, "Cycle: %s\n", strings.Join(rep.Cycle, " -> "))
		fmt.Fprintf(&sb, "Starting with $1, you can end with $%s\n", formatMoney(rep.Profit))
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteJSON writes v as one JSON document followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := sonnet.Marshal(v)
	if err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	_, err = w.Write(append(data, '\n'))

	return err
}

// formatMoney prints six significant digits, like a default C++ stream.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatDistance prints a distance with six decimals, or INF when unreached.
func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "INF"
	}

	return strconv.FormatFloat(d, 'f', 6, 64)
}
