// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fxarb/arbitrage"
)

// Tracer writes the per-round distance lines of a detection run.
// The first write error is kept and later writes are skipped.
type Tracer struct {
	w   io.Writer
	err error
}

// NewTracer returns a Tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Hook returns a round hook suitable for arbitrage.WithRoundHook.
func (t *Tracer) Hook() arbitrage.RoundHook {
	return func(round int, distances []float64) {
		t.line(fmt.Sprintf("Distances after relaxation %d:", round), distances)
	}
}

// Final writes the distances left after all relaxation rounds.
func (t *Tracer) Final(distances []float64) {
	t.line("Final distances after all relaxations:", distances)
}

// Err returns the first write error, if any.
func (t *Tracer) Err() error { return t.err }

func (t *Tracer) line(prefix string, distances []float64) {
	if t.err != nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	for _, d := range distances {
		sb.WriteByte(' ')
		sb.WriteString(formatDistance(d))
	}
	sb.WriteByte('\n')
	_, t.err = io.WriteString(t.w, sb.String())
}
