// SPDX-License-Identifier: MIT

package batch

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/fxarb/metrics"
)

const (
	defaultWorkers   = 4
	defaultCacheSize = 256
)

type config struct {
	workers   int
	cacheSize int
	logger    *zap.Logger
	recorder  *metrics.Recorder
}

// Option configures an Evaluator.
type Option func(*config)

// WithWorkers bounds the number of concurrent detections. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithCacheSize sets the number of results kept in the LRU. Panics if n < 1.
func WithCacheSize(n int) Option {
	if n < 1 {
		panic("batch: WithCacheSize(n<1)")
	}
	return func(c *config) { c.cacheSize = n }
}

// WithLogger sets the logger used for per-sheet diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithRecorder records every evaluation in r. Panics on nil.
func WithRecorder(r *metrics.Recorder) Option {
	if r == nil {
		panic("batch: WithRecorder(nil)")
	}
	return func(c *config) { c.recorder = r }
}
