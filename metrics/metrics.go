// SPDX-License-Identifier: MIT

// Package metrics records detection outcomes as Prometheus metrics.
//
// fxarb runs as a batch job, so instead of serving a scrape endpoint the
// Recorder writes its registry to a file in the node-exporter textfile
// collector format (WriteTextfile).
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/fxarb/arbitrage"
)

const namespace = "fxarb"

// Outcome label values for fxarb_detections_total.
const (
	OutcomeArbitrage = "arbitrage"
	OutcomeNone      = "none"
	OutcomeRejected  = "rejected"
)

// Recorder owns a private registry and the collectors registered on it.
// All methods are safe for concurrent use.
type Recorder struct {
	registry    *prometheus.Registry
	detections  *prometheus.CounterVec
	cycleLength prometheus.Histogram
	profit      prometheus.Histogram
	duration    prometheus.Histogram
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_total",
			Help:      "Detection runs by outcome.",
		}, []string{"outcome"}),
		cycleLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_length",
			Help:      "Number of conversions in reported arbitrage cycles.",
			Buckets:   prometheus.LinearBuckets(2, 1, 8),
		}),
		profit: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_profit_ratio",
			Help:      "Amount obtained from one unit after following a reported cycle.",
			Buckets:   []float64{1.0001, 1.001, 1.005, 1.01, 1.05, 1.1, 1.5, 2},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "detect_duration_seconds",
			Help:      "Wall time of a single detection run.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_cache_hits_total",
			Help:      "Batch evaluations answered from the result cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_cache_misses_total",
			Help:      "Batch evaluations that ran the detector.",
		}),
	}
	r.registry.MustRegister(r.detections, r.cycleLength, r.profit, r.duration, r.cacheHits, r.cacheMisses)

	return r
}

// Registry exposes the underlying registry, e.g. for tests or an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveResult records one completed detection and how long it took.
func (r *Recorder) ObserveResult(res *arbitrage.Result, took time.Duration) {
	r.duration.Observe(took.Seconds())
	if !res.Found {
		r.detections.WithLabelValues(OutcomeNone).Inc()
		return
	}
	r.detections.WithLabelValues(OutcomeArbitrage).Inc()
	if len(res.Cycle) > 1 {
		r.cycleLength.Observe(float64(len(res.Cycle) - 1))
		r.profit.Observe(res.Profit)
	}
}

// ObserveRejected records a detection refused at input validation.
func (r *Recorder) ObserveRejected() {
	r.detections.WithLabelValues(OutcomeRejected).Inc()
}

// ObserveCache records a batch cache lookup.
func (r *Recorder) ObserveCache(hit bool) {
	if hit {
		r.cacheHits.Inc()
		return
	}
	r.cacheMisses.Inc()
}

// WriteTextfile atomically writes all metrics to path in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
