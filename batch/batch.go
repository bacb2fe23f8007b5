// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fxarb/arbitrage"
	"github.com/katalvlaran/fxarb/ratesheet"
)

// Outcome is the evaluation of one sheet.
type Outcome struct {
	Sheet  *ratesheet.Sheet
	Result *arbitrage.Result // nil when Err is set; owned by the caller
	Err    error             // validation failure, if any
	Cached bool              // Result came from the cache
}

// Stats counts cache activity since the Evaluator was created.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// cacheEntry pairs a result with the exact matrix it was computed from.
type cacheEntry struct {
	rates  [][]float64
	result *arbitrage.Result
}

// Evaluator runs detections concurrently with a shared result cache.
// It is safe for concurrent use.
type Evaluator struct {
	cfg    config
	cache  *lru.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates an Evaluator.
func New(opts ...Option) (*Evaluator, error) {
	cfg := config{
		workers:   defaultWorkers,
		cacheSize: defaultCacheSize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.New(cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("batch: failed to create cache: %w", err)
	}

	return &Evaluator{cfg: cfg, cache: cache}, nil
}

// Evaluate runs every sheet and returns one Outcome per sheet, in input order.
//
// Rejected sheets do not stop the batch. If ctx is cancelled, Evaluate
// returns the context error together with the outcomes completed so far;
// unfinished entries have a nil Sheet.
func (e *Evaluator) Evaluate(ctx context.Context, sheets []*ratesheet.Sheet) ([]Outcome, error) {
	out := make([]Outcome, len(sheets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.workers)
	for i, s := range sheets {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = e.evaluate(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, fmt.Errorf("batch: %w", err)
	}

	return out, nil
}

// Stats returns a snapshot of the cache counters.
func (e *Evaluator) Stats() Stats {
	return Stats{Hits: e.hits.Load(), Misses: e.misses.Load()}
}

// evaluate handles a single sheet.
func (e *Evaluator) evaluate(s *ratesheet.Sheet) Outcome {
	log := e.cfg.logger.With(zap.String("sheet", s.Name), zap.Int("currencies", s.Size()))

	if err := s.Validate(); err != nil {
		log.Warn("sheet rejected", zap.Error(err))
		if e.cfg.recorder != nil {
			e.cfg.recorder.ObserveRejected()
		}
		return Outcome{Sheet: s, Err: err}
	}

	key := Fingerprint(s.Rates)
	if v, ok := e.cache.Get(key); ok {
		if entry := v.(cacheEntry); sameRates(entry.rates, s.Rates) {
			e.hits.Add(1)
			e.observeCache(true)
			log.Debug("cache hit", zap.Uint64("fingerprint", key))
			return Outcome{Sheet: s, Result: cloneResult(entry.result), Cached: true}
		}
	}
	e.misses.Add(1)
	e.observeCache(false)

	start := time.Now()
	res, err := arbitrage.Detect(s.Size(), s.Rates)
	if err != nil {
		// Validate accepted the sheet, so this is unreachable in practice.
		log.Error("detection failed", zap.Error(err))
		return Outcome{Sheet: s, Err: err}
	}
	took := time.Since(start)
	if e.cfg.recorder != nil {
		e.cfg.recorder.ObserveResult(res, took)
	}
	log.Debug("sheet evaluated",
		zap.Bool("found", res.Found),
		zap.Ints("cycle", res.Cycle),
		zap.Float64("profit", res.Profit),
		zap.Duration("took", took),
	)

	e.cache.Add(key, cacheEntry{rates: cloneRates(s.Rates), result: cloneResult(res)})

	return Outcome{Sheet: s, Result: res}
}

func (e *Evaluator) observeCache(hit bool) {
	if e.cfg.recorder != nil {
		e.cfg.recorder.ObserveCache(hit)
	}
}

func cloneRates(rates [][]float64) [][]float64 {
	out := make([][]float64, len(rates))
	for i := range rates {
		out[i] = append([]float64(nil), rates[i]...)
	}

	return out
}

// cloneResult deep-copies res so the cached entry never aliases a caller's.
func cloneResult(res *arbitrage.Result) *arbitrage.Result {
	out := *res
	if res.Cycle != nil {
		out.Cycle = append([]int(nil), res.Cycle...)
	}
	out.Distances = append([]float64(nil), res.Distances...)
	out.Predecessors = append([]int(nil), res.Predecessors...)

	return &out
}
