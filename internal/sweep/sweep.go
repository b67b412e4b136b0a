// Package sweep evaluates a series over an interval with a fixed truncation
// policy, fanning the points out across workers. Cancellation crosses the
// worker boundary here; the evaluators themselves run to completion per
// point.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/taylab/internal/expand"
	"github.com/san-kum/taylab/internal/series"
)

type Sweep struct {
	series    series.Series[float64]
	evaluator expand.Evaluator[float64]
	metrics   []Metric
}

func New(s series.Series[float64], e expand.Evaluator[float64]) *Sweep {
	return &Sweep{series: s, evaluator: e}
}

func (s *Sweep) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Sweep) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	xs := make([]float64, cfg.Points)
	if cfg.Points == 1 {
		xs[0] = cfg.From
	} else {
		floats.Span(xs, cfg.From, cfg.To)
	}

	res := &Result{
		Xs:         xs,
		Values:     make([]float64, cfg.Points),
		Flags:      make([]expand.Flags, cfg.Points),
		Precisions: make([]float64, cfg.Points),
		Terms:      make([]int, cfg.Points),
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Points {
		workers = cfg.Points
	}
	chunk := (cfg.Points + workers - 1) / workers

	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > cfg.Points {
			end = cfg.Points
		}

		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					errs[w] = ctx.Err()
					return
				default:
				}

				r := s.evaluator.Evaluate(s.series, xs[i])
				res.Values[i] = r.Value
				res.Flags[i] = r.Flags
				res.Precisions[i] = r.ReachedPrecision
				res.Terms[i] = r.Terms
			}
		}(w, start, end)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	res.Stats = s.computeStats(res)
	return res, nil
}

func validateConfig(cfg Config) error {
	if cfg.Points < 1 {
		return fmt.Errorf("sweep needs at least one point, got %d", cfg.Points)
	}
	if cfg.From > cfg.To {
		return fmt.Errorf("sweep range is inverted: [%g, %g]", cfg.From, cfg.To)
	}
	return nil
}

// computeStats replays the collected points through each metric in
// ascending x order, so stats do not depend on worker scheduling.
func (s *Sweep) computeStats(res *Result) map[string]float64 {
	stats := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		m.Reset()
		for i := range res.Xs {
			m.Observe(res.Xs[i], expand.Result[float64]{
				Value:            res.Values[i],
				Flags:            res.Flags[i],
				ReachedPrecision: res.Precisions[i],
				Terms:            res.Terms[i],
			})
		}
		stats[m.Name()] = m.Value()
	}
	return stats
}
