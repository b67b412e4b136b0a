package sweep

import "github.com/san-kum/taylab/internal/expand"

// Config bounds one sweep: Points evaluations spaced evenly over
// [From, To]. Workers <= 0 means one worker per CPU.
type Config struct {
	From    float64
	To      float64
	Points  int
	Workers int
}

// Metric aggregates per-point evaluation outcomes into a single number.
type Metric interface {
	Name() string
	Observe(x float64, res expand.Result[float64])
	Value() float64
	Reset()
}

// Result holds one sweep's outcome as parallel slices indexed by point.
// Ordering is deterministic regardless of worker count.
type Result struct {
	Xs         []float64
	Values     []float64
	Flags      []expand.Flags
	Precisions []float64
	Terms      []int
	Stats      map[string]float64
}

// Clean reports how many points finished without diagnostics.
func (r *Result) Clean() int {
	n := 0
	for _, f := range r.Flags {
		if f.Clean() {
			n++
		}
	}
	return n
}
