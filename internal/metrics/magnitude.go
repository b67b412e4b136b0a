package metrics

import (
	"math"

	"github.com/san-kum/taylab/internal/expand"
)

// TermMean reports the average number of terms summed per sweep point, a
// direct read on how hard the truncation policy worked across the interval.
type TermMean struct {
	name    string
	total   int
	samples int
}

func NewTermMean() *TermMean {
	return &TermMean{name: "mean_terms"}
}

func (t *TermMean) Name() string {
	return t.name
}

func (t *TermMean) Observe(x float64, res expand.Result[float64]) {
	t.samples++
	t.total += res.Terms
}

func (t *TermMean) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return float64(t.total) / float64(t.samples)
}

func (t *TermMean) Reset() {
	t.total = 0
	t.samples = 0
}

// MaxAbs tracks the largest finite magnitude any sweep point produced.
type MaxAbs struct {
	name string
	max  float64
}

func NewMaxAbs() *MaxAbs {
	return &MaxAbs{name: "max_abs"}
}

func (m *MaxAbs) Name() string {
	return m.name
}

func (m *MaxAbs) Observe(x float64, res expand.Result[float64]) {
	v := math.Abs(res.Value)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if v > m.max {
		m.max = v
	}
}

func (m *MaxAbs) Value() float64 {
	return m.max
}

func (m *MaxAbs) Reset() {
	m.max = 0
}
