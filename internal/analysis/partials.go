package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/taylab/internal/expand"
	"github.com/san-kum/taylab/internal/series"
)

// rateTail is how many trailing delta ratios feed the rate estimate.
const rateTail = 10

// Partials returns the first n partial sums of s at x. A non-finite term
// cuts the history short; the sums accumulated so far are still returned.
func Partials(s series.Series[float64], x float64, n int) []float64 {
	partials := make([]float64, 0, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		term := expand.TermValue(s, s.Start+i, x)
		if math.IsNaN(term) || math.IsInf(term, 0) {
			break
		}
		sum += term
		partials = append(partials, sum)
	}
	return partials
}

// Deltas converts partial sums into absolute step sizes. The first delta is
// measured from the empty sum, matching what the convergence evaluator
// records per iteration.
func Deltas(partials []float64) []float64 {
	deltas := make([]float64, len(partials))
	prev := 0.0
	for i, p := range partials {
		deltas[i] = math.Abs(p - prev)
		prev = p
	}
	return deltas
}

// Rate estimates the asymptotic ratio between successive deltas as the
// geometric mean over the tail of the history. Below 1 the partial sums are
// contracting at the query point, above 1 they are growing. Returns 0 when
// the history is too short to form a single ratio.
func Rate(deltas []float64) float64 {
	start := len(deltas) - rateTail
	if start < 1 {
		start = 1
	}
	ratios := make([]float64, 0, rateTail)
	for i := start; i < len(deltas); i++ {
		prev := deltas[i-1]
		if prev == 0 || math.IsNaN(prev) || math.IsInf(prev, 0) {
			continue
		}
		r := deltas[i] / prev
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		ratios = append(ratios, r)
	}
	if len(ratios) == 0 {
		return 0
	}
	return stat.GeometricMean(ratios, nil)
}
