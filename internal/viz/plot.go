package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// SweepChart renders a value curve as a terminal chart. Non-finite
// values are dropped first: a single Inf flattens the axis into
// uselessness.
func SweepChart(values []float64, width, height int, caption string) string {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return "no finite values to plot"
	}

	return asciigraph.Plot(finite,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// DeltaChart renders a partial-sum delta history on a log10 axis.
// Zero and non-finite deltas are dropped.
func DeltaChart(deltas []float64, width, height int, caption string) string {
	logs := make([]float64, 0, len(deltas))
	for _, d := range deltas {
		if d <= 0 || math.IsInf(d, 0) || math.IsNaN(d) {
			continue
		}
		logs = append(logs, math.Log10(d))
	}
	if len(logs) == 0 {
		return "no usable deltas to plot"
	}

	return asciigraph.Plot(logs,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
