// Package metrics provides sweep aggregates over per-point evaluation
// results.
package metrics

import (
	"github.com/san-kum/taylab/internal/expand"
)

// CleanRate reports the fraction of sweep points that finished without
// diagnostics.
type CleanRate struct {
	name    string
	clean   int
	samples int
}

func NewCleanRate() *CleanRate {
	return &CleanRate{name: "clean_rate"}
}

func (c *CleanRate) Name() string {
	return c.name
}

func (c *CleanRate) Observe(x float64, res expand.Result[float64]) {
	c.samples++
	if res.Flags.Clean() {
		c.clean++
	}
}

func (c *CleanRate) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return float64(c.clean) / float64(c.samples)
}

func (c *CleanRate) Reset() {
	c.clean = 0
	c.samples = 0
}

// FlagCount counts sweep points carrying a particular diagnostic flag.
type FlagCount struct {
	name  string
	flag  expand.Flags
	count int
}

func NewFlagCount(flag expand.Flags) *FlagCount {
	return &FlagCount{name: flag.String(), flag: flag}
}

func (f *FlagCount) Name() string {
	return f.name
}

func (f *FlagCount) Observe(x float64, res expand.Result[float64]) {
	if res.Flags.Has(f.flag) {
		f.count++
	}
}

func (f *FlagCount) Value() float64 {
	return float64(f.count)
}

func (f *FlagCount) Reset() {
	f.count = 0
}
