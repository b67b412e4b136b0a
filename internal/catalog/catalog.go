// Package catalog ships ready-made Maclaurin expansions for common
// real-analytic functions, each paired with the static data the rest of the
// application wants alongside it: a human description, a reference
// implementation for cross-checking, the radius of convergence and, where a
// closed-form derivative bound exists, a remainder bound for guaranteed
// evaluation.
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/taylab/internal/expand"
	"github.com/san-kum/taylab/internal/series"
)

// Entry is one predefined expansion. Bound and Reference may be nil: a
// remainder bound only ships where every derivative has a known uniform
// limit, and a reference only where the standard library has a counterpart.
// Radius is display and test metadata; the engine never consults it.
type Entry struct {
	Name      string
	Describe  string
	Series    series.Series[float64]
	Bound     expand.Bound[float64]
	Reference func(float64) float64
	Radius    float64
}

var entries = buildCatalog()

func buildCatalog() map[string]Entry {
	inf := math.Inf(1)
	list := []Entry{
		{
			Name:      "geometric",
			Describe:  "geometric series, sums to 1/(1-x)",
			Series:    Geometric[float64](),
			Reference: func(x float64) float64 { return 1 / (1 - x) },
			Radius:    1,
		},
		{
			Name:      "exp",
			Describe:  "natural exponential",
			Series:    Exp[float64](),
			Reference: math.Exp,
			Radius:    inf,
		},
		{
			Name:      "sin",
			Describe:  "sine",
			Series:    Sin[float64](),
			Bound:     UnitBound[float64],
			Reference: math.Sin,
			Radius:    inf,
		},
		{
			Name:      "cos",
			Describe:  "cosine",
			Series:    Cos[float64](),
			Bound:     UnitBound[float64],
			Reference: math.Cos,
			Radius:    inf,
		},
		{
			Name:      "sinh",
			Describe:  "hyperbolic sine",
			Series:    Sinh[float64](),
			Reference: math.Sinh,
			Radius:    inf,
		},
		{
			Name:      "cosh",
			Describe:  "hyperbolic cosine",
			Series:    Cosh[float64](),
			Reference: math.Cosh,
			Radius:    inf,
		},
		{
			Name:      "arcsin",
			Describe:  "inverse sine",
			Series:    Arcsin[float64](),
			Reference: math.Asin,
			Radius:    1,
		},
		{
			Name:      "arcsinh",
			Describe:  "inverse hyperbolic sine",
			Series:    Arcsinh[float64](),
			Reference: math.Asinh,
			Radius:    1,
		},
		{
			Name:      "arctan",
			Describe:  "inverse tangent",
			Series:    Arctan[float64](),
			Reference: math.Atan,
			Radius:    1,
		},
		{
			Name:      "arctanh",
			Describe:  "inverse hyperbolic tangent",
			Series:    Arctanh[float64](),
			Reference: math.Atanh,
			Radius:    1,
		},
		{
			Name:      "log1p",
			Describe:  "shifted natural logarithm ln(1+x)",
			Series:    Log1p[float64](),
			Reference: math.Log1p,
			Radius:    1,
		},
		{
			Name:      "erf",
			Describe:  "Gauss error function",
			Series:    Erf[float64](),
			Reference: math.Erf,
			Radius:    inf,
		},
	}
	list = append(list, Bessel(0), Bessel(1))

	m := make(map[string]Entry, len(list))
	for _, e := range list {
		m[e.Name] = e
	}
	return m
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown series: %s", name)
	}
	return e, nil
}

// Names lists every registered entry in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bessel builds the entry for the Bessel function of the first kind of
// integer order nu. Orders 0 and 1 are pre-registered; any other order is
// constructed on demand.
func Bessel(nu int) Entry {
	return Entry{
		Name:      fmt.Sprintf("besselj%d", nu),
		Describe:  fmt.Sprintf("Bessel function of the first kind J%d", nu),
		Series:    BesselJ[float64](nu),
		Reference: func(x float64) float64 { return math.Jn(nu, x) },
		Radius:    math.Inf(1),
	}
}
