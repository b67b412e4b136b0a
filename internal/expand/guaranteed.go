package expand

import "github.com/san-kum/taylab/internal/series"

// Bound reports a nonnegative bound on the magnitude of the represented
// function's order-th derivative over the interval between center and x.
// The caller supplies it; the engine cannot derive one because it never
// sees the closed-form function behind the series.
type Bound[T series.Real] func(order int, x, center T) T

// maxProbeOrder caps the exponential probe so a bound that never decays
// (malformed input, caller responsibility per contract) cannot hang the
// search.
const maxProbeOrder = 1 << 20

// Guaranteed truncates via Taylor's remainder theorem: it searches for the
// minimal order whose remainder bound drops to Precision, then sums with
// [FixedOrder]. Assuming Bound is correct, Value lands within Precision of
// the true function value.
//
// MaxIterations, when positive, caps the order actually summed; a capped
// evaluation flags MaxIterationsReached and carries no ReachedPrecision,
// since the remainder bound rather than an observed delta is the authority
// here.
type Guaranteed[T series.Real] struct {
	Precision     T
	Bound         Bound[T]
	MaxIterations int
}

func NewGuaranteed[T series.Real](precision T, bound Bound[T]) *Guaranteed[T] {
	return &Guaranteed[T]{Precision: precision, Bound: bound}
}

// remainder bounds the truncation error after summing through order n:
// bound(n+1, x, center) * |x-center|^(n+1) / (n+1)!.
func (e *Guaranteed[T]) remainder(n int, x, center T) T {
	m := e.Bound(n+1, x, center)
	return m * series.Pow(series.Abs(x-center), T(n+1)) / series.Gamma(T(n+2))
}

// Order runs the two-phase search for the minimal truncation order at x.
// An exponential probe doubles a candidate from 1 until the remainder bound
// first satisfies Precision, bracketing the answer in O(log n) probes; a
// binary search then narrows the bracket. The boolean reports whether the
// probe hit its ceiling without ever satisfying the bound.
func (e *Guaranteed[T]) Order(s series.Series[T], x T) (int, bool) {
	lo, hi := 1, 1
	for e.remainder(hi, x, s.Center) > e.Precision {
		if hi >= maxProbeOrder {
			return maxProbeOrder, true
		}
		lo = hi
		hi *= 2
	}

	// Invariant: remainder(lo) > Precision (or lo == hi == 1) and
	// remainder(hi) <= Precision. The midpoint rounds up so the search
	// settles on the smallest satisfying order instead of oscillating.
	for hi-lo > 1 {
		mid := (hi + lo + 1) / 2
		if e.remainder(mid, x, s.Center) > e.Precision {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, false
}

func (e *Guaranteed[T]) Evaluate(s series.Series[T], x T) Result[T] {
	order, capped := e.Order(s, x)
	if e.MaxIterations > 0 && order > e.MaxIterations {
		order = e.MaxIterations
		capped = true
	}

	res := NewFixedOrder[T](order).Evaluate(s, x)
	if capped {
		res.Flags |= MaxIterationsReached
	}

	// The order search reasons about the analytic bound only; the realized
	// floating-point terms can still go non-finite, so classify the value
	// after the fact. The sentinel value itself is returned.
	if series.IsNaN(res.Value) {
		res.Flags |= NaNEncountered
	} else if series.IsInf(res.Value) {
		res.Flags |= InfinityEncountered
	}
	return res
}
