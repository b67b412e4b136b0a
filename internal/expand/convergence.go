package expand

import "github.com/san-kum/taylab/internal/series"

// DefaultMaxIterations caps the convergence loop when the caller does not
// pick a limit.
const DefaultMaxIterations = 1000

// Convergence accumulates terms until consecutive partial sums differ by
// less than Precision. The stop test additionally requires that the running
// sum has been nonzero at least once: expansions carrying only odd (or only
// even) powers contribute nothing on their early indices, and a trivially
// zero delta at iteration zero must not count as convergence.
//
// Worst-case cost is O(MaxIterations) summand calls per point. The stopping
// rule is heuristic; callers needing certified error use [Guaranteed].
type Convergence[T series.Real] struct {
	Precision     T
	MaxIterations int

	observers []Observer[T]
}

// NewConvergence returns a convergence evaluator targeting precision with
// the default iteration cap.
func NewConvergence[T series.Real](precision T) *Convergence[T] {
	return &Convergence[T]{
		Precision:     precision,
		MaxIterations: DefaultMaxIterations,
	}
}

// AddObserver registers o for per-term notification. Not safe to combine
// with concurrent Evaluate calls.
func (e *Convergence[T]) AddObserver(o Observer[T]) {
	e.observers = append(e.observers, o)
}

func (e *Convergence[T]) Evaluate(s series.Series[T], x T) Result[T] {
	maxIter := e.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	var (
		res        Result[T]
		sum        T
		firstDelta T
		lastDelta  T
		nonzero    bool
	)

	for i := 0; i < maxIter; i++ {
		n := s.Start + i
		term := TermValue(s, n, x)

		// Pathology checks run before accumulation so the returned value
		// is the last valid partial sum, not the poisoned one.
		if series.IsInf(term) {
			res.Value = sum
			res.Flags |= InfinityEncountered
			return res
		}
		if series.IsNaN(term) {
			res.Value = sum
			res.Flags |= NaNEncountered
			return res
		}

		prev := sum
		sum += term
		delta := series.Abs(sum - prev)

		if res.Terms == 0 {
			firstDelta = delta
		}
		lastDelta = delta
		res.Terms++

		for _, o := range e.observers {
			o.OnTerm(n, term, sum)
		}

		if sum != 0 {
			nonzero = true
		}
		if nonzero && delta < e.Precision {
			res.Value = sum
			res.ReachedPrecision = delta
			res.Flags |= divergenceFlag(firstDelta, lastDelta)
			return res
		}
	}

	res.Value = sum
	res.ReachedPrecision = lastDelta
	res.Flags |= MaxIterationsReached
	res.Flags |= divergenceFlag(firstDelta, lastDelta)
	return res
}

// divergenceFlag implements the first-versus-last delta heuristic: growing
// deltas suggest the query point lies outside the radius of convergence.
// It runs on both the converged and the capped exit, since a series can
// pass the precision test on one lucky iteration while still diverging.
// Known to under-fire (harmonic-series deltas shrink while the sum
// diverges); callers depend on the exact behavior, so it stays as is.
func divergenceFlag[T series.Real](first, last T) Flags {
	if first < last {
		return DivergenceSuspected
	}
	return 0
}
