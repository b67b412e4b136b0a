package expand

import (
	"strings"

	"github.com/san-kum/taylab/internal/series"
)

// Flags records evaluation diagnostics as a bit set. Zero means a clean,
// converged result.
type Flags uint8

const (
	// MaxIterationsReached indicates the iteration or order cap bound the
	// work before the precision criterion was met.
	MaxIterationsReached Flags = 1 << iota

	// DivergenceSuspected indicates partial-sum deltas grew between the
	// first and last recorded iteration. Heuristic signal, not a proof.
	DivergenceSuspected

	// NaNEncountered indicates a term (or the final value) resolved to NaN.
	NaNEncountered

	// InfinityEncountered indicates a term (or the final value) resolved to
	// +/-Inf.
	InfinityEncountered
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

func (f Flags) Clean() bool { return f == 0 }

func (f Flags) String() string {
	if f.Clean() {
		return "clean"
	}
	parts := make([]string, 0, 4)
	if f.Has(MaxIterationsReached) {
		parts = append(parts, "max-iterations-reached")
	}
	if f.Has(DivergenceSuspected) {
		parts = append(parts, "divergence-suspected")
	}
	if f.Has(NaNEncountered) {
		parts = append(parts, "not-a-number-encountered")
	}
	if f.Has(InfinityEncountered) {
		parts = append(parts, "infinity-encountered")
	}
	return strings.Join(parts, ",")
}

// Result carries one evaluation's value plus its diagnostics. Value is
// always usable: when a pathological term cut a summation short it holds
// the last valid partial sum, never the poisoned term.
type Result[T series.Real] struct {
	Value T
	Flags Flags

	// ReachedPrecision is the magnitude of the last partial-sum delta the
	// convergence evaluator observed, whether or not it met the target.
	// The order-search evaluator leaves it zero: there the remainder
	// bound, not a realized delta, is the authority.
	ReachedPrecision T

	// Terms counts the terms actually accumulated into Value.
	Terms int
}

// Evaluator is a truncation policy bound to its tuning parameters. The
// series is supplied per call so a single policy value can serve many
// series.
type Evaluator[T series.Real] interface {
	Evaluate(s series.Series[T], x T) Result[T]
}

// Observer receives every accumulated term of a convergence evaluation:
// n is the term index, term its evaluated value and partial the running sum
// after accumulation. Observers exist for instrumentation (live views,
// delta-history capture); attaching one forfeits the evaluator's
// reentrancy.
type Observer[T series.Real] interface {
	OnTerm(n int, term, partial T)
}
