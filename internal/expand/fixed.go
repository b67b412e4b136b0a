package expand

import "github.com/san-kum/taylab/internal/series"

// TermValue evaluates term n of s at x: coefficient * (x-center)^exponent.
// A zero coefficient short-circuits to exactly zero, keeping terms vanished
// by differentiation inert even at x == center, where a negative exponent
// would otherwise turn them into 0*Inf = NaN.
func TermValue[T series.Real](s series.Series[T], n int, x T) T {
	t := s.Summand(n)
	if t.Coefficient == 0 {
		return 0
	}
	return t.Coefficient * series.Pow(x-s.Center, T(t.Exponent))
}

// FixedOrder sums every term from the series start through To in ascending
// index order (ascending for floating-point reproducibility). It is the
// trusted primitive for callers who already derived the right truncation
// order: no diagnostics are computed and non-finite terms propagate per
// IEEE arithmetic.
type FixedOrder[T series.Real] struct {
	To int
}

func NewFixedOrder[T series.Real](to int) *FixedOrder[T] {
	return &FixedOrder[T]{To: to}
}

// Sum returns the truncated sum of s at x.
func (e *FixedOrder[T]) Sum(s series.Series[T], x T) T {
	var sum T
	for n := s.Start; n <= e.To; n++ {
		sum += TermValue(s, n, x)
	}
	return sum
}

func (e *FixedOrder[T]) Evaluate(s series.Series[T], x T) Result[T] {
	terms := e.To - s.Start + 1
	if terms < 0 {
		terms = 0
	}
	return Result[T]{Value: e.Sum(s, x), Terms: terms}
}
