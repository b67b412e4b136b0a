// Package series defines power-series representations.
//
// A power series is described by a term-generating rule plus an expansion
// center and a starting index:
//
//   - [Term]: a single (coefficient, integer exponent) pair
//   - [Summand]: pure function mapping a term index to its [Term]
//   - [Series]: summand plus center and start index
//
// A Series never performs numeric summation itself; evaluation lives in the
// expand package. Series values are cheap to copy and safe to share between
// goroutines, and [Series.Differentiate] returns a new value rather than
// mutating the receiver.
//
// # Example
//
//	exp := series.New(func(n int) series.Term[float64] {
//		return series.Term[float64]{Coefficient: 1 / series.Gamma(float64(n+1)), Exponent: n}
//	})
//	dexp := exp.Differentiate(1)
//
// The summand must be deterministic and free of side effects: evaluators may
// invoke it with arbitrary, possibly repeated, indices.
package series
