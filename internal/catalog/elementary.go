package catalog

import (
	"math"

	"github.com/san-kum/taylab/internal/series"
)

// Geometric is the series 1 + x + x^2 + ..., converging to 1/(1-x) for
// |x| < 1.
func Geometric[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		return series.Term[T]{Coefficient: 1, Exponent: n}
	})
}

// Exp expands the natural exponential: sum of x^n / n!.
func Exp[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		return series.Term[T]{Coefficient: T(1 / math.Gamma(float64(n+1))), Exponent: n}
	})
}

// Log1p expands ln(1+x) for |x| < 1. The series has no constant term, so
// indexing starts at one.
func Log1p[T series.Real]() series.Series[T] {
	s := series.New(func(n int) series.Term[T] {
		c := 1 / float64(n)
		if n%2 == 0 {
			c = -c
		}
		return series.Term[T]{Coefficient: T(c), Exponent: n}
	})
	s.Start = 1
	return s
}
