package catalog

import (
	"math"

	"github.com/san-kum/taylab/internal/series"
)

// Sin expands sine: term n carries (-1)^n x^(2n+1) / (2n+1)!.
func Sin[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		c := 1 / math.Gamma(float64(2*n+2))
		if n%2 == 1 {
			c = -c
		}
		return series.Term[T]{Coefficient: T(c), Exponent: 2*n + 1}
	})
}

// Cos expands cosine: term n carries (-1)^n x^(2n) / (2n)!.
func Cos[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		c := 1 / math.Gamma(float64(2*n+1))
		if n%2 == 1 {
			c = -c
		}
		return series.Term[T]{Coefficient: T(c), Exponent: 2 * n}
	})
}

// UnitBound is a valid remainder bound for sine and cosine: every
// derivative of either is bounded by 1 everywhere.
func UnitBound[T series.Real](order int, x, center T) T { return 1 }
