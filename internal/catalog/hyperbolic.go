package catalog

import (
	"math"

	"github.com/san-kum/taylab/internal/series"
)

// Sinh expands the hyperbolic sine: sum of x^(2n+1) / (2n+1)!.
func Sinh[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		return series.Term[T]{Coefficient: T(1 / math.Gamma(float64(2*n+2))), Exponent: 2*n + 1}
	})
}

// Cosh expands the hyperbolic cosine: sum of x^(2n) / (2n)!.
func Cosh[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		return series.Term[T]{Coefficient: T(1 / math.Gamma(float64(2*n+1))), Exponent: 2 * n}
	})
}
