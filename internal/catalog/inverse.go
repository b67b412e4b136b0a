package catalog

import (
	"math"

	"github.com/san-kum/taylab/internal/series"
)

// asinCoefficient computes (2n)! / (4^n (n!)^2 (2n+1)) in log space.
// The direct gamma ratio turns Inf/Inf = NaN past n ≈ 85.
func asinCoefficient(n int) float64 {
	num, _ := math.Lgamma(float64(2*n + 1))
	den, _ := math.Lgamma(float64(n + 1))
	return math.Exp(num - 2*den - float64(2*n)*math.Ln2 - math.Log(float64(2*n+1)))
}

// Arcsin expands the inverse sine for |x| < 1.
func Arcsin[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		return series.Term[T]{Coefficient: T(asinCoefficient(n)), Exponent: 2*n + 1}
	})
}

// Arcsinh expands the inverse hyperbolic sine for |x| < 1. Same magnitudes
// as the inverse sine with alternating signs.
func Arcsinh[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		c := asinCoefficient(n)
		if n%2 == 1 {
			c = -c
		}
		return series.Term[T]{Coefficient: T(c), Exponent: 2*n + 1}
	})
}

// Arctan expands the inverse tangent for |x| < 1: (-1)^n x^(2n+1) / (2n+1).
func Arctan[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		c := 1 / float64(2*n+1)
		if n%2 == 1 {
			c = -c
		}
		return series.Term[T]{Coefficient: T(c), Exponent: 2*n + 1}
	})
}

// Arctanh expands the inverse hyperbolic tangent for |x| < 1:
// x^(2n+1) / (2n+1).
func Arctanh[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		return series.Term[T]{Coefficient: T(1 / float64(2*n+1)), Exponent: 2*n + 1}
	})
}
