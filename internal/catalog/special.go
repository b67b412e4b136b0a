package catalog

import (
	"math"

	"github.com/san-kum/taylab/internal/series"
)

// Erf expands the Gauss error function:
// 2/sqrt(pi) * (-1)^n x^(2n+1) / (n! (2n+1)).
func Erf[T series.Real]() series.Series[T] {
	return series.New(func(n int) series.Term[T] {
		c := 2 / (math.Sqrt(math.Pi) * math.Gamma(float64(n+1)) * float64(2*n+1))
		if n%2 == 1 {
			c = -c
		}
		return series.Term[T]{Coefficient: T(c), Exponent: 2*n + 1}
	})
}

// BesselJ expands the Bessel function of the first kind of integer order
// nu. Term m carries (-1)^m x^(2m+nu) / (m! (m+nu)! 2^(2m+nu)). Negative
// orders reduce through the reflection J(-n) = (-1)^n J(n).
func BesselJ[T series.Real](nu int) series.Series[T] {
	flip := false
	if nu < 0 {
		nu = -nu
		flip = nu%2 == 1
	}
	return series.New(func(m int) series.Term[T] {
		c := 1 / (math.Gamma(float64(m+1)) * math.Gamma(float64(m+nu+1)) * math.Pow(2, float64(2*m+nu)))
		if m%2 == 1 {
			c = -c
		}
		if flip {
			c = -c
		}
		return series.Term[T]{Coefficient: T(c), Exponent: 2*m + nu}
	})
}
