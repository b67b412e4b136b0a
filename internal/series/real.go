package series

import "math"

// Real constrains the scalar types a series can be evaluated over. The
// engine needs arithmetic, real exponentiation, the gamma function and
// NaN/Inf classification from its scalar type; helpers below provide those
// by routing through float64, so a higher-precision float type can be
// substituted without touching the algorithms.
type Real interface {
	~float32 | ~float64
}

func Abs[T Real](x T) T {
	return T(math.Abs(float64(x)))
}

func Pow[T Real](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// Gamma evaluates Γ(x). Factorials are taken as Γ(n+1) so integer and
// non-integer arguments stay in the same scalar type.
func Gamma[T Real](x T) T {
	return T(math.Gamma(float64(x)))
}

func IsNaN[T Real](x T) bool {
	return math.IsNaN(float64(x))
}

func IsInf[T Real](x T) bool {
	return math.IsInf(float64(x), 0)
}
