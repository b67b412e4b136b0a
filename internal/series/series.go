package series

// Term is one summand of a power series: Coefficient * (x - center)^Exponent.
type Term[T Real] struct {
	Coefficient T
	Exponent    int
}

// Summand maps a term index n >= Start to the term it contributes. It must
// be deterministic and side-effect free.
type Summand[T Real] func(n int) Term[T]

// Series is an immutable description of a power series expanded around
// Center, with term indices running upward from Start. The zero values of
// Start and Center give a Maclaurin series indexed from 0.
type Series[T Real] struct {
	Summand Summand[T]
	Start   int
	Center  T
}

// New returns a Maclaurin series (center 0, start 0) over the given summand.
func New[T Real](summand Summand[T]) Series[T] {
	return Series[T]{Summand: summand}
}

// Differentiate returns the series obtained by differentiating term-wise
// order times. Each term's coefficient is scaled by the falling product
// p(p-1)...(p-order+1) of its exponent p, and the exponent drops by order.
// Differentiating past a term's exponent legitimately zeroes its
// coefficient: high derivatives of low-order terms vanish.
//
// order <= 0 returns the receiver unchanged. The operation is purely
// algebraic and cannot fail; whether the derivative series still converges
// where the original did is the caller's concern.
func (s Series[T]) Differentiate(order int) Series[T] {
	if order <= 0 {
		return s
	}
	inner := s.Summand
	d := s
	d.Summand = func(n int) Term[T] {
		t := inner(n)
		for k := 0; k < order; k++ {
			t.Coefficient *= T(t.Exponent - k)
		}
		t.Exponent -= order
		return t
	}
	return d
}
