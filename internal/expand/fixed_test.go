package expand

import (
	"math"
	"testing"

	"github.com/san-kum/taylab/internal/series"
)

func geometricSummand(n int) series.Term[float64] {
	return series.Term[float64]{Coefficient: 1, Exponent: n}
}

func expSummand(n int) series.Term[float64] {
	return series.Term[float64]{Coefficient: 1 / series.Gamma(float64(n+1)), Exponent: n}
}

func sinSummand(n int) series.Term[float64] {
	sign := 1.0
	if n%2 == 1 {
		sign = -1
	}
	return series.Term[float64]{Coefficient: sign / series.Gamma(float64(2*n + 2)), Exponent: 2*n + 1}
}

func cosSummand(n int) series.Term[float64] {
	sign := 1.0
	if n%2 == 1 {
		sign = -1
	}
	return series.Term[float64]{Coefficient: sign / series.Gamma(float64(2*n + 1)), Exponent: 2 * n}
}

func TestFixedOrderExp(t *testing.T) {
	s := series.New(expSummand)
	res := NewFixedOrder[float64](20).Evaluate(s, 1.0)

	if math.Abs(res.Value-math.E) > 1e-9 {
		t.Errorf("exp(1) error too large: got %.17g, expected %.17g", res.Value, math.E)
	}
	if !res.Flags.Clean() {
		t.Errorf("expected clean flags, got %v", res.Flags)
	}
	if res.Terms != 21 {
		t.Errorf("expected 21 terms, got %d", res.Terms)
	}
}

func TestFixedOrderGeometricPartialSum(t *testing.T) {
	s := series.New(geometricSummand)
	res := NewFixedOrder[float64](10).Evaluate(s, 2.0)

	if math.Abs(res.Value-2047) > 1e-9 {
		t.Errorf("partial sum mismatch: got %v, expected 2047", res.Value)
	}
}

func TestFixedOrderStartOffset(t *testing.T) {
	s := series.Series[float64]{
		Summand: func(n int) series.Term[float64] {
			return series.Term[float64]{Coefficient: float64(n), Exponent: n}
		},
		Start: 3,
	}
	res := NewFixedOrder[float64](5).Evaluate(s, 1.0)

	if math.Abs(res.Value-12) > 1e-12 {
		t.Errorf("expected 3+4+5=12, got %v", res.Value)
	}
	if res.Terms != 3 {
		t.Errorf("expected 3 terms, got %d", res.Terms)
	}
}

func TestFixedOrderEmptyRange(t *testing.T) {
	s := series.New(geometricSummand)
	res := NewFixedOrder[float64](-1).Evaluate(s, 2.0)

	if res.Value != 0 {
		t.Errorf("empty range should sum to zero, got %v", res.Value)
	}
	if res.Terms != 0 {
		t.Errorf("expected 0 terms, got %d", res.Terms)
	}
}

func TestFixedOrderNoDiagnostics(t *testing.T) {
	s := series.New(func(n int) series.Term[float64] {
		return series.Term[float64]{Coefficient: math.MaxFloat64, Exponent: 0}
	})
	res := NewFixedOrder[float64](1).Evaluate(s, 1.0)

	if !math.IsInf(res.Value, 1) {
		t.Fatalf("expected overflow to +Inf, got %v", res.Value)
	}
	if !res.Flags.Clean() {
		t.Errorf("fixed-order evaluation never diagnoses, got %v", res.Flags)
	}
}

func TestTermValueZeroCoefficientAtCenter(t *testing.T) {
	// x^2 differentiated three times vanishes: coefficient 0, exponent -1.
	s := series.New(func(n int) series.Term[float64] {
		return series.Term[float64]{Coefficient: 1, Exponent: 2}
	}).Differentiate(3)

	if v := TermValue(s, 0, 0.0); v != 0 {
		t.Errorf("vanished term at the center should evaluate to zero, got %v", v)
	}
	res := NewFixedOrder[float64](0).Evaluate(s, 0.0)
	if math.IsNaN(res.Value) {
		t.Error("vanished term poisoned the sum with 0*Inf")
	}
}

func TestDifferentiateZeroOrderSameValues(t *testing.T) {
	s := series.New(expSummand)
	d := s.Differentiate(0)
	eval := NewFixedOrder[float64](15)

	for _, x := range []float64{-2, -0.5, 0, 1, 3} {
		got := eval.Evaluate(d, x).Value
		want := eval.Evaluate(s, x).Value
		if got != want {
			t.Errorf("order-0 derivative differs from original at x=%v: got %v, expected %v", x, got, want)
		}
	}
}

func TestDifferentiateFourTimesRoundTrip(t *testing.T) {
	cos := series.New(cosSummand)
	eval := NewFixedOrder[float64](200)

	got := eval.Evaluate(cos.Differentiate(4), 2.0).Value
	want := eval.Evaluate(cos, 2.0).Value

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("fourth derivative should reproduce cosine: got %.17g, expected %.17g", got, want)
	}
}

func TestFixedOrderFloat32(t *testing.T) {
	s := series.New(func(n int) series.Term[float32] {
		return series.Term[float32]{Coefficient: 1, Exponent: n}
	})
	res := NewFixedOrder[float32](10).Evaluate(s, 0.5)

	if math.Abs(float64(res.Value)-1.9990234375) > 1e-6 {
		t.Errorf("float32 geometric sum mismatch: got %v, expected 1.9990234375", res.Value)
	}
}
