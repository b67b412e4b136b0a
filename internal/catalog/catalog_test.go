package catalog

import (
	"math"
	"sort"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/taylab/internal/expand"
)

func TestEntriesMatchReferences(t *testing.T) {
	g := NewWithT(t)

	// 0.4 sits inside every entry's radius of convergence.
	const x = 0.4
	for _, name := range Names() {
		e, err := Lookup(name)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(e.Reference).NotTo(BeNil(), name)

		res := expand.NewConvergence[float64](1e-12).Evaluate(e.Series, x)
		g.Expect(res.Flags.Clean()).To(BeTrue(), "%s flagged %v", name, res.Flags)
		g.Expect(res.Value).To(BeNumerically("~", e.Reference(x), 1e-9), name)
	}
}

func TestTrigBounds(t *testing.T) {
	g := NewWithT(t)

	for _, name := range []string{"sin", "cos"} {
		e, err := Lookup(name)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(e.Bound).NotTo(BeNil(), name)

		res := expand.NewGuaranteed(1e-10, e.Bound).Evaluate(e.Series, 1.0)
		g.Expect(res.Flags.Clean()).To(BeTrue(), "%s flagged %v", name, res.Flags)
		g.Expect(res.Value).To(BeNumerically("~", e.Reference(1.0), 1e-10), name)
	}

	geo, err := Lookup("geometric")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(geo.Bound).To(BeNil())
}

func TestGeometricDivergesOutsideRadius(t *testing.T) {
	g := NewWithT(t)

	e, err := Lookup("geometric")
	g.Expect(err).NotTo(HaveOccurred())

	res := expand.NewConvergence[float64](1e-3).Evaluate(e.Series, 2.0)
	g.Expect(res.Flags.Has(expand.DivergenceSuspected)).To(BeTrue())
	g.Expect(res.Flags.Has(expand.MaxIterationsReached)).To(BeTrue())
}

func TestBesselOrders(t *testing.T) {
	g := NewWithT(t)

	for nu := 0; nu <= 4; nu++ {
		e := Bessel(nu)
		res := expand.NewConvergence[float64](1e-12).Evaluate(e.Series, 1.5)
		g.Expect(res.Value).To(BeNumerically("~", math.Jn(nu, 1.5), 1e-9), "nu=%d", nu)
	}

	neg := Bessel(-1)
	res := expand.NewConvergence[float64](1e-12).Evaluate(neg.Series, 1.5)
	g.Expect(res.Value).To(BeNumerically("~", -math.J1(1.5), 1e-9))
}

func TestLookupUnknown(t *testing.T) {
	g := NewWithT(t)

	_, err := Lookup("zeta")
	g.Expect(err).To(MatchError("unknown series: zeta"))
}

func TestNamesSorted(t *testing.T) {
	g := NewWithT(t)

	names := Names()
	g.Expect(sort.StringsAreSorted(names)).To(BeTrue())
	g.Expect(names).To(ContainElements("exp", "sin", "cos", "besselj0", "erf"))
	g.Expect(names).To(HaveLen(14))
}

func TestRadiusMetadata(t *testing.T) {
	g := NewWithT(t)

	for _, name := range []string{"geometric", "log1p", "arcsin", "arcsinh", "arctan", "arctanh"} {
		e, err := Lookup(name)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(e.Radius).To(Equal(1.0), name)
	}
	for _, name := range []string{"exp", "sin", "cosh", "erf", "besselj1"} {
		e, err := Lookup(name)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(math.IsInf(e.Radius, 1)).To(BeTrue(), name)
	}
}

func TestAsinCoefficientDeepOrders(t *testing.T) {
	g := NewWithT(t)

	c := asinCoefficient(100)
	g.Expect(math.IsNaN(c)).To(BeFalse())
	g.Expect(c).To(BeNumerically("~", 2.8034e-4, 1e-7))

	g.Expect(asinCoefficient(0)).To(BeNumerically("~", 1.0, 1e-12))
	g.Expect(asinCoefficient(1)).To(BeNumerically("~", 1.0/6, 1e-12))
	g.Expect(asinCoefficient(2)).To(BeNumerically("~", 0.075, 1e-12))
}
