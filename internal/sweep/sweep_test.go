package sweep_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/taylab/internal/catalog"
	"github.com/san-kum/taylab/internal/expand"
	"github.com/san-kum/taylab/internal/metrics"
	"github.com/san-kum/taylab/internal/sweep"
)

var _ = Describe("Run", func() {
	var sw *sweep.Sweep

	BeforeEach(func() {
		sw = sweep.New(catalog.Geometric[float64](), expand.NewConvergence[float64](1e-12))
	})

	It("covers the interval in order regardless of worker count", func() {
		res, err := sw.Run(context.Background(), sweep.Config{From: -0.5, To: 0.5, Points: 101, Workers: 4})
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Xs).To(HaveLen(101))
		Expect(res.Xs[0]).To(Equal(-0.5))
		Expect(res.Xs[100]).To(Equal(0.5))

		for i, x := range res.Xs {
			Expect(res.Values[i]).To(BeNumerically("~", 1/(1-x), 1e-9), "x=%v", x)
		}
	})

	It("matches the single-worker result exactly", func() {
		cfg := sweep.Config{From: -0.5, To: 0.5, Points: 64}

		cfg.Workers = 1
		serial, err := sw.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		cfg.Workers = 8
		parallel, err := sw.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(parallel.Values).To(Equal(serial.Values))
		Expect(parallel.Terms).To(Equal(serial.Terms))
	})

	It("flags every point outside the radius of convergence", func() {
		res, err := sw.Run(context.Background(), sweep.Config{From: 1.5, To: 2.0, Points: 5, Workers: 2})
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Clean()).To(BeZero())
		for _, f := range res.Flags {
			Expect(f.Has(expand.DivergenceSuspected)).To(BeTrue())
			Expect(f.Has(expand.MaxIterationsReached)).To(BeTrue())
		}
	})

	It("aggregates metric stats deterministically", func() {
		sw.AddMetric(metrics.NewCleanRate())
		sw.AddMetric(metrics.NewTermMean())

		res, err := sw.Run(context.Background(), sweep.Config{From: -0.5, To: 0.5, Points: 11, Workers: 3})
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Stats).To(HaveKeyWithValue("clean_rate", 1.0))
		Expect(res.Stats["mean_terms"]).To(BeNumerically(">", 1))
	})

	It("evaluates a single-point sweep at the interval start", func() {
		res, err := sw.Run(context.Background(), sweep.Config{From: 0.25, To: 0.75, Points: 1})
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Xs).To(Equal([]float64{0.25}))
		Expect(res.Values[0]).To(BeNumerically("~", 1/(1-0.25), 1e-9))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sw.Run(ctx, sweep.Config{From: 0, To: 0.5, Points: 100, Workers: 2})
		Expect(err).To(MatchError(context.Canceled))
	})

	It("rejects an inverted range", func() {
		_, err := sw.Run(context.Background(), sweep.Config{From: 1, To: 0, Points: 10})
		Expect(err).To(HaveOccurred())
	})

	It("rejects an empty sweep", func() {
		_, err := sw.Run(context.Background(), sweep.Config{From: 0, To: 1, Points: 0})
		Expect(err).To(HaveOccurred())
	})
})
