// Package expand evaluates power series numerically under three truncation
// policies of increasing rigor:
//
//   - [FixedOrder]: sum through an explicit terminal index, no diagnostics
//   - [Convergence]: iterate until consecutive partial sums settle,
//     with pathology detection and a divergence heuristic
//   - [Guaranteed]: solve for the minimal truncation order via a
//     caller-supplied remainder bound (Taylor's theorem)
//
// Every policy satisfies [Evaluator] and returns a usable value: pathologies
// surface as [Flags] on the [Result], never as errors or panics.
//
// # Example
//
//	eval := expand.NewConvergence[float64](1e-12)
//	res := eval.Evaluate(catalog.Sin[float64](), 1.0)
//	if !res.Flags.Clean() {
//	    // inspect res.Flags
//	}
//
// # Thread Safety
//
// Evaluations allocate only local state and may run concurrently from
// independent goroutines as long as the summand and bound closures are free
// of side effects and no observers are attached. There is no cancellation
// on the evaluation path; callers needing it should wrap evaluations at a
// higher layer such as the sweep package.
package expand
