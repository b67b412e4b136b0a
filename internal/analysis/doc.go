// Package analysis inspects how a truncated expansion approaches its limit.
//
// The package works on partial-sum histories rather than live evaluations:
//
//   - [Partials]: the first n partial sums of a series at a point
//   - [Deltas]: absolute step sizes between successive partial sums
//   - [Rate]: tail estimate of the ratio between successive deltas
//   - [Aitken]: delta-squared sequence acceleration
//
// # Convergence Rate
//
// A rate below 1 means the partial sums are contracting at the query point:
//
//	rate := analysis.Rate(analysis.Deltas(partials))
//	if rate >= 1 {
//	    // Deltas are not shrinking; x likely sits outside the radius.
//	}
package analysis
