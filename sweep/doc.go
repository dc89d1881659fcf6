// Package sweep evaluates a grid of Mapper hyperparameter configurations in
// parallel and selects the one whose hard partition scores the highest AIC.
//
// 🚀 What is sweep?
//
//	A Mapper pipeline has knobs — cover granularity, overlap fraction,
//	clustering algorithm — and each setting produces a different candidate
//	cell map. sweep owns the outer loop:
//	  • fit every configuration (your FitFunc — cover construction stays
//	    on your side of the boundary)
//	  • resolve + score each result via the partition package
//	  • collect per-configuration outcomes and take the arg-max AIC
//
// ✨ Key guarantees:
//
//   - Failure isolation – a configuration that fails to fit, resolve or
//     score is recorded and excluded; it never aborts the sweep (and is
//     never retried: the computation is deterministic, a retry would
//     reproduce the same failure)
//   - Determinism – equal AIC prefers the lower grid index
//   - Bounded parallelism – a goroutine pool (ants) sized by option,
//     defaulting to GOMAXPROCS capped by the grid size
//   - Cancellation – a cancelled context stops dispatch; skipped entries
//     carry ctx.Err() in their Outcome
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mapscore/sweep"
//
//	res, err := sweep.Run(ctx, X, configs, fit)
//	if err != nil {
//	  // ErrNoConfigs / ErrNilFit / ErrAllConfigsFailed
//	}
//	best := res.Best // highest-AIC configuration
//
// Performance:
//
//   - O(G/P) wall-clock for G configurations on P workers, each
//     O(fit) + O(N·d·c̄) resolve/score.
package sweep
