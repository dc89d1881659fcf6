// Package partition resolves overlapping Mapper cover assignments into a
// hard partition and scores that partition with a Gaussian-mixture-style
// Akaike Information Criterion (AIC).
//
// 🚀 What is partition?
//
//	A Mapper cover assigns each data point to one or more candidate cells.
//	To compare covers across hyperparameter settings you need two steps:
//	  • Resolve — pick exactly one cell per point, by nearest soft centroid
//	    (a point contributes to the centroid of every cell it lists, not
//	    only the one it ends up in). Ties prefer the first-listed cell.
//	  • Score — re-index the resolved labels into contiguous clusters,
//	    estimate a pooled per-dimension variance, and compute the AIC of a
//	    k-component equal-diagonal-covariance Gaussian hard clustering.
//
// ✨ Key guarantees:
//
//   - Pure functions – no shared state, safe for concurrent callers
//   - Deterministic – first-listed tie-break, first-occurrence re-indexing
//   - Strict sentinels – ErrInvalidInput vs ErrDegenerate classes, with
//     granular sentinels matched via errors.Is for both class and cause
//   - Higher AIC is better here; callers select the arg-max (see score.go
//     for the sign-convention note)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mapscore/partition"
//
//	labels, _, err := partition.Resolve(X, candidates, nil)
//	if err != nil { ... }
//	res, err := partition.Score(X, labels)
//	if err != nil { ... }         // ErrDegenerate ⇒ drop this configuration
//	fmt.Println(res.AIC, res.K)
//
// Performance:
//
//   - Resolve: O(N·d·c̄) where c̄ is the mean candidate-list length
//   - Score:   O(N·d)
package partition
