// Package mapscore grades Mapper-style overlapping cover assignments:
// resolve every data point to exactly one cover cell, then score the
// resulting hard partition with a Gaussian-mixture-style AIC.
//
// 🚀 What is mapscore?
//
//	The Mapper algorithm assigns points to overlapping cover cells, so a
//	point may be a candidate member of several cells at once. Before a
//	partition can be compared across hyperparameter settings it must be
//	hardened — every point resolved to a single cell — and summarized by
//	one number. mapscore does exactly that, and nothing else:
//	  • Resolver: nearest-centroid hard assignment over candidate cells
//	  • Scorer:   AIC of the hard partition (higher is better)
//	  • Sweep:    parallel arg-max selection across a hyperparameter grid
//
// ✨ Why choose mapscore?
//
//   - Pure functions – explicit inputs, explicit outputs, no shared state
//   - Strict sentinels – every failure is an errors.Is-matchable sentinel
//   - Deterministic – first-listed tie-breaks, stable cluster re-indexing
//   - Failure isolation – one bad configuration never aborts a sweep
//
// Everything is organized under three subpackages:
//
//	dataset/   — validated feature matrices (gonum-backed)
//	partition/ — candidate-cell resolution + AIC scoring
//	sweep/     — parallel hyperparameter grid evaluation
//
// Cover construction, persistent homology, plotting and data generation
// are deliberately out of scope: mapscore consumes candidate-cell sets
// produced by whatever Mapper implementation you already use.
//
//	go get github.com/katalvlaran/mapscore
package mapscore
