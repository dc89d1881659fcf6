// Package partition - validation utilities shared by Resolve and Score.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Everything is detected before any numeric work starts (fail fast,
//     never partial results).
package partition

import "github.com/katalvlaran/mapscore/dataset"

// validateResolve verifies the resolver inputs: matrix presence, candidate
// map length, and per-point candidate-list contracts.
//
// Contract:
//   - X non-nil (its own construction guarantees N ≥ 1, d ≥ 1).
//   - len(candidates) == X.N().
//   - every candidate list is non-empty, non-negative, duplicate-free.
//
// Complexity: O(Σ|candidates[i]|²) worst case; candidate lists are small
// (a handful of overlapping cover cells), so the quadratic duplicate scan
// beats allocating a set per point.
func validateResolve(X *dataset.Matrix, candidates [][]int) error {
	if X == nil || candidates == nil {
		return ErrNilInput
	}
	if len(candidates) != X.N() {
		return ErrLengthMismatch
	}

	var i, a, b int
	for i = range candidates {
		if len(candidates[i]) == 0 {
			return ErrEmptyCandidates
		}
		for a = range candidates[i] {
			if candidates[i][a] < 0 {
				return ErrNegativeCell
			}
			for b = 0; b < a; b++ {
				if candidates[i][b] == candidates[i][a] {
					return ErrDuplicateCell
				}
			}
		}
	}

	return nil
}

// validateScore verifies the scorer inputs: matrix presence, label slice
// length, and identifier non-negativity.
//
// Complexity: O(N).
func validateScore(X *dataset.Matrix, labels []int) error {
	if X == nil || labels == nil {
		return ErrNilInput
	}
	if len(labels) != X.N() {
		return ErrLengthMismatch
	}
	for _, lab := range labels {
		if lab < 0 {
			return ErrNegativeCell
		}
	}

	return nil
}
