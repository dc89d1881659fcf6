// Package partition: sentinel error set (two classes, granular causes).
//
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user input.
//
// The taxonomy has exactly two classes:
//
//   - ErrInvalidInput — malformed shapes, empty candidate sets, length
//     mismatches. Detected before any numeric work; never silently coerced.
//   - ErrDegenerate — the clustering outcome itself is unusable (too few
//     points per cluster count, zero pooled variance). Surfaced distinctly
//     because it signals a problem with the configuration under evaluation,
//     not with the caller's data shapes.
//
// Granular sentinels wrap their class sentinel, so both
// errors.Is(err, ErrInvalidInput) and errors.Is(err, ErrEmptyCandidates)
// hold for the same error value.
package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the class sentinel for caller-side contract
	// violations: wrong shapes, missing candidates, mismatched lengths.
	ErrInvalidInput = errors.New("partition: invalid input")

	// ErrDegenerate is the class sentinel for clustering outcomes on which
	// the AIC is undefined. Sweeps must exclude the configuration, not abort.
	ErrDegenerate = errors.New("partition: degenerate clustering")
)

var (
	// ErrNilInput — nil matrix, nil candidate map, or nil label slice.
	ErrNilInput = fmt.Errorf("%w: nil matrix or assignment", ErrInvalidInput)

	// ErrLengthMismatch — candidates/labels length differs from X.N().
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch with matrix rows", ErrInvalidInput)

	// ErrEmptyCandidates — some point has no candidate cell at all.
	ErrEmptyCandidates = fmt.Errorf("%w: empty candidate set", ErrInvalidInput)

	// ErrNegativeCell — cell identifiers must be non-negative integers.
	ErrNegativeCell = fmt.Errorf("%w: negative cell identifier", ErrInvalidInput)

	// ErrDuplicateCell — a point lists the same cell identifier twice;
	// candidate lists are sets and duplicates would skew soft centroids.
	ErrDuplicateCell = fmt.Errorf("%w: duplicate cell in candidate set", ErrInvalidInput)
)

var (
	// ErrTooFewPoints — N − k ≤ 0: pooled variance has no degrees of freedom.
	// Covers the single-point dataset (N=1, k=1) and the k=N partition.
	ErrTooFewPoints = fmt.Errorf("%w: need more points than clusters", ErrDegenerate)

	// ErrEmptyCluster — a cluster has zero members after re-indexing.
	// Cannot occur for labels produced by first-occurrence re-indexing;
	// checked anyway so the scorer never divides by zero.
	ErrEmptyCluster = fmt.Errorf("%w: empty cluster after re-indexing", ErrDegenerate)

	// ErrZeroVariance — pooled variance ≤ 0: every point coincides with its
	// cluster centroid, so the Gaussian log-likelihood diverges.
	ErrZeroVariance = fmt.Errorf("%w: pooled variance is not positive", ErrDegenerate)
)
