// Package partition - the Partition Scorer (AIC).
//
// Design principles:
//   - Stable re-indexing: distinct label values map to contiguous cluster
//     indices in first-occurrence order, so the score depends only on the
//     partition structure, never on label identity.
//   - Hard centroids: recomputed from the resolved partition; deliberately
//     distinct from the soft centroids Resolve used.
//   - Strict sentinels; fail fast, no partial results.
package partition

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mapscore/dataset"
)

// Score computes the Akaike Information Criterion of a hard partition under
// a k-component Gaussian mixture with equal diagonal covariance and a
// multinomial assignment model:
//
//	aic = 2·Σ_j n_j·ln(n_j) − 2·N·ln(N) − N·d·ln(2π·σ²) − d·(N−k) − 2·k·(d+1)
//
// where σ² is the pooled variance SSE / (d·(N−k)).
//
// Higher is better under this derivation: callers select the arg-max over
// candidate configurations. Note the sign differs from the textbook
// "lower-is-better" AIC; the arithmetic above is preserved exactly as
// derived and must not be "corrected" without revisiting every consumer's
// selection rule.
//
// Contracts:
//   - X is an N×d matrix; labels has length N with non-negative values.
//   - Label values need not be contiguous; only the grouping matters.
//
// Errors:
//   - ErrNilInput / ErrLengthMismatch / ErrNegativeCell on malformed input.
//   - ErrTooFewPoints when N − k ≤ 0 (no degrees of freedom for σ²).
//   - ErrEmptyCluster if re-indexing ever yields an empty cluster (defensive).
//   - ErrZeroVariance when σ² ≤ 0 (all points coincide with their centroid).
//
// Complexity: O(N·d) time, O(k·d) space.
func Score(X *dataset.Matrix, labels []int) (ScoreResult, error) {
	if err := validateScore(X, labels); err != nil {
		return ScoreResult{}, err
	}

	var (
		n = X.N()
		d = X.Dim()
	)

	// Stage 1: re-index distinct labels to 0..k-1 in first-occurrence order
	// and group member indices per cluster.
	var (
		index   = make(map[int]int)
		members [][]int
		j       int
		ok      bool
	)
	for i, lab := range labels {
		if j, ok = index[lab]; !ok {
			j = len(members)
			index[lab] = j
			members = append(members, nil)
		}
		members[j] = append(members[j], i)
	}

	k := len(members)
	if n-k <= 0 {
		return ScoreResult{}, ErrTooFewPoints
	}

	// Stage 2: sizes and hard centroids per cluster.
	var (
		sizes     = make([]int, k)
		centroids = make([][]float64, k)
		c         []float64
	)
	for j = 0; j < k; j++ {
		if len(members[j]) == 0 {
			return ScoreResult{}, ErrEmptyCluster
		}
		sizes[j] = len(members[j])
		c = make([]float64, d)
		for _, i := range members[j] {
			floats.Add(c, rowView(X, i))
		}
		floats.Scale(1/float64(sizes[j]), c)
		centroids[j] = c
	}

	// Stage 3: pooled variance σ² = SSE / (d·(N−k)).
	var sse, dist float64
	for i, lab := range labels {
		dist = floats.Distance(rowView(X, i), centroids[index[lab]], 2)
		sse += dist * dist
	}
	sigmaSq := sse / (float64(d) * float64(n-k))
	if sigmaSq <= 0 {
		return ScoreResult{}, ErrZeroVariance
	}

	// Stage 4: the AIC itself.
	var sizeTerm float64 // Σ_j n_j·ln(n_j)
	for _, sz := range sizes {
		sizeTerm += float64(sz) * math.Log(float64(sz))
	}
	var (
		nf  = float64(n)
		df  = float64(d)
		kf  = float64(k)
		aic = 2*sizeTerm -
			2*nf*math.Log(nf) -
			nf*df*math.Log(2*math.Pi*sigmaSq) -
			df*(nf-kf) -
			2*kf*(df+1)
	)

	return ScoreResult{
		AIC:          aic,
		K:            k,
		SigmaSq:      sigmaSq,
		ClusterSizes: sizes,
	}, nil
}

// Evaluate runs Resolve then Score in one call, bundling labels, score and
// (optionally) the soft centroid table.
//
// Contracts and errors: union of Resolve and Score; the first failure wins
// and no partial Evaluation is returned.
//
// Complexity: O(N·d·c̄).
func Evaluate(X *dataset.Matrix, candidates [][]int, opts *Options) (Evaluation, error) {
	labels, centroids, err := Resolve(X, candidates, opts)
	if err != nil {
		return Evaluation{}, err
	}

	score, err := Score(X, labels)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{
		Labels:    labels,
		Score:     score,
		Centroids: centroids,
	}, nil
}
