// Package partition - the Cluster-Assignment Resolver.
//
// Design principles:
//   - Soft centroids: a point contributes to every cell it lists, so each
//     centroid reflects the full overlapping membership of its cell.
//   - Determinism: candidate order is the tie-break order; strict "<" in
//     the arg-min keeps the first-listed candidate on exact distance ties.
//   - Strict sentinels from errors.go; pure function of its inputs.
package partition

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mapscore/dataset"
)

// Resolve assigns every point to exactly one of its candidate cells by
// nearest soft centroid, producing a hard partition of the dataset.
//
// Contracts:
//   - X is an N×d matrix, candidates has length N, every candidate list is
//     a non-empty, duplicate-free set of non-negative cell identifiers.
//   - labels[i] is always one of candidates[i].
//   - Exact distance ties resolve to the earliest-listed candidate.
//   - A single-candidate point skips distance computation entirely; the
//     result is identical to the general rule.
//
// The soft CentroidTable is returned only when opts.ReturnCentroids is set
// (nil *Options means DefaultOptions()).
//
// Errors: ErrNilInput, ErrLengthMismatch, ErrEmptyCandidates,
// ErrNegativeCell, ErrDuplicateCell — all before any numeric work.
//
// Complexity: O(N·d·c̄) time where c̄ is the mean candidate-list length,
// O(C·d) space for C distinct cells.
func Resolve(X *dataset.Matrix, candidates [][]int, opts *Options) ([]int, *CentroidTable, error) {
	if err := validateResolve(X, candidates); err != nil {
		return nil, nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	table := buildSoftCentroids(X, candidates)

	var (
		n      = X.N()
		labels = make([]int, n)
		i      int
	)
	for i = 0; i < n; i++ {
		cand := candidates[i]
		if len(cand) == 1 {
			// Sole candidate: the general arg-min over one element.
			labels[i] = cand[0]
			continue
		}

		var (
			row     = rowView(X, i)
			best    = cand[0]
			minDist = math.Inf(1)
			dist    float64
		)
		for _, id := range cand {
			dist = floats.Distance(row, table.Means[id], 2)
			// Strict "<": on exact ties the earliest-listed candidate,
			// scanned first, keeps the assignment.
			if dist < minDist {
				minDist = dist
				best = id
			}
		}
		labels[i] = best
	}

	if !o.ReturnCentroids {
		return labels, nil, nil
	}

	return labels, table, nil
}

// buildSoftCentroids accumulates, for every cell identifier appearing in any
// candidate list, the mean feature vector over all points that list it.
//
// Cells records first-appearance order, giving derived iteration a stable,
// input-determined sequence.
//
// Complexity: O(Σ|candidates[i]|·d).
func buildSoftCentroids(X *dataset.Matrix, candidates [][]int) *CentroidTable {
	var (
		d     = X.Dim()
		table = &CentroidTable{
			Means:  make(map[int][]float64),
			Counts: make(map[int]int),
		}
		row []float64
		sum []float64
		ok  bool
	)

	for i := range candidates {
		row = rowView(X, i)
		for _, id := range candidates[i] {
			if sum, ok = table.Means[id]; !ok {
				sum = make([]float64, d)
				table.Means[id] = sum
				table.Cells = append(table.Cells, id)
			}
			floats.Add(sum, row)
			table.Counts[id]++
		}
	}

	// Sums → means. Counts are ≥ 1 for every recorded cell.
	for _, id := range table.Cells {
		floats.Scale(1/float64(table.Counts[id]), table.Means[id])
	}

	return table
}

// rowView fetches a row already proven in range by validation; a failure
// here is a programmer error, not user input, hence the panic.
func rowView(X *dataset.Matrix, i int) []float64 {
	row, err := X.Row(i)
	if err != nil {
		panic(err)
	}

	return row
}
