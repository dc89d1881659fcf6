package partition

// CentroidTable holds the soft centroids built from overlapping candidate
// membership: every point contributes to the centroid of every cell it
// lists, not only the cell it eventually resolves to.
//
// Cells preserves first-appearance order across the candidate map, which is
// the deterministic iteration order for anything derived from the table.
type CentroidTable struct {
	// Cells lists the distinct cell identifiers in first-appearance order.
	Cells []int

	// Means maps cell identifier → mean feature vector of its soft members.
	Means map[int][]float64

	// Counts maps cell identifier → number of soft members.
	Counts map[int]int
}

// ScoreResult holds the outcome of scoring one hard partition.
type ScoreResult struct {
	// AIC is the Akaike Information Criterion of the partition.
	// Higher is better under this derivation; callers select the arg-max.
	AIC float64

	// K is the number of distinct clusters after re-indexing.
	K int

	// SigmaSq is the pooled per-dimension variance estimate SSE / (d·(N−k)).
	SigmaSq float64

	// ClusterSizes[j] is the member count of cluster j (contiguous indices,
	// first-occurrence order). All entries are ≥ 1 and sum to N.
	ClusterSizes []int
}

// Evaluation bundles the resolver output with its score, as returned by
// Evaluate.
type Evaluation struct {
	// Labels[i] is the resolved cell identifier for point i.
	Labels []int

	// Score is the AIC summary of the hard partition.
	Score ScoreResult

	// Centroids is the soft centroid table, populated only when
	// Options.ReturnCentroids is set; nil otherwise.
	Centroids *CentroidTable
}
