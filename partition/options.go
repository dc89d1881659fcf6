package partition

// Options configures Resolve and Evaluate.
//
// Fields:
//   - ReturnCentroids — if true, Resolve also returns the soft CentroidTable
//     it built, for diagnostics or reuse. The table is freshly allocated per
//     call; retaining it never aliases later calls.
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	ReturnCentroids bool
}

// DefaultOptions returns the canonical defaults: no centroid table.
func DefaultOptions() Options {
	return Options{
		ReturnCentroids: false,
	}
}
