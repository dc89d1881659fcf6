package partition_test

import (
	"fmt"

	"github.com/katalvlaran/mapscore/dataset"
	"github.com/katalvlaran/mapscore/partition"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleResolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three points where the middle one sits in the overlap of two cover
//	cells, exactly midway between both soft centroids.
//
// Effect:
//
//	Exact ties resolve to the first-listed candidate, so the overlap point
//	joins cell 0.
//
// Complexity: O(N·d·c̄)
func ExampleResolve() {
	X, _ := dataset.New([][]float64{{0}, {10}, {5}})
	candidates := [][]int{{0}, {1}, {0, 1}}

	labels, _, err := partition.Resolve(X, candidates, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("labels=%v\n", labels)
	// Output:
	// labels=[0 1 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvaluate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two well-separated pairs, one candidate cell each: resolve to a hard
//	two-cluster partition and score it.
//	  X = [0, 1, 9, 10], candidates = [{0}, {0}, {1}, {1}]
//
// Effect:
//
//	k=2, cluster sizes [2 2], pooled variance 0.5; the AIC summarizes the
//	partition (higher is better — sweep callers take the arg-max).
//
// Complexity: O(N·d)
func ExampleEvaluate() {
	X, _ := dataset.New([][]float64{{0}, {1}, {9}, {10}})
	candidates := [][]int{{0}, {0}, {1}, {1}}

	ev, err := partition.Evaluate(X, candidates, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("labels=%v\nk=%d sizes=%v sigmaSq=%.2f\naic=%.6f\n",
		ev.Labels, ev.Score.K, ev.Score.ClusterSizes, ev.Score.SigmaSq, ev.Score.AIC)
	// Output:
	// labels=[0 0 1 1]
	// k=2 sizes=[2 2] sigmaSq=0.50
	// aic=-20.124097
}
