package partition_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapscore/dataset"
	"github.com/katalvlaran/mapscore/partition"
)

// mustMatrix builds a dataset.Matrix or fails the test.
func mustMatrix(t testing.TB, rows [][]float64) *dataset.Matrix {
	t.Helper()
	X, err := dataset.New(rows)
	require.NoError(t, err)

	return X
}

// TestResolve_TwoBlobs verifies the canonical two-cluster resolution:
// two tight blobs, disjoint candidate cells.
func TestResolve_TwoBlobs(t *testing.T) {
	X := mustMatrix(t, [][]float64{{0}, {0}, {10}, {10}})
	candidates := [][]int{{0}, {0}, {1}, {1}}

	labels, centroids, err := partition.Resolve(X, candidates, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, labels)
	assert.Nil(t, centroids, "default options must not return centroids")
}

// TestResolve_SingleCandidateIdentity verifies that points with exactly one
// candidate always resolve to that sole candidate (the shortcut must match
// the general rule).
func TestResolve_SingleCandidateIdentity(t *testing.T) {
	X := mustMatrix(t, [][]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}})
	candidates := [][]int{{7}, {3}, {7}, {12}}

	labels, _, err := partition.Resolve(X, candidates, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3, 7, 12}, labels)
}

// TestResolve_TieBreakFirstListed verifies the determinism law: a point
// exactly equidistant from two candidate centroids resolves to the cell
// listed first — in both listing orders.
func TestResolve_TieBreakFirstListed(t *testing.T) {
	// Soft centroids: cell 0 = mean(0, 5) = 2.5, cell 1 = mean(10, 5) = 7.5.
	// Point 5 sits exactly midway (distance 2.5 to both).
	X := mustMatrix(t, [][]float64{{0}, {10}, {5}})

	labels, _, err := partition.Resolve(X, [][]int{{0}, {1}, {0, 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, labels[2], "tie must go to the first-listed cell 0")

	labels, _, err = partition.Resolve(X, [][]int{{0}, {1}, {1, 0}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, labels[2], "tie must go to the first-listed cell 1")
}

// TestResolve_SoftCentroidsUseAllCandidates verifies that overlapping points
// contribute to every candidate cell's centroid, not only the resolved one.
func TestResolve_SoftCentroidsUseAllCandidates(t *testing.T) {
	X := mustMatrix(t, [][]float64{{0}, {10}, {5}})
	opts := partition.DefaultOptions()
	opts.ReturnCentroids = true

	_, centroids, err := partition.Resolve(X, [][]int{{0}, {1}, {0, 1}}, &opts)
	require.NoError(t, err)
	require.NotNil(t, centroids)

	assert.Equal(t, []int{0, 1}, centroids.Cells, "first-appearance order")
	assert.Equal(t, 2, centroids.Counts[0], "point 2 is a soft member of cell 0")
	assert.Equal(t, 2, centroids.Counts[1], "point 2 is a soft member of cell 1")
	assert.Equal(t, []float64{2.5}, centroids.Means[0])
	assert.Equal(t, []float64{7.5}, centroids.Means[1])
}

// TestResolve_NearestNotFirst verifies that without a tie the nearest
// centroid wins regardless of listing order.
func TestResolve_NearestNotFirst(t *testing.T) {
	// Cell 0 = mean(0, 9) = 4.5, cell 1 = mean(10, 9) = 9.5.
	// Point 9 is 4.5 from cell 0 and 0.5 from cell 1.
	X := mustMatrix(t, [][]float64{{0}, {10}, {9}})

	labels, _, err := partition.Resolve(X, [][]int{{0}, {1}, {0, 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, labels)
}

// TestResolve_OutputWithinCandidates is the membership property: for
// randomized overlapping candidate maps, the resolver never emits a cell
// absent from that point's candidate list.
func TestResolve_OutputWithinCandidates(t *testing.T) {
	const (
		n     = 60
		d     = 3
		cells = 5
	)
	rng := rand.New(rand.NewSource(42))

	rows := make([][]float64, n)
	candidates := make([][]int, n)
	for i := 0; i < n; i++ {
		rows[i] = []float64{rng.Float64() * 10, rng.Float64() * 10, rng.Float64() * 10}
		// One to three distinct candidate cells per point.
		first := rng.Intn(cells)
		want := 1 + rng.Intn(3)
		candidates[i] = []int{first}
		for c := 0; c < cells && len(candidates[i]) < want; c++ {
			if c != first {
				candidates[i] = append(candidates[i], c)
			}
		}
	}
	X := mustMatrix(t, rows)

	labels, _, err := partition.Resolve(X, candidates, nil)
	require.NoError(t, err)
	for i, lab := range labels {
		assert.Contains(t, candidates[i], lab, "point %d resolved outside its candidate set", i)
	}
}

// TestResolve_InvalidInput walks the ErrInvalidInput taxonomy; every cause
// must also match the class sentinel.
func TestResolve_InvalidInput(t *testing.T) {
	X := mustMatrix(t, [][]float64{{0}, {1}})

	cases := []struct {
		name       string
		X          *dataset.Matrix
		candidates [][]int
		want       error
	}{
		{"nil matrix", nil, [][]int{{0}, {0}}, partition.ErrNilInput},
		{"nil candidates", X, nil, partition.ErrNilInput},
		{"length mismatch", X, [][]int{{0}}, partition.ErrLengthMismatch},
		{"empty candidate set", X, [][]int{{0}, {}}, partition.ErrEmptyCandidates},
		{"negative cell", X, [][]int{{0}, {-1}}, partition.ErrNegativeCell},
		{"duplicate cell", X, [][]int{{0}, {1, 1}}, partition.ErrDuplicateCell},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := partition.Resolve(tc.X, tc.candidates, nil)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, partition.ErrInvalidInput, "must match the class sentinel")
		})
	}
}
