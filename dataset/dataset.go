// SPDX-License-Identifier: MIT

// Package dataset: the Matrix type and its constructors/accessors.
//
// Design principles:
//   - Validate once, at the boundary: every Matrix in circulation satisfies
//     N ≥ 1, d ≥ 1 and the configured numeric policy.
//   - Strict sentinels: only errors from errors.go; no fmt.Errorf where a
//     sentinel suffices. No panics on user input.
//   - Hot-path discipline: Row returns a borrowed view, never a copy.
package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable N×d feature matrix backed by a gonum mat.Dense.
//
// Immutability is contractual: accessors hand out borrowed, read-only views
// and callers must not write through them. All mapscore routines honor this.
type Matrix struct {
	n, d int
	data *mat.Dense
}

// New builds a Matrix from row slices, copying the data.
//
// Contracts:
//   - len(rows) ≥ 1 and len(rows[0]) ≥ 1, else ErrBadShape.
//   - all rows share the same length, else ErrRagged.
//   - values satisfy the numeric policy (see options.go), else ErrNaNInf.
//
// Complexity: O(N·d) time, O(N·d) space.
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	d := len(rows[0])
	if d == 0 {
		return nil, ErrBadShape
	}

	// Single validation + copy pass into row-major backing storage.
	var (
		backing = make([]float64, n*d)
		i, j    int
		v       float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != d {
			return nil, ErrRagged
		}
		for j = 0; j < d; j++ {
			v = rows[i][j]
			if err := checkValue(v, o); err != nil {
				return nil, err
			}
			backing[i*d+j] = v
		}
	}

	return &Matrix{n: n, d: d, data: mat.NewDense(n, d, backing)}, nil
}

// FromDense builds a Matrix from an existing gonum Dense, copying the data
// so later mutation of m cannot be observed through the Matrix.
//
// Contracts:
//   - m must be non-nil with r ≥ 1, c ≥ 1, else ErrNilMatrix / ErrBadShape.
//   - values satisfy the numeric policy, else ErrNaNInf.
//
// Complexity: O(N·d).
func FromDense(m *mat.Dense, opts ...Option) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)

	n, d := m.Dims()
	if n == 0 || d == 0 {
		return nil, ErrBadShape
	}

	clone := mat.DenseCopyOf(m)
	if o.validateNaNInf {
		for i := 0; i < n; i++ {
			for _, v := range clone.RawRowView(i) {
				if err := checkValue(v, o); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Matrix{n: n, d: d, data: clone}, nil
}

// N returns the number of rows (data points).
func (m *Matrix) N() int { return m.n }

// Dim returns the number of columns (features per point).
func (m *Matrix) Dim() int { return m.d }

// Row returns a borrowed view of row i.
//
// The returned slice aliases internal storage: callers must not modify it
// and must not retain it past mutations they perform elsewhere.
// Returns (nil, ErrOutOfRange) when i is outside [0, N).
//
// Complexity: O(1).
func (m *Matrix) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.n {
		return nil, ErrOutOfRange
	}

	return m.data.RawRowView(i), nil
}

// At returns the element at (i, j), guarding bounds with ErrOutOfRange
// instead of panicking.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.d {
		return 0, ErrOutOfRange
	}

	return m.data.At(i, j), nil
}

// Dense exposes the backing gonum matrix as a read-only view for callers
// that want to feed it into gonum routines directly. Do not mutate.
func (m *Matrix) Dense() *mat.Dense {
	if m == nil {
		return nil
	}

	return m.data
}

// checkValue enforces the numeric policy on a single entry.
func checkValue(v float64, o options) error {
	if !o.validateNaNInf {
		return nil
	}
	if math.IsNaN(v) {
		return ErrNaNInf
	}
	if math.IsInf(v, 0) && !o.allowInf {
		return ErrNaNInf
	}

	return nil
}
