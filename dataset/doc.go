// SPDX-License-Identifier: MIT

// Package dataset provides the validated feature-matrix type consumed by
// the partition and sweep packages.
//
// 🚀 What is dataset?
//
//	A thin, strict wrapper around gonum's mat.Dense: an immutable N×d
//	matrix of float64 features, validated once at construction so that
//	every downstream numeric routine can assume a well-formed input:
//	  • N ≥ 1 rows, d ≥ 1 columns, rectangular
//	  • finite values (NaN/±Inf rejected under the default policy)
//	  • cheap row views — Row(i) borrows, it never copies
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mapscore/dataset"
//
//	X, err := dataset.New([][]float64{
//	  {0.0}, {1.0}, {9.0}, {10.0},
//	})
//	if err != nil {
//	  // handle ErrBadShape / ErrRagged / ErrNaNInf
//	}
//	_ = X.N()   // 4
//	_ = X.Dim() // 1
//
// Numeric policy is configured through functional options
// (WithValidateNaNInf, WithAllowInf); defaults are documented constants.
//
// Performance:
//
//   - Construction: O(N·d) (one validation pass + one copy into Dense)
//   - Row/At:       O(1)
package dataset
