// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// dataset package. All constructors and accessors MUST return these
// sentinels and tests MUST check them via errors.Is. No user-triggered
// condition may panic.

package dataset

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dataset: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a matrix would have no rows or no columns.
	// Constructors must validate shape before any allocation.
	ErrBadShape = errors.New("dataset: invalid shape")

	// ErrRagged indicates that input rows do not all share the same length.
	ErrRagged = errors.New("dataset: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value encountered where finite values
	// are required by the numeric policy (ingestion).
	ErrNaNInf = errors.New("dataset: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (or nil *mat.Dense) was used.
	ErrNilMatrix = errors.New("dataset: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("dataset: index out of range")
)
