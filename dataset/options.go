// SPDX-License-Identifier: MIT

// Package dataset: functional configuration for the numeric ingestion
// policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults then setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package dataset

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	// true ⇒ any NaN or ±Inf entry is rejected with ErrNaNInf.
	DefaultValidateNaNInf = true

	// DefaultAllowInf permits ±Inf entries while NaN validation stays active.
	// This is a narrow exception for callers staging sentinel distances;
	// NaN remains rejected even when AllowInf=true.
	DefaultAllowInf = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	allowInf       bool // DefaultAllowInf
}

// WithValidateNaNInf toggles strict finite-value validation on ingestion.
// Disable only when the caller guarantees finiteness by construction.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *options) { o.validateNaNInf = enabled }
}

// WithAllowInf permits ±Inf entries under active validation.
// NaN is still rejected; pair with WithValidateNaNInf(false) to skip all checks.
func WithAllowInf(enabled bool) Option {
	return func(o *options) { o.allowInf = enabled }
}

// gatherOptions applies defaults, then user setters, in order.
func gatherOptions(opts ...Option) options {
	o := options{
		validateNaNInf: DefaultValidateNaNInf,
		allowInf:       DefaultAllowInf,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
