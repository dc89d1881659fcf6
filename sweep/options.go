// Package sweep: functional configuration for the grid driver.
//
// Design goals:
//   - Deterministic behavior: no global state; parallelism changes timing,
//     never the selected configuration.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; Run consumes ...Option.
package sweep

import "runtime"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultKeepLabels controls whether successful Outcomes retain the
	// resolved label slice. false ⇒ labels are dropped after scoring to
	// keep large grids cheap; re-resolve the winner if you need them.
	DefaultKeepLabels = false
)

// panic message for nonsensical option values (programmer error).
const panicParallelismInvalid = "sweep: WithParallelism: workers must be > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	parallelism int  // 0 ⇒ derive from GOMAXPROCS and grid size
	keepLabels  bool // DefaultKeepLabels
}

// WithParallelism fixes the worker-pool size. Panics when workers ≤ 0
// (programmer error); omit the option to derive a sensible default.
func WithParallelism(workers int) Option {
	if workers <= 0 {
		panic(panicParallelismInvalid)
	}

	return func(o *options) { o.parallelism = workers }
}

// WithKeepLabels retains the resolved hard labels on successful Outcomes.
func WithKeepLabels(keep bool) Option {
	return func(o *options) { o.keepLabels = keep }
}

// gatherOptions applies defaults, then user setters, in order.
func gatherOptions(opts ...Option) options {
	o := options{
		parallelism: 0,
		keepLabels:  DefaultKeepLabels,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// effectiveParallelism derives the pool size: the configured value, or
// GOMAXPROCS, both capped by the grid size and floored at 1.
func (o options) effectiveParallelism(grid int) int {
	p := o.parallelism
	if p == 0 {
		p = runtime.GOMAXPROCS(0)
	}
	if p > grid {
		p = grid
	}
	if p < 1 {
		p = 1
	}

	return p
}
