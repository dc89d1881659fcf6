package sweep

import (
	"context"
	"errors"

	"github.com/katalvlaran/mapscore/partition"
)

// FitFunc fits one configuration and returns the candidate cell map it
// induces: candidates[i] is the non-empty set of cell identifiers point i
// could belong to. Cover and cluster construction are entirely the caller's
// concern; sweep only consumes the result.
//
// FitFunc may be called concurrently from multiple workers and must be safe
// for that. Honor ctx for long fits.
type FitFunc func(ctx context.Context, cfg any) ([][]int, error)

// Outcome records the evaluation of a single grid entry.
type Outcome struct {
	// Index is the entry's position in the configs slice.
	Index int

	// Config echoes the configuration under evaluation.
	Config any

	// Score is the AIC summary; meaningful only when Err is nil.
	Score partition.ScoreResult

	// Labels is the resolved hard partition, retained only under
	// WithKeepLabels(true); nil otherwise.
	Labels []int

	// Err is the failure that excluded this entry from selection:
	// a FitFunc error, a partition sentinel, or ctx.Err().
	Err error
}

// Result is the full sweep outcome.
type Result struct {
	// Best points at the highest-AIC successful Outcome inside Outcomes,
	// nil when every configuration failed.
	Best *Outcome

	// Outcomes holds one entry per configuration, in grid order.
	Outcomes []Outcome

	// Evaluated counts configurations scored without error.
	Evaluated int

	// Failed counts configurations excluded by an error.
	Failed int
}

var (
	// ErrNoConfigs — the configuration grid is empty.
	ErrNoConfigs = errors.New("sweep: no configurations to evaluate")

	// ErrNilFit — no FitFunc supplied.
	ErrNilFit = errors.New("sweep: nil fit function")

	// ErrNilData — no dataset supplied.
	ErrNilData = errors.New("sweep: nil dataset")

	// ErrAllConfigsFailed — every grid entry failed; Result.Outcomes still
	// carries the per-entry causes for inspection.
	ErrAllConfigsFailed = errors.New("sweep: all configurations failed")
)
