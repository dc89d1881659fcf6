// Package sweep - the parallel grid driver.
//
// Design principles:
//   - Index-addressed outcome storage: workers write disjoint slice slots,
//     so no locking is needed and grid order is preserved.
//   - Selection happens after the pool drains, single-threaded, with a
//     strict ">" comparison so equal AIC keeps the lower grid index.
//   - Strict sentinels; per-entry failures live in Outcome.Err, only
//     whole-sweep failures surface from Run itself.
package sweep

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/mapscore/dataset"
	"github.com/katalvlaran/mapscore/partition"
)

// Run evaluates every configuration against X and returns the per-entry
// outcomes plus the arg-max AIC selection.
//
// Contracts:
//   - X non-nil, configs non-empty, fit non-nil.
//   - fit is invoked at most once per configuration.
//   - Outcomes are returned in grid order regardless of completion order.
//   - ctx cancellation is honored between stages; entries not yet started
//     record ctx.Err() and count as failed.
//
// Errors: ErrNilData, ErrNoConfigs, ErrNilFit up front;
// ErrAllConfigsFailed (with the populated Result) when nothing survived.
//
// Complexity: O(G/P) wall-clock for G configurations on P workers.
func Run(ctx context.Context, X *dataset.Matrix, configs []any, fit FitFunc, opts ...Option) (Result, error) {
	if X == nil {
		return Result{}, ErrNilData
	}
	if fit == nil {
		return Result{}, ErrNilFit
	}
	if len(configs) == 0 {
		return Result{}, ErrNoConfigs
	}
	o := gatherOptions(opts...)

	pool, err := ants.NewPool(o.effectiveParallelism(len(configs)))
	if err != nil {
		return Result{}, err
	}
	defer pool.Release()

	var (
		outcomes = make([]Outcome, len(configs))
		wg       sync.WaitGroup
		i        int
	)
	for i = range configs {
		idx := i
		outcomes[idx] = Outcome{Index: idx, Config: configs[idx]}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			evaluateOne(ctx, X, fit, o, &outcomes[idx])
		})
		if submitErr != nil {
			// Pool refused the task (released/overloaded): record and move on,
			// the per-entry failure model applies here too.
			outcomes[idx].Err = submitErr
			wg.Done()
		}
	}
	wg.Wait()

	// Single-threaded arg-max over the finished grid.
	res := Result{Outcomes: outcomes}
	for i = range outcomes {
		if outcomes[i].Err != nil {
			res.Failed++
			continue
		}
		res.Evaluated++
		// Strict ">" keeps the lower grid index on equal AIC.
		if res.Best == nil || outcomes[i].Score.AIC > res.Best.Score.AIC {
			res.Best = &outcomes[i]
		}
	}

	if res.Best == nil {
		return res, ErrAllConfigsFailed
	}

	return res, nil
}

// evaluateOne runs fit → resolve → score for a single grid entry, writing
// the result into out. Any stage failure excludes the entry.
func evaluateOne(ctx context.Context, X *dataset.Matrix, fit FitFunc, o options, out *Outcome) {
	if err := ctx.Err(); err != nil {
		out.Err = err

		return
	}

	candidates, err := fit(ctx, out.Config)
	if err != nil {
		out.Err = err

		return
	}

	labels, _, err := partition.Resolve(X, candidates, nil)
	if err != nil {
		out.Err = err

		return
	}

	score, err := partition.Score(X, labels)
	if err != nil {
		out.Err = err

		return
	}

	out.Score = score
	if o.keepLabels {
		out.Labels = labels
	}
}
