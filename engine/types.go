package engine

import "github.com/shapenest/nestcore/placement"

// ProgressCallback receives a human-readable event string as the
// engine's search advances: the engine emits string events only and
// never formats machine-readable output, a contract extended here to
// any progress observer, not only a log sink. Callbacks are invoked
// from the goroutine that called Step; the caller is responsible for
// marshaling to another thread if needed.
type ProgressCallback func(event string)

// ResultCallback receives a RankedResult each time it enters the
// bounded top-K list.
type ResultCallback func(RankedResult)

// RankedResult is one entry in the engine's top-K results list: the
// generation it was produced in, and the full placement.Result that
// earned its rank.
type RankedResult struct {
	Generation int
	Fitness    float64
	Result     placement.Result
}
