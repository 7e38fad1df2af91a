package genetic

import "errors"

// ErrEmptyOrder indicates NewPopulation was called with no part slots.
//
// Usage: if errors.Is(err, ErrEmptyOrder) { /* nothing to nest */ }
var ErrEmptyOrder = errors.New("genetic: initial order is empty")

// ErrNotFullyEvaluated indicates AdvanceGeneration was called while one
// or more individuals in the current population still have
// Evaluated == false.
//
// Usage: if errors.Is(err, ErrNotFullyEvaluated) { /* evaluator still running */ }
var ErrNotFullyEvaluated = errors.New("genetic: population is not fully evaluated")
