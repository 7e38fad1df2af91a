// Package engine is the facade that owns configuration, the NFP cache,
// the genetic search, and the parallel evaluator, and exposes the
// state machine external callers drive: Uninitialized -> Initialized
// -> Running -> Stopped, with Initialized <-> Running via Start/Stop.
//
// Config is built via functional options for ergonomics (see
// NewConfig), but is always an explicit value threaded through an
// *Engine instance rather than a package global. Validation happens
// once, at Initialize, via github.com/go-playground/validator/v10
// struct tags.
package engine
