// Package metrics provides optional Prometheus instrumentation for the
// engine facade: a generation counter, a best-fitness gauge, NFP
// cache hit/miss counters, and an active-worker gauge. Collectors are
// built once and injected, rather than registered against the global
// default registry, so that more than one engine.Engine can run in the
// same process — e.g. under test — without colliding on metric names.
//
// A nil *Collector is valid and every method on it is a no-op, so
// callers that never configure metrics pay nothing for them.
package metrics
