// Package nestcore is a 2D irregular-shape nesting engine: given a set
// of arbitrarily shaped parts (each with a quantity and a permitted
// rotation set) and a set of stock sheets, it produces placements
// (position and rotation per part copy) that pack parts onto sheets
// without overlap, respect optional inter-part spacing, and minimize
// material waste.
//
// The engine is organized as a cascade of three tightly coupled
// subsystems, leaves first:
//
//	point/     — scaled-integer 2D coordinate arithmetic
//	polygon/   — outer-ring-plus-holes polygon model, ingest validation
//	boolops/   — union/intersect/difference/offset/clean/simplify
//	nfp/       — No-Fit Polygon via Minkowski convolution, orbital-tracing
//	             fallback, and the frame-trick inner NFP
//	nfpcache/  — content-addressed NFP memoization
//	strategy/  — gravity / bounding-box / convex-hull placement scoring
//	placement/ — bottom-left constructive packer driven by NFPs
//	genetic/   — population search over part orderings and rotations
//	evaluator/ — bounded worker-pool fan-out of individuals within a generation
//	engine/    — facade: Config, state machine, Initialize/Start/Step/Stop
//	metrics/   — optional Prometheus collectors
//	nestlog/   — the engine's string-event logging contract
//
// This module is a library; SVG parsing, rendering, file I/O, and
// CLI/argument parsing are the caller's responsibility. See engine.Engine
// for the entry point.
package nestcore
