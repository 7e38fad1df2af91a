// Package boolops provides polygon boolean and offset operations: union,
// intersection, difference, offset, simplification, and cleaning. Union,
// Intersect and Difference are thin, validated wrappers around
// github.com/akavel/polyclip-go, an integer/float polygon-clipping
// library; Offset, Simplify and Clean are implemented in this package
// without it.
//
// Inputs and outputs are polygon.Polygon values in kernel integer units;
// this package owns the float64 boundary conversion polyclip-go requires
// and rounds results back to integers with the same round-half-to-even
// policy used everywhere else ingest happens (see point.FromReal).
//
// Contract: rings with fewer than 3 vertices after an operation are
// discarded, never panicked on. Geometrically infeasible input (e.g. two
// disjoint polygons passed to Intersect) yields an empty result slice,
// not an error — the caller decides whether an empty result is fatal.
package boolops
