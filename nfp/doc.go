// Package nfp computes no-fit polygons: the locus of positions a moving
// polygon's reference vertex may not occupy while touching or overlapping
// a stationary polygon (the outer NFP), and the locus it must stay within
// to remain inside a container (the inner NFP).
//
// The primary algorithm is Minkowski-sum convolution, computed over the
// integer point kernel so results are exact. Convolution is known to
// produce degenerate or empty output for certain pathological inputs
// (near-zero-area slivers, exact edge coincidence); Compute detects these
// cases with a degeneracy gate and falls back to orbital tracing, a
// slower contact-following construction that is more tolerant of
// near-degenerate geometry. The Quality field on Result records which
// path produced the answer so callers can weight placement decisions
// accordingly.
//
// Complexity: Minkowski convolution is O(n*m) in the two input polygons'
// vertex counts; orbital tracing is O(k*n*m) where k is the number of
// contact-following steps until the trace closes.
package nfp
