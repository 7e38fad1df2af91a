package nfp

import "github.com/shapenest/nestcore/polygon"

// Quality records which code path produced a Result, so downstream
// scoring can discount an approximate answer relative to an exact one.
type Quality int

const (
	// Exact means the result came from Minkowski convolution: the
	// boundary is precise to the kernel's integer resolution.
	Exact Quality = iota

	// OrbitalApproximate means convolution was degenerate or empty and
	// orbital contact-tracing produced the boundary instead. The trace
	// can terminate early on pathological contact sequences, so the
	// boundary may be an underestimate of the true NFP.
	OrbitalApproximate

	// CoarseAABB names a conservative axis-aligned approximation: for
	// an outer NFP oversized, for an inner NFP undersized. Compute never
	// returns a Result of this quality: when both convolution and
	// orbital tracing fail it returns ErrNFPEmpty.
	CoarseAABB
)

// String renders the quality level for logging.
func (q Quality) String() string {
	switch q {
	case Exact:
		return "exact"
	case OrbitalApproximate:
		return "orbital_approximate"
	case CoarseAABB:
		return "coarse_aabb"
	default:
		return "unknown"
	}
}

// Result is a computed no-fit polygon plus the quality of the path that
// produced it.
type Result struct {
	Polygon polygon.Polygon
	Quality Quality
}

// DegeneracyGate holds the thresholds Compute checks before attempting
// Minkowski convolution. Inputs that fail the gate skip straight to
// orbital tracing, since convolution is known to produce garbage (zero-
// area slivers, disconnected cells that never union into one boundary)
// on geometry this thin or this collinear.
type DegeneracyGate struct {
	// MinArea is the smallest doubled-signed-area (kernel units squared)
	// either input polygon may have before it is considered degenerate.
	MinArea int64

	// MinBBoxDimension is the smallest bounding-box side length (kernel
	// units) either input polygon may have; thinner slivers are prone to
	// convolution producing self-intersecting cells that cancel out
	// under union instead of combining into a closed boundary.
	MinBBoxDimension int64

	// MaxCollinearFraction is the largest fraction of a ring's vertices
	// that may be exactly collinear with their neighbors before the
	// ring is treated as degenerate.
	MaxCollinearFraction float64
}

// DefaultDegeneracyGate returns the thresholds used when the engine
// facade does not override them: a doubled area of 100 kernel units
// squared, a minimum bounding-box dimension of 2 kernel units, and an
// 80% collinearity ceiling.
func DefaultDegeneracyGate() DegeneracyGate {
	return DegeneracyGate{
		MinArea:              100,
		MinBBoxDimension:     2,
		MaxCollinearFraction: 0.8,
	}
}
