package nfp

import (
	"github.com/shapenest/nestcore/boolops"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// Compute returns the no-fit polygon of b orbiting a: for inside=false,
// the outer NFP (positions b's reference vertex must avoid to not
// overlap a); for inside=true, the inner NFP restricted to a single
// Minkowski-difference pass (callers wanting the full enlarged-frame
// inner-NFP construction should use InnerNFP instead).
//
// Compute tries Minkowski convolution first. If either input fails the
// degeneracy gate, or convolution produces no usable boundary, it falls
// back to orbital tracing. If both fail, it returns ErrNFPEmpty.
//
// Complexity: O(n*m) for convolution; see package doc for the fallback's
// cost.
func Compute(a, b polygon.Polygon, inside bool, cfg DegeneracyGate) (Result, error) {
	if !degenerate(a, cfg) && !degenerate(b, cfg) {
		if res, ok := computeConvolution(a, b, inside); ok {
			return res, nil
		}
	}

	if res, ok := computeOrbital(a, b, inside); ok {
		return res, nil
	}

	return Result{}, ErrNFPEmpty
}

// computeConvolution implements the Minkowski-sum convolution path: it
// computes A ⊕ (-B), the classic NFP construction, for either value of
// inside, matching the convention used throughout the package that b
// always orbits a. InnerNFP relies on this when it passes a frame with
// the sheet cut out as a hole.
func computeConvolution(a, b polygon.Polygon, inside bool) (Result, bool) {
	orbit := negatePolygon(b)

	cells := minkowskiCells(a, orbit)
	if len(cells) == 0 {
		return Result{}, false
	}

	merged := boolops.Union(cells)
	if len(merged) == 0 {
		return Result{}, false
	}

	largest := largestByArea(merged)
	ref := b.Reference()
	translated := polygon.Translate(largest, ref)

	return Result{Polygon: translated, Quality: Exact}, true
}

// negatePolygon returns the point reflection of p through the origin.
// Reflecting every vertex through the origin is a proper rotation (its
// linear map has determinant +1), so ring winding is preserved and no
// separate "reverse to restore CCW" step is needed; polygon.New would
// also re-canonicalize winding on the way back in regardless.
func negatePolygon(p polygon.Polygon) polygon.Polygon {
	out := p
	out.Outer = negateRing(p.Outer)
	if len(p.Holes) > 0 {
		out.Holes = make([]polygon.Ring, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = negateRing(h)
		}
	}
	return out
}

func negateRing(r polygon.Ring) polygon.Ring {
	out := make(polygon.Ring, len(r))
	for i, p := range r {
		out[i] = p.Neg()
	}
	return out
}

// minkowskiCells builds the brute-force cell decomposition of the
// Minkowski sum of a and orbit: every ring of a paired with every ring
// of orbit contributes (1) a copy of orbit's ring translated to each
// vertex of a's ring, (2) a copy of a's ring translated to each vertex
// of orbit's ring, and (3) the edge-pair parallelogram cell for every
// pair of edges, one from each ring. The union of all cells equals the
// Minkowski sum for any pair of simple polygons, convex or not; this is
// quadratic in vertex count but needs no convex decomposition.
func minkowskiCells(a, orbit polygon.Polygon) []polygon.Polygon {
	ringsA := allRings(a)
	ringsB := allRings(orbit)

	var cells []polygon.Polygon
	for _, ra := range ringsA {
		for _, rb := range ringsB {
			for _, v := range ra {
				if c, ok := translatedSolid(rb, v); ok {
					cells = append(cells, c)
				}
			}
			for _, v := range rb {
				if c, ok := translatedSolid(ra, v); ok {
					cells = append(cells, c)
				}
			}
			cells = append(cells, edgeCells(ra, rb)...)
		}
	}
	return cells
}

func allRings(p polygon.Polygon) []polygon.Ring {
	rings := make([]polygon.Ring, 0, 1+len(p.Holes))
	rings = append(rings, p.Outer)
	rings = append(rings, p.Holes...)
	return rings
}

func translatedSolid(r polygon.Ring, delta point.Point) (polygon.Polygon, bool) {
	out := make(polygon.Ring, len(r))
	for i, p := range r {
		out[i] = p.Add(delta)
	}
	np, err := polygon.New(out, nil)
	if err != nil {
		return polygon.Polygon{}, false
	}
	return np, true
}

// edgeCells returns, for every pair of edges (one from ra, one from
// rb), the parallelogram that is the Minkowski sum of the two segments.
func edgeCells(ra, rb polygon.Ring) []polygon.Polygon {
	na, nb := len(ra), len(rb)
	if na < 2 || nb < 2 {
		return nil
	}
	var cells []polygon.Polygon
	for i := 0; i < na; i++ {
		p1, p2 := ra[i], ra[(i+1)%na]
		for j := 0; j < nb; j++ {
			q1, q2 := rb[j], rb[(j+1)%nb]
			quad := polygon.Ring{p1.Add(q1), p2.Add(q1), p2.Add(q2), p1.Add(q2)}
			np, err := polygon.New(quad, nil)
			if err != nil {
				continue
			}
			cells = append(cells, np)
		}
	}
	return cells
}

func largestByArea(ps []polygon.Polygon) polygon.Polygon {
	best := ps[0]
	bestArea := best.Area()
	for _, p := range ps[1:] {
		if a := p.Area(); a > bestArea {
			best = p
			bestArea = a
		}
	}
	return best
}
