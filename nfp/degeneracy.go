package nfp

import (
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// degenerate reports whether p fails any of gate's thresholds: too
// small an area, too thin a bounding box, or too much of its boundary
// collinear. Any one failure is enough to route the caller straight to
// orbital tracing instead of attempting convolution.
func degenerate(p polygon.Polygon, gate DegeneracyGate) bool {
	area := p.Outer.SignedArea()
	if area < 0 {
		area = -area
	}
	if area < gate.MinArea {
		return true
	}

	bb := p.BoundingBox()
	w, h := bb.W, bb.H
	if w < 0 {
		w = -w
	}
	if h < 0 {
		h = -h
	}
	if w < gate.MinBBoxDimension || h < gate.MinBBoxDimension {
		return true
	}

	if collinearFraction(p.Outer) > gate.MaxCollinearFraction {
		return true
	}
	return false
}

// collinearFraction returns the fraction of r's vertices whose cross
// product with their two neighbors is zero (the vertex lies exactly on
// the line through its neighbors).
func collinearFraction(r polygon.Ring) float64 {
	n := len(r)
	if n < 3 {
		return 1
	}
	collinear := 0
	for i := 0; i < n; i++ {
		prev := r[(i-1+n)%n]
		cur := r[i]
		next := r[(i+1)%n]
		if point.CrossOrigin(prev, cur, next) == 0 {
			collinear++
		}
	}
	return float64(collinear) / float64(n)
}
