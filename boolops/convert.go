package boolops

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// toClipPolygon converts a kernel polygon (outer + holes) into a
// polyclip-go Polygon, whose Contours are plain float64 point sequences
// with no outer/hole distinction of their own — winding direction is
// polyclip-go's only signal for which contours are holes, which is
// exactly the convention polygon.Polygon already follows.
func toClipPolygon(p polygon.Polygon) polyclip.Polygon {
	out := make(polyclip.Polygon, 0, 1+len(p.Holes))
	out = append(out, ringToContour(p.Outer))
	for _, h := range p.Holes {
		out = append(out, ringToContour(h))
	}
	return out
}

func ringToContour(r polygon.Ring) polyclip.Contour {
	c := make(polyclip.Contour, len(r))
	for i, p := range r {
		c[i] = polyclip.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return c
}

// fromClipPolygon splits a polyclip-go result (a flat set of contours,
// some CCW/outer and some CW/hole) back into one polygon.Polygon per
// outer (positive-area) contour, assigning each hole (negative-area)
// contour to the outer contour whose bounding box contains it. Rings
// with fewer than 3 vertices after rounding are dropped, per package
// contract.
func fromClipPolygon(cp polyclip.Polygon) []polygon.Polygon {
	var outers []polygon.Ring
	var holes []polygon.Ring
	for _, c := range cp {
		r := contourToRing(c)
		if len(r) < 3 {
			continue
		}
		if r.SignedArea() >= 0 {
			outers = append(outers, r)
		} else {
			holes = append(holes, r)
		}
	}

	results := make([]polygon.Polygon, 0, len(outers))
	for _, outer := range outers {
		bb := outer.BoundingBox()
		var myHoles []polygon.Ring
		for _, h := range holes {
			if bb.Contains(h.BoundingBox()) {
				myHoles = append(myHoles, h)
			}
		}
		p, err := polygon.New(outer, myHoles)
		if err != nil {
			continue // degenerate component; drop rather than propagate
		}
		results = append(results, p)
	}
	return results
}

func contourToRing(c polyclip.Contour) polygon.Ring {
	r := make(polygon.Ring, 0, len(c))
	for _, p := range c {
		r = append(r, point.New(
			int64(math.RoundToEven(p.X)),
			int64(math.RoundToEven(p.Y)),
		))
	}
	return r
}
