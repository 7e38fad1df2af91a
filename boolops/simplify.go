package boolops

import (
	"math"

	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// Simplify reduces p's outer ring and holes with the Ramer-Douglas-Peucker
// algorithm at the given tolerance (kernel units). The implementation is
// iterative (an explicit stack of index ranges) rather than recursive, so
// pathologically long rings cannot blow the call stack.
//
// Complexity: O(n log n) expected, O(n^2) worst case (as for the
// classical recursive formulation).
func Simplify(p polygon.Polygon, tolerance float64) polygon.Polygon {
	out := p
	out.Outer = simplifyClosedRing(p.Outer, tolerance)
	if len(p.Holes) > 0 {
		out.Holes = make([]polygon.Ring, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = simplifyClosedRing(h, tolerance)
		}
	}
	return out
}

// simplifyClosedRing runs RDP on a closed ring by splitting it at
// vertex 0 and vertex n/2 into two open chains, simplifying each, and
// splicing the results back together.
func simplifyClosedRing(r polygon.Ring, tolerance float64) polygon.Ring {
	n := len(r)
	if n < 4 {
		return r.Clone()
	}
	// Split by index at the first vertex and the one halfway round the
	// ring; the distance between the two split points is not considered.
	a, b := 0, n/2
	chain1 := rdp(append(polygon.Ring{}, r[a:b+1]...), tolerance)
	var chain2rest polygon.Ring
	chain2rest = append(chain2rest, r[b:]...)
	chain2rest = append(chain2rest, r[:a+1]...)
	chain2 := rdp(chain2rest, tolerance)

	out := make(polygon.Ring, 0, len(chain1)+len(chain2)-2)
	out = append(out, chain1[:len(chain1)-1]...)
	out = append(out, chain2[:len(chain2)-1]...)
	if len(out) < 3 {
		return r.Clone()
	}
	return out
}

// rdpFrame is one entry in the iterative RDP stack: simplify chain[lo:hi+1]
// in place, keeping chain[lo] and chain[hi] fixed.
type rdpFrame struct{ lo, hi int }

// rdp simplifies an open polyline (first and last point always kept)
// iteratively, using an explicit stack instead of recursion.
func rdp(chain polygon.Ring, tolerance float64) polygon.Ring {
	n := len(chain)
	if n < 3 {
		return chain
	}
	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true

	stack := []rdpFrame{{0, n - 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.hi-f.lo < 2 {
			continue
		}
		maxDist := -1.0
		maxIdx := -1
		for i := f.lo + 1; i < f.hi; i++ {
			d := perpendicularDistance(chain[i], chain[f.lo], chain[f.hi])
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}
		if maxDist > tolerance && maxIdx >= 0 {
			keep[maxIdx] = true
			stack = append(stack, rdpFrame{f.lo, maxIdx}, rdpFrame{maxIdx, f.hi})
		}
	}

	out := make(polygon.Ring, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, chain[i])
		}
	}
	return out
}

func perpendicularDistance(p, a, b point.Point) float64 {
	if a.Equal(b) {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}
	ab := vec2{float64(b.X - a.X), float64(b.Y - a.Y)}
	ap := vec2{float64(p.X - a.X), float64(p.Y - a.Y)}
	abLen := ab.length()
	// |ap x ab| / |ab| is the perpendicular distance from p to line ab.
	cross := ap.x*ab.y - ap.y*ab.x
	return math.Abs(cross) / abLen
}
