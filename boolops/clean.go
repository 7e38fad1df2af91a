package boolops

import "github.com/shapenest/nestcore/polygon"

// Clean removes consecutive duplicate and collinear vertices from p and
// re-derives canonical winding through polygon.New. It does not detect
// or resolve self-touches or self-intersections. Rings that collapse
// below 3 vertices are returned as the zero
// Polygon with ok=false: geometric infeasibility returns the empty set
// rather than an error, leaving the caller to decide whether that is
// fatal.
//
// Complexity: O(n).
func Clean(p polygon.Polygon) (polygon.Polygon, bool) {
	outer := dropCollinear(p.Outer)
	if len(outer) < 3 {
		return polygon.Polygon{}, false
	}
	var holes []polygon.Ring
	for _, h := range p.Holes {
		ch := dropCollinear(h)
		if len(ch) >= 3 {
			holes = append(holes, ch)
		}
	}
	np, err := polygon.New(outer, holes)
	if err != nil {
		return polygon.Polygon{}, false
	}
	return np, true
}

// dropCollinear removes vertices that lie exactly on the line through
// their two neighbors (zero cross product), which avoids feeding
// polyclip-go degenerate near-zero-width spikes.
func dropCollinear(r polygon.Ring) polygon.Ring {
	n := len(r)
	if n < 3 {
		return r.Clone()
	}
	out := make(polygon.Ring, 0, n)
	for i := 0; i < n; i++ {
		prev := r[(i-1+n)%n]
		cur := r[i]
		next := r[(i+1)%n]
		if prev.Equal(cur) || cur.Equal(next) {
			continue
		}
		if next.Sub(prev).Cross(cur.Sub(prev)) == 0 {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return out
	}
	return out
}
