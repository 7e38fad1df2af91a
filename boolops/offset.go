package boolops

import (
	"math"

	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// Offset grows (delta > 0) or shrinks (delta < 0) p by delta kernel
// units, used by the engine facade to apply spacing (parts grown by
// +spacing/2, sheets shrunk by -spacing/2). Each edge is
// translated along its outward normal by delta; at each corner the two
// translated edges are joined either by a direct intersection (miter)
// or, when the miter length would exceed the miter limit, the two edge
// normals are antiparallel, or delta is 0, by a tessellated arc whose
// segment count keeps the chordal error within arcTolerance. No flat
// bevel join is emitted.
//
// Complexity: O(n) plus O(k) per arced corner, where k is the
// segment count chosen to honor arcTolerance.
func Offset(p polygon.Polygon, delta, miter, arcTolerance float64) []polygon.Polygon {
	outer := offsetRing(p.Outer, delta, miter, arcTolerance)
	if len(outer) < 3 {
		return nil
	}
	var holes []polygon.Ring
	for _, h := range p.Holes {
		// Holes are stored clockwise, so the right-hand edge normal that
		// offsetRing moves along points into the hole: the same delta
		// that grows the outer ring shrinks the holes.
		oh := offsetRing(h, delta, miter, arcTolerance)
		if len(oh) >= 3 {
			holes = append(holes, oh)
		}
	}
	np, err := polygon.New(outer, holes)
	if err != nil {
		return nil
	}
	return []polygon.Polygon{np}
}

type vec2 struct{ x, y float64 }

func (v vec2) length() float64 { return math.Hypot(v.x, v.y) }

func normalizeVec(x, y float64) vec2 {
	l := math.Hypot(x, y)
	if l == 0 {
		return vec2{}
	}
	return vec2{x / l, y / l}
}

func edgeOutwardNormal(a, b point.Point) vec2 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	// Outward normal for a CCW ring is the edge vector rotated -90deg.
	return normalizeVec(dy, -dx)
}

// offsetRing returns the vertex sequence of r offset outward by delta,
// joining corners per the package doc's miter/bevel/arc policy.
func offsetRing(r polygon.Ring, delta, miter, arcTolerance float64) polygon.Ring {
	n := len(r)
	if n < 3 {
		return nil
	}
	if miter <= 0 {
		miter = 2
	}
	if arcTolerance <= 0 {
		arcTolerance = 0.25
	}
	absDelta := math.Abs(delta)

	out := make(polygon.Ring, 0, n)
	appendPt := func(x, y float64) {
		out = append(out, point.New(
			int64(math.RoundToEven(x)),
			int64(math.RoundToEven(y)),
		))
	}

	for i := 0; i < n; i++ {
		prev := r[(i-1+n)%n]
		cur := r[i]
		next := r[(i+1)%n]

		n1 := edgeOutwardNormal(prev, cur)
		n2 := edgeOutwardNormal(cur, next)

		bis := vec2{n1.x + n2.x, n1.y + n2.y}
		bisLen := bis.length()
		cosHalf := bisLen / 2 // |n1|=|n2|=1 => |n1+n2| = 2*cos(theta/2)

		switch {
		case bisLen < 1e-9:
			// Antiparallel normals (a 180-degree fold): arc from n1 to n2.
			appendArc(appendPt, cur, n1, n2, absDelta, arcTolerance)
		case cosHalf < 1/miter || absDelta == 0:
			// Sharp corner: a pure miter point would overshoot past the
			// miter limit, so approximate the round join with an arc
			// instead of a single averaged bevel point.
			appendArc(appendPt, cur, n1, n2, absDelta, arcTolerance)
		default:
			scale := delta / cosHalf
			bn := normalizeVec(bis.x, bis.y)
			appendPt(float64(cur.X)+bn.x*scale, float64(cur.Y)+bn.y*scale)
		}
	}
	return out
}

// appendArc emits the points of a circular arc of radius r centered at
// cur, sweeping from direction from to direction to (both unit vectors),
// choosing the shorter angular path and tessellating finely enough that
// the chordal deviation from the true arc stays within arcTolerance.
func appendArc(appendPt func(x, y float64), cur point.Point, from, to vec2, r, arcTolerance float64) {
	if r == 0 {
		appendPt(float64(cur.X), float64(cur.Y))
		return
	}
	a0 := math.Atan2(from.y, from.x)
	a1 := math.Atan2(to.y, to.x)
	delta := a1 - a0
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}

	tol := math.Min(arcTolerance, r*0.999)
	stepAngle := 2 * math.Acos(1-tol/r)
	if stepAngle <= 0 || math.IsNaN(stepAngle) {
		stepAngle = math.Pi / 8
	}
	steps := int(math.Ceil(math.Abs(delta) / stepAngle))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := a0 + delta*float64(i)/float64(steps)
		appendPt(float64(cur.X)+math.Cos(a)*r, float64(cur.Y)+math.Sin(a)*r)
	}
}
