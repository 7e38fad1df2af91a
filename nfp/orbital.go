package nfp

import (
	"math"

	"github.com/shapenest/nestcore/boolops"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// orbitalStepCap bounds the number of contact-following iterations, so a
// pathological contact sequence that never closes its loop terminates
// the trace instead of looping forever.
const orbitalStepCap = 2000

// contactKind distinguishes the three ways a moving polygon can touch a
// stationary one, mirroring the classic orbital no-fit-polygon
// construction: a shared vertex, a vertex of the moving polygon resting
// on an edge of the stationary one, or vice versa.
type contactKind int

const (
	contactVertexVertex contactKind = iota
	contactBOnEdgeA
	contactAOnEdgeB
)

type contact struct {
	kind contactKind
	ia   int // index into a (vertex, or end vertex of a's edge for B-on-A)
	ib   int // index into b (vertex, or end vertex of b's edge for A-on-B)
}

// computeOrbital traces the boundary that b's reference vertex sweeps
// out as b slides around a while the two polygons stay in contact,
// following the classic orbital (no-fit-polygon) construction: find a
// touching contact, enumerate the candidate slide directions it admits,
// discard zero directions and those that would backtrack along the
// previous slide, and accumulate the offset that survives until the trace closes or the
// step cap is reached.
func computeOrbital(a, b polygon.Polygon, inside bool) (Result, bool) {
	start, ok := startingOffset(a, b, inside)
	if !ok {
		return Result{}, false
	}

	ref := b.Reference()
	trace := polygon.Ring{start.Add(ref)}
	offset := start
	var prev *point.Point

	for step := 0; step < orbitalStepCap; step++ {
		contacts := findContacts(a.Outer, b.Outer, offset)
		if len(contacts) == 0 {
			break
		}

		vec, ok := chooseSlide(a.Outer, b.Outer, contacts, offset, prev, inside)
		if !ok {
			break
		}

		dist := slideDistance(a.Outer, b.Outer, offset, vec, inside)
		if dist <= 0 {
			break
		}

		delta := point.New(
			int64(math.Round(float64(vec.X)/vecLength(vec)*dist)),
			int64(math.Round(float64(vec.Y)/vecLength(vec)*dist)),
		)
		if delta.Equal(point.Zero) {
			break
		}
		offset = offset.Add(delta)
		trace = append(trace, offset.Add(ref))
		prevCopy := vec
		prev = &prevCopy

		if len(trace) > 3 && offset.Equal(start) {
			break
		}
	}

	if len(trace) < 3 {
		return Result{}, false
	}

	np, err := polygon.New(trace, nil)
	if err != nil {
		return Result{}, false
	}
	return Result{Polygon: np, Quality: OrbitalApproximate}, true
}

// startingOffset places b touching a without overlapping it. For an
// inner NFP, the only feasible starting point is b nested inside a, so
// it starts at a's bounding-box corner. For an outer NFP, b must begin
// genuinely adjacent to a rather than on top of it: the candidate that
// aligns each polygon's lowest vertex works whenever b's shape recedes
// away from a from that corner, but not in general, so every
// (a-vertex, b-vertex) alignment is tried — lowest-to-lowest first, since
// it is correct for the common convex case — and the first one that
// produces zero overlap is accepted.
func startingOffset(a, b polygon.Polygon, inside bool) (point.Point, bool) {
	if inside {
		abb := a.BoundingBox()
		bbb := b.BoundingBox()
		if bbb.W > abb.W || bbb.H > abb.H {
			return point.Zero, false
		}
		// Translation that aligns b's bounding-box corner with a's.
		return point.New(abb.X-bbb.X, abb.Y-bbb.Y), true
	}

	aLowest := lowestVertex(a.Outer)
	bLowest := lowestVertex(b.Outer)
	if cand := aLowest.Sub(bLowest); nonOverlapping(a, b, cand) {
		return cand, true
	}

	for _, av := range a.Outer {
		for _, bv := range b.Outer {
			cand := av.Sub(bv)
			if nonOverlapping(a, b, cand) {
				return cand, true
			}
		}
	}
	return point.Zero, false
}

// nonOverlapping reports whether translating b by offset leaves it with
// no interior overlap with a, using the boolean-intersection area as the
// test rather than an exact touch predicate, since the orbital trace
// only needs a feasible starting contact, not a canonical one.
func nonOverlapping(a, b polygon.Polygon, offset point.Point) bool {
	translated := polygon.Translate(b, offset)
	hit := boolops.Intersect(a, translated)
	for _, p := range hit {
		if p.Area() > 1e-6 {
			return false
		}
	}
	return true
}

func lowestVertex(r polygon.Ring) point.Point {
	best := r[0]
	for _, p := range r[1:] {
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}
	return best
}

// findContacts enumerates touching points between a and b translated by
// offset: shared vertices, b-vertex-on-a-edge, and a-vertex-on-b-edge.
func findContacts(a, b polygon.Ring, offset point.Point) []contact {
	var out []contact
	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		ni := (i + 1) % na
		for j := 0; j < nb; j++ {
			nj := (j + 1) % nb
			bj := b[j].Add(offset)
			bnj := b[nj].Add(offset)

			switch {
			case a[i].Equal(bj):
				out = append(out, contact{kind: contactVertexVertex, ia: i, ib: j})
			case onSegment(a[i], a[ni], bj):
				out = append(out, contact{kind: contactBOnEdgeA, ia: ni, ib: j})
			case onSegment(bj, bnj, a[i]):
				out = append(out, contact{kind: contactAOnEdgeB, ia: i, ib: nj})
			}
		}
	}
	return out
}

func onSegment(p, q, r point.Point) bool {
	if point.CrossOrigin(p, q, r) != 0 {
		return false
	}
	minX, maxX := p.X, q.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := p.Y, q.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return r.X >= minX && r.X <= maxX && r.Y >= minY && r.Y <= maxY
}

// chooseSlide generates every candidate translation vector the current
// contact set admits, discards zero vectors and ones that backtrack
// directly against the previous step, and returns the first survivor.
// Preferring the first candidate (rather than searching for an optimal
// one) keeps the trace deterministic; any admissible direction
// eventually retraces the true boundary because the step cap and loop-
// closure check bound how far a suboptimal choice can wander.
func chooseSlide(a, b polygon.Ring, contacts []contact, offset point.Point, prev *point.Point, inside bool) (point.Point, bool) {
	na, nb := len(a), len(b)
	sign := int64(1)
	if inside {
		sign = -1
	}

	for _, c := range contacts {
		for _, vec := range candidateVectors(a, b, c, na, nb) {
			v := point.New(vec.X*sign, vec.Y*sign)
			if v.Equal(point.Zero) {
				continue
			}
			if backtracks(v, prev) {
				continue
			}
			return v, true
		}
	}
	return point.Zero, false
}

// candidateVectors mirrors the classic construction: a vertex-vertex
// contact admits the two edge directions leaving the A vertex and the
// two (inverted) edge directions leaving the B vertex; an edge contact
// admits the two directions along the edge the other polygon's vertex
// rests on.
func candidateVectors(a, b polygon.Ring, c contact, na, nb int) []point.Point {
	switch c.kind {
	case contactVertexVertex:
		prevA := a[(c.ia-1+na)%na]
		nextA := a[(c.ia+1)%na]
		prevB := b[(c.ib-1+nb)%nb]
		nextB := b[(c.ib+1)%nb]
		vA := a[c.ia]
		vB := b[c.ib]
		return []point.Point{
			prevA.Sub(vA),
			nextA.Sub(vA),
			vB.Sub(prevB),
			vB.Sub(nextB),
		}
	case contactBOnEdgeA:
		prevA := a[(c.ia-1+na)%na]
		vA := a[c.ia]
		return []point.Point{vA.Sub(b[c.ib]), prevA.Sub(b[c.ib])}
	case contactAOnEdgeB:
		prevB := b[(c.ib-1+nb)%nb]
		return []point.Point{a[c.ia].Sub(prevB), a[c.ia].Sub(b[c.ib])}
	default:
		return nil
	}
}

func backtracks(v point.Point, prev *point.Point) bool {
	if prev == nil {
		return false
	}
	dot := v.Dot(*prev)
	if dot >= 0 {
		return false
	}
	cross := v.Cross(*prev)
	vLen := vecLength(v)
	pLen := vecLength(*prev)
	if vLen < 1e-9 || pLen < 1e-9 {
		return false
	}
	return math.Abs(float64(cross))/(vLen*pLen) < 1e-4
}

func vecLength(p point.Point) float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// slideDistance bounds how far offset may move along vec before a or b
// would cross through one another, by checking every edge pair for the
// parameter at which they would intersect along vec's direction and
// taking the smallest positive one. When no edge pair limits the slide
// to less than the combined bounding-box diagonal, it returns 1% of that
// diagonal, so the trace advances in a short step.
func slideDistance(a, b polygon.Ring, offset, vec point.Point, inside bool) float64 {
	maxDist := boundingDiagonal(a) + boundingDiagonal(b)
	best := maxDist
	na, nb := len(a), len(b)
	dir := vec2{float64(vec.X), float64(vec.Y)}
	dirLen := dir.length()
	if dirLen < 1e-9 {
		return 0
	}

	for i := 0; i < na; i++ {
		ni := (i + 1) % na
		for j := 0; j < nb; j++ {
			nj := (j + 1) % nb
			bj := b[j].Add(offset)
			bnj := b[nj].Add(offset)
			if d, ok := edgeSlideLimit(a[i], a[ni], bj, bnj, dir); ok && d > 1e-6 && d < best {
				best = d
			}
		}
	}
	if best <= 0 || best >= maxDist {
		return maxDist * 0.01
	}
	return best
}

type vec2 struct{ x, y float64 }

func (v vec2) length() float64 { return math.Hypot(v.x, v.y) }

// edgeSlideLimit returns the distance along dir that translates edge
// (q1,q2) into the line containing edge (p1,p2), if dir is not already
// parallel to that line.
func edgeSlideLimit(p1, p2, q1, q2 point.Point, dir vec2) (float64, bool) {
	ex := float64(p2.X - p1.X)
	ey := float64(p2.Y - p1.Y)
	// Outward normal of edge p1->p2.
	nx, ny := ey, -ex
	nLen := math.Hypot(nx, ny)
	if nLen < 1e-9 {
		return 0, false
	}
	nx, ny = nx/nLen, ny/nLen

	denom := dir.x*nx + dir.y*ny
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}

	qx := float64(q1.X-p1.X)*nx + float64(q1.Y-p1.Y)*ny
	dist := -qx / denom
	return dist, true
}

func boundingDiagonal(r polygon.Ring) float64 {
	bb := r.BoundingBox()
	return math.Hypot(float64(bb.W), float64(bb.H))
}
