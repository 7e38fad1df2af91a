package polygon

import (
	"github.com/google/uuid"
	"github.com/shapenest/nestcore/point"
)

// Ring is an ordered, implicitly-closed sequence of integer points: the
// last point is never repeated as a copy of the first. An outer ring is
// stored counter-clockwise; a hole ring is stored clockwise (i.e.
// counter-clockwise when reversed), per the package doc convention.
type Ring []point.Point

// Clone returns an independent copy of the ring.
func (r Ring) Clone() Ring {
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

// Reverse returns a copy of the ring with vertex order reversed, flipping
// its winding direction.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// SignedArea returns twice the signed area of the ring (the shoelace sum),
// computed with overflow-safe integer cross products. Positive for
// counter-clockwise rings, negative for clockwise rings.
//
// Complexity: O(n).
func (r Ring) SignedArea() int64 {
	if len(r) < 3 {
		return 0
	}
	var sum int64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i].Cross(r[j])
	}
	return sum
}

// Area returns the unsigned area of the ring, in squared kernel units.
func (r Ring) Area() float64 {
	a := r.SignedArea()
	if a < 0 {
		a = -a
	}
	return float64(a) / 2
}

// BoundingBox is an axis-aligned box in kernel integer units.
type BoundingBox struct {
	X, Y, W, H int64
}

// Contains reports whether bb fully contains other (inclusive of touching
// edges).
func (bb BoundingBox) Contains(other BoundingBox) bool {
	return bb.X <= other.X && bb.Y <= other.Y &&
		bb.X+bb.W >= other.X+other.W && bb.Y+bb.H >= other.Y+other.H
}

// Area returns W*H.
func (bb BoundingBox) Area() int64 {
	return bb.W * bb.H
}

// BoundingBox computes the ring's axis-aligned bounding box. The zero
// value is returned for an empty ring.
//
// Complexity: O(n).
func (r Ring) BoundingBox() BoundingBox {
	if len(r) == 0 {
		return BoundingBox{}
	}
	minX, minY := r[0].X, r[0].Y
	maxX, maxY := r[0].X, r[0].Y
	for _, p := range r[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return BoundingBox{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Polygon is an outer ring plus zero or more holes, with the identity and
// metadata the engine attaches at ingest time.
type Polygon struct {
	// ID is assigned by New when the polygon is built. The NFP cache
	// does not key on it: cache keys use the ClassIDs of part templates
	// and sheets.
	ID uuid.UUID

	// Source names the part class this polygon instance was derived
	// from (e.g. the original, unrotated part definition).
	Source string

	// Rotation is the angle in degrees applied to produce this instance
	// from Source.
	Rotation float64

	// Quantity is a hint carried from ingest. The engine does not read
	// it; copies are expanded from the quantities passed to Initialize.
	Quantity int

	// IsSheet marks this polygon as stock rather than a part to place.
	IsSheet bool

	// Label is an optional caller-supplied display name.
	Label string

	Outer Ring
	Holes []Ring
}

// Reference returns the polygon's anchor vertex, the first vertex of its
// outer ring, used as the NFP translation reference throughout the nfp
// package.
func (p Polygon) Reference() point.Point {
	if len(p.Outer) == 0 {
		return point.Zero
	}
	return p.Outer[0]
}

// BoundingBox computes the bounding box of the outer ring (holes are
// always interior to it, so they never widen the box).
func (p Polygon) BoundingBox() BoundingBox {
	return p.Outer.BoundingBox()
}

// SignedArea returns twice the signed outer-ring area minus the holes',
// i.e. the true area-with-holes doubled.
func (p Polygon) SignedArea() int64 {
	area := p.Outer.SignedArea()
	for _, h := range p.Holes {
		area += h.SignedArea() // holes are stored with negative signed area
	}
	return area
}

// Area returns the polygon's area (outer minus holes), in squared kernel
// units.
func (p Polygon) Area() float64 {
	a := p.SignedArea()
	if a < 0 {
		a = -a
	}
	return float64(a) / 2
}

// Centroid returns the area-weighted centroid of the outer ring, in real
// (unscaled-by-division) kernel coordinates. Degenerate (zero-area) rings
// fall back to the arithmetic mean of vertices.
//
// Complexity: O(n).
func (r Ring) Centroid() (cx, cy float64) {
	area := r.SignedArea()
	if area == 0 {
		if len(r) == 0 {
			return 0, 0
		}
		var sx, sy int64
		for _, p := range r {
			sx += p.X
			sy += p.Y
		}
		return float64(sx) / float64(len(r)), float64(sy) / float64(len(r))
	}
	var sx, sy float64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := float64(r[i].Cross(r[j]))
		sx += (float64(r[i].X) + float64(r[j].X)) * cross
		sy += (float64(r[i].Y) + float64(r[j].Y)) * cross
	}
	factor := 1.0 / (3 * float64(area))
	return sx * factor, sy * factor
}

// NewID returns a fresh, collision-free polygon identifier.
func NewID() uuid.UUID {
	return uuid.New()
}
