package polygon

import (
	"errors"
	"math"

	"github.com/shapenest/nestcore/point"
)

// minRingArea is the doubled-area value at which a ring is treated as
// zero-area and rejected at ingest.
const minRingArea = 0

// New validates outer and holes and returns a Polygon with a fresh ID,
// canonical CCW outer winding, and CCW-when-reversed hole winding.
//
// Validation, in order:
//  1. outer has >= 3 vertices after consecutive-duplicate collapse.
//  2. outer's doubled area is non-zero.
//  3. each hole independently satisfies the same two checks.
//  4. each hole's bounding box is contained by outer's bounding box
//     (a necessary, not sufficient, proxy for "holes lie strictly inside
//     the outer ring" — exact containment is enforced later by boolops
//     when the polygon participates in a boolean operation).
//
// Complexity: O(n + sum of hole sizes).
func New(outer Ring, holes []Ring) (Polygon, error) {
	cleanOuter, err := cleanRing(outer)
	if err != nil {
		return Polygon{}, invalidf("New", "outer ring: %v", err)
	}
	if cleanOuter.SignedArea() < 0 {
		cleanOuter = cleanOuter.Reverse()
	}

	cleanHoles := make([]Ring, 0, len(holes))
	outerBB := cleanOuter.BoundingBox()
	for i, h := range holes {
		ch, err := cleanRing(h)
		if err != nil {
			return Polygon{}, invalidf("New", "hole %d: %v", i, err)
		}
		if ch.SignedArea() > 0 {
			ch = ch.Reverse() // holes are stored clockwise (negative area)
		}
		if !outerBB.Contains(ch.BoundingBox()) {
			return Polygon{}, errors.Join(ErrHoleOutsideOuter,
				invalidf("New", "hole %d: bounding box not inside outer ring", i))
		}
		cleanHoles = append(cleanHoles, ch)
	}

	return Polygon{
		ID:       NewID(),
		Outer:    cleanOuter,
		Holes:    cleanHoles,
		Quantity: 1,
	}, nil
}

// cleanRing removes consecutive duplicate vertices (including the
// closing duplicate, if the caller supplied one) and rejects the result
// if fewer than 3 vertices or zero area remain.
func cleanRing(r Ring) (Ring, error) {
	deduped := make(Ring, 0, len(r))
	for i, p := range r {
		if i == 0 || !p.Equal(deduped[len(deduped)-1]) {
			deduped = append(deduped, p)
		}
	}
	// Drop a closing vertex equal to the first.
	if len(deduped) > 1 && deduped[0].Equal(deduped[len(deduped)-1]) {
		deduped = deduped[:len(deduped)-1]
	}
	if len(deduped) < 3 {
		return nil, errTooFewVertices
	}
	if deduped.SignedArea() == minRingArea {
		return nil, errZeroArea
	}
	return deduped, nil
}

// errTooFewVertices and errZeroArea are cleanRing's internal reasons;
// callers wrap them with invalidf to attach ErrInvalidPolygon identity and
// calling-method context.
var (
	errTooFewVertices = errors.New("fewer than 3 vertices after duplicate removal")
	errZeroArea       = errors.New("zero-area ring")
)

// IngestReal is the single ingest path from real-valued coordinates: it
// scales outer/holes by scale using round-half-to-even (point.FromReal),
// rejects non-finite input up front, and then validates exactly as New
// does. This is the only ingest entry point — there is no separate
// "ingest without scale" overload to keep in sync.
//
// Complexity: O(n + sum of hole sizes).
func IngestReal(outer [][2]float64, holes [][][2]float64, scale float64) (Polygon, error) {
	outerPts, err := realRingToPoints(outer, scale)
	if err != nil {
		return Polygon{}, invalidf("IngestReal", "outer ring: %v", err)
	}
	holeRings := make([]Ring, 0, len(holes))
	for i, h := range holes {
		pts, err := realRingToPoints(h, scale)
		if err != nil {
			return Polygon{}, invalidf("IngestReal", "hole %d: %v", i, err)
		}
		holeRings = append(holeRings, pts)
	}
	return New(outerPts, holeRings)
}

func realRingToPoints(coords [][2]float64, scale float64) (Ring, error) {
	out := make(Ring, len(coords))
	for i, c := range coords {
		if math.IsNaN(c[0]) || math.IsNaN(c[1]) || math.IsInf(c[0], 0) || math.IsInf(c[1], 0) {
			return nil, errNonFinite
		}
		out[i] = point.FromReal(c[0], c[1], scale)
	}
	return out, nil
}

var errNonFinite = errors.New("non-finite coordinate")

// Rotate returns a new Polygon rotated by angleDeg degrees about the
// origin; the resulting integer polygon is re-validated after the
// floating-point roundtrip. The returned polygon's Rotation field
// accumulates angleDeg onto p.Rotation.
//
// Complexity: O(n).
func Rotate(p Polygon, angleDeg float64) (Polygon, error) {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	rotateRing := func(r Ring) Ring {
		out := make(Ring, len(r))
		for i, pt := range r {
			x := float64(pt.X)
			y := float64(pt.Y)
			out[i] = point.New(
				int64(math.RoundToEven(x*cos-y*sin)),
				int64(math.RoundToEven(x*sin+y*cos)),
			)
		}
		return out
	}

	outer, err := cleanRing(rotateRing(p.Outer))
	if err != nil {
		return Polygon{}, invalidf("Rotate", "outer ring degenerate after rotation: %v", err)
	}
	if outer.SignedArea() < 0 {
		outer = outer.Reverse()
	}

	holes := make([]Ring, 0, len(p.Holes))
	for i, h := range p.Holes {
		ch, err := cleanRing(rotateRing(h))
		if err != nil {
			return Polygon{}, invalidf("Rotate", "hole %d degenerate after rotation: %v", i, err)
		}
		if ch.SignedArea() > 0 {
			ch = ch.Reverse()
		}
		holes = append(holes, ch)
	}

	out := p
	out.Outer = outer
	out.Holes = holes
	out.Rotation = p.Rotation + angleDeg
	return out, nil
}

// Translate returns a new Polygon with every vertex shifted by delta.
// Metadata (ID, Source, Rotation, ...) is preserved unchanged.
//
// Complexity: O(n).
func Translate(p Polygon, delta point.Point) Polygon {
	out := p
	out.Outer = translateRing(p.Outer, delta)
	if len(p.Holes) > 0 {
		out.Holes = make([]Ring, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = translateRing(h, delta)
		}
	}
	return out
}

func translateRing(r Ring, delta point.Point) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = p.Add(delta)
	}
	return out
}

// Equal reports whether a and b have structurally identical outer rings
// and holes (same vertex sequence, same winding), ignoring ID/metadata.
func Equal(a, b Polygon) bool {
	if !ringEqual(a.Outer, b.Outer) {
		return false
	}
	if len(a.Holes) != len(b.Holes) {
		return false
	}
	for i := range a.Holes {
		if !ringEqual(a.Holes[i], b.Holes[i]) {
			return false
		}
	}
	return true
}

func ringEqual(a, b Ring) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
