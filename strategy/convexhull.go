package strategy

import (
	"sort"

	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// convexHull scores a candidate by the area of the convex hull of every
// vertex belonging to part-at-pos and every already-placed polygon. Of
// the three strategies this one best rewards tightly interlocking
// arrangements, at the cost of an O(k log k) scan per candidate.
type convexHull struct{}

// ConvexHull returns the convex-hull-area placement strategy.
func ConvexHull() Strategy { return convexHull{} }

func (convexHull) Name() string { return "convex_hull" }

func (convexHull) Score(part polygon.Polygon, pos point.Point, placed []Placement) float64 {
	pts := collectVertices(part, pos, placed)
	hull := grahamScan(pts)
	return hullArea(hull)
}

func collectVertices(part polygon.Polygon, pos point.Point, placed []Placement) []point.Point {
	ref := part.Reference()
	moved := polygon.Translate(part, pos.Sub(ref))

	pts := make([]point.Point, 0, len(moved.Outer)+8*len(placed))
	pts = append(pts, moved.Outer...)
	for _, pl := range placed {
		pts = append(pts, pl.polygon.Outer...)
	}
	return pts
}

// grahamScan returns the convex hull of pts as a CCW-ordered ring,
// using exact integer cross products for every turn test so the result
// is deterministic across platforms.
func grahamScan(pts []point.Point) []point.Point {
	if len(pts) < 3 {
		return pts
	}

	pivot := pts[0]
	for _, p := range pts[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	uniq := make([]point.Point, 0, len(pts))
	seen := make(map[point.Point]bool, len(pts))
	for _, p := range pts {
		if p.Equal(pivot) || seen[p] {
			continue
		}
		seen[p] = true
		uniq = append(uniq, p)
	}

	sort.Slice(uniq, func(i, j int) bool {
		ci := point.CrossOrigin(pivot, uniq[i], uniq[j])
		if ci != 0 {
			return ci > 0 // counter-clockwise from pivot comes first
		}
		// Collinear with pivot: nearer point first so the scan can pop
		// it if a farther collinear point follows.
		return sqDist(pivot, uniq[i]) < sqDist(pivot, uniq[j])
	})

	hull := []point.Point{pivot}
	for _, p := range uniq {
		for len(hull) >= 2 && point.CrossOrigin(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

func sqDist(a, b point.Point) int64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// hullArea returns the unsigned area of a CCW-ordered point sequence via
// the shoelace formula.
func hullArea(hull []point.Point) float64 {
	if len(hull) < 3 {
		return 0
	}
	var sum int64
	n := len(hull)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += hull[i].Cross(hull[j])
	}
	if sum < 0 {
		sum = -sum
	}
	return float64(sum) / 2
}
