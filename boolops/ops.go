package boolops

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/shapenest/nestcore/polygon"
)

// Union returns the union of all polygons in ps. A union of disjoint
// input may split into multiple result polygons; callers must handle a
// multi-polygon result.
//
// Complexity: O(n log n) per pairwise merge, driven by polyclip-go.
func Union(ps []polygon.Polygon) []polygon.Polygon {
	if len(ps) == 0 {
		return nil
	}
	acc := toClipPolygon(ps[0])
	for _, p := range ps[1:] {
		acc = acc.Construct(polyclip.UNION, toClipPolygon(p))
	}
	return fromClipPolygon(acc)
}

// Intersect returns the intersection of a and b, possibly empty.
func Intersect(a, b polygon.Polygon) []polygon.Polygon {
	result := toClipPolygon(a).Construct(polyclip.INTERSECTION, toClipPolygon(b))
	return fromClipPolygon(result)
}

// Difference returns a minus b, possibly empty, possibly split into
// multiple components.
func Difference(a, b polygon.Polygon) []polygon.Polygon {
	result := toClipPolygon(a).Construct(polyclip.DIFFERENCE, toClipPolygon(b))
	return fromClipPolygon(result)
}

// DifferenceMulti returns a minus the union of subtrahends, which is how
// the placement worker subtracts the union of outer NFPs from an inner
// NFP.
func DifferenceMulti(a polygon.Polygon, subtrahends []polygon.Polygon) []polygon.Polygon {
	if len(subtrahends) == 0 {
		return []polygon.Polygon{a}
	}
	merged := Union(subtrahends)
	if len(merged) == 0 {
		return []polygon.Polygon{a}
	}
	acc := []polygon.Polygon{a}
	for _, sub := range merged {
		var next []polygon.Polygon
		for _, cur := range acc {
			next = append(next, Difference(cur, sub)...)
		}
		acc = next
		if len(acc) == 0 {
			break
		}
	}
	return acc
}
