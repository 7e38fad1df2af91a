package boolops_test

import (
	"testing"

	"github.com/shapenest/nestcore/boolops"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/stretchr/testify/require"
)

func square(x, y, w int64) polygon.Ring {
	return polygon.Ring{
		point.New(x, y),
		point.New(x+w, y),
		point.New(x+w, y+w),
		point.New(x, y+w),
	}
}

func mustPolygon(t *testing.T, r polygon.Ring, holes []polygon.Ring) polygon.Polygon {
	t.Helper()
	p, err := polygon.New(r, holes)
	require.NoError(t, err)
	return p
}

func TestUnionOfOverlappingSquares(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 10), nil)
	b := mustPolygon(t, square(5, 0, 10), nil)

	result := boolops.Union([]polygon.Polygon{a, b})
	require.Len(t, result, 1)
	require.InDelta(t, 150.0, result[0].Area(), 1e-6)
}

func TestUnionOfDisjointSquaresSplits(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 10), nil)
	b := mustPolygon(t, square(100, 100, 10), nil)

	result := boolops.Union([]polygon.Polygon{a, b})
	require.Len(t, result, 2)
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 10), nil)
	b := mustPolygon(t, square(100, 100, 10), nil)

	result := boolops.Intersect(a, b)
	require.Empty(t, result)
}

func TestDifferenceRemovesOverlap(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 10), nil)
	b := mustPolygon(t, square(5, 0, 10), nil)

	result := boolops.Difference(a, b)
	require.Len(t, result, 1)
	require.InDelta(t, 50.0, result[0].Area(), 1e-6)
}

func TestOffsetGrowsArea(t *testing.T) {
	p := mustPolygon(t, square(0, 0, 10), nil)
	grown := boolops.Offset(p, 1, 2, 0.25)
	require.Len(t, grown, 1)
	require.Greater(t, grown[0].Area(), p.Area())
}

func TestOffsetShrinksArea(t *testing.T) {
	p := mustPolygon(t, square(0, 0, 10), nil)
	shrunk := boolops.Offset(p, -1, 2, 0.25)
	require.Len(t, shrunk, 1)
	require.Less(t, shrunk[0].Area(), p.Area())
}

func TestCleanDropsCollinearVertices(t *testing.T) {
	r := polygon.Ring{
		point.New(0, 0),
		point.New(5, 0), // collinear with (0,0)-(10,0)
		point.New(10, 0),
		point.New(10, 10),
		point.New(0, 10),
	}
	p := mustPolygon(t, r, nil)
	cleaned, ok := boolops.Clean(p)
	require.True(t, ok)
	require.Len(t, cleaned.Outer, 4)
}

func TestSimplifyReducesVertexCount(t *testing.T) {
	var r polygon.Ring
	for i := int64(0); i <= 100; i++ {
		r = append(r, point.New(i, 0))
	}
	r = append(r, point.New(100, 100), point.New(0, 100))
	p := mustPolygon(t, r, nil)

	simplified := boolops.Simplify(p, 0.5)
	require.Less(t, len(simplified.Outer), len(p.Outer))
}
