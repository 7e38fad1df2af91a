package strategy_test

import (
	"testing"

	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/shapenest/nestcore/strategy"
	"github.com/stretchr/testify/require"
)

func rect(t *testing.T, x, y, w, h int64) polygon.Polygon {
	t.Helper()
	p, err := polygon.New(polygon.Ring{
		point.New(x, y),
		point.New(x+w, y),
		point.New(x+w, y+h),
		point.New(x, y+h),
	}, nil)
	require.NoError(t, err)
	return p
}

func TestGravityPrefersNarrowerArrangement(t *testing.T) {
	g := strategy.Gravity()
	part := rect(t, 0, 0, 1, 2)

	narrow := g.Score(part, point.New(0, 0), nil)
	require.Equal(t, float64(2*1+2), narrow)
}

func TestBoundingBoxScoresArea(t *testing.T) {
	b := strategy.BoundingBox()
	part := rect(t, 0, 0, 3, 2)
	require.Equal(t, float64(6), b.Score(part, point.New(0, 0), nil))
}

func TestConvexHullOfSingleSquareIsItsArea(t *testing.T) {
	c := strategy.ConvexHull()
	part := rect(t, 0, 0, 4, 4)
	require.InDelta(t, 16, c.Score(part, point.New(0, 0), nil), 1e-6)
}

func TestLessLexicographicTieBreak(t *testing.T) {
	a := strategy.Candidate{Position: point.New(5, 1), Score: 10}
	b := strategy.Candidate{Position: point.New(2, 1), Score: 10}
	require.True(t, strategy.Less(b, a))
	require.False(t, strategy.Less(a, b))

	c := strategy.Candidate{Position: point.New(2, 0), Score: 10}
	require.True(t, strategy.Less(c, b))
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := strategy.New(strategy.Type(99))
	require.ErrorIs(t, err, strategy.ErrUnknownType)
}

func TestNewDispatchesNamedStrategies(t *testing.T) {
	g, err := strategy.New(strategy.TypeGravity)
	require.NoError(t, err)
	require.Equal(t, "gravity", g.Name())

	b, err := strategy.New(strategy.TypeBoundingBox)
	require.NoError(t, err)
	require.Equal(t, "box", b.Name())

	c, err := strategy.New(strategy.TypeConvexHull)
	require.NoError(t, err)
	require.Equal(t, "convex_hull", c.Name())
}
