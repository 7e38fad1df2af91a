package point_test

import (
	"testing"

	"github.com/shapenest/nestcore/point"
	"github.com/stretchr/testify/require"
)

func TestFromRealRoundTrip(t *testing.T) {
	p := point.FromReal(12.5, -3.25, 1000)
	require.Equal(t, int64(12500), p.X)
	require.Equal(t, int64(-3250), p.Y)

	x, y := p.ToReal(1000)
	require.InDelta(t, 12.5, x, 1e-9)
	require.InDelta(t, -3.25, y, 1e-9)
}

func TestAddSubNeg(t *testing.T) {
	a := point.New(3, 4)
	b := point.New(1, -2)

	require.Equal(t, point.New(4, 2), a.Add(b))
	require.Equal(t, point.New(2, 6), a.Sub(b))
	require.Equal(t, point.New(-3, -4), a.Neg())
}

func TestCrossSign(t *testing.T) {
	// (1,0) x (0,1) = 1 > 0: counter-clockwise turn.
	require.Equal(t, int64(1), point.New(1, 0).Cross(point.New(0, 1)))
	// (0,1) x (1,0) = -1 < 0: clockwise turn.
	require.Equal(t, int64(-1), point.New(0, 1).Cross(point.New(1, 0)))
	// collinear vectors cross to zero.
	require.Equal(t, int64(0), point.New(2, 4).Cross(point.New(1, 2)))
}

func TestCrossLargeMagnitude(t *testing.T) {
	// Exercise the 128-bit intermediate path with large scaled coordinates;
	// each individual product stays within int64 so the "want" value below
	// can itself be computed without overflow.
	a := point.New(1_000_000_000, 2_000_000_000)
	b := point.New(3_000_000_000, 4_000_000_000)
	got := a.Cross(b)
	want := int64(1_000_000_000)*int64(4_000_000_000) - int64(2_000_000_000)*int64(3_000_000_000)
	require.Equal(t, want, got)
}

func TestCrossParallelVectorsCancelExactly(t *testing.T) {
	// Parallel vectors at the edge of the promised coordinate range must
	// cross to exactly zero even though the individual products (5e9*5e9)
	// would overflow a naive int64 multiplication.
	a := point.New(5_000_000_000, 5_000_000_000)
	b := point.New(5_000_000_000, 5_000_000_000)
	require.Equal(t, int64(0), a.Cross(b))
}

func TestCrossOrigin(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(2, 0)
	c := point.New(2, 2)
	// a->b->c is a left (counter-clockwise) turn: positive doubled area.
	require.Equal(t, int64(4), point.CrossOrigin(a, b, c))
}

func TestDot(t *testing.T) {
	require.Equal(t, int64(11), point.New(1, 2).Dot(point.New(3, 4)))
	require.Equal(t, int64(-11), point.New(-1, 2).Dot(point.New(3, -4)))
}

func TestEqual(t *testing.T) {
	require.True(t, point.New(1, 2).Equal(point.New(1, 2)))
	require.False(t, point.New(1, 2).Equal(point.New(2, 1)))
}
