package nfp_test

import (
	"testing"

	"github.com/shapenest/nestcore/nfp"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T, x, y, w int64) polygon.Polygon {
	t.Helper()
	p, err := polygon.New(polygon.Ring{
		point.New(x, y),
		point.New(x+w, y),
		point.New(x+w, y+w),
		point.New(x, y+w),
	}, nil)
	require.NoError(t, err)
	return p
}

func TestComputeOuterNFPOfUnitSquares(t *testing.T) {
	a := square(t, 0, 0, 10)
	b := square(t, 0, 0, 10)

	result, err := nfp.Compute(a, b, false, nfp.DefaultDegeneracyGate())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(result.Polygon.Outer), 4)

	// The outer NFP of two equal axis-aligned squares is itself a square
	// with side length 2w, centered so that b's reference vertex must
	// stay outside it to avoid overlapping a.
	require.InDelta(t, 400.0, result.Polygon.Area(), 1e-6)
}

func TestComputeDegenerateInputFallsBackToOrbital(t *testing.T) {
	gate := nfp.DegeneracyGate{MinArea: 1 << 30, MinBBoxDimension: 1, MaxCollinearFraction: 0.8}
	a := square(t, 0, 0, 10)
	b := square(t, 0, 0, 10)

	result, err := nfp.Compute(a, b, false, gate)
	require.NoError(t, err)
	require.Equal(t, nfp.OrbitalApproximate, result.Quality)
}

func TestInnerNFPOfSquareInLargerSquare(t *testing.T) {
	sheet := square(t, 0, 0, 100)
	part := square(t, 0, 0, 10)

	result, err := nfp.InnerNFP(sheet, part)
	require.NoError(t, err)
	require.Greater(t, result.Polygon.Area(), 0.0)
}

func TestInnerNFPRejectsPartLargerThanSheet(t *testing.T) {
	sheet := square(t, 0, 0, 10)
	part := square(t, 0, 0, 100)

	_, err := nfp.InnerNFP(sheet, part)
	require.Error(t, err)
}

func TestQualityString(t *testing.T) {
	require.Equal(t, "exact", nfp.Exact.String())
	require.Equal(t, "orbital_approximate", nfp.OrbitalApproximate.String())
	require.Equal(t, "coarse_aabb", nfp.CoarseAABB.String())
}
