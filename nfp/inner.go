package nfp

import (
	"github.com/shapenest/nestcore/boolops"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// frameExpansion is the fraction the sheet's bounding box is enlarged by
// when building the enclosing frame, matching the source implementation's
// 10% margin.
const frameExpansion = 0.1

// InnerNFP returns the region part's reference vertex may occupy while
// part stays entirely within sheet: the classic "enlarged frame" trick,
// since no direct Minkowski-difference construction handles an unbounded
// containing region cleanly. A frame rectangle 10% larger than sheet's
// bounding box is built with sheet cut out as a hole; the outer NFP of
// (frame, part) computed with inside=true produces a result whose
// interior boundary — the part of its boundary that traces around the
// hole — is exactly the inner NFP of sheet and part. Subtracting the
// outer NFP of each of sheet's own holes against part removes positions
// where part would land inside one of those holes.
//
// Complexity: dominated by the frame's outer-NFP computation, O(n*m).
func InnerNFP(sheet, part polygon.Polygon) (Result, error) {
	sheetBB, partBB := sheet.BoundingBox(), part.BoundingBox()
	if partBB.W > sheetBB.W || partBB.H > sheetBB.H {
		return Result{}, ErrNFPEmpty
	}

	frame := buildFrame(sheet)

	frameResult, err := Compute(frame, part, true, DefaultDegeneracyGate())
	if err != nil {
		return Result{}, err
	}

	// The frame's NFP hole(s), where present, are the true inner-NFP
	// regions directly (the classic construction's "children" polygons).
	// The orbital fallback never produces holes, so fall back to
	// subtracting the sheet itself from the traced boundary.
	var regions []polygon.Polygon
	for _, h := range frameResult.Polygon.Holes {
		if hp, err := polygon.New(h.Reverse(), nil); err == nil {
			regions = append(regions, hp)
		}
	}
	if len(regions) == 0 {
		regions = boolops.Difference(frameResult.Polygon, sheet)
	}
	if len(regions) == 0 {
		return Result{}, ErrNFPEmpty
	}

	result := largestByArea(regions)
	quality := frameResult.Quality

	for _, hole := range sheet.Holes {
		holeAsOuter, err := polygon.New(hole.Reverse(), nil)
		if err != nil {
			continue
		}
		holeNFP, err := Compute(holeAsOuter, part, false, DefaultDegeneracyGate())
		if err != nil {
			continue
		}
		diffed := boolops.Difference(result, holeNFP.Polygon)
		if len(diffed) == 0 {
			return Result{}, ErrNFPEmpty
		}
		result = largestByArea(diffed)
	}

	return Result{Polygon: result, Quality: quality}, nil
}

// buildFrame returns a rectangle around sheet's bounding box, its width
// and height grown in total by frameExpansion (split between the two
// sides and truncated to whole kernel units, so a small sheet may get no
// margin), with sheet's outer ring cut out as a hole.
func buildFrame(sheet polygon.Polygon) polygon.Polygon {
	bb := sheet.BoundingBox()
	growW := int64(float64(bb.W) * frameExpansion)
	growH := int64(float64(bb.H) * frameExpansion)
	halfW, halfH := growW/2, growH/2

	x0 := bb.X - halfW
	y0 := bb.Y - halfH
	x1 := bb.X + bb.W + growW - halfW
	y1 := bb.Y + bb.H + growH - halfH

	outer := polygon.Ring{
		point.New(x0, y0),
		point.New(x1, y0),
		point.New(x1, y1),
		point.New(x0, y1),
	}

	frame, err := polygon.New(outer, []polygon.Ring{sheet.Outer})
	if err != nil {
		// The hole is sheet's own valid outer ring and New's bounding-box
		// containment check is inclusive, so this is unreachable; fall
		// back to a holeless frame rather than panicking.
		frame, _ = polygon.New(outer, nil)
	}
	return frame
}
