package strategy

import (
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// combinedBBox returns the bounding box of part translated to pos
// together with every already-placed polygon in placed, as (width,
// height) in kernel units. It is shared by Gravity and BoundingBox,
// which differ only in how they combine width and height.
func combinedBBox(part polygon.Polygon, pos point.Point, placed []Placement) (w, h int64) {
	ref := part.Reference()
	moved := polygon.Translate(part, pos.Sub(ref))
	bb := moved.BoundingBox()
	minX, minY := bb.X, bb.Y
	maxX, maxY := bb.X+bb.W, bb.Y+bb.H

	for _, pl := range placed {
		pbb := pl.polygon.BoundingBox()
		if pbb.X < minX {
			minX = pbb.X
		}
		if pbb.Y < minY {
			minY = pbb.Y
		}
		if pbb.X+pbb.W > maxX {
			maxX = pbb.X + pbb.W
		}
		if pbb.Y+pbb.H > maxY {
			maxY = pbb.Y + pbb.H
		}
	}
	return maxX - minX, maxY - minY
}

// gravity scores a candidate by 2*width + height of the combined
// bounding box, weighting horizontal compression over vertical so
// arrangements pull toward the gravity (left) axis.
type gravity struct{}

// Gravity returns the gravity placement strategy.
func Gravity() Strategy { return gravity{} }

func (gravity) Name() string { return "gravity" }

func (gravity) Score(part polygon.Polygon, pos point.Point, placed []Placement) float64 {
	w, h := combinedBBox(part, pos, placed)
	return float64(2*w + h)
}

// boundingBox scores a candidate by the area of the combined bounding
// box (width * height), with no directional weighting.
type boundingBox struct{}

// BoundingBox returns the bounding-box-area placement strategy.
func BoundingBox() Strategy { return boundingBox{} }

func (boundingBox) Name() string { return "box" }

func (boundingBox) Score(part polygon.Polygon, pos point.Point, placed []Placement) float64 {
	w, h := combinedBBox(part, pos, placed)
	return float64(w * h)
}
