package strategy

import (
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
)

// Placement is one already-decided (part, position, rotation) triple,
// the unit the placement worker accumulates as it fills a sheet and the
// unit every Strategy scores a new candidate against. It lives here
// rather than in package placement because placement depends on
// strategy, not the other way around.
type Placement struct {
	PartID   string
	SourceID string
	Position point.Point
	Rotation float64

	// polygon is the part's geometry already rotated and translated to
	// Position, cached so repeated Score calls in the same candidate
	// scan do not re-derive it.
	polygon polygon.Polygon
}

// NewPlacement returns a Placement carrying part's geometry translated
// to pos (part is assumed already rotated to the placement's rotation).
func NewPlacement(partID, sourceID string, part polygon.Polygon, pos point.Point, rotationDeg float64) Placement {
	ref := part.Reference()
	return Placement{
		PartID:   partID,
		SourceID: sourceID,
		Position: pos,
		Rotation: rotationDeg,
		polygon:  polygon.Translate(part, pos.Sub(ref)),
	}
}

// Polygon returns the placement's geometry in sheet coordinates.
func (pl Placement) Polygon() polygon.Polygon { return pl.polygon }

// Candidate is one scored position under consideration for the part
// currently being placed, used by placement to pick the best candidate
// and to break ties lexicographically.
type Candidate struct {
	Position point.Point
	Score    float64
}

// Less implements the candidate tie-break rule: lower score wins; ties
// broken by increasing X, then increasing Y.
func Less(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.Position.X != b.Position.X {
		return a.Position.X < b.Position.X
	}
	return a.Position.Y < b.Position.Y
}

// Strategy scores a candidate position for part among already-placed
// parts; lower is better, matching the engine-wide "fitness: lower is
// better" convention.
type Strategy interface {
	// Score returns the objective value for placing part (already
	// rotated, not yet translated) at pos, given the parts already
	// placed on the same sheet.
	Score(part polygon.Polygon, pos point.Point, placed []Placement) float64

	// Name returns a human-readable identifier for the strategy.
	Name() string
}
