package placement

import (
	"github.com/google/uuid"
	"github.com/shapenest/nestcore/polygon"
	"github.com/shapenest/nestcore/strategy"
)

// RotationOption is one permitted rotation of a part, pre-rotated and
// pre-grown by half the configured spacing.
type RotationOption struct {
	// Index is the rotation bucket index (0..Rotations-1), never a raw
	// angle, matching the NFP cache's key convention.
	Index int
	// Polygon is the part geometry at this rotation, in its own
	// canonical (untranslated) frame.
	Polygon polygon.Polygon
}

// PartInstance is one copy of a part awaiting placement: a genome slot
// names the rotation the genetic search prefers (Primary), and the
// remaining permitted rotations are carried as fallbacks for the "try
// the next rotation" recovery path taken when an inner NFP comes back
// empty.
type PartInstance struct {
	// InstanceID identifies this specific copy; stable across a single
	// Run call, used as the Placement.PartID.
	InstanceID string

	// ClassID identifies the part's shape class independent of which
	// copy or rotation is in hand; it is the identity half of the NFP
	// cache key.
	ClassID uuid.UUID

	// Source is the human-readable part class name.
	Source string

	// Primary is the rotation the genetic search chose for this slot.
	Primary RotationOption

	// Fallbacks are the other permitted rotations, tried in order only
	// if Primary's inner NFP is empty on the current sheet.
	Fallbacks []RotationOption
}

// rotations returns Primary followed by Fallbacks, the order Run tries
// them in.
func (p PartInstance) rotations() []RotationOption {
	out := make([]RotationOption, 0, 1+len(p.Fallbacks))
	out = append(out, p.Primary)
	out = append(out, p.Fallbacks...)
	return out
}

// Sheet is one stock sheet awaiting parts, already shrunk by half the
// configured spacing.
type Sheet struct {
	ClassID uuid.UUID
	Polygon polygon.Polygon
}

// SheetPlacements is every placement made on a single sheet, in
// placement order.
type SheetPlacements []strategy.Placement

// Result is the outcome of one Run call: the placements grouped by
// sheet, the scalar fitness (lower is better), the total area actually
// occupied by placed parts, the optional alignment-bonus edge length,
// and every part instance that could not be placed on any sheet.
type Result struct {
	Placements   []SheetPlacements
	Fitness      float64
	OccupiedArea float64
	MergedLength float64
	Unplaced     []PartInstance

	// Cancelled reports whether ctx was done before every part was
	// considered; Placements/Fitness still reflect whatever was decided
	// before cancellation — discarding a partial result is the caller's
	// choice, not Run's.
	Cancelled bool
}
