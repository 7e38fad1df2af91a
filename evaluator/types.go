package evaluator

import (
	"github.com/google/uuid"
	"github.com/shapenest/nestcore/placement"
)

// PartTemplate is one part class's full set of permitted rotations, in
// the order genetic.Individual.Rotations indexes into. InstanceID is
// left for the evaluator to stamp per-individual, since the same part
// class may appear in several individuals' Results simultaneously.
type PartTemplate struct {
	ClassID   uuid.UUID
	Source    string
	Rotations []placement.RotationOption
}

// instance builds the placement.PartInstance for this template at the
// given rotation bucket, with Fallbacks carrying every other permitted
// rotation in bucket order starting just after the chosen one, for the
// worker's "try the next rotation" recovery path.
func (t PartTemplate) instance(instanceID string, rotationIndex int) placement.PartInstance {
	n := len(t.Rotations)
	idx := rotationIndex
	if idx < 0 || idx >= n {
		idx = 0
	}

	fallbacks := make([]placement.RotationOption, 0, n-1)
	for i := 1; i < n; i++ {
		fallbacks = append(fallbacks, t.Rotations[(idx+i)%n])
	}

	return placement.PartInstance{
		InstanceID: instanceID,
		ClassID:    t.ClassID,
		Source:     t.Source,
		Primary:    t.Rotations[idx],
		Fallbacks:  fallbacks,
	}
}
