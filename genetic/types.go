package genetic

import "github.com/shapenest/nestcore/placement"

// Individual is one genome: a permutation of part slot indices (Order)
// paired with a rotation bucket index per slot (Rotations), plus the
// memoized fitness and placement result from the last evaluation.
type Individual struct {
	Order     []int
	Rotations []int

	// Evaluated reports whether Fitness/Result reflect the current
	// Order/Rotations (false immediately after crossover/mutation,
	// until the evaluator runs placement.Worker.Run on it).
	Evaluated bool
	Fitness   float64
	Result    placement.Result
}

// clone returns a deep copy of ind, so mutation/crossover never alias
// another individual's slices.
func (ind Individual) clone() Individual {
	out := Individual{
		Order:     append([]int(nil), ind.Order...),
		Rotations: append([]int(nil), ind.Rotations...),
	}
	return out
}
