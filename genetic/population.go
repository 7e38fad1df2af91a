package genetic

import "math/rand"

// Population holds one generation's worth of individuals plus the
// configuration and RNG stream that produces the next generation.
type Population struct {
	cfg         config
	rng         *rand.Rand
	generation  int
	individuals []*Individual
}

// NewPopulation builds the initial generation from initialOrder (the
// descending-absolute-area ordering the engine facade computes at
// Initialize): the first individual is exactly initialOrder with every
// rotation at index 0 (the unrotated instance), and the remaining
// PopulationSize-1 individuals are mutated copies of it — the variation
// operators applied to copies of the first individual.
func NewPopulation(initialOrder []int, opts ...Option) (*Population, error) {
	if len(initialOrder) == 0 {
		return nil, ErrEmptyOrder
	}
	cfg := newConfig(opts...)
	rng := rngFromSeed(cfg.seed)

	first := &Individual{
		Order:     append([]int(nil), initialOrder...),
		Rotations: make([]int, len(initialOrder)),
	}

	individuals := make([]*Individual, cfg.populationSize)
	individuals[0] = first
	for i := 1; i < cfg.populationSize; i++ {
		child := first.clone()
		mutate(&child, cfg.mutationRate, cfg.rotations, deriveRNG(rng, uint64(i)))
		individuals[i] = &child
	}

	return &Population{cfg: cfg, rng: rng, individuals: individuals}, nil
}

// Individuals returns every individual in the current generation, in
// stable slot order (not sorted by fitness).
func (p *Population) Individuals() []*Individual { return p.individuals }

// Generation returns the zero-based index of the current generation.
func (p *Population) Generation() int { return p.generation }

// Pending returns every individual not yet evaluated, the set the
// evaluator dispatches placement.Worker.Run against.
func (p *Population) Pending() []*Individual {
	var out []*Individual
	for _, ind := range p.individuals {
		if !ind.Evaluated {
			out = append(out, ind)
		}
	}
	return out
}

// FullyEvaluated reports whether every individual has Evaluated == true.
func (p *Population) FullyEvaluated() bool {
	for _, ind := range p.individuals {
		if !ind.Evaluated {
			return false
		}
	}
	return true
}

// Best returns the evaluated individual with the lowest fitness; callers
// should only trust it once FullyEvaluated reports true, though it is
// safe to call at any time (unevaluated individuals are skipped, and the
// first individual is returned only when none has been evaluated yet).
func (p *Population) Best() *Individual {
	best := p.individuals[0]
	for _, ind := range p.individuals[1:] {
		if ind.Evaluated && (!best.Evaluated || ind.Fitness < best.Fitness) {
			best = ind
		}
	}
	return best
}

// AdvanceGeneration produces the next generation in place: the top
// EliteCount individuals (by ascending fitness) survive unchanged, and
// the rest are produced by rank-weighted selection, OX1 crossover, and
// per-slot mutation. It fails with ErrNotFullyEvaluated if any
// individual's fitness is stale.
func (p *Population) AdvanceGeneration() error {
	if !p.FullyEvaluated() {
		return ErrNotFullyEvaluated
	}

	selector := newRankWeighted(p.individuals)
	n := len(p.individuals)
	next := make([]*Individual, 0, n)

	elite := p.cfg.eliteCount
	if elite > n {
		elite = n
	}
	for i := 0; i < elite; i++ {
		next = append(next, selector.sorted[i])
	}

	genRNG := deriveRNG(p.rng, uint64(p.generation))
	for len(next) < n {
		a := selector.pick(genRNG)
		b := selector.pick(genRNG)
		child := crossover(*a, *b, genRNG)
		mutate(&child, p.cfg.mutationRate, p.cfg.rotations, genRNG)
		next = append(next, &child)
	}

	p.individuals = next
	p.generation++
	return nil
}
