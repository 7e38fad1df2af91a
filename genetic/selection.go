package genetic

import (
	"math/rand"
	"sort"
)

// rankWeighted implements rank-weighted selection: sort
// individuals ascending by fitness (lower is better), then give the
// best individual weight len(pop), the next weight len(pop)-1, down to
// weight 1 for the worst, and pick one via a single weighted draw. This
// is the classic linear-ranking selection scheme: it depends only on
// relative order, not on the magnitude of fitness differences, which
// keeps selection pressure stable even when one individual's fitness is
// enormously larger than the rest (as an all-unplaced individual's is).
type rankWeighted struct {
	sorted []*Individual
	cum    []int
	total  int
}

func newRankWeighted(pop []*Individual) rankWeighted {
	sorted := make([]*Individual, len(pop))
	copy(sorted, pop)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness < sorted[j].Fitness
	})

	n := len(sorted)
	cum := make([]int, n)
	running := 0
	for i := 0; i < n; i++ {
		weight := n - i
		running += weight
		cum[i] = running
	}
	return rankWeighted{sorted: sorted, cum: cum, total: running}
}

// pick draws one individual, weighted toward better ranks.
func (r rankWeighted) pick(rng *rand.Rand) *Individual {
	if r.total == 0 {
		return r.sorted[0]
	}
	target := rng.Intn(r.total) + 1
	idx := sort.SearchInts(r.cum, target)
	if idx >= len(r.sorted) {
		idx = len(r.sorted) - 1
	}
	return r.sorted[idx]
}

// best returns the individual with the lowest fitness.
func (r rankWeighted) best() *Individual {
	return r.sorted[0]
}
