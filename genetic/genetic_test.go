package genetic_test

import (
	"testing"

	"github.com/shapenest/nestcore/genetic"
	"github.com/stretchr/testify/require"
)

func TestNewPopulationRejectsEmptyOrder(t *testing.T) {
	_, err := genetic.NewPopulation(nil)
	require.ErrorIs(t, err, genetic.ErrEmptyOrder)
}

func TestNewPopulationFirstIndividualMatchesInitialOrder(t *testing.T) {
	pop, err := genetic.NewPopulation([]int{2, 0, 1}, genetic.WithPopulationSize(5), genetic.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, pop.Individuals(), 5)
	require.Equal(t, []int{2, 0, 1}, pop.Individuals()[0].Order)
}

func TestAdvanceGenerationRequiresFullEvaluation(t *testing.T) {
	pop, err := genetic.NewPopulation([]int{0, 1, 2}, genetic.WithPopulationSize(4))
	require.NoError(t, err)
	require.ErrorIs(t, t0AdvanceErr(pop), genetic.ErrNotFullyEvaluated)
}

func t0AdvanceErr(pop *genetic.Population) error {
	return pop.AdvanceGeneration()
}

func evaluateAll(pop *genetic.Population, fitness func(*genetic.Individual) float64) {
	for _, ind := range pop.Individuals() {
		ind.Fitness = fitness(ind)
		ind.Evaluated = true
	}
}

func TestAdvanceGenerationPreservesElite(t *testing.T) {
	pop, err := genetic.NewPopulation([]int{0, 1, 2, 3}, genetic.WithPopulationSize(6), genetic.WithSeed(42))
	require.NoError(t, err)

	evaluateAll(pop, func(ind *genetic.Individual) float64 { return float64(ind.Order[0]) })
	best := pop.Best()
	bestOrder := append([]int(nil), best.Order...)

	require.NoError(t, pop.AdvanceGeneration())
	require.Equal(t, bestOrder, pop.Individuals()[0].Order)
	require.Equal(t, 1, pop.Generation())
}

func TestDeterministicAcrossRunsWithSameSeed(t *testing.T) {
	buildAndAdvance := func() [][]int {
		pop, err := genetic.NewPopulation([]int{0, 1, 2, 3, 4}, genetic.WithPopulationSize(8), genetic.WithSeed(99), genetic.WithMutationRate(0.5), genetic.WithRotations(4))
		require.NoError(t, err)
		evaluateAll(pop, func(ind *genetic.Individual) float64 { return float64(ind.Order[0]*10 + ind.Rotations[0]) })
		require.NoError(t, pop.AdvanceGeneration())

		out := make([][]int, len(pop.Individuals()))
		for i, ind := range pop.Individuals() {
			out[i] = append([]int(nil), ind.Order...)
		}
		return out
	}

	a := buildAndAdvance()
	b := buildAndAdvance()
	require.Equal(t, a, b)
}

func TestEveryIndividualIsAPermutation(t *testing.T) {
	pop, err := genetic.NewPopulation([]int{0, 1, 2, 3, 4}, genetic.WithPopulationSize(10), genetic.WithSeed(5), genetic.WithMutationRate(0.8))
	require.NoError(t, err)

	for _, ind := range pop.Individuals() {
		seen := make(map[int]bool)
		for _, v := range ind.Order {
			require.False(t, seen[v], "duplicate part index %d", v)
			seen[v] = true
		}
		require.Len(t, seen, 5)
	}
}
