package genetic_test

import (
	"fmt"

	"github.com/shapenest/nestcore/genetic"
)

// Example demonstrates building an initial population, evaluating it
// with a placeholder fitness function, and advancing one generation.
func Example() {
	pop, err := genetic.NewPopulation([]int{0, 1, 2}, genetic.WithPopulationSize(4), genetic.WithSeed(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, ind := range pop.Individuals() {
		ind.Fitness = float64(len(ind.Order))
		ind.Evaluated = true
	}

	if err := pop.AdvanceGeneration(); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(pop.Generation())
	// Output: 1
}
