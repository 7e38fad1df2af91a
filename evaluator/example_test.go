package evaluator_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shapenest/nestcore/evaluator"
	"github.com/shapenest/nestcore/genetic"
	"github.com/shapenest/nestcore/nfpcache"
	"github.com/shapenest/nestcore/placement"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/shapenest/nestcore/strategy"
)

func Example() {
	sheetRing := polygon.Ring{point.New(0, 0), point.New(4, 0), point.New(4, 3), point.New(0, 3)}
	sheetPoly, _ := polygon.New(sheetRing, nil)

	partRing := polygon.Ring{point.New(0, 0), point.New(1, 0), point.New(1, 1), point.New(0, 1)}
	partPoly, _ := polygon.New(partRing, nil)

	ev := evaluator.Evaluator{
		Templates: []evaluator.PartTemplate{{
			ClassID:   uuid.New(),
			Source:    "square",
			Rotations: []placement.RotationOption{{Index: 0, Polygon: partPoly}},
		}},
		Sheets:  []placement.Sheet{{ClassID: uuid.New(), Polygon: sheetPoly}},
		Worker:  placement.Worker{Strategy: strategy.Gravity(), Cache: nfpcache.New()},
		Threads: 1,
	}

	pop, err := genetic.NewPopulation([]int{0}, genetic.WithPopulationSize(2), genetic.WithSeed(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := ev.EvaluateAll(context.Background(), pop.Individuals()); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(pop.FullyEvaluated())
	// Output: true
}
