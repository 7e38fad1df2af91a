package placement_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shapenest/nestcore/nfpcache"
	"github.com/shapenest/nestcore/placement"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/shapenest/nestcore/strategy"
)

// Example packs two 1x1 squares onto a 4x3 sheet using the gravity
// strategy and reports how many sheets ended up with placements.
func Example() {
	sheet, _ := polygon.New(polygon.Ring{
		point.New(0, 0), point.New(4, 0), point.New(4, 3), point.New(0, 3),
	}, nil)
	square, _ := polygon.New(polygon.Ring{
		point.New(0, 0), point.New(1, 0), point.New(1, 1), point.New(0, 1),
	}, nil)

	w := placement.Worker{Strategy: strategy.Gravity(), Cache: nfpcache.New()}
	result := w.Run(context.Background(),
		[]placement.Sheet{{ClassID: uuid.New(), Polygon: sheet}},
		[]placement.PartInstance{
			{InstanceID: "a", ClassID: uuid.New(), Primary: placement.RotationOption{Polygon: square}},
			{InstanceID: "b", ClassID: uuid.New(), Primary: placement.RotationOption{Polygon: square}},
		})

	fmt.Println(len(result.Unplaced), len(result.Placements[0]))
	// Output: 0 2
}
