package placement_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shapenest/nestcore/nfpcache"
	"github.com/shapenest/nestcore/placement"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/shapenest/nestcore/strategy"
	"github.com/stretchr/testify/require"
)

func rect(t *testing.T, w, h int64) polygon.Polygon {
	t.Helper()
	p, err := polygon.New(polygon.Ring{
		point.New(0, 0),
		point.New(w, 0),
		point.New(w, h),
		point.New(0, h),
	}, nil)
	require.NoError(t, err)
	return p
}

func instance(t *testing.T, id string, p polygon.Polygon) placement.PartInstance {
	t.Helper()
	return placement.PartInstance{
		InstanceID: id,
		ClassID:    uuid.New(),
		Source:     id,
		Primary:    placement.RotationOption{Index: 0, Polygon: p},
	}
}

func newWorker() placement.Worker {
	return placement.Worker{
		Strategy: strategy.Gravity(),
		Cache:    nfpcache.New(),
	}
}

// Two unit squares on a 4x3 sheet, rotations disabled: both must place,
// fitness dominated by sheet area 12.
func TestTwoUnitSquaresOnSheet(t *testing.T) {
	sheet := placement.Sheet{ClassID: uuid.New(), Polygon: rect(t, 4, 3)}
	parts := []placement.PartInstance{
		instance(t, "a", rect(t, 1, 1)),
		instance(t, "b", rect(t, 1, 1)),
	}

	result := newWorker().Run(context.Background(), []placement.Sheet{sheet}, parts)

	require.Empty(t, result.Unplaced)
	require.Len(t, result.Placements, 1)
	require.Len(t, result.Placements[0], 2)
	require.GreaterOrEqual(t, result.Fitness, 12.0)
	require.Less(t, result.Fitness, 1e8)

	for _, pl := range result.Placements[0] {
		require.GreaterOrEqual(t, pl.Position.X, int64(0))
		require.LessOrEqual(t, pl.Position.X, int64(3))
		require.GreaterOrEqual(t, pl.Position.Y, int64(0))
		require.LessOrEqual(t, pl.Position.Y, int64(2))
	}
}

// A part larger than every sheet becomes unplaced with a finite but
// dominant fitness.
func TestPartLargerThanSheetIsUnplaced(t *testing.T) {
	sheet := placement.Sheet{ClassID: uuid.New(), Polygon: rect(t, 5, 5)}
	parts := []placement.PartInstance{instance(t, "big", rect(t, 10, 10))}

	result := newWorker().Run(context.Background(), []placement.Sheet{sheet}, parts)

	require.Len(t, result.Unplaced, 1)
	require.Empty(t, result.Placements[0])
	require.GreaterOrEqual(t, result.Fitness, 4e8)
}

func TestCancellationStopsEarly(t *testing.T) {
	sheet := placement.Sheet{ClassID: uuid.New(), Polygon: rect(t, 100, 100)}
	var parts []placement.PartInstance
	for i := 0; i < 5; i++ {
		parts = append(parts, instance(t, string(rune('a'+i)), rect(t, 2, 2)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newWorker().Run(ctx, []placement.Sheet{sheet}, parts)
	require.True(t, result.Cancelled)
	require.Len(t, result.Unplaced, 5)
}

func TestGravityVsBoundingBoxBothPlaceThreeRectangles(t *testing.T) {
	sheet := placement.Sheet{ClassID: uuid.New(), Polygon: rect(t, 3, 2)}
	parts := func() []placement.PartInstance {
		return []placement.PartInstance{
			instance(t, "a", rect(t, 1, 2)),
			instance(t, "b", rect(t, 1, 2)),
			instance(t, "c", rect(t, 1, 2)),
		}
	}

	gravityWorker := placement.Worker{Strategy: strategy.Gravity(), Cache: nfpcache.New()}
	boxWorker := placement.Worker{Strategy: strategy.BoundingBox(), Cache: nfpcache.New()}

	gravityResult := gravityWorker.Run(context.Background(), []placement.Sheet{sheet}, parts())
	boxResult := boxWorker.Run(context.Background(), []placement.Sheet{sheet}, parts())

	require.Empty(t, gravityResult.Unplaced)
	require.Empty(t, boxResult.Unplaced)
}
