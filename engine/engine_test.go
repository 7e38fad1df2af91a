package engine_test

import (
	"testing"

	"github.com/shapenest/nestcore/engine"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/stretchr/testify/require"
)

func square(side int64) polygon.Polygon {
	p, err := polygon.New(polygon.Ring{
		point.New(0, 0), point.New(side, 0), point.New(side, side), point.New(0, side),
	}, nil)
	if err != nil {
		panic(err)
	}
	p.Source = "square"
	return p
}

func rect(w, h int64) polygon.Polygon {
	p, err := polygon.New(polygon.Ring{
		point.New(0, 0), point.New(w, 0), point.New(w, h), point.New(0, h),
	}, nil)
	if err != nil {
		panic(err)
	}
	p.Source = "sheet"
	return p
}

// TestStepBeforeInitializeIsUnconfigured exercises the state-machine
// guard: Start/Step before Initialize must fail, never panic.
func TestStepBeforeInitializeIsUnconfigured(t *testing.T) {
	e := engine.New()
	require.Equal(t, engine.Uninitialized, e.State())
	require.ErrorIs(t, e.Start(nil, nil, 1), engine.ErrUnconfigured)
	_, err := e.Step()
	require.ErrorIs(t, err, engine.ErrUnconfigured)
}

// TestTwoUnitSquaresOnSheet reproduces spec scenario 1: two 1x1
// squares nest onto a 4x3 sheet with rotations disabled and no
// unplaced parts.
func TestTwoUnitSquaresOnSheet(t *testing.T) {
	e := engine.New()
	cfg := engine.NewConfig(
		engine.WithRotations(1),
		engine.WithPopulationSize(4),
		engine.WithThreads(2),
		engine.WithSeed(42),
	)

	err := e.Initialize(cfg,
		[]polygon.Polygon{square(1)}, []int{2},
		[]polygon.Polygon{rect(4, 3)}, []int{1},
	)
	require.NoError(t, err)
	require.Equal(t, engine.Initialized, e.State())

	require.NoError(t, e.Start(nil, nil, 3))
	require.Equal(t, engine.Running, e.State())

	for {
		more, err := e.Step()
		require.NoError(t, err)
		if !more {
			break
		}
	}
	require.Equal(t, engine.Stopped, e.State())

	results := e.Results()
	require.NotEmpty(t, results)
	best := results[0]
	require.Empty(t, best.Result.Unplaced)
	require.Len(t, best.Result.Placements, 1)
	require.Len(t, best.Result.Placements[0], 2)
}

// TestPartLargerThanAnySheetStaysUnplaced reproduces spec scenario 4:
// a part that cannot fit on any sheet completes with a finite fitness
// rather than aborting the search.
func TestPartLargerThanAnySheetStaysUnplaced(t *testing.T) {
	e := engine.New()
	cfg := engine.NewConfig(engine.WithPopulationSize(2))

	err := e.Initialize(cfg,
		[]polygon.Polygon{square(10)}, []int{1},
		[]polygon.Polygon{rect(5, 5)}, []int{1},
	)
	require.NoError(t, err)
	require.NoError(t, e.Start(nil, nil, 1))

	for {
		more, err := e.Step()
		require.NoError(t, err)
		if !more {
			break
		}
	}

	results := e.Results()
	require.NotEmpty(t, results)
	best := results[0]
	require.Len(t, best.Result.Unplaced, 1)
	require.GreaterOrEqual(t, best.Fitness, 4e8)
}

// TestStopIsIdempotentOnNotRunning ensures Stop is a clean error, not a
// panic, when called on a freshly created (Uninitialized) engine.
func TestStopIsIdempotentOnNotRunning(t *testing.T) {
	e := engine.New()
	require.ErrorIs(t, e.Stop(), engine.ErrNotRunning)
}
