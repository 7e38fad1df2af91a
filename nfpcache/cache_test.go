package nfpcache_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shapenest/nestcore/nfp"
	"github.com/shapenest/nestcore/nfpcache"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) polygon.Polygon {
	t.Helper()
	p, err := polygon.New(polygon.Ring{
		point.New(0, 0),
		point.New(10, 0),
		point.New(10, 10),
		point.New(0, 10),
	}, nil)
	require.NoError(t, err)
	return p
}

func TestGetOrComputeMissThenHit(t *testing.T) {
	c := nfpcache.New()
	key := nfpcache.Key{IDA: uuid.New(), IDB: uuid.New()}
	want := nfp.Result{Polygon: square(t), Quality: nfp.Exact}

	var calls int
	got, err := c.GetOrCompute(key, func() (nfp.Result, error) {
		calls++
		return want, nil
	})
	require.NoError(t, err)
	require.True(t, polygon.Equal(want.Polygon, got.Polygon))
	require.Equal(t, int64(0), c.Hits())
	require.Equal(t, int64(1), c.Misses())

	got2, err := c.GetOrCompute(key, func() (nfp.Result, error) {
		calls++
		return nfp.Result{}, nil
	})
	require.NoError(t, err)
	require.True(t, polygon.Equal(want.Polygon, got2.Polygon))
	require.Equal(t, 1, calls, "compute must run exactly once for a repeated key")
	require.Equal(t, int64(1), c.Hits())
}

// TestConcurrentGetOrCompute hammers a single key from many goroutines and
// asserts compute runs exactly once and every caller observes an equal
// result, mirroring core.TestConcurrentAddEdge's concurrent-access shape.
func TestConcurrentGetOrCompute(t *testing.T) {
	c := nfpcache.New()
	key := nfpcache.Key{IDA: uuid.New(), IDB: uuid.New()}
	want := square(t)

	const n = 200
	var computed atomic.Int64
	var wg sync.WaitGroup
	wg.Add(n)
	results := make([]nfp.Result, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			res, err := c.GetOrCompute(key, func() (nfp.Result, error) {
				computed.Add(1)
				return nfp.Result{Polygon: want, Quality: nfp.Exact}, nil
			})
			results[idx] = res
			errs[idx] = err
		}(i)
	}
	wg.Wait()

	require.Equal(t, int64(1), computed.Load())
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.True(t, polygon.Equal(want, results[i].Polygon))
	}
}

func TestDistinctKeysDoNotCollide(t *testing.T) {
	c := nfpcache.New()
	k1 := nfpcache.Key{IDA: uuid.New(), IDB: uuid.New(), RotA: 1}
	k2 := nfpcache.Key{IDA: uuid.New(), IDB: uuid.New(), RotA: 2}

	_, err := c.GetOrCompute(k1, func() (nfp.Result, error) {
		return nfp.Result{Polygon: square(t), Quality: nfp.Exact}, nil
	})
	require.NoError(t, err)

	_, ok := c.Get(k2)
	require.False(t, ok)
	require.Equal(t, 1, c.Len())
}
