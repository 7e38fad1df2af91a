package metrics_test

import (
	"testing"

	"github.com/shapenest/nestcore/metrics"
	"github.com/stretchr/testify/require"
)

func TestNilCollectorIsNoop(t *testing.T) {
	var c *metrics.Collector
	require.NotPanics(t, func() {
		c.RecordGeneration()
		c.SetBestFitness(1.5)
		c.RecordCacheStats(10, 2)
		c.SetActiveWorkers(3)
	})
	require.Nil(t, c.Registry())
}

func counterValue(t *testing.T, c *metrics.Collector, name string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func gaugeValue(t *testing.T, c *metrics.Collector, name string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestRecordGenerationIncrementsCounter(t *testing.T) {
	c := metrics.New()
	c.RecordGeneration()
	c.RecordGeneration()
	require.Equal(t, float64(2), counterValue(t, c, "nestcore_generations_total"))
}

func TestSetBestFitnessOverwritesGauge(t *testing.T) {
	c := metrics.New()
	c.SetBestFitness(42.5)
	c.SetBestFitness(10.25)
	require.Equal(t, 10.25, gaugeValue(t, c, "nestcore_best_fitness"))
}

func TestRecordCacheStatsOnlyAddsDeltas(t *testing.T) {
	c := metrics.New()
	c.RecordCacheStats(5, 1)
	c.RecordCacheStats(8, 1)
	c.RecordCacheStats(8, 3)

	require.Equal(t, float64(8), counterValue(t, c, "nestcore_nfp_cache_hits_total"))
	require.Equal(t, float64(3), counterValue(t, c, "nestcore_nfp_cache_misses_total"))
}

func TestSetActiveWorkersOverwritesGauge(t *testing.T) {
	c := metrics.New()
	c.SetActiveWorkers(4)
	require.Equal(t, float64(4), gaugeValue(t, c, "nestcore_active_workers"))
}
