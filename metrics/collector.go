package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds every metric the engine facade reports. The zero
// value is not usable; construct with New. A nil *Collector is valid
// everywhere a *Collector is accepted — every method guards against it
// and becomes a no-op, so "no collector configured" costs nothing.
type Collector struct {
	registry *prometheus.Registry

	generations  prometheus.Counter
	bestFitness  prometheus.Gauge
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
	activeWorker prometheus.Gauge

	lastHits   int64
	lastMisses int64
}

// New builds a Collector with its own private registry, so multiple
// Collectors (e.g. one per test) never collide on metric names against
// Prometheus's global default registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nestcore_generations_total",
			Help: "Total genetic-algorithm generations advanced.",
		}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nestcore_best_fitness",
			Help: "Fitness of the best individual in the current generation (lower is better).",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nestcore_nfp_cache_hits_total",
			Help: "Total NFP cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nestcore_nfp_cache_misses_total",
			Help: "Total NFP cache misses.",
		}),
		activeWorker: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nestcore_active_workers",
			Help: "Number of evaluator goroutines currently running placement.Worker.Run.",
		}),
	}
	reg.MustRegister(c.generations, c.bestFitness, c.cacheHits, c.cacheMisses, c.activeWorker)
	return c
}

// Registry returns the private *prometheus.Registry backing c, for
// callers that want to expose it via an HTTP handler. Returns nil for
// a nil Collector.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// RecordGeneration increments the generation counter.
func (c *Collector) RecordGeneration() {
	if c == nil {
		return
	}
	c.generations.Inc()
}

// SetBestFitness records the current generation's best fitness.
func (c *Collector) SetBestFitness(fitness float64) {
	if c == nil {
		return
	}
	c.bestFitness.Set(fitness)
}

// RecordCacheStats overwrites the cache hit/miss counters with the
// cumulative totals reported by nfpcache.Cache.Hits/Misses. Prometheus
// counters only increase, so this adds the delta since the last call
// rather than setting an absolute value; callers that want a running
// total simply call it every generation with the cache's current
// cumulative counts.
func (c *Collector) RecordCacheStats(hits, misses int64) {
	if c == nil {
		return
	}
	if hits > c.lastHits {
		c.cacheHits.Add(float64(hits - c.lastHits))
		c.lastHits = hits
	}
	if misses > c.lastMisses {
		c.cacheMisses.Add(float64(misses - c.lastMisses))
		c.lastMisses = misses
	}
}

// SetActiveWorkers records how many evaluator goroutines are currently
// executing placement.Worker.Run.
func (c *Collector) SetActiveWorkers(n int) {
	if c == nil {
		return
	}
	c.activeWorker.Set(float64(n))
}
