package genetic

// Option configures a Population before construction, following the
// teacher's functional-options pattern (builder.BuilderOption,
// tsp.Options).
type Option func(cfg *config)

type config struct {
	populationSize int
	mutationRate   float64
	rotations      int
	seed           int64
	eliteCount     int
}

func newConfig(opts ...Option) config {
	cfg := config{
		populationSize: 2,
		mutationRate:   0.1,
		rotations:      1,
		seed:           0,
		eliteCount:     1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPopulationSize sets the number of individuals per generation
// (population size must be an integer >= 2). Values below 2 are
// clamped up to 2 rather than rejected, since the engine facade owns
// Config validation and genetic's own construction must not panic on
// caller-supplied options.
func WithPopulationSize(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.populationSize = n
		} else {
			cfg.populationSize = 2
		}
	}
}

// WithMutationRate sets the per-gene-slot mutation probability (0..1).
// Values outside that range are clamped rather than rejected, since the
// engine facade is responsible for rejecting out-of-range
// Config.MutationRate before it ever reaches here.
func WithMutationRate(rate float64) Option {
	return func(cfg *config) {
		switch {
		case rate < 0:
			cfg.mutationRate = 0
		case rate > 1:
			cfg.mutationRate = 1
		default:
			cfg.mutationRate = rate
		}
	}
}

// WithRotations sets the number of permitted rotation buckets (>= 1).
// 1 means rotation is effectively disabled (every gene's rotation index
// is always 0): the engine facade translates a configured 0 (rotation
// disabled) to a single permitted bucket before reaching here.
func WithRotations(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.rotations = n
		}
	}
}

// WithSeed fixes the RNG seed driving every mutation and crossover
// decision, for reproducible searches.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.seed = seed }
}

// WithEliteCount sets how many top individuals (by ascending fitness)
// survive each generation unchanged. Default 1.
func WithEliteCount(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.eliteCount = n
		}
	}
}
