package engine

import (
	"github.com/go-playground/validator/v10"
	"github.com/shapenest/nestcore/metrics"
	"github.com/shapenest/nestcore/strategy"
	"go.uber.org/zap"
)

var validate = validator.New()

// defaultTopK is the bounded top-K results list size when the caller
// does not set TopK, and also its hard ceiling: the cap is configurable
// but always bounded, never unbounded.
const defaultTopK = 10

// Config is the engine's single, explicit, immutable configuration
// value, built via NewConfig's functional options for ergonomics and
// validated once at Initialize. There is no module-level configuration
// singleton: every component receives Config by value or reference from
// the owning *Engine, never from a package global.
type Config struct {
	// Spacing is the minimum inter-part gap in kernel units; parts are
	// grown by +Spacing/2 and sheets shrunk by -Spacing/2 at Initialize.
	Spacing float64 `validate:"gte=0"`

	// CurveTolerance is passed through to boolops.Offset/Simplify when
	// the caller's ingest wrapper needs it.
	CurveTolerance float64 `validate:"gte=0"`

	// Rotations is the number of permitted rotation buckets; permitted
	// angles are {k * 360/Rotations : 0 <= k < Rotations}. 0 disables
	// rotation (translated internally to a single bucket at angle 0).
	Rotations int `validate:"gte=0"`

	// PopulationSize is the GA population size.
	PopulationSize int `validate:"gte=2"`

	// MutationRate is a percent chance (0..100) per gene slot,
	// converted to a probability by multiplying by 0.01.
	MutationRate int `validate:"gte=0,lte=100"`

	// Threads is the bounded worker pool size.
	Threads int `validate:"gte=1"`

	// PlacementType selects the scoring strategy.
	PlacementType strategy.Type `validate:"gte=0,lte=2"`

	// MergeLines enables the optional alignment bonus.
	MergeLines bool

	// TimeRatio weights the alignment bonus in the fitness score.
	TimeRatio float64

	// OverlapTolerance is the allowed numerical slack for
	// touching-not-overlapping checks performed by callers validating
	// Result (the engine itself does not re-check overlap).
	OverlapTolerance float64 `validate:"gte=0"`

	// TopK bounds the results list Step maintains. 0 selects
	// defaultTopK. NewConfig clamps values above defaultTopK down to
	// it; Initialize rejects a hand-built Config with a value above 10.
	TopK int `validate:"gte=0,lte=10"`

	// Seed fixes the GA's RNG; 0 selects genetic's own stable default.
	Seed int64

	// Logger receives structured engine events; nil defaults to a
	// no-op logger (nestlog.New(nil)).
	Logger *zap.Logger

	// Metrics optionally reports engine/GA/cache counters; nil is a
	// valid no-op collector.
	Metrics *metrics.Collector
}

// ConfigOption configures a Config before construction.
type ConfigOption func(cfg *Config)

// NewConfig builds a Config from documented defaults plus opts, in the
// teacher's functional-options style (builder.BuilderOption,
// tsp.Options). The result is not yet validated; Initialize validates
// it.
func NewConfig(opts ...ConfigOption) Config {
	cfg := Config{
		Spacing:          0,
		CurveTolerance:   0.3,
		Rotations:        1,
		PopulationSize:   10,
		MutationRate:     10,
		Threads:          1,
		PlacementType:    strategy.TypeGravity,
		MergeLines:       false,
		TimeRatio:        0,
		OverlapTolerance: 1e-6,
		TopK:             defaultTopK,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.TopK <= 0 || cfg.TopK > defaultTopK {
		cfg.TopK = defaultTopK
	}
	return cfg
}

// WithSpacing sets the minimum inter-part gap.
func WithSpacing(spacing float64) ConfigOption {
	return func(cfg *Config) { cfg.Spacing = spacing }
}

// WithCurveTolerance sets the offset/simplification tolerance.
func WithCurveTolerance(tol float64) ConfigOption {
	return func(cfg *Config) { cfg.CurveTolerance = tol }
}

// WithRotations sets the number of permitted rotation buckets.
func WithRotations(n int) ConfigOption {
	return func(cfg *Config) { cfg.Rotations = n }
}

// WithPopulationSize sets the GA population size.
func WithPopulationSize(n int) ConfigOption {
	return func(cfg *Config) { cfg.PopulationSize = n }
}

// WithMutationRate sets the percent-per-slot mutation chance (0..100).
func WithMutationRate(percent int) ConfigOption {
	return func(cfg *Config) { cfg.MutationRate = percent }
}

// WithThreads sets the worker pool size.
func WithThreads(n int) ConfigOption {
	return func(cfg *Config) { cfg.Threads = n }
}

// WithPlacementType selects the scoring strategy.
func WithPlacementType(t strategy.Type) ConfigOption {
	return func(cfg *Config) { cfg.PlacementType = t }
}

// WithMergeLines enables or disables the alignment bonus.
func WithMergeLines(enabled bool) ConfigOption {
	return func(cfg *Config) { cfg.MergeLines = enabled }
}

// WithTimeRatio sets the alignment bonus weight.
func WithTimeRatio(ratio float64) ConfigOption {
	return func(cfg *Config) { cfg.TimeRatio = ratio }
}

// WithOverlapTolerance sets the allowed touching-not-overlapping slack.
func WithOverlapTolerance(tol float64) ConfigOption {
	return func(cfg *Config) { cfg.OverlapTolerance = tol }
}

// WithTopK sets the bounded results list size, clamped to
// (0, defaultTopK].
func WithTopK(k int) ConfigOption {
	return func(cfg *Config) { cfg.TopK = k }
}

// WithSeed fixes the GA's RNG seed.
func WithSeed(seed int64) ConfigOption {
	return func(cfg *Config) { cfg.Seed = seed }
}

// WithLogger injects a structured logger.
func WithLogger(logger *zap.Logger) ConfigOption {
	return func(cfg *Config) { cfg.Logger = logger }
}

// WithMetrics injects a Prometheus collector.
func WithMetrics(collector *metrics.Collector) ConfigOption {
	return func(cfg *Config) { cfg.Metrics = collector }
}

// mutationProbability converts MutationRate (0..100) to a 0..1
// probability.
func (cfg Config) mutationProbability() float64 {
	return float64(cfg.MutationRate) * 0.01
}
