package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shapenest/nestcore/boolops"
	"github.com/shapenest/nestcore/evaluator"
	"github.com/shapenest/nestcore/genetic"
	"github.com/shapenest/nestcore/metrics"
	"github.com/shapenest/nestcore/nestlog"
	"github.com/shapenest/nestcore/nfpcache"
	"github.com/shapenest/nestcore/placement"
	"github.com/shapenest/nestcore/polygon"
	"github.com/shapenest/nestcore/strategy"
	"go.uber.org/zap"
)

// defaultMiter is the corner join limit passed to boolops.Offset when
// applying spacing; 0 selects offsetRing's own default of 2, so this
// is only documentation of intent, not a magic override.
const defaultMiter = 0

// ErrMismatchedLengths indicates Initialize was called with parts/
// quantities or sheets/sheetQuantities slices of different lengths.
var ErrMismatchedLengths = errors.New("engine: parts/quantities or sheets/sheetQuantities length mismatch")

// Engine is the facade owning configuration, the NFP cache, the GA
// population, and the parallel evaluator. The zero value is not
// usable; construct with New.
type Engine struct {
	mu    sync.Mutex
	state State
	cfg   Config

	cache *nfpcache.Cache
	log   *nestlog.Logger

	templates []evaluator.PartTemplate
	sheets    []placement.Sheet
	eval      evaluator.Evaluator
	pop       *genetic.Population

	ctx    context.Context
	cancel context.CancelFunc

	maxGenerations int
	progressCb     ProgressCallback
	resultCb       ResultCallback
	top            *topKList
}

// New returns an Engine in the Uninitialized state.
func New() *Engine {
	return &Engine{state: Uninitialized}
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Initialize validates cfg, applies spacing to parts and sheets,
// assigns stable class identities, sorts the initial placement order
// by descending part area, and constructs the genetic population and
// evaluator. Re-initializing an already-initialized
// engine resets every piece of search state except the NFP cache,
// which is scoped to the *Engine instance and survives across runs.
func (e *Engine) Initialize(cfg Config, parts []polygon.Polygon, quantities []int, sheets []polygon.Polygon, sheetQuantities []int) error {
	if len(parts) != len(quantities) || len(sheets) != len(sheetQuantities) {
		return ErrMismatchedLengths
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("engine: invalid config: %w", err)
	}

	templates := make([]evaluator.PartTemplate, len(parts))
	for i, p := range parts {
		tmpl, err := buildTemplate(p, cfg)
		if err != nil {
			return invalidPolygon(fmt.Sprintf("part %d", i), err)
		}
		templates[i] = tmpl
	}

	expandedSheets, err := expandSheets(sheets, sheetQuantities, cfg)
	if err != nil {
		return invalidPolygon("sheet", err)
	}

	order := buildInitialOrder(templates, quantities)

	strat, err := strategy.New(cfg.PlacementType)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	rotationBuckets := cfg.Rotations
	if rotationBuckets <= 0 {
		rotationBuckets = 1
	}

	pop, err := genetic.NewPopulation(order,
		genetic.WithPopulationSize(cfg.PopulationSize),
		genetic.WithMutationRate(cfg.mutationProbability()),
		genetic.WithRotations(rotationBuckets),
		genetic.WithSeed(cfg.Seed),
	)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cache == nil {
		e.cache = nfpcache.New()
	}
	e.log = nestlog.New(cfg.Logger)
	e.cfg = cfg
	e.templates = templates
	e.sheets = expandedSheets
	e.pop = pop
	e.eval = evaluator.Evaluator{
		Templates: templates,
		Sheets:    expandedSheets,
		Worker: placement.Worker{
			Strategy:   strat,
			Cache:      e.cache,
			MergeLines: cfg.MergeLines,
			TimeRatio:  cfg.TimeRatio,
		},
		Threads: cfg.Threads,
	}
	topK := cfg.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	e.top = newTopKList(topK)
	e.maxGenerations = 0
	e.progressCb = nil
	e.resultCb = nil
	e.ctx, e.cancel = nil, nil
	e.state = Initialized
	return nil
}

// buildTemplate grows p by half the configured spacing and produces
// one RotationOption per permitted rotation bucket.
func buildTemplate(p polygon.Polygon, cfg Config) (evaluator.PartTemplate, error) {
	grown := growBy(p, cfg.Spacing/2, cfg)

	buckets := cfg.Rotations
	if buckets <= 0 {
		buckets = 1
	}
	rotations := make([]placement.RotationOption, 0, buckets)
	for k := 0; k < buckets; k++ {
		angle := float64(k) * 360.0 / float64(buckets)
		rp := grown
		if angle != 0 {
			rotated, err := polygon.Rotate(grown, angle)
			if err != nil {
				continue
			}
			rp = rotated
		}
		rotations = append(rotations, placement.RotationOption{Index: k, Polygon: rp})
	}
	if len(rotations) == 0 {
		return evaluator.PartTemplate{}, errNoValidRotation
	}

	return evaluator.PartTemplate{
		ClassID:   uuid.New(),
		Source:    p.Source,
		Rotations: rotations,
	}, nil
}

var errNoValidRotation = errors.New("engine: no rotation of this part survived re-validation")

// growBy offsets p by delta (positive grows, negative shrinks),
// falling back to the unmodified polygon when delta is zero or the
// offset collapses to nothing.
func growBy(p polygon.Polygon, delta float64, cfg Config) polygon.Polygon {
	if delta == 0 {
		return p
	}
	res := boolops.Offset(p, delta, defaultMiter, cfg.CurveTolerance)
	if len(res) == 0 {
		return p
	}
	return res[0]
}

// expandSheets shrinks each sheet by half the configured spacing and
// repeats it sheetQuantities[i] times, preserving one stable ClassID
// per sheet definition across its repeated copies.
func expandSheets(sheets []polygon.Polygon, sheetQuantities []int, cfg Config) ([]placement.Sheet, error) {
	var out []placement.Sheet
	for i, s := range sheets {
		shrunk := growBy(s, -cfg.Spacing/2, cfg)
		if len(shrunk.Outer) < 3 {
			return nil, errNoValidRotation
		}
		classID := uuid.New()
		for j := 0; j < sheetQuantities[i]; j++ {
			out = append(out, placement.Sheet{ClassID: classID, Polygon: shrunk})
		}
	}
	return out, nil
}

// Start transitions the engine from Initialized to Running and
// records the progress/result callbacks and generation cap that Step
// will use; it performs no placement or GA work itself. maxGenerations
// <= 0 means unbounded (Step only stops on Stop() or population
// exhaustion never occurring, i.e. the caller must call Stop
// eventually).
func (e *Engine) Start(progressCb ProgressCallback, resultCb ResultCallback, maxGenerations int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Uninitialized {
		return ErrUnconfigured
	}
	if e.state == Running {
		return ErrAlreadyRunning
	}

	e.progressCb = progressCb
	e.resultCb = resultCb
	e.maxGenerations = maxGenerations
	e.ctx, e.cancel = context.WithCancel(context.Background())
	e.state = Running
	e.log.Event("engine started", zap.Int("max_generations", maxGenerations))
	return nil
}

// Step performs one increment of work: if the current generation is
// not yet fully evaluated, it dispatches the pending individuals to
// the parallel evaluator (blocking until that batch completes, per the
// evaluator's own fan-out/fan-in contract); otherwise it advances the
// GA to the next generation, publishes the generation's best result
// into the bounded top-K list, and reports progress. It returns false
// once the engine has been stopped or maxGenerations has been reached,
// at which point the engine transitions to Stopped.
func (e *Engine) Step() (bool, error) {
	e.mu.Lock()
	if e.state == Uninitialized {
		e.mu.Unlock()
		return false, ErrUnconfigured
	}
	if e.state != Running {
		e.mu.Unlock()
		return false, ErrNotRunning
	}
	ctx := e.ctx
	e.mu.Unlock()

	select {
	case <-ctx.Done():
		e.finishLocked()
		return false, nil
	default:
	}

	if !e.pop.FullyEvaluated() {
		if err := e.eval.EvaluateAll(ctx, e.pop.Pending()); err != nil {
			if errors.Is(err, context.Canceled) {
				e.finishLocked()
				return false, nil
			}
			return false, fmt.Errorf("engine: step: %w", err)
		}
		e.mu.Lock()
		e.cfg.Metrics.RecordCacheStats(e.cache.Hits(), e.cache.Misses())
		e.mu.Unlock()
		return true, nil
	}

	generation := e.pop.Generation()
	best := e.pop.Best()
	e.recordResult(generation, best)

	if err := e.pop.AdvanceGeneration(); err != nil {
		return false, fmt.Errorf("engine: step: %w", err)
	}

	e.mu.Lock()
	e.cfg.Metrics.RecordGeneration()
	e.cfg.Metrics.SetBestFitness(best.Fitness)
	maxGen := e.maxGenerations
	e.mu.Unlock()
	e.log.Generation(generation, best.Fitness)
	if e.progressCb != nil {
		e.progressCb(fmt.Sprintf("generation %d complete: best fitness %.6f", generation, best.Fitness))
	}

	if maxGen > 0 && e.pop.Generation() >= maxGen {
		e.finishLocked()
		return false, nil
	}
	return true, nil
}

// recordResult inserts best's PlacementResult into the bounded top-K
// list and invokes resultCb if it was actually kept (a result ranking
// below the current worst entry in a full list is not reported).
func (e *Engine) recordResult(generation int, best *genetic.Individual) {
	ranked := RankedResult{Generation: generation, Fitness: best.Fitness, Result: best.Result}
	e.mu.Lock()
	kept := e.top.insert(ranked)
	cb := e.resultCb
	e.mu.Unlock()
	if kept && cb != nil {
		cb(ranked)
	}
}

// Stop signals cancellation and transitions the engine to Stopped, then
// returns at once: it does not wait for an evaluation that a Step in
// another goroutine has already started to finish. Calling
// Stop when not Running is a no-op error (ErrNotRunning), not a panic:
// the caller may race a natural Step-driven completion.
func (e *Engine) Stop() error {
	e.mu.Lock()
	if e.state != Running {
		e.mu.Unlock()
		return ErrNotRunning
	}
	cancel := e.cancel
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.finishLocked()
	e.log.Cancelled()
	return nil
}

// finishLocked transitions the engine to Stopped. Safe to call whether
// or not a cancellation has already fired.
func (e *Engine) finishLocked() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Running {
		e.state = Stopped
	}
}

// Results returns a snapshot of the bounded top-K results list, best
// (lowest fitness) first.
func (e *Engine) Results() []RankedResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.top.snapshot()
}

// buildInitialOrder expands quantities into one slot per part
// instance and sorts the slots by descending class area.
func buildInitialOrder(templates []evaluator.PartTemplate, quantities []int) []int {
	type slot struct {
		classIdx int
		area     float64
	}
	var slots []slot
	for i, q := range quantities {
		area := 0.0
		if len(templates[i].Rotations) > 0 {
			area = templates[i].Rotations[0].Polygon.Area()
		}
		for j := 0; j < q; j++ {
			slots = append(slots, slot{classIdx: i, area: area})
		}
	}
	sort.SliceStable(slots, func(a, b int) bool { return slots[a].area > slots[b].area })

	order := make([]int, len(slots))
	for i, s := range slots {
		order[i] = s.classIdx
	}
	return order
}
