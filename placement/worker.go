package placement

import (
	"context"
	"math"

	"github.com/shapenest/nestcore/boolops"
	"github.com/shapenest/nestcore/nfp"
	"github.com/shapenest/nestcore/nfpcache"
	"github.com/shapenest/nestcore/point"
	"github.com/shapenest/nestcore/polygon"
	"github.com/shapenest/nestcore/strategy"
)

// unplacedPenaltyWeight is the magnitude a single unplaced part
// contributes to fitness, large enough to dominate every sheets-used and
// arrangement-quality term combined: the fitness formula has three
// layers of different magnitude so they order lexicographically.
const unplacedPenaltyWeight = 1e8

// minFeasibleRingArea is the doubled-area floor below which a feasible
// region ring is dropped as numerically insignificant.
const minFeasibleRingArea = 0.1

// Worker is a constructive bottom-left packer bound to one strategy and
// one shared NFP cache. A Worker is reused across many Run calls (one
// per genetic individual) by the evaluator; it holds no per-run state
// itself.
type Worker struct {
	Strategy strategy.Strategy
	Cache    *nfpcache.Cache

	// DegeneracyGate overrides nfp's default thresholds for the outer
	// NFPs the worker computes; the zero value selects
	// nfp.DefaultDegeneracyGate(). Inner NFPs from nfp.InnerNFP always
	// use the defaults.
	DegeneracyGate nfp.DegeneracyGate

	// MergeLines enables the optional alignment bonus.
	MergeLines bool
	// TimeRatio weights the alignment bonus as a negative term on
	// fitness when MergeLines is set: a bonus lowers fitness.
	TimeRatio float64
}

func (w Worker) gate() nfp.DegeneracyGate {
	if w.DegeneracyGate == (nfp.DegeneracyGate{}) {
		return nfp.DefaultDegeneracyGate()
	}
	return w.DegeneracyGate
}

// placedPart is the worker's bookkeeping for one already-placed part on
// the current sheet: its canonical (untranslated) geometry and rotation
// bucket, needed to recompute outer NFPs against later parts, plus the
// delta that moves it from canonical to sheet coordinates.
type placedPart struct {
	instance PartInstance
	rotation RotationOption
	delta    point.Point
	strategy.Placement
}

// Run places sheets' worth of parts in order: inner-NFP first-placement
// rule, outer-NFP union subtraction for subsequent placements,
// three-layer fitness accumulation. Cancellation is checked between
// parts via ctx.Done(); a cancelled run returns whatever was decided so
// far with Result.Cancelled set — a worker finalizes its current part
// and returns rather than aborting mid-placement.
func (w Worker) Run(ctx context.Context, sheets []Sheet, parts []PartInstance) Result {
	if w.Strategy == nil || w.Cache == nil {
		return Result{Unplaced: parts}
	}

	var totalSheetArea float64
	for _, s := range sheets {
		totalSheetArea += s.Polygon.Area()
	}

	result := Result{Placements: make([]SheetPlacements, 0, len(sheets))}
	remaining := parts

	for _, sheet := range sheets {
		if len(remaining) == 0 {
			break
		}
		select {
		case <-ctx.Done():
			result.Cancelled = true
			result.Unplaced = append(result.Unplaced, remaining...)
			return w.finish(result, totalSheetArea)
		default:
		}

		placedOnSheet, mergedLen, stillRemaining := w.packSheet(ctx, sheet, remaining)
		if len(placedOnSheet) == 0 {
			// Nothing fit on this sheet at all; further sheets are no
			// more promising for the remaining parts than this one was
			// for any part in front of the queue, but later parts may
			// still be smaller, so we keep trying subsequent sheets
			// only if at least one part was placed. Stop consuming
			// sheets once a sheet yields nothing, recording it as an
			// empty group.
			result.Placements = append(result.Placements, SheetPlacements{})
			remaining = stillRemaining
			break
		}

		sheetPlacements := make(SheetPlacements, 0, len(placedOnSheet))
		var minareaSum float64
		for _, pp := range placedOnSheet {
			sheetPlacements = append(sheetPlacements, pp.Placement)
			minareaSum += pp.score
		}
		result.Placements = append(result.Placements, sheetPlacements)
		result.MergedLength += mergedLen

		bounds := placedBounds(placedOnSheet)
		sheetArea := sheet.Polygon.Area()
		widthFrac := 0.0
		if sheetArea > 0 {
			widthFrac = float64(bounds.W) / sheetArea
		}
		result.Fitness += sheetArea + widthFrac + minareaSum
		for _, pp := range placedOnSheet {
			result.OccupiedArea += pp.instance.Primary.Polygon.Area()
		}

		remaining = stillRemaining
	}

	result.Unplaced = append(result.Unplaced, remaining...)
	return w.finish(result, totalSheetArea)
}

// finish applies the two fitness terms that are global to the whole
// run rather than per-sheet: the alignment bonus (a negative term — a
// bonus lowers fitness) and the unplaced-parts penalty, which dominates
// every other term by construction.
func (w Worker) finish(result Result, totalSheetArea float64) Result {
	if w.MergeLines && result.MergedLength != 0 {
		result.Fitness -= w.TimeRatio * result.MergedLength
	}
	for _, up := range result.Unplaced {
		area := up.Primary.Polygon.Area()
		if totalSheetArea > 0 {
			result.Fitness += unplacedPenaltyWeight * (area / totalSheetArea)
		} else {
			result.Fitness += unplacedPenaltyWeight
		}
	}
	return result
}

// scoredPlaced augments placedPart with the strategy score that won it
// its slot: the running minarea sum accumulates exactly that value, the
// best candidate's own score being the per-part arrangement-quality
// term the fitness formula names.
type scoredPlaced struct {
	placedPart
	score float64
}

// packSheet places as many of parts (in order) onto sheet as fit,
// returning the ones placed, the sheet's alignment-bonus edge length
// (zero if disabled), and the parts that did not fit for any tried
// rotation.
func (w Worker) packSheet(ctx context.Context, sheet Sheet, parts []PartInstance) ([]scoredPlaced, float64, []PartInstance) {
	var placed []scoredPlaced
	var leftover []PartInstance
	var mergedLen float64

	for _, part := range parts {
		select {
		case <-ctx.Done():
			leftover = append(leftover, part)
			continue
		default:
		}
		if len(leftover) > 0 {
			// Once cancellation starts draining parts into leftover,
			// keep doing so for determinism of the remaining order.
			leftover = append(leftover, part)
			continue
		}

		pp, ok := w.placeOne(sheet, part, placed)
		if !ok {
			leftover = append(leftover, part)
			continue
		}
		if w.MergeLines {
			mergedLen += mergedEdgeLength(pp.Polygon(), placed)
		}
		placed = append(placed, pp)
	}
	return placed, mergedLen, leftover
}

// placeOne tries every permitted rotation of part, in Primary-then-
// Fallbacks order, until one yields a non-empty inner NFP and (if other
// parts are already placed) a non-empty feasible region.
func (w Worker) placeOne(sheet Sheet, part PartInstance, placed []scoredPlaced) (scoredPlaced, bool) {
	for _, rot := range part.rotations() {
		if pp, ok := w.tryRotation(sheet, part, rot, placed); ok {
			return pp, true
		}
	}
	return scoredPlaced{}, false
}

func (w Worker) tryRotation(sheet Sheet, part PartInstance, rot RotationOption, placed []scoredPlaced) (scoredPlaced, bool) {
	innerRes, err := nfp.InnerNFP(sheet.Polygon, rot.Polygon)
	if err != nil {
		return scoredPlaced{}, false
	}

	if len(placed) == 0 {
		pos := topLeftmost(innerRes.Polygon.Outer)
		pl := strategy.NewPlacement(part.InstanceID, part.Source, rot.Polygon, pos, rot.Polygon.Rotation)
		delta := pos.Sub(rot.Polygon.Reference())
		return scoredPlaced{
			placedPart: placedPart{instance: part, rotation: rot, delta: delta, Placement: pl},
			score:      w.Strategy.Score(rot.Polygon, pos, nil),
		}, true
	}

	forbidden := w.outerNFPUnion(part, rot, placed)
	feasible := boolops.DifferenceMulti(innerRes.Polygon, forbidden)
	feasible = dropTinyRings(feasible)
	if len(feasible) == 0 {
		return scoredPlaced{}, false
	}

	candidates := collectCandidatePositions(feasible)
	if len(candidates) == 0 {
		return scoredPlaced{}, false
	}

	placedSoFar := toStrategyPlacements(placed)
	best, bestScore, ok := bestCandidate(w.Strategy, rot.Polygon, candidates, placedSoFar)
	if !ok {
		return scoredPlaced{}, false
	}

	pl := strategy.NewPlacement(part.InstanceID, part.Source, rot.Polygon, best, rot.Polygon.Rotation)
	delta := best.Sub(rot.Polygon.Reference())
	return scoredPlaced{
		placedPart: placedPart{instance: part, rotation: rot, delta: delta, Placement: pl},
		score:      bestScore,
	}, true
}

// outerNFPUnion computes, for every already-placed part Q, the outer
// NFP of (Q, part-at-rot) translated to Q's actual sheet position,
// memoizing each lookup in the shared cache keyed by shape class and
// rotation bucket.
func (w Worker) outerNFPUnion(part PartInstance, rot RotationOption, placed []scoredPlaced) []polygon.Polygon {
	out := make([]polygon.Polygon, 0, len(placed))
	for _, pp := range placed {
		key := nfpcache.Key{
			IDA:    pp.instance.ClassID,
			IDB:    part.ClassID,
			RotA:   pp.rotation.Index,
			RotB:   rot.Index,
			Inside: false,
		}
		res, err := w.Cache.GetOrCompute(key, func() (nfp.Result, error) {
			return nfp.Compute(pp.rotation.Polygon, rot.Polygon, false, w.gate())
		})
		if err != nil {
			continue
		}
		out = append(out, polygon.Translate(res.Polygon, pp.delta))
	}
	return out
}

func toStrategyPlacements(placed []scoredPlaced) []strategy.Placement {
	out := make([]strategy.Placement, len(placed))
	for i, pp := range placed {
		out[i] = pp.Placement
	}
	return out
}

// topLeftmost returns the point in pts minimizing (x, then y): the
// first-placement rule used to break the first slot's rotational
// symmetry.
func topLeftmost(pts []point.Point) point.Point {
	best := pts[0]
	for _, p := range pts[1:] {
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			best = p
		}
	}
	return best
}

func dropTinyRings(ps []polygon.Polygon) []polygon.Polygon {
	out := make([]polygon.Polygon, 0, len(ps))
	for _, p := range ps {
		if len(p.Outer) < 3 {
			continue
		}
		area := p.Outer.SignedArea()
		if area < 0 {
			area = -area
		}
		if float64(area) < minFeasibleRingArea {
			continue
		}
		out = append(out, p)
	}
	return out
}

func collectCandidatePositions(regions []polygon.Polygon) []point.Point {
	var out []point.Point
	for _, r := range regions {
		out = append(out, r.Outer...)
		for _, h := range r.Holes {
			out = append(out, h...)
		}
	}
	return out
}

// bestCandidate scores every candidate and returns the one strategy
// prefers, tie-broken lexicographically per strategy.Less.
func bestCandidate(strat strategy.Strategy, part polygon.Polygon, candidates []point.Point, placed []strategy.Placement) (point.Point, float64, bool) {
	if len(candidates) == 0 {
		return point.Point{}, 0, false
	}
	best := strategy.Candidate{Position: candidates[0], Score: strat.Score(part, candidates[0], placed)}
	for _, c := range candidates[1:] {
		cand := strategy.Candidate{Position: c, Score: strat.Score(part, c, placed)}
		if strategy.Less(cand, best) {
			best = cand
		}
	}
	return best.Position, best.Score, true
}

// placedBounds returns the combined bounding box of every placed part's
// sheet-space geometry.
func placedBounds(placed []scoredPlaced) polygon.BoundingBox {
	if len(placed) == 0 {
		return polygon.BoundingBox{}
	}
	bb := placed[0].Polygon().BoundingBox()
	minX, minY := bb.X, bb.Y
	maxX, maxY := bb.X+bb.W, bb.Y+bb.H
	for _, pp := range placed[1:] {
		b := pp.Polygon().BoundingBox()
		if b.X < minX {
			minX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
		if b.X+b.W > maxX {
			maxX = b.X + b.W
		}
		if b.Y+b.H > maxY {
			maxY = b.Y + b.H
		}
	}
	return polygon.BoundingBox{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// mergedEdgeLength sums the length of every segment of candidate's
// boundary that coincides, in reverse direction, with a segment of an
// already-placed part's boundary: the optional cutting-alignment bonus.
// Coincidence requires exact overlap within the kernel's integer
// resolution, which is intentionally strict — merge_lines is a bonus
// for exact edge-to-edge nesting, not a fuzzy proximity heuristic.
func mergedEdgeLength(candidate polygon.Polygon, placed []scoredPlaced) float64 {
	var total float64
	candEdges := ringEdges(candidate.Outer)
	for _, pp := range placed {
		for _, e := range ringEdges(pp.Polygon().Outer) {
			for _, c := range candEdges {
				total += overlapLength(c, e)
			}
		}
	}
	return total
}

type segment struct{ a, b point.Point }

func ringEdges(r polygon.Ring) []segment {
	n := len(r)
	out := make([]segment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, segment{r[i], r[(i+1)%n]})
	}
	return out
}

// overlapLength returns the length of the overlap between segment s and
// the reverse of segment t, when the two are collinear and
// anti-parallel (the configuration two parts' touching edges take when
// nested against each other), else zero.
func overlapLength(s, t segment) float64 {
	// t is only a candidate match when traversed in reverse, since two
	// CCW outer rings touching along a shared edge traverse it in
	// opposite directions.
	tb, ta := t.a, t.b

	dir := point.New(s.b.X-s.a.X, s.b.Y-s.a.Y)
	other := point.New(ta.X-tb.X, ta.Y-tb.Y)
	if dir.Cross(other) != 0 {
		return 0 // not collinear
	}
	if dir.Cross(point.New(tb.X-s.a.X, tb.Y-s.a.Y)) != 0 {
		return 0 // parallel but offset onto a different line
	}
	if dir.Dot(other) <= 0 {
		return 0 // not anti-parallel
	}

	// Project both segments onto the shared line and intersect ranges.
	len2 := float64(dir.X*dir.X + dir.Y*dir.Y)
	if len2 == 0 {
		return 0
	}
	proj := func(p point.Point) float64 {
		return float64((p.X-s.a.X)*dir.X+(p.Y-s.a.Y)*dir.Y) / len2
	}
	s0, s1 := 0.0, 1.0
	t0, t1 := proj(tb), proj(ta)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	lo := math.Max(s0, t0)
	hi := math.Min(s1, t1)
	if hi <= lo {
		return 0
	}
	segLen := math.Hypot(float64(dir.X), float64(dir.Y))
	return (hi - lo) * segLen
}
