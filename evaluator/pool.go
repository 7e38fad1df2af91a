package evaluator

import (
	"context"
	"fmt"
	"sync"

	"github.com/shapenest/nestcore/genetic"
	"github.com/shapenest/nestcore/placement"
)

// job is one unit of dispatched work: evaluate a single individual
// against the fixed sheet set, mirroring sentra's Job{ID, Data}.
type job struct {
	individual *genetic.Individual
}

// jobResult carries a completed evaluation back to the fan-in side,
// mirroring sentra's JobResult{JobID, Result, Error}.
type jobResult struct {
	individual *genetic.Individual
	result     placement.Result
}

// Evaluator dispatches placement.Worker.Run across a bounded pool of
// goroutines, one call per unevaluated genetic.Individual.
type Evaluator struct {
	Templates []PartTemplate
	Sheets    []placement.Sheet
	Worker    placement.Worker
	Threads   int
}

// threads returns the configured worker count, defaulting to 1 and
// never exceeding the number of jobs actually dispatched.
func (e Evaluator) threads(jobCount int) int {
	n := e.Threads
	if n <= 0 {
		n = 1
	}
	if n > jobCount {
		n = jobCount
	}
	return n
}

// EvaluateAll runs placement.Worker.Run for every individual in
// individuals that is not yet Evaluated, writing Fitness/Result/
// Evaluated back onto each *genetic.Individual in place. It fans out
// across a bounded worker pool sized by Threads and fans back in via a
// buffered result channel and a sync.WaitGroup, closing Results once
// every worker has exited (core/concurrency_test.go's drain idiom).
// ctx cancellation stops dispatching new jobs to workers and is
// threaded through to placement.Worker.Run so in-flight evaluations
// wind down cooperatively rather than abruptly.
func (e Evaluator) EvaluateAll(ctx context.Context, individuals []*genetic.Individual) error {
	var pending []*genetic.Individual
	for _, ind := range individuals {
		if !ind.Evaluated {
			pending = append(pending, ind)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	jobs := make(chan job, len(pending))
	results := make(chan jobResult, len(pending))

	for _, ind := range pending {
		jobs <- job{individual: ind}
	}
	close(jobs)

	workerCount := e.threads(len(pending))
	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			e.runWorker(ctx, jobs, results)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		r.individual.Result = r.result
		r.individual.Fitness = r.result.Fitness
		r.individual.Evaluated = true
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}
	return nil
}

func (e Evaluator) runWorker(ctx context.Context, jobs <-chan job, results chan<- jobResult) {
	for j := range jobs {
		select {
		case <-ctx.Done():
			results <- jobResult{individual: j.individual, result: placement.Result{Cancelled: true}}
			continue
		default:
		}

		parts := e.buildParts(j.individual)
		res := e.Worker.Run(ctx, e.Sheets, parts)
		results <- jobResult{individual: j.individual, result: res}
	}
}

// buildParts materializes the ordered, rotated part-instance list for
// one individual's genome: Order[i] selects which template occupies
// placement slot i, and Rotations[i] selects its preferred rotation
// bucket within that template.
func (e Evaluator) buildParts(ind *genetic.Individual) []placement.PartInstance {
	parts := make([]placement.PartInstance, 0, len(ind.Order))
	for slot, classIdx := range ind.Order {
		if classIdx < 0 || classIdx >= len(e.Templates) {
			continue
		}
		tmpl := e.Templates[classIdx]
		rotationIdx := 0
		if slot < len(ind.Rotations) {
			rotationIdx = ind.Rotations[slot]
		}
		instanceID := fmt.Sprintf("%s#%d", tmpl.Source, slot)
		parts = append(parts, tmpl.instance(instanceID, rotationIdx))
	}
	return parts
}
