package driver

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/selector"
)

// Job names one (graph, criterion) run to be farmed out by RunBatch.
// Name is an arbitrary caller-assigned label (e.g. "topology7/root150")
// used only for result indexing and error messages.
type Job struct {
	Name      string
	Graph     *core.Graph
	Criterion selector.Criterion
}

// BatchResult pairs a Job's Name with its outcome.
type BatchResult struct {
	Name   string
	Result *RunResult
	Err    error
}

// RunBatch fans jobs out over a bounded worker pool sized to
// runtime.GOMAXPROCS(0), never more workers than jobs. Each worker takes
// its own Graph.Snapshot() before calling Run, so no two jobs ever share
// a graph (§5). Per-job failures are collected into the returned
// multierror rather than aborting the batch (§7's "driver records
// them and continues" policy); results[i] always corresponds to
// jobs[i] regardless of completion order.
func RunBatch(jobs []Job, opts *Options) ([]BatchResult, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(jobs) {
		workers = len(jobs)
	}

	indices := make(chan int, len(jobs))
	for i := range jobs {
		indices <- i
	}
	close(indices)

	results := make([]BatchResult, len(jobs))
	var mu sync.Mutex
	var errs *multierror.Error
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indices {
				job := jobs[idx]
				snapshot := job.Graph.Snapshot()
				res, err := Run(snapshot, job.Criterion, opts)
				results[idx] = BatchResult{Name: job.Name, Result: res, Err: err}
				if err != nil {
					mu.Lock()
					errs = multierror.Append(errs, fmt.Errorf("driver: job %q: %w", job.Name, err))
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return results, errs.ErrorOrNil()
}
