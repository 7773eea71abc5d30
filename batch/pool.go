package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ConvertFunc turns the file at source into target.
type ConvertFunc func(ctx context.Context, source, target string) error

// Job names one source file and where its conversion goes.
type Job struct {
	Source string
	Target string
}

// Result reports the outcome of one job.
type Result struct {
	Job
	Err      error
	Duration time.Duration
	Worker   int
}

// Stats is a snapshot of pool activity.
type Stats struct {
	Workers   int   `json:"workers"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}

// Pool runs file conversions on a fixed number of workers.
type Pool struct {
	workers int
	convert ConvertFunc

	completed int64
	failed    int64
}

// New creates a pool around the given conversion. A non-positive worker
// count means one worker per CPU.
func New(workers int, convert ConvertFunc) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers, convert: convert}
}

type indexedJob struct {
	Job
	idx int
}

type indexedResult struct {
	Result
	idx int
}

// Run converts every job and blocks until all results are in. Results
// come back in job order; a cancelled context fails the jobs that have
// not started yet.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	n := len(jobs)
	if n == 0 {
		return nil
	}

	workers := p.workers
	if workers > n {
		workers = n
	}

	jobChan := make(chan indexedJob, n)
	resultChan := make(chan indexedResult, n)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.worker(ctx, i, jobChan, resultChan, &wg)
	}

	for i, job := range jobs {
		jobChan <- indexedJob{Job: job, idx: i}
	}
	close(jobChan)

	wg.Wait()
	close(resultChan)

	results := make([]Result, n)
	for r := range resultChan {
		results[r.idx] = r.Result
	}
	return results
}

func (p *Pool) worker(ctx context.Context, id int, jobs <-chan indexedJob, results chan<- indexedResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			atomic.AddInt64(&p.failed, 1)
			results <- indexedResult{
				Result: Result{Job: job.Job, Err: ctx.Err(), Worker: id},
				idx:    job.idx,
			}
			continue
		default:
		}
		results <- indexedResult{Result: p.process(ctx, id, job.Job), idx: job.idx}
	}
}

// process runs one conversion, recovering panics into the result so a
// bad file cannot take down the pool.
func (p *Pool) process(ctx context.Context, worker int, job Job) (res Result) {
	start := time.Now()
	res = Result{Job: job, Worker: worker}

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic converting %s: %v", job.Source, r)
		}
		res.Duration = time.Since(start)
		if res.Err != nil {
			atomic.AddInt64(&p.failed, 1)
		} else {
			atomic.AddInt64(&p.completed, 1)
		}
	}()

	res.Err = p.convert(ctx, job.Source, job.Target)
	return res
}

// Stats returns counters accumulated across Run calls.
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:   p.workers,
		Completed: atomic.LoadInt64(&p.completed),
		Failed:    atomic.LoadInt64(&p.failed),
	}
}
