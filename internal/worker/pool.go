// Package worker provides a worker pool for solving knight's tours from many
// start squares in parallel.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/tour"
)

// Job asks for a tour from one start square.
type Job struct {
	Start chess.Square
	Index int // Submission order, for reassembling results
}

// Result is the outcome of one Job.
type Result struct {
	Start chess.Square
	Index int
	Path  []chess.Square // Squares visited after Start; nil on error
	Nodes int            // Squares the search entered
	Err   error
}

// SolveFunc processes a single job.
type SolveFunc func(job Job) Result

// Pool manages a pool of workers running a SolveFunc.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	solve      SolveFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that runs solve on every submitted job.
// Default: 1 worker, buffer size of 10.
func NewPool(solve SolveFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		solve:      solve,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain channel without solving
		}
		p.results <- p.solve(job)
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers skip queued jobs.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// TourSolver returns a SolveFunc backed by tour.Solver. A nodeLimit of 0
// uses tour.DefaultNodeLimit.
func TourSolver(nodeLimit int) SolveFunc {
	return func(job Job) Result {
		s := tour.Solver{NodeLimit: nodeLimit}
		path, err := s.Solve(job.Start)
		return Result{Start: job.Start, Index: job.Index, Path: path, Nodes: s.Nodes(), Err: err}
	}
}

// SolveAll runs solve for every start square and returns the results in
// submission order.
func SolveAll(starts []chess.Square, solve SolveFunc, opts ...PoolOption) []Result {
	pool := NewPool(solve, opts...)
	pool.Start()

	go func() {
		for i, sq := range starts {
			pool.Submit(Job{Start: sq, Index: i})
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(starts))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
