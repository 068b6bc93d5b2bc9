// Package parallel runs independent tasks on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc schedules a task.
	WorkerFunc func(func())
	// WaitFunc blocks until scheduled tasks have run. When done is true the
	// pool is closed and accepts no further tasks.
	WaitFunc func(done bool)
)

// Pool dispatches tasks to its workers. With a single worker tasks run
// inline, in the caller's goroutine.
type Pool struct {
	workers int
	tasks   chan func()
	pending sync.WaitGroup
	running sync.WaitGroup
	close   func()
}

// Start launches numWorkers goroutines, or GOMAXPROCS of them when
// numWorkers is below one.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{workers: numWorkers, close: func() {}}
	if numWorkers == 1 {
		return p
	}

	p.tasks = make(chan func(), numWorkers)
	for range numWorkers {
		p.running.Go(func() {
			for f := range p.tasks {
				f()
				p.pending.Done()
			}
		})
	}
	p.close = sync.OnceFunc(func() { close(p.tasks) })
	return p
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Do schedules f. It blocks while every worker is busy and the queue is
// full. Do must not be called after Wait(true).
func (p *Pool) Do(f func()) {
	if p.tasks == nil {
		f()
		return
	}
	p.pending.Add(1)
	p.tasks <- f
}

// Wait blocks until every task scheduled so far has finished. With done set
// the workers are stopped as well.
func (p *Pool) Wait(done bool) {
	p.pending.Wait()
	if done {
		p.close()
		p.running.Wait()
	}
}
