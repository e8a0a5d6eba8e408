// File: core/concurrency/executor.go
// Package concurrency implements a bounded task executor for
// producer-side offload.
// Author: momentics
// License: Apache-2.0
//
// Executor runs tasks on a fixed set of worker goroutines. Submissions
// beyond the channel's buffer spill into an overflow queue instead of
// spawning goroutines, so burst load degrades to queuing rather than
// unbounded concurrency. Dispatch itself stays synchronous; the
// executor exists for producers that prepare or post-process events off
// their hot thread.

package concurrency

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ffi/api"
)

// TaskFunc is a unit of work to execute.
type TaskFunc func()

// Executor manages a pool of worker goroutines.
type Executor struct {
	tasks  chan TaskFunc
	closed atomic.Bool
	done   chan struct{}
	wg     sync.WaitGroup

	mu       sync.Mutex
	overflow *queue.Queue

	submitted atomic.Uint64
	completed atomic.Uint64
}

// NewExecutor creates an executor with numWorkers workers. Non-positive
// counts default to 1.
func NewExecutor(numWorkers int) *Executor {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	e := &Executor{
		tasks:    make(chan TaskFunc, numWorkers*4),
		done:     make(chan struct{}),
		overflow: queue.New(),
	}
	e.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go e.worker()
	}
	return e
}

// Submit enqueues a task. A full channel spills into the overflow
// queue; api.ErrExecutorClosed after Close.
func (e *Executor) Submit(task TaskFunc) error {
	if task == nil {
		return api.ErrInvalidArgument
	}
	if e.closed.Load() {
		return api.ErrExecutorClosed
	}
	e.submitted.Add(1)
	select {
	case e.tasks <- task:
		return nil
	default:
	}
	e.mu.Lock()
	e.overflow.Add(task)
	e.mu.Unlock()
	// The channel may have drained between the failed send and the
	// enqueue; nudge a worker so the overflow is not stranded.
	select {
	case e.tasks <- wake:
		e.submitted.Add(1)
	default:
	}
	return nil
}

// wake exists only to pull an idle worker through its drain pass.
var wake TaskFunc = func() {}

// worker drains the channel, flushing the overflow queue after each
// task. Overflow only fills while the channel is full, so the worker
// that frees channel space is guaranteed to come back through here.
func (e *Executor) worker() {
	defer e.wg.Done()
	for {
		select {
		case task := <-e.tasks:
			e.run(task)
			e.drainOverflow()
		case <-e.done:
			// finish what was already queued
			for {
				select {
				case task := <-e.tasks:
					e.run(task)
				default:
					e.drainOverflow()
					return
				}
			}
		}
	}
}

func (e *Executor) run(task TaskFunc) {
	if task != nil {
		task()
		e.completed.Add(1)
	}
}

func (e *Executor) drainOverflow() {
	for {
		e.mu.Lock()
		if e.overflow.Length() == 0 {
			e.mu.Unlock()
			return
		}
		task := e.overflow.Remove().(TaskFunc)
		e.mu.Unlock()
		e.run(task)
	}
}

// Close stops intake and waits for queued tasks to finish. Safe to call
// once.
func (e *Executor) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}
	close(e.done)
	e.wg.Wait()
}

// Pending returns the number of submitted tasks not yet completed.
func (e *Executor) Pending() uint64 {
	return e.submitted.Load() - e.completed.Load()
}
