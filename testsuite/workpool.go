// workpool.go - fixed-size worker pool for running tests in parallel
//
// The API is modeled after sync.WaitGroup: Submit() units of work,
// Close() the submission side and Wait() for completion; Wait()
// returns the joined errors from all the workers.

package main

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

type workPool[W any] struct {
	stopped atomic.Bool
	wg      sync.WaitGroup
	ch      chan W

	ech  chan error
	ewg  sync.WaitGroup
	errs []error
}

// newWorkPool creates a worker pool that invokes caller provided
// worker 'fp'. Each worker will process one unit of work submitted
// via Submit().
func newWorkPool[W any](nworkers int, fp func(i int, w W) error) *workPool[W] {
	if nworkers <= 1 {
		nworkers = runtime.NumCPU()
	}

	wp := &workPool[W]{
		ch:   make(chan W, nworkers),
		ech:  make(chan error, 1),
		errs: make([]error, 0, 1),
	}

	wp.wg.Add(nworkers)
	for i := 0; i < nworkers; i++ {
		go func(i int) {
			// deferred before the recover hook so a panicking
			// worker still counts down and Wait() can return
			defer wp.wg.Done()
			defer func() {
				if e := recover(); e != nil {
					wp.ech <- fmt.Errorf("workpool: panic: %v", e)
				}
			}()

			for w := range wp.ch {
				if err := fp(i, w); err != nil {
					wp.ech <- err
				}
			}
		}(i)
	}

	// harvest errors
	wp.ewg.Add(1)
	go func() {
		for e := range wp.ech {
			wp.errs = append(wp.errs, e)
		}
		wp.ewg.Done()
	}()

	return wp
}

// Close the work submission to workers and signal
// to them that there's no more work forthcoming.
func (wp *workPool[W]) Close() {
	if wp.stopped.Swap(true) {
		panic("workpool already closed")
	}
	close(wp.ch)
}

// Wait for all workers to end and return any errors they
// reported. The pool cannot be used after Wait() returns.
func (wp *workPool[W]) Wait() error {
	wp.wg.Wait()
	close(wp.ech)

	// wait for error harvestor to complete
	wp.ewg.Wait()
	if len(wp.errs) > 0 {
		return errors.Join(wp.errs...)
	}
	return nil
}

// Submit submits one unit of work to the workers.
func (wp *workPool[W]) Submit(w W) {
	if wp.stopped.Load() {
		panic("workpool stopped")
	}
	wp.ch <- w
}
