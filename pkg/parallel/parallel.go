// Package parallel provides the execution policies the extraction pipeline
// runs its index-range tasks under. A policy partitions [0, n) into
// contiguous chunks and runs a body over each; For always returns after every
// chunk has finished, which gives the pipeline its hard barrier between
// stages.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Policy executes index-range tasks.
type Policy interface {
	// For runs body over contiguous chunks covering [0, n), each at most
	// grain long. Chunks may run concurrently and in any order. For returns
	// once every chunk has completed. A panic in body is re-raised on the
	// calling goroutine.
	For(n, grain int, body func(lo, hi int))

	// Workers reports how many chunks may run at once.
	Workers() int
}

// Mode names an execution policy in configuration.
type Mode string

const (
	ModeSerial   Mode = "serial"
	ModeParallel Mode = "parallel"
)

// ParseMode converts a configuration string to a Mode. The empty string
// selects ModeParallel.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeParallel:
		return ModeParallel, nil
	case ModeSerial:
		return ModeSerial, nil
	}
	return "", fmt.Errorf("unknown execution mode %q (want %q or %q)", s, ModeSerial, ModeParallel)
}

// FromMode returns the policy for a mode: Sequential for ModeSerial and the
// shared Default pool otherwise.
func FromMode(m Mode) Policy {
	if m == ModeSerial {
		return Sequential
	}
	return Default()
}

// chunks returns the number of grain-sized chunks covering n elements.
func chunks(n, grain int) int {
	if n <= 0 {
		return 0
	}
	if grain <= 0 {
		grain = 1
	}
	return (n + grain - 1) / grain
}

func bounds(c, n, grain int) (lo, hi int) {
	if grain <= 0 {
		grain = 1
	}
	lo = c * grain
	hi = min(lo+grain, n)
	return lo, hi
}

// sequential runs every chunk inline, in index order.
type sequential struct{}

// Sequential is the single-threaded policy. It runs the same chunking as the
// pool so that any chunk-dependent result is identical under both.
var Sequential Policy = sequential{}

func (sequential) For(n, grain int, body func(lo, hi int)) {
	nc := chunks(n, grain)
	for c := 0; c < nc; c++ {
		body(bounds(c, n, grain))
	}
}

func (sequential) Workers() int { return 1 }

// Pool runs chunks on a fixed number of goroutines. The zero value is not
// usable; construct with NewPool.
type Pool struct {
	workers int
}

// NewPool returns a pool running up to workers chunks at once. A
// non-positive count selects runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool sized to hardware concurrency.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = NewPool(0)
	})
	return defaultPool
}

// Workers reports the pool size.
func (p *Pool) Workers() int { return p.workers }

// For implements Policy. Chunk ids are claimed from a shared counter, so
// fast workers pick up the slack of slow ones.
func (p *Pool) For(n, grain int, body func(lo, hi int)) {
	nc := chunks(n, grain)
	if nc == 0 {
		return
	}
	workers := min(p.workers, nc)
	if workers <= 1 {
		Sequential.For(n, grain, body)
		return
	}

	var (
		next    atomic.Int64
		wg      sync.WaitGroup
		panicMu sync.Mutex
		panicV  any
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicMu.Lock()
					if panicV == nil {
						panicV = r
					}
					panicMu.Unlock()
					// Drain remaining chunks so the other workers stop early.
					next.Store(int64(nc))
				}
			}()
			for {
				c := int(next.Add(1) - 1)
				if c >= nc {
					return
				}
				body(bounds(c, n, grain))
			}
		}()
	}
	wg.Wait()

	if panicV != nil {
		panic(&TaskPanic{Value: panicV})
	}
}

// TaskPanic wraps a panic raised inside a range task so callers can tell it
// apart from panics of their own.
type TaskPanic struct {
	Value any
}

func (p *TaskPanic) Error() string {
	return fmt.Sprintf("parallel task panicked: %v", p.Value)
}
