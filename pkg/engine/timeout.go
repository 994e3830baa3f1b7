package engine

import (
	"fmt"
	"time"
)

// EvalTimeout bounds a single job-script evaluation.
const EvalTimeout = 5 * time.Second

// evalResult is what an evaluation goroutine hands back.
type evalResult struct {
	job    *Job
	errors []EvalError
	err    error
}

// begin claims a new evaluation generation.
func (e *Engine) begin() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	return e.generation
}

// current reports whether gen is still the newest evaluation.
func (e *Engine) current(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return gen == e.generation
}

// await returns the result delivered on ch, or a timeout error once
// timeout elapses. A result that arrives after a newer evaluation began is
// discarded. A timed-out goroutine keeps running; its late result lands in
// the buffered channel and is never read.
func (e *Engine) await(ch <-chan evalResult, gen uint64, timeout time.Duration) (*Job, []EvalError, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if !e.current(gen) {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.job, res.errors, res.err
	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", timeout)
	}
}
