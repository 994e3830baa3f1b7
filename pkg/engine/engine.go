// Package engine evaluates isomarch job scripts. A job script is a small
// Lisp program, run in a sandboxed zygomys environment, whose builtins
// describe the volume to mesh, the isovalue, the execution mode, benchmark
// parameters and outputs. Evaluation produces an engine.Job; the pipeline
// itself never sees script text.
//
//	(raw-volume "head.raw" :dims (vec3 256 256 113))
//	(isovalue 80)
//	(exec-mode :serial)
//	(benchmark 20 200 :iters 100)
//	(output-obj "head.obj")
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/isomarch/pkg/kernel"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in the script.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates job scripts. Each Evaluate call runs in a fresh
// sandboxed environment, so an Engine may be shared between goroutines.
type Engine struct {
	kernel kernel.Kernel

	mu         sync.Mutex
	generation uint64
}

// NewEngine returns an Engine whose shape builtins build solids with k. A
// nil kernel leaves only the settings builtins usable.
func NewEngine(k kernel.Kernel) *Engine {
	return &Engine{kernel: k}
}

// Evaluate runs source and returns the Job it describes.
//
//   - success: job, nil, nil
//   - script errors (parse or runtime): nil, errs, nil
//   - fatal failure (timeout, panic, superseded): nil, nil, err
//
// The job is not validated; see Job.Validate.
func (e *Engine) Evaluate(source string) (*Job, []EvalError, error) {
	gen := e.begin()
	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		job, evalErrs, err := e.evaluate(source)
		ch <- evalResult{job: job, errors: evalErrs, err: err}
	}()

	return e.await(ch, gen, EvalTimeout)
}

// evaluate does the work of Evaluate on the calling goroutine.
func (e *Engine) evaluate(source string) (*Job, []EvalError, error) {
	job := DefaultJob()
	if strings.TrimSpace(source) == "" {
		return job, nil, nil
	}

	// Scripts only name files; the sandbox keeps them from opening any.
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, e.kernel, job)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}
	return job, nil, nil
}

// Location prefixes zygomys puts on its errors.
var (
	linePattern      = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// parseZygomysError turns a zygomys error into EvalErrors, lifting the line
// number out of the message when there is one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			// Keep any text around the location prefix; builtin errors
			// may be reported on either side of it.
			rest := strings.Replace(msg, m[0], m[2], 1)
			return []EvalError{{Line: line, Message: strings.TrimSpace(rest)}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
