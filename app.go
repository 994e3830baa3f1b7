package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/chazu/isomarch/pkg/bench"
	"github.com/chazu/isomarch/pkg/engine"
	"github.com/chazu/isomarch/pkg/export"
	"github.com/chazu/isomarch/pkg/kernel"
	"github.com/chazu/isomarch/pkg/kernel/sdfx"
	"github.com/chazu/isomarch/pkg/march"
	"github.com/chazu/isomarch/pkg/mesh"
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/volume"
)

// App wires a job through loading, extraction, timing and export.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
	logger *log.Logger
}

// RunResult is what one job produced.
type RunResult struct {
	Report *bench.Report
	// Stats are the stage statistics of the last run.
	Stats march.Stats
	// Frame places the grid in model space for sampled solids.
	Frame *volume.Frame
}

// NewApp creates an App with an engine and the sdfx kernel. A nil logger
// uses the standard logger.
func NewApp(logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	k := sdfx.New()
	return &App{
		engine: engine.NewEngine(k),
		kernel: k,
		logger: logger,
	}
}

// EvaluateScript turns job-script source into a validated Job. Script
// errors are folded into one error, one line each.
func (a *App) EvaluateScript(source string) (*engine.Job, error) {
	job, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	if len(evalErrs) > 0 {
		lines := make([]string, len(evalErrs))
		for i, e := range evalErrs {
			lines[i] = e.Error()
		}
		return nil, fmt.Errorf("script: %s", strings.Join(lines, "\n"))
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// Run executes job: it obtains the volume, extracts (timing every
// iteration when benchmarking) and writes the requested outputs from the
// last run.
func (a *App) Run(job *engine.Job) (*RunResult, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	mode, err := parallel.ParseMode(string(job.Mode))
	if err != nil {
		return nil, err
	}
	policy := parallel.FromMode(mode)

	vol, frame, err := a.loadVolume(job, policy)
	if err != nil {
		return nil, err
	}
	a.logger.Printf("Loaded %s (%s, %d voxels)", job.Source(), vol.Dims, vol.Dims.VoxelCount())

	result := &RunResult{Frame: frame}
	ex := march.New(policy)
	report, err := bench.Run(job.Bench, job.Isovalue, string(mode), a.logger,
		func(iso float32) (*mesh.Soup, error) {
			res, err := ex.Extract(vol, iso)
			if err != nil {
				return nil, err
			}
			result.Stats = res.Stats
			return res.Mesh, nil
		})
	if err != nil {
		return nil, err
	}
	result.Report = report

	s := result.Stats
	a.logger.Printf("Active voxels: %d of %d, vertices: %d", s.Active, s.Voxels, s.Vertices)

	if job.Output != "" {
		opts := export.OBJOptions{Source: job.Source(), Isovalue: report.LastIso}
		if err := export.SaveOBJ(job.Output, report.Last, opts); err != nil {
			return nil, err
		}
		a.logger.Printf("Wrote %s", job.Output)
	}
	if job.STL != "" {
		header := fmt.Sprintf("isosurface of %s at %v", job.Source(), report.LastIso)
		if err := export.SaveSTL(job.STL, report.Last, header); err != nil {
			return nil, err
		}
		a.logger.Printf("Wrote %s", job.STL)
	}
	return result, nil
}

func (a *App) loadVolume(job *engine.Job, policy parallel.Policy) (*volume.Volume, *volume.Frame, error) {
	if job.Shape == nil {
		v, err := volume.Load(job.VolumePath, job.Dims)
		return v, nil, err
	}
	cfg := job.Sampling
	if cfg.Policy == nil {
		cfg.Policy = policy
	}
	v, frame, err := a.kernel.Sample(job.Shape, cfg)
	if err != nil {
		return nil, nil, err
	}
	return v, &frame, nil
}
