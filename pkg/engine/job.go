package engine

import (
	"errors"
	"fmt"

	"github.com/chazu/isomarch/pkg/bench"
	"github.com/chazu/isomarch/pkg/kernel"
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/volume"
)

// ErrNoSource is returned for a job that names neither a raw volume nor a
// solid to sample.
var ErrNoSource = errors.New("job: no volume source (use raw-volume or sample-solid)")

// Job is a fully parsed extraction request. It is what the CLI flags or a
// job script produce and what the application consumes.
type Job struct {
	// VolumePath and Dims describe a raw byte volume on disk.
	VolumePath string
	Dims       volume.Dims

	// Shape, when set, is sampled with Sampling instead of loading a file.
	Shape    kernel.Solid
	Sampling volume.Sampling

	Isovalue float32
	Mode     parallel.Mode
	Bench    bench.Config

	// Output is the OBJ path and STL the binary STL path. Empty skips.
	Output string
	STL    string
}

// DefaultJob returns a job with a single parallel run at isovalue 0.
func DefaultJob() *Job {
	return &Job{
		Mode:  parallel.ModeParallel,
		Bench: bench.Config{Iterations: 1},
	}
}

// Source names the job's input for logs and file headers.
func (j *Job) Source() string {
	if j.Shape != nil {
		return "sampled solid"
	}
	return j.VolumePath
}

// Validate checks that the job is complete and consistent.
func (j *Job) Validate() error {
	switch {
	case j.Shape == nil && j.VolumePath == "":
		return ErrNoSource
	case j.Shape != nil && j.VolumePath != "":
		return errors.New("job: raw-volume and sample-solid are mutually exclusive")
	case j.Shape == nil && !j.Dims.Valid():
		return fmt.Errorf("job: raw volume needs positive dimensions, got %s", j.Dims)
	case j.Shape != nil && !j.Sampling.Dims.Valid():
		return fmt.Errorf("job: sampling needs positive dimensions, got %s", j.Sampling.Dims)
	}
	if _, err := parallel.ParseMode(string(j.Mode)); err != nil {
		return fmt.Errorf("job: %w", err)
	}
	if err := j.Bench.Validate(); err != nil {
		return fmt.Errorf("job: %w", err)
	}
	return nil
}
