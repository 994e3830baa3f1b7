// Package march extracts isosurfaces from byte volumes with a data-parallel
// Marching Cubes pipeline:
//
//	classify -> scan -> compact -> count -> scan -> generate
//
// Every stage runs index-range tasks under a parallel.Policy and finishes
// before the next one starts. Tasks within a stage read only the shared
// volume and lookup tables and write disjoint output slots, so no locks or
// atomics are needed. The output is a triangle soup in linear voxel order
// (i fastest, then j, then k) and is identical under every policy.
package march

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/chazu/isomarch/pkg/mesh"
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/volume"
)

const (
	// voxelGrain is the chunk length for per-voxel stages.
	voxelGrain = 4096
	// activeGrain is the chunk length for per-active-voxel stages.
	activeGrain = 1024
)

var (
	// ErrInternal marks an extraction aborted by a fault inside a pipeline
	// task. No partial mesh is returned with it.
	ErrInternal = errors.New("march: internal error")
	// ErrTooLarge is returned for volumes whose voxel ids do not fit in 32
	// bits.
	ErrTooLarge = errors.New("march: volume has too many voxels")
)

// Stats describes one extraction.
type Stats struct {
	Voxels    int
	Active    int
	Vertices  int
	Triangles int

	Classify time.Duration
	Compact  time.Duration
	Count    time.Duration
	Generate time.Duration
}

// Total returns the summed stage time.
func (s Stats) Total() time.Duration {
	return s.Classify + s.Compact + s.Count + s.Generate
}

// Result bundles an extraction's mesh and statistics.
type Result struct {
	Mesh  *mesh.Soup
	Stats Stats
}

// Extractor runs the pipeline under a fixed policy.
type Extractor struct {
	// Policy executes the range tasks. Nil selects parallel.Default().
	Policy parallel.Policy
	// Logger, when set, receives one line per stage.
	Logger *log.Logger
}

// New returns an Extractor using policy p.
func New(p parallel.Policy) *Extractor {
	return &Extractor{Policy: p}
}

// Extract is a shorthand for New(p).Extract(v, iso) returning only the mesh.
func Extract(p parallel.Policy, v *volume.Volume, iso float32) (*mesh.Soup, error) {
	res, err := New(p).Extract(v, iso)
	if err != nil {
		return nil, err
	}
	return res.Mesh, nil
}

func (e *Extractor) policy() parallel.Policy {
	if e.Policy == nil {
		return parallel.Default()
	}
	return e.Policy
}

func (e *Extractor) logf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// Extract computes the isosurface of v at iso. The volume is validated
// before any task runs. A volume with no active voxels yields an empty mesh
// and no error.
func (e *Extractor) Extract(v *volume.Volume, iso float32) (res *Result, err error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("march: %w", err)
	}
	if uint64(v.Dims.VoxelCount()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, v.Dims)
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	p := e.policy()
	stats := Stats{Voxels: v.Dims.VoxelCount()}

	start := time.Now()
	flags := Classify(p, v, iso)
	stats.Classify = time.Since(start)
	e.logf("classify: %d voxels in %s", stats.Voxels, stats.Classify)

	start = time.Now()
	ids := Compact(p, flags)
	stats.Compact = time.Since(start)
	stats.Active = len(ids)
	e.logf("compact: %d active voxels in %s", stats.Active, stats.Compact)

	start = time.Now()
	counts := CountVertices(p, v, iso, ids)
	stats.Count = time.Since(start)
	e.logf("count: %d active voxels in %s", len(counts), stats.Count)

	start = time.Now()
	soup := GenerateVertices(p, v, iso, ids, counts)
	stats.Generate = time.Since(start)
	stats.Vertices = soup.VertexCount()
	stats.Triangles = soup.TriangleCount()
	e.logf("generate: %d vertices in %s", stats.Vertices, stats.Generate)

	return &Result{Mesh: soup, Stats: stats}, nil
}
