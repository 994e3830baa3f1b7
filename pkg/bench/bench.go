// Package bench times repeated extractions. With more than one iteration
// the isovalue of each run is drawn uniformly from a configured range, so
// timings are not dominated by one surface.
package bench

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/chazu/isomarch/pkg/mesh"
)

// Config selects how many runs to time and where their isovalues come from.
type Config struct {
	Iterations int
	// Low and High bound the sampled isovalues, [Low, High). They are
	// ignored for a single iteration.
	Low, High float32
	// Seed seeds the isovalue sampler. Zero seeds from the clock.
	Seed int64
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("bench: iterations must be at least 1, got %d", c.Iterations)
	}
	if c.Iterations > 1 && c.High < c.Low {
		return fmt.Errorf("bench: empty isovalue range [%v, %v)", c.Low, c.High)
	}
	return nil
}

// Sample is one timed run.
type Sample struct {
	Isovalue  float32
	Triangles int
	Duration  time.Duration
}

// Report collects every run plus the last run's mesh.
type Report struct {
	Samples []Sample
	// Last is the mesh of the final run and LastIso its isovalue.
	Last    *mesh.Soup
	LastIso float32
}

// Average returns the mean run duration.
func (r *Report) Average() time.Duration {
	if len(r.Samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range r.Samples {
		total += s.Duration
	}
	return total / time.Duration(len(r.Samples))
}

// ExtractFunc runs one extraction at iso.
type ExtractFunc func(iso float32) (*mesh.Soup, error)

// Run times cfg.Iterations calls of fn. A single iteration uses iso; more
// draw each isovalue from [cfg.Low, cfg.High). label names the execution
// mode in log lines. A nil logger disables logging. The first failing run
// aborts the benchmark.
func Run(cfg Config, iso float32, label string, logger *log.Logger, fn ExtractFunc) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logf := func(format string, args ...any) {
		if logger != nil {
			logger.Printf(format, args...)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	report := &Report{Samples: make([]Sample, 0, cfg.Iterations)}
	for i := 0; i < cfg.Iterations; i++ {
		runIso := iso
		if cfg.Iterations > 1 {
			runIso = cfg.Low + (cfg.High-cfg.Low)*rng.Float32()
			logf("isovalue: %v", runIso)
		}

		start := time.Now()
		soup, err := fn(runIso)
		dur := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("bench: run %d at isovalue %v: %w", i, runIso, err)
		}

		report.Samples = append(report.Samples, Sample{
			Isovalue:  runIso,
			Triangles: soup.TriangleCount(),
			Duration:  dur,
		})
		report.Last = soup
		report.LastIso = runIso
		logf("Isosurface with %d triangles computed in %dms (%s)", soup.TriangleCount(), dur.Milliseconds(), label)
	}
	logf("Average compute time: %.3fms", float64(report.Average().Microseconds())/1000)
	return report, nil
}
