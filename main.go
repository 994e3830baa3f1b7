// Command isomarch extracts an isosurface from a raw byte volume, or from a
// solid sampled onto a grid, with a data-parallel Marching Cubes pipeline.
//
//	isomarch -f head.raw -dims 256x256x113 -iso 80 -o head.obj
//	isomarch -f head.raw -dims 256x256x113 -bench 20,200 -iters 100
//	isomarch -script bracket.job
//	isomarch scan 1 2 3 4 5
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/isomarch/pkg/bench"
	"github.com/chazu/isomarch/pkg/engine"
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/scan"
	"github.com/chazu/isomarch/pkg/volume"
	"github.com/unixpickle/essentials"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "scan" {
		if err := runScanDemo(os.Stdout, os.Args[2:]); err != nil {
			log.Fatalf("scan: %v", err)
		}
		return
	}

	job, scriptPath, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := NewApp(nil)
	if scriptPath != "" {
		source, err := os.ReadFile(scriptPath)
		essentials.Must(err)
		if job, err = app.EvaluateScript(string(source)); err != nil {
			log.Fatalf("%s: %v", scriptPath, err)
		}
	}
	if _, err := app.Run(job); err != nil {
		log.Fatalf("%v", err)
	}
}

// parseFlags builds a Job from command-line flags. When -script is given
// the job comes from the script instead and the returned job is nil.
func parseFlags(fs *flag.FlagSet, args []string) (*engine.Job, string, error) {
	job := engine.DefaultJob()

	var (
		dims   dimsFlag
		rng    rangeFlag
		iso    float64
		iters  int
		seed   int64
		serial bool
		script string
	)
	fs.StringVar(&job.VolumePath, "f", "", "raw volume file (one byte per sample, x fastest)")
	fs.Var(&dims, "dims", "volume dimensions as XxYxZ, e.g. 256x256x113")
	fs.Float64Var(&iso, "iso", 0, "isovalue in sample units")
	fs.Var(&rng, "bench", "benchmark with random isovalues in [lo,hi), as lo,hi")
	fs.IntVar(&iters, "iters", 100, "benchmark iterations (with -bench)")
	fs.Int64Var(&seed, "seed", 0, "benchmark isovalue seed (0 seeds from the clock)")
	fs.StringVar(&job.Output, "o", "", "write the surface as OBJ to this path")
	fs.StringVar(&job.STL, "stl", "", "write the surface as binary STL to this path")
	fs.BoolVar(&serial, "serial", false, "run the pipeline sequentially")
	fs.StringVar(&script, "script", "", "read the job from a job script instead of flags")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage:", os.Args[0], "[flags]")
		fmt.Fprintln(fs.Output(), "      ", os.Args[0], "scan <int>...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 0 {
		return nil, "", fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if script != "" {
		return nil, script, nil
	}

	job.Dims = volume.Dims(dims)
	job.Isovalue = float32(iso)
	if serial {
		job.Mode = parallel.ModeSerial
	}
	if rng.set {
		job.Bench = bench.Config{Iterations: iters, Low: rng.lo, High: rng.hi, Seed: seed}
	}
	if err := job.Validate(); err != nil {
		return nil, "", err
	}
	return job, "", nil
}

// dimsFlag parses XxYxZ (or X,Y,Z) into volume dimensions.
type dimsFlag volume.Dims

func (d *dimsFlag) String() string {
	if d == nil {
		return ""
	}
	return volume.Dims(*d).String()
}

func (d *dimsFlag) Set(s string) error {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == 'x' || r == ','
	})
	if len(parts) != 3 {
		return fmt.Errorf("want three dimensions, got %q", s)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return err
		}
		n[i] = v
	}
	*d = dimsFlag{X: n[0], Y: n[1], Z: n[2]}
	return nil
}

// rangeFlag parses a lo,hi isovalue range.
type rangeFlag struct {
	lo, hi float32
	set    bool
}

func (r *rangeFlag) String() string {
	if r == nil || !r.set {
		return ""
	}
	return fmt.Sprintf("%v,%v", r.lo, r.hi)
}

func (r *rangeFlag) Set(s string) error {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want lo,hi, got %q", s)
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(lo), 32)
	if err != nil {
		return err
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hi), 32)
	if err != nil {
		return err
	}
	r.lo, r.hi, r.set = float32(l), float32(h), true
	return nil
}

// runScanDemo prints the inclusive and exclusive sums of the integers in
// args.
func runScanDemo(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s scan <int>...", os.Args[0])
	}
	data := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return err
		}
		data[i] = v
	}

	s := scan.New(parallel.Default(), scan.Add[int]())
	inclusive, total := s.Inclusive(data)
	exclusive, exTotal := s.Exclusive(data)

	fmt.Fprintf(w, "Input:\n%s\n", joinInts(data))
	fmt.Fprintf(w, "Inclusive Sum: %d\nInclusive Scan results:\n%s\n", total, joinInts(inclusive))
	fmt.Fprintf(w, "Exclusive Sum: %d\nExclusive Scan results:\n%s\n", exTotal, joinInts(exclusive))
	return nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
