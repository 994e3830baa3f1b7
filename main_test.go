package main

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/volume"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("isomarch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags(t *testing.T) {
	job, script, err := parseFlags(newFlagSet(), []string{
		"-f", "head.raw", "-dims", "256x256x113", "-iso", "80",
		"-bench", "20,200", "-iters", "10", "-seed", "4",
		"-o", "head.obj", "-stl", "head.stl", "-serial",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if script != "" {
		t.Errorf("script = %q", script)
	}
	if job.VolumePath != "head.raw" || job.Dims != (volume.Dims{X: 256, Y: 256, Z: 113}) {
		t.Errorf("source = %q %v", job.VolumePath, job.Dims)
	}
	if job.Isovalue != 80 || job.Mode != parallel.ModeSerial {
		t.Errorf("iso = %v, mode = %q", job.Isovalue, job.Mode)
	}
	if b := job.Bench; b.Iterations != 10 || b.Low != 20 || b.High != 200 || b.Seed != 4 {
		t.Errorf("bench = %+v", b)
	}
	if job.Output != "head.obj" || job.STL != "head.stl" {
		t.Errorf("outputs = %q %q", job.Output, job.STL)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	job, _, err := parseFlags(newFlagSet(), []string{"-f", "a.raw", "-dims", "2,3,4"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if job.Mode != parallel.ModeParallel || job.Bench.Iterations != 1 || job.Isovalue != 0 {
		t.Errorf("unexpected defaults %+v", job)
	}
}

func TestParseFlagsScript(t *testing.T) {
	job, script, err := parseFlags(newFlagSet(), []string{"-script", "x.job"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if job != nil || script != "x.job" {
		t.Errorf("job = %v, script = %q", job, script)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no source", []string{"-dims", "2x2x2"}},
		{"no dims", []string{"-f", "a.raw"}},
		{"bad dims", []string{"-f", "a.raw", "-dims", "2x2"}},
		{"zero dims", []string{"-f", "a.raw", "-dims", "0x2x2"}},
		{"bad range", []string{"-f", "a.raw", "-dims", "2x2x2", "-bench", "20"}},
		{"reversed range", []string{"-f", "a.raw", "-dims", "2x2x2", "-bench", "200,20"}},
		{"stray args", []string{"-f", "a.raw", "-dims", "2x2x2", "extra"}},
		{"unknown flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseFlags(newFlagSet(), tt.args); err == nil {
				t.Errorf("parseFlags(%v) should fail", tt.args)
			}
		})
	}
}

func TestDimsFlag(t *testing.T) {
	tests := []struct {
		in   string
		want volume.Dims
		ok   bool
	}{
		{"256x256x113", volume.Dims{X: 256, Y: 256, Z: 113}, true},
		{"4X5X6", volume.Dims{X: 4, Y: 5, Z: 6}, true},
		{"1, 2, 3", volume.Dims{X: 1, Y: 2, Z: 3}, true},
		{"1x2", volume.Dims{}, false},
		{"axbxc", volume.Dims{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d dimsFlag
			err := d.Set(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("Set(%q) err = %v", tt.in, err)
			}
			if tt.ok && volume.Dims(d) != tt.want {
				t.Errorf("Set(%q) = %v, want %v", tt.in, volume.Dims(d), tt.want)
			}
		})
	}
}

func TestRunScanDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := runScanDemo(&buf, []string{"1", "2", "3", "4", "5"}); err != nil {
		t.Fatalf("runScanDemo: %v", err)
	}
	want := "Input:\n1, 2, 3, 4, 5\n" +
		"Inclusive Sum: 15\nInclusive Scan results:\n1, 3, 6, 10, 15\n" +
		"Exclusive Sum: 15\nExclusive Scan results:\n0, 1, 3, 6, 10\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}

	if err := runScanDemo(io.Discard, nil); err == nil {
		t.Error("expected a usage error with no arguments")
	}
	if err := runScanDemo(io.Discard, []string{"1", "two"}); err == nil {
		t.Error("expected a parse error")
	}
}
