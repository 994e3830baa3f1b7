package bench

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/chazu/isomarch/pkg/mesh"
)

func fixedSoup(tris int) *mesh.Soup {
	return &mesh.Soup{Vertices: make([]mesh.Vertex, 3*tris)}
}

func TestSingleIterationUsesGivenIso(t *testing.T) {
	var seen []float32
	report, err := Run(Config{Iterations: 1, Low: 0, High: 1}, 42, "serial", nil, func(iso float32) (*mesh.Soup, error) {
		seen = append(seen, iso)
		return fixedSoup(2), nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(seen) != 1 || seen[0] != 42 {
		t.Fatalf("extract called with %v, want [42]", seen)
	}
	if report.LastIso != 42 || report.Last.TriangleCount() != 2 {
		t.Errorf("unexpected report: %+v", report)
	}
	if report.Samples[0].Triangles != 2 {
		t.Errorf("sample triangles = %d, want 2", report.Samples[0].Triangles)
	}
}

func TestSampledIsovaluesStayInRange(t *testing.T) {
	cfg := Config{Iterations: 50, Low: 20, High: 200, Seed: 9}
	report, err := Run(cfg, 0, "parallel", nil, func(iso float32) (*mesh.Soup, error) {
		return fixedSoup(1), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Samples) != 50 {
		t.Fatalf("got %d samples, want 50", len(report.Samples))
	}
	distinct := map[float32]bool{}
	for _, s := range report.Samples {
		if s.Isovalue < 20 || s.Isovalue >= 200 {
			t.Errorf("isovalue %v outside [20, 200)", s.Isovalue)
		}
		distinct[s.Isovalue] = true
	}
	if len(distinct) < 2 {
		t.Error("expected varied isovalues")
	}
}

func TestSeedIsReproducible(t *testing.T) {
	cfg := Config{Iterations: 5, Low: 0, High: 255, Seed: 3}
	isos := func() []float32 {
		r, err := Run(cfg, 0, "serial", nil, func(float32) (*mesh.Soup, error) { return fixedSoup(0), nil })
		if err != nil {
			t.Fatal(err)
		}
		out := make([]float32, len(r.Samples))
		for i, s := range r.Samples {
			out[i] = s.Isovalue
		}
		return out
	}
	a, b := isos(), isos()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("run %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRunStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := Run(Config{Iterations: 10, Low: 0, High: 1, Seed: 1}, 0, "parallel", nil, func(float32) (*mesh.Soup, error) {
		calls++
		if calls == 3 {
			return nil, boom
		}
		return fixedSoup(1), nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run = %v, want wrapped boom", err)
	}
	if calls != 3 {
		t.Errorf("extract called %d times, want 3", calls)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"single", Config{Iterations: 1}, false},
		{"range", Config{Iterations: 10, Low: 1, High: 2}, false},
		{"zero iterations", Config{}, true},
		{"inverted range", Config{Iterations: 2, Low: 5, High: 1}, true},
		{"inverted range single run", Config{Iterations: 1, Low: 5, High: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	_, err := Run(Config{Iterations: 2, Low: 1, High: 2, Seed: 1}, 0, "parallel", logger, func(float32) (*mesh.Soup, error) {
		return fixedSoup(4), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"isovalue: ", "Isosurface with 4 triangles", "(parallel)", "Average compute time"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestAverage(t *testing.T) {
	r := &Report{Samples: []Sample{{Duration: 2 * time.Millisecond}, {Duration: 4 * time.Millisecond}}}
	if got := r.Average(); got != 3*time.Millisecond {
		t.Errorf("Average() = %v, want 3ms", got)
	}
	if got := (&Report{}).Average(); got != 0 {
		t.Errorf("empty Average() = %v, want 0", got)
	}
}
