package march_test

import (
	"math/rand"
	"testing"

	"github.com/chazu/isomarch/pkg/march"
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/tables"
	"github.com/chazu/isomarch/pkg/volume"
)

func TestCompactMatchesSequentialCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 100, 4096, 4097, 20000} {
		flags := make([]uint32, n)
		want := 0
		for i := range flags {
			if rng.Intn(3) == 0 {
				flags[i] = 1
				want++
			}
		}
		for name, p := range policies {
			ids := march.Compact(p, flags)
			if len(ids) != want {
				t.Fatalf("%s n=%d: %d ids, want %d", name, n, len(ids), want)
			}
			for a, id := range ids {
				if flags[id] != 1 {
					t.Fatalf("%s n=%d: id %d is not flagged", name, n, id)
				}
				if a > 0 && ids[a-1] >= id {
					t.Fatalf("%s n=%d: ids not strictly ascending at %d", name, n, a)
				}
			}
		}
	}
}

func TestClassifyFlags(t *testing.T) {
	v := randomVolume(t, 11, volume.Dims{X: 9, Y: 7, Z: 5})
	for name, p := range policies {
		flags := march.Classify(p, v, 128)
		if len(flags) != v.Dims.VoxelCount() {
			t.Fatalf("%s: %d flags, want %d", name, len(flags), v.Dims.VoxelCount())
		}
		for id, f := range flags {
			i, j, k := v.Dims.Voxel(id)
			config := march.ConfigIndex(march.CornerValues(v, i, j, k), 128)
			want := uint32(0)
			if march.Active(config) {
				want = 1
			}
			if f != want {
				t.Fatalf("%s: voxel %d flag %d, want %d", name, id, f, want)
			}
		}
	}
}

func TestCountVerticesIndexedByActivePosition(t *testing.T) {
	v := ballVolume(t, 20)
	p := parallel.NewPool(4)
	ids := march.Compact(p, march.Classify(p, v, 100))
	counts := march.CountVertices(p, v, 100, ids)
	if len(counts) != len(ids) {
		t.Fatalf("%d counts for %d active voxels", len(counts), len(ids))
	}
	for a, id := range ids {
		i, j, k := v.Dims.Voxel(int(id))
		config := march.ConfigIndex(march.CornerValues(v, i, j, k), 100)
		if int(counts[a]) != tables.EdgeCount(config) {
			t.Fatalf("position %d: count %d, want %d", a, counts[a], tables.EdgeCount(config))
		}
		if counts[a] == 0 || counts[a]%3 != 0 {
			t.Fatalf("position %d: active voxel with count %d", a, counts[a])
		}
	}
}

func TestGenerateWritesDisjointRegions(t *testing.T) {
	v := ballVolume(t, 20)
	p := parallel.NewPool(4)
	ids := march.Compact(p, march.Classify(p, v, 100))
	counts := march.CountVertices(p, v, 100, ids)
	soup := march.GenerateVertices(p, v, 100, ids, counts)

	total := 0
	for _, c := range counts {
		total += int(c)
	}
	if soup.VertexCount() != total {
		t.Fatalf("%d vertices, want %d", soup.VertexCount(), total)
	}

	// Each voxel's vertices stay inside that voxel's cell.
	off := 0
	for a, id := range ids {
		i, j, k := v.Dims.Voxel(int(id))
		for _, p := range soup.Vertices[off : off+int(counts[a])] {
			if p[0] < float32(i) || p[0] > float32(i+1) ||
				p[1] < float32(j) || p[1] > float32(j+1) ||
				p[2] < float32(k) || p[2] > float32(k+1) {
				t.Fatalf("voxel (%d,%d,%d) emitted %v outside its cell", i, j, k, p)
			}
		}
		off += int(counts[a])
	}
}

func TestInterpolate(t *testing.T) {
	a := tables.Offset{0, 0, 0}
	b := tables.Offset{1, 0, 0}
	tests := []struct {
		name   string
		va, vb float32
		iso    float32
		want   float32
	}{
		{"midpoint", 0, 100, 50, 0.5},
		{"at a", 10, 20, 10, 0},
		{"at b", 10, 20, 20, 1},
		{"reversed", 100, 0, 25, 0.75},
		{"flat edge falls back to a", 42, 42, 42, 0},
		{"nearly flat edge", 42, 42.00001, 42, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := march.Interpolate(a, b, tt.va, tt.vb, tt.iso)
			if p[0] != tt.want || p[1] != 0 || p[2] != 0 {
				t.Errorf("Interpolate = %v, want (%v, 0, 0)", p, tt.want)
			}
		})
	}
}

func TestInterpolateNeverNaN(t *testing.T) {
	a := tables.Offset{0, 1, 0}
	b := tables.Offset{0, 1, 1}
	for _, val := range []float32{0, 1, 128, 255} {
		p := march.Interpolate(a, b, val, val, val)
		for _, c := range p {
			if c != c {
				t.Fatalf("NaN for flat edge at %v", val)
			}
		}
		if p != [3]float32{0, 1, 0} {
			t.Errorf("flat edge at %v = %v, want corner a", val, p)
		}
	}
}
