package march

import (
	"github.com/chazu/isomarch/pkg/mesh"
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/scan"
	"github.com/chazu/isomarch/pkg/tables"
	"github.com/chazu/isomarch/pkg/volume"
)

// Epsilon is the smallest corner-value difference that is interpolated.
// Flatter edges place the vertex on the edge's first corner.
const Epsilon = 1e-4

// Interpolate returns the point on the edge from corner a to corner b where
// the field crosses iso, relative to the voxel's minimum corner.
func Interpolate(a, b tables.Offset, va, vb, iso float32) mesh.Vertex {
	var t float32
	if d := va - vb; d >= Epsilon || d <= -Epsilon {
		t = (iso - va) / (vb - va)
	}
	// The explicit conversions force rounding after the multiply so that no
	// platform fuses it into the add.
	return mesh.Vertex{
		float32(a[0]) + float32(t*float32(b[0]-a[0])),
		float32(a[1]) + float32(t*float32(b[1]-a[1])),
		float32(a[2]) + float32(t*float32(b[2]-a[2])),
	}
}

// EmitVoxel writes the vertices of one voxel to dst, which must hold
// tables.EdgeCount(config) entries.
func EmitVoxel(dst []mesh.Vertex, config uint8, values [tables.Corners]float32, iso float32, i, j, k int) {
	for t := range dst {
		ca, cb := tables.EdgeEndpoints(tables.Edge(config, t))
		p := Interpolate(tables.CornerOffsets[ca], tables.CornerOffsets[cb], values[ca], values[cb], iso)
		dst[t] = mesh.Vertex{p[0] + float32(i), p[1] + float32(j), p[2] + float32(k)}
	}
}

// GenerateVertices scans the per-voxel counts into write offsets, allocates
// the vertex buffer once, and fills each voxel's disjoint region in
// parallel. Output order follows the active list, which is in voxel order.
func GenerateVertices(p parallel.Policy, v *volume.Volume, iso float32, ids, counts []uint32) *mesh.Soup {
	offsets, total := scan.New(p, scan.Add[uint32]()).Exclusive(counts)

	verts := make([]mesh.Vertex, total)
	p.For(len(ids), activeGrain, func(lo, hi int) {
		for a := lo; a < hi; a++ {
			config, values, i, j, k := voxelConfig(v, iso, int(ids[a]))
			start := offsets[a]
			EmitVoxel(verts[start:start+counts[a]], config, values, iso, i, j, k)
		}
	})
	return &mesh.Soup{Vertices: verts}
}
