// Package mesh defines the triangle soup produced by isosurface extraction.
// A soup is a flat vertex sequence in which every three consecutive
// vertices form one triangle. There is no index buffer and vertices shared
// by neighbouring triangles are repeated.
package mesh

import (
	"math"
)

// Vertex is a point in voxel space.
type Vertex [3]float32

// Soup is a non-indexed triangle mesh.
type Soup struct {
	Vertices []Vertex
}

// VertexCount returns the number of vertices.
func (s *Soup) VertexCount() int {
	return len(s.Vertices)
}

// TriangleCount returns the number of triangles.
func (s *Soup) TriangleCount() int {
	return len(s.Vertices) / 3
}

// IsEmpty returns true if the soup has no geometry.
func (s *Soup) IsEmpty() bool {
	return len(s.Vertices) == 0
}

// Triangle returns the i-th triangle's vertices.
func (s *Soup) Triangle(i int) (a, b, c Vertex) {
	return s.Vertices[3*i], s.Vertices[3*i+1], s.Vertices[3*i+2]
}

// Flatten returns the vertices as [x0,y0,z0, x1,y1,z1, ...].
func (s *Soup) Flatten() []float32 {
	out := make([]float32, 0, 3*len(s.Vertices))
	for _, v := range s.Vertices {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Bounds returns the axis-aligned bounding box. An empty soup returns
// ok == false.
func (s *Soup) Bounds() (lo, hi Vertex, ok bool) {
	if len(s.Vertices) == 0 {
		return lo, hi, false
	}
	lo, hi = s.Vertices[0], s.Vertices[0]
	for _, v := range s.Vertices[1:] {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], v[a])
			hi[a] = max(hi[a], v[a])
		}
	}
	return lo, hi, true
}

// Identical reports whether two soups hold bit-identical vertices in the
// same order. Unlike ==, it distinguishes -0 from +0.
func Identical(a, b *Soup) bool {
	if len(a.Vertices) != len(b.Vertices) {
		return false
	}
	for i := range a.Vertices {
		for c := 0; c < 3; c++ {
			if math.Float32bits(a.Vertices[i][c]) != math.Float32bits(b.Vertices[i][c]) {
				return false
			}
		}
	}
	return true
}

// FirstDifference returns the index of the first vertex at which a and b
// differ, or -1 if they are identical.
func FirstDifference(a, b *Soup) int {
	n := min(len(a.Vertices), len(b.Vertices))
	for i := 0; i < n; i++ {
		for c := 0; c < 3; c++ {
			if math.Float32bits(a.Vertices[i][c]) != math.Float32bits(b.Vertices[i][c]) {
				return i
			}
		}
	}
	if len(a.Vertices) != len(b.Vertices) {
		return n
	}
	return -1
}
