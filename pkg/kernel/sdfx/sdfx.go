// Package sdfx is the kernel.Kernel backed by signed distance fields from
// github.com/deadsy/sdfx. Solids stay as SDFs until they are sampled onto a
// grid or meshed by sdfx's own marching cubes for comparison.
package sdfx

import (
	"fmt"

	"github.com/chazu/isomarch/pkg/kernel"
	"github.com/chazu/isomarch/pkg/mesh"
	"github.com/chazu/isomarch/pkg/volume"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var _ kernel.Kernel = Kernel{}

// solid is the kernel.Solid handed out by this package.
type solid struct {
	field sdf.SDF3
}

func (s solid) BoundingBox() (lo, hi [3]float64) {
	box := s.field.BoundingBox()
	return [3]float64{box.Min.X, box.Min.Y, box.Min.Z},
		[3]float64{box.Max.X, box.Max.Y, box.Max.Z}
}

// Kernel builds sdfx solids. It is stateless.
type Kernel struct{}

// New returns the sdfx kernel.
func New() Kernel {
	return Kernel{}
}

// SDF exposes the distance field behind a solid from this kernel.
func SDF(s kernel.Solid) sdf.SDF3 {
	return s.(solid).field
}

// must turns an sdfx constructor error into a panic. Constructors only fail
// on non-positive sizes, which callers validate first.
func must(name string, f sdf.SDF3, err error) kernel.Solid {
	if err != nil {
		panic(fmt.Sprintf("sdfx: %s: %v", name, err))
	}
	return solid{f}
}

// Box is centred on the origin.
func (Kernel) Box(x, y, z float64) kernel.Solid {
	f, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	return must("box", f, err)
}

// Sphere is centred on the origin.
func (Kernel) Sphere(radius float64) kernel.Solid {
	f, err := sdf.Sphere3D(radius)
	return must("sphere", f, err)
}

// Cylinder runs along z, centred on the origin.
func (Kernel) Cylinder(height, radius float64) kernel.Solid {
	f, err := sdf.Cylinder3D(height, radius, 0)
	return must("cylinder", f, err)
}

func (Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return solid{sdf.Union3D(SDF(a), SDF(b))}
}

// Difference removes b from a.
func (Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return solid{sdf.Difference3D(SDF(a), SDF(b))}
}

func (Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return solid{sdf.Intersect3D(SDF(a), SDF(b))}
}

func (Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return solid{sdf.Transform3D(SDF(s), sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z}))}
}

// Rotate applies x, then y, then z rotations, in degrees.
func (Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.RotateZ(sdf.DtoR(z)).Mul(sdf.RotateY(sdf.DtoR(y))).Mul(sdf.RotateX(sdf.DtoR(x)))
	return solid{sdf.Transform3D(SDF(s), m)}
}

// Sample rasterises s with volume.FromSDF.
func (Kernel) Sample(s kernel.Solid, cfg volume.Sampling) (*volume.Volume, volume.Frame, error) {
	return volume.FromSDF(SDF(s), cfg)
}

// ReferenceMesh meshes s with sdfx's uniform marching cubes over cells
// cells along the longest axis.
func (Kernel) ReferenceMesh(s kernel.Solid, cells int) (*mesh.Soup, error) {
	if cells <= 0 {
		return nil, fmt.Errorf("sdfx: cells must be positive, got %d", cells)
	}
	tris := render.ToTriangles(SDF(s), render.NewMarchingCubesUniform(cells))

	soup := &mesh.Soup{Vertices: make([]mesh.Vertex, 0, 3*len(tris))}
	for _, tri := range tris {
		for _, p := range tri {
			soup.Vertices = append(soup.Vertices, mesh.Vertex{float32(p.X), float32(p.Y), float32(p.Z)})
		}
	}
	return soup, nil
}
