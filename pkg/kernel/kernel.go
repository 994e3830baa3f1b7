// Package kernel abstracts the geometry library used to build synthetic
// scalar fields. A kernel constructs solids, rasterises them onto a sample
// grid for extraction, and meshes them with its own mesher so extracted
// surfaces can be checked against an independent result.
package kernel

import (
	"github.com/chazu/isomarch/pkg/mesh"
	"github.com/chazu/isomarch/pkg/volume"
)

// Solid is a kernel-owned shape. Only the kernel that made a solid can
// operate on it.
type Solid interface {
	BoundingBox() (lo, hi [3]float64)
}

// Kernel builds and samples solids.
type Kernel interface {
	Box(x, y, z float64) Solid
	Sphere(radius float64) Solid
	Cylinder(height, radius float64) Solid

	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	Translate(s Solid, x, y, z float64) Solid
	// Rotate takes Euler angles in degrees.
	Rotate(s Solid, x, y, z float64) Solid

	// Sample rasterises s onto a byte volume; see volume.FromSDF for the
	// value mapping.
	Sample(s Solid, cfg volume.Sampling) (*volume.Volume, volume.Frame, error)

	// ReferenceMesh meshes s with the kernel's own mesher, in model space.
	ReferenceMesh(s Solid, cells int) (*mesh.Soup, error)
}
