package engine

import (
	"fmt"
	"testing"

	"github.com/chazu/isomarch/pkg/kernel"
	"github.com/chazu/isomarch/pkg/mesh"
	"github.com/chazu/isomarch/pkg/volume"
)

// stubSolid records how a solid was built.
type stubSolid struct {
	desc string
}

func (s *stubSolid) BoundingBox() (lo, hi [3]float64) {
	return [3]float64{-1, -1, -1}, [3]float64{1, 1, 1}
}

// stubKernel builds stubSolids so tests can check exactly which kernel
// calls a script makes.
type stubKernel struct{}

var _ kernel.Kernel = stubKernel{}

func desc(s kernel.Solid) string { return s.(*stubSolid).desc }

func (stubKernel) Box(x, y, z float64) kernel.Solid {
	return &stubSolid{fmt.Sprintf("box(%g,%g,%g)", x, y, z)}
}
func (stubKernel) Sphere(r float64) kernel.Solid {
	return &stubSolid{fmt.Sprintf("sphere(%g)", r)}
}
func (stubKernel) Cylinder(h, r float64) kernel.Solid {
	return &stubSolid{fmt.Sprintf("cylinder(h=%g,r=%g)", h, r)}
}
func (stubKernel) Union(a, b kernel.Solid) kernel.Solid {
	return &stubSolid{"union(" + desc(a) + "," + desc(b) + ")"}
}
func (stubKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return &stubSolid{"difference(" + desc(a) + "," + desc(b) + ")"}
}
func (stubKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return &stubSolid{"intersection(" + desc(a) + "," + desc(b) + ")"}
}
func (stubKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return &stubSolid{fmt.Sprintf("translate(%s,%g,%g,%g)", desc(s), x, y, z)}
}
func (stubKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return &stubSolid{fmt.Sprintf("rotate(%s,%g,%g,%g)", desc(s), x, y, z)}
}
func (stubKernel) Sample(kernel.Solid, volume.Sampling) (*volume.Volume, volume.Frame, error) {
	return nil, volume.Frame{}, fmt.Errorf("stub kernel cannot sample")
}
func (stubKernel) ReferenceMesh(kernel.Solid, int) (*mesh.Soup, error) {
	return &mesh.Soup{}, nil
}

func TestShapeBuiltinsCallKernel(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"sphere positional", `(sphere 2)`, "sphere(2)"},
		{"sphere keyword", `(sphere :radius 2.5)`, "sphere(2.5)"},
		{"box positional", `(box 1 2 3)`, "box(1,2,3)"},
		{"box size", `(box :size (vec3 4 5 6))`, "box(4,5,6)"},
		{"cylinder keywords", `(cylinder :radius 2 :height 9)`, "cylinder(h=9,r=2)"},
		{"cylinder positional", `(cylinder 9 2)`, "cylinder(h=9,r=2)"},
		{"union folds left", `(union (sphere 1) (sphere 2) (sphere 3))`, "union(union(sphere(1),sphere(2)),sphere(3))"},
		{"difference", `(difference (box 1 1 1) (sphere 1))`, "difference(box(1,1,1),sphere(1))"},
		{"intersection", `(intersection (box 1 1 1) (sphere 1))`, "intersection(box(1,1,1),sphere(1))"},
		{"translate", `(translate (sphere 1) (vec3 1 -2 3))`, "translate(sphere(1),1,-2,3)"},
		{"rotate", `(rotate (box 1 2 3) (vec3 0 90 0))`, "rotate(box(1,2,3),0,90,0)"},
	}

	eng := NewEngine(stubKernel{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "(sample-solid " + tt.expr + " :dims (vec3 4 4 4))"
			job, evalErrs, err := eng.Evaluate(src)
			if err != nil || len(evalErrs) > 0 {
				t.Fatalf("err=%v evalErrs=%v", err, evalErrs)
			}
			if got := desc(job.Shape); got != tt.want {
				t.Errorf("%s built %s, want %s", tt.expr, got, tt.want)
			}
		})
	}
}
