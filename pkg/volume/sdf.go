package volume

import (
	"math"

	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
)

// SurfaceLevel is the sample value FromSDF assigns to points on the surface.
const SurfaceLevel = 128

// Sampling places a signed distance field on a sample grid.
type Sampling struct {
	// Dims is the grid resolution.
	Dims Dims
	// Scale is the number of sample levels per unit of distance. Zero picks
	// one level per tenth of a grid step.
	Scale float64
	// Padding widens the SDF's bounding box on every side, as a fraction
	// of its largest extent, so the surface does not touch the grid border.
	Padding float64
	// Policy runs the per-row sampling tasks. Nil samples sequentially.
	Policy parallel.Policy
}

// Frame records where a sampled grid sits in model space.
type Frame struct {
	Origin v3.Vec
	Step   v3.Vec
}

// ToModel maps grid coordinates to model space.
func (f Frame) ToModel(x, y, z float64) v3.Vec {
	return v3.Vec{
		X: f.Origin.X + x*f.Step.X,
		Y: f.Origin.Y + y*f.Step.Y,
		Z: f.Origin.Z + z*f.Step.Z,
	}
}

// FromSDF samples s over its padded bounding box. Distance 0 maps to
// SurfaceLevel; interior samples are smaller and exterior samples larger, so
// extracting at SurfaceLevel traces the solid's boundary.
func FromSDF(s sdf.SDF3, cfg Sampling) (*Volume, Frame, error) {
	if s == nil {
		return nil, Frame{}, errors.New("volume: nil SDF")
	}
	dims := cfg.Dims
	if !dims.Valid() || dims.X < 2 || dims.Y < 2 || dims.Z < 2 {
		return nil, Frame{}, errors.Wrapf(ErrBadDims, "sampling needs at least 2 samples per axis, got %s", dims)
	}

	bb := s.BoundingBox()
	size := v3.Vec{X: bb.Max.X - bb.Min.X, Y: bb.Max.Y - bb.Min.Y, Z: bb.Max.Z - bb.Min.Z}
	pad := cfg.Padding * math.Max(size.X, math.Max(size.Y, size.Z))
	frame := Frame{
		Origin: v3.Vec{X: bb.Min.X - pad, Y: bb.Min.Y - pad, Z: bb.Min.Z - pad},
		Step: v3.Vec{
			X: (size.X + 2*pad) / float64(dims.X-1),
			Y: (size.Y + 2*pad) / float64(dims.Y-1),
			Z: (size.Z + 2*pad) / float64(dims.Z-1),
		},
	}

	scale := cfg.Scale
	if scale <= 0 {
		step := math.Max(frame.Step.X, math.Max(frame.Step.Y, frame.Step.Z))
		scale = 10 / step
	}

	policy := cfg.Policy
	if policy == nil {
		policy = parallel.Sequential
	}
	data := make([]byte, dims.Samples())
	policy.For(dims.Y*dims.Z, 1, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			y, z := r%dims.Y, r/dims.Y
			row := r * dims.X
			for x := 0; x < dims.X; x++ {
				d := s.Evaluate(frame.ToModel(float64(x), float64(y), float64(z)))
				data[row+x] = quantize(d * scale)
			}
		}
	})

	v, err := New(dims, data)
	return v, frame, err
}

func quantize(level float64) byte {
	q := math.Round(SurfaceLevel + level)
	switch {
	case q < 0:
		return 0
	case q > 255:
		return 255
	}
	return byte(q)
}
