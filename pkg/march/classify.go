package march

import (
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/tables"
	"github.com/chazu/isomarch/pkg/volume"
)

// CornerValues fetches the eight corner samples of voxel (i, j, k) in
// corner-index order.
func CornerValues(v *volume.Volume, i, j, k int) [tables.Corners]float32 {
	var out [tables.Corners]float32
	for c, o := range tables.CornerOffsets {
		out[c] = float32(v.At(i+o[0], j+o[1], k+o[2]))
	}
	return out
}

// ConfigIndex builds the 8-bit configuration of a voxel: bit c is set when
// corner c is at or below the isovalue. Samples equal to the isovalue count
// as inside.
func ConfigIndex(values [tables.Corners]float32, iso float32) uint8 {
	var index uint8
	for c, val := range values {
		if val <= iso {
			index |= 1 << c
		}
	}
	return index
}

// Active reports whether a configuration straddles the surface.
func Active(config uint8) bool {
	return config != 0 && config != tables.ConfigCount-1
}

// voxelConfig recomputes the configuration and corner values of a linear
// voxel id.
func voxelConfig(v *volume.Volume, iso float32, id int) (config uint8, values [tables.Corners]float32, i, j, k int) {
	i, j, k = v.Dims.Voxel(id)
	values = CornerValues(v, i, j, k)
	return ConfigIndex(values, iso), values, i, j, k
}

// Classify returns one flag per voxel, 1 where the voxel is active, in
// linear voxel order.
func Classify(p parallel.Policy, v *volume.Volume, iso float32) []uint32 {
	flags := make([]uint32, v.Dims.VoxelCount())
	p.For(len(flags), voxelGrain, func(lo, hi int) {
		for id := lo; id < hi; id++ {
			config, _, _, _, _ := voxelConfig(v, iso, id)
			if Active(config) {
				flags[id] = 1
			}
		}
	})
	return flags
}
