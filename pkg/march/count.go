package march

import (
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/tables"
	"github.com/chazu/isomarch/pkg/volume"
)

// CountVertices returns, for each entry of the active list, the number of
// vertices that voxel emits. The result is indexed by position in ids, not
// by voxel id.
func CountVertices(p parallel.Policy, v *volume.Volume, iso float32, ids []uint32) []uint32 {
	counts := make([]uint32, len(ids))
	p.For(len(ids), activeGrain, func(lo, hi int) {
		for a := lo; a < hi; a++ {
			config, _, _, _, _ := voxelConfig(v, iso, int(ids[a]))
			counts[a] = uint32(tables.EdgeCount(config))
		}
	})
	return counts
}
